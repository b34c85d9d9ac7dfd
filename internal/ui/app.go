package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/prefs"
	"github.com/five82/skinnova/internal/state"
	"github.com/five82/skinnova/internal/view"
	"github.com/five82/skinnova/internal/widgets"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	Catalog *catalog.Catalog

	// Screen, Renderer and Sync are built when nil. The composition root
	// passes its own so the synchronizer is subscribed before the UI starts.
	Screen   *Screen
	Renderer *widgets.Renderer
	Sync     *view.Synchronizer

	Logger       zerolog.Logger
	ThemeName    string
	PrefsPath    string
	StartPage    view.Page
	StartProduct string // product slug opened on top of StartPage
	Sort         catalog.SortKey
}

// productState is the product page's local state.
type productState struct {
	id        string
	quantity  int
	image     int
	accordion widgets.Accordion
}

// shopState is the category page's filter and sort state.
type shopState struct {
	sort        catalog.SortKey
	filter      catalog.Filter
	categoryIdx int // -1 = all categories
	ratingIdx   int // index into ratingSteps
}

type checkoutState struct {
	inputs  []textinput.Model
	focus   int // len(inputs) = payment method row
	payment int
	err     *widgets.ValidationError
	draft   *widgets.OrderDraft
}

type loginState struct {
	inputs []textinput.Model
	focus  int
}

type searchState struct {
	active  bool
	input   textinput.Model
	results []catalog.Product
	cursor  int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	store    *state.Store
	catalog  *catalog.Catalog
	screen   *Screen
	renderer *widgets.Renderer
	sync     *view.Synchronizer
	log      zerolog.Logger
	keys     keyMap

	prefsPath string

	// UI state
	theme   widgets.Theme
	styles  widgets.Styles
	width   int
	height  int
	ready   bool
	content viewport.Model
	history []view.Page

	// Page state
	product  productState
	shop     shopState
	checkout checkoutState
	login    loginState
	search   searchState

	// Overlays
	toast         *widgets.Toast
	toastSeq      int
	pendingRemove string
	showHelp      bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = widgets.DefaultTheme
	}
	theme := widgets.GetTheme(themeName)
	styles := theme.Styles()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	page := opts.StartPage
	if page == "" || page == view.PageProduct {
		page = view.PageHome
	}

	screen := opts.Screen
	if screen == nil {
		screen = NewScreen(page)
	} else {
		screen.SetPage(page)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = &widgets.Renderer{}
	}
	renderer.Styles = styles
	renderer.Cursor = screen.Cursor

	sync := opts.Sync
	if sync == nil {
		sync = view.NewSynchronizer(opts.Store, opts.Catalog, screen, renderer, opts.Logger)
		sync.Attach(opts.Store)
	}

	m := Model{
		store:     opts.Store,
		catalog:   opts.Catalog,
		screen:    screen,
		renderer:  renderer,
		sync:      sync,
		log:       opts.Logger,
		keys:      DefaultKeyMap(),
		prefsPath: prefsPath,
		theme:     theme,
		styles:    styles,
		shop: shopState{
			sort:        opts.Sort,
			categoryIdx: -1,
		},
		checkout: checkoutState{inputs: newCheckoutInputs()},
		login:    loginState{inputs: newLoginInputs()},
		search:   searchState{input: newSearchInput()},
	}
	m.focusPageInputs()
	m.sync.Sync()
	if slug := opts.StartProduct; slug != "" {
		if p, ok := m.catalog.BySlug(slug); ok {
			m.openProduct(p)
		} else {
			m.log.Warn().Str("slug", slug).Msg("start product not in catalog")
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.refresh()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Width = msg.Width
		if !m.ready {
			m.content = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.sync.Sync()
		m.refresh()
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	switch {
	case m.search.active:
		m.search.input, cmd = m.search.input.Update(msg)
	case m.screen.ActivePage() == view.PageCheckout && m.checkout.focus < len(m.checkout.inputs):
		m.checkout.inputs[m.checkout.focus], cmd = m.checkout.inputs[m.checkout.focus].Update(msg)
	case m.screen.ActivePage() == view.PageLogin:
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.search.active {
		return m.renderSearch()
	}
	if m.checkout.draft != nil {
		return m.place(widgets.PaymentNotice(*m.checkout.draft, m.styles))
	}
	if m.pendingRemove != "" {
		return m.renderConfirmRemove()
	}
	return m.renderMain()
}

func (m Model) contentHeight() int {
	return max(1, m.height-chromeHeight)
}

// refresh re-renders the active page into the content viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.content.Width = m.width
	m.content.Height = m.contentHeight()
	m.content.SetContent(m.renderPage())
}

// goTo switches pages, remembering where we came from for Back.
func (m *Model) goTo(page view.Page) {
	current := m.screen.ActivePage()
	if page == current {
		return
	}
	m.history = append(m.history, current)
	m.enter(page)
}

func (m *Model) back() {
	if len(m.history) == 0 {
		m.enter(view.PageHome)
		return
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.enter(prev)
}

func (m *Model) enter(page view.Page) {
	m.screen.SetPage(page)
	m.content.GotoTop()
	m.focusPageInputs()
	m.sync.Sync()
}

func (m *Model) openProduct(p catalog.Product) {
	m.product = productState{id: p.ID, quantity: 1}
	if m.screen.ActivePage() == view.PageProduct {
		m.screen.SetPage(view.PageProduct)
		m.content.GotoTop()
		return
	}
	m.goTo(view.PageProduct)
}

func (m *Model) currentProduct() (catalog.Product, bool) {
	return m.catalog.Product(m.product.id)
}

// savePrefs records the theme, page and sort. Failures are logged only.
func (m *Model) savePrefs() {
	page := m.screen.ActivePage()
	if page == view.PageProduct || page == view.PageCheckout {
		page = view.PageHome
	}
	p := prefs.Prefs{
		Theme:    m.theme.Name,
		LastPage: string(page),
		Sort:     string(m.shop.sort),
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Msg("save prefs failed")
	}
}

func (m *Model) cycleTheme() {
	m.theme = widgets.GetTheme(widgets.NextTheme(m.theme.Name))
	m.styles = m.theme.Styles()
	m.renderer.Styles = m.styles
	m.sync.Sync()
	m.savePrefs()
}

// Messages

type toastExpiredMsg struct{ seq int }

// showToast replaces any visible toast and schedules its removal.
func (m *Model) showToast(t widgets.Toast) tea.Cmd {
	m.toastSeq++
	seq := m.toastSeq
	m.toast = &t
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.savePrefs()
	}
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
