package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/view"
	"github.com/five82/skinnova/internal/widgets"
)

// handleKey routes a key press to the topmost layer that wants it.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return nil
	}
	if m.checkout.draft != nil {
		if key.Matches(msg, m.keys.Confirm, m.keys.Cancel) {
			m.checkout.draft = nil
		}
		return nil
	}
	if m.pendingRemove != "" {
		return m.handleConfirmKey(msg)
	}
	if m.search.active {
		return m.handleSearchKey(msg)
	}

	switch m.screen.ActivePage() {
	case view.PageCheckout:
		return m.handleCheckoutKey(msg)
	case view.PageLogin:
		return m.handleLoginKey(msg)
	}

	if cmd, handled := m.handleGlobalKey(msg); handled {
		return cmd
	}

	switch m.screen.ActivePage() {
	case view.PageHome:
		return m.handleGridKey(msg, m.catalog.Featured())
	case view.PageCategory:
		return m.handleShopKey(msg)
	case view.PageProduct:
		return m.handleProductKey(msg)
	case view.PageCart:
		return m.handleCartKey(msg)
	case view.PageWishlist:
		return m.handleGridKey(msg, m.wishlistProducts())
	}
	return nil
}

// handleGlobalKey handles navigation available on every non-form page.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Search):
		m.openSearch()
	case key.Matches(msg, m.keys.Back):
		m.back()
	case key.Matches(msg, m.keys.Home):
		m.goTo(view.PageHome)
	case key.Matches(msg, m.keys.Shop):
		m.goTo(view.PageCategory)
	case key.Matches(msg, m.keys.Cart):
		m.goTo(view.PageCart)
	case key.Matches(msg, m.keys.Wishlist):
		m.goTo(view.PageWishlist)
	case key.Matches(msg, m.keys.Login):
		m.goTo(view.PageLogin)
	case key.Matches(msg, m.keys.PageDown):
		m.content.HalfViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.content.HalfViewUp()
	default:
		return nil, false
	}
	return nil, true
}

// handleGridKey handles a page showing product cards.
func (m *Model) handleGridKey(msg tea.KeyMsg, products []catalog.Product) tea.Cmd {
	n := len(products)
	perRow := max(1, m.width/widgets.CardWidth)
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, n)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, n)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-perRow, n)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(perRow, n)
	}
	p, ok := focused(products, m.screen.Cursor())
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Open):
		m.openProduct(p)
	case key.Matches(msg, m.keys.AddToCart):
		return m.addToCart(p, 1)
	case key.Matches(msg, m.keys.ToggleWishlist):
		return m.toggleWishlist(p)
	}
	return nil
}

func (m *Model) handleShopKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.CycleSort):
		m.shop.sort = m.shop.sort.Next()
		m.screen.ClampCursor(len(m.shopProducts()))
		m.savePrefs()
		return nil
	case key.Matches(msg, m.keys.CycleCategory):
		m.cycleCategory()
		return nil
	case key.Matches(msg, m.keys.CycleRating):
		m.shop.ratingIdx = (m.shop.ratingIdx + 1) % len(ratingSteps)
		m.shop.filter.MinRatings = nil
		if r := ratingSteps[m.shop.ratingIdx]; r > 0 {
			m.shop.filter.MinRatings = []float64{r}
		}
		m.screen.ClampCursor(len(m.shopProducts()))
		return nil
	case key.Matches(msg, m.keys.Increase):
		m.adjustPriceCeiling(priceStep)
		return nil
	case key.Matches(msg, m.keys.Decrease):
		m.adjustPriceCeiling(-priceStep)
		return nil
	case key.Matches(msg, m.keys.ClearFilters):
		m.shop.filter = catalog.Filter{}
		m.shop.categoryIdx = -1
		m.shop.ratingIdx = 0
		return nil
	}
	return m.handleGridKey(msg, m.shopProducts())
}

func (m *Model) cycleCategory() {
	cats := m.catalog.Categories()
	if len(cats) == 0 {
		return
	}
	m.shop.categoryIdx++
	if m.shop.categoryIdx >= len(cats) {
		m.shop.categoryIdx = -1
	}
	m.shop.filter.Categories = nil
	if m.shop.categoryIdx >= 0 {
		m.shop.filter.Categories = []string{cats[m.shop.categoryIdx]}
	}
	m.screen.ClampCursor(len(m.shopProducts()))
}

// adjustPriceCeiling moves the price filter. Reaching the catalog maximum
// removes the criterion.
func (m *Model) adjustPriceCeiling(delta int64) {
	highest := m.catalog.MaxPrice()
	if highest == 0 {
		return
	}
	current := m.shop.filter.MaxPrice
	if current <= 0 {
		current = highest
	}
	next := current + delta
	switch {
	case next >= highest:
		next = 0
	case next < priceStep:
		next = priceStep
	}
	m.shop.filter.MaxPrice = next
	m.screen.ClampCursor(len(m.shopProducts()))
}

func (m *Model) handleProductKey(msg tea.KeyMsg) tea.Cmd {
	p, ok := m.currentProduct()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Increase):
		m.product.quantity++
	case key.Matches(msg, m.keys.Decrease):
		m.product.quantity = max(1, m.product.quantity-1)
	case key.Matches(msg, m.keys.PrevImage):
		m.product.image = widgets.GalleryIndex(m.product.image-1, len(p.Images))
	case key.Matches(msg, m.keys.NextImage):
		m.product.image = widgets.GalleryIndex(m.product.image+1, len(p.Images))
	case key.Matches(msg, m.keys.Ingredients):
		m.product.accordion = m.product.accordion.Toggle(widgets.SectionIngredients)
	case key.Matches(msg, m.keys.Reviews):
		m.product.accordion = m.product.accordion.Toggle(widgets.SectionReviews)
	case key.Matches(msg, m.keys.AddToCart):
		return m.addToCart(p, m.product.quantity)
	case key.Matches(msg, m.keys.ToggleWishlist):
		return m.toggleWishlist(p)
	default:
		// Arrows and enter act on the related products row.
		return m.handleGridKey(msg, m.catalog.Related(p))
	}
	return nil
}

func (m *Model) handleCartKey(msg tea.KeyMsg) tea.Cmd {
	lines := m.store.Snapshot().Cart
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(lines))
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(lines))
		return nil
	case key.Matches(msg, m.keys.Checkout):
		if len(lines) == 0 {
			return m.showToast(widgets.Toast{Title: "Your cart is empty", Kind: widgets.ToastError})
		}
		m.goTo(view.PageCheckout)
		return nil
	}

	cursor := m.screen.Cursor()
	if cursor < 0 || cursor >= len(lines) {
		return nil
	}
	line := lines[cursor]
	switch {
	case key.Matches(msg, m.keys.Increase):
		m.updateQuantity(line.ID, line.Quantity+1)
	case key.Matches(msg, m.keys.Decrease):
		m.updateQuantity(line.ID, line.Quantity-1)
	case key.Matches(msg, m.keys.Remove):
		m.pendingRemove = line.ID
	case key.Matches(msg, m.keys.Open):
		if p, ok := m.catalog.Product(line.ID); ok {
			m.openProduct(p)
		}
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.pendingRemove
		m.pendingRemove = ""
		m.store.RemoveFromCart(id)
		m.screen.ClampCursor(len(m.store.Snapshot().Cart))
		m.sync.Sync()
	case key.Matches(msg, m.keys.Cancel):
		m.pendingRemove = ""
	}
	return nil
}

func (m *Model) handleCheckoutKey(msg tea.KeyMsg) tea.Cmd {
	fields := len(m.checkout.inputs)
	onPayment := m.checkout.focus == fields
	switch {
	case msg.Type == tea.KeyEsc:
		m.back()
		return nil
	case msg.Type == tea.KeyCtrlS:
		return m.placeOrder()
	case key.Matches(msg, m.keys.NextField):
		m.checkout.focus = (m.checkout.focus + 1) % (fields + 1)
		m.focusPageInputs()
		return nil
	case key.Matches(msg, m.keys.PrevField):
		m.checkout.focus = (m.checkout.focus + fields) % (fields + 1)
		m.focusPageInputs()
		return nil
	case msg.Type == tea.KeyEnter:
		if onPayment {
			return m.placeOrder()
		}
		m.checkout.focus++
		m.focusPageInputs()
		return nil
	}

	if onPayment {
		switch msg.Type {
		case tea.KeyLeft:
			m.checkout.payment = (m.checkout.payment + len(widgets.PaymentMethods) - 1) % len(widgets.PaymentMethods)
		case tea.KeyRight, tea.KeySpace:
			m.checkout.payment = (m.checkout.payment + 1) % len(widgets.PaymentMethods)
		}
		return nil
	}

	var cmd tea.Cmd
	m.checkout.inputs[m.checkout.focus], cmd = m.checkout.inputs[m.checkout.focus].Update(msg)
	return cmd
}

// placeOrder validates the form and, when it passes, prepares an order
// draft and shows the payment notice. Nothing leaves the machine.
func (m *Model) placeOrder() tea.Cmd {
	snap := m.store.Snapshot()
	if len(snap.Cart) == 0 {
		return m.showToast(widgets.Toast{Title: "Your cart is empty", Kind: widgets.ToastError})
	}
	values := m.checkoutValues()
	if err := widgets.ValidateCheckout(values); err != nil {
		var verr *widgets.ValidationError
		if errors.As(err, &verr) {
			m.checkout.err = verr
			return m.showToast(widgets.ValidationToast(verr))
		}
		return nil
	}
	m.checkout.err = nil
	draft := widgets.NewOrderDraft(values, widgets.PaymentMethods[m.checkout.payment], snap, m.store.Pricing(), time.Now())
	m.checkout.draft = &draft
	m.log.Info().
		Str("reference", draft.Reference).
		Int("lines", len(draft.Lines)).
		Int64("total", draft.Summary.Total).
		Str("payment", draft.Payment).
		Msg("order draft prepared")
	return nil
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		m.back()
		return nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.login.focus = 1 - m.login.focus
		m.focusPageInputs()
		return nil
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyCtrlS:
		if msg.Type == tea.KeyEnter && m.login.focus == 0 {
			m.login.focus = 1
			m.focusPageInputs()
			return nil
		}
		return m.showToast(widgets.LoginNotice())
	}
	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return cmd
}

// Actions

func (m *Model) addToCart(p catalog.Product, quantity int) tea.Cmd {
	if err := m.store.AddToCart(p.ID, quantity); err != nil {
		m.log.Debug().Err(err).Str("product", p.ID).Msg("add to cart ignored")
		return nil
	}
	return m.showToast(widgets.Toast{Title: p.Name, Message: "Added to cart", Kind: widgets.ToastSuccess})
}

func (m *Model) toggleWishlist(p catalog.Product) tea.Cmd {
	added := m.store.ToggleWishlist(p.ID)
	if m.screen.ActivePage() == view.PageWishlist {
		m.screen.ClampCursor(len(m.wishlistProducts()))
		m.sync.Sync()
	}
	if !added {
		return nil
	}
	return m.showToast(widgets.Toast{Title: p.Name, Message: "Added to wishlist", Kind: widgets.ToastSuccess})
}

func (m *Model) updateQuantity(id string, quantity int) {
	if err := m.store.UpdateCartQuantity(id, quantity); err != nil {
		m.log.Debug().Err(err).Str("product", id).Msg("quantity update ignored")
	}
}

// moveCursor moves the page cursor and redraws cursor-dependent regions.
func (m *Model) moveCursor(delta, n int) {
	m.screen.MoveCursor(delta, n)
	m.sync.Sync()
}

func focused(products []catalog.Product, cursor int) (catalog.Product, bool) {
	if cursor < 0 || cursor >= len(products) {
		return catalog.Product{}, false
	}
	return products[cursor], true
}

// Page data

func (m Model) shopProducts() []catalog.Product {
	return catalog.Sort(m.shop.filter.Apply(m.catalog.All()), m.shop.sort)
}

// wishlistProducts lists wishlisted products in catalog order.
func (m Model) wishlistProducts() []catalog.Product {
	snap := m.store.Snapshot()
	var out []catalog.Product
	for _, p := range m.catalog.All() {
		if snap.InWishlist(p.ID) {
			out = append(out, p)
		}
	}
	return out
}
