package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/view"
	"github.com/five82/skinnova/internal/widgets"
)

// navPages are the pages listed in the nav bar, with their shortcut.
var navPages = []struct {
	page view.Page
	key  string
}{
	{view.PageHome, "1"},
	{view.PageCategory, "2"},
	{view.PageCart, "3"},
	{view.PageWishlist, "4"},
	{view.PageLogin, "5"},
}

// renderMain renders header, page content and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderBody is the viewport, with the toast drawn over its bottom lines.
func (m Model) renderBody() string {
	body := m.content.View()
	if m.toast == nil {
		return body
	}
	toast := widgets.RenderToast(*m.toast, m.styles)
	lines := strings.Split(body, "\n")
	keep := max(0, len(lines)-lipgloss.Height(toast))
	return strings.Join(append(lines[:keep], lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toast)), "\n")
}

func (m Model) renderHeader() string {
	left := m.styles.Logo.Render("skinnova") + m.styles.MutedText.Render("  clean skincare, delivered")
	right := ""
	if badge, ok := m.screen.Region(view.RegionBadge); ok {
		right = badge
	}
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return m.styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderNav() string {
	active := m.screen.ActivePage()
	parts := make([]string, 0, len(navPages))
	for _, item := range navPages {
		label := fmt.Sprintf(" %s %s ", item.key, item.page.Title())
		if item.page == active {
			parts = append(parts, m.styles.Selected.Render(label))
			continue
		}
		parts = append(parts, m.styles.MutedText.Render(label))
	}
	if active == view.PageProduct || active == view.PageCheckout {
		parts = append(parts, m.styles.AccentText.Render(" › "+active.Title()))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderFooter() string {
	var hints []string
	switch m.screen.ActivePage() {
	case view.PageHome, view.PageWishlist:
		hints = []string{"enter details", "a add", "w wishlist"}
	case view.PageCategory:
		hints = []string{"o sort", "f category", "r rating", "+/- price", "X clear"}
	case view.PageProduct:
		hints = []string{"+/- qty", "a add", "w wishlist", "[ ] image", "i ingredients", "v reviews"}
	case view.PageCart:
		hints = []string{"+/- qty", "x remove", "c checkout"}
	case view.PageCheckout:
		hints = []string{"tab next", "←/→ payment", "ctrl+s place order", "esc back"}
	case view.PageLogin:
		hints = []string{"tab next", "enter sign in", "esc back"}
	}
	if page := m.screen.ActivePage(); page != view.PageCheckout && page != view.PageLogin {
		hints = append(hints, "/ search", "? help", "q quit")
	}
	return m.styles.Footer.Width(m.width).Render(strings.Join(hints, "  •  "))
}

// renderPage renders the active page's scrollable content.
func (m Model) renderPage() string {
	switch m.screen.ActivePage() {
	case view.PageHome:
		return m.renderHome()
	case view.PageCategory:
		return m.renderShop()
	case view.PageProduct:
		return m.renderProduct()
	case view.PageCart:
		return m.renderCart()
	case view.PageCheckout:
		return m.renderCheckout()
	case view.PageWishlist:
		return m.renderWishlist()
	case view.PageLogin:
		return m.renderLogin()
	default:
		return ""
	}
}

func (m Model) title(text string) string {
	return m.styles.Title.Render(text) + "\n\n"
}

// cards renders products using the screen's wishlist indicators.
func (m Model) cards(products []catalog.Product, cursor int) string {
	cards := make([]string, 0, len(products))
	for i, p := range products {
		cards = append(cards, widgets.ProductCard(p, widgets.CardOptions{
			InWishlist: m.screen.WishlistActive(p.ID),
			Focused:    i == cursor,
		}, m.styles))
	}
	return widgets.Grid(cards, m.width)
}

func (m Model) renderHome() string {
	if m.catalog.Len() == 0 {
		return m.styles.WarningText.Render("Products are unavailable right now. Check the log for details.")
	}
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Glow from within."))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Dermatologist-tested skincare, free shipping above " + widgets.FormatPrice(m.store.Pricing().FreeShippingAbove) + "."))
	b.WriteString("\n\n")
	b.WriteString(m.title("Featured"))
	b.WriteString(m.cards(m.catalog.Featured(), m.screen.Cursor()))
	return b.String()
}

func (m Model) renderShop() string {
	products := m.shopProducts()
	var b strings.Builder
	b.WriteString(m.title(fmt.Sprintf("Shop All (%d)", len(products))))

	category := "All"
	if len(m.shop.filter.Categories) > 0 {
		category = m.shop.filter.Categories[0]
	}
	price := "Any"
	if m.shop.filter.MaxPrice > 0 {
		price = "≤ " + widgets.FormatPrice(m.shop.filter.MaxPrice)
	}
	rating := "Any"
	if r := ratingSteps[m.shop.ratingIdx]; r > 0 {
		rating = fmt.Sprintf("%.0f★ & up", r)
	}
	label := func(name, value string) string {
		return m.styles.MutedText.Render(name+": ") + m.styles.Text.Render(value)
	}
	b.WriteString(strings.Join([]string{
		label("Sort", m.shop.sort.Label()),
		label("Category", category),
		label("Price", price),
		label("Rating", rating),
	}, "   "))
	b.WriteString("\n\n")

	if len(products) == 0 {
		b.WriteString(m.styles.MutedText.Render("No products match these filters. Press X to clear them."))
		return b.String()
	}
	b.WriteString(m.cards(products, m.screen.Cursor()))
	return b.String()
}

func (m Model) renderProduct() string {
	p, ok := m.currentProduct()
	if !ok {
		return m.styles.WarningText.Render("Product not found.")
	}
	var b strings.Builder
	b.WriteString(widgets.ProductDetail(widgets.DetailData{
		Product:    p,
		InWishlist: m.screen.WishlistActive(p.ID),
		Quantity:   m.product.quantity,
		Image:      m.product.image,
		Accordion:  m.product.accordion,
	}, m.styles, m.width))
	if related := m.catalog.Related(p); len(related) > 0 {
		b.WriteString("\n")
		b.WriteString(m.title("You may also like"))
		b.WriteString(m.cards(related, m.screen.Cursor()))
	}
	return b.String()
}

func (m Model) renderCart() string {
	var b strings.Builder
	b.WriteString(m.title("Your Cart"))
	if items, ok := m.screen.Region(view.RegionCartItems); ok {
		b.WriteString(items)
	}
	if summary, ok := m.screen.Region(view.RegionCartSummary); ok {
		b.WriteString("\n\n")
		b.WriteString(summary)
		b.WriteString("\n\n")
		b.WriteString(m.styles.FaintText.Render("c Proceed to checkout"))
	}
	return b.String()
}

func (m Model) renderCheckout() string {
	snap := m.store.Snapshot()
	var b strings.Builder
	b.WriteString(m.title("Checkout"))
	if len(snap.Cart) == 0 {
		b.WriteString(widgets.EmptyCart(m.styles))
		return b.String()
	}
	values := make(map[widgets.CheckoutField]string, len(m.checkout.inputs))
	for i, f := range widgets.CheckoutFields {
		values[f] = m.checkout.inputs[i].View()
	}
	form := widgets.CheckoutForm(widgets.FormData{
		Values:  values,
		Focus:   m.checkout.focus,
		Payment: m.checkout.payment,
		Err:     m.checkout.err,
	}, m.styles, m.width)
	summary := widgets.CartSummary(m.store.Pricing().Summarize(snap.Total()), m.styles)
	if m.checkout.focus == len(m.checkout.inputs) {
		summary += "\n\n" + m.styles.AccentText.Render("enter Place Order")
	} else {
		summary += "\n\n" + m.styles.FaintText.Render("ctrl+s Place Order")
	}
	if m.width >= 100 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, "    ", summary))
		return b.String()
	}
	b.WriteString(form)
	b.WriteString("\n")
	b.WriteString(summary)
	return b.String()
}

func (m Model) renderWishlist() string {
	var b strings.Builder
	b.WriteString(m.title("My Wishlist"))
	if grid, ok := m.screen.Region(view.RegionWishlistGrid); ok {
		b.WriteString(grid)
	}
	return b.String()
}

func (m Model) renderLogin() string {
	return widgets.LoginForm(
		m.login.inputs[0].View(),
		m.login.inputs[1].View(),
		m.login.focus,
		m.styles,
		m.width,
	)
}

// Overlays

// place centers a dialog on the screen.
func (m Model) place(dialog string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func (m Model) renderConfirmRemove() string {
	name := m.pendingRemove
	if p, ok := m.catalog.Product(m.pendingRemove); ok {
		name = p.Name
	}
	content := m.styles.Title.Render("Remove this item from cart?") + "\n\n" +
		m.styles.Text.Render(name) + "\n\n" +
		m.styles.DangerText.Render("y Remove") + "   " + m.styles.MutedText.Render("n Keep")
	return m.place(m.styles.Dialog.Width(modalWidth).Render(content))
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.search.input.View())
	b.WriteString("\n\n")
	b.WriteString(widgets.SearchResults(m.search.input.Value(), m.search.results, m.search.cursor, m.styles))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FaintText.Render("↑/↓ select  enter open  esc close"))
	return m.place(m.styles.Dialog.Width(modalWidth + 8).Render(b.String()))
}
