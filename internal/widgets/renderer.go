package widgets

import (
	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/state"
)

// Renderer renders the state-driven screen regions with the current theme.
// Width and Cursor are read on every call so the UI can change them between
// renders.
type Renderer struct {
	Styles Styles
	Width  int
	// Cursor returns the focused row or card on the active page, or -1.
	Cursor func() int
}

func (r *Renderer) cursor() int {
	if r.Cursor == nil {
		return -1
	}
	return r.Cursor()
}

// Badge implements view.Renderer.
func (r *Renderer) Badge(count int) string {
	return Badge(count, r.Styles)
}

// CartLines implements view.Renderer.
func (r *Renderer) CartLines(lines []state.CartLine) string {
	return CartLines(lines, r.cursor(), r.Styles, r.Width)
}

// EmptyCart implements view.Renderer.
func (r *Renderer) EmptyCart() string {
	return EmptyCart(r.Styles)
}

// CartSummary implements view.Renderer.
func (r *Renderer) CartSummary(s state.Summary) string {
	return CartSummary(s, r.Styles)
}

// WishlistGrid implements view.Renderer.
func (r *Renderer) WishlistGrid(products []catalog.Product, snap state.Snapshot) string {
	return WishlistGrid(products, snap, r.cursor(), r.Styles, r.Width)
}
