package ui

import "github.com/five82/skinnova/internal/view"

// Screen is the Surface the view synchronizer writes into. It keeps the
// latest content of each region and every product's wishlist indicator;
// the Bubble Tea model reads it when drawing.
type Screen struct {
	page     view.Page
	cursor   int
	regions  map[view.Region]string
	hidden   map[view.Region]bool
	wishlist map[string]bool
}

// NewScreen returns a screen showing page.
func NewScreen(page view.Page) *Screen {
	return &Screen{
		page:     page,
		regions:  make(map[view.Region]string),
		hidden:   make(map[view.Region]bool),
		wishlist: make(map[string]bool),
	}
}

// ActivePage implements view.Surface.
func (s *Screen) ActivePage() view.Page { return s.page }

// Replace implements view.Surface.
func (s *Screen) Replace(region view.Region, content string) {
	s.regions[region] = content
}

// Show implements view.Surface.
func (s *Screen) Show(region view.Region, visible bool) {
	s.hidden[region] = !visible
}

// SetWishlistActive implements view.Surface.
func (s *Screen) SetWishlistActive(productID string, active bool) {
	s.wishlist[productID] = active
}

// Region returns a region's content and whether it should be drawn.
func (s *Screen) Region(region view.Region) (string, bool) {
	content, ok := s.regions[region]
	if !ok || s.hidden[region] {
		return content, false
	}
	return content, true
}

// WishlistActive reports the indicator state for a product.
func (s *Screen) WishlistActive(productID string) bool {
	return s.wishlist[productID]
}

// SetPage switches the active page and resets the cursor.
func (s *Screen) SetPage(page view.Page) {
	s.page = page
	s.cursor = 0
}

// Cursor returns the focused row or card on the active page.
func (s *Screen) Cursor() int { return s.cursor }

// MoveCursor shifts the cursor by delta, keeping it within [0, n).
func (s *Screen) MoveCursor(delta, n int) {
	if n <= 0 {
		s.cursor = 0
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), n-1)
}

// ClampCursor keeps the cursor valid after the list shrinks to n.
func (s *Screen) ClampCursor(n int) {
	s.MoveCursor(0, n)
}
