package widgets

import (
	"strings"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/state"
)

// ProductGrid renders products as cards. The card at cursor is focused.
func ProductGrid(products []catalog.Product, snap state.Snapshot, cursor int, styles Styles, width int) string {
	cards := make([]string, 0, len(products))
	for i, p := range products {
		cards = append(cards, ProductCard(p, CardOptions{
			InWishlist: snap.InWishlist(p.ID),
			Focused:    i == cursor,
		}, styles))
	}
	return Grid(cards, width)
}

// WishlistGrid renders wishlisted products, or the empty message.
func WishlistGrid(products []catalog.Product, snap state.Snapshot, cursor int, styles Styles, width int) string {
	if len(products) == 0 {
		return styles.MutedText.Render(EmptyWishlistText)
	}
	return ProductGrid(products, snap, cursor, styles, width)
}

// SearchResults renders the search overlay result list.
func SearchResults(query string, results []catalog.Product, cursor int, styles Styles) string {
	if len([]rune(strings.TrimSpace(query))) < catalog.SearchMinQuery {
		return styles.FaintText.Render("Type at least 2 characters")
	}
	if len(results) == 0 {
		return styles.MutedText.Render("No products found")
	}
	rows := make([]string, 0, len(results))
	for i, p := range results {
		row := truncate(p.Name, 32) + "  " + FormatPrice(p.Price)
		if i == cursor {
			rows = append(rows, styles.Selected.Render(row))
			continue
		}
		rows = append(rows, styles.Text.Render(truncate(p.Name, 32))+"  "+Price(p.Price, styles))
	}
	return strings.Join(rows, "\n")
}
