package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skinnova/internal/state"
)

// Messages shown for empty collections.
const (
	EmptyCartText     = "Your cart is empty. Press s to start shopping."
	EmptyWishlistText = "Your wishlist is empty. Press s to discover products."
)

// Badge renders the cart item count for the header.
func Badge(count int, styles Styles) string {
	return styles.Badge.Render(fmt.Sprintf("Cart %d", count))
}

// EmptyCart renders the empty-cart message.
func EmptyCart(styles Styles) string {
	return styles.MutedText.Render(EmptyCartText)
}

// CartLines renders one row per line with the focused row highlighted.
// A cursor outside the list highlights nothing.
func CartLines(lines []state.CartLine, cursor int, styles Styles, width int) string {
	if len(lines) == 0 {
		return EmptyCart(styles)
	}
	nameWidth := max(12, width-44)
	rows := make([]string, 0, len(lines))
	for i, line := range lines {
		name := lipgloss.NewStyle().Width(nameWidth).Render(truncate(line.Name, nameWidth-1))
		qty := fmt.Sprintf("− %d +", line.Quantity)
		row := fmt.Sprintf("%s %10s  %-9s %12s  %s",
			name,
			FormatPrice(line.Price),
			qty,
			FormatPrice(line.Subtotal()),
			"Remove",
		)
		if i == cursor {
			rows = append(rows, styles.Selected.Render(row))
			continue
		}
		rows = append(rows, styles.Text.Render(row))
	}
	return strings.Join(rows, "\n")
}

// ShippingLabel returns "FREE" or the formatted fee.
func ShippingLabel(s state.Summary) string {
	if s.FreeShipping() {
		return "FREE"
	}
	return FormatPrice(s.Shipping)
}

// CartSummary renders the subtotal, shipping and total block.
func CartSummary(s state.Summary, styles Styles) string {
	row := func(label, value string, style lipgloss.Style) string {
		return lipgloss.NewStyle().Width(12).Render(styles.MutedText.Render(label)) + style.Render(value)
	}
	shippingStyle := styles.Text
	if s.FreeShipping() {
		shippingStyle = styles.SuccessText
	}
	lines := []string{
		styles.Title.Render("Order Summary"),
		row("Subtotal:", FormatPrice(s.Subtotal), styles.Text),
		row("Shipping:", ShippingLabel(s), shippingStyle),
		row("Total:", FormatPrice(s.Total), styles.Price),
	}
	return strings.Join(lines, "\n")
}
