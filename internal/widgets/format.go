package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders an amount in rupees with thousands separators.
func FormatPrice(amount int64) string {
	return printer.Sprintf("₹%d", amount)
}

// StarString returns filled then empty stars for a rating out of five.
// Fractions are dropped and out-of-range ratings are clamped.
func StarString(rating float64) string {
	filled := int(math.Floor(rating))
	filled = min(max(filled, 0), 5)
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// Price renders a styled price.
func Price(amount int64, styles Styles) string {
	return styles.Price.Render(FormatPrice(amount))
}

// Stars renders the star string followed by the numeric rating.
func Stars(rating float64, styles Styles) string {
	return styles.Stars.Render(StarString(rating)) + " " + styles.MutedText.Render(printer.Sprintf("(%.1f)", rating))
}

// Heart renders the wishlist indicator.
func Heart(active bool, styles Styles) string {
	if active {
		return styles.HeartOn.Render("♥")
	}
	return styles.HeartOff.Render("♡")
}

// truncate shortens s to width cells, ending with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
