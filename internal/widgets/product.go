package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skinnova/internal/catalog"
)

// CardWidth is the outer width of a product card.
const CardWidth = 30

// CardOptions controls how a product card is drawn.
type CardOptions struct {
	InWishlist bool
	Focused    bool
}

// ProductCard renders a catalog tile: heart, name, price and rating.
func ProductCard(p catalog.Product, opts CardOptions, styles Styles) string {
	inner := CardWidth - 4
	name := truncate(p.Name, inner-2)
	lines := []string{
		Heart(opts.InWishlist, styles) + " " + styles.Title.Render(name),
		Price(p.Price, styles),
		Stars(p.Rating, styles),
		styles.FaintText.Render(truncate(p.Category, inner)),
	}
	style := styles.Card
	if opts.Focused {
		style = styles.CardFocus
	}
	return style.Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}

// Grid lays rendered cards out in rows that fit width.
func Grid(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := max(1, width/CardWidth)
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Gallery shows which image is selected and the thumbnail strip.
// The selected index wraps around the image list.
func Gallery(images []string, selected int, styles Styles) string {
	if len(images) == 0 {
		return styles.FaintText.Render("No images")
	}
	selected = GalleryIndex(selected, len(images))
	var thumbs []string
	for i := range images {
		label := fmt.Sprintf(" %d ", i+1)
		if i == selected {
			thumbs = append(thumbs, styles.Selected.Render(label))
			continue
		}
		thumbs = append(thumbs, styles.MutedText.Render(label))
	}
	return styles.MutedText.Render("Image ") + styles.Text.Render(images[selected]) + "\n" + strings.Join(thumbs, " ")
}

// GalleryIndex normalises idx into [0, n).
func GalleryIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Section is one collapsible block of the product detail.
type Section int

const (
	SectionIngredients Section = iota
	SectionReviews
)

var sectionTitles = []string{"Ingredients", "Reviews"}

// Accordion tracks which detail section is open. At most one is open.
type Accordion struct {
	open    Section
	hasOpen bool
}

// Toggle opens s, closing any other section. Toggling the open section closes it.
func (a Accordion) Toggle(s Section) Accordion {
	if a.hasOpen && a.open == s {
		return Accordion{}
	}
	return Accordion{open: s, hasOpen: true}
}

// IsOpen reports whether s is expanded.
func (a Accordion) IsOpen(s Section) bool {
	return a.hasOpen && a.open == s
}

// DetailData is everything ProductDetail needs.
type DetailData struct {
	Product    catalog.Product
	InWishlist bool
	Quantity   int
	Image      int
	Accordion  Accordion
}

// ProductDetail renders the product page body.
func ProductDetail(d DetailData, styles Styles, width int) string {
	p := d.Product
	wrap := lipgloss.NewStyle().Width(max(20, width-4))

	var b strings.Builder
	b.WriteString(styles.Title.Render(p.Name) + "  " + Heart(d.InWishlist, styles))
	b.WriteString("\n")
	b.WriteString(Price(p.Price, styles) + "  " + Stars(p.Rating, styles))
	b.WriteString("\n\n")
	b.WriteString(Gallery(p.Images, d.Image, styles))
	b.WriteString("\n\n")
	if p.LongDesc != "" {
		b.WriteString(wrap.Render(styles.Text.Render(p.LongDesc)))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.MutedText.Render("Quantity ") + styles.Text.Render(fmt.Sprintf("− %d +", max(1, d.Quantity))))
	b.WriteString("\n\n")

	for i, title := range sectionTitles {
		s := Section(i)
		marker := "▸"
		if d.Accordion.IsOpen(s) {
			marker = "▾"
		}
		b.WriteString(styles.AccentText.Render(marker + " " + title))
		b.WriteString("\n")
		if !d.Accordion.IsOpen(s) {
			continue
		}
		switch s {
		case SectionIngredients:
			b.WriteString(ingredients(p.Ingredients, styles))
		case SectionReviews:
			b.WriteString(reviews(p.Reviews, styles, wrap))
		}
	}
	return b.String()
}

func ingredients(items []string, styles Styles) string {
	if len(items) == 0 {
		return styles.FaintText.Render("  Not listed") + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  • " + styles.Text.Render(item) + "\n")
	}
	return b.String()
}

// ReviewStars returns filled then empty stars for an integer review rating.
func ReviewStars(rating int) string {
	return StarString(float64(rating))
}

func reviews(items []catalog.Review, styles Styles, wrap lipgloss.Style) string {
	if len(items) == 0 {
		return styles.FaintText.Render("  No reviews yet") + "\n"
	}
	var b strings.Builder
	for _, r := range items {
		b.WriteString("  " + styles.Stars.Render(ReviewStars(r.Rating)) + "\n")
		b.WriteString(wrap.Render("  "+styles.Text.Render(r.Text)) + "\n")
		b.WriteString("  " + styles.MutedText.Render("– "+r.Name) + "\n")
	}
	return b.String()
}
