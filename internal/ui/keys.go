package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Search     key.Binding
	Back       key.Binding

	// Page switching
	Home     key.Binding
	Shop     key.Binding
	Cart     key.Binding
	Wishlist key.Binding
	Login    key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding

	// Shopping
	AddToCart      key.Binding
	ToggleWishlist key.Binding
	Increase       key.Binding
	Decrease       key.Binding
	Remove         key.Binding
	Checkout       key.Binding

	// Product page
	PrevImage   key.Binding
	NextImage   key.Binding
	Ingredients key.Binding
	Reviews     key.Binding

	// Category page
	CycleSort     key.Binding
	CycleCategory key.Binding
	CycleRating   key.Binding
	ClearFilters  key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search products"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),

		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		Shop: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2/s", "Shop all"),
		),
		Cart: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Cart"),
		),
		Wishlist: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Wishlist"),
		),
		Login: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Login"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "View details"),
		),

		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to cart"),
		),
		ToggleWishlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Toggle wishlist"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Increase quantity"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Decrease quantity"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove from cart"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Checkout"),
		),

		PrevImage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous image"),
		),
		NextImage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next image"),
		),
		Ingredients: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Toggle ingredients"),
		),
		Reviews: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Toggle reviews"),
		),

		CycleSort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Cycle sort"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle category filter"),
		),
		CycleRating: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Cycle rating filter"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Clear filters"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s", "enter"),
			key.WithHelp("enter", "Submit"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, grouped by section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Shop, k.Cart, k.Wishlist, k.Login, k.Back},
		{k.Up, k.Down, k.Left, k.Right, k.Open, k.PageDown, k.PageUp},
		{k.AddToCart, k.ToggleWishlist, k.Increase, k.Decrease, k.Remove, k.Checkout},
		{k.PrevImage, k.NextImage, k.Ingredients, k.Reviews},
		{k.CycleSort, k.CycleCategory, k.CycleRating, k.ClearFilters},
		{k.Search, k.CycleTheme, k.Help, k.Quit},
	}
}
