// Package ui implements the Skinnova terminal storefront using Bubble Tea.
//
// The Model owns navigation, page-local state (product detail, shop filters,
// checkout and login forms, search) and overlays such as toasts, help and
// confirmation dialogs. Shopping actions go through state.Store; the store's
// change events reach a view.Synchronizer, which writes rendered fragments
// into the Screen. Page renderers read those regions back instead of
// recomputing the cart, so the header badge, cart page and wishlist grid
// always reflect the last committed state.
//
// Keys are described in keys.go and shown in the help overlay (press ?).
package ui
