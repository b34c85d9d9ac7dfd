// Package state owns the shopper's cart and wishlist.
//
// # Overview
//
// The Store is the single source of truth for both collections. The UI calls
// its mutation methods in response to key presses; nothing else writes to the
// cart or wishlist. Every mutation is persisted to a storage.Backend and then
// announced to observers (the view synchronizer), in that order.
//
//	UI key press ──> Store.AddToCart(...)
//	                   │
//	                   ├─> mutate under lock
//	                   ├─> backend.Set(skinnova_cart, json)   (fire-and-forget)
//	                   └─> observer.StateChanged(Event{CartChanged, id})
//
// # Core Types
//
// CartLine:
//   - One product in the cart with its quantity (always >= 1)
//   - Name, price and primary image are copied from the catalog when the
//     line is created and do not track later catalog changes
//
// Snapshot:
//   - Copy of the cart and wishlist at a point in time
//   - Safe to hand to renderers; mutating it does not affect the Store
//
// Summary / Pricing:
//   - Subtotal, shipping and total for the order-summary block
//   - Shipping is free above 999 units, otherwise a flat 50 by default
//
// # Mutation Rules
//
//	AddToCart(id, q)          unknown id      -> ErrProductNotFound, no change
//	                          existing line   -> quantity += q
//	                          otherwise       -> append line with quantity q
//	UpdateCartQuantity(id, q) missing line    -> ErrLineNotFound, no change
//	                          otherwise       -> quantity = max(1, q)
//	RemoveFromCart(id)        absent id       -> no-op
//	ToggleWishlist(id)        present         -> removed
//	                          absent          -> appended
//
// Missing-entity errors are returned so callers can decide; the UI ignores
// them because it only ever passes ids it rendered itself.
//
// # Persistence
//
// The cart is stored under CartKey as a JSON array of CartLine and the
// wishlist under WishlistKey as a JSON array of ids. Neither carries a
// version tag. Both are restored in New; unreadable or corrupt values start
// empty and are logged. Restored carts are normalised (duplicate ids merged,
// quantities lifted to 1) so the invariants hold from the first read.
//
// Write failures are logged as warnings and otherwise ignored. The in-memory
// state stays authoritative and the next mutation writes the whole
// collection again.
//
// # Concurrency Model
//
// Mutations are expected to arrive one at a time from the UI goroutine. The
// Store still guards its collections with a sync.RWMutex so readers on other
// goroutines see consistent copies. Observers are called after the lock is
// released, so they may read from the Store while handling an event.
package state
