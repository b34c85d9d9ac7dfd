package view

import (
	"github.com/rs/zerolog"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/state"
)

// Source is the read side of the state store.
type Source interface {
	Snapshot() state.Snapshot
	Pricing() state.Pricing
}

// Renderer turns state into region content.
type Renderer interface {
	Badge(count int) string
	CartLines(lines []state.CartLine) string
	EmptyCart() string
	CartSummary(summary state.Summary) string
	WishlistGrid(products []catalog.Product, snap state.Snapshot) string
}

// Synchronizer keeps a Surface consistent with the store. It reads state and
// writes regions; it never mutates the store.
type Synchronizer struct {
	source  Source
	catalog *catalog.Catalog
	surface Surface
	render  Renderer
	log     zerolog.Logger
}

// NewSynchronizer wires a synchronizer. Call Attach to start receiving events.
func NewSynchronizer(source Source, cat *catalog.Catalog, surface Surface, render Renderer, logger zerolog.Logger) *Synchronizer {
	return &Synchronizer{
		source:  source,
		catalog: cat,
		surface: surface,
		render:  render,
		log:     logger,
	}
}

// Attach subscribes the synchronizer to store events.
func (s *Synchronizer) Attach(store *state.Store) {
	store.Subscribe(s)
}

// StateChanged implements state.Observer.
func (s *Synchronizer) StateChanged(ev state.Event) {
	snap := s.source.Snapshot()
	switch ev.Kind {
	case state.CartChanged:
		s.syncBadge(snap)
		if s.surface.ActivePage() == PageCart {
			s.syncCart(snap)
		}
	case state.WishlistChanged:
		s.surface.SetWishlistActive(ev.ProductID, snap.InWishlist(ev.ProductID))
		if s.surface.ActivePage() == PageWishlist {
			s.syncWishlist(snap)
		}
	default:
		s.log.Debug().Str("kind", ev.Kind.String()).Msg("ignoring unknown state event")
	}
}

// Sync renders everything that depends on state: the badge, every product's
// wishlist indicator and the regions of the active page. The UI calls it at
// startup and after each page change.
func (s *Synchronizer) Sync() {
	snap := s.source.Snapshot()
	s.syncBadge(snap)
	for _, p := range s.catalog.All() {
		s.surface.SetWishlistActive(p.ID, snap.InWishlist(p.ID))
	}
	switch s.surface.ActivePage() {
	case PageCart:
		s.syncCart(snap)
	case PageWishlist:
		s.syncWishlist(snap)
	}
}

func (s *Synchronizer) syncBadge(snap state.Snapshot) {
	count := snap.ItemCount()
	s.surface.Replace(RegionBadge, s.render.Badge(count))
	s.surface.Show(RegionBadge, count > 0)
}

func (s *Synchronizer) syncCart(snap state.Snapshot) {
	if len(snap.Cart) == 0 {
		s.surface.Replace(RegionCartItems, s.render.EmptyCart())
		s.surface.Show(RegionCartSummary, false)
		return
	}
	s.surface.Replace(RegionCartItems, s.render.CartLines(snap.Cart))
	s.surface.Replace(RegionCartSummary, s.render.CartSummary(s.source.Pricing().Summarize(snap.Total())))
	s.surface.Show(RegionCartSummary, true)
}

// syncWishlist lists wishlisted products in catalog order. Ids the catalog
// no longer knows are skipped.
func (s *Synchronizer) syncWishlist(snap state.Snapshot) {
	var products []catalog.Product
	for _, p := range s.catalog.All() {
		if snap.InWishlist(p.ID) {
			products = append(products, p)
		}
	}
	s.surface.Replace(RegionWishlistGrid, s.render.WishlistGrid(products, snap))
}
