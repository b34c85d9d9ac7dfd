package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/storage"
)

// Durable storage keys.
const (
	CartKey     = "skinnova_cart"
	WishlistKey = "skinnova_wishlist"
)

var (
	// ErrProductNotFound is returned when a product id is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrLineNotFound is returned when the cart has no line for a product id.
	ErrLineNotFound = errors.New("cart line not found")
)

// Lookup resolves product ids against the catalog.
type Lookup interface {
	Product(id string) (catalog.Product, bool)
}

// CartLine is one product entry in the cart. Name, price and image are
// captured when the line is created and do not follow later catalog changes.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Subtotal returns price × quantity, saturating at math.MaxInt64.
func (l CartLine) Subtotal() int64 {
	if l.Quantity <= 0 || l.Price <= 0 {
		return 0
	}
	if l.Price > math.MaxInt64/int64(l.Quantity) {
		return math.MaxInt64
	}
	return l.Price * int64(l.Quantity)
}

// Snapshot is a copy of the cart and wishlist at a point in time.
type Snapshot struct {
	Cart     []CartLine
	Wishlist []string
}

// Total returns Σ price × quantity over the snapshot's cart.
func (s Snapshot) Total() int64 {
	var total int64
	for _, line := range s.Cart {
		sub := line.Subtotal()
		if total > math.MaxInt64-sub {
			return math.MaxInt64
		}
		total += sub
	}
	return total
}

// ItemCount returns Σ quantity over the snapshot's cart.
func (s Snapshot) ItemCount() int {
	count := 0
	for _, line := range s.Cart {
		count = addQuantity(count, line.Quantity)
	}
	return count
}

// InWishlist reports whether id is in the snapshot's wishlist.
func (s Snapshot) InWishlist(id string) bool {
	return slices.Contains(s.Wishlist, id)
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// WithMaxQuantity caps every cart line's quantity. Zero or less means unbounded.
func WithMaxQuantity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxQuantity = n
		}
	}
}

// WithPricing overrides the shipping rules used by OrderSummary.
func WithPricing(p Pricing) Option {
	return func(s *Store) { s.pricing = p }
}

// Store owns the cart and wishlist. Every mutation is persisted to the
// backend and then announced to observers, in that order.
type Store struct {
	mu          sync.RWMutex
	cart        []CartLine
	wishlist    []string
	lookup      Lookup
	backend     storage.Backend
	maxQuantity int
	pricing     Pricing
	log         zerolog.Logger

	obsMu     sync.RWMutex
	observers []Observer
}

// New builds a Store and restores the cart and wishlist from backend. A nil
// backend keeps state in memory only.
func New(lookup Lookup, backend storage.Backend, opts ...Option) *Store {
	if backend == nil {
		backend = storage.NewMemory()
	}
	s := &Store{
		lookup:  lookup,
		backend: backend,
		pricing: DefaultPricing,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restore()
	return s
}

// Subscribe registers an observer for subsequent mutations.
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, o)
}

// AddToCart adds quantity of productID, merging into an existing line.
// Quantities below 1 are treated as 1. Unknown products leave the cart
// untouched and return ErrProductNotFound.
func (s *Store) AddToCart(productID string, quantity int) error {
	if s.lookup == nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	product, ok := s.lookup.Product(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if idx := s.lineIndex(productID); idx >= 0 {
		s.cart[idx].Quantity = s.clamp(addQuantity(s.cart[idx].Quantity, quantity))
	} else {
		s.cart = append(s.cart, CartLine{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.PrimaryImage(),
			Quantity: s.clamp(quantity),
		})
	}
	cart := cloneCart(s.cart)
	s.mu.Unlock()

	s.persist(CartKey, cart)
	s.notify(Event{Kind: CartChanged, ProductID: productID})
	return nil
}

// UpdateCartQuantity sets the line's quantity to max(1, quantity). It never
// removes the line; use RemoveFromCart for that.
func (s *Store) UpdateCartQuantity(productID string, quantity int) error {
	s.mu.Lock()
	idx := s.lineIndex(productID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrLineNotFound, productID)
	}
	s.cart[idx].Quantity = s.clamp(max(1, quantity))
	cart := cloneCart(s.cart)
	s.mu.Unlock()

	s.persist(CartKey, cart)
	s.notify(Event{Kind: CartChanged, ProductID: productID})
	return nil
}

// RemoveFromCart deletes the line for productID. Removing an absent id is a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	idx := s.lineIndex(productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.cart = slices.Delete(s.cart, idx, idx+1)
	cart := cloneCart(s.cart)
	s.mu.Unlock()

	s.persist(CartKey, cart)
	s.notify(Event{Kind: CartChanged, ProductID: productID})
}

// ToggleWishlist removes productID when present and appends it otherwise.
// It reports whether the id is in the wishlist afterwards.
func (s *Store) ToggleWishlist(productID string) bool {
	s.mu.Lock()
	idx := slices.Index(s.wishlist, productID)
	added := idx < 0
	if added {
		s.wishlist = append(s.wishlist, productID)
	} else {
		s.wishlist = slices.Delete(s.wishlist, idx, idx+1)
	}
	wishlist := slices.Clone(s.wishlist)
	s.mu.Unlock()

	s.persist(WishlistKey, wishlist)
	s.notify(Event{Kind: WishlistChanged, ProductID: productID})
	return added
}

// CartTotal returns Σ price × quantity.
func (s *Store) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Cart: s.cart}.Total()
}

// ItemCount returns the number of units in the cart.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Cart: s.cart}.ItemCount()
}

// InWishlist reports whether productID is wishlisted.
func (s *Store) InWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.wishlist, productID)
}

// OrderSummary prices the current cart with the store's shipping rules.
func (s *Store) OrderSummary() Summary {
	return s.pricing.Summarize(s.CartTotal())
}

// Pricing returns the shipping rules in effect.
func (s *Store) Pricing() Pricing {
	return s.pricing
}

// Snapshot returns copies of the cart and wishlist.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Cart:     cloneCart(s.cart),
		Wishlist: slices.Clone(s.wishlist),
	}
}

func (s *Store) lineIndex(productID string) int {
	return slices.IndexFunc(s.cart, func(l CartLine) bool { return l.ID == productID })
}

func (s *Store) clamp(q int) int {
	if s.maxQuantity > 0 && q > s.maxQuantity {
		return s.maxQuantity
	}
	return q
}

// addQuantity adds two non-negative quantities, saturating at math.MaxInt.
func addQuantity(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// persist writes value under key. Failures are logged and otherwise ignored:
// the in-memory state stays authoritative and the next mutation writes again.
func (s *Store) persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("encode state failed")
		return
	}
	if err := s.backend.Set(key, data); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("persist state failed")
	}
}

func (s *Store) restore() {
	var cart []CartLine
	if s.load(CartKey, &cart) {
		s.cart = s.sanitizeCart(cart)
	}
	var wishlist []string
	if s.load(WishlistKey, &wishlist) {
		s.wishlist = sanitizeWishlist(wishlist)
	}
}

func (s *Store) load(key string, dest any) bool {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("read stored state failed")
		return false
	}
	if !ok || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored state is corrupt; starting empty")
		return false
	}
	return true
}

// sanitizeCart merges duplicate ids and applies the quantity rules of live
// mutations to restored lines.
func (s *Store) sanitizeCart(lines []CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID == "" {
			continue
		}
		line.Quantity = s.clamp(max(1, line.Quantity))
		if idx := slices.IndexFunc(out, func(l CartLine) bool { return l.ID == line.ID }); idx >= 0 {
			out[idx].Quantity = s.clamp(addQuantity(out[idx].Quantity, line.Quantity))
			continue
		}
		out = append(out, line)
	}
	return out
}

func sanitizeWishlist(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func cloneCart(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return []CartLine{}
	}
	dup := make([]CartLine, len(lines))
	copy(dup, lines)
	return dup
}
