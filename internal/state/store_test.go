package state

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/storage"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: "p1", Slug: "one", Name: "Serum", Price: 200, Images: []string{"one.jpg", "one-b.jpg"}},
		{ID: "p2", Slug: "two", Name: "Cream", Price: 500, Images: []string{"two.jpg"}},
		{ID: "p3", Slug: "three", Name: "Balm", Price: 150},
	})
}

type recorder struct {
	events []Event
}

func (r *recorder) StateChanged(ev Event) { r.events = append(r.events, ev) }

type failingBackend struct {
	setErr error
	getErr error
	data   map[string][]byte
}

func (f *failingBackend) Get(key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *failingBackend) Set(string, []byte) error { return f.setErr }

func TestAddToCart_SameProductSumsQuantities(t *testing.T) {
	s := New(testCatalog(), storage.NewMemory())

	for _, q := range []int{1, 3, 2} {
		if err := s.AddToCart("p1", q); err != nil {
			t.Fatalf("AddToCart returned error: %v", err)
		}
	}

	snap := s.Snapshot()
	if len(snap.Cart) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(snap.Cart))
	}
	if snap.Cart[0].Quantity != 6 {
		t.Fatalf("quantity = %d, want 6", snap.Cart[0].Quantity)
	}
}

func TestAddToCart_EmptyCartScenario(t *testing.T) {
	s := New(testCatalog(), storage.NewMemory())

	if err := s.AddToCart("p1", 3); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}

	want := []CartLine{{ID: "p1", Name: "Serum", Price: 200, Image: "one.jpg", Quantity: 3}}
	if got := s.Snapshot().Cart; !reflect.DeepEqual(got, want) {
		t.Fatalf("cart = %#v, want %#v", got, want)
	}
	if got := s.CartTotal(); got != 600 {
		t.Fatalf("CartTotal = %d, want 600", got)
	}
	if got := s.ItemCount(); got != 3 {
		t.Fatalf("ItemCount = %d, want 3", got)
	}
}

func TestAddToCart_PreservesInsertionOrder(t *testing.T) {
	s := New(testCatalog(), storage.NewMemory())
	_ = s.AddToCart("p2", 1)
	_ = s.AddToCart("p1", 1)
	_ = s.AddToCart("p2", 1)

	cart := s.Snapshot().Cart
	if len(cart) != 2 || cart[0].ID != "p2" || cart[1].ID != "p1" {
		t.Fatalf("cart order = %#v, want [p2 p1]", cart)
	}
}

func TestAddToCart_UnknownProductIsNoOp(t *testing.T) {
	rec := &recorder{}
	backend := storage.NewMemory()
	s := New(testCatalog(), backend)
	s.Subscribe(rec)

	err := s.AddToCart("nope", 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("AddToCart error = %v, want ErrProductNotFound", err)
	}
	if len(s.Snapshot().Cart) != 0 {
		t.Fatalf("cart changed on unknown product")
	}
	if len(rec.events) != 0 {
		t.Fatalf("observer notified %d times, want 0", len(rec.events))
	}
	if _, ok, _ := backend.Get(CartKey); ok {
		t.Fatalf("cart persisted on unknown product")
	}
}

func TestAddToCart_NilLookup(t *testing.T) {
	s := New(nil, nil)
	if err := s.AddToCart("p1", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("AddToCart error = %v, want ErrProductNotFound", err)
	}
}

func TestAddToCart_NonPositiveQuantityDefaultsToOne(t *testing.T) {
	s := New(testCatalog(), nil)
	_ = s.AddToCart("p1", 0)
	_ = s.AddToCart("p1", -4)
	if got := s.Snapshot().Cart[0].Quantity; got != 2 {
		t.Fatalf("quantity = %d, want 2", got)
	}
}

func TestAddToCart_DenormalizedFieldsDoNotTrackCatalog(t *testing.T) {
	products := []catalog.Product{{ID: "p1", Name: "Old", Price: 100}}
	s := New(catalog.New(products), nil)
	_ = s.AddToCart("p1", 1)

	// A later lookup source with a new price does not rewrite the line.
	s.lookup = catalog.New([]catalog.Product{{ID: "p1", Name: "New", Price: 999}})
	_ = s.AddToCart("p1", 1)

	line := s.Snapshot().Cart[0]
	if line.Name != "Old" || line.Price != 100 || line.Quantity != 2 {
		t.Fatalf("line = %#v, want Old/100 qty 2", line)
	}
}

func TestWithMaxQuantity_CapsLines(t *testing.T) {
	s := New(testCatalog(), nil, WithMaxQuantity(5))
	_ = s.AddToCart("p1", 4)
	_ = s.AddToCart("p1", 4)
	if got := s.Snapshot().Cart[0].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want capped 5", got)
	}
	_ = s.UpdateCartQuantity("p1", 50)
	if got := s.Snapshot().Cart[0].Quantity; got != 5 {
		t.Fatalf("quantity after update = %d, want capped 5", got)
	}
}

func TestAddToCart_QuantitySaturatesInsteadOfWrapping(t *testing.T) {
	s := New(testCatalog(), nil)
	if err := s.AddToCart("p1", math.MaxInt); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}
	if err := s.AddToCart("p1", 1); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}

	if got := s.Snapshot().Cart[0].Quantity; got != math.MaxInt {
		t.Fatalf("quantity = %d, want %d", got, math.MaxInt)
	}
	if got := s.ItemCount(); got != math.MaxInt {
		t.Fatalf("ItemCount = %d, want %d", got, math.MaxInt)
	}
	if got := s.CartTotal(); got != math.MaxInt64 {
		t.Fatalf("CartTotal = %d, want %d", got, int64(math.MaxInt64))
	}
}

func TestCartTotal_SaturatesAcrossLines(t *testing.T) {
	s := New(testCatalog(), nil)
	_ = s.AddToCart("p1", math.MaxInt)
	_ = s.AddToCart("p2", 3)

	if got := s.CartTotal(); got != math.MaxInt64 {
		t.Fatalf("CartTotal = %d, want %d", got, int64(math.MaxInt64))
	}
}

func TestUpdateCartQuantity_ClampsToOne(t *testing.T) {
	for _, q := range []int{1, 0, -1, -100} {
		s := New(testCatalog(), nil)
		_ = s.AddToCart("p1", 4)

		if err := s.UpdateCartQuantity("p1", q); err != nil {
			t.Fatalf("UpdateCartQuantity(%d) returned error: %v", q, err)
		}
		cart := s.Snapshot().Cart
		if len(cart) != 1 {
			t.Fatalf("UpdateCartQuantity(%d) removed the line", q)
		}
		if cart[0].Quantity != 1 {
			t.Fatalf("UpdateCartQuantity(%d) quantity = %d, want 1", q, cart[0].Quantity)
		}
	}
}

func TestUpdateCartQuantity_SetsValue(t *testing.T) {
	s := New(testCatalog(), nil)
	_ = s.AddToCart("p2", 1)
	if err := s.UpdateCartQuantity("p2", 7); err != nil {
		t.Fatalf("UpdateCartQuantity returned error: %v", err)
	}
	if got := s.Snapshot().Cart[0].Quantity; got != 7 {
		t.Fatalf("quantity = %d, want 7", got)
	}
}

func TestUpdateCartQuantity_MissingLine(t *testing.T) {
	rec := &recorder{}
	s := New(testCatalog(), nil)
	s.Subscribe(rec)

	if err := s.UpdateCartQuantity("p1", 3); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("UpdateCartQuantity error = %v, want ErrLineNotFound", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("observer notified on missing line")
	}
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	once := New(testCatalog(), nil)
	twice := New(testCatalog(), nil)
	for _, s := range []*Store{once, twice} {
		_ = s.AddToCart("p1", 1)
		_ = s.AddToCart("p2", 2)
	}

	once.RemoveFromCart("p1")
	twice.RemoveFromCart("p1")
	twice.RemoveFromCart("p1")

	if !reflect.DeepEqual(once.Snapshot().Cart, twice.Snapshot().Cart) {
		t.Fatalf("remove twice = %#v, remove once = %#v", twice.Snapshot().Cart, once.Snapshot().Cart)
	}
	if got := once.Snapshot().Cart; len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("cart = %#v, want only p2", got)
	}
}

func TestToggleWishlist_ReportsMembership(t *testing.T) {
	s := New(testCatalog(), nil)
	s.ToggleWishlist("p1")
	s.ToggleWishlist("p2")
	s.ToggleWishlist("p3")

	if added := s.ToggleWishlist("p2"); added {
		t.Fatalf("ToggleWishlist(p2) on member reported added")
	}
	if s.InWishlist("p2") {
		t.Fatalf("InWishlist(p2) = true after removal")
	}
	if added := s.ToggleWishlist("p2"); !added {
		t.Fatalf("ToggleWishlist(p2) on non-member reported removed")
	}

	// Re-adding appends, so a removed member comes back at the end.
	want := []string{"p1", "p3", "p2"}
	if got := s.Snapshot().Wishlist; !reflect.DeepEqual(got, want) {
		t.Fatalf("wishlist = %v, want %v", got, want)
	}
}

func TestToggleWishlist_DoubleToggleRestoresWishlist(t *testing.T) {
	s := New(testCatalog(), nil)
	s.ToggleWishlist("p1")
	s.ToggleWishlist("p2")
	before := s.Snapshot().Wishlist

	for _, id := range []string{"p3", "p4", "p2"} {
		s.ToggleWishlist(id)
		s.ToggleWishlist(id)
		if got := s.Snapshot().Wishlist; !reflect.DeepEqual(got, before) {
			t.Fatalf("after double toggle of %s wishlist = %v, want %v", id, got, before)
		}
	}
}

func TestCartTotal(t *testing.T) {
	s := New(catalog.New([]catalog.Product{
		{ID: "a", Price: 500},
		{ID: "b", Price: 150},
	}), nil)
	_ = s.AddToCart("a", 2)
	_ = s.AddToCart("b", 1)

	if got := s.CartTotal(); got != 1150 {
		t.Fatalf("CartTotal = %d, want 1150", got)
	}
	if got := s.Snapshot().Total(); got != 1150 {
		t.Fatalf("Snapshot.Total = %d, want 1150", got)
	}
}

func TestMutations_PersistThenNotify(t *testing.T) {
	backend := storage.NewMemory()
	s := New(testCatalog(), backend)

	var seen []string
	s.Subscribe(ObserverFunc(func(ev Event) {
		key := CartKey
		if ev.Kind == WishlistChanged {
			key = WishlistKey
		}
		data, ok, err := backend.Get(key)
		if err != nil || !ok {
			t.Fatalf("observer ran before %s was persisted", key)
		}
		seen = append(seen, ev.Kind.String()+":"+ev.ProductID+":"+string(data))
	}))

	_ = s.AddToCart("p1", 2)
	s.ToggleWishlist("p2")
	s.RemoveFromCart("p1")

	want := []string{
		`cart:p1:[{"id":"p1","name":"Serum","price":200,"image":"one.jpg","quantity":2}]`,
		`wishlist:p2:["p2"]`,
		`cart:p1:[]`,
	}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("events = %v, want %v", seen, want)
	}
}

func TestNew_RestoresFromBackend(t *testing.T) {
	backend := storage.NewMemory()
	first := New(testCatalog(), backend)
	_ = first.AddToCart("p2", 2)
	_ = first.AddToCart("p1", 1)
	first.ToggleWishlist("p3")

	second := New(testCatalog(), backend)
	if !reflect.DeepEqual(second.Snapshot(), first.Snapshot()) {
		t.Fatalf("restored = %#v, want %#v", second.Snapshot(), first.Snapshot())
	}
}

func TestNew_SanitizesStoredState(t *testing.T) {
	backend := storage.NewMemory()
	_ = backend.Set(CartKey, []byte(`[
		{"id":"p1","name":"Serum","price":200,"quantity":2},
		{"id":"","name":"ghost","price":1,"quantity":1},
		{"id":"p1","name":"Serum","price":200,"quantity":0}
	]`))
	_ = backend.Set(WishlistKey, []byte(`["p1","","p1","p2"]`))

	snap := New(testCatalog(), backend).Snapshot()
	if len(snap.Cart) != 1 || snap.Cart[0].Quantity != 3 {
		t.Fatalf("cart = %#v, want single p1 line with quantity 3", snap.Cart)
	}
	if want := []string{"p1", "p2"}; !reflect.DeepEqual(snap.Wishlist, want) {
		t.Fatalf("wishlist = %v, want %v", snap.Wishlist, want)
	}
}

func TestNew_RestoredQuantitiesRespectCap(t *testing.T) {
	backend := storage.NewMemory()
	_ = backend.Set(CartKey, []byte(`[
		{"id":"p1","name":"Serum","price":200,"quantity":50},
		{"id":"p2","name":"Cream","price":500,"quantity":6},
		{"id":"p2","name":"Cream","price":500,"quantity":6}
	]`))

	snap := New(testCatalog(), backend, WithMaxQuantity(10)).Snapshot()
	if len(snap.Cart) != 2 {
		t.Fatalf("cart = %#v, want two lines", snap.Cart)
	}
	if got := snap.Cart[0].Quantity; got != 10 {
		t.Fatalf("p1 quantity = %d, want capped 10", got)
	}
	if got := snap.Cart[1].Quantity; got != 10 {
		t.Fatalf("merged p2 quantity = %d, want capped 10", got)
	}
}

func TestNew_CorruptStateStartsEmpty(t *testing.T) {
	var buf strings.Builder
	backend := storage.NewMemory()
	_ = backend.Set(CartKey, []byte("{not-json"))

	s := New(testCatalog(), backend, WithLogger(zerolog.New(&buf)))
	if len(s.Snapshot().Cart) != 0 {
		t.Fatalf("cart = %#v, want empty", s.Snapshot().Cart)
	}
	if !strings.Contains(buf.String(), "stored state is corrupt") {
		t.Fatalf("log = %q, want corrupt warning", buf.String())
	}
}

func TestStorageFailureKeepsInMemoryState(t *testing.T) {
	var buf strings.Builder
	backend := &failingBackend{setErr: errors.New("disk full"), getErr: errors.New("unreadable")}
	rec := &recorder{}

	s := New(testCatalog(), backend, WithLogger(zerolog.New(&buf)))
	s.Subscribe(rec)

	if err := s.AddToCart("p1", 1); err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}
	if s.ItemCount() != 1 {
		t.Fatalf("ItemCount = %d, want 1", s.ItemCount())
	}
	if len(rec.events) != 1 {
		t.Fatalf("observer notified %d times, want 1", len(rec.events))
	}
	if !strings.Contains(buf.String(), "persist state failed") {
		t.Fatalf("log = %q, want persist warning", buf.String())
	}
	if !strings.Contains(buf.String(), "read stored state failed") {
		t.Fatalf("log = %q, want read warning", buf.String())
	}
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s := New(testCatalog(), nil)
	_ = s.AddToCart("p1", 1)
	s.ToggleWishlist("p1")

	snap := s.Snapshot()
	snap.Cart[0].Quantity = 99
	snap.Wishlist[0] = "mutated"

	again := s.Snapshot()
	if again.Cart[0].Quantity != 1 || again.Wishlist[0] != "p1" {
		t.Fatalf("Snapshot should clone; got %#v", again)
	}
	if !again.InWishlist("p1") || !s.InWishlist("p1") {
		t.Fatalf("InWishlist(p1) = false, want true")
	}
}

func TestSubscribe_IgnoresNil(t *testing.T) {
	s := New(testCatalog(), nil)
	s.Subscribe(nil)
	_ = s.AddToCart("p1", 1)
}
