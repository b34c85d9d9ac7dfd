package state

// EventKind says which collection a mutation touched.
type EventKind int

const (
	CartChanged EventKind = iota
	WishlistChanged
)

func (k EventKind) String() string {
	switch k {
	case CartChanged:
		return "cart"
	case WishlistChanged:
		return "wishlist"
	default:
		return "unknown"
	}
}

// Event describes a completed, persisted mutation.
type Event struct {
	Kind      EventKind
	ProductID string
}

// Observer is notified after each mutation. Observers run synchronously on
// the mutating goroutine and must not mutate the Store themselves.
type Observer interface {
	StateChanged(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// StateChanged calls f(ev).
func (f ObserverFunc) StateChanged(ev Event) { f(ev) }

func (s *Store) notify(ev Event) {
	s.obsMu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.obsMu.RUnlock()

	for _, o := range observers {
		o.StateChanged(ev)
	}
}
