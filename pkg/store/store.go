package store

// Readable is the read-only capability set shared by [Store] and [Derived].
// Adapters and derived stores accept Readable so they can observe state
// without being able to commit to it.
type Readable[T any] interface {
	// GetState returns the most recently committed snapshot.
	GetState() T
	// Subscribe registers fn to be invoked on every commit and returns an
	// unsubscribe function that removes exactly this registration.
	Subscribe(fn func(T)) (unsubscribe func())
}

// subscription pairs a listener with the id its unsubscribe closure removes.
type subscription[T any] struct {
	id int
	fn func(T)
}

// Store holds the current state snapshot for one component instance and
// notifies subscribers synchronously on every commit.
//
// Store is NOT thread-safe. It must only be used from the UI thread.
type Store[T any] struct {
	value  T
	subs   []subscription[T]
	nextID int

	// notification bookkeeping, see SetState
	notifying bool
	queue     []T
}

// New creates a store holding the given initial state.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// GetState returns the most recently committed state. It never observes a
// stale value: a synchronous SetState call commits before it returns.
func (s *Store[T]) GetState() T {
	return s.value
}

// SetState commits the state produced by update(previous) and synchronously
// notifies every current subscriber with the new value, in subscription
// order.
//
// update must be a pure function of the previous state. If update panics,
// the panic propagates to the caller and nothing is committed beyond the
// updates that already ran.
//
// Reentrancy: a SetState call made from inside a subscriber does not
// recurse. The nested commit takes effect immediately (GetState sees it),
// but its notification pass is queued and delivered by the outermost
// SetState call after the current pass completes. Every commit is delivered
// to every subscriber exactly once, in commit order.
func (s *Store[T]) SetState(update func(T) T) {
	s.value = update(s.value)
	s.queue = append(s.queue, s.value)

	if s.notifying {
		return
	}
	s.notifying = true
	defer func() { s.notifying = false }()

	for len(s.queue) > 0 {
		v := s.queue[0]
		s.queue = s.queue[1:]

		// Snapshot the subscriber list so that listeners added or removed
		// during this pass do not skip or double-deliver. A listener
		// removed mid-pass still receives this value; one added mid-pass
		// first fires on the next commit.
		subs := make([]subscription[T], len(s.subs))
		copy(subs, s.subs)
		for _, sub := range subs {
			sub.fn(v)
		}
	}
}

// Replace commits value directly. Because T is the complete state type, a
// Replace can never drop fields the caller did not mention.
func (s *Store[T]) Replace(value T) {
	s.SetState(func(T) T { return value })
}

// Subscribe registers fn to be invoked with the new state after every
// commit. The returned function removes exactly this registration and is
// safe to call more than once.
//
// Subscribing the same function value twice yields two independent
// registrations, each removable only through its own unsubscribe.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of active subscriptions. Intended for
// tests and diagnostics.
func (s *Store[T]) ListenerCount() int {
	return len(s.subs)
}
