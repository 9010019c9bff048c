package store

// Derived is a read-through store whose value is recomputed from a source
// store via a selector whenever the source commits. Its own subscribers are
// notified after recomputation, so they always observe the derived value
// that corresponds to the source commit that triggered them.
//
// Derived satisfies [Readable] but offers no way to commit state of its own.
type Derived[T, U any] struct {
	out    *Store[U]
	detach func()
}

// Derive creates a derived store over src. The selector runs once
// immediately so GetState is valid from the moment Derive returns.
func Derive[T, U any](src Readable[T], selector func(T) U) *Derived[T, U] {
	d := &Derived[T, U]{out: New(selector(src.GetState()))}
	d.detach = src.Subscribe(func(v T) {
		d.out.Replace(selector(v))
	})
	return d
}

// GetState returns the derived value for the most recent source commit.
func (d *Derived[T, U]) GetState() U {
	return d.out.GetState()
}

// Subscribe registers fn to be invoked with the recomputed value after each
// source commit. Returns an unsubscribe function for this registration.
func (d *Derived[T, U]) Subscribe(fn func(U)) (unsubscribe func()) {
	return d.out.Subscribe(fn)
}

// Detach unhooks the derived store from its source. After Detach the
// derived value is frozen and its subscribers receive no further
// notifications. Safe to call more than once.
func (d *Derived[T, U]) Detach() {
	d.detach()
}
