package logic

import (
	"fmt"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/store"
)

// Slot names a structural position in a primitive's rendered output, such
// as "root", "trigger", or "list". Accessibility props and interaction
// handlers are scoped per slot. Primitives declare their slots as typed
// constants.
type Slot string

// Props is a bag of accessibility attributes for one element slot, keyed by
// attribute name (e.g. "role", "aria-checked", "tabindex"). The runtime
// never interprets these values; adapters apply them to rendered elements.
type Props map[string]any

// Handler maps an event and its payload to the complete next state.
// Returning changed=false means the event leaves state untouched, in which
// case subscribers are not notified.
type Handler[S any] func(state S, payload any) (next S, changed bool)

// Resolver inspects a native input event and decides which semantic event,
// if any, it should fire. Returning ok=false suppresses dispatch.
type Resolver[S any, E ~string] func(state S, nativeEvent any) (event E, ok bool)

// PropsFunc computes the accessibility props for one slot from the current
// state. It must be a pure read.
type PropsFunc[S any] func(state S) Props

// Config describes a layer's behavior. All fields are optional; a zero
// Config yields a layer that ignores everything.
type Config[S any, E ~string] struct {
	// Events maps each semantic event to its state transition.
	Events map[E]Handler[S]

	// A11y maps each slot to its accessibility prop generator.
	A11y map[Slot]PropsFunc[S]

	// Interactions maps slot -> native event name -> resolver. The native
	// event names ("click", "keydown", ...) are whatever vocabulary the
	// hosting adapter dispatches.
	Interactions map[Slot]map[string]Resolver[S, E]

	// OnInitialize runs once per connection, with the bound store. Used,
	// for example, to subscribe internal state watchers.
	OnInitialize func(st *store.Store[S])

	// OnCleanup runs once when the layer is cleaned up or reconnected.
	OnCleanup func()
}

// Layer dispatches semantic events to state transitions and exposes
// per-slot accessibility metadata. Construct with New or [NewBuilder].
type Layer[S any, E ~string] struct {
	cfg         Config[S, E]
	store       *store.Store[S]
	initialized bool
}

// New creates a layer from cfg. The layer is disconnected until Connect
// is called.
func New[S any, E ~string](cfg Config[S, E]) *Layer[S, E] {
	return &Layer[S, E]{cfg: cfg}
}

// Connect binds the layer to st. If the layer is already connected, the old
// binding is cleaned up first. Safe to call multiple times.
func (l *Layer[S, E]) Connect(st *store.Store[S]) {
	if l.store != nil {
		l.Cleanup()
	}
	l.store = st
}

// Connected reports whether the layer is bound to a store.
func (l *Layer[S, E]) Connected() bool {
	return l.store != nil
}

// Initialize runs the configured OnInitialize callback once per connection.
// Calling it again without an intervening Cleanup is a no-op. Calling it
// before Connect is a no-op that does not mark the layer initialized.
func (l *Layer[S, E]) Initialize() {
	if l.store == nil || l.initialized {
		return
	}
	if l.cfg.OnInitialize != nil {
		l.cfg.OnInitialize(l.store)
	}
	l.initialized = true
}

// Cleanup runs the configured OnCleanup callback, unbinds the store, and
// returns the layer to the disconnected state. A second Cleanup without an
// intervening Initialize is a no-op. On a layer that was connected but
// never initialized, Cleanup only drops the store binding; since no
// OnInitialize ran there is nothing else to undo, and the result is
// indistinguishable from never having connected.
func (l *Layer[S, E]) Cleanup() {
	if !l.initialized {
		l.store = nil
		return
	}
	if l.cfg.OnCleanup != nil {
		l.cfg.OnCleanup()
	}
	l.store = nil
	l.initialized = false
}

// HandleEvent dispatches a semantic event. On a disconnected layer this
// warns through the errors handler and returns without touching any store.
// An event with no registered handler is silently ignored; that is the
// extensibility point that lets primitives ignore events they don't care
// about. Handler panics are not caught.
func (l *Layer[S, E]) HandleEvent(event E, payload any) {
	if l.store == nil {
		errors.Warn(&errors.Error{
			Op:   "logic.HandleEvent",
			Kind: errors.KindLifecycle,
			Err:  fmt.Errorf("event %q dispatched on a disconnected logic layer", string(event)),
		})
		return
	}
	h, ok := l.cfg.Events[event]
	if !ok {
		return
	}
	next, changed := h(l.store.GetState(), payload)
	if !changed {
		return
	}
	l.store.SetState(func(S) S { return next })
}

// A11yProps returns the accessibility props for slot computed from current
// state, or an empty Props when the layer is disconnected or the slot has
// no generator. Pure read.
func (l *Layer[S, E]) A11yProps(slot Slot) Props {
	if l.store == nil {
		return Props{}
	}
	fn := l.cfg.A11y[slot]
	if fn == nil {
		return Props{}
	}
	return fn(l.store.GetState())
}

// InteractionHandlers returns, for each native event name configured on
// slot, a wrapper that resolves the semantic event and dispatches it
// through HandleEvent. Adapters wire these wrappers onto rendered elements
// without any primitive-specific knowledge.
//
// The wrappers remain safe if the layer is cleaned up after they were
// built: they degrade to no-ops.
func (l *Layer[S, E]) InteractionHandlers(slot Slot) map[string]func(nativeEvent any) {
	out := make(map[string]func(any))
	if l.store == nil {
		return out
	}
	for name, resolve := range l.cfg.Interactions[slot] {
		resolve := resolve
		out[name] = func(nativeEvent any) {
			if l.store == nil {
				return
			}
			if event, ok := resolve(l.store.GetState(), nativeEvent); ok {
				l.HandleEvent(event, nativeEvent)
			}
		}
	}
	return out
}
