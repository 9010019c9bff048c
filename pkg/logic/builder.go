package logic

import "github.com/go-loom/loom/pkg/store"

// Builder is a fluent construction path for [Layer], equivalent to filling
// in a [Config] by hand.
//
// Example:
//
//	layer := logic.NewBuilder[counterState, counterEvent]().
//	    OnEvent(eventIncrement, increment).
//	    WithA11y(slotRoot, rootProps).
//	    WithInteraction(slotRoot, "click", resolveClick).
//	    Build()
type Builder[S any, E ~string] struct {
	cfg Config[S, E]
}

// NewBuilder creates an empty layer builder.
func NewBuilder[S any, E ~string]() *Builder[S, E] {
	return &Builder[S, E]{}
}

// OnEvent registers the handler for one semantic event. Registering the
// same event again replaces the previous handler.
func (b *Builder[S, E]) OnEvent(event E, h Handler[S]) *Builder[S, E] {
	if b.cfg.Events == nil {
		b.cfg.Events = make(map[E]Handler[S])
	}
	b.cfg.Events[event] = h
	return b
}

// WithA11y registers the accessibility prop generator for one slot.
func (b *Builder[S, E]) WithA11y(slot Slot, fn PropsFunc[S]) *Builder[S, E] {
	if b.cfg.A11y == nil {
		b.cfg.A11y = make(map[Slot]PropsFunc[S])
	}
	b.cfg.A11y[slot] = fn
	return b
}

// WithInteraction registers a resolver for one native event on one slot.
func (b *Builder[S, E]) WithInteraction(slot Slot, nativeEvent string, r Resolver[S, E]) *Builder[S, E] {
	if b.cfg.Interactions == nil {
		b.cfg.Interactions = make(map[Slot]map[string]Resolver[S, E])
	}
	if b.cfg.Interactions[slot] == nil {
		b.cfg.Interactions[slot] = make(map[string]Resolver[S, E])
	}
	b.cfg.Interactions[slot][nativeEvent] = r
	return b
}

// OnInitialize sets the callback run once per store connection.
func (b *Builder[S, E]) OnInitialize(fn func(st *store.Store[S])) *Builder[S, E] {
	b.cfg.OnInitialize = fn
	return b
}

// OnCleanup sets the callback run when the layer is cleaned up.
func (b *Builder[S, E]) OnCleanup(fn func()) *Builder[S, E] {
	b.cfg.OnCleanup = fn
	return b
}

// Build constructs the layer. A layer has no required configuration, so
// Build always succeeds.
func (b *Builder[S, E]) Build() *Layer[S, E] {
	return New(b.cfg)
}
