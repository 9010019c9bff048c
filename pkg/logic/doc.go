// Package logic implements the behavioral layer that sits between a store
// and a primitive's semantic events.
//
// A [Layer] is pure configuration at construction time: a table of event
// handlers, per-slot accessibility prop generators, and per-slot interaction
// resolvers. It is bound to a store only when [Layer.Connect] is called,
// which decouples "what behavior exists" from "what data it operates on" and
// lets the same configuration be exercised against mock stores in tests.
//
// # Closed event types
//
// Layers are generic over the primitive's event type E, a defined string
// type declared by each primitive (for example button.Event with constants
// button.EventPress). Handler tables, interaction resolvers, and dispatch
// sites are all keyed by E, so a misspelled event name is a compile error
// rather than a silent runtime no-op.
//
// # Fail-soft lifecycle
//
// A layer has exactly two observable lifecycle states: disconnected
// (initial, and after [Layer.Cleanup]) and connected. While disconnected,
// [Layer.HandleEvent] warns and returns, and the prop/handler getters return
// empty results. None of them panic: UI code must never crash a render pass
// over a lifecycle race. Errors raised by user-supplied handlers are NOT
// caught here; they propagate to whatever dispatched the event.
package logic
