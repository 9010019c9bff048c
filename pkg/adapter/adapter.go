// Package adapter defines the contract between component cores and the
// renderer adapters that bind them to a concrete UI framework.
//
// An adapter is any implementation of [Adapter] — a duck-typed capability
// set, not a class hierarchy. One required method turns a component core
// into a framework-native component; the optional [Optimizer] hook is
// detected by type assertion, so arbitrarily many rendering targets can be
// supported without modifying the core.
package adapter

import (
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
)

// StateSource is the type-erased view of a component's store that adapters
// consume: read the snapshot for the initial render, subscribe to re-render
// on change.
type StateSource interface {
	// GetState returns the current state snapshot.
	GetState() any
	// Subscribe registers fn for every state commit and returns an
	// unsubscribe function.
	Subscribe(fn func(any)) (unsubscribe func())
}

// LogicSource is the type-erased view of a component's logic layer that
// adapters consume: per-slot accessibility props and interaction handlers.
type LogicSource interface {
	// A11yProps returns the accessibility attributes for one slot.
	A11yProps(slot logic.Slot) logic.Props
	// InteractionHandlers returns, per native event name, the handler an
	// adapter wires onto the rendered element for one slot.
	InteractionHandlers(slot logic.Slot) map[string]func(nativeEvent any)
}

// Core is the adapter-facing view of a component core. An adapter must, at
// minimum, read State().GetState() for the initial render, subscribe for
// changes, and wire A11yProps and InteractionHandlers onto each slot listed
// in Metadata().Structure.Elements.
type Core interface {
	// ID returns the unique instance id, usable for ARIA relationships.
	ID() string
	// Metadata returns the primitive's descriptive record.
	Metadata() metadata.Metadata
	// State returns the observable state view.
	State() StateSource
	// Logic returns the accessibility/interaction view.
	Logic() LogicSource
	// OnDisconnect registers a cleanup to run when the core is destroyed.
	// Adapters use this to release subscriptions and buffers.
	OnDisconnect(fn func())
}

// Adapter binds component cores to one rendering framework.
type Adapter interface {
	// Name identifies the adapter (e.g. "tui") in errors and registries.
	Name() string
	// Version is the adapter's semantic version.
	Version() string
	// CreateComponent wraps core into a framework-native component. The
	// returned value's type is adapter-defined.
	CreateComponent(core Core) (component any, err error)
}

// Optimizer is the optional post-processing hook. When an adapter also
// implements Optimizer, the core pipes every created component through
// Optimize before returning it.
type Optimizer interface {
	Optimize(component any) any
}
