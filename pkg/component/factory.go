package component

import (
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// DefaultVersion is assigned to factories that don't specify a version.
const DefaultVersion = "1.0.0"

// Config describes one primitive to the factory. Name, NewState, NewLogic,
// and Metadata are required; the validating construction path is
// [NewBuilder], which refuses to build without them.
type Config[S any, E ~string, O any] struct {
	// Name is the primitive name, stamped into metadata and errors.
	Name string

	// Version is the primitive version; DefaultVersion when empty.
	Version string

	// NewState computes the initial state from instantiation options.
	// It must be pure.
	NewState func(opts O) S

	// NewLogic constructs the primitive's logic layer. The store is
	// provided for handlers that need to subscribe internal watchers;
	// the factory performs Connect and Initialize itself.
	NewLogic func(st *store.Store[S], opts O) *logic.Layer[S, E]

	// Metadata is the primitive's descriptive record. Name and Version
	// are overwritten by the fields above during assembly.
	Metadata metadata.Metadata

	// OnDestroy, if set, runs at the end of Core.Destroy.
	OnDestroy func()

	// IDs generates instance ids; NewUUIDSource() when nil.
	IDs IDSource
}

// Factory instantiates cores for one primitive.
type Factory[S any, E ~string, O any] func(opts O) *Core[S, E]

// New returns the instantiation function for a primitive. Every invocation
// performs the same wiring sequence:
//
//  1. initial state from cfg.NewState(opts)
//  2. fresh store holding that state
//  3. logic layer from cfg.NewLogic
//  4. logic.Connect(store), logic.Initialize()
//  5. metadata assembled with the factory's name and version
//
// so a core handed to an adapter is always fully initialized.
func New[S any, E ~string, O any](cfg Config[S, E, O]) Factory[S, E, O] {
	ids := cfg.IDs
	if ids == nil {
		ids = NewUUIDSource()
	}
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	return func(opts O) *Core[S, E] {
		st := store.New(cfg.NewState(opts))
		lg := cfg.NewLogic(st, opts)
		lg.Connect(st)
		lg.Initialize()

		meta := cfg.Metadata
		meta.Name = cfg.Name
		meta.Version = version

		return &Core[S, E]{
			id:        ids.NextID(cfg.Name),
			store:     st,
			logic:     lg,
			meta:      meta,
			onDestroy: cfg.OnDestroy,
		}
	}
}
