package component

import (
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Builder is the validating construction path for a component factory.
// Unlike [New], Build refuses to produce a factory unless the name, initial
// state constructor, logic constructor, and metadata have all been
// supplied, surfacing programmer mistakes at bootstrap rather than at
// first render.
type Builder[S any, E ~string, O any] struct {
	cfg     Config[S, E, O]
	metaSet bool
}

// NewBuilder creates an empty factory builder.
func NewBuilder[S any, E ~string, O any]() *Builder[S, E, O] {
	return &Builder[S, E, O]{}
}

// WithName sets the primitive name.
func (b *Builder[S, E, O]) WithName(name string) *Builder[S, E, O] {
	b.cfg.Name = name
	return b
}

// WithVersion sets the primitive version. Defaults to DefaultVersion.
func (b *Builder[S, E, O]) WithVersion(version string) *Builder[S, E, O] {
	b.cfg.Version = version
	return b
}

// WithInitialState sets the initial state constructor.
func (b *Builder[S, E, O]) WithInitialState(fn func(opts O) S) *Builder[S, E, O] {
	b.cfg.NewState = fn
	return b
}

// WithLogic sets the logic layer constructor.
func (b *Builder[S, E, O]) WithLogic(fn func(st *store.Store[S], opts O) *logic.Layer[S, E]) *Builder[S, E, O] {
	b.cfg.NewLogic = fn
	return b
}

// WithMetadata sets the descriptive record.
func (b *Builder[S, E, O]) WithMetadata(m metadata.Metadata) *Builder[S, E, O] {
	b.cfg.Metadata = m
	b.metaSet = true
	return b
}

// WithCleanup sets the callback run at the end of Core.Destroy.
func (b *Builder[S, E, O]) WithCleanup(fn func()) *Builder[S, E, O] {
	b.cfg.OnDestroy = fn
	return b
}

// WithIDSource sets the instance id generator.
func (b *Builder[S, E, O]) WithIDSource(ids IDSource) *Builder[S, E, O] {
	b.cfg.IDs = ids
	return b
}

// Build validates the configuration and returns the factory. The error is
// a *errors.ConfigError naming every missing required field.
func (b *Builder[S, E, O]) Build() (Factory[S, E, O], error) {
	var missing []string
	if b.cfg.Name == "" {
		missing = append(missing, "name")
	}
	if b.cfg.NewState == nil {
		missing = append(missing, "initial state constructor")
	}
	if b.cfg.NewLogic == nil {
		missing = append(missing, "logic constructor")
	}
	if !b.metaSet {
		missing = append(missing, "metadata")
	}
	if len(missing) > 0 {
		return nil, &errors.ConfigError{Builder: "component.Builder", Missing: missing}
	}
	return New(b.cfg), nil
}
