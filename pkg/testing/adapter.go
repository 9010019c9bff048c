package testing

import (
	"github.com/go-loom/loom/pkg/adapter"
)

// Rendered is what RecordingAdapter produces for each connected core: the
// adapter-facing core view plus the state snapshot taken at connect time.
type Rendered struct {
	Core           adapter.Core
	InitialState   any
	OptimizePassed bool
}

// RecordingAdapter is an adapter test double. It records every core handed
// to CreateComponent and can be primed to fail or panic, for exercising
// connect error paths.
type RecordingAdapter struct {
	// AdapterName overrides the reported name; defaults to "recording".
	AdapterName string
	// Err, when set, is returned from every CreateComponent call.
	Err error
	// PanicWith, when non-nil, is raised from every CreateComponent call.
	PanicWith any

	// Created lists each successful CreateComponent call in order.
	Created []*Rendered
	// OptimizeCalls counts Optimize invocations.
	OptimizeCalls int
}

// Name implements adapter.Adapter.
func (a *RecordingAdapter) Name() string {
	if a.AdapterName != "" {
		return a.AdapterName
	}
	return "recording"
}

// Version implements adapter.Adapter.
func (a *RecordingAdapter) Version() string { return "0.0.0" }

// CreateComponent records the core and returns a *Rendered, or fails as
// primed.
func (a *RecordingAdapter) CreateComponent(core adapter.Core) (any, error) {
	if a.PanicWith != nil {
		panic(a.PanicWith)
	}
	if a.Err != nil {
		return nil, a.Err
	}
	r := &Rendered{Core: core, InitialState: core.State().GetState()}
	a.Created = append(a.Created, r)
	return r, nil
}

// Optimize implements adapter.Optimizer by counting calls and marking the
// component as having passed through.
func (a *RecordingAdapter) Optimize(component any) any {
	a.OptimizeCalls++
	if r, ok := component.(*Rendered); ok {
		r.OptimizePassed = true
	}
	return component
}
