// Package loom is the top-level entry point for the loom component core.
//
// The building blocks live in their own packages: pkg/store for observable
// state, pkg/logic for the event and accessibility layer, pkg/component for
// the factory that ties them together, pkg/adapter for the renderer
// contract, and pkg/primitives for the shipped headless components. This
// package carries the pieces most hosts want in one import.
package loom

import (
	"github.com/go-loom/loom/pkg/adapter"
	"github.com/go-loom/loom/pkg/adapters/tui"
)

// Version is the library's semantic version.
const Version = "0.1.0"

// NewRegistry returns an adapter registry preloaded with the adapters that
// ship with the library.
func NewRegistry() *adapter.Registry {
	r := adapter.NewRegistry()
	// The terminal adapter always registers cleanly.
	_ = r.Register(tui.New())
	return r
}
