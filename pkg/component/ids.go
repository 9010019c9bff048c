package component

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource generates unique instance ids for component cores. It is an
// explicit value owned by factory configuration rather than a module-level
// counter, so tests can isolate it and multiple independent apps hosted in
// one process don't leak a shared sequence.
type IDSource interface {
	// NextID returns a fresh id scoped to the given component name.
	NextID(component string) string
}

type uuidSource struct{}

// NewUUIDSource returns the default IDSource, producing ids of the form
// "button-6ba7b810-...". Collision-free across processes, suitable for
// server rendering.
func NewUUIDSource() IDSource {
	return uuidSource{}
}

func (uuidSource) NextID(component string) string {
	return component + "-" + uuid.NewString()
}

// SequenceSource is a deterministic IDSource backed by an atomic counter.
// Intended for tests and snapshot-stable output.
type SequenceSource struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceSource returns a SequenceSource. Ids take the form
// "<prefix><component>-<n>" with n starting at 1.
func NewSequenceSource(prefix string) *SequenceSource {
	return &SequenceSource{prefix: prefix}
}

// NextID returns the next id in the sequence.
func (s *SequenceSource) NextID(component string) string {
	return fmt.Sprintf("%s%s-%d", s.prefix, component, s.n.Add(1))
}

// Reset restarts the sequence at 1.
func (s *SequenceSource) Reset() {
	s.n.Store(0)
}
