// Package testing provides component test support: a tester that drives a
// core through events while recording every state commit, and a recording
// adapter for asserting on connect behavior.
package testing

import (
	"testing"

	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/store"
)

// ComponentTester drives one component core in a test. It subscribes to the
// core's store on construction, so every commit made through Dispatch (or
// directly through the core) lands in States in order.
type ComponentTester[S any, E ~string] struct {
	core        *component.Core[S, E]
	states      []S
	unsubscribe func()
}

// NewComponentTester wraps core and registers cleanup: the subscription is
// released and the core destroyed via t.Cleanup.
func NewComponentTester[S any, E ~string](t *testing.T, core *component.Core[S, E]) *ComponentTester[S, E] {
	ct := &ComponentTester[S, E]{core: core}
	ct.unsubscribe = core.State().Subscribe(func(s S) {
		ct.states = append(ct.states, s)
	})
	t.Cleanup(func() {
		ct.unsubscribe()
		core.Destroy()
	})
	return ct
}

// Core returns the wrapped core.
func (ct *ComponentTester[S, E]) Core() *component.Core[S, E] {
	return ct.core
}

// Dispatch feeds one event into the core's logic layer.
func (ct *ComponentTester[S, E]) Dispatch(event E, payload any) {
	ct.core.Logic().HandleEvent(event, payload)
}

// Interact invokes the named interaction handler on a slot, as an adapter
// would for a native event.
func (ct *ComponentTester[S, E]) Interact(slot logic.Slot, interaction string, nativeEvent any) {
	if handler, ok := ct.core.Logic().InteractionHandlers(slot)[interaction]; ok {
		handler(nativeEvent)
	}
}

// State returns the current state snapshot.
func (ct *ComponentTester[S, E]) State() S {
	return ct.core.State().GetState()
}

// States returns every state commit observed since construction, oldest
// first.
func (ct *ComponentTester[S, E]) States() []S {
	return ct.states
}

// CommitCount returns the number of state commits observed.
func (ct *ComponentTester[S, E]) CommitCount() int {
	return len(ct.states)
}

// Store exposes the underlying store for tests that need to commit state
// outside the event vocabulary.
func (ct *ComponentTester[S, E]) Store() *store.Store[S] {
	return ct.core.State()
}
