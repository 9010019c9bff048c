package component

import (
	"fmt"

	"github.com/go-loom/loom/pkg/adapter"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Core is one live instance of a primitive: a store, a logic layer already
// connected and initialized against that store, and the primitive's
// metadata. Cores are produced by the factory returned from [New].
type Core[S any, E ~string] struct {
	id        string
	store     *store.Store[S]
	logic     *logic.Layer[S, E]
	meta      metadata.Metadata
	onDestroy func()

	cleanups  []func()
	destroyed bool
}

// ID returns the unique instance id assigned by the factory's IDSource.
func (c *Core[S, E]) ID() string {
	return c.id
}

// State returns the core's store.
func (c *Core[S, E]) State() *store.Store[S] {
	return c.store
}

// Logic returns the core's logic layer.
func (c *Core[S, E]) Logic() *logic.Layer[S, E] {
	return c.logic
}

// Metadata returns the core's descriptive record.
func (c *Core[S, E]) Metadata() metadata.Metadata {
	return c.meta
}

// OnDisconnect registers a cleanup to run when the core is destroyed.
// Adapters use this to release subscriptions tied to a connection. Each
// cleanup runs at most once, in reverse registration order.
func (c *Core[S, E]) OnDisconnect(fn func()) {
	if fn == nil {
		return
	}
	if c.destroyed {
		fn()
		return
	}
	c.cleanups = append(c.cleanups, fn)
}

// Connect hands the core to an adapter and returns whatever framework
// component the adapter produces. The core itself is not mutated; Connect
// may be called any number of times with different adapters, and every
// resulting render shares this core's store.
//
// Adapter failures — returned errors and panics alike — come back wrapped
// in an error naming both the primitive and the adapter, so a failure in an
// N-primitives x M-adapters matrix is attributable at a glance. If the
// adapter implements [adapter.Optimizer], the component is piped through
// Optimize before being returned.
func (c *Core[S, E]) Connect(a adapter.Adapter) (component any, err error) {
	if c.destroyed {
		return nil, &errors.Error{
			Op:        "component.Connect",
			Kind:      errors.KindLifecycle,
			Component: c.meta.Name,
			Adapter:   a.Name(),
			Err:       fmt.Errorf("core has been destroyed"),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.NewAdapterError("component.Connect", c.meta.Name, a.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	component, err = a.CreateComponent(c.adapterView())
	if err != nil {
		return nil, errors.NewAdapterError("component.Connect", c.meta.Name, a.Name(), err)
	}
	if opt, ok := a.(adapter.Optimizer); ok {
		component = opt.Optimize(component)
	}
	return component, nil
}

// Destroy tears the core down: logic cleanup, adapter-registered cleanups
// in reverse order, then the factory's onDestroy callback. Destroy is
// idempotent; after it returns, Connect fails with a lifecycle error.
func (c *Core[S, E]) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	c.logic.Cleanup()
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		c.cleanups[i]()
	}
	c.cleanups = nil
	if c.onDestroy != nil {
		c.onDestroy()
	}
}

// adapterView returns the type-erased view of the core handed to adapters.
func (c *Core[S, E]) adapterView() adapter.Core {
	return coreView[S, E]{c}
}

// coreView adapts Core's typed surface to the adapter.Core interface.
type coreView[S any, E ~string] struct {
	c *Core[S, E]
}

func (v coreView[S, E]) ID() string                  { return v.c.id }
func (v coreView[S, E]) Metadata() metadata.Metadata { return v.c.meta }
func (v coreView[S, E]) State() adapter.StateSource  { return stateView[S]{v.c.store} }
func (v coreView[S, E]) Logic() adapter.LogicSource  { return v.c.logic }
func (v coreView[S, E]) OnDisconnect(fn func())      { v.c.OnDisconnect(fn) }

// stateView erases a store's state type for adapter consumption.
type stateView[S any] struct {
	st *store.Store[S]
}

func (v stateView[S]) GetState() any {
	return v.st.GetState()
}

func (v stateView[S]) Subscribe(fn func(any)) (unsubscribe func()) {
	return v.st.Subscribe(func(s S) { fn(s) })
}
