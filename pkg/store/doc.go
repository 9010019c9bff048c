// Package store provides the minimal observable state container that every
// Loom primitive is built on.
//
// A [Store] holds a single typed snapshot of component state and exposes
// exactly three operations: read the snapshot, commit a new snapshot, and
// subscribe to commits. There are no selectors, no batching windows, and no
// asynchronous delivery. The store is deliberately the simplest possible
// observable value so that every renderer adapter can bridge it into its own
// reactivity model with a one-line subscription.
//
// Behavioral complexity belongs in package logic, not here.
//
// # Updates are total
//
// [Store.SetState] accepts only a function that produces the complete next
// state from the previous one, and [Store.Replace] accepts only a complete
// value of the state type. There is no partial-object merge form: a partial
// update that silently drops unrelated fields cannot be expressed.
//
// # Threading
//
// Stores are NOT thread-safe. All mutation must happen on the single thread
// that drives the hosting UI runtime, which is also the model the rest of
// the framework assumes.
package store
