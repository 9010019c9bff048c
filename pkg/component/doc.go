// Package component wires stores, logic layers, and metadata into component
// cores, and connects cores to renderer adapters.
//
// The factory returned by [New] is the single choke point that guarantees
// every component instance, regardless of primitive, is assembled
// identically before an adapter ever sees it: initial state computed, store
// created, logic constructed, connected, and initialized. That uniformity
// is what lets N primitives be rendered by M adapters without per-pair glue
// code.
//
// A [Core] may be connected to any number of adapters simultaneously; all
// connections share the one store, so every render of the same logical
// component stays in sync.
package component
