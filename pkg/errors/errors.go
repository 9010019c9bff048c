// Package errors provides structured error handling for the Loom runtime.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid factory or builder configuration.
	KindConfig
	// KindAdapter indicates a failure inside a renderer adapter.
	KindAdapter
	// KindLifecycle indicates a component lifecycle misuse, such as
	// dispatching an event on a disconnected logic layer.
	KindLifecycle
	// KindHandler is reserved for failures originating in user-supplied
	// event handlers. The runtime itself never recovers handler panics
	// (they propagate to the dispatching call site); host error
	// boundaries that do catch them report under this kind.
	KindHandler
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAdapter:
		return "adapter"
	case KindLifecycle:
		return "lifecycle"
	case KindHandler:
		return "handler"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Loom runtime.
type Error struct {
	// Op is the operation that failed (e.g., "component.Connect").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Component is the primitive name, if applicable.
	Component string
	// Adapter is the adapter name, if applicable.
	Adapter string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", e.Op, e.Kind)
	if e.Component != "" {
		fmt.Fprintf(&b, " component=%s", e.Component)
	}
	if e.Adapter != "" {
		fmt.Fprintf(&b, " adapter=%s", e.Adapter)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewAdapterError wraps an error raised inside adapter.CreateComponent so
// that a failed primitive/adapter pairing is attributable: the message
// names both the primitive and the adapter and preserves the original
// error text.
func NewAdapterError(op, component, adapter string, err error) *Error {
	return &Error{
		Op:        op,
		Kind:      KindAdapter,
		Component: component,
		Adapter:   adapter,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// ConfigError reports a builder invoked without its required fields. It is
// raised synchronously at construction time because it represents a
// programmer mistake that must never reach runtime.
type ConfigError struct {
	// Builder is the builder that failed (e.g., "component.Builder").
	Builder string
	// Missing lists the required fields that were not supplied.
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Builder, strings.Join(e.Missing, ", "))
}
