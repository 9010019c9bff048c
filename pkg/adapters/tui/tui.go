// Package tui renders component cores in the terminal with bubbletea.
//
// The adapter wraps any core into a [Model], a tea.Model that re-renders on
// every state commit, routes key presses into the core's interaction
// handlers, and prints each slot with its live accessibility attributes.
// It exists both as a usable rendering target and as the reference for how
// an adapter for any other framework is written: read the snapshot,
// subscribe, wire the slots, release everything on disconnect.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-loom/loom/pkg/adapter"
)

// Version is the adapter's semantic version.
const Version = "1.0.0"

// Styles controls the adapter's terminal rendering.
type Styles struct {
	Title   lipgloss.Style
	Slot    lipgloss.Style
	Focused lipgloss.Style
	Props   lipgloss.Style
	State   lipgloss.Style
	Frame   lipgloss.Style
}

// DefaultStyles returns the adapter's stock look.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Slot:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Props:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		State:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
	}
}

// Adapter binds component cores to bubbletea. The zero value is not usable;
// construct with [New].
type Adapter struct {
	styles Styles
}

// New returns a terminal adapter using the default styles.
func New() *Adapter {
	return &Adapter{styles: DefaultStyles()}
}

// NewWithStyles returns a terminal adapter with custom styles.
func NewWithStyles(styles Styles) *Adapter {
	return &Adapter{styles: styles}
}

// Name identifies the adapter in errors and registries.
func (a *Adapter) Name() string { return "tui" }

// Version returns the adapter's semantic version.
func (a *Adapter) Version() string { return Version }

// CreateComponent wraps core into a [*Model]. The model subscribes to the
// core's store immediately; the subscription is released when the core is
// destroyed.
func (a *Adapter) CreateComponent(core adapter.Core) (any, error) {
	meta := core.Metadata()
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("metadata for %q: %w", meta.Name, err)
	}
	return newModel(core, a.styles), nil
}

// Optimize precomputes the static parts of the model's view. Rendering the
// title and frame chrome does not depend on state, so doing it once per
// component keeps the per-commit View cost down.
func (a *Adapter) Optimize(component any) any {
	if m, ok := component.(*Model); ok {
		m.renderHeader()
	}
	return component
}
