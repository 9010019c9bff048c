// Package button implements the headless button primitive.
//
// Button is the simplest consumer of the component core: one slot, a small
// press/focus state machine, and no structural children. A press is
// recorded by incrementing State.Presses, so hosts observe activations by
// subscribing to the store rather than through callbacks.
package button

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the button's closed event vocabulary.
type Event string

const (
	// EventPress records one activation.
	EventPress Event = "press"
	// EventPressStart marks the control as held down.
	EventPressStart Event = "pressStart"
	// EventPressEnd releases a held control.
	EventPressEnd Event = "pressEnd"
	// EventFocus gives the control keyboard focus.
	EventFocus Event = "focus"
	// EventBlur removes keyboard focus.
	EventBlur Event = "blur"
)

// SlotRoot is the single interactive element.
const SlotRoot = logic.Slot("root")

// State is the button's complete state snapshot.
type State struct {
	// Presses counts activations since instantiation.
	Presses int
	// Pressed is true while the control is held down.
	Pressed bool
	// Focused is true while the control has keyboard focus.
	Focused bool
	// Disabled disables interaction.
	Disabled bool
	// Label is the accessible name.
	Label string
}

// Options configures a button instance.
type Options struct {
	// Label is the accessible name.
	Label string
	// Disabled disables interaction from the start.
	Disabled bool
}

// Metadata returns the button's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"button"},
			Role:      "button",
			Label:     "visible text or aria-label",
			ARIAAttributes: map[string]string{
				"aria-disabled": "present while disabled",
				"aria-pressed":  "present while held down",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventPress), string(EventPressStart), string(EventPressEnd),
				string(EventFocus), string(EventBlur),
			},
			Required: []string{string(EventPress)},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotRoot: {Type: "button", Role: "button"},
			},
			Variants: []string{"primary", "secondary", "ghost"},
			Sizes:    []string{"sm", "md", "lg"},
		},
	}
}

func newLogic(st *store.Store[State], _ Options) *logic.Layer[State, Event] {
	return logic.NewBuilder[State, Event]().
		OnEvent(EventPress, func(s State, _ any) (State, bool) {
			if s.Disabled {
				return s, false
			}
			s.Presses++
			return s, true
		}).
		OnEvent(EventPressStart, func(s State, _ any) (State, bool) {
			if s.Disabled || s.Pressed {
				return s, false
			}
			s.Pressed = true
			return s, true
		}).
		OnEvent(EventPressEnd, func(s State, _ any) (State, bool) {
			if !s.Pressed {
				return s, false
			}
			s.Pressed = false
			return s, true
		}).
		OnEvent(EventFocus, func(s State, _ any) (State, bool) {
			if s.Disabled || s.Focused {
				return s, false
			}
			s.Focused = true
			return s, true
		}).
		OnEvent(EventBlur, func(s State, _ any) (State, bool) {
			if !s.Focused {
				return s, false
			}
			s.Focused = false
			s.Pressed = false
			return s, true
		}).
		WithA11y(SlotRoot, func(s State) logic.Props {
			props := logic.Props{
				"role":     "button",
				"tabindex": 0,
			}
			if s.Label != "" {
				props["aria-label"] = s.Label
			}
			if s.Disabled {
				props["aria-disabled"] = true
				props["tabindex"] = -1
			}
			if s.Pressed {
				props["aria-pressed"] = true
			}
			return props
		}).
		WithInteraction(SlotRoot, "click", func(s State, _ any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			return EventPress, true
		}).
		WithInteraction(SlotRoot, "pointerdown", func(s State, _ any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			return EventPressStart, true
		}).
		WithInteraction(SlotRoot, "pointerup", func(s State, _ any) (Event, bool) {
			return EventPressEnd, true
		}).
		WithInteraction(SlotRoot, "keydown", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			if key, ok := ev.(string); ok && (key == "enter" || key == " ") {
				return EventPress, true
			}
			return "", false
		}).
		WithInteraction(SlotRoot, "focus", func(s State, _ any) (Event, bool) {
			return EventFocus, true
		}).
		WithInteraction(SlotRoot, "blur", func(s State, _ any) (Event, bool) {
			return EventBlur, true
		}).
		Build()
}

var factory = component.New(component.Config[State, Event, Options]{
	Name: "Button",
	NewState: func(opts Options) State {
		return State{Label: opts.Label, Disabled: opts.Disabled}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a button core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
