// Package toggle implements the headless switch primitive.
//
// Unlike checkbox, a switch is strictly binary (no indeterminate state)
// and uses role "switch" so assistive technology announces on/off rather
// than checked/unchecked.
package toggle

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the switch's closed event vocabulary.
type Event string

const (
	// EventToggle flips the switch.
	EventToggle Event = "toggle"
	// EventOn forces the on state.
	EventOn Event = "on"
	// EventOff forces the off state.
	EventOff Event = "off"
	// EventFocus gives the control keyboard focus.
	EventFocus Event = "focus"
	// EventBlur removes keyboard focus.
	EventBlur Event = "blur"
)

// SlotRoot is the single interactive element.
const SlotRoot = logic.Slot("root")

// State is the switch's complete state snapshot.
type State struct {
	On       bool
	Focused  bool
	Disabled bool
	Label    string
}

// Options configures a switch instance.
type Options struct {
	On       bool
	Label    string
	Disabled bool
}

// Metadata returns the switch's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"switch"},
			Role:      "switch",
			ARIAAttributes: map[string]string{
				"aria-checked": "true or false",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventToggle), string(EventOn), string(EventOff),
				string(EventFocus), string(EventBlur),
			},
			Required: []string{string(EventToggle)},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotRoot: {Type: "button", Role: "switch"},
			},
		},
	}
}

func newLogic(st *store.Store[State], _ Options) *logic.Layer[State, Event] {
	return logic.NewBuilder[State, Event]().
		OnEvent(EventToggle, func(s State, _ any) (State, bool) {
			if s.Disabled {
				return s, false
			}
			s.On = !s.On
			return s, true
		}).
		OnEvent(EventOn, func(s State, _ any) (State, bool) {
			if s.Disabled || s.On {
				return s, false
			}
			s.On = true
			return s, true
		}).
		OnEvent(EventOff, func(s State, _ any) (State, bool) {
			if s.Disabled || !s.On {
				return s, false
			}
			s.On = false
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
			return s, true
		}).
		WithA11y(SlotRoot, func(s State) logic.Props {
			props := logic.Props{
				"role":         "switch",
				"aria-checked": s.On,
				"tabindex":     0,
			}
			if s.Label != "" {
				props["aria-label"] = s.Label
			}
			if s.Disabled {
				props["aria-disabled"] = true
				props["tabindex"] = -1
			}
			return props
		}).
		WithInteraction(SlotRoot, "click", func(s State, _ any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			return EventToggle, true
		}).
		WithInteraction(SlotRoot, "keydown", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			if key, ok := ev.(string); ok && (key == "enter" || key == " ") {
				return EventToggle, true
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
	Name: "Toggle",
	NewState: func(opts Options) State {
		return State{On: opts.On, Label: opts.Label, Disabled: opts.Disabled}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a switch core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
