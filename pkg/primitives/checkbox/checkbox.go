// Package checkbox implements the headless checkbox primitive.
//
// The checkbox owns its checked state: EventToggle flips it, EventCheck and
// EventUncheck force it, and EventSetMixed enters the indeterminate state
// that a subsequent toggle always resolves to checked, matching the
// tri-state checkbox interaction pattern.
package checkbox

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the checkbox's closed event vocabulary.
type Event string

const (
	// EventToggle flips the checked state. From mixed it resolves to
	// checked.
	EventToggle Event = "toggle"
	// EventCheck forces the checked state.
	EventCheck Event = "check"
	// EventUncheck forces the unchecked state.
	EventUncheck Event = "uncheck"
	// EventSetMixed enters the indeterminate state.
	EventSetMixed Event = "setMixed"
	// EventFocus gives the control keyboard focus.
	EventFocus Event = "focus"
	// EventBlur removes keyboard focus.
	EventBlur Event = "blur"
)

// Slots.
const (
	SlotRoot  = logic.Slot("root")
	SlotLabel = logic.Slot("label")
)

// State is the checkbox's complete state snapshot.
type State struct {
	// Checked is the current value. Ignored while Mixed.
	Checked bool
	// Mixed is the indeterminate state.
	Mixed bool
	// Focused is true while the control has keyboard focus.
	Focused bool
	// Disabled disables interaction.
	Disabled bool
	// Label is the accessible name.
	Label string
}

// ariaChecked returns the tri-state aria-checked value.
func (s State) ariaChecked() any {
	if s.Mixed {
		return "mixed"
	}
	return s.Checked
}

// Options configures a checkbox instance.
type Options struct {
	// Checked is the initial value.
	Checked bool
	// Label is the accessible name.
	Label string
	// Disabled disables interaction from the start.
	Disabled bool
}

// Metadata returns the checkbox's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"checkbox"},
			Role:      "checkbox",
			ARIAAttributes: map[string]string{
				"aria-checked":  "true, false, or mixed",
				"aria-disabled": "present while disabled",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventToggle), string(EventCheck), string(EventUncheck),
				string(EventSetMixed), string(EventFocus), string(EventBlur),
			},
			Required: []string{string(EventToggle)},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotRoot:  {Type: "button", Role: "checkbox"},
				SlotLabel: {Type: "span", Optional: true},
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
			if s.Mixed {
				s.Mixed = false
				s.Checked = true
				return s, true
			}
			s.Checked = !s.Checked
			return s, true
		}).
		OnEvent(EventCheck, func(s State, _ any) (State, bool) {
			if s.Disabled || (s.Checked && !s.Mixed) {
				return s, false
			}
			s.Checked = true
			s.Mixed = false
			return s, true
		}).
		OnEvent(EventUncheck, func(s State, _ any) (State, bool) {
			if s.Disabled || (!s.Checked && !s.Mixed) {
				return s, false
			}
			s.Checked = false
			s.Mixed = false
			return s, true
		}).
		OnEvent(EventSetMixed, func(s State, _ any) (State, bool) {
			if s.Disabled || s.Mixed {
				return s, false
			}
			s.Mixed = true
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
				"role":         "checkbox",
				"aria-checked": s.ariaChecked(),
				"tabindex":     0,
			}
			if s.Disabled {
				props["aria-disabled"] = true
				props["tabindex"] = -1
			}
			return props
		}).
		WithA11y(SlotLabel, func(s State) logic.Props {
			if s.Label == "" {
				return logic.Props{}
			}
			return logic.Props{"id": "label"}
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
			if key, ok := ev.(string); ok && key == " " {
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
		// Clicking the label toggles the control, mirroring native
		// label/input pairing.
		WithInteraction(SlotLabel, "click", func(s State, _ any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			return EventToggle, true
		}).
		Build()
}

var factory = component.New(component.Config[State, Event, Options]{
	Name: "Checkbox",
	NewState: func(opts Options) State {
		return State{Checked: opts.Checked, Label: opts.Label, Disabled: opts.Disabled}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a checkbox core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
