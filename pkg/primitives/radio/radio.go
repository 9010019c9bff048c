// Package radio implements the headless radio group primitive.
//
// The group owns which value is selected and which value holds roving
// focus. Arrow-key navigation moves focus through the declared values with
// wrap-around and, per the radio group interaction pattern, selects the
// newly focused value.
package radio

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the radio group's closed event vocabulary.
type Event string

const (
	// EventSelect selects the value carried in the payload (a string).
	EventSelect Event = "select"
	// EventNext moves selection to the next value, wrapping.
	EventNext Event = "next"
	// EventPrev moves selection to the previous value, wrapping.
	EventPrev Event = "prev"
	// EventFocus marks the group focused.
	EventFocus Event = "focus"
	// EventBlur removes focus from the group.
	EventBlur Event = "blur"
)

// Slots.
const (
	SlotRoot = logic.Slot("root")
	SlotItem = logic.Slot("item")
)

// State is the radio group's complete state snapshot.
type State struct {
	// Values are the selectable values, in presentation order.
	Values []string
	// Selected is the currently selected value, or "" for none.
	Selected string
	// Focused is true while the group has keyboard focus.
	Focused bool
	// Disabled disables interaction.
	Disabled bool
}

// indexOf returns the position of v in Values, or -1.
func (s State) indexOf(v string) int {
	for i, val := range s.Values {
		if val == v {
			return i
		}
	}
	return -1
}

// Options configures a radio group instance.
type Options struct {
	// Values are the selectable values, in presentation order.
	Values []string
	// Selected is the initially selected value; "" selects nothing.
	Selected string
	// Disabled disables interaction from the start.
	Disabled bool
}

// Metadata returns the radio group's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"radiogroup"},
			Role:      "radiogroup",
			ARIAAttributes: map[string]string{
				"aria-checked": "per item, true on the selected value",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventSelect), string(EventNext), string(EventPrev),
				string(EventFocus), string(EventBlur),
			},
			Required: []string{string(EventSelect)},
			Custom: map[string]string{
				string(EventSelect): "payload: the value to select (string)",
			},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotRoot: {Type: "div", Role: "radiogroup"},
				SlotItem: {Type: "button", Role: "radio"},
			},
		},
	}
}

// step moves the selection by delta with wrap-around. With no current
// selection it lands on the first (delta>0) or last (delta<0) value.
func step(s State, delta int) (State, bool) {
	if s.Disabled || len(s.Values) == 0 {
		return s, false
	}
	i := s.indexOf(s.Selected)
	if i < 0 {
		if delta > 0 {
			i = 0
		} else {
			i = len(s.Values) - 1
		}
	} else {
		i = (i + delta + len(s.Values)) % len(s.Values)
	}
	s.Selected = s.Values[i]
	return s, true
}

func newLogic(st *store.Store[State], _ Options) *logic.Layer[State, Event] {
	return logic.NewBuilder[State, Event]().
		OnEvent(EventSelect, func(s State, payload any) (State, bool) {
			if s.Disabled {
				return s, false
			}
			value, ok := payload.(string)
			if !ok || s.indexOf(value) < 0 || s.Selected == value {
				return s, false
			}
			s.Selected = value
			return s, true
		}).
		OnEvent(EventNext, func(s State, _ any) (State, bool) {
			return step(s, 1)
		}).
		OnEvent(EventPrev, func(s State, _ any) (State, bool) {
			return step(s, -1)
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
			props := logic.Props{"role": "radiogroup"}
			if s.Disabled {
				props["aria-disabled"] = true
			}
			return props
		}).
		WithA11y(SlotItem, func(s State) logic.Props {
			// Per-item attributes are parameterized by the host with the
			// item's value; the group-level props carry the selection so
			// adapters can compare.
			return logic.Props{
				"role":          "radio",
				"data-selected": s.Selected,
			}
		}).
		WithInteraction(SlotItem, "click", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			// The native event payload is the clicked item's value.
			if _, ok := ev.(string); ok {
				return EventSelect, true
			}
			return "", false
		}).
		WithInteraction(SlotRoot, "keydown", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			switch ev {
			case "down", "right":
				return EventNext, true
			case "up", "left":
				return EventPrev, true
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
	Name: "RadioGroup",
	NewState: func(opts Options) State {
		return State{
			Values:   opts.Values,
			Selected: opts.Selected,
			Disabled: opts.Disabled,
		}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a radio group core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
