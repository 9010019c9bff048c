// Package tabs implements the headless tab list primitive.
//
// Selection follows activation: EventNext/EventPrev move the active tab
// with wrap-around, EventSelect activates a tab by id. The active tab id
// drives aria-selected on the tab slot and the visibility contract on the
// panel slot.
package tabs

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the tab list's closed event vocabulary.
type Event string

const (
	// EventSelect activates the tab id carried in the payload (a string).
	EventSelect Event = "select"
	// EventNext activates the next tab, wrapping.
	EventNext Event = "next"
	// EventPrev activates the previous tab, wrapping.
	EventPrev Event = "prev"
	// EventFirst activates the first tab.
	EventFirst Event = "first"
	// EventLast activates the last tab.
	EventLast Event = "last"
)

// Slots.
const (
	SlotRoot  = logic.Slot("root")
	SlotTab   = logic.Slot("tab")
	SlotPanel = logic.Slot("panel")
)

// State is the tab list's complete state snapshot.
type State struct {
	// Tabs are the tab ids in presentation order.
	Tabs []string
	// Active is the id of the active tab.
	Active string
	// Disabled disables interaction.
	Disabled bool
}

func (s State) indexOf(id string) int {
	for i, t := range s.Tabs {
		if t == id {
			return i
		}
	}
	return -1
}

// Options configures a tab list instance.
type Options struct {
	// Tabs are the tab ids in presentation order. Must be non-empty for a
	// useful instance.
	Tabs []string
	// Active is the initially active tab id; defaults to the first tab.
	Active string
	// Disabled disables interaction from the start.
	Disabled bool
}

// Metadata returns the tab list's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"tabs"},
			Role:      "tablist",
			ARIAAttributes: map[string]string{
				"aria-selected": "per tab, true on the active tab",
				"aria-controls": "per tab, the id of its panel",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventSelect), string(EventNext), string(EventPrev),
				string(EventFirst), string(EventLast),
			},
			Required: []string{string(EventSelect)},
			Custom: map[string]string{
				string(EventSelect): "payload: the tab id to activate (string)",
			},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotRoot:  {Type: "div", Role: "tablist"},
				SlotTab:   {Type: "button", Role: "tab"},
				SlotPanel: {Type: "div", Role: "tabpanel"},
			},
		},
	}
}

func activate(s State, i int) (State, bool) {
	if s.Disabled || len(s.Tabs) == 0 {
		return s, false
	}
	id := s.Tabs[i]
	if s.Active == id {
		return s, false
	}
	s.Active = id
	return s, true
}

func newLogic(st *store.Store[State], _ Options) *logic.Layer[State, Event] {
	return logic.NewBuilder[State, Event]().
		OnEvent(EventSelect, func(s State, payload any) (State, bool) {
			if s.Disabled {
				return s, false
			}
			id, ok := payload.(string)
			if !ok {
				return s, false
			}
			i := s.indexOf(id)
			if i < 0 {
				return s, false
			}
			return activate(s, i)
		}).
		OnEvent(EventNext, func(s State, _ any) (State, bool) {
			if len(s.Tabs) == 0 {
				return s, false
			}
			i := s.indexOf(s.Active)
			return activate(s, (i+1)%len(s.Tabs))
		}).
		OnEvent(EventPrev, func(s State, _ any) (State, bool) {
			if len(s.Tabs) == 0 {
				return s, false
			}
			i := s.indexOf(s.Active)
			if i < 0 {
				i = 0
			}
			return activate(s, (i-1+len(s.Tabs))%len(s.Tabs))
		}).
		OnEvent(EventFirst, func(s State, _ any) (State, bool) {
			if len(s.Tabs) == 0 {
				return s, false
			}
			return activate(s, 0)
		}).
		OnEvent(EventLast, func(s State, _ any) (State, bool) {
			if len(s.Tabs) == 0 {
				return s, false
			}
			return activate(s, len(s.Tabs)-1)
		}).
		WithA11y(SlotRoot, func(s State) logic.Props {
			props := logic.Props{"role": "tablist"}
			if s.Disabled {
				props["aria-disabled"] = true
			}
			return props
		}).
		WithA11y(SlotTab, func(s State) logic.Props {
			return logic.Props{
				"role":        "tab",
				"data-active": s.Active,
			}
		}).
		WithA11y(SlotPanel, func(s State) logic.Props {
			return logic.Props{
				"role":        "tabpanel",
				"data-active": s.Active,
			}
		}).
		WithInteraction(SlotTab, "click", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
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
			case "right":
				return EventNext, true
			case "left":
				return EventPrev, true
			case "home":
				return EventFirst, true
			case "end":
				return EventLast, true
			}
			return "", false
		}).
		Build()
}

var factory = component.New(component.Config[State, Event, Options]{
	Name: "Tabs",
	NewState: func(opts Options) State {
		active := opts.Active
		if active == "" && len(opts.Tabs) > 0 {
			active = opts.Tabs[0]
		}
		return State{Tabs: opts.Tabs, Active: active, Disabled: opts.Disabled}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a tab list core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
