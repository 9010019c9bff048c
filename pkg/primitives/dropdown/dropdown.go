// Package dropdown implements the headless select primitive.
//
// The dropdown separates highlight (the item keyboard navigation rests on
// while the list is open) from selection (the committed value). Opening
// moves the highlight to the selected item; EventCommit turns the
// highlight into the selection and closes the list.
package dropdown

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the dropdown's closed event vocabulary.
type Event string

const (
	// EventOpen opens the list.
	EventOpen Event = "open"
	// EventClose closes the list without changing the selection.
	EventClose Event = "close"
	// EventToggle opens a closed list and closes an open one.
	EventToggle Event = "toggle"
	// EventHighlightNext moves the highlight down, clamping at the end.
	EventHighlightNext Event = "highlightNext"
	// EventHighlightPrev moves the highlight up, clamping at the start.
	EventHighlightPrev Event = "highlightPrev"
	// EventCommit selects the highlighted item and closes the list.
	EventCommit Event = "commit"
	// EventSelect selects the item carried in the payload (a string) and
	// closes the list.
	EventSelect Event = "select"
)

// Slots.
const (
	SlotTrigger = logic.Slot("trigger")
	SlotList    = logic.Slot("list")
	SlotItem    = logic.Slot("item")
)

// State is the dropdown's complete state snapshot.
type State struct {
	// Items are the selectable items, in presentation order.
	Items []string
	// Selected is the committed value, or "" for none.
	Selected string
	// Open is true while the list is visible.
	Open bool
	// Highlighted is the index keyboard navigation rests on; -1 when
	// nothing is highlighted.
	Highlighted int
	// Disabled disables interaction.
	Disabled bool
}

func (s State) indexOf(v string) int {
	for i, item := range s.Items {
		if item == v {
			return i
		}
	}
	return -1
}

// Options configures a dropdown instance.
type Options struct {
	// Items are the selectable items, in presentation order.
	Items []string
	// Selected is the initially committed value; "" selects nothing.
	Selected string
	// Disabled disables interaction from the start.
	Disabled bool
}

// Metadata returns the dropdown's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"listbox", "combobox"},
			Role:      "combobox",
			ARIAAttributes: map[string]string{
				"aria-expanded": "true while the list is open",
				"aria-haspopup": "listbox",
				"aria-selected": "per item, true on the committed value",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventOpen), string(EventClose), string(EventToggle),
				string(EventHighlightNext), string(EventHighlightPrev),
				string(EventCommit), string(EventSelect),
			},
			Required: []string{string(EventSelect)},
			Custom: map[string]string{
				string(EventSelect): "payload: the item to select (string)",
			},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotTrigger: {Type: "button", Role: "combobox"},
				SlotList:    {Type: "ul", Role: "listbox"},
				SlotItem:    {Type: "li", Role: "option"},
			},
		},
	}
}

// open moves the highlight to the committed value (or the first item) and
// shows the list.
func open(s State) (State, bool) {
	if s.Disabled || s.Open || len(s.Items) == 0 {
		return s, false
	}
	s.Open = true
	s.Highlighted = s.indexOf(s.Selected)
	if s.Highlighted < 0 {
		s.Highlighted = 0
	}
	return s, true
}

func closed(s State) (State, bool) {
	if !s.Open {
		return s, false
	}
	s.Open = false
	s.Highlighted = -1
	return s, true
}

func newLogic(st *store.Store[State], _ Options) *logic.Layer[State, Event] {
	return logic.NewBuilder[State, Event]().
		OnEvent(EventOpen, func(s State, _ any) (State, bool) {
			return open(s)
		}).
		OnEvent(EventClose, func(s State, _ any) (State, bool) {
			return closed(s)
		}).
		OnEvent(EventToggle, func(s State, _ any) (State, bool) {
			if s.Open {
				return closed(s)
			}
			return open(s)
		}).
		OnEvent(EventHighlightNext, func(s State, _ any) (State, bool) {
			if !s.Open || s.Highlighted >= len(s.Items)-1 {
				return s, false
			}
			s.Highlighted++
			return s, true
		}).
		OnEvent(EventHighlightPrev, func(s State, _ any) (State, bool) {
			if !s.Open || s.Highlighted <= 0 {
				return s, false
			}
			s.Highlighted--
			return s, true
		}).
		OnEvent(EventCommit, func(s State, _ any) (State, bool) {
			if !s.Open || s.Highlighted < 0 || s.Highlighted >= len(s.Items) {
				return s, false
			}
			s.Selected = s.Items[s.Highlighted]
			s.Open = false
			s.Highlighted = -1
			return s, true
		}).
		OnEvent(EventSelect, func(s State, payload any) (State, bool) {
			if s.Disabled {
				return s, false
			}
			item, ok := payload.(string)
			if !ok || s.indexOf(item) < 0 {
				return s, false
			}
			s.Selected = item
			s.Open = false
			s.Highlighted = -1
			return s, true
		}).
		WithA11y(SlotTrigger, func(s State) logic.Props {
			props := logic.Props{
				"role":          "combobox",
				"aria-haspopup": "listbox",
				"aria-expanded": s.Open,
				"tabindex":      0,
			}
			if s.Disabled {
				props["aria-disabled"] = true
				props["tabindex"] = -1
			}
			return props
		}).
		WithA11y(SlotList, func(s State) logic.Props {
			return logic.Props{
				"role":             "listbox",
				"data-highlighted": s.Highlighted,
			}
		}).
		WithA11y(SlotItem, func(s State) logic.Props {
			return logic.Props{
				"role":          "option",
				"data-selected": s.Selected,
			}
		}).
		WithInteraction(SlotTrigger, "click", func(s State, _ any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			return EventToggle, true
		}).
		WithInteraction(SlotTrigger, "keydown", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			switch ev {
			case "down":
				if !s.Open {
					return EventOpen, true
				}
				return EventHighlightNext, true
			case "up":
				return EventHighlightPrev, true
			case "enter", " ":
				if !s.Open {
					return EventOpen, true
				}
				return EventCommit, true
			case "escape":
				return EventClose, true
			}
			return "", false
		}).
		WithInteraction(SlotItem, "click", func(s State, ev any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			if _, ok := ev.(string); ok {
				return EventSelect, true
			}
			return "", false
		}).
		Build()
}

var factory = component.New(component.Config[State, Event, Options]{
	Name: "Dropdown",
	NewState: func(opts Options) State {
		return State{
			Items:       opts.Items,
			Selected:    opts.Selected,
			Highlighted: -1,
			Disabled:    opts.Disabled,
		}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a dropdown core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
