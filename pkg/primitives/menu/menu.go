// Package menu implements the headless menu primitive.
//
// A menu is a trigger plus a transient list of actions. Keyboard highlight
// wraps (unlike dropdown, which clamps), matching the menu interaction
// pattern, and activating an item records it in State.LastActivated and
// closes the menu.
package menu

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the menu's closed event vocabulary.
type Event string

const (
	// EventOpen opens the menu with the first item highlighted.
	EventOpen Event = "open"
	// EventClose closes the menu.
	EventClose Event = "close"
	// EventToggle opens a closed menu and closes an open one.
	EventToggle Event = "toggle"
	// EventHighlightNext moves the highlight down, wrapping.
	EventHighlightNext Event = "highlightNext"
	// EventHighlightPrev moves the highlight up, wrapping.
	EventHighlightPrev Event = "highlightPrev"
	// EventCommit activates the highlighted item and closes the menu.
	// This is the keyboard path; it ignores any payload.
	EventCommit Event = "commit"
	// EventActivate activates the item named in a string payload (or the
	// highlighted item when the payload is nil) and closes the menu.
	EventActivate Event = "activate"
)

// Slots.
const (
	SlotTrigger = logic.Slot("trigger")
	SlotList    = logic.Slot("list")
	SlotItem    = logic.Slot("item")
)

// State is the menu's complete state snapshot.
type State struct {
	// Items are the menu entries, in presentation order.
	Items []string
	// Open is true while the menu is visible.
	Open bool
	// Highlighted is the highlighted index; -1 while closed.
	Highlighted int
	// LastActivated is the most recently activated item, or "".
	LastActivated string
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

// Options configures a menu instance.
type Options struct {
	// Items are the menu entries, in presentation order.
	Items []string
	// Disabled disables interaction from the start.
	Disabled bool
}

// Metadata returns the menu's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"menu", "menubutton"},
			Role:      "menu",
			ARIAAttributes: map[string]string{
				"aria-expanded": "on the trigger while open",
				"aria-haspopup": "menu",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventOpen), string(EventClose), string(EventToggle),
				string(EventHighlightNext), string(EventHighlightPrev),
				string(EventCommit), string(EventActivate),
			},
			Custom: map[string]string{
				string(EventActivate): "optional payload: the item to activate (string)",
			},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotTrigger: {Type: "button"},
				SlotList:    {Type: "ul", Role: "menu"},
				SlotItem:    {Type: "li", Role: "menuitem"},
			},
		},
	}
}

func open(s State) (State, bool) {
	if s.Disabled || s.Open || len(s.Items) == 0 {
		return s, false
	}
	s.Open = true
	s.Highlighted = 0
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

// activate records item i and closes the menu.
func activate(s State, i int) (State, bool) {
	if i < 0 || i >= len(s.Items) {
		return s, false
	}
	s.LastActivated = s.Items[i]
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
			if !s.Open || len(s.Items) == 0 {
				return s, false
			}
			s.Highlighted = (s.Highlighted + 1) % len(s.Items)
			return s, true
		}).
		OnEvent(EventHighlightPrev, func(s State, _ any) (State, bool) {
			if !s.Open || len(s.Items) == 0 {
				return s, false
			}
			s.Highlighted = (s.Highlighted - 1 + len(s.Items)) % len(s.Items)
			return s, true
		}).
		OnEvent(EventCommit, func(s State, _ any) (State, bool) {
			if !s.Open {
				return s, false
			}
			return activate(s, s.Highlighted)
		}).
		OnEvent(EventActivate, func(s State, payload any) (State, bool) {
			if !s.Open {
				return s, false
			}
			i := s.Highlighted
			if item, ok := payload.(string); ok {
				i = s.indexOf(item)
			}
			return activate(s, i)
		}).
		WithA11y(SlotTrigger, func(s State) logic.Props {
			props := logic.Props{
				"aria-haspopup": "menu",
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
				"role":             "menu",
				"data-highlighted": s.Highlighted,
			}
		}).
		WithA11y(SlotItem, func(s State) logic.Props {
			return logic.Props{"role": "menuitem"}
		}).
		WithInteraction(SlotTrigger, "click", func(s State, _ any) (Event, bool) {
			if s.Disabled {
				return "", false
			}
			return EventToggle, true
		}).
		WithInteraction(SlotList, "keydown", func(s State, ev any) (Event, bool) {
			if !s.Open {
				return "", false
			}
			switch ev {
			case "down":
				return EventHighlightNext, true
			case "up":
				return EventHighlightPrev, true
			case "enter":
				// The native payload is the key string, so the keyboard
				// path goes through the payload-free commit event.
				return EventCommit, true
			case "escape":
				return EventClose, true
			}
			return "", false
		}).
		WithInteraction(SlotItem, "click", func(s State, ev any) (Event, bool) {
			if !s.Open {
				return "", false
			}
			if _, ok := ev.(string); ok {
				return EventActivate, true
			}
			return "", false
		}).
		Build()
}

var factory = component.New(component.Config[State, Event, Options]{
	Name: "Menu",
	NewState: func(opts Options) State {
		return State{Items: opts.Items, Highlighted: -1, Disabled: opts.Disabled}
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a menu core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
