// Package pagination implements the headless pagination primitive.
//
// Page numbers are 1-based. Every navigation event clamps into the valid
// range, so hosts can wire "go to page" inputs directly to EventGoTo
// without validating first.
package pagination

import (
	"github.com/go-loom/loom/pkg/component"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

// Event is the pagination's closed event vocabulary.
type Event string

const (
	// EventNext advances one page.
	EventNext Event = "next"
	// EventPrev goes back one page.
	EventPrev Event = "prev"
	// EventFirst jumps to page 1.
	EventFirst Event = "first"
	// EventLast jumps to the last page.
	EventLast Event = "last"
	// EventGoTo jumps to the page carried in the payload (an int),
	// clamped into range.
	EventGoTo Event = "goTo"
	// EventSetTotal updates the total item count (payload: int) and
	// re-clamps the current page.
	EventSetTotal Event = "setTotal"
)

// Slots.
const (
	SlotRoot = logic.Slot("root")
	SlotPrev = logic.Slot("prev")
	SlotNext = logic.Slot("next")
)

// State is the pagination's complete state snapshot.
type State struct {
	// Page is the current 1-based page.
	Page int
	// PerPage is the page size; always >= 1.
	PerPage int
	// Total is the total item count.
	Total int
}

// TotalPages returns the number of pages, at least 1.
func (s State) TotalPages() int {
	if s.Total <= 0 || s.PerPage <= 0 {
		return 1
	}
	pages := (s.Total + s.PerPage - 1) / s.PerPage
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage returns page forced into [1, TotalPages].
func (s State) clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if last := s.TotalPages(); page > last {
		return last
	}
	return page
}

// Options configures a pagination instance.
type Options struct {
	// Page is the initial 1-based page; clamped into range.
	Page int
	// PerPage is the page size; defaults to 10.
	PerPage int
	// Total is the total item count.
	Total int
}

// Metadata returns the pagination's descriptive record.
func Metadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"navigation"},
			Role:      "navigation",
			Label:     "pagination",
			ARIAAttributes: map[string]string{
				"aria-disabled": "on prev/next at the range boundaries",
				"aria-current":  "page, on the active page control",
			},
		},
		Events: metadata.Events{
			Supported: []string{
				string(EventNext), string(EventPrev), string(EventFirst),
				string(EventLast), string(EventGoTo), string(EventSetTotal),
			},
			Custom: map[string]string{
				string(EventGoTo):     "payload: 1-based page number (int)",
				string(EventSetTotal): "payload: total item count (int)",
			},
		},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				SlotRoot: {Type: "nav", Role: "navigation"},
				SlotPrev: {Type: "button"},
				SlotNext: {Type: "button"},
			},
		},
	}
}

func goTo(s State, page int) (State, bool) {
	page = s.clampPage(page)
	if page == s.Page {
		return s, false
	}
	s.Page = page
	return s, true
}

func newLogic(st *store.Store[State], _ Options) *logic.Layer[State, Event] {
	return logic.NewBuilder[State, Event]().
		OnEvent(EventNext, func(s State, _ any) (State, bool) {
			return goTo(s, s.Page+1)
		}).
		OnEvent(EventPrev, func(s State, _ any) (State, bool) {
			return goTo(s, s.Page-1)
		}).
		OnEvent(EventFirst, func(s State, _ any) (State, bool) {
			return goTo(s, 1)
		}).
		OnEvent(EventLast, func(s State, _ any) (State, bool) {
			return goTo(s, s.TotalPages())
		}).
		OnEvent(EventGoTo, func(s State, payload any) (State, bool) {
			page, ok := payload.(int)
			if !ok {
				return s, false
			}
			return goTo(s, page)
		}).
		OnEvent(EventSetTotal, func(s State, payload any) (State, bool) {
			total, ok := payload.(int)
			if !ok || total < 0 || total == s.Total {
				return s, false
			}
			s.Total = total
			s.Page = s.clampPage(s.Page)
			return s, true
		}).
		WithA11y(SlotRoot, func(s State) logic.Props {
			return logic.Props{
				"role":       "navigation",
				"aria-label": "pagination",
			}
		}).
		WithA11y(SlotPrev, func(s State) logic.Props {
			props := logic.Props{"tabindex": 0}
			if s.Page <= 1 {
				props["aria-disabled"] = true
			}
			return props
		}).
		WithA11y(SlotNext, func(s State) logic.Props {
			props := logic.Props{"tabindex": 0}
			if s.Page >= s.TotalPages() {
				props["aria-disabled"] = true
			}
			return props
		}).
		WithInteraction(SlotPrev, "click", func(s State, _ any) (Event, bool) {
			if s.Page <= 1 {
				return "", false
			}
			return EventPrev, true
		}).
		WithInteraction(SlotNext, "click", func(s State, _ any) (Event, bool) {
			if s.Page >= s.TotalPages() {
				return "", false
			}
			return EventNext, true
		}).
		WithInteraction(SlotRoot, "keydown", func(s State, ev any) (Event, bool) {
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
	Name: "Pagination",
	NewState: func(opts Options) State {
		perPage := opts.PerPage
		if perPage <= 0 {
			perPage = 10
		}
		s := State{Page: 1, PerPage: perPage, Total: opts.Total}
		s.Page = s.clampPage(opts.Page)
		return s
	},
	NewLogic: newLogic,
	Metadata: Metadata(),
})

// New instantiates a pagination core.
func New(opts Options) *component.Core[State, Event] {
	return factory(opts)
}
