package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-loom/loom/pkg/adapter"
	"github.com/go-loom/loom/pkg/logic"
)

// stateChangedMsg signals that the core committed new state. The message
// carries no payload: Update re-reads the snapshot, so bursts of commits
// coalesce into one re-render.
type stateChangedMsg struct{}

// Model is the bubbletea component produced by the adapter for one core.
//
// Keyboard input goes to the focused slot's "keydown" handler, tab moves
// focus between interactive slots, and space/enter additionally reach the
// focused slot's "click" handler when no keydown handler claims them.
type Model struct {
	core   adapter.Core
	styles Styles

	// slots is Metadata().Structure.Elements in deterministic order.
	slots []logic.Slot
	// focus indexes into slots; -1 when no slot is interactive.
	focus int

	header  string
	changes chan struct{}
}

func newModel(core adapter.Core, styles Styles) *Model {
	meta := core.Metadata()
	slots := make([]logic.Slot, 0, len(meta.Structure.Elements))
	for slot := range meta.Structure.Elements {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	m := &Model{
		core:    core,
		styles:  styles,
		slots:   slots,
		focus:   -1,
		changes: make(chan struct{}, 1),
	}
	for i, slot := range slots {
		if len(core.Logic().InteractionHandlers(slot)) > 0 {
			m.focus = i
			break
		}
	}

	unsubscribe := core.State().Subscribe(func(any) {
		select {
		case m.changes <- struct{}{}:
		default: // a change is already pending; commits coalesce
		}
	})
	core.OnDisconnect(func() {
		unsubscribe()
		close(m.changes)
	})
	return m
}

// Core returns the wrapped component core view.
func (m *Model) Core() adapter.Core { return m.core }

// FocusedSlot returns the slot keyboard input is routed to, or "".
func (m *Model) FocusedSlot() logic.Slot {
	if m.focus < 0 || m.focus >= len(m.slots) {
		return ""
	}
	return m.slots[m.focus]
}

// Init arms the change listener.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks until the next state commit, then wakes the program.
func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

// Update routes input into the core and re-arms the change listener after
// each commit notification.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		}
		m.dispatchKey(msg.String())
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease {
			m.dispatch("click", nil)
		}
		return m, nil
	}
	return m, nil
}

// focusNext cycles focus through the slots that have interaction handlers.
func (m *Model) focusNext() {
	if len(m.slots) == 0 {
		return
	}
	for step := 1; step <= len(m.slots); step++ {
		i := (m.focus + step) % len(m.slots)
		if len(m.core.Logic().InteractionHandlers(m.slots[i])) > 0 {
			m.focus = i
			return
		}
	}
}

// dispatchKey feeds one key press to the focused slot. The key vocabulary
// the primitives resolve against is bubbletea's, except "esc" which they
// spell "escape".
func (m *Model) dispatchKey(key string) {
	if key == "esc" {
		key = "escape"
	}
	m.dispatch("keydown", key)
}

func (m *Model) dispatch(interaction string, nativeEvent any) {
	slot := m.FocusedSlot()
	if slot == "" {
		return
	}
	if handler, ok := m.core.Logic().InteractionHandlers(slot)[interaction]; ok {
		handler(nativeEvent)
	}
}

// renderHeader precomputes the state-independent part of the view.
func (m *Model) renderHeader() {
	meta := m.core.Metadata()
	m.header = m.styles.Title.Render(fmt.Sprintf("%s %s", meta.Name, meta.Version)) +
		"  " + m.styles.Props.Render(m.core.ID())
}

// View renders the header, every slot with its live accessibility
// attributes, and the current state snapshot.
func (m *Model) View() string {
	if m.header == "" {
		m.renderHeader()
	}

	var b strings.Builder
	b.WriteString(m.header)
	b.WriteString("\n")

	for i, slot := range m.slots {
		style := m.styles.Slot
		marker := "  "
		if i == m.focus {
			style = m.styles.Focused
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(style.Render(string(slot)))
		if props := m.core.Logic().A11yProps(slot); len(props) > 0 {
			b.WriteString(" ")
			b.WriteString(m.styles.Props.Render(formatProps(props)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.State.Render(fmt.Sprintf("%+v", m.core.State().GetState())))
	return m.styles.Frame.Render(b.String())
}

// formatProps renders a11y attributes in deterministic key order.
func formatProps(props logic.Props) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
