package logic

import (
	"testing"

	"github.com/go-loom/loom/pkg/store"
)

func TestBuilderEquivalentToConfig(t *testing.T) {
	initCalls, cleanupCalls := 0, 0

	l := NewBuilder[toggleState, toggleEvent]().
		OnEvent(eventToggle, func(s toggleState, _ any) (toggleState, bool) {
			s.On = !s.On
			return s, true
		}).
		WithA11y(slotRoot, func(s toggleState) Props {
			return Props{"role": "switch"}
		}).
		WithInteraction(slotRoot, "click", func(toggleState, any) (toggleEvent, bool) {
			return eventToggle, true
		}).
		OnInitialize(func(*store.Store[toggleState]) { initCalls++ }).
		OnCleanup(func() { cleanupCalls++ }).
		Build()

	st := store.New(toggleState{})
	l.Connect(st)
	l.Initialize()

	if initCalls != 1 {
		t.Errorf("OnInitialize ran %d times, want 1", initCalls)
	}
	if props := l.A11yProps(slotRoot); props["role"] != "switch" {
		t.Errorf("A11yProps = %v, want role=switch", props)
	}

	l.InteractionHandlers(slotRoot)["click"](nil)
	if !st.GetState().On {
		t.Error("click interaction did not toggle")
	}

	l.Cleanup()
	if cleanupCalls != 1 {
		t.Errorf("OnCleanup ran %d times, want 1", cleanupCalls)
	}
}

func TestBuilderReplacesDuplicateEventRegistration(t *testing.T) {
	l := NewBuilder[toggleState, toggleEvent]().
		OnEvent(eventBump, func(s toggleState, _ any) (toggleState, bool) {
			s.Count = 1
			return s, true
		}).
		OnEvent(eventBump, func(s toggleState, _ any) (toggleState, bool) {
			s.Count = 2
			return s, true
		}).
		Build()

	st := store.New(toggleState{})
	l.Connect(st)
	l.Initialize()
	l.HandleEvent(eventBump, nil)

	if got := st.GetState().Count; got != 2 {
		t.Errorf("Count = %d, want the later registration (2)", got)
	}
}

func TestEmptyBuilderYieldsInertLayer(t *testing.T) {
	l := NewBuilder[toggleState, toggleEvent]().Build()
	st := store.New(toggleState{})
	l.Connect(st)
	l.Initialize()

	l.HandleEvent(eventToggle, nil)
	if props := l.A11yProps(slotRoot); len(props) != 0 {
		t.Errorf("A11yProps = %v, want empty", props)
	}
}
