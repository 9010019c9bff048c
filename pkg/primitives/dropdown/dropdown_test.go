package dropdown

import "testing"

func fruits() Options {
	return Options{Items: []string{"apple", "banana", "cherry"}}
}

func TestOpenHighlightsSelectedItem(t *testing.T) {
	core := New(Options{Items: []string{"apple", "banana", "cherry"}, Selected: "banana"})

	core.Logic().HandleEvent(EventOpen, nil)
	s := core.State().GetState()
	if !s.Open || s.Highlighted != 1 {
		t.Errorf("state after open = %+v, want open with highlight 1", s)
	}
}

func TestOpenWithoutSelectionHighlightsFirst(t *testing.T) {
	core := New(fruits())

	core.Logic().HandleEvent(EventOpen, nil)
	if got := core.State().GetState().Highlighted; got != 0 {
		t.Errorf("Highlighted = %d, want 0", got)
	}
}

func TestHighlightClampsAtBounds(t *testing.T) {
	core := New(fruits())
	lg := core.Logic()
	lg.HandleEvent(EventOpen, nil)

	for i := 0; i < 5; i++ {
		lg.HandleEvent(EventHighlightNext, nil)
	}
	if got := core.State().GetState().Highlighted; got != 2 {
		t.Errorf("Highlighted = %d after repeated next, want clamp at 2", got)
	}

	for i := 0; i < 5; i++ {
		lg.HandleEvent(EventHighlightPrev, nil)
	}
	if got := core.State().GetState().Highlighted; got != 0 {
		t.Errorf("Highlighted = %d after repeated prev, want clamp at 0", got)
	}
}

func TestCommitSelectsHighlightAndCloses(t *testing.T) {
	core := New(fruits())
	lg := core.Logic()

	lg.HandleEvent(EventOpen, nil)
	lg.HandleEvent(EventHighlightNext, nil)
	lg.HandleEvent(EventCommit, nil)

	s := core.State().GetState()
	if s.Selected != "banana" || s.Open || s.Highlighted != -1 {
		t.Errorf("state after commit = %+v", s)
	}
}

func TestCloseKeepsSelection(t *testing.T) {
	core := New(Options{Items: []string{"apple", "banana"}, Selected: "apple"})
	lg := core.Logic()

	lg.HandleEvent(EventOpen, nil)
	lg.HandleEvent(EventHighlightNext, nil)
	lg.HandleEvent(EventClose, nil)

	s := core.State().GetState()
	if s.Selected != "apple" || s.Open {
		t.Errorf("state after close = %+v, want selection untouched", s)
	}
}

func TestSelectByPayload(t *testing.T) {
	core := New(fruits())

	core.Logic().HandleEvent(EventSelect, "cherry")
	s := core.State().GetState()
	if s.Selected != "cherry" || s.Open {
		t.Errorf("state after select = %+v", s)
	}
}

func TestSelectUnknownItemIsNoOp(t *testing.T) {
	core := New(fruits())
	notifications := 0
	core.State().Subscribe(func(State) { notifications++ })

	core.Logic().HandleEvent(EventSelect, "durian")
	core.Logic().HandleEvent(EventSelect, 3)

	if notifications != 0 {
		t.Errorf("notifications = %d, want 0", notifications)
	}
}

func TestTriggerKeyboardFlow(t *testing.T) {
	core := New(fruits())
	handlers := core.Logic().InteractionHandlers(SlotTrigger)

	handlers["keydown"]("down") // opens
	if !core.State().GetState().Open {
		t.Fatal("list not open after down")
	}
	handlers["keydown"]("down") // highlight 1
	handlers["keydown"]("enter")

	s := core.State().GetState()
	if s.Selected != "banana" || s.Open {
		t.Errorf("state after keyboard flow = %+v", s)
	}
}

func TestEscapeCloses(t *testing.T) {
	core := New(fruits())
	handlers := core.Logic().InteractionHandlers(SlotTrigger)

	handlers["keydown"]("down")
	handlers["keydown"]("escape")
	if core.State().GetState().Open {
		t.Error("list still open after escape")
	}
}

func TestDisabledDropdownIgnoresEvents(t *testing.T) {
	core := New(Options{Items: []string{"apple"}, Disabled: true})

	core.Logic().HandleEvent(EventOpen, nil)
	core.Logic().HandleEvent(EventSelect, "apple")

	s := core.State().GetState()
	if s.Open || s.Selected != "" {
		t.Errorf("disabled dropdown changed state: %+v", s)
	}
}

func TestTriggerAriaExpanded(t *testing.T) {
	core := New(fruits())

	if props := core.Logic().A11yProps(SlotTrigger); props["aria-expanded"] != false {
		t.Errorf("aria-expanded = %v while closed", props["aria-expanded"])
	}
	core.Logic().HandleEvent(EventOpen, nil)
	if props := core.Logic().A11yProps(SlotTrigger); props["aria-expanded"] != true {
		t.Errorf("aria-expanded = %v while open", props["aria-expanded"])
	}
}

func TestMetadataIsValid(t *testing.T) {
	if err := New(fruits()).Metadata().Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
