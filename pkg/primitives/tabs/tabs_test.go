package tabs

import "testing"

func three() Options {
	return Options{Tabs: []string{"one", "two", "three"}}
}

func TestFirstTabActiveByDefault(t *testing.T) {
	core := New(three())
	if got := core.State().GetState().Active; got != "one" {
		t.Errorf("Active = %q, want one", got)
	}
}

func TestSelectById(t *testing.T) {
	core := New(three())

	core.Logic().HandleEvent(EventSelect, "three")
	if got := core.State().GetState().Active; got != "three" {
		t.Errorf("Active = %q, want three", got)
	}
}

func TestSelectUnknownIdIsNoOp(t *testing.T) {
	core := New(three())
	notifications := 0
	core.State().Subscribe(func(State) { notifications++ })

	core.Logic().HandleEvent(EventSelect, "missing")
	core.Logic().HandleEvent(EventSelect, "one") // already active

	if notifications != 0 {
		t.Errorf("notifications = %d, want 0", notifications)
	}
}

func TestNextWrapsFromLastToFirst(t *testing.T) {
	core := New(Options{Tabs: []string{"one", "two"}, Active: "two"})

	core.Logic().HandleEvent(EventNext, nil)
	if got := core.State().GetState().Active; got != "one" {
		t.Errorf("Active = %q, want wrap to one", got)
	}
}

func TestPrevWrapsFromFirstToLast(t *testing.T) {
	core := New(three())

	core.Logic().HandleEvent(EventPrev, nil)
	if got := core.State().GetState().Active; got != "three" {
		t.Errorf("Active = %q, want wrap to three", got)
	}
}

func TestFirstAndLast(t *testing.T) {
	core := New(Options{Tabs: []string{"one", "two", "three"}, Active: "two"})
	lg := core.Logic()

	lg.HandleEvent(EventLast, nil)
	if got := core.State().GetState().Active; got != "three" {
		t.Errorf("Active = %q after last, want three", got)
	}
	lg.HandleEvent(EventFirst, nil)
	if got := core.State().GetState().Active; got != "one" {
		t.Errorf("Active = %q after first, want one", got)
	}
}

func TestEmptyTabListIgnoresNavigation(t *testing.T) {
	core := New(Options{})

	core.Logic().HandleEvent(EventNext, nil)
	core.Logic().HandleEvent(EventLast, nil)

	if got := core.State().GetState().Active; got != "" {
		t.Errorf("Active = %q, want empty", got)
	}
}

func TestKeyboardNavigation(t *testing.T) {
	core := New(three())
	handlers := core.Logic().InteractionHandlers(SlotRoot)

	handlers["keydown"]("right")
	if got := core.State().GetState().Active; got != "two" {
		t.Fatalf("Active = %q after right, want two", got)
	}
	handlers["keydown"]("end")
	if got := core.State().GetState().Active; got != "three" {
		t.Errorf("Active = %q after end, want three", got)
	}
	handlers["keydown"]("home")
	if got := core.State().GetState().Active; got != "one" {
		t.Errorf("Active = %q after home, want one", got)
	}
}

func TestTabClickActivates(t *testing.T) {
	core := New(three())
	handlers := core.Logic().InteractionHandlers(SlotTab)

	handlers["click"]("two")
	if got := core.State().GetState().Active; got != "two" {
		t.Errorf("Active = %q, want two", got)
	}
}

func TestDisabledTabsIgnoreEvents(t *testing.T) {
	core := New(Options{Tabs: []string{"one", "two"}, Disabled: true})

	core.Logic().HandleEvent(EventSelect, "two")
	core.Logic().HandleEvent(EventNext, nil)

	if got := core.State().GetState().Active; got != "one" {
		t.Errorf("Active = %q, want one", got)
	}
}

func TestMetadataIsValid(t *testing.T) {
	if err := New(three()).Metadata().Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
