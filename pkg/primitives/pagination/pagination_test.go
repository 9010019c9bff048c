package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
	}
	for _, tt := range tests {
		s := State{Total: tt.total, PerPage: tt.perPage}
		if got := s.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(total=%d perPage=%d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestNextAndPrevClampAtBounds(t *testing.T) {
	core := New(Options{Total: 25, PerPage: 10}) // 3 pages
	lg := core.Logic()

	for i := 0; i < 5; i++ {
		lg.HandleEvent(EventNext, nil)
	}
	if got := core.State().GetState().Page; got != 3 {
		t.Errorf("Page = %d after repeated next, want 3", got)
	}

	for i := 0; i < 5; i++ {
		lg.HandleEvent(EventPrev, nil)
	}
	if got := core.State().GetState().Page; got != 1 {
		t.Errorf("Page = %d after repeated prev, want 1", got)
	}
}

func TestGoToClampsPayload(t *testing.T) {
	core := New(Options{Total: 50, PerPage: 10})
	lg := core.Logic()

	lg.HandleEvent(EventGoTo, 99)
	if got := core.State().GetState().Page; got != 5 {
		t.Errorf("Page = %d after goTo 99, want clamp to 5", got)
	}
	lg.HandleEvent(EventGoTo, -3)
	if got := core.State().GetState().Page; got != 1 {
		t.Errorf("Page = %d after goTo -3, want clamp to 1", got)
	}
	lg.HandleEvent(EventGoTo, "2") // wrong payload type
	if got := core.State().GetState().Page; got != 1 {
		t.Errorf("Page = %d after bad payload, want unchanged", got)
	}
}

func TestSetTotalReclampsCurrentPage(t *testing.T) {
	core := New(Options{Page: 5, Total: 50, PerPage: 10})
	lg := core.Logic()

	lg.HandleEvent(EventSetTotal, 12) // now 2 pages
	s := core.State().GetState()
	if s.Total != 12 || s.Page != 2 {
		t.Errorf("state after setTotal = %+v, want total 12 page 2", s)
	}
}

func TestInitialPageClamped(t *testing.T) {
	core := New(Options{Page: 40, Total: 30, PerPage: 10})
	if got := core.State().GetState().Page; got != 3 {
		t.Errorf("initial Page = %d, want clamp to 3", got)
	}
}

func TestPerPageDefaultsToTen(t *testing.T) {
	core := New(Options{Total: 100})
	if got := core.State().GetState().PerPage; got != 10 {
		t.Errorf("PerPage = %d, want 10", got)
	}
}

func TestBoundaryAriaDisabled(t *testing.T) {
	core := New(Options{Total: 20, PerPage: 10})
	lg := core.Logic()

	if props := lg.A11yProps(SlotPrev); props["aria-disabled"] != true {
		t.Errorf("prev props on first page = %v, want aria-disabled", props)
	}
	if props := lg.A11yProps(SlotNext); props["aria-disabled"] == true {
		t.Errorf("next props on first page = %v, want enabled", props)
	}

	lg.HandleEvent(EventLast, nil)
	if props := lg.A11yProps(SlotNext); props["aria-disabled"] != true {
		t.Errorf("next props on last page = %v, want aria-disabled", props)
	}
}

func TestClickAtBoundaryDoesNotDispatch(t *testing.T) {
	core := New(Options{Total: 20, PerPage: 10})
	notifications := 0
	core.State().Subscribe(func(State) { notifications++ })

	core.Logic().InteractionHandlers(SlotPrev)["click"](nil)
	if notifications != 0 {
		t.Errorf("prev click on first page committed state, notifications = %d", notifications)
	}

	core.Logic().InteractionHandlers(SlotNext)["click"](nil)
	if got := core.State().GetState().Page; got != 2 {
		t.Errorf("Page = %d after next click, want 2", got)
	}
}

func TestKeyboardNavigation(t *testing.T) {
	core := New(Options{Total: 40, PerPage: 10})
	handlers := core.Logic().InteractionHandlers(SlotRoot)

	handlers["keydown"]("end")
	if got := core.State().GetState().Page; got != 4 {
		t.Fatalf("Page = %d after end, want 4", got)
	}
	handlers["keydown"]("left")
	if got := core.State().GetState().Page; got != 3 {
		t.Errorf("Page = %d after left, want 3", got)
	}
	handlers["keydown"]("home")
	if got := core.State().GetState().Page; got != 1 {
		t.Errorf("Page = %d after home, want 1", got)
	}
}

func TestMetadataIsValid(t *testing.T) {
	if err := New(Options{}).Metadata().Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
