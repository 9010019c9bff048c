package adapter

import (
	"reflect"
	"testing"
)

type stubAdapter struct {
	name    string
	version string
}

func (a stubAdapter) Name() string    { return a.name }
func (a stubAdapter) Version() string { return a.version }

func (a stubAdapter) CreateComponent(core Core) (any, error) {
	return nil, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubAdapter{name: "tui", version: "1.0.0"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	a, ok := r.Lookup("tui")
	if !ok {
		t.Fatal("Lookup failed for registered adapter")
	}
	if a.Name() != "tui" {
		t.Errorf("Name = %q, want tui", a.Name())
	}

	if _, ok := r.Lookup("web"); ok {
		t.Error("Lookup succeeded for unregistered adapter")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubAdapter{name: "tui", version: "1.0.0"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(stubAdapter{name: "tui", version: "2.0.0"}); err == nil {
		t.Error("duplicate registration accepted")
	}
}

func TestRegistryRejectsInvalidVersions(t *testing.T) {
	r := NewRegistry()
	for _, version := range []string{"", "one", "1.0.0.0"} {
		if err := r.Register(stubAdapter{name: "bad", version: version}); err == nil {
			t.Errorf("version %q accepted", version)
		}
	}
	// Both bare and v-prefixed semver are accepted.
	if err := r.Register(stubAdapter{name: "bare", version: "1.2.3"}); err != nil {
		t.Errorf("version 1.2.3 rejected: %v", err)
	}
	if err := r.Register(stubAdapter{name: "prefixed", version: "v1.2.3"}); err != nil {
		t.Errorf("version v1.2.3 rejected: %v", err)
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); err == nil {
		t.Error("nil adapter accepted")
	}
	if err := r.Register(stubAdapter{version: "1.0.0"}); err == nil {
		t.Error("unnamed adapter accepted")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"web", "tui", "native"} {
		if err := r.Register(stubAdapter{name: name, version: "1.0.0"}); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"native", "tui", "web"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
