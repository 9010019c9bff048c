package component

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-loom/loom/pkg/adapter"
	loomerrors "github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/logic"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/store"
)

type widgetState struct {
	Count int
}

type widgetEvent string

const eventIncrement widgetEvent = "increment"

type widgetOptions struct {
	Start int
}

const slotRoot = logic.Slot("root")

func widgetMetadata() metadata.Metadata {
	return metadata.Metadata{
		Accessibility: metadata.Accessibility{WCAGLevel: "AA", Role: "button"},
		Events:        metadata.Events{Supported: []string{string(eventIncrement)}},
		Structure: metadata.Structure{
			Elements: map[logic.Slot]metadata.Element{
				slotRoot: {Type: "button", Role: "button"},
			},
		},
	}
}

func widgetFactory(opts ...func(*Config[widgetState, widgetEvent, widgetOptions])) Factory[widgetState, widgetEvent, widgetOptions] {
	cfg := Config[widgetState, widgetEvent, widgetOptions]{
		Name: "Widget",
		NewState: func(o widgetOptions) widgetState {
			return widgetState{Count: o.Start}
		},
		NewLogic: func(st *store.Store[widgetState], o widgetOptions) *logic.Layer[widgetState, widgetEvent] {
			return logic.NewBuilder[widgetState, widgetEvent]().
				OnEvent(eventIncrement, func(s widgetState, _ any) (widgetState, bool) {
					s.Count++
					return s, true
				}).
				WithA11y(slotRoot, func(s widgetState) logic.Props {
					return logic.Props{"role": "button"}
				}).
				Build()
		},
		Metadata: widgetMetadata(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg)
}

// fakeAdapter implements adapter.Adapter and optionally panics or errors.
type fakeAdapter struct {
	name     string
	err      error
	panicMsg string
	created  []adapter.Core
}

func (a *fakeAdapter) Name() string    { return a.name }
func (a *fakeAdapter) Version() string { return "1.0.0" }

func (a *fakeAdapter) CreateComponent(core adapter.Core) (any, error) {
	if a.panicMsg != "" {
		panic(a.panicMsg)
	}
	if a.err != nil {
		return nil, a.err
	}
	a.created = append(a.created, core)
	return core.Metadata().Name + "-rendered", nil
}

// optimizingAdapter also implements adapter.Optimizer.
type optimizingAdapter struct {
	fakeAdapter
	optimized int
}

func (a *optimizingAdapter) Optimize(component any) any {
	a.optimized++
	return component.(string) + "-optimized"
}

func TestFactoryWiresCoreFully(t *testing.T) {
	core := widgetFactory()(widgetOptions{Start: 3})

	if got := core.State().GetState().Count; got != 3 {
		t.Errorf("initial Count = %d, want 3", got)
	}
	if !core.Logic().Connected() {
		t.Error("logic layer not connected after factory instantiation")
	}

	core.Logic().HandleEvent(eventIncrement, nil)
	if got := core.State().GetState().Count; got != 4 {
		t.Errorf("Count = %d after increment, want 4", got)
	}
}

func TestFactoryAssemblesMetadata(t *testing.T) {
	core := widgetFactory()(widgetOptions{})

	meta := core.Metadata()
	if meta.Name != "Widget" {
		t.Errorf("Name = %q, want Widget", meta.Name)
	}
	if meta.Version != DefaultVersion {
		t.Errorf("Version = %q, want default %q", meta.Version, DefaultVersion)
	}
	if meta.Accessibility.WCAGLevel != "AA" {
		t.Errorf("descriptor fields lost: %+v", meta.Accessibility)
	}
	if err := meta.Validate(); err != nil {
		t.Errorf("assembled metadata invalid: %v", err)
	}
}

func TestFactoryExplicitVersion(t *testing.T) {
	f := widgetFactory(func(cfg *Config[widgetState, widgetEvent, widgetOptions]) {
		cfg.Version = "2.1.0"
	})
	if got := f(widgetOptions{}).Metadata().Version; got != "2.1.0" {
		t.Errorf("Version = %q, want 2.1.0", got)
	}
}

func TestEachInstantiationGetsFreshStore(t *testing.T) {
	f := widgetFactory()
	a := f(widgetOptions{})
	b := f(widgetOptions{})

	a.Logic().HandleEvent(eventIncrement, nil)
	if got := b.State().GetState().Count; got != 0 {
		t.Errorf("second instance Count = %d, want 0", got)
	}
	if a.ID() == b.ID() {
		t.Errorf("instances share id %q", a.ID())
	}
}

func TestConnectReturnsAdapterComponent(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	a := &fakeAdapter{name: "testAdapter"}

	comp, err := core.Connect(a)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if comp != "Widget-rendered" {
		t.Errorf("component = %v, want Widget-rendered", comp)
	}
	if len(a.created) != 1 {
		t.Fatalf("adapter saw %d cores, want 1", len(a.created))
	}
	if got := a.created[0].Metadata().Name; got != "Widget" {
		t.Errorf("adapter-facing metadata name = %q", got)
	}
}

func TestConnectPipesThroughOptimize(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	a := &optimizingAdapter{fakeAdapter: fakeAdapter{name: "opt"}}

	comp, err := core.Connect(a)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if comp != "Widget-rendered-optimized" {
		t.Errorf("component = %v, want optimized result", comp)
	}
	if a.optimized != 1 {
		t.Errorf("Optimize ran %d times, want 1", a.optimized)
	}
}

func TestConnectErrorNamesPrimitiveAndAdapter(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	a := &fakeAdapter{name: "testAdapter", err: errors.New("boom")}

	_, err := core.Connect(a)
	if err == nil {
		t.Fatal("Connect succeeded, want error")
	}
	for _, want := range []string{"Widget", "testAdapter", "boom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err.Error(), want)
		}
	}
	var loomErr *loomerrors.Error
	if !errors.As(err, &loomErr) {
		t.Fatal("error is not a *errors.Error")
	}
	if loomErr.Kind != loomerrors.KindAdapter {
		t.Errorf("Kind = %v, want adapter", loomErr.Kind)
	}
	if got := errors.Unwrap(loomErr); got == nil || got.Error() != "boom" {
		t.Errorf("Unwrap() = %v, want original boom error", got)
	}
}

func TestConnectRecoversAdapterPanic(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	a := &fakeAdapter{name: "testAdapter", panicMsg: "kaboom"}

	_, err := core.Connect(a)
	if err == nil {
		t.Fatal("Connect swallowed the panic without an error")
	}
	for _, want := range []string{"Widget", "testAdapter", "kaboom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err.Error(), want)
		}
	}
}

func TestMultipleSimultaneousConnectionsShareStore(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	a := &fakeAdapter{name: "a"}
	b := &fakeAdapter{name: "b"}

	if _, err := core.Connect(a); err != nil {
		t.Fatal(err)
	}
	if _, err := core.Connect(b); err != nil {
		t.Fatal(err)
	}

	notified := map[string]int{}
	a.created[0].State().Subscribe(func(any) { notified["a"]++ })
	b.created[0].State().Subscribe(func(any) { notified["b"]++ })

	core.Logic().HandleEvent(eventIncrement, nil)

	if notified["a"] != 1 || notified["b"] != 1 {
		t.Errorf("notifications = %v, want both adapters to observe the commit", notified)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	destroyCalls := 0
	f := widgetFactory(func(cfg *Config[widgetState, widgetEvent, widgetOptions]) {
		cfg.OnDestroy = func() { destroyCalls++ }
	})
	core := f(widgetOptions{})

	disconnects := 0
	core.OnDisconnect(func() { disconnects++ })

	core.Destroy()
	core.Destroy()

	if destroyCalls != 1 {
		t.Errorf("OnDestroy ran %d times, want 1", destroyCalls)
	}
	if disconnects != 1 {
		t.Errorf("disconnect cleanup ran %d times, want 1", disconnects)
	}
	if core.Logic().Connected() {
		t.Error("logic still connected after Destroy")
	}
}

func TestDestroyRunsCleanupsInReverseOrder(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	var order []string
	core.OnDisconnect(func() { order = append(order, "first") })
	core.OnDisconnect(func() { order = append(order, "second") })

	core.Destroy()

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("cleanup order = %v, want LIFO", order)
	}
}

func TestOnDisconnectAfterDestroyRunsImmediately(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	core.Destroy()

	ran := false
	core.OnDisconnect(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after Destroy did not run immediately")
	}
}

func TestConnectAfterDestroyFails(t *testing.T) {
	core := widgetFactory()(widgetOptions{})
	core.Destroy()

	_, err := core.Connect(&fakeAdapter{name: "testAdapter"})
	if err == nil {
		t.Fatal("Connect after Destroy succeeded")
	}
	var loomErr *loomerrors.Error
	if !errors.As(err, &loomErr) || loomErr.Kind != loomerrors.KindLifecycle {
		t.Errorf("error = %v, want lifecycle kind", err)
	}
}
