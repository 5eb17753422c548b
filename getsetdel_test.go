package classkit_test

import (
	"testing"

	classkit "github.com/reoring/classkit"
)

// prop is a data descriptor for tests: computed get plus intercepted set.
type prop struct {
	gets *int
	sets *int
}

func (p prop) Get(target any) (any, error) {
	*p.gets++
	return "computed", nil
}

func (p prop) Set(target any, val any) error {
	*p.sets++
	return nil
}

func newCounter() (*int, *int) {
	g, s := 0, 0
	return &g, &s
}

func TestGet_ParameterBypassesDescriptor(t *testing.T) {
	gets, sets := newCounter()
	d := prop{gets: gets, sets: sets}
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"x": d},
		Annot: map[string]any{"x": "any"},
	})

	// class-level: raw descriptor object back, no invocation
	v, err := a.Get("x")
	if err != nil {
		t.Fatalf("get x: %v", err)
	}
	if _, ok := v.(prop); !ok || *gets != 0 {
		t.Fatalf("parameter get must bypass the descriptor, got %v (gets=%d)", v, *gets)
	}

	// instance-level: same bypass
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	v, err = in.Get("x")
	if err != nil {
		t.Fatalf("instance get x: %v", err)
	}
	if _, ok := v.(prop); !ok || *gets != 0 {
		t.Fatalf("instance parameter get must bypass the descriptor, got %v (gets=%d)", v, *gets)
	}

	// set/delete bypass too
	if err := in.Set("x", 3); err != nil {
		t.Fatalf("set x: %v", err)
	}
	if *sets != 0 {
		t.Fatalf("parameter set must bypass the descriptor, sets=%d", *sets)
	}
	if err := in.Delete("x"); err != nil {
		t.Fatalf("delete x: %v", err)
	}
}

func TestGet_NonParameterHonorsDescriptor(t *testing.T) {
	gets, sets := newCounter()
	d := prop{gets: gets, sets: sets}
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"status": d},
	})
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	v, err := in.Get("status")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if v != "computed" || *gets != 1 {
		t.Fatalf("expected computed value, got %v (gets=%d)", v, *gets)
	}

	// data descriptor intercepts assignment and wins over instance storage
	if err := in.Set("status", 1); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if *sets != 1 {
		t.Fatalf("expected descriptor set, sets=%d", *sets)
	}
	if v, _ := in.Get("status"); v != "computed" {
		t.Fatalf("data descriptor must shadow instance storage, got %v", v)
	}
}

func TestSetDelete_ProtectedFailsOnClassAndInstance(t *testing.T) {
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{
			"fit": classkit.Protect("method"),
			"tol": classkit.Protect(0.001),
		},
		Annot: map[string]any{"tol": "number"},
	})
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, target := range []string{"fit", "tol"} {
		if err := a.Set(target, 1); err == nil {
			t.Fatalf("class set %s: expected protection error", target)
		}
		if err := a.Delete(target); err == nil {
			t.Fatalf("class delete %s: expected protection error", target)
		}
		if err := in.Set(target, 1); err == nil {
			t.Fatalf("instance set %s: expected protection error", target)
		}
		if err := in.Delete(target); err == nil {
			t.Fatalf("instance delete %s: expected protection error", target)
		}
	}

	// object state unchanged, operations recoverable
	if v, err := in.Get("tol"); err != nil || v != 0.001 {
		t.Fatalf("state changed after rejected ops: %v err=%v", v, err)
	}
}

func TestGet_VanillaIdempotent(t *testing.T) {
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"note": "hello"},
	})
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	v1, err1 := in.Get("note")
	v2, err2 := in.Get("note")
	if err1 != nil || err2 != nil || v1 != v2 {
		t.Fatalf("idempotent read broken: %v/%v %v/%v", v1, err1, v2, err2)
	}
	if len(in.Dict()) != 0 {
		t.Fatalf("vanilla reads must not touch instance storage: %v", in.Dict())
	}
}

func TestGet_PurgesStrayProtectedEntry(t *testing.T) {
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"fit": classkit.Protect("method")},
	})
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// low-level bypass plants a shadow entry; the next read heals it
	in.Dict()["fit"] = "shadow"
	v, err := in.Get("fit")
	if err != nil || v != "method" {
		t.Fatalf("expected class value after purge, got %v err=%v", v, err)
	}
	if _, stray := in.Dict()["fit"]; stray {
		t.Fatalf("stray protected entry should have been purged")
	}
}

func TestDict_StrayParameterEntryIsAuthoritative(t *testing.T) {
	// Known-unenforceable boundary: raw storage writes for parameter names
	// read back as the current value.
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"x": 0},
		Annot: map[string]any{"x": "number"},
	})
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	in.Dict()["x"] = 42
	if v, err := in.Get("x"); err != nil || v != 42 {
		t.Fatalf("expected instance entry to win, got %v err=%v", v, err)
	}
}

func TestSet_PostCreationProtectWarnsAndDropsIntent(t *testing.T) {
	var events []classkit.WarnEvent
	classkit.SetWarnHandler(func(e classkit.WarnEvent) { events = append(events, e) })
	defer classkit.SetWarnHandler(nil)

	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"solver": "lbfgs"},
	})

	if err := a.Set("solver", classkit.Protect("saga")); err != nil {
		t.Fatalf("post-creation protect assignment must succeed: %v", err)
	}
	if v, _ := a.Get("solver"); v != "saga" {
		t.Fatalf("value should have been assigned unwrapped, got %v", v)
	}
	if len(events) != 1 || events[0].Attr != "solver" {
		t.Fatalf("expected one warning for solver, got %v", events)
	}

	// protection was not retrofitted: a subclass may still rebind
	if _, err := classkit.Construct("B", []*classkit.Class{a}, classkit.Body{
		Attrs: map[string]any{"solver": "newton"},
	}); err != nil {
		t.Fatalf("rebind after dropped protect request must succeed: %v", err)
	}

	// same on instances
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := in.Set("extra", classkit.Protect(1)); err != nil {
		t.Fatalf("instance protect assignment must succeed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected a second warning, got %v", events)
	}
}

func TestSet_MissingSentinelRejected(t *testing.T) {
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Annot: map[string]any{"x": "number"},
	})
	in, err := a.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := in.Set("x", classkit.Missing); err == nil {
		t.Fatalf("assigning the missing sentinel must fail")
	}
	if err := a.Set("x", classkit.Missing); err == nil {
		t.Fatalf("assigning the missing sentinel on the class must fail")
	}
}

func TestDelete_ParameterRemovesInstanceOverride(t *testing.T) {
	a := mustConstruct(t, "A", []*classkit.Class{classkit.Base}, classkit.Body{
		Attrs: map[string]any{"x": 0},
		Annot: map[string]any{"x": "number"},
	})
	in, err := a.New(classkit.KV{"x": 5})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := in.Delete("x"); err != nil {
		t.Fatalf("delete x: %v", err)
	}
	// falls back to the live class default
	if v, _ := in.Get("x"); v != 0 {
		t.Fatalf("expected class default after delete, got %v", v)
	}
	// deleting again fails: no instance entry left
	if err := in.Delete("x"); err == nil {
		t.Fatalf("expected error deleting absent instance override")
	}
}
