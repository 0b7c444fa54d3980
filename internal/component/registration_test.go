package component

import (
	"testing"

	"github.com/neunato/zed/internal/render"
)

// These tests exercise the process-wide collection path, so they use
// distinct component names and tolerate callbacks queued by other tests
// re-running on each drain (registration is last-write-wins).

func TestInitDrainsOnce(t *testing.T) {
	runs := 0
	AddComponentRegistration(func() {
		runs++
		Default.RegisterComponent(ScopeLayout, "InitOnceProbe", "")
	})

	Init()
	Init()

	if runs != 1 {
		t.Errorf("callback ran %d times across two Init calls, want 1", runs)
	}
	if _, ok := Components().Get(ID("InitOnceProbe")); !ok {
		t.Error("InitOnceProbe missing from default registry after Init")
	}
}

func TestReinitDrains(t *testing.T) {
	AddComponentRegistration(func() {
		Default.RegisterComponent(ScopeInput, "ReinitProbe", "queued after Init")
	})

	if _, ok := Components().Get(ID("ReinitProbe")); ok {
		t.Fatal("ReinitProbe visible before Reinit")
	}

	Reinit()

	meta, ok := Components().Get(ID("ReinitProbe"))
	if !ok {
		t.Fatal("ReinitProbe missing after Reinit")
	}
	if meta.Description != "queued after Init" {
		t.Errorf("description = %q", meta.Description)
	}
}

func TestComponentPassBeforePreviewPass(t *testing.T) {
	var order []string
	// Queue the preview callback first to show pass order is not queue
	// order: the component pass always completes before the preview pass.
	AddPreviewRegistration(func() {
		order = append(order, "preview")
		Default.RegisterPreview("PassOrderProbe", stubPreview)
	})
	AddComponentRegistration(func() {
		order = append(order, "component")
		Default.RegisterComponent(Scope{}, "PassOrderProbe", "")
	})

	Reinit()

	if len(order) != 2 || order[0] != "component" || order[1] != "preview" {
		t.Errorf("pass order = %v, want [component preview]", order)
	}

	meta, ok := Components().Get(ID("PassOrderProbe"))
	if !ok {
		t.Fatal("PassOrderProbe missing")
	}
	if !meta.HasPreview() {
		t.Error("preview missing after both passes")
	}
}

func TestRegisterHelpers(t *testing.T) {
	Register(probeComponent{})
	RegisterPreview(probeComponent{})

	meta, ok := Components().Get(ID("HelperProbe"))
	if !ok {
		t.Fatal("HelperProbe missing")
	}
	if meta.Scope != ScopeCollaboration {
		t.Errorf("scope = %v, want Collaboration", meta.Scope)
	}
	if meta.Description != "registered via helpers" {
		t.Errorf("description = %q", meta.Description)
	}
	if !meta.HasPreview() {
		t.Error("preview missing")
	}
}

type probeComponent struct{}

func (probeComponent) Name() string        { return "HelperProbe" }
func (probeComponent) Scope() Scope        { return ScopeCollaboration }
func (probeComponent) Description() string { return "registered via helpers" }
func (probeComponent) Preview(rc *render.Context) render.Element {
	return render.El("probe")
}
