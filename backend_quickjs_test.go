//go:build !v8

package dombind

import (
	"testing"

	"github.com/davral/dombind/internal/nativedom"
)

// TestQuickJSBackendWrapLifecycle drives the full wrap path on the real
// default backend instead of the in-process test engine: identity, the
// tagged-handle round trip through engine-side internal storage, and
// teardown reclamation against the native model.
func TestQuickJSBackendWrapLifecycle(t *testing.T) {
	host, err := NewHost(Config{})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	model := nativedom.NewModel()
	db := NewDOMBinder(host, model, Config{})

	h := model.NewElement("div")
	o, err := db.WrapElement(h)
	if err != nil {
		t.Fatalf("WrapElement: %v", err)
	}
	again, err := db.WrapElement(h)
	if err != nil {
		t.Fatalf("WrapElement again: %v", err)
	}
	if o != again {
		t.Fatal("same handle wrapped to distinct objects")
	}

	if got := db.UnwrapElement(o); got != h {
		t.Errorf("UnwrapElement = %d, want %d", got, h)
	}
	if got := db.UnwrapNode(o); got != h {
		t.Errorf("UnwrapNode = %d, want %d", got, h)
	}
	if got := db.UnwrapText(o); got != NullHandle {
		t.Errorf("UnwrapText on an Element wrapper = %d, want NullHandle", got)
	}
	if got := model.RefCount(h); got != 2 {
		t.Fatalf("refcount = %d with a live wrapper, want 2", got)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := model.RefCount(h); got != 1 {
		t.Fatalf("refcount = %d after Close, want 1", got)
	}
	model.Release(h)
	if model.Alive(h) {
		t.Fatal("element alive after final release")
	}
}

// TestQuickJSBackendTemplateChain wraps a Text node on the real backend,
// forcing the Text -> CharacterData -> Node -> EventTarget prototype
// chain to build inside the engine.
func TestQuickJSBackendTemplateChain(t *testing.T) {
	host, err := NewHost(Config{})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	model := nativedom.NewModel()
	db := NewDOMBinder(host, model, Config{})
	defer db.Close()

	h := model.NewText("hello")
	o, err := db.WrapText(h)
	if err != nil {
		t.Fatalf("WrapText: %v", err)
	}
	if got := db.UnwrapEventTarget(o); got != h {
		t.Errorf("UnwrapEventTarget = %d, want %d", got, h)
	}
	for _, name := range []string{"Text", "CharacterData", "Node", "EventTarget"} {
		bn, err := db.Interface(name)
		if err != nil {
			t.Fatalf("Interface(%s): %v", name, err)
		}
		if !db.Templates().Built(bn.Descriptor().Slot) {
			t.Errorf("%s template not built after wrapping a Text node", name)
		}
	}
}
