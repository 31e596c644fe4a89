package dombind

import (
	"errors"
	"testing"
)

// testRegistry builds the small hierarchy most tests use:
// EventTarget <- Node <- {Element, CharacterData <- Text}.
func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, row := range []struct{ name, parent string }{
		{"EventTarget", ""},
		{"Node", "EventTarget"},
		{"Element", "Node"},
		{"CharacterData", "Node"},
		{"Text", "CharacterData"},
	} {
		if _, err := r.Register(row.name, row.parent); err != nil {
			t.Fatalf("Register(%s): %v", row.name, err)
		}
	}
	return r
}

func TestRegisterAssignsDenseSlots(t *testing.T) {
	r := testRegistry(t)

	for i, name := range []string{"EventTarget", "Node", "Element", "CharacterData", "Text"} {
		d, err := r.Describe(name)
		if err != nil {
			t.Fatalf("Describe(%s): %v", name, err)
		}
		if d.Slot != uint32(i) {
			t.Errorf("%s: slot = %d, want %d", name, d.Slot, i)
		}
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
}

func TestRegisterChildBeforeParentFails(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("EventTarget", "")
	r.MustRegister("Node", "EventTarget")

	// CharacterData is not registered yet; Text must be rejected.
	if _, err := r.Register("Text", "CharacterData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Register(Text) before CharacterData: err = %v, want ErrNotFound", err)
	}

	// After CharacterData is in, Text registers fine.
	r.MustRegister("CharacterData", "Node")
	if _, err := r.Register("Text", "CharacterData"); err != nil {
		t.Fatalf("Register(Text) after CharacterData: %v", err)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Event", "")
	if _, err := r.Register("Event", ""); !errors.Is(err, ErrDoubleRegistration) {
		t.Fatalf("duplicate Register(Event): err = %v, want ErrDoubleRegistration", err)
	}
}

func TestDescribeUnregistered(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Describe("TreeWalker"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Describe(TreeWalker): err = %v, want ErrNotFound", err)
	}
}

func TestAssignableTo(t *testing.T) {
	r := testRegistry(t)
	slot := func(name string) uint32 {
		d, err := r.Describe(name)
		if err != nil {
			t.Fatalf("Describe(%s): %v", name, err)
		}
		return d.Slot
	}

	tests := []struct {
		from, to string
		want     bool
	}{
		{"Text", "Text", true},
		{"Text", "CharacterData", true},
		{"Text", "Node", true},
		{"Text", "EventTarget", true},
		{"Text", "Element", false},
		{"Node", "Text", false},
		{"Element", "CharacterData", false},
	}
	for _, tt := range tests {
		if got := r.AssignableTo(slot(tt.from), slot(tt.to)); got != tt.want {
			t.Errorf("AssignableTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}

	if r.AssignableTo(99, slot("Node")) {
		t.Error("AssignableTo with unknown source slot should be false")
	}
}

// TestDOMRegistrySlots pins the slot numbering of the full DOM table; the
// slots are wire-stable and generated bindings depend on them.
func TestDOMRegistrySlots(t *testing.T) {
	r := DOMRegistry()

	want := map[string]uint32{
		"EventTarget": 0,
		"Node":        1,
		"Element":     2,
		"Document":    3,
		"Text":        6,
		"Event":       17,
		"ShadowRoot":  26,
		"AbortSignal": 28,
	}
	for name, slot := range want {
		d, err := r.Describe(name)
		if err != nil {
			t.Fatalf("Describe(%s): %v", name, err)
		}
		if d.Slot != slot {
			t.Errorf("%s: slot = %d, want %d", name, d.Slot, slot)
		}
	}
	if r.Len() != 29 {
		t.Errorf("DOM registry has %d interfaces, want 29", r.Len())
	}

	// ShadowRoot chains through DocumentFragment up to EventTarget.
	sr, _ := r.Describe("ShadowRoot")
	et, _ := r.Describe("EventTarget")
	if !r.AssignableTo(sr.Slot, et.Slot) {
		t.Error("ShadowRoot should be assignable to EventTarget")
	}
}
