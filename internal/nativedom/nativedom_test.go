package nativedom

import "testing"

func TestRefCountLifecycle(t *testing.T) {
	m := NewModel()
	h := m.NewElement("div")

	if got := m.RefCount(h); got != 1 {
		t.Fatalf("refcount after create = %d, want 1", got)
	}
	m.AddRef(h)
	if got := m.RefCount(h); got != 2 {
		t.Fatalf("refcount after addref = %d, want 2", got)
	}
	m.Release(h)
	if !m.Alive(h) {
		t.Fatal("object died with one reference remaining")
	}
	m.Release(h)
	if m.Alive(h) {
		t.Fatal("object alive after final release")
	}
	if got := m.RefCount(h); got != -1 {
		t.Errorf("refcount on dead handle = %d, want -1", got)
	}
	if got := m.Destroyed(KindElement); got != 1 {
		t.Errorf("destroyed elements = %d, want 1", got)
	}
	if got := m.Live(); got != 0 {
		t.Errorf("live objects = %d, want 0", got)
	}
}

func TestHandlesNotReused(t *testing.T) {
	m := NewModel()
	a := m.NewText("a")
	m.Release(a)
	b := m.NewText("b")
	if a == b {
		t.Fatal("handle reused after destruction")
	}
	if m.Alive(a) {
		t.Fatal("dead handle reports alive")
	}
}

func TestImplements(t *testing.T) {
	m := NewModel()
	tests := []struct {
		h     Handle
		iface string
		want  bool
	}{
		{m.NewText("x"), "Text", true},
		{m.NewText("x"), "CharacterData", true},
		{m.NewText("x"), "Node", true},
		{m.NewText("x"), "EventTarget", true},
		{m.NewText("x"), "Element", false},
		{m.NewElement("div"), "Element", true},
		{m.NewElement("div"), "CharacterData", false},
		{m.NewEvent("click"), "Event", true},
		{m.NewEvent("click"), "Node", false},
		{m.NewAttr("id", "main"), "Node", true},
	}
	for _, tt := range tests {
		if got := m.Implements(tt.h, tt.iface); got != tt.want {
			k, _ := m.Kind(tt.h)
			t.Errorf("Implements(%s, %s) = %v, want %v", k, tt.iface, got, tt.want)
		}
	}

	h := m.NewComment("gone")
	m.Release(h)
	if m.Implements(h, "Comment") {
		t.Error("dead handle still implements its interface")
	}
}

func TestKindString(t *testing.T) {
	m := NewModel()
	h := m.NewDocumentFragment()
	k, ok := m.Kind(h)
	if !ok || k != KindDocumentFragment {
		t.Fatalf("Kind = %v, %v", k, ok)
	}
	if k.String() != "DocumentFragment" {
		t.Errorf("Kind.String() = %q", k.String())
	}
}

func TestLifetimeTypedPair(t *testing.T) {
	m := NewModel()
	h := m.NewText("hi")
	addRef, release := m.Lifetime("CharacterData")

	addRef(h)
	if got := m.RefCount(h); got != 2 {
		t.Fatalf("refcount = %d after typed addref, want 2", got)
	}
	release(h)
	release(h)
	if m.Alive(h) {
		t.Fatal("object alive after matching releases")
	}
}

func TestLifetimeTypeMismatchPanics(t *testing.T) {
	m := NewModel()
	h := m.NewEvent("load")
	_, release := m.Lifetime("Element")

	defer func() {
		if recover() == nil {
			t.Fatal("typed release on wrong kind did not panic")
		}
	}()
	release(h)
}

func TestAddRefDeadHandlePanics(t *testing.T) {
	m := NewModel()
	h := m.NewComment("x")
	m.Release(h)

	defer func() {
		if recover() == nil {
			t.Fatal("AddRef on dead handle did not panic")
		}
	}()
	m.AddRef(h)
}

func TestAccessors(t *testing.T) {
	m := NewModel()

	el := m.NewElement("section")
	if name, ok := m.TagName(el); !ok || name != "section" {
		t.Errorf("TagName(element) = %q, %v", name, ok)
	}
	txt := m.NewText("chars")
	if data, ok := m.Data(txt); !ok || data != "chars" {
		t.Errorf("Data(text) = %q, %v", data, ok)
	}
	if _, ok := m.TagName(txt); ok {
		t.Error("TagName on a text node reported ok")
	}
	if _, ok := m.Data(el); ok {
		t.Error("Data on an element reported ok")
	}
}
