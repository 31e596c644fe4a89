// Package nativedom is a compact reference-counted DOM-like object model,
// the native side of the binding layer. Objects are owned by a Model and
// referred to by dense handles from its table, never by raw pointers, so
// handles can cross the engine boundary as plain numbers. Reference counts
// are atomic because one native object may be exposed to several
// independent engine instances at once.
package nativedom

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/davral/dombind/internal/core"
)

// Handle identifies one native object in a Model's table.
type Handle = core.Handle

// Kind is the concrete type of a native object.
type Kind uint8

const (
	KindElement Kind = iota
	KindDocument
	KindDocumentFragment
	KindText
	KindComment
	KindAttr
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindDocument:
		return "Document"
	case KindDocumentFragment:
		return "DocumentFragment"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindAttr:
		return "Attr"
	case KindEvent:
		return "Event"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// kindInterfaces lists, leaf first, the wrappable interfaces each concrete
// kind satisfies.
var kindInterfaces = map[Kind][]string{
	KindElement:          {"Element", "Node", "EventTarget"},
	KindDocument:         {"Document", "Node", "EventTarget"},
	KindDocumentFragment: {"DocumentFragment", "Node", "EventTarget"},
	KindText:             {"Text", "CharacterData", "Node", "EventTarget"},
	KindComment:          {"Comment", "CharacterData", "Node", "EventTarget"},
	KindAttr:             {"Attr", "Node", "EventTarget"},
	KindEvent:            {"Event"},
}

// object is one refcounted native object. The destructor for its kind runs
// exactly once, when the count reaches zero.
type object struct {
	kind Kind
	refs atomic.Int32

	// kind-specific state, torn down by the destructor
	tagName string
	data    string
	attrs   map[string]string
}

// Model owns a set of native objects behind a handle table. The table is
// mutex-guarded; the refcounts themselves are atomic.
type Model struct {
	mu        sync.RWMutex
	objects   map[Handle]*object
	next      Handle
	destroyed map[Kind]int
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		objects:   make(map[Handle]*object),
		next:      1,
		destroyed: make(map[Kind]int),
	}
}

func (m *Model) put(o *object) Handle {
	o.refs.Store(1) // creator's reference
	m.mu.Lock()
	h := m.next
	m.next++
	m.objects[h] = o
	m.mu.Unlock()
	return h
}

// NewElement creates an element node with refcount 1.
func (m *Model) NewElement(tagName string) Handle {
	return m.put(&object{kind: KindElement, tagName: tagName, attrs: make(map[string]string)})
}

// NewDocument creates a document node with refcount 1.
func (m *Model) NewDocument() Handle {
	return m.put(&object{kind: KindDocument})
}

// NewDocumentFragment creates a document fragment with refcount 1.
func (m *Model) NewDocumentFragment() Handle {
	return m.put(&object{kind: KindDocumentFragment})
}

// NewText creates a text node with refcount 1.
func (m *Model) NewText(data string) Handle {
	return m.put(&object{kind: KindText, data: data})
}

// NewComment creates a comment node with refcount 1.
func (m *Model) NewComment(data string) Handle {
	return m.put(&object{kind: KindComment, data: data})
}

// NewAttr creates an attribute node with refcount 1.
func (m *Model) NewAttr(name, value string) Handle {
	return m.put(&object{kind: KindAttr, tagName: name, data: value})
}

// NewEvent creates an event object with refcount 1.
func (m *Model) NewEvent(eventType string) Handle {
	return m.put(&object{kind: KindEvent, data: eventType})
}

func (m *Model) get(h Handle) *object {
	m.mu.RLock()
	o := m.objects[h]
	m.mu.RUnlock()
	return o
}

// AddRef increments the reference count of h. Calling it on a dead handle
// is a use-after-free on the native side and panics.
func (m *Model) AddRef(h Handle) {
	o := m.get(h)
	if o == nil {
		panic(fmt.Sprintf("nativedom: AddRef on dead handle %d", h))
	}
	o.refs.Add(1)
}

// Release decrements the reference count of h, destroying the object and
// freeing its handle when the count reaches zero. Releasing more times
// than the object was referenced panics.
func (m *Model) Release(h Handle) {
	o := m.get(h)
	if o == nil {
		panic(fmt.Sprintf("nativedom: Release on dead handle %d", h))
	}
	n := o.refs.Add(-1)
	if n < 0 {
		panic(fmt.Sprintf("nativedom: refcount underflow on handle %d", h))
	}
	if n == 0 {
		m.destroy(h, o)
	}
}

// destroy runs the kind-specific destructor and frees the handle.
func (m *Model) destroy(h Handle, o *object) {
	o.tagName = ""
	o.data = ""
	o.attrs = nil
	m.mu.Lock()
	delete(m.objects, h)
	m.destroyed[o.kind]++
	m.mu.Unlock()
}

// Alive reports whether h still refers to a live object.
func (m *Model) Alive(h Handle) bool { return m.get(h) != nil }

// RefCount returns the current reference count of h, or -1 for a dead
// handle.
func (m *Model) RefCount(h Handle) int32 {
	o := m.get(h)
	if o == nil {
		return -1
	}
	return o.refs.Load()
}

// Kind returns the concrete kind of h.
func (m *Model) Kind(h Handle) (Kind, bool) {
	o := m.get(h)
	if o == nil {
		return 0, false
	}
	return o.kind, true
}

// Implements reports whether the object at h satisfies the named
// wrappable interface.
func (m *Model) Implements(h Handle, iface string) bool {
	o := m.get(h)
	if o == nil {
		return false
	}
	for _, name := range kindInterfaces[o.kind] {
		if name == iface {
			return true
		}
	}
	return false
}

// Destroyed returns how many objects of kind have been destroyed, for
// leak assertions in tests.
func (m *Model) Destroyed(kind Kind) int {
	m.mu.RLock()
	n := m.destroyed[kind]
	m.mu.RUnlock()
	return n
}

// Live returns the number of live objects.
func (m *Model) Live() int {
	m.mu.RLock()
	n := len(m.objects)
	m.mu.RUnlock()
	return n
}

// Lifetime returns the typed addref/release pair for one wrappable
// interface. The returned release is specific to iface: releasing a handle
// whose object does not implement iface is the native-side equivalent of
// calling the wrong destructor, and panics rather than corrupt state.
func (m *Model) Lifetime(iface string) (addRef, release func(Handle)) {
	addRef = func(h Handle) {
		if !m.Implements(h, iface) {
			panic(fmt.Sprintf("nativedom: addref on handle %d as %s: type mismatch", h, iface))
		}
		m.AddRef(h)
	}
	release = func(h Handle) {
		if !m.Implements(h, iface) {
			panic(fmt.Sprintf("nativedom: release on handle %d as %s: type mismatch", h, iface))
		}
		m.Release(h)
	}
	return addRef, release
}

// TagName returns an element or attr node's name.
func (m *Model) TagName(h Handle) (string, bool) {
	o := m.get(h)
	if o == nil || (o.kind != KindElement && o.kind != KindAttr) {
		return "", false
	}
	return o.tagName, true
}

// Data returns the character data of a text or comment node.
func (m *Model) Data(h Handle) (string, bool) {
	o := m.get(h)
	if o == nil || (o.kind != KindText && o.kind != KindComment) {
		return "", false
	}
	return o.data, true
}
