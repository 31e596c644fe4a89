package dombind

import (
	"github.com/davral/dombind/internal/core"
	"github.com/davral/dombind/internal/nativedom"
)

// domInterface is one row of the wrappable DOM interface table.
type domInterface struct {
	name   string
	parent string // "" for root interfaces
}

// domInterfaces lists every wrappable DOM interface, parents before
// children. Slot assignment follows table order, so the table is also the
// slot numbering.
var domInterfaces = []domInterface{
	{"EventTarget", ""},
	{"Node", "EventTarget"},
	{"Element", "Node"},
	{"Document", "Node"},
	{"DocumentFragment", "Node"},
	{"CharacterData", "Node"},
	{"Text", "CharacterData"},
	{"Comment", "CharacterData"},
	{"CDATASection", "Text"},
	{"ProcessingInstruction", "CharacterData"},
	{"DocumentType", "Node"},
	{"Attr", "Node"},
	{"DOMImplementation", ""},
	{"NodeList", ""},
	{"HTMLCollection", ""},
	{"NamedNodeMap", ""},
	{"DOMTokenList", ""},
	{"Event", ""},
	{"CustomEvent", "Event"},
	{"AbstractRange", ""},
	{"Range", "AbstractRange"},
	{"StaticRange", "AbstractRange"},
	{"NodeIterator", ""},
	{"TreeWalker", ""},
	{"MutationObserver", ""},
	{"MutationRecord", ""},
	{"ShadowRoot", "DocumentFragment"},
	{"AbortController", ""},
	{"AbortSignal", ""},
}

// DOMInterfaceNames returns the wrappable DOM interface names in slot
// order. cmd/bindgen reads this to emit the typed wrapper methods.
func DOMInterfaceNames() []string {
	names := make([]string, len(domInterfaces))
	for i, di := range domInterfaces {
		names[i] = di.name
	}
	return names
}

// DOMRegistry builds the full DOM interface registry. The table is in
// dependency order, so registration cannot fail; any edit that breaks the
// ordering panics at startup.
func DOMRegistry() *Registry {
	r := NewRegistry()
	for _, di := range domInterfaces {
		r.MustRegister(di.name, di.parent)
	}
	return r
}

// DOMBinder binds the nativedom object model to one engine instance with
// the full DOM interface table. The typed Wrap*/Unwrap* methods in
// dom_bindings.go are generated by cmd/bindgen.
type DOMBinder struct {
	*Binder
	model    *nativedom.Model
	bindings map[string]*Binding
}

// NewDOMBinder wires an engine instance to a nativedom model: DOM
// registry, one typed lifetime per interface slot, and a binding per
// interface.
func NewDOMBinder(host core.Host, model *nativedom.Model, cfg Config) *DOMBinder {
	reg := DOMRegistry()
	life := NewLifetimeTable()
	for _, di := range domInterfaces {
		d, err := reg.Describe(di.name)
		if err != nil {
			panic("dombind: " + err.Error())
		}
		addRef, release := model.Lifetime(di.name)
		life.Bind(d.Slot, Lifetime{AddRef: addRef, Release: release})
	}

	b := NewBinder(host, reg, life, cfg)
	db := &DOMBinder{
		Binder:   b,
		model:    model,
		bindings: make(map[string]*Binding, len(domInterfaces)),
	}
	for _, di := range domInterfaces {
		db.bindings[di.name] = b.MustBinding(di.name)
	}
	return db
}

// Model returns the native object model this binder serves.
func (d *DOMBinder) Model() *nativedom.Model { return d.model }

// Interface returns the binding for one DOM interface by name.
func (d *DOMBinder) Interface(name string) (*Binding, error) {
	bn, ok := d.bindings[name]
	if !ok {
		return nil, ErrNotFound
	}
	return bn, nil
}

func (d *DOMBinder) wrapAs(name string, h Handle) (Object, error) {
	return d.bindings[name].Wrap(h)
}

func (d *DOMBinder) unwrapAs(name string, o Object) Handle {
	return d.bindings[name].Unwrap(o)
}
