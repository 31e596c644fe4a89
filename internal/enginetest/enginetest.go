// Package enginetest is a pure-Go scripting-engine stand-in implementing
// the core.Host boundary. Reclamation is driven explicitly by the test
// (Reclaim, Close) instead of by a garbage collector, which makes wrapper
// lifecycle behavior deterministic to assert. The real engine backends
// need cgo or an embedded V8 at test time; this one needs nothing.
package enginetest

import (
	"errors"
	"fmt"

	"github.com/davral/dombind/internal/core"
)

// Template is an engine-side type descriptor.
type Template struct {
	name   string
	slots  int
	parent *Template
}

// Name returns the interface name the template was built for.
func (t *Template) Name() string { return t.name }

// Parent returns the template this one chains to, or nil.
func (t *Template) Parent() *Template { return t.parent }

// ChainLen returns the length of the prototype chain including t.
func (t *Template) ChainLen() int {
	n := 0
	for ; t != nil; t = t.parent {
		n++
	}
	return n
}

// Object is an instantiated wrapper.
type Object struct {
	tmpl     *Template
	internal []core.Tagged
	present  []bool
}

// Template returns the template the object came from; nil for foreign
// objects built directly with &Object{}.
func (o *Object) Template() core.Template {
	if o.tmpl == nil {
		return nil
	}
	return o.tmpl
}

// Host is the in-process engine instance.
type Host struct {
	reclaim     func(core.Object)
	live        []*Object
	built       []string
	templateErr error
	closed      bool
}

var _ core.Host = (*Host)(nil)

// New returns an empty engine instance.
func New() *Host { return &Host{} }

// FailTemplates makes every subsequent NewTemplate fail with err,
// simulating host-engine resource exhaustion.
func (h *Host) FailTemplates(err error) { h.templateErr = err }

// Built returns the interface names of constructed templates in build
// order.
func (h *Host) Built() []string { return h.built }

// LiveObjects returns the number of objects not yet reclaimed.
func (h *Host) LiveObjects() int { return len(h.live) }

// NewTemplate constructs a template chaining to parent.
func (h *Host) NewTemplate(name string, internalSlots int, parent core.Template) (core.Template, error) {
	if h.templateErr != nil {
		return nil, h.templateErr
	}
	var p *Template
	if parent != nil {
		var ok bool
		p, ok = parent.(*Template)
		if !ok {
			return nil, fmt.Errorf("parent template %s from a different engine", parent.Name())
		}
	}
	t := &Template{name: name, slots: internalSlots, parent: p}
	h.built = append(h.built, name)
	return t, nil
}

// Instantiate constructs a fresh object from the template.
func (h *Host) Instantiate(t core.Template) (core.Object, error) {
	tt, ok := t.(*Template)
	if !ok {
		return nil, errors.New("template from a different engine")
	}
	o := &Object{
		tmpl:     tt,
		internal: make([]core.Tagged, tt.slots),
		present:  make([]bool, tt.slots),
	}
	h.live = append(h.live, o)
	return o, nil
}

// SetInternal stores tag in the object's internal slot i.
func (h *Host) SetInternal(o core.Object, i int, tag core.Tagged) error {
	oo, ok := o.(*Object)
	if !ok {
		return errors.New("object from a different engine")
	}
	if i < 0 || i >= len(oo.internal) {
		return fmt.Errorf("internal slot %d out of range", i)
	}
	oo.internal[i] = tag
	oo.present[i] = true
	return nil
}

// Internal reads the object's internal slot i. Foreign objects and unset
// slots report false.
func (h *Host) Internal(o core.Object, i int) (core.Tagged, bool) {
	oo, ok := o.(*Object)
	if !ok {
		return core.Tagged{}, false
	}
	if i < 0 || i >= len(oo.internal) || !oo.present[i] {
		return core.Tagged{}, false
	}
	return oo.internal[i], true
}

// OnReclaim registers the reclamation handler.
func (h *Host) OnReclaim(fn func(core.Object)) { h.reclaim = fn }

// Reclaim simulates the engine collecting o: the object leaves the live
// set and the handler is notified. Calling it again for the same object
// still notifies, which is exactly the misbehavior the wrapper cache must
// tolerate as a no-op.
func (h *Host) Reclaim(o core.Object) {
	for i, live := range h.live {
		if live == o {
			h.live = append(h.live[:i], h.live[i+1:]...)
			break
		}
	}
	if h.reclaim != nil {
		h.reclaim(o)
	}
}

// Close reclaims every live object, then shuts the instance down.
func (h *Host) Close() error {
	if h.closed {
		return errors.New("engine instance already closed")
	}
	h.closed = true
	for len(h.live) > 0 {
		h.Reclaim(h.live[0])
	}
	return nil
}
