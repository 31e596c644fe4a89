//go:build !v8

// Package quickjs implements the core.Host engine boundary on a QuickJS
// VM. Wrapper objects live entirely inside the VM, tracked in the shim's
// id-indexed table; the Go side refers to them by id only. The table
// roots each wrapper strongly until Expose or Unroot hands its lifetime
// to script, which matters on a reference-counting engine: a weakly-held
// wrapper would be collected before the embedder could store its handle.
// Reclamation notifications ride the engine's FinalizationRegistry into a
// registered Go callback, with Close sweeping whatever the registry has
// not reported yet.
package quickjs

import (
	"fmt"

	"modernc.org/quickjs"

	"github.com/davral/dombind/internal/core"
)

// template is one installed prototype, identified by its shim proto id.
type template struct {
	id    int
	name  string
	slots int
}

func (t *template) Name() string { return t.name }

// object is one live wrapper, identified by its shim live-table id.
type object struct {
	id   int
	tmpl *template
}

func (o *object) Template() core.Template { return o.tmpl }

// Host is one QuickJS engine instance.
type Host struct {
	vm      *quickjs.VM
	reclaim func(core.Object)
	objects map[int]*object
	nextObj int
	nextTpl int
	closed  bool
}

var _ core.Host = (*Host)(nil)

// New creates a QuickJS VM and installs the binding shim. memoryLimitMB
// caps the VM heap when positive.
func New(memoryLimitMB int) (*Host, error) {
	vm, err := quickjs.NewVM()
	if err != nil {
		return nil, fmt.Errorf("creating QuickJS VM: %w", err)
	}
	if memoryLimitMB > 0 {
		vm.SetMemoryLimit(uintptr(memoryLimitMB) * 1024 * 1024)
	}

	h := &Host{vm: vm, objects: make(map[int]*object), nextObj: 1}

	// The reclaim callback must exist before the shim's
	// FinalizationRegistry can reference it.
	if err := vm.RegisterFunc(core.ReclaimFuncName, func(id int) { h.deliver(id) }, false); err != nil {
		vm.Close()
		return nil, fmt.Errorf("registering reclaim callback: %w", err)
	}
	if err := h.Eval(core.ShimJS); err != nil {
		vm.Close()
		return nil, fmt.Errorf("installing binding shim: %w", err)
	}
	return h, nil
}

// Eval evaluates JavaScript and discards the result.
func (h *Host) Eval(js string) error {
	v, err := h.vm.EvalValue(js, quickjs.EvalGlobal)
	if err != nil {
		return err
	}
	v.Free()
	return nil
}

// evalInt evaluates JavaScript and returns the result as a Go int.
func (h *Host) evalInt(js string) (int, error) {
	result, err := h.vm.Eval(js, quickjs.EvalGlobal)
	if err != nil {
		return 0, err
	}
	switch v := result.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected int, got %T", result)
	}
}

// NewTemplate installs a prototype object chaining to parent.
func (h *Host) NewTemplate(name string, internalSlots int, parent core.Template) (core.Template, error) {
	parentID := -1
	if parent != nil {
		p, ok := parent.(*template)
		if !ok {
			return nil, fmt.Errorf("parent template %s from a different engine", parent.Name())
		}
		parentID = p.id
	}
	id := h.nextTpl
	h.nextTpl++
	if err := h.Eval(fmt.Sprintf("__dombind.newProto(%d, %q, %d)", id, name, parentID)); err != nil {
		return nil, fmt.Errorf("installing %s prototype: %w", name, err)
	}
	return &template{id: id, name: name, slots: internalSlots}, nil
}

// Instantiate constructs a fresh wrapper from the template. The shim
// roots it until Expose or Unroot; after that, script references decide
// its lifetime.
func (h *Host) Instantiate(t core.Template) (core.Object, error) {
	tt, ok := t.(*template)
	if !ok {
		return nil, fmt.Errorf("template %s from a different engine", t.Name())
	}
	id := h.nextObj
	h.nextObj++
	if err := h.Eval(fmt.Sprintf("__dombind.make(%d, %d, %d)", id, tt.id, tt.slots)); err != nil {
		return nil, fmt.Errorf("instantiating %s: %w", tt.name, err)
	}
	o := &object{id: id, tmpl: tt}
	h.objects[id] = o
	return o, nil
}

// SetInternal stores the tagged handle in the wrapper's internal slot i.
// Handles are table ids well under 2^53, so they survive the trip through
// an engine number.
func (h *Host) SetInternal(o core.Object, i int, tag core.Tagged) error {
	oo, ok := o.(*object)
	if !ok {
		return fmt.Errorf("object from a different engine")
	}
	set, err := h.evalInt(fmt.Sprintf("__dombind.setInternal(%d, %d, %d, %d)", oo.id, i, tag.Slot, tag.Handle))
	if err != nil {
		return fmt.Errorf("storing internal slot %d: %w", i, err)
	}
	if set == 0 {
		return fmt.Errorf("internal slot %d out of range or wrapper gone", i)
	}
	return nil
}

// Internal reads the tagged handle from the wrapper's internal slot i.
func (h *Host) Internal(o core.Object, i int) (core.Tagged, bool) {
	oo, ok := o.(*object)
	if !ok {
		return core.Tagged{}, false
	}
	slot, err := h.evalInt(fmt.Sprintf("__dombind.internalSlot(%d, %d)", oo.id, i))
	if err != nil || slot < 0 {
		return core.Tagged{}, false
	}
	handle, err := h.evalInt(fmt.Sprintf("__dombind.internalHandle(%d, %d)", oo.id, i))
	if err != nil || handle == 0 {
		return core.Tagged{}, false
	}
	return core.Tagged{Slot: uint32(slot), Handle: core.Handle(handle)}, true
}

// Expose publishes the wrapper as a script-visible global and hands its
// lifetime to script: the shim drops its strong root, so the wrapper
// lives exactly as long as script references it.
func (h *Host) Expose(name string, o core.Object) error {
	oo, ok := o.(*object)
	if !ok {
		return fmt.Errorf("object from a different engine")
	}
	set, err := h.evalInt(fmt.Sprintf("__dombind.expose(%d, %q)", oo.id, name))
	if err != nil {
		return fmt.Errorf("exposing %s: %w", name, err)
	}
	if set == 0 {
		return fmt.Errorf("exposing %s: wrapper already collected", name)
	}
	return nil
}

// Unroot drops the shim's strong hold on the wrapper without exposing it.
// Any script references that exist decide its lifetime from here;
// with none, the next collection reclaims it.
func (h *Host) Unroot(o core.Object) error {
	oo, ok := o.(*object)
	if !ok {
		return fmt.Errorf("object from a different engine")
	}
	set, err := h.evalInt(fmt.Sprintf("__dombind.downgrade(%d)", oo.id))
	if err != nil {
		return fmt.Errorf("unrooting wrapper: %w", err)
	}
	if set == 0 {
		return fmt.Errorf("unrooting wrapper: already collected")
	}
	return nil
}

// RunMicrotasks pumps the VM's pending jobs, which is when
// FinalizationRegistry callbacks get to run. Returns the number of jobs
// executed.
func (h *Host) RunMicrotasks() int {
	return pumpPendingJobs(h.vm)
}

// Collect forces a garbage collection cycle and delivers any reclamation
// notifications it queued. Reports whether the collector could be reached.
func (h *Host) Collect() bool {
	ok := runGC(h.vm)
	pumpPendingJobs(h.vm)
	return ok
}

// OnReclaim registers the reclamation handler.
func (h *Host) OnReclaim(fn func(core.Object)) { h.reclaim = fn }

// deliver routes one shim reclamation notification to the handler.
func (h *Host) deliver(id int) {
	o, ok := h.objects[id]
	if !ok {
		return
	}
	delete(h.objects, id)
	if h.reclaim != nil {
		h.reclaim(o)
	}
}

// Close sweeps every wrapper the FinalizationRegistry has not reported,
// then shuts the VM down.
func (h *Host) Close() error {
	if h.closed {
		return fmt.Errorf("engine instance already closed")
	}
	h.closed = true
	for id, o := range h.objects {
		delete(h.objects, id)
		if h.reclaim != nil {
			h.reclaim(o)
		}
	}
	h.vm.Close()
	return nil
}
