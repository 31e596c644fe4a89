//go:build v8

// Package v8engine implements the core.Host engine boundary on a V8
// isolate via v8go. It shares the binding shim with the QuickJS backend:
// wrapper objects live inside the isolate, tracked in the shim's table
// and referred to from Go by id. The table roots each wrapper strongly
// until Expose or Unroot hands its lifetime to script, so a GC cycle
// between instantiation and handoff cannot kill a just-created wrapper.
// V8 runs FinalizationRegistry callbacks during its own GC cycles; Close
// sweeps anything not yet reported.
package v8engine

import (
	"fmt"

	v8 "github.com/tommie/v8go"

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

// Host is one V8 isolate plus context.
type Host struct {
	iso     *v8.Isolate
	ctx     *v8.Context
	reclaim func(core.Object)
	objects map[int]*object
	nextObj int
	nextTpl int
	closed  bool
}

var _ core.Host = (*Host)(nil)

// New creates an isolate and context and installs the binding shim.
// memoryLimitMB caps the isolate heap when positive.
func New(memoryLimitMB int) (*Host, error) {
	var iso *v8.Isolate
	if memoryLimitMB > 0 {
		heapSize := uint64(memoryLimitMB) * 1024 * 1024
		iso = v8.NewIsolate(v8.WithResourceConstraints(heapSize/2, heapSize))
	} else {
		iso = v8.NewIsolate()
	}
	ctx := v8.NewContext(iso)

	h := &Host{iso: iso, ctx: ctx, objects: make(map[int]*object), nextObj: 1}

	// The reclaim callback must exist before the shim's
	// FinalizationRegistry can reference it.
	fnTmpl := v8.NewFunctionTemplate(iso, func(info *v8.FunctionCallbackInfo) *v8.Value {
		args := info.Args()
		if len(args) > 0 {
			h.deliver(int(args[0].Integer()))
		}
		return nil
	})
	if err := ctx.Global().Set(core.ReclaimFuncName, fnTmpl.GetFunction(ctx)); err != nil {
		ctx.Close()
		iso.Dispose()
		return nil, fmt.Errorf("registering reclaim callback: %w", err)
	}
	if _, err := ctx.RunScript(core.ShimJS, "dombind_shim.js"); err != nil {
		ctx.Close()
		iso.Dispose()
		return nil, fmt.Errorf("installing binding shim: %w", err)
	}
	return h, nil
}

// Eval evaluates JavaScript and discards the result.
func (h *Host) Eval(js string) error {
	_, err := h.ctx.RunScript(js, "dombind_eval.js")
	return err
}

// evalInt evaluates JavaScript and returns the result as a Go int.
func (h *Host) evalInt(js string) (int, error) {
	val, err := h.ctx.RunScript(js, "dombind_eval.js")
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, nil
	}
	return int(val.Integer()), nil
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

// RunMicrotasks pumps the isolate's microtask queue, which is when
// FinalizationRegistry callbacks delivered by V8's GC get to run.
func (h *Host) RunMicrotasks() {
	h.ctx.PerformMicrotaskCheckpoint()
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
// then disposes the isolate.
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
	h.ctx.Close()
	h.iso.Dispose()
	return nil
}
