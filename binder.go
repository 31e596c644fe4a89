package dombind

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/davral/dombind/internal/core"
)

// Binder owns the binding state of one engine instance: its template cache
// and wrapper cache. Binders for distinct instances are fully independent;
// nothing here is a process-wide singleton. A Binder must only be used
// from the goroutine that owns its engine instance.
type Binder struct {
	host      core.Host
	reg       *Registry
	life      *LifetimeTable
	templates *TemplateCache
	wrappers  *WrapperCache
	log       *zap.Logger
}

// NewBinder wires a binder to an engine instance. The registry and
// lifetime table are shared, read-only inputs; the caches are created
// fresh for this instance. The binder installs itself as the host's
// reclamation handler.
func NewBinder(host core.Host, reg *Registry, life *LifetimeTable, cfg Config) *Binder {
	cfg = cfg.withDefaults()
	b := &Binder{
		host:      host,
		reg:       reg,
		life:      life,
		templates: newTemplateCache(host, reg, cfg.TemplateCapacity, cfg.Logger),
		wrappers:  newWrapperCache(cfg.Logger),
		log:       cfg.Logger,
	}
	host.OnReclaim(b.wrappers.OnReclaim)
	return b
}

// Binding returns the per-interface Wrap/Unwrap view for name. The
// interface must be registered and have lifetime functions bound.
func (b *Binder) Binding(name string) (*Binding, error) {
	d, err := b.reg.Describe(name)
	if err != nil {
		return nil, err
	}
	life, ok := b.life.For(d.Slot)
	if !ok {
		return nil, fmt.Errorf("binding %s: no lifetime bound for slot %d: %w", name, d.Slot, ErrNotFound)
	}
	return &Binding{binder: b, desc: d, life: life}, nil
}

// MustBinding is Binding for startup wiring; it panics on error.
func (b *Binder) MustBinding(name string) *Binding {
	bn, err := b.Binding(name)
	if err != nil {
		panic("dombind: " + err.Error())
	}
	return bn
}

// Templates exposes the instance's template cache.
func (b *Binder) Templates() *TemplateCache { return b.templates }

// Wrappers returns the number of live wrappers, for observability.
func (b *Binder) Wrappers() int { return b.wrappers.Len() }

// Close tears down the engine instance. The host delivers reclamation for
// every still-live wrapper; Clear then releases anything the engine could
// not notify about, so no native reference outlives the instance.
func (b *Binder) Close() error {
	err := b.host.Close()
	b.wrappers.Clear()
	return err
}

// Binding is the wrap/unwrap protocol for a single interface on a single
// engine instance.
type Binding struct {
	binder *Binder
	desc   *Descriptor
	life   Lifetime
}

// Descriptor returns the interface descriptor this binding serves.
func (bn *Binding) Descriptor() *Descriptor { return bn.desc }

// Wrap returns the engine object representing h, creating it on first
// sight. Wrapping NullHandle returns nil without touching any cache or
// reference count. Repeated wraps of the same handle return the identical
// object — reference equality in script is identity on the native object.
// A newly created wrapper increments the native reference count exactly
// once; the matching decrement runs when the engine reclaims the wrapper.
func (bn *Binding) Wrap(h core.Handle) (core.Object, error) {
	b := bn.binder
	if h == core.NullHandle {
		return nil, nil
	}
	if o, ok := b.wrappers.Get(h); ok {
		b.log.Debug("wrap cache hit",
			zap.String("interface", bn.desc.Name), zap.Uint64("handle", uint64(h)))
		return o, nil
	}

	t, err := b.templates.GetOrBuild(bn.desc.Slot)
	if err != nil {
		return nil, err
	}
	o, err := b.host.Instantiate(t)
	if err != nil {
		return nil, fmt.Errorf("instantiating %s wrapper: %w", bn.desc.Name, err)
	}
	if err := b.host.SetInternal(o, 0, core.Tagged{Slot: bn.desc.Slot, Handle: h}); err != nil {
		return nil, fmt.Errorf("storing native handle in %s wrapper: %w", bn.desc.Name, err)
	}

	bn.life.AddRef(h)
	b.wrappers.Set(h, o, bn.life.Release)
	b.log.Debug("wrapper created",
		zap.String("interface", bn.desc.Name), zap.Uint64("handle", uint64(h)))
	return o, nil
}

// Unwrap recovers the native handle from an engine object. It returns
// NullHandle — never an error — for nil objects, objects without internal
// storage, objects this subsystem did not produce, and wrappers whose
// interface tag is not assignable to this binding's interface. Callers
// performing native operations must treat NullHandle as a type mismatch.
func (bn *Binding) Unwrap(o core.Object) core.Handle {
	if o == nil {
		return core.NullHandle
	}
	tag, ok := bn.binder.host.Internal(o, 0)
	if !ok {
		return core.NullHandle
	}
	if !bn.binder.reg.AssignableTo(tag.Slot, bn.desc.Slot) {
		return core.NullHandle
	}
	return tag.Handle
}
