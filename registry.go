package dombind

import "fmt"

// Descriptor is the immutable, registry-resident description of one
// wrappable native interface. Slots are dense, assigned at registration
// time, and stable for the lifetime of the registry.
type Descriptor struct {
	Name   string
	Parent *Descriptor // nil for root interfaces
	Slot   uint32
}

// Registry holds the compile-time-known set of wrappable interfaces. It is
// built once, parents before children, and then only read. A Registry may
// be shared by any number of engine instances; per-instance state lives in
// the caches, never here.
type Registry struct {
	byName map[string]*Descriptor
	bySlot []*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds an interface under a freshly assigned slot. parent is the
// name of an already-registered interface, or "" for a root interface.
// Registering a child before its parent fails with ErrNotFound; that is a
// build-order bug, not a runtime condition.
func (r *Registry) Register(name, parent string) (*Descriptor, error) {
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("register %s: %w", name, ErrDoubleRegistration)
	}
	var p *Descriptor
	if parent != "" {
		var ok bool
		p, ok = r.byName[parent]
		if !ok {
			return nil, fmt.Errorf("register %s: parent %s: %w", name, parent, ErrNotFound)
		}
	}
	d := &Descriptor{Name: name, Parent: p, Slot: uint32(len(r.bySlot))}
	r.byName[name] = d
	r.bySlot = append(r.bySlot, d)
	return d, nil
}

// MustRegister is Register for startup tables: it panics on any
// registration error so ordering bugs surface immediately.
func (r *Registry) MustRegister(name, parent string) *Descriptor {
	d, err := r.Register(name, parent)
	if err != nil {
		panic("dombind: " + err.Error())
	}
	return d
}

// Describe returns the descriptor for name, or ErrNotFound.
func (r *Registry) Describe(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("describe %s: %w", name, ErrNotFound)
	}
	return d, nil
}

// Descriptor returns the descriptor registered at slot.
func (r *Registry) Descriptor(slot uint32) (*Descriptor, bool) {
	if int(slot) >= len(r.bySlot) {
		return nil, false
	}
	return r.bySlot[slot], true
}

// Len returns the number of registered interfaces.
func (r *Registry) Len() int { return len(r.bySlot) }

// AssignableTo reports whether an object tagged with slot satisfies the
// interface at target, walking the inheritance chain upward.
func (r *Registry) AssignableTo(slot, target uint32) bool {
	d, ok := r.Descriptor(slot)
	if !ok {
		return false
	}
	for ; d != nil; d = d.Parent {
		if d.Slot == target {
			return true
		}
	}
	return false
}
