package dombind

import "github.com/davral/dombind/internal/core"

// Lifetime is the pair of native lifetime functions for one interface.
// Release must be the correctly-typed decrement for that interface's
// native type; a mismatch is a memory-safety bug on the native side.
type Lifetime struct {
	AddRef  func(core.Handle)
	Release func(core.Handle)
}

// LifetimeTable maps interface slots to their native lifetime functions.
// Keeping one table per binder instead of a closure per wrapper means
// wrapper creation allocates nothing beyond the engine object itself.
type LifetimeTable struct {
	bySlot []Lifetime
	bound  []bool
}

// NewLifetimeTable returns an empty table.
func NewLifetimeTable() *LifetimeTable {
	return &LifetimeTable{}
}

// Bind associates the slot with its lifetime functions, replacing any
// previous binding.
func (t *LifetimeTable) Bind(slot uint32, l Lifetime) {
	if int(slot) >= len(t.bySlot) {
		grownL := make([]Lifetime, int(slot)+1)
		copy(grownL, t.bySlot)
		t.bySlot = grownL
		grownB := make([]bool, int(slot)+1)
		copy(grownB, t.bound)
		t.bound = grownB
	}
	t.bySlot[slot] = l
	t.bound[slot] = true
}

// For returns the lifetime bound to slot.
func (t *LifetimeTable) For(slot uint32) (Lifetime, bool) {
	if int(slot) >= len(t.bySlot) || !t.bound[slot] {
		return Lifetime{}, false
	}
	return t.bySlot[slot], true
}
