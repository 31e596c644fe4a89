package dombind

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/davral/dombind/internal/core"
)

// wrapperEntry pairs a native handle with its single live wrapper and the
// release func that drops the native reference when the wrapper goes away.
// The cache does not keep the wrapper alive; the engine owns it.
type wrapperEntry struct {
	handle   core.Handle
	object   core.Object
	release  func(core.Handle)
	released bool
}

// WrapperCache maps native handles to their engine-side wrappers for one
// engine instance. At most one entry exists per handle; that invariant is
// what makes wrap(x) === wrap(x) hold in script code. The cache is
// single-threaded by the instance's ownership rules and takes no locks.
type WrapperCache struct {
	log      *zap.Logger
	entries  map[core.Handle]*wrapperEntry
	byObject map[core.Object]core.Handle
}

func newWrapperCache(log *zap.Logger) *WrapperCache {
	return &WrapperCache{
		log:      log,
		entries:  make(map[core.Handle]*wrapperEntry),
		byObject: make(map[core.Object]core.Handle),
	}
}

// Has reports whether a wrapper is cached for h.
func (c *WrapperCache) Has(h core.Handle) bool {
	_, ok := c.entries[h]
	return ok
}

// Get returns the cached wrapper for h.
func (c *WrapperCache) Get(h core.Handle) (core.Object, bool) {
	e, ok := c.entries[h]
	if !ok {
		return nil, false
	}
	return e.object, true
}

// Set registers a new entry. A live entry for h already existing means two
// wrappers for one native object — a logic error that breaks the identity
// invariant — so Set panics rather than let it pass. Set never invokes the
// release callback.
func (c *WrapperCache) Set(h core.Handle, o core.Object, release func(core.Handle)) {
	if _, ok := c.entries[h]; ok {
		panic(fmt.Sprintf("dombind: duplicate wrapper registration for handle %d", h))
	}
	c.entries[h] = &wrapperEntry{handle: h, object: o, release: release}
	c.byObject[o] = h
}

// OnReclaim handles the engine's notification that o was collected: the
// entry's release callback runs exactly once and the entry is removed.
// A second notification for the same object finds no entry and is a no-op,
// so a misbehaving engine cannot double-decrement the native count. The
// lookup is keyed by the object itself, so a stale notification delivered
// after the handle was re-wrapped cannot disturb the new entry.
func (c *WrapperCache) OnReclaim(o core.Object) {
	h, ok := c.byObject[o]
	if !ok {
		c.log.Warn("reclaim notification for unknown wrapper")
		return
	}
	e := c.entries[h]
	delete(c.byObject, o)
	delete(c.entries, h)
	c.releaseOnce(e)
	c.log.Debug("wrapper reclaimed", zap.Uint64("handle", uint64(h)))
}

// Len returns the number of live entries.
func (c *WrapperCache) Len() int { return len(c.entries) }

// Clear releases every remaining entry exactly once and empties the cache.
// Called at instance teardown for engines that cannot deliver individual
// reclamation past that point.
func (c *WrapperCache) Clear() {
	for _, e := range c.entries {
		c.releaseOnce(e)
	}
	c.entries = make(map[core.Handle]*wrapperEntry)
	c.byObject = make(map[core.Object]core.Handle)
}

func (c *WrapperCache) releaseOnce(e *wrapperEntry) {
	if e == nil || e.released {
		return
	}
	e.released = true
	if e.release != nil {
		e.release(e.handle)
	}
}
