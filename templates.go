package dombind

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/davral/dombind/internal/core"
)

// internalSlotCount is the internal storage declared on every template:
// slot 0 holds the tagged native handle.
const internalSlotCount = 1

// TemplateCache stores one engine instance's type templates, indexed by
// interface slot. Templates are built lazily on first request, ancestors
// first, and are identity-stable: every call for the same slot returns the
// same template. The cache is single-threaded by the instance's ownership
// rules and takes no locks.
type TemplateCache struct {
	host core.Host
	reg  *Registry
	log  *zap.Logger

	templates []core.Template
	failed    error // poisoned after a construction failure
}

func newTemplateCache(host core.Host, reg *Registry, capacity int, log *zap.Logger) *TemplateCache {
	return &TemplateCache{
		host:      host,
		reg:       reg,
		log:       log,
		templates: make([]core.Template, capacity),
	}
}

// GetOrBuild returns the template for slot, constructing it (and any
// missing ancestor templates, parent first) on the first request. A
// construction failure poisons the cache for this engine instance: the
// same TemplateError is returned on every subsequent call and nothing is
// retried.
func (c *TemplateCache) GetOrBuild(slot uint32) (core.Template, error) {
	if c.failed != nil {
		return nil, c.failed
	}
	if int(slot) < len(c.templates) {
		if t := c.templates[slot]; t != nil {
			return t, nil
		}
	}

	d, ok := c.reg.Descriptor(slot)
	if !ok {
		return nil, fmt.Errorf("template slot %d: %w", slot, ErrNotFound)
	}

	var parent core.Template
	if d.Parent != nil {
		var err error
		parent, err = c.GetOrBuild(d.Parent.Slot)
		if err != nil {
			return nil, err
		}
	}

	t, err := c.host.NewTemplate(d.Name, internalSlotCount, parent)
	if err != nil {
		c.failed = &TemplateError{Name: d.Name, Slot: slot, Err: err}
		c.log.Error("template construction failed, instance poisoned",
			zap.String("interface", d.Name), zap.Uint32("slot", slot), zap.Error(err))
		return nil, c.failed
	}

	if int(slot) >= len(c.templates) {
		grown := make([]core.Template, int(slot)+1)
		copy(grown, c.templates)
		c.templates = grown
	}
	c.templates[slot] = t
	c.log.Debug("template built", zap.String("interface", d.Name), zap.Uint32("slot", slot))
	return t, nil
}

// Built reports whether the template for slot has been constructed.
func (c *TemplateCache) Built(slot uint32) bool {
	return int(slot) < len(c.templates) && c.templates[slot] != nil
}
