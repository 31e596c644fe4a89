package dombind

import "go.uber.org/zap"

// defaultTemplateCapacity is the initial size of the per-instance template
// table. Large enough that the full DOM interface set never reallocates.
const defaultTemplateCapacity = 100

// Config holds per-instance configuration for a Binder and its engine host.
type Config struct {
	// Logger receives debug-level cache traffic and warn-level anomalies.
	// nil means no logging.
	Logger *zap.Logger

	// TemplateCapacity is the initial slot capacity of the template cache.
	// Zero means defaultTemplateCapacity.
	TemplateCapacity int

	// MemoryLimitMB caps the engine instance heap for backends that
	// support it. Zero means the engine default.
	MemoryLimitMB int
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.TemplateCapacity <= 0 {
		c.TemplateCapacity = defaultTemplateCapacity
	}
	return c
}
