//go:build !v8

package dombind

import (
	"github.com/davral/dombind/internal/core"
	"github.com/davral/dombind/internal/quickjs"
)

// NewHost creates a QuickJS-backed engine instance (the default build).
// Build with -tags v8 to get the V8 backend instead.
func NewHost(cfg Config) (core.Host, error) {
	return quickjs.New(cfg.MemoryLimitMB)
}
