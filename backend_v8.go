//go:build v8

package dombind

import (
	"github.com/davral/dombind/internal/core"
	"github.com/davral/dombind/internal/v8engine"
)

// NewHost creates a V8-backed engine instance (-tags v8 builds).
func NewHost(cfg Config) (core.Host, error) {
	return v8engine.New(cfg.MemoryLimitMB)
}
