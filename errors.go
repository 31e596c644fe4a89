package dombind

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an interface name has not been registered.
// Hitting it during registry construction indicates a build-order bug
// (a child registered before its parent) and should be treated as fatal.
var ErrNotFound = errors.New("interface not registered")

// ErrDoubleRegistration is returned when a name is registered twice.
var ErrDoubleRegistration = errors.New("interface already registered")

// TemplateError reports a failed template construction. It is fatal for
// the engine instance that produced it: the template cache stays poisoned
// and every later GetOrBuild returns the same error, because a half-built
// inheritance chain cannot be safely retried.
type TemplateError struct {
	Name string
	Slot uint32
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("building template for %s (slot %d): %v", e.Name, e.Slot, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }
