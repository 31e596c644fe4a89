// Package dombind bridges a reference-counted native object model to an
// embedded JavaScript engine so both runtimes share identity and lifetime
// for the same logical objects.
//
// The package is organized around four pieces: a process-wide interface
// Registry describing the wrappable native interfaces and their
// inheritance; a per-engine-instance TemplateCache that lazily builds type
// templates ancestor-first; a per-engine-instance WrapperCache that maps
// each native handle to its single live wrapper; and the Binder, which ties
// them together behind the per-interface Wrap/Unwrap protocol. Engine
// backends (QuickJS by default, V8 with -tags v8) live under internal/ and
// plug in through the core.Host boundary.
package dombind

import "github.com/davral/dombind/internal/core"

// Handle identifies one native object; see core.Handle.
type Handle = core.Handle

// NullHandle is the native absence value.
const NullHandle = core.NullHandle

// Tagged is the interface-tagged handle stored in a wrapper's internal slot.
type Tagged = core.Tagged

// Template is an engine-side type template.
type Template = core.Template

// Object is an engine-side wrapper object.
type Object = core.Object

// Host is the boundary with one scripting-engine instance.
type Host = core.Host
