package core

// Template is an engine-side descriptor used to construct wrapper objects
// for one interface, including its prototype chain. Templates are owned by
// the engine instance that built them and are never shared across instances.
type Template interface {
	// Name returns the interface name the template was built for.
	Name() string
}

// Object is an engine-side wrapper object. Implementations must be
// comparable (pointer-backed) and a Host must deliver the exact Object
// value returned from Instantiate when it notifies reclamation.
type Object interface {
	// Template returns the template the object was instantiated from,
	// or nil for objects that did not come out of Instantiate.
	Template() Template
}

// Host is the boundary with one scripting-engine instance. Engine
// implementations (QuickJS, V8, the in-process test engine) must satisfy
// this interface. All calls for one Host must come from the goroutine that
// owns the engine instance; Hosts are not safe for concurrent use.
type Host interface {
	// NewTemplate creates a type template with the declared count of
	// internal storage slots, chaining to parent when non-nil. The parent
	// must be a template previously created by this Host.
	NewTemplate(name string, internalSlots int, parent Template) (Template, error)

	// Instantiate constructs a fresh engine object from the template.
	Instantiate(t Template) (Object, error)

	// SetInternal stores a tagged native handle in the object's internal
	// storage slot i.
	SetInternal(o Object, i int, tag Tagged) error

	// Internal retrieves the tagged handle from internal storage slot i.
	// It reports false for objects with no internal storage, foreign
	// objects, or slots that were never set; it never fails harder than
	// that.
	Internal(o Object, i int) (Tagged, bool)

	// OnReclaim registers the single reclamation handler. The Host invokes
	// it exactly once per object when no script-visible reference remains,
	// and once for every still-live object during Close.
	OnReclaim(fn func(Object))

	// Close tears down the engine instance, delivering reclamation for
	// everything still alive first.
	Close() error
}
