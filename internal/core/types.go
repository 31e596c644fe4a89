package core

// Handle identifies one native object. Handles are dense ids issued by the
// native object model's handle table rather than raw addresses, so they can
// be stored losslessly in engine-side number slots and validated on the way
// back out.
type Handle uint64

// NullHandle is the native "absence" value. Wrapping it produces the
// engine's absence value (a nil Object) and never touches any cache.
const NullHandle Handle = 0

// Tagged is the value stored in a wrapper's internal storage: the native
// handle plus the slot of the interface it was wrapped as. The tag is
// validated on Unwrap, which turns a wrong-interface access into a clean
// type mismatch instead of a misinterpreted pointer.
type Tagged struct {
	Slot   uint32
	Handle Handle
}
