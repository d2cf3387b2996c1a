package invocation

import "github.com/SteveFortune/ocmock/encoding"

// slotValue is one filled storage slot: either an object reference stored
// as-is, or a scalar payload of the slot's exact byte width.
type slotValue struct {
	obj   any
	bytes []byte
	isObj bool
}

// Frame is the per-invocation buffer holding one storage slot per signature
// position. A frame is built fresh for every invocation and never persisted
// across calls; it owns no references beyond the duration of the call.
type Frame struct {
	sig   Signature
	slots []slotValue
}

// NumSlots returns the number of parameter slots in the frame.
func (f *Frame) NumSlots() int {
	return len(f.slots)
}

// Encoding returns the type encoding of slot i.
func (f *Frame) Encoding(i int) encoding.Encoding {
	return f.sig[i]
}

// IsObject reports whether slot i holds an object reference.
func (f *Frame) IsObject(i int) bool {
	return f.slots[i].isObj
}

// Object returns the reference stored in slot i. ok is false for scalar
// slots; a filled object slot may still hold a nil reference.
func (f *Frame) Object(i int) (ref any, ok bool) {
	s := f.slots[i]
	return s.obj, s.isObj
}

// Bytes returns the scalar payload of slot i, sized exactly to the slot's
// encoding, or nil for object slots. The slice is owned by the frame and
// must not be mutated.
func (f *Frame) Bytes(i int) []byte {
	return f.slots[i].bytes
}
