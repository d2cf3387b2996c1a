package invocation

import (
	"encoding/binary"
	"math"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/errors"
)

// Argument is a caller-supplied value for one parameter slot.
type Argument interface {
	isArgument()
}

// Absent is the nil sentinel: the slot is filled from its synthesized
// default, or fails when the slot's category has none.
type Absent struct{}

func (Absent) isArgument() {}

// ObjectRef is an opaque handle stored by reference into an object slot.
// The frame never copies the referenced value and does not extend its
// lifetime beyond the call.
type ObjectRef struct {
	Value any
}

func (ObjectRef) isArgument() {}

// Object wraps a handle as an ObjectRef argument.
func Object(v any) ObjectRef {
	return ObjectRef{Value: v}
}

// ScalarBox is a value boxed with its own declared type encoding. The
// payload length always equals the byte size implied by the encoding.
type ScalarBox struct {
	Encoding encoding.Encoding
	payload  []byte
}

func (ScalarBox) isArgument() {}

// Bytes returns a copy of the boxed payload.
func (b ScalarBox) Bytes() []byte {
	out := make([]byte, len(b.payload))
	copy(out, b.payload)
	return out
}

// Box wraps a raw payload with its declared encoding, validating that the
// payload length matches the encoding's byte size. The payload is copied;
// later mutation of the caller's slice does not affect the box.
func Box(enc encoding.Encoding, payload []byte) (ScalarBox, error) {
	info, err := enc.Layout()
	if err != nil {
		return ScalarBox{}, err
	}
	if uintptr(len(payload)) != info.Size {
		return ScalarBox{}, errors.InvalidBox(string(enc), int(info.Size), len(payload))
	}
	own := make([]byte, len(payload))
	copy(own, payload)
	return ScalarBox{Encoding: enc, payload: own}, nil
}

// mustBox is for the fixed-width constructors below, whose payloads are
// correct by construction.
func mustBox(enc encoding.Encoding, payload []byte) ScalarBox {
	return ScalarBox{Encoding: enc, payload: payload}
}

func BoxBool(v bool) ScalarBox {
	b := []byte{0}
	if v {
		b[0] = 1
	}
	return mustBox("B", b)
}

func BoxInt8(v int8) ScalarBox {
	return mustBox("c", []byte{byte(v)})
}

func BoxUint8(v uint8) ScalarBox {
	return mustBox("C", []byte{v})
}

func BoxInt16(v int16) ScalarBox {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return mustBox("s", b)
}

func BoxUint16(v uint16) ScalarBox {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return mustBox("S", b)
}

func BoxInt32(v int32) ScalarBox {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return mustBox("i", b)
}

func BoxUint32(v uint32) ScalarBox {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return mustBox("I", b)
}

func BoxInt64(v int64) ScalarBox {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return mustBox("q", b)
}

func BoxUint64(v uint64) ScalarBox {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return mustBox("Q", b)
}

func BoxFloat32(v float32) ScalarBox {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	return mustBox("f", b)
}

func BoxFloat64(v float64) ScalarBox {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return mustBox("d", b)
}

// BoxPointer boxes a pointer-width address under the given pointer
// encoding (for example "^i" or "^v").
func BoxPointer(enc encoding.Encoding, addr uint64) (ScalarBox, error) {
	if !enc.Category().IsPointer() {
		return ScalarBox{}, errors.New(errors.PhaseCoerce, errors.KindInvalidBox).
			Provided(string(enc)).
			Detail("encoding is not a pointer category").
			Build()
	}
	b := make([]byte, encoding.PointerSize)
	binary.LittleEndian.PutUint64(b, addr)
	return mustBox(enc, b), nil
}

// ArgumentList is an ordered, fixed-length, immutable snapshot of arguments
// captured at marshaler construction. Mutating the caller's original slice
// after construction has no effect on the list.
type ArgumentList struct {
	args []Argument
}

// NewArgumentList snapshots the given arguments.
func NewArgumentList(args ...Argument) ArgumentList {
	own := make([]Argument, len(args))
	copy(own, args)
	return ArgumentList{args: own}
}

// Len returns the number of arguments in the snapshot.
func (l ArgumentList) Len() int {
	return len(l.args)
}

// At returns the argument at position i. A nil entry reads as Absent.
func (l ArgumentList) At(i int) Argument {
	if l.args[i] == nil {
		return Absent{}
	}
	return l.args[i]
}
