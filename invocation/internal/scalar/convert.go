package scalar

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/SteveFortune/ocmock/encoding"
)

type form uint8

const (
	formInt form = iota
	formUint
	formFloat
)

// Num is a decoded numeric value with its source form preserved, so that
// conversion checks can reason about sign and float-ness precisely.
type Num struct {
	form form
	i    int64
	u    uint64
	f    float64
}

// Interface returns the value as a plain Go value for diagnostics.
func (n Num) Interface() any {
	switch n.form {
	case formInt:
		return n.i
	case formUint:
		return n.u
	default:
		return n.f
	}
}

// Decode reads a little-endian payload of the category's exact width.
func Decode(cat encoding.Category, b []byte) (Num, error) {
	switch cat {
	case encoding.CatS8:
		if len(b) != 1 {
			return Num{}, widthError(cat, 1, len(b))
		}
		return Num{form: formInt, i: int64(int8(b[0]))}, nil
	case encoding.CatS16:
		if len(b) != 2 {
			return Num{}, widthError(cat, 2, len(b))
		}
		return Num{form: formInt, i: int64(int16(binary.LittleEndian.Uint16(b)))}, nil
	case encoding.CatS32:
		if len(b) != 4 {
			return Num{}, widthError(cat, 4, len(b))
		}
		return Num{form: formInt, i: int64(int32(binary.LittleEndian.Uint32(b)))}, nil
	case encoding.CatS64:
		if len(b) != 8 {
			return Num{}, widthError(cat, 8, len(b))
		}
		return Num{form: formInt, i: int64(binary.LittleEndian.Uint64(b))}, nil
	case encoding.CatU8:
		if len(b) != 1 {
			return Num{}, widthError(cat, 1, len(b))
		}
		return Num{form: formUint, u: uint64(b[0])}, nil
	case encoding.CatU16:
		if len(b) != 2 {
			return Num{}, widthError(cat, 2, len(b))
		}
		return Num{form: formUint, u: uint64(binary.LittleEndian.Uint16(b))}, nil
	case encoding.CatU32:
		if len(b) != 4 {
			return Num{}, widthError(cat, 4, len(b))
		}
		return Num{form: formUint, u: uint64(binary.LittleEndian.Uint32(b))}, nil
	case encoding.CatU64:
		if len(b) != 8 {
			return Num{}, widthError(cat, 8, len(b))
		}
		return Num{form: formUint, u: binary.LittleEndian.Uint64(b)}, nil
	case encoding.CatF32:
		if len(b) != 4 {
			return Num{}, widthError(cat, 4, len(b))
		}
		return Num{form: formFloat, f: float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))}, nil
	case encoding.CatF64:
		if len(b) != 8 {
			return Num{}, widthError(cat, 8, len(b))
		}
		return Num{form: formFloat, f: math.Float64frombits(binary.LittleEndian.Uint64(b))}, nil
	default:
		return Num{}, fmt.Errorf("category %s is not numeric", cat)
	}
}

func widthError(cat encoding.Category, want, got int) error {
	return fmt.Errorf("%s payload is %d byte(s), want %d", cat, got, want)
}

// Encode writes the value into dst as the destination category's exact
// width, little-endian. It reports false when the value is not exactly
// representable in the destination: overflow, sign loss, or fractional or
// precision loss.
func Encode(dst []byte, cat encoding.Category, n Num) bool {
	switch cat {
	case encoding.CatS8:
		v, ok := n.toIntRange(math.MinInt8, math.MaxInt8)
		if !ok {
			return false
		}
		dst[0] = byte(int8(v))
		return true
	case encoding.CatS16:
		v, ok := n.toIntRange(math.MinInt16, math.MaxInt16)
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
		return true
	case encoding.CatS32:
		v, ok := n.toIntRange(math.MinInt32, math.MaxInt32)
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
		return true
	case encoding.CatS64:
		v, ok := n.toInt64()
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint64(dst, uint64(v))
		return true
	case encoding.CatU8:
		v, ok := n.toUintRange(math.MaxUint8)
		if !ok {
			return false
		}
		dst[0] = byte(v)
		return true
	case encoding.CatU16:
		v, ok := n.toUintRange(math.MaxUint16)
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint16(dst, uint16(v))
		return true
	case encoding.CatU32:
		v, ok := n.toUintRange(math.MaxUint32)
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint32(dst, uint32(v))
		return true
	case encoding.CatU64:
		v, ok := n.toUint64()
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint64(dst, v)
		return true
	case encoding.CatF32:
		v, ok := n.toFloat32()
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
		return true
	case encoding.CatF64:
		v, ok := n.toFloat64()
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
		return true
	default:
		return false
	}
}

func (n Num) toInt64() (int64, bool) {
	switch n.form {
	case formInt:
		return n.i, true
	case formUint:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
	case formFloat:
		// Exact round-trip: the float must hold an integral value inside
		// the destination range. The upper bound is checked exclusively
		// because float64(MaxInt64) rounds up to 2^63.
		if n.f >= math.MinInt64 && n.f < float64(math.MaxInt64) && n.f == float64(int64(n.f)) {
			return int64(n.f), true
		}
	}
	return 0, false
}

func (n Num) toIntRange(min, max int64) (int64, bool) {
	v, ok := n.toInt64()
	if !ok || v < min || v > max {
		return 0, false
	}
	return v, true
}

func (n Num) toUint64() (uint64, bool) {
	switch n.form {
	case formUint:
		return n.u, true
	case formInt:
		if n.i >= 0 {
			return uint64(n.i), true
		}
	case formFloat:
		if n.f >= 0 && n.f < float64(math.MaxUint64) && n.f == float64(uint64(n.f)) {
			return uint64(n.f), true
		}
	}
	return 0, false
}

func (n Num) toUintRange(max uint64) (uint64, bool) {
	v, ok := n.toUint64()
	if !ok || v > max {
		return 0, false
	}
	return v, true
}

func (n Num) toFloat64() (float64, bool) {
	switch n.form {
	case formFloat:
		return n.f, true
	case formInt:
		f := float64(n.i)
		if f >= math.MinInt64 && f < float64(math.MaxInt64) && int64(f) == n.i {
			return f, true
		}
	case formUint:
		f := float64(n.u)
		if f >= 0 && f < float64(math.MaxUint64) && uint64(f) == n.u {
			return f, true
		}
	}
	return 0, false
}

func (n Num) toFloat32() (float32, bool) {
	f, ok := n.toFloat64()
	if !ok {
		return 0, false
	}
	v := float32(f)
	// Overflow to infinity and precision loss both fail the round trip.
	if float64(v) != f {
		return 0, false
	}
	return v, true
}
