package invocation

import (
	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/errors"
)

// synthesizeDefault produces the canonical zero value for a slot encoding:
// a nil reference for objects, a null pointer for pointer categories, and a
// bit-pattern zero of the slot's exact width for bool and numeric widths.
//
// Structs have no universally meaningful zero, and unknown encodings have
// no layout at all, so both fail with no_default; the caller must supply
// those slots explicitly. No category falls through silently.
func synthesizeDefault(enc encoding.Encoding) (slotValue, error) {
	switch cat := enc.Category(); cat {
	case encoding.CatObject:
		return slotValue{isObj: true}, nil

	case encoding.CatPointer, encoding.CatVoidPointer,
		encoding.CatBool,
		encoding.CatS8, encoding.CatU8,
		encoding.CatS16, encoding.CatU16,
		encoding.CatS32, encoding.CatU32,
		encoding.CatS64, encoding.CatU64,
		encoding.CatF32, encoding.CatF64:
		info, err := enc.Layout()
		if err != nil {
			return slotValue{}, err
		}
		return slotValue{bytes: make([]byte, info.Size)}, nil

	default:
		return slotValue{}, errors.NoDefault(string(enc))
	}
}
