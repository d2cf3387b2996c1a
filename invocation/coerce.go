package invocation

import (
	stderrors "errors"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/errors"
	"github.com/SteveFortune/ocmock/invocation/internal/scalar"
)

// coerce decides whether arg is acceptable for a slot requiring the given
// encoding and produces the exact slot value to store. Rules are evaluated
// in order:
//
//  1. Absent delegates to the default synthesizer; no_default surfaces as
//     missing_argument at the slot.
//  2. Object slots accept only object references.
//  3. Every other slot requires a boxed scalar.
//  4. Numeric slots perform a checked, value-preserving conversion from the
//     box's declared width to the required one.
//  5. Void/generic pointer slots accept any pointer-declared box verbatim.
//  6. Anything else must be encoding-compatible, reinterpreted raw.
func coerce(slot int, required encoding.Encoding, arg Argument) (slotValue, error) {
	reqCat := required.Category()
	if reqCat == encoding.CatUnknown {
		return slotValue{}, errors.UnknownEncoding(slot, string(required))
	}

	switch a := arg.(type) {
	case nil, Absent:
		v, err := synthesizeDefault(required)
		if err != nil {
			if stderrors.Is(err, &errors.Error{Phase: errors.PhaseDefault, Kind: errors.KindNoDefault}) {
				return slotValue{}, errors.MissingArgument(slot, string(required))
			}
			return slotValue{}, err
		}
		return v, nil

	case ObjectRef:
		if reqCat != encoding.CatObject {
			return slotValue{}, errors.MustBeBoxed(slot, string(required))
		}
		return slotValue{obj: a.Value, isObj: true}, nil

	case ScalarBox:
		return coerceBox(slot, required, reqCat, a)

	default:
		return slotValue{}, errors.New(errors.PhaseCoerce, errors.KindTypeMismatch).
			Slot(slot).
			Required(string(required)).
			Detail("unsupported argument variant %T", arg).
			Build()
	}
}

func coerceBox(slot int, required encoding.Encoding, reqCat encoding.Category, box ScalarBox) (slotValue, error) {
	if reqCat == encoding.CatObject {
		// Object slots never accept boxed scalars.
		return slotValue{}, errors.New(errors.PhaseCoerce, errors.KindTypeMismatch).
			Slot(slot).
			Required(string(required)).
			Provided(string(box.Encoding)).
			Detail("object slot given a boxed scalar").
			Build()
	}

	boxInfo, err := box.Encoding.Layout()
	if err != nil {
		return slotValue{}, errors.New(errors.PhaseCoerce, errors.KindUnknownEncoding).
			Slot(slot).
			Provided(string(box.Encoding)).
			Cause(err).
			Build()
	}
	if uintptr(len(box.payload)) != boxInfo.Size {
		return slotValue{}, errors.InvalidBox(string(box.Encoding), int(boxInfo.Size), len(box.payload))
	}

	reqInfo, err := required.Layout()
	if err != nil {
		return slotValue{}, err
	}

	boxCat := box.Encoding.Category()

	if reqCat.IsNumeric() {
		if !boxCat.IsNumeric() {
			return slotValue{}, errors.MustBeNumber(slot, string(required), string(box.Encoding))
		}
		return convertNumeric(slot, required, reqCat, reqInfo, box, boxCat)
	}

	// Void-pointer widening: a box declared as any pointer category fits a
	// generic or void pointer slot verbatim, regardless of pointee type.
	if reqCat.IsPointer() && boxCat.IsPointer() {
		return rawSlot(reqInfo, box.payload), nil
	}

	if !encoding.Compatible(required, box.Encoding) {
		return slotValue{}, errors.TypeMismatch(slot, string(required), string(box.Encoding))
	}
	return rawSlot(reqInfo, box.payload), nil
}

// convertNumeric performs the checked numeric conversion through a pooled
// scratch buffer: the converted bytes are written into the scratch, copied
// into a frame-owned slice, and the scratch is released before returning.
func convertNumeric(slot int, required encoding.Encoding, reqCat encoding.Category, reqInfo encoding.Info, box ScalarBox, boxCat encoding.Category) (slotValue, error) {
	n, err := scalar.Decode(boxCat, box.payload)
	if err != nil {
		return slotValue{}, errors.New(errors.PhaseCoerce, errors.KindInvalidBox).
			Slot(slot).
			Provided(string(box.Encoding)).
			Cause(err).
			Build()
	}

	scratch := getScratch(reqInfo.Size)
	defer putScratch(scratch)

	if !scalar.Encode(*scratch, reqCat, n) {
		return slotValue{}, errors.LossyConversion(slot, string(required), string(box.Encoding), n.Interface())
	}

	out := make([]byte, reqInfo.Size)
	copy(out, *scratch)
	return slotValue{bytes: out}, nil
}

// rawSlot reinterprets a compatible payload into a frame-owned slice of the
// required size.
func rawSlot(reqInfo encoding.Info, payload []byte) slotValue {
	out := make([]byte, reqInfo.Size)
	copy(out, payload)
	return slotValue{bytes: out}
}
