package wasmcall

import (
	"go.bytecodealliance.org/wit"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/errors"
	"github.com/SteveFortune/ocmock/invocation"
)

// FromWIT maps a WIT primitive type to its slot encoding. Compound WIT
// types (records, lists, variants) have no single-slot encoding and are
// rejected.
func FromWIT(t wit.Type) (encoding.Encoding, error) {
	switch t.(type) {
	case wit.Bool:
		return "B", nil
	case wit.S8:
		return "c", nil
	case wit.U8:
		return "C", nil
	case wit.S16:
		return "s", nil
	case wit.U16:
		return "S", nil
	case wit.S32:
		return "i", nil
	case wit.U32:
		return "I", nil
	case wit.S64:
		return "q", nil
	case wit.U64:
		return "Q", nil
	case wit.F32:
		return "f", nil
	case wit.F64:
		return "d", nil
	case wit.Char:
		return "I", nil // unicode scalar value, u32 on the wire
	default:
		return "", errors.New(errors.PhaseClassify, errors.KindUnknownEncoding).
			Detail("WIT type %T has no slot encoding", t).
			Build()
	}
}

// SignatureFromWIT maps an ordered WIT parameter list to a callable
// signature.
func SignatureFromWIT(params []wit.Type) (invocation.Signature, error) {
	sig := make(invocation.Signature, len(params))
	for i, p := range params {
		enc, err := FromWIT(p)
		if err != nil {
			return nil, err
		}
		sig[i] = enc
	}
	return sig, nil
}
