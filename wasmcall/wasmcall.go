package wasmcall

import (
	"context"
	"encoding/binary"

	"github.com/tetratelabs/wazero/api"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/errors"
	"github.com/SteveFortune/ocmock/invocation"
)

// Callable wraps a wasm guest function as an invocation target.
type Callable struct {
	fn  api.Function
	sig invocation.Signature
}

// New derives the callable's signature from the function definition and
// wraps it. Functions with value types outside the core set are rejected.
func New(fn api.Function) (*Callable, error) {
	if fn == nil {
		return nil, errors.New(errors.PhaseBuild, errors.KindInvocationFailed).
			Detail("nil wasm function").
			Build()
	}

	sig, err := signatureFromValueTypes(fn.Definition().ParamTypes())
	if err != nil {
		return nil, err
	}
	return &Callable{fn: fn, sig: sig}, nil
}

// Signature returns the parameter slots derived from the function's core
// wasm type.
func (c *Callable) Signature() invocation.Signature {
	return c.sig
}

// Invoke lowers the frame onto the flat call stack and fires the guest
// function. Results are discarded; a guest trap surfaces as the call error.
func (c *Callable) Invoke(ctx context.Context, frame *invocation.Frame) error {
	stack := make([]uint64, frame.NumSlots())
	for i := range stack {
		v, err := lowerSlot(i, frame.Encoding(i), frame)
		if err != nil {
			return err
		}
		stack[i] = v
	}

	_, err := c.fn.Call(ctx, stack...)
	return err
}

// signatureFromValueTypes maps core wasm value types to slot encodings.
func signatureFromValueTypes(params []api.ValueType) (invocation.Signature, error) {
	sig := make(invocation.Signature, len(params))
	for i, vt := range params {
		switch vt {
		case api.ValueTypeI32:
			sig[i] = "i"
		case api.ValueTypeI64:
			sig[i] = "q"
		case api.ValueTypeF32:
			sig[i] = "f"
		case api.ValueTypeF64:
			sig[i] = "d"
		default:
			return nil, errors.New(errors.PhaseClassify, errors.KindUnknownEncoding).
				Slot(i).
				Detail("unsupported wasm value type %s", api.ValueTypeName(vt)).
				Build()
		}
	}
	return sig, nil
}

// lowerSlot widens one filled slot to a flat stack value. Scalar payloads
// are read little-endian at the slot's exact width; float bit patterns pass
// through unchanged.
func lowerSlot(i int, enc encoding.Encoding, frame *invocation.Frame) (uint64, error) {
	if frame.IsObject(i) {
		return 0, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
			Slot(i).
			Detail("object references have no wasm representation").
			Build()
	}

	b := frame.Bytes(i)
	switch len(b) {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case 8:
		return binary.LittleEndian.Uint64(b), nil
	default:
		return 0, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
			Slot(i).
			Required(string(enc)).
			Detail("slot width %d does not fit a flat stack value", len(b)).
			Build()
	}
}
