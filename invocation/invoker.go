package invocation

import (
	"context"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/errors"
)

// Signature is the ordered sequence of type encodings for a callable's
// caller-visible parameter slots. Hidden leading slots a frame format may
// require are the callable's own concern and never appear here.
type Signature []encoding.Encoding

// Invocable is a runtime callable that can be fired with a filled frame.
// Dispatch is self-targeted: the frame is handed to the callable itself,
// there is no separate receiver.
type Invocable interface {
	// Signature returns the callable's parameter slots. The length is
	// fixed per callable and only known at call time.
	Signature() Signature

	// Invoke fires the callable with the frame as its argument list.
	// Return values are not captured.
	Invoke(ctx context.Context, frame *Frame) error
}

// Invoke fires target with frame. A nil target is a no-op, distinguishing
// "no handler registered" from "handler registered with no side effect".
// A failure reported by the callable is wrapped as invocation_failed.
func Invoke(ctx context.Context, target Invocable, frame *Frame) error {
	if target == nil {
		return nil
	}
	if err := target.Invoke(ctx, frame); err != nil {
		return errors.InvocationFailed(err)
	}
	return nil
}
