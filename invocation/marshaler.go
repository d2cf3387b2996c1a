package invocation

import (
	"context"

	"go.uber.org/zap"
)

// Marshaler captures an immutable argument snapshot and applies it to
// callables as they are handled. A marshaler constructed without a list is
// "generic": it validates against whatever signature it is eventually
// applied to, and passes only zero-slot signatures.
//
// A marshaler supports at most one in-flight build+invoke pair at a time;
// the snapshot itself is immutable and safe to share between duplicates.
type Marshaler struct {
	list *ArgumentList
}

// NewMarshaler snapshots the given arguments. The snapshot is
// copy-on-construct: mutating the caller's values afterwards does not
// affect the marshaler.
func NewMarshaler(args ...Argument) *Marshaler {
	list := NewArgumentList(args...)
	return &Marshaler{list: &list}
}

// NewGenericMarshaler constructs a marshaler with no argument list at all,
// to be validated later against whatever signature it is applied to.
func NewGenericMarshaler() *Marshaler {
	return &Marshaler{}
}

// Duplicate returns a marshaler sharing the same immutable argument
// snapshot. This is a cheap handle copy, never a deep clone; frames built
// from a duplicate are value-identical to frames built from the original.
func (m *Marshaler) Duplicate() *Marshaler {
	return &Marshaler{list: m.list}
}

// Arguments returns the snapshot, or nil for a generic marshaler.
func (m *Marshaler) Arguments() *ArgumentList {
	return m.list
}

// Build constructs a filled frame for target from the snapshot.
func (m *Marshaler) Build(target Invocable) (*Frame, error) {
	return BuildFrame(target, m.list)
}

// Handle builds a frame for target and fires it. A nil target is a no-op:
// no frame is built and no error is returned.
func (m *Marshaler) Handle(ctx context.Context, target Invocable) error {
	if target == nil {
		return nil
	}

	frame, err := m.Build(target)
	if err != nil {
		return err
	}

	Logger().Debug("invoking callable",
		zap.Int("slots", frame.NumSlots()),
	)

	return Invoke(ctx, target, frame)
}
