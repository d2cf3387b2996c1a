package invocation

import (
	"go.uber.org/zap"

	"github.com/SteveFortune/ocmock/errors"
)

// BuildFrame constructs a filled call frame for target from the argument
// snapshot. The list length must match the signature's slot count; a nil
// (never-supplied) list passes only a zero-slot signature. Each slot is
// coerced in order and any failure aborts the whole build; no partial
// frame is returned.
func BuildFrame(target Invocable, list *ArgumentList) (*Frame, error) {
	sig := target.Signature()

	supplied := 0
	if list != nil {
		supplied = list.Len()
	}
	if supplied != len(sig) {
		return nil, errors.CountMismatch(len(sig), supplied)
	}

	frame := &Frame{
		sig:   sig,
		slots: make([]slotValue, len(sig)),
	}

	for i, enc := range sig {
		var arg Argument = Absent{}
		if list != nil {
			arg = list.At(i)
		}
		v, err := coerce(i, enc, arg)
		if err != nil {
			return nil, err
		}
		frame.slots[i] = v
	}

	Logger().Debug("frame built",
		zap.Int("slots", len(sig)),
	)

	return frame, nil
}
