package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the marshaling pipeline the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // type encoding interpretation
	PhaseDefault  Phase = "default"  // default value synthesis
	PhaseCoerce   Phase = "coerce"   // argument coercion
	PhaseBuild    Phase = "build"    // frame construction
	PhaseInvoke   Phase = "invoke"   // firing the callable
)

// Kind categorizes the error
type Kind string

const (
	KindCountMismatch    Kind = "count_mismatch"    // argument list length != signature slots
	KindMissingArgument  Kind = "missing_argument"  // absent value for a slot with no default
	KindMustBeBoxed      Kind = "must_be_boxed"     // object reference given for a scalar slot
	KindMustBeNumber     Kind = "must_be_number"    // non-numeric box for a numeric slot
	KindLossyConversion  Kind = "lossy_conversion"  // value not exactly representable at slot width
	KindTypeMismatch     Kind = "type_mismatch"     // incompatible, non-widened encodings
	KindUnknownEncoding  Kind = "unknown_encoding"  // interpreter cannot classify a descriptor
	KindNoDefault        Kind = "no_default"        // category has no canonical zero value
	KindInvalidBox       Kind = "invalid_box"       // box payload does not match its encoding
	KindInvocationFailed Kind = "invocation_failed" // callable itself reported a failure
)

// NoSlot marks an error not attributable to a particular parameter slot.
const NoSlot = -1

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Required string
	Provided string
	Detail   string
	Slot     int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Slot != NoSlot {
		fmt.Fprintf(&b, " at slot %d", e.Slot)
	}

	if e.Required != "" || e.Provided != "" {
		b.WriteString(": ")
		if e.Required != "" && e.Provided != "" {
			fmt.Fprintf(&b, "required '%s', provided '%s'", e.Required, e.Provided)
		} else if e.Required != "" {
			fmt.Fprintf(&b, "required '%s'", e.Required)
		} else {
			fmt.Fprintf(&b, "provided '%s'", e.Provided)
		}
	}

	if e.Detail != "" {
		if e.Required != "" || e.Provided != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Slot:  NoSlot,
		},
	}
}

// Slot sets the offending parameter slot index
func (b *Builder) Slot(i int) *Builder {
	b.err.Slot = i
	return b
}

// Required sets the slot's required type encoding
func (b *Builder) Required(enc string) *Builder {
	b.err.Required = enc
	return b
}

// Provided sets the caller-supplied type encoding
func (b *Builder) Provided(enc string) *Builder {
	b.err.Provided = enc
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// CountMismatch creates an argument count mismatch error
func CountMismatch(expected, got int) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindCountMismatch,
		Slot:   NoSlot,
		Detail: fmt.Sprintf("expected %d argument(s), got %d", expected, got),
		Value:  got,
	}
}

// MissingArgument creates a missing required argument error
func MissingArgument(slot int, required string) *Error {
	return &Error{
		Phase:    PhaseCoerce,
		Kind:     KindMissingArgument,
		Slot:     slot,
		Required: required,
		Detail:   "no default exists, an explicit value is required",
	}
}

// MustBeBoxed creates an error for an object reference given to a scalar slot
func MustBeBoxed(slot int, required string) *Error {
	return &Error{
		Phase:    PhaseCoerce,
		Kind:     KindMustBeBoxed,
		Slot:     slot,
		Required: required,
		Detail:   "slot takes a boxed scalar, not an object reference",
	}
}

// MustBeNumber creates an error for a non-numeric box in a numeric slot
func MustBeNumber(slot int, required, provided string) *Error {
	return &Error{
		Phase:    PhaseCoerce,
		Kind:     KindMustBeNumber,
		Slot:     slot,
		Required: required,
		Provided: provided,
		Detail:   "numeric slot requires a numerically encoded box",
	}
}

// LossyConversion creates an error for a value that cannot be represented
// exactly at the destination width
func LossyConversion(slot int, required, provided string, value any) *Error {
	return &Error{
		Phase:    PhaseCoerce,
		Kind:     KindLossyConversion,
		Slot:     slot,
		Required: required,
		Provided: provided,
		Detail:   fmt.Sprintf("value %v is not exactly representable", value),
		Value:    value,
	}
}

// TypeMismatch creates an error for incompatible encodings
func TypeMismatch(slot int, required, provided string) *Error {
	return &Error{
		Phase:    PhaseCoerce,
		Kind:     KindTypeMismatch,
		Slot:     slot,
		Required: required,
		Provided: provided,
	}
}

// UnknownEncoding creates an error for a descriptor the interpreter cannot classify
func UnknownEncoding(slot int, enc string) *Error {
	return &Error{
		Phase:    PhaseClassify,
		Kind:     KindUnknownEncoding,
		Slot:     slot,
		Required: enc,
		Detail:   "unrecognized type encoding",
	}
}

// NoDefault creates an error for a category with no canonical zero value
func NoDefault(enc string) *Error {
	return &Error{
		Phase:    PhaseDefault,
		Kind:     KindNoDefault,
		Slot:     NoSlot,
		Required: enc,
		Detail:   "category has no default value",
	}
}

// InvalidBox creates an error for a box whose payload length does not match
// the size implied by its declared encoding
func InvalidBox(enc string, want, got int) *Error {
	return &Error{
		Phase:    PhaseCoerce,
		Kind:     KindInvalidBox,
		Slot:     NoSlot,
		Provided: enc,
		Detail:   fmt.Sprintf("payload is %d byte(s), encoding implies %d", got, want),
	}
}

// InvocationFailed wraps a failure reported by the callable itself
func InvocationFailed(cause error) *Error {
	return &Error{
		Phase: PhaseInvoke,
		Kind:  KindInvocationFailed,
		Slot:  NoSlot,
		Cause: cause,
	}
}
