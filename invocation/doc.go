// Package invocation builds and fires correctly laid-out call frames.
//
// It bridges a dynamically typed argument list, supplied by a test author,
// to a callable whose parameter layout is only known at runtime through its
// signature of type encodings. One wrong byte width corrupts the invoked
// call, so every slot write is sized and checked against the slot's
// encoding.
//
// # Pipeline
//
//	Marshaler ──▶ BuildFrame ──▶ per-slot coercion ──▶ Frame ──▶ Invoke
//
// A Marshaler captures an immutable snapshot of the caller's arguments at
// construction. Handle builds a fresh Frame against the target's signature
// and fires the target through it; any slot failure aborts the whole build
// and no partial frame is ever exposed.
//
// # Argument model
//
//	Absent       nil sentinel, filled from the slot's synthesized default
//	ObjectRef    opaque handle, stored by reference into object slots
//	ScalarBox    value boxed with its own type encoding and byte payload
//
// Numeric coercion is exact-or-fail: an int32 holding 42 fits an int8 slot,
// an int32 holding 300 is a lossy_conversion error, never a truncation.
//
// # Concurrency
//
// Building and invoking run synchronously on the calling goroutine. The
// argument snapshot is immutable and safe to share between duplicated
// marshalers; at most one build+invoke pair per marshaler may be in flight
// at a time.
package invocation
