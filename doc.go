// Package ocmock marshals loosely typed argument lists into strictly typed
// call frames driven by runtime type encodings.
//
// A callable declares its parameter slots as a list of type encoding strings
// (the compact one-character grammar used by Objective-C style runtimes: "@"
// for objects, "i" for 32-bit integers, "{CGPoint=dd}" for structs, and so
// on). Callers hand over arguments as object references or boxed scalar
// payloads, and the library classifies, defaults, and coerces each one into
// the exact byte representation the slot demands.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	ocmock/              Root package with convenience aliases
//	├── encoding/        Type encoding grammar: categories, layout, compatibility
//	├── invocation/      Arguments, coercion, frames, marshalers and invokers
//	├── wasmcall/        Adapter exposing wasm guest functions as callables
//	└── errors/          Structured error types for diagnosing rejected calls
//
// # Quick Start
//
// Coerce two arguments into a callable's frame and fire it:
//
//	m := ocmock.NewMarshaler(
//	    ocmock.Object(receiver),
//	    ocmock.BoxInt32(42),
//	)
//	if err := m.Handle(ctx, target); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coercion Rules
//
// Arguments are matched against slots in order, and each slot follows the
// same sequence: an absent argument takes the slot's default value (failing
// for slots with no synthesizable default), object references require object
// slots, numeric payloads convert between widths only when the value
// round-trips exactly, pointer payloads widen freely among pointer slots,
// and everything else must match the declared encoding. The first failure
// aborts the build; a frame is never partially filled.
//
// # Thread Safety
//
// A Marshaler's argument snapshot is immutable after construction, so a
// Marshaler and its duplicates are safe for concurrent use. Frames are not
// shared: each Build call produces a fresh one.
package ocmock
