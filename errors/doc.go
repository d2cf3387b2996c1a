// Package errors defines the structured error types used across the library.
//
// Every failure in the marshaling pipeline is reported as an *Error carrying
// the processing phase, a machine-matchable kind, the offending slot index,
// and the required/provided type encodings. This is the primary diagnostic
// surface a test author sees when a double is misconfigured, so messages
// always name the slot and both encodings where they apply:
//
//	[coerce] lossy_conversion at slot 2: required 'c', provided 'i' - value 300 overflows int8
//	[build] count_mismatch: expected 2 argument(s), got 3
//
// Use errors.Is with a prototype (matching on Phase and Kind) or the
// convenience constructors below.
package errors
