// Package scalar implements checked numeric conversion between slot widths.
//
// Conversions are exact-or-fail: a value converts to a destination category
// only if the destination can represent it without overflow, sign loss,
// truncation, or precision loss. Approximate casts are rejected, never
// rounded.
//
// This package is internal to the invocation package.
package scalar
