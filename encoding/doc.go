// Package encoding interprets runtime type-encoding descriptors.
//
// A type encoding is a compact string naming a parameter slot's semantic
// category and byte layout, in an Objective-C-@encode-like grammar:
//
//	Descriptor   Category       Size  Align
//	──────────────────────────────────────────
//	@  #         object ref     8     8
//	:  *  ^T     pointer        8     8
//	^v           void pointer   8     8
//	B            bool           1     1
//	c  C         int8/uint8     1     1
//	s  S         int16/uint16   2     2
//	i  I  l  L   int32/uint32   4     4
//	q  Q         int64/uint64   8     8
//	f            float32        4     4
//	d            float64        8     8
//	{name=...}   opaque struct  sum   max member align
//
// Leading method qualifiers (r, n, N, o, O, R, V) are ignored. Any other
// leading marker classifies as CatUnknown; interpretation never silently
// defaults an unrecognized descriptor.
//
// All classification is pure: Category, Layout, and Compatible are functions
// over descriptor strings with no side effects. Every dispatch point in the
// marshaling pipeline switches on the Category enum, never on raw substrings.
package encoding
