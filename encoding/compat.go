package encoding

// Compatible reports whether a value declared with encoding b is acceptable
// verbatim where encoding a is required. Two encodings are compatible when:
//
//   - they are identical after qualifier stripping, or
//   - both are opaque structs with identical size, alignment, and member
//     layout (names are cosmetic and ignored), or
//   - one is a void or generic pointer and the other is any pointer
//     category (void-pointer widening).
//
// Unknown encodings are never compatible with anything, themselves included.
func Compatible(a, b Encoding) bool {
	ca, cb := a.Category(), b.Category()
	if ca == CatUnknown || cb == CatUnknown {
		return false
	}

	if a.stripped() == b.stripped() {
		return true
	}

	if ca == CatStruct && cb == CatStruct {
		return structEquivalent(a, b)
	}

	if ca.IsPointer() && cb.IsPointer() {
		return true
	}

	return false
}

// structEquivalent implements opaque-struct equivalence: the two descriptors
// describe the same layout once names and qualifiers are erased.
func structEquivalent(a, b Encoding) bool {
	return a.canonical() == b.canonical()
}
