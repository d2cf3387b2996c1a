package encoding

// Category is the closed set of semantic slot categories a type encoding
// can classify into.
type Category uint8

const (
	CatObject Category = iota
	CatPointer
	CatVoidPointer
	CatBool
	CatS8
	CatU8
	CatS16
	CatU16
	CatS32
	CatU32
	CatS64
	CatU64
	CatF32
	CatF64
	CatStruct
	CatUnknown
)

var categoryNames = [...]string{
	CatObject:      "object",
	CatPointer:     "pointer",
	CatVoidPointer: "void-pointer",
	CatBool:        "bool",
	CatS8:          "s8",
	CatU8:          "u8",
	CatS16:         "s16",
	CatU16:         "u16",
	CatS32:         "s32",
	CatU32:         "u32",
	CatS64:         "s64",
	CatU64:         "u64",
	CatF32:         "f32",
	CatF64:         "f64",
	CatStruct:      "struct",
	CatUnknown:     "unknown",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// IsNumeric reports whether the category is an integer or floating-point
// width. Bool is not numeric: it has no checked-conversion semantics.
func (c Category) IsNumeric() bool {
	return c >= CatS8 && c <= CatF64
}

// IsPointer reports whether the category is a pointer (typed or void).
// Object references are not pointers for widening purposes.
func (c Category) IsPointer() bool {
	return c == CatPointer || c == CatVoidPointer
}

// IsFloat reports whether the category is a floating-point width.
func (c Category) IsFloat() bool {
	return c == CatF32 || c == CatF64
}

// IsSigned reports whether the category is a signed integer width.
func (c Category) IsSigned() bool {
	switch c {
	case CatS8, CatS16, CatS32, CatS64:
		return true
	}
	return false
}
