package encoding

import "github.com/SteveFortune/ocmock/errors"

// PointerSize is the slot width of object references and pointers.
const PointerSize = 8

// Info holds a descriptor's computed byte size and alignment.
type Info struct {
	Size  uintptr
	Align uintptr
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uintptr) uintptr {
	if align <= 1 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Layout returns the byte size and alignment of the descriptor. Struct
// layouts are computed member by member; unknown descriptors are an error,
// never a guessed width.
func (e Encoding) Layout() (Info, error) {
	switch e.Category() {
	case CatObject, CatPointer, CatVoidPointer:
		return Info{Size: PointerSize, Align: PointerSize}, nil
	case CatBool, CatS8, CatU8:
		return Info{Size: 1, Align: 1}, nil
	case CatS16, CatU16:
		return Info{Size: 2, Align: 2}, nil
	case CatS32, CatU32, CatF32:
		return Info{Size: 4, Align: 4}, nil
	case CatS64, CatU64, CatF64:
		return Info{Size: 8, Align: 8}, nil
	case CatStruct:
		return e.structLayout()
	default:
		return Info{}, errors.UnknownEncoding(errors.NoSlot, string(e))
	}
}

// structLayout lays out a struct descriptor's members in declaration order:
// each member is aligned to its own alignment, the struct's alignment is the
// max member alignment, and the total size is padded to that alignment.
func (e Encoding) structLayout() (Info, error) {
	mem, ok := e.members()
	if !ok {
		return Info{}, errors.New(errors.PhaseClassify, errors.KindUnknownEncoding).
			Required(string(e)).
			Detail("struct descriptor carries no member layout").
			Build()
	}

	if len(mem) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	maxAlign := uintptr(1)
	offset := uintptr(0)

	for _, m := range mem {
		ml, err := m.Layout()
		if err != nil {
			return Info{}, err
		}

		offset = AlignTo(offset, ml.Align)
		if ml.Align > maxAlign {
			maxAlign = ml.Align
		}
		offset += ml.Size
	}

	return Info{
		Size:  AlignTo(offset, maxAlign),
		Align: maxAlign,
	}, nil
}
