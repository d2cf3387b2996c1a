package encoding

import "testing"

func TestEncoding_Category(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want Category
	}{
		{"@", CatObject},
		{"@?", CatObject},
		{`@"NSString"`, CatObject},
		{"#", CatObject},
		{":", CatPointer},
		{"*", CatPointer},
		{"^i", CatPointer},
		{"^{CGPoint=dd}", CatPointer},
		{"^^c", CatPointer},
		{"^v", CatVoidPointer},
		{"B", CatBool},
		{"c", CatS8},
		{"C", CatU8},
		{"s", CatS16},
		{"S", CatU16},
		{"i", CatS32},
		{"l", CatS32},
		{"I", CatU32},
		{"L", CatU32},
		{"q", CatS64},
		{"Q", CatU64},
		{"f", CatF32},
		{"d", CatF64},
		{"{CGPoint=dd}", CatStruct},
		{"{?=qq}", CatStruct},

		// Qualifiers are cosmetic
		{"r*", CatPointer},
		{"Vv", CatUnknown},
		{"rd", CatF64},
		{"oi", CatS32},

		// Unrecognized markers never silently default
		{"", CatUnknown},
		{"v", CatUnknown},
		{"?", CatUnknown},
		{"[4i]", CatUnknown},
		{"(pair=id)", CatUnknown},
		{"b3", CatUnknown},
		{"^", CatUnknown},
		{"{CGPoint=dd", CatUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.enc), func(t *testing.T) {
			if got := tt.enc.Category(); got != tt.want {
				t.Errorf("Category(%q) = %s, want %s", tt.enc, got, tt.want)
			}
		})
	}
}

func TestCategory_Predicates(t *testing.T) {
	numeric := []Category{CatS8, CatU8, CatS16, CatU16, CatS32, CatU32, CatS64, CatU64, CatF32, CatF64}
	for _, c := range numeric {
		if !c.IsNumeric() {
			t.Errorf("%s should be numeric", c)
		}
	}
	for _, c := range []Category{CatObject, CatPointer, CatVoidPointer, CatBool, CatStruct, CatUnknown} {
		if c.IsNumeric() {
			t.Errorf("%s should not be numeric", c)
		}
	}

	if !CatPointer.IsPointer() || !CatVoidPointer.IsPointer() {
		t.Error("pointer categories should report IsPointer")
	}
	if CatObject.IsPointer() {
		t.Error("object references do not participate in pointer widening")
	}

	if !CatS8.IsSigned() || CatU8.IsSigned() || CatF32.IsSigned() {
		t.Error("IsSigned should cover signed integer widths only")
	}
	if !CatF32.IsFloat() || !CatF64.IsFloat() || CatS32.IsFloat() {
		t.Error("IsFloat should cover float widths only")
	}
}

func TestCategory_String(t *testing.T) {
	if CatS8.String() != "s8" {
		t.Errorf("CatS8 = %q", CatS8.String())
	}
	if Category(200).String() != "unknown" {
		t.Errorf("out-of-range category should stringify as unknown")
	}
}

func TestEncoding_Layout(t *testing.T) {
	tests := []struct {
		enc       Encoding
		wantSize  uintptr
		wantAlign uintptr
	}{
		{"@", 8, 8},
		{"^v", 8, 8},
		{"^i", 8, 8},
		{"*", 8, 8},
		{"B", 1, 1},
		{"c", 1, 1},
		{"C", 1, 1},
		{"s", 2, 2},
		{"i", 4, 4},
		{"q", 8, 8},
		{"f", 4, 4},
		{"d", 8, 8},

		// Struct layouts: member-aligned offsets, padded to max alignment
		{"{CGPoint=dd}", 16, 8},
		{"{?=cc}", 2, 1},
		{"{?=ci}", 8, 4},         // 1 byte + 3 pad + 4
		{"{?=ic}", 8, 4},         // 4 + 1 + 3 tail pad
		{"{Mixed=cqc}", 24, 8},   // 1+7pad+8+1+7pad
		{"{Outer={?=cc}d}", 16, 8},
		{"{NSRange=QQ}", 16, 8},
		{"{Ptr=^ic}", 16, 8},
		{"{Empty=}", 0, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.enc), func(t *testing.T) {
			info, err := tt.enc.Layout()
			if err != nil {
				t.Fatalf("Layout(%q) error: %v", tt.enc, err)
			}
			if info.Size != tt.wantSize || info.Align != tt.wantAlign {
				t.Errorf("Layout(%q) = {%d, %d}, want {%d, %d}",
					tt.enc, info.Size, info.Align, tt.wantSize, tt.wantAlign)
			}
		})
	}
}

func TestEncoding_LayoutErrors(t *testing.T) {
	for _, enc := range []Encoding{"", "v", "?", "{CGPoint}", "{Bad=[4i]}", "{Bad=?}"} {
		if _, err := Encoding(enc).Layout(); err == nil {
			t.Errorf("Layout(%q) should fail", enc)
		}
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uintptr
	}{
		{0, 1, 0},
		{1, 1, 1},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{17, 8, 24},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := AlignTo(tt.offset, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b Encoding
		want bool
	}{
		// Identity
		{"i", "i", true},
		{"@", "@", true},
		{"{CGPoint=dd}", "{CGPoint=dd}", true},

		// Qualifiers are noise
		{"ri", "i", true},
		{"r*", "*", true},

		// Opaque-struct equivalence ignores names
		{"{CGPoint=dd}", "{?=dd}", true},
		{"{NSRange=QQ}", "{_NSRange=QQ}", true},
		{"{Outer={Inner=cc}d}", "{?={?=cc}d}", true},
		{"{CGPoint=dd}", "{CGSize=ff}", false},
		{"{?=qq}", "{?=qd}", false},

		// Void-pointer widening accepts any pointer category
		{"^v", "^i", true},
		{"^i", "^v", true},
		{"^v", "*", true},
		{"^v", ":", true},
		{"^{CGPoint=dd}", "^v", true},
		{"^i", "^q", true},

		// Pointers never widen to non-pointers
		{"^v", "@", false},
		{"^v", "i", false},
		{"@", "*", false},

		// Distinct scalars
		{"i", "q", false},
		{"c", "C", false},
		{"B", "c", false},

		// Unknown matches nothing, itself included
		{"?", "?", false},
		{"v", "v", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.a)+"/"+string(tt.b), func(t *testing.T) {
			if got := Compatible(tt.a, tt.b); got != tt.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Compatible(tt.b, tt.a); got != tt.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
