package invocation

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/SteveFortune/ocmock/encoding"
	ocmerrors "github.com/SteveFortune/ocmock/errors"
)

func protoErr(phase ocmerrors.Phase, kind ocmerrors.Kind) *ocmerrors.Error {
	return &ocmerrors.Error{Phase: phase, Kind: kind}
}

func TestCoerce_AbsentDefaults(t *testing.T) {
	tests := []struct {
		name      string
		required  string
		wantBytes int
		wantObj   bool
	}{
		{"object slot", "@", 0, true},
		{"class slot", "#", 0, true},
		{"void pointer", "^v", 8, false},
		{"typed pointer", "^i", 8, false},
		{"selector", ":", 8, false},
		{"bool", "B", 1, false},
		{"int8", "c", 1, false},
		{"int32", "i", 4, false},
		{"uint64", "Q", 8, false},
		{"float32", "f", 4, false},
		{"float64", "d", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := coerce(0, enc(tt.required), Absent{})
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if v.isObj != tt.wantObj {
				t.Fatalf("isObj = %v, want %v", v.isObj, tt.wantObj)
			}
			if tt.wantObj {
				if v.obj != nil {
					t.Errorf("object default should be a nil reference, got %v", v.obj)
				}
				return
			}
			if len(v.bytes) != tt.wantBytes {
				t.Fatalf("len(bytes) = %d, want %d", len(v.bytes), tt.wantBytes)
			}
			for i, b := range v.bytes {
				if b != 0 {
					t.Errorf("byte %d = 0x%02X, want bit-pattern zero", i, b)
				}
			}
		})
	}
}

func TestCoerce_AbsentNoDefault(t *testing.T) {
	for _, required := range []string{"{CGPoint=dd}", "{?=qq}"} {
		_, err := coerce(3, enc(required), Absent{})
		if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, ocmerrors.KindMissingArgument)) {
			t.Errorf("coerce(Absent, %q) = %v, want missing_argument", required, err)
		}
		var oe *ocmerrors.Error
		if errors.As(err, &oe) && oe.Slot != 3 {
			t.Errorf("error slot = %d, want 3", oe.Slot)
		}
	}
}

func TestCoerce_NilArgumentReadsAsAbsent(t *testing.T) {
	v, err := coerce(0, "i", nil)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if len(v.bytes) != 4 {
		t.Errorf("nil argument should synthesize an int32 zero, got %d bytes", len(v.bytes))
	}
}

func TestCoerce_UnknownSlotEncoding(t *testing.T) {
	_, err := coerce(1, "v", BoxInt32(1))
	if !errors.Is(err, protoErr(ocmerrors.PhaseClassify, ocmerrors.KindUnknownEncoding)) {
		t.Errorf("unknown slot encoding should fail classification, got %v", err)
	}
}

func TestCoerce_ObjectSlot(t *testing.T) {
	handle := &struct{ name string }{"double"}

	v, err := coerce(0, "@", Object(handle))
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if !v.isObj || v.obj != handle {
		t.Error("object slot should store the reference itself, not a copy")
	}

	// Boxed scalars are never accepted for object slots
	_, err = coerce(0, "@", BoxInt32(7))
	if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, ocmerrors.KindTypeMismatch)) {
		t.Errorf("scalar into object slot = %v, want type_mismatch", err)
	}
}

func TestCoerce_ObjectIntoScalarSlot(t *testing.T) {
	_, err := coerce(2, "i", Object("not a number"))
	if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, ocmerrors.KindMustBeBoxed)) {
		t.Errorf("object into scalar slot = %v, want must_be_boxed", err)
	}
	var oe *ocmerrors.Error
	if errors.As(err, &oe) && oe.Slot != 2 {
		t.Errorf("error slot = %d, want 2", oe.Slot)
	}
}

func TestCoerce_NumericExactOrFail(t *testing.T) {
	tests := []struct {
		name     string
		required string
		box      ScalarBox
		want     []byte
		wantKind ocmerrors.Kind
	}{
		{"int32 42 into int8", "c", BoxInt32(42), []byte{42}, ""},
		{"int32 300 into int8", "c", BoxInt32(300), nil, ocmerrors.KindLossyConversion},
		{"int32 -129 into int8", "c", BoxInt32(-129), nil, ocmerrors.KindLossyConversion},
		{"float64 2.0 into int32", "i", BoxFloat64(2.0), []byte{2, 0, 0, 0}, ""},
		{"float64 1.5 into int32", "i", BoxFloat64(1.5), nil, ocmerrors.KindLossyConversion},
		{"int8 -1 into uint8", "C", BoxInt8(-1), nil, ocmerrors.KindLossyConversion},
		{"uint8 200 into int16", "s", BoxUint8(200), []byte{200, 0}, ""},
		{"int64 into int64", "q", BoxInt64(-2), []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, ""},
		{"float64 1.5 into float32", "f", BoxFloat64(1.5), nil, ""},
		{"float64 0.1 into float32", "f", BoxFloat64(0.1), nil, ocmerrors.KindLossyConversion},
		{"bool box into int slot", "i", BoxBool(true), nil, ocmerrors.KindMustBeNumber},
		{"pointer box into int slot", "i", mustPointer("^i", 0x1000), nil, ocmerrors.KindMustBeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := coerce(0, enc(tt.required), tt.box)
			if tt.wantKind != "" {
				if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, tt.wantKind)) {
					t.Fatalf("coerce = %v, want kind %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if tt.want == nil {
				return
			}
			if len(v.bytes) != len(tt.want) {
				t.Fatalf("len(bytes) = %d, want %d", len(v.bytes), len(tt.want))
			}
			for i := range tt.want {
				if v.bytes[i] != tt.want[i] {
					t.Errorf("byte %d = 0x%02X, want 0x%02X", i, v.bytes[i], tt.want[i])
				}
			}
		})
	}
}

func TestCoerce_PointerWidening(t *testing.T) {
	for _, declared := range []string{"^i", "^v", "*", ":", "^{CGPoint=dd}"} {
		box := mustPointer(declared, 0xDEAD)
		v, err := coerce(0, "^v", box)
		if err != nil {
			t.Fatalf("void slot should accept %q verbatim: %v", declared, err)
		}
		if got := binary.LittleEndian.Uint64(v.bytes); got != 0xDEAD {
			t.Errorf("pointer payload = 0x%X, want 0xDEAD", got)
		}
	}

	// And the reverse: a typed pointer slot accepts a void-declared box.
	box := mustPointer("^v", 0xBEEF)
	if _, err := coerce(0, "^q", box); err != nil {
		t.Errorf("typed pointer slot should accept a void pointer box: %v", err)
	}
}

func TestCoerce_PointerNeverWidensToObject(t *testing.T) {
	box := mustPointer("^v", 1)
	_, err := coerce(0, "@", box)
	if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, ocmerrors.KindTypeMismatch)) {
		t.Errorf("pointer box into object slot = %v, want type_mismatch", err)
	}
}

func TestCoerce_StructReinterpretation(t *testing.T) {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint64(payload, math.Float64bits(1.0))
	binary.LittleEndian.PutUint64(payload[8:], math.Float64bits(2.0))

	box, err := Box("{CGPoint=dd}", payload)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}

	// Equivalent layout under a different name is accepted raw.
	v, err := coerce(0, "{_MyPoint=dd}", box)
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	for i := range payload {
		if v.bytes[i] != payload[i] {
			t.Fatalf("byte %d differs after reinterpretation", i)
		}
	}

	// A different layout under the same size is not.
	_, err = coerce(4, "{Other=qq}", box)
	if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, ocmerrors.KindTypeMismatch)) {
		t.Fatalf("mismatched struct layouts = %v, want type_mismatch", err)
	}
	var oe *ocmerrors.Error
	if errors.As(err, &oe) {
		if oe.Slot != 4 || oe.Required == "" || oe.Provided == "" {
			t.Errorf("type mismatch should name the slot and both encodings: %+v", oe)
		}
	}
}

func TestCoerce_BoolSlot(t *testing.T) {
	v, err := coerce(0, "B", BoxBool(true))
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if len(v.bytes) != 1 || v.bytes[0] != 1 {
		t.Errorf("bool slot = %v, want [1]", v.bytes)
	}

	_, err = coerce(0, "B", BoxInt8(1))
	if !errors.Is(err, protoErr(ocmerrors.PhaseCoerce, ocmerrors.KindTypeMismatch)) {
		t.Errorf("int8 box into bool slot = %v, want type_mismatch", err)
	}
}

func enc(s string) encoding.Encoding {
	return encoding.Encoding(s)
}

func mustPointer(e string, addr uint64) ScalarBox {
	box, err := BoxPointer(enc(e), addr)
	if err != nil {
		panic(err)
	}
	return box
}
