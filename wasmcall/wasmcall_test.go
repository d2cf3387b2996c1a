package wasmcall

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/SteveFortune/ocmock/invocation"
)

func TestSignatureFromValueTypes(t *testing.T) {
	sig, err := signatureFromValueTypes([]api.ValueType{
		api.ValueTypeI32, api.ValueTypeI64, api.ValueTypeF32, api.ValueTypeF64,
	})
	if err != nil {
		t.Fatalf("signatureFromValueTypes: %v", err)
	}

	want := invocation.Signature{"i", "q", "f", "d"}
	if len(sig) != len(want) {
		t.Fatalf("len = %d, want %d", len(sig), len(want))
	}
	for i := range want {
		if sig[i] != want[i] {
			t.Errorf("slot %d = %q, want %q", i, sig[i], want[i])
		}
	}
}

func TestSignatureFromValueTypes_Unsupported(t *testing.T) {
	if _, err := signatureFromValueTypes([]api.ValueType{api.ValueTypeExternref}); err == nil {
		t.Error("externref has no slot encoding")
	}
}

func TestFromWIT(t *testing.T) {
	tests := []struct {
		typ  wit.Type
		want string
	}{
		{wit.Bool{}, "B"},
		{wit.S8{}, "c"},
		{wit.U8{}, "C"},
		{wit.S16{}, "s"},
		{wit.U16{}, "S"},
		{wit.S32{}, "i"},
		{wit.U32{}, "I"},
		{wit.S64{}, "q"},
		{wit.U64{}, "Q"},
		{wit.F32{}, "f"},
		{wit.F64{}, "d"},
		{wit.Char{}, "I"},
	}
	for _, tt := range tests {
		enc, err := FromWIT(tt.typ)
		if err != nil {
			t.Fatalf("FromWIT(%T): %v", tt.typ, err)
		}
		if string(enc) != tt.want {
			t.Errorf("FromWIT(%T) = %q, want %q", tt.typ, enc, tt.want)
		}
	}
}

func TestFromWIT_Compound(t *testing.T) {
	if _, err := FromWIT(wit.String{}); err == nil {
		t.Error("string is not single-slot")
	}
}

func TestSignatureFromWIT(t *testing.T) {
	sig, err := SignatureFromWIT([]wit.Type{wit.U32{}, wit.F64{}})
	if err != nil {
		t.Fatalf("SignatureFromWIT: %v", err)
	}
	if len(sig) != 2 || sig[0] != "I" || sig[1] != "d" {
		t.Errorf("sig = %v", sig)
	}
}

func TestLowerSlot(t *testing.T) {
	target := &stubSig{sig: invocation.Signature{"c", "s", "i", "q"}}
	m := invocation.NewMarshaler(
		invocation.BoxInt8(-1),
		invocation.BoxInt16(-2),
		invocation.BoxInt32(-3),
		invocation.BoxInt64(-4),
	)
	frame, err := m.Build(target)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []uint64{0xFF, 0xFFFE, 0xFFFFFFFD, 0xFFFFFFFFFFFFFFFC}
	for i, w := range want {
		got, err := lowerSlot(i, frame.Encoding(i), frame)
		if err != nil {
			t.Fatalf("lowerSlot(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("lowerSlot(%d) = 0x%X, want 0x%X", i, got, w)
		}
	}
}

func TestLowerSlot_RejectsObjects(t *testing.T) {
	target := &stubSig{sig: invocation.Signature{"@"}}
	frame, err := invocation.NewMarshaler(invocation.Object("ref")).Build(target)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := lowerSlot(0, frame.Encoding(0), frame); err == nil {
		t.Error("object slots must not lower onto the wasm stack")
	}
}

// stubSig satisfies Invocable for building frames; Invoke is never reached.
type stubSig struct {
	sig invocation.Signature
}

func (s *stubSig) Signature() invocation.Signature {
	return s.sig
}

func (s *stubSig) Invoke(ctx context.Context, frame *invocation.Frame) error {
	return nil
}
