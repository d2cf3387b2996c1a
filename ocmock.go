package ocmock

import (
	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/invocation"
)

type Encoding = encoding.Encoding
type Category = encoding.Category

const (
	CatObject      = encoding.CatObject
	CatPointer     = encoding.CatPointer
	CatVoidPointer = encoding.CatVoidPointer
	CatBool        = encoding.CatBool
	CatS8          = encoding.CatS8
	CatU8          = encoding.CatU8
	CatS16         = encoding.CatS16
	CatU16         = encoding.CatU16
	CatS32         = encoding.CatS32
	CatU32         = encoding.CatU32
	CatS64         = encoding.CatS64
	CatU64         = encoding.CatU64
	CatF32         = encoding.CatF32
	CatF64         = encoding.CatF64
	CatStruct      = encoding.CatStruct
	CatUnknown     = encoding.CatUnknown
)

type Argument = invocation.Argument
type ArgumentList = invocation.ArgumentList
type Frame = invocation.Frame
type Invocable = invocation.Invocable
type Marshaler = invocation.Marshaler
type Signature = invocation.Signature

var (
	NewArgumentList     = invocation.NewArgumentList
	NewMarshaler        = invocation.NewMarshaler
	NewGenericMarshaler = invocation.NewGenericMarshaler

	Object     = invocation.Object
	Box        = invocation.Box
	BoxBool    = invocation.BoxBool
	BoxInt8    = invocation.BoxInt8
	BoxUint8   = invocation.BoxUint8
	BoxInt16   = invocation.BoxInt16
	BoxUint16  = invocation.BoxUint16
	BoxInt32   = invocation.BoxInt32
	BoxUint32  = invocation.BoxUint32
	BoxInt64   = invocation.BoxInt64
	BoxUint64  = invocation.BoxUint64
	BoxFloat32 = invocation.BoxFloat32
	BoxFloat64 = invocation.BoxFloat64
	BoxPointer = invocation.BoxPointer

	Invoke = invocation.Invoke
)
