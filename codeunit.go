// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Prim tags the primitive representation of a code unit.
type Prim uint8

const (
	PrimBool Prim = iota
	PrimByte
	PrimChar16
	PrimShort
	PrimInt32
	PrimInt64
	PrimFloat32
	PrimFloat64
)

func (p Prim) String() string {
	switch p {
	case PrimBool:
		return "bool"
	case PrimByte:
		return "byte"
	case PrimChar16:
		return "char16"
	case PrimShort:
		return "short"
	case PrimInt32:
		return "int32"
	case PrimInt64:
		return "int64"
	case PrimFloat32:
		return "float32"
	case PrimFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// CodeUnitKind is a way of finding element boundaries in a series of
// octets and interpreting the bits between those boundaries.
type CodeUnitKind uint8

const (
	// KindNone is the zero kind, reported by buffers that carry
	// references rather than code units.
	KindNone CodeUnitKind = iota
	Bit
	Byte
	UTF8
	UTF16
	UTF32
	Int32
	Float32
	Int64
	Float64
)

// codeUnitKinds is the descriptor table: minimum and maximum bit
// widths plus the primitive tag for each kind.
var codeUnitKinds = [...]struct {
	name             string
	minBits, maxBits int
	prim             Prim
}{
	KindNone: {"NONE", 0, 0, 0},
	Bit:      {"BIT", 1, 1, PrimBool},
	Byte:     {"BYTE", 8, 8, PrimByte},
	UTF8:     {"UTF8", 8, 32, PrimInt32},
	UTF16:    {"UTF16", 16, 16, PrimChar16},
	UTF32:    {"UTF32", 32, 32, PrimInt32},
	Int32:    {"INT32", 32, 32, PrimInt32},
	Float32:  {"FLOAT32", 32, 32, PrimFloat32},
	Int64:    {"INT64", 64, 64, PrimInt64},
	Float64:  {"FLOAT64", 64, 64, PrimFloat64},
}

// MinBitWidth is the narrowest encoding of one code unit, in bits.
func (k CodeUnitKind) MinBitWidth() int { return codeUnitKinds[k].minBits }

// MaxBitWidth is the widest encoding of one code unit, in bits.
func (k CodeUnitKind) MaxBitWidth() int { return codeUnitKinds[k].maxBits }

// Prim is the primitive representation tag for elements of this kind.
func (k CodeUnitKind) Prim() Prim { return codeUnitKinds[k].prim }

// OctetAligned reports whether every code unit of this kind occupies a
// whole number of octets.
func (k CodeUnitKind) OctetAligned() bool {
	return (codeUnitKinds[k].minBits|codeUnitKinds[k].maxBits)&7 == 0
}

// FixedWidth reports whether every code unit of this kind occupies the
// same number of bits.
func (k CodeUnitKind) FixedWidth() bool {
	return codeUnitKinds[k].minBits == codeUnitKinds[k].maxBits
}

func (k CodeUnitKind) String() string { return codeUnitKinds[k].name }
