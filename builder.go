// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Builder ties a [Transport] to an initial storage and materializes one
// of the three buffer kinds. Value builders record the code-unit kind
// so freezes stay correctly typed.
//
// BuildReadOnly freezes a copy of the seeded content and may be called
// repeatedly. BuildReadWrite and BuildChannel hand the storage over to
// the new buffer and consume the builder; building again panics.
type Builder[E any] struct {
	t        Transport[E]
	store    MutStorage[E]
	kind     CodeUnitKind
	consumed bool
}

// BuilderForReferences returns a builder over arbitrary reference
// elements, seeded with the given initial content.
func BuilderForReferences[E any](initial ...E) *Builder[E] {
	t := &refTransport[E]{}
	store := t.CreateStorage()
	if len(initial) > 0 {
		t.BulkWrite(store, 0, initial, 0, len(initial))
	}
	return &Builder[E]{t: t, store: store}
}

// BuilderForBits returns a builder over single bits. The initial
// content is packed octets: each byte expands to eight bits, top bit
// first. Pass nil to start empty.
func BuilderForBits(initial []byte) *Builder[bool] {
	t := &bitTransport{}
	store := t.CreateStorage()
	if len(initial) > 0 {
		t.appendPackedBytes(store, initial)
	}
	return &Builder[bool]{t: t, store: store, kind: Bit}
}

// BuilderForBytes returns a builder over octets.
func BuilderForBytes(initial []byte) *Builder[byte] {
	return newValueBuilder(Byte, initial)
}

// BuilderForChars returns a builder over UTF-16 code units.
func BuilderForChars(initial []uint16) *Builder[uint16] {
	return newValueBuilder(UTF16, initial)
}

// BuilderForShorts returns a builder over signed 16-bit values.
func BuilderForShorts(initial []int16) *Builder[int16] {
	return newValueBuilder(UTF16, initial)
}

// BuilderForInts returns a builder over signed 32-bit values.
func BuilderForInts(initial []int32) *Builder[int32] {
	return newValueBuilder(Int32, initial)
}

// BuilderForUints returns a builder over UTF-32 code units.
func BuilderForUints(initial []rune) *Builder[rune] {
	return newValueBuilder(UTF32, initial)
}

// BuilderForLongs returns a builder over signed 64-bit values.
func BuilderForLongs(initial []int64) *Builder[int64] {
	return newValueBuilder(Int64, initial)
}

// BuilderForFloats returns a builder over 32-bit floats.
func BuilderForFloats(initial []float32) *Builder[float32] {
	return newValueBuilder(Float32, initial)
}

// BuilderForDoubles returns a builder over 64-bit floats.
func BuilderForDoubles(initial []float64) *Builder[float64] {
	return newValueBuilder(Float64, initial)
}

// BuilderForValues is the generic entry point for pass-by-value
// element families. The element type must match the code-unit kind's
// primitive tag; a mismatch panics. For [Bit] the initial content is
// unpacked booleans, unlike [BuilderForBits].
func BuilderForValues[E any](kind CodeUnitKind, initial []E) *Builder[E] {
	p, ok := primOf[E]()
	if !ok || !kindAcceptsPrim(kind, p) {
		panic("seq: element type does not match code unit kind")
	}
	if kind == Bit {
		t := any(Transport[bool](&bitTransport{})).(Transport[E])
		store := t.CreateStorage()
		if len(initial) > 0 {
			t.BulkWrite(store, 0, initial, 0, len(initial))
		}
		return &Builder[E]{t: t, store: store, kind: kind}
	}
	return newValueBuilder(kind, initial)
}

func newValueBuilder[E any](kind CodeUnitKind, initial []E) *Builder[E] {
	t := &valueTransport[E]{kind: kind}
	store := t.CreateStorage()
	if len(initial) > 0 {
		t.EnsureCapacity(store, len(initial))
		t.BulkWrite(store, 0, initial, 0, len(initial))
	}
	return &Builder[E]{t: t, store: store, kind: kind}
}

// primOf maps a Go element type onto its primitive tag.
func primOf[E any]() (Prim, bool) {
	var zero E
	switch any(zero).(type) {
	case bool:
		return PrimBool, true
	case byte:
		return PrimByte, true
	case uint16:
		return PrimChar16, true
	case int16:
		return PrimShort, true
	case int32:
		return PrimInt32, true
	case int64:
		return PrimInt64, true
	case float32:
		return PrimFloat32, true
	case float64:
		return PrimFloat64, true
	}
	return 0, false
}

// kindAcceptsPrim reports whether elements tagged p can populate a
// buffer of kind k. UTF16 admits both 16-bit representations and the
// octet-aligned UTF8 kind stores raw code units as bytes.
func kindAcceptsPrim(k CodeUnitKind, p Prim) bool {
	switch p {
	case PrimBool:
		return k == Bit
	case PrimByte:
		return k == Byte || k == UTF8
	case PrimChar16, PrimShort:
		return k == UTF16
	case PrimInt32:
		return k == UTF32 || k == Int32 || k == UTF8
	case PrimInt64:
		return k == Int64
	case PrimFloat32:
		return k == Float32
	case PrimFloat64:
		return k == Float64
	default:
		return false
	}
}

// Kind returns the code-unit kind value builders record; reference
// builders report [KindNone].
func (b *Builder[E]) Kind() CodeUnitKind { return b.kind }

func (b *Builder[E]) live() {
	if b.consumed {
		panic("seq: builder already consumed")
	}
}

// BuildReadOnly freezes a copy of the seeded content into an [ROBuf].
// The builder stays usable.
func (b *Builder[E]) BuildReadOnly() *ROBuf[E] {
	b.live()
	return newROBuf(b.t, b.t.Freeze(b.store, 0, b.t.LengthMut(b.store)))
}

// BuildReadWrite hands the storage to a fresh [IOBuf] and consumes the
// builder.
func (b *Builder[E]) BuildReadWrite() *IOBuf[E] {
	b.live()
	b.consumed = true
	return newIOBuf(b.t, b.store)
}

// BuildChannel hands the storage to a fresh [Chan] with the given
// capacity (at least 2) and consumes the builder.
func (b *Builder[E]) BuildChannel(capacity int) *Chan[E] {
	b.live()
	b.consumed = true
	return newChan(b.t, b.store, capacity)
}
