// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/seq"
)

func TestBuilderForValuesKindCheck(t *testing.T) {
	assert.NotPanics(t, func() { seq.BuilderForValues[int32](seq.Int32, nil) })
	assert.NotPanics(t, func() { seq.BuilderForValues[int32](seq.UTF32, nil) })
	assert.NotPanics(t, func() { seq.BuilderForValues[uint16](seq.UTF16, nil) })
	assert.NotPanics(t, func() { seq.BuilderForValues[int16](seq.UTF16, nil) })
	assert.NotPanics(t, func() { seq.BuilderForValues[byte](seq.UTF8, nil) })
	assert.NotPanics(t, func() { seq.BuilderForValues[bool](seq.Bit, nil) })

	assert.Panics(t, func() { seq.BuilderForValues[int64](seq.Int32, nil) })
	assert.Panics(t, func() { seq.BuilderForValues[float32](seq.Float64, nil) })
	assert.Panics(t, func() { seq.BuilderForValues[string](seq.Byte, nil) })
}

func TestBuilderForValuesBit(t *testing.T) {
	pattern := []bool{true, false, true}
	buf := seq.BuilderForValues(seq.Bit, pattern).BuildReadOnly()
	require.Equal(t, 3, buf.Len())
	got := make([]bool, 3)
	require.Equal(t, 3, buf.Start().ReadInto(got, 0, 3))
	assert.Equal(t, pattern, got)
}

func TestBuilderForBitsPackedSeed(t *testing.T) {
	// 0xF0 expands MSB-first: four ones then four zeros.
	buf := seq.BuilderForBits([]byte{0xF0}).BuildReadOnly()
	require.Equal(t, 8, buf.Len())
	got := make([]bool, 8)
	require.Equal(t, 8, buf.Start().ReadInto(got, 0, 8))
	assert.Equal(t,
		[]bool{true, true, true, true, false, false, false, false}, got)
}

func TestBuilderKind(t *testing.T) {
	assert.Equal(t, seq.UTF16, seq.BuilderForChars(nil).Kind())
	assert.Equal(t, seq.Bit, seq.BuilderForBits(nil).Kind())
	assert.Equal(t, seq.KindNone, seq.BuilderForReferences[*obj]().Kind())
}

func TestBuilderReadOnlyReusable(t *testing.T) {
	b := seq.BuilderForInts([]int32{1, 2, 3})
	first := b.BuildReadOnly()
	second := b.BuildReadOnly()
	assert.Equal(t, 3, first.Len())
	assert.Equal(t, 3, second.Len())
	assert.Equal(t, seq.Unrelated, first.Start().Compare(second.Start()))
}

func TestBuilderConsumedByReadWrite(t *testing.T) {
	b := seq.BuilderForInts(nil)
	_ = b.BuildReadWrite()
	assert.Panics(t, func() { b.BuildReadWrite() })
	assert.Panics(t, func() { b.BuildChannel(2) })
	assert.Panics(t, func() { b.BuildReadOnly() })
}

func TestBuilderSeedsReadWrite(t *testing.T) {
	buf := seq.BuilderForDoubles([]float64{1.5, 2.5}).BuildReadWrite()
	assert.Equal(t, 2, buf.Len())
	buf.Append(3.5)
	dst := make([]float64, 3)
	require.Equal(t, 3, buf.Start().ReadInto(dst, 0, 3))
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, dst)
}

func TestBuilderUintsAndLongs(t *testing.T) {
	u := seq.BuilderForUints([]rune{'☃'}).BuildReadOnly()
	v, ok := u.Start().Read()
	require.True(t, ok)
	assert.Equal(t, '☃', v)

	l := seq.BuilderForLongs([]int64{1 << 40}).BuildReadOnly()
	w, ok := l.Start().Read()
	require.True(t, ok)
	assert.Equal(t, int64(1)<<40, w)
}

func TestBuilderShortsAndFloats(t *testing.T) {
	s := seq.BuilderForShorts([]int16{-7}).BuildReadOnly()
	v, ok := s.Start().Read()
	require.True(t, ok)
	assert.Equal(t, int16(-7), v)

	f := seq.BuilderForFloats([]float32{0.5}).BuildReadOnly()
	w, ok := f.Start().Read()
	require.True(t, ok)
	assert.Equal(t, float32(0.5), w)
}
