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

type obj struct{ name string }

func refABC() (a, b, c *obj) {
	return &obj{"A"}, &obj{"B"}, &obj{"C"}
}

func TestROBufRefs(t *testing.T) {
	a, b, c := refABC()
	buf := seq.BuilderForReferences(a, b, c).BuildReadOnly()
	start := buf.Start()
	end := buf.End()

	assert.Equal(t, seq.True, start.CountBetweenExceeds(end, 2))
	assert.Equal(t, seq.True, start.CountBetweenExceeds(end, 3))
	assert.Equal(t, seq.False, start.CountBetweenExceeds(end, 4))

	// Reading 3, 4 or 5 from start fills all three slots.
	for nToRead := 3; nToRead <= 5; nToRead++ {
		dst := make([]*obj, 3)
		assert.Equal(t, 3, start.ReadInto(dst, 0, nToRead))
		assert.Equal(t, []*obj{a, b, c}, dst)
	}

	// Reading 2 leaves the last slot untouched.
	{
		dst := make([]*obj, 3)
		assert.Equal(t, 2, start.ReadInto(dst, 0, 2))
		assert.Equal(t, []*obj{a, b, nil}, dst)
	}

	plus1, ok := start.Advance(1)
	require.True(t, ok)

	assert.Equal(t, seq.True, start.CountBetweenExceeds(plus1, 0))
	assert.Equal(t, seq.True, start.CountBetweenExceeds(plus1, 1))
	assert.Equal(t, seq.False, start.CountBetweenExceeds(plus1, 2))

	// Read 2 from +1.
	{
		dst := make([]*obj, 3)
		assert.Equal(t, 2, plus1.ReadInto(dst, 0, 2))
		assert.Equal(t, []*obj{b, c, nil}, dst)
	}

	// Read 2 from +1 into slot 1.
	{
		dst := make([]*obj, 3)
		assert.Equal(t, 2, plus1.ReadInto(dst, 1, 2))
		assert.Equal(t, []*obj{nil, b, c}, dst)
	}

	// Reading from the end sentinel mutates nothing.
	{
		dst := make([]*obj, 4)
		assert.Equal(t, 0, end.ReadInto(dst, 0, 4))
		assert.Equal(t, []*obj{nil, nil, nil, nil}, dst)
	}

	// Cherrypick.
	v, ok := start.Read()
	require.True(t, ok)
	assert.Same(t, a, v)
	v, ok = plus1.Read()
	require.True(t, ok)
	assert.Same(t, b, v)
	_, ok = end.Read()
	assert.False(t, ok)

	// Cursor equality is by (identity, position).
	adv, ok := start.Advance(1)
	require.True(t, ok)
	assert.Equal(t, plus1, adv)
	adv, ok = start.Advance(3)
	require.True(t, ok)
	assert.Equal(t, end, adv)
	_, ok = start.Advance(4)
	assert.False(t, ok)

	// Cursor comparison.
	assert.Equal(t, seq.Equal, start.Compare(start))
	assert.Equal(t, seq.Equal, end.Compare(end))
	assert.Equal(t, seq.Less, start.Compare(end))
	assert.Equal(t, seq.Greater, end.Compare(start))
	other := seq.BuilderForReferences[*obj]().BuildReadOnly()
	assert.Equal(t, seq.Unrelated, start.Compare(other.Start()))
	assert.Equal(t, seq.Fail, start.CountBetweenExceeds(other.Start(), 0))
}

func TestROBufChars(t *testing.T) {
	buf := seq.BuilderForChars([]uint16{'A', 'B', 'C'}).BuildReadOnly()
	start := buf.Start()
	end := buf.End()

	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, seq.True, start.CountBetweenExceeds(end, 3))
	assert.Equal(t, seq.False, start.CountBetweenExceeds(end, 4))

	for nToRead := 3; nToRead <= 5; nToRead++ {
		dst := []uint16{'?', '?', '?'}
		assert.Equal(t, 3, start.ReadInto(dst, 0, nToRead))
		assert.Equal(t, []uint16{'A', 'B', 'C'}, dst)
	}

	{
		dst := []uint16{'?', '?', '?'}
		assert.Equal(t, 2, start.ReadInto(dst, 0, 2))
		assert.Equal(t, []uint16{'A', 'B', '?'}, dst)
	}

	plus1, ok := start.Advance(1)
	require.True(t, ok)
	{
		dst := []uint16{'?', '?', '?'}
		assert.Equal(t, 2, plus1.ReadInto(dst, 1, 2))
		assert.Equal(t, []uint16{'?', 'B', 'C'}, dst)
	}

	v, ok := start.Read()
	require.True(t, ok)
	assert.Equal(t, uint16('A'), v)
	_, ok = end.Read()
	assert.False(t, ok)

	adv, ok := start.Advance(3)
	require.True(t, ok)
	assert.Equal(t, end, adv)
	_, ok = start.Advance(4)
	assert.False(t, ok)

	assert.Equal(t, seq.Unrelated,
		start.Compare(seq.BuilderForChars(nil).BuildReadOnly().Start()))
}

func TestROBufRestoreValidates(t *testing.T) {
	buf := seq.BuilderForBytes([]byte{1, 2, 3}).BuildReadOnly()
	buf.Restore(buf.Snapshot()) // accepted, no effect
	assert.Equal(t, 3, buf.Len())

	other := seq.BuilderForBytes(nil).BuildReadOnly()
	assert.Panics(t, func() { buf.Restore(other.Snapshot()) })
}

func TestROBufAdvanceZeroIsIdentity(t *testing.T) {
	buf := seq.BuilderForBytes([]byte{1, 2}).BuildReadOnly()
	plus1, ok := buf.Start().Advance(1)
	require.True(t, ok)
	same, ok := plus1.Advance(0)
	require.True(t, ok)
	assert.Equal(t, plus1, same)
}

func TestROBufAdvanceBelowZeroPanics(t *testing.T) {
	buf := seq.BuilderForBytes([]byte{1, 2, 3}).BuildReadOnly()
	end := buf.End()
	// A negative delta that stays in range yields a valid cursor.
	back, ok := end.Advance(-3)
	require.True(t, ok)
	assert.Equal(t, seq.Equal, back.Compare(buf.Start()))
	assert.Panics(t, func() { buf.Start().Advance(-1) })
}
