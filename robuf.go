// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "fmt"

// ROBuf is a read-only buffer: a frozen view over immutable storage.
// Cursors into an ROBuf are plain indices and never invalidate.
type ROBuf[E any] struct {
	t      Transport[E]
	data   ImuStorage[E]
	serial Serial
	length int
}

func newROBuf[E any](t Transport[E], data ImuStorage[E]) *ROBuf[E] {
	return &ROBuf[E]{
		t:      t,
		data:   data,
		serial: nextSerial(),
		length: t.LengthImu(data),
	}
}

// Len returns the element count.
func (b *ROBuf[E]) Len() int { return b.length }

// Serial returns the serial number assigned to this buffer.
func (b *ROBuf[E]) Serial() Serial { return b.serial }

// Start returns the cursor at index zero.
func (b *ROBuf[E]) Start() ICur[E] { return roCur[E]{buf: b} }

// End returns the end-sentinel cursor, one past the last element.
func (b *ROBuf[E]) End() ICur[E] { return roCur[E]{buf: b, index: b.length} }

// Snapshot returns the start cursor; a read-only buffer has no mutable
// state to capture.
func (b *ROBuf[E]) Snapshot() Cur[E] { return roCur[E]{buf: b} }

// Restore accepts any cursor this buffer emitted and does nothing.
func (b *ROBuf[E]) Restore(c Cur[E]) {
	cur, ok := c.(roCur[E])
	if !ok || cur.buf != b {
		panic("seq: cursor does not belong to this buffer")
	}
}

func (b *ROBuf[E]) String() string {
	return fmt.Sprintf("seq.ROBuf#%d(len=%d)", b.serial, b.length)
}

func (b *ROBuf[E]) read(i int) (E, bool) {
	if i < b.length {
		return b.t.ReadImu(b.data, i), true
	}
	var zero E
	return zero, false
}

// roCur is a cursor into an ROBuf: a (buffer, index) pair. It is a
// comparable value type, so == gives (identity, position) equality.
type roCur[E any] struct {
	buf   *ROBuf[E]
	index int
}

func (c roCur[E]) Buffer() Buf[E] { return c.buf }

func (c roCur[E]) Compare(other Cur[E]) PCmp {
	o, ok := other.(roCur[E])
	if !ok || o.buf != c.buf {
		return Unrelated
	}
	return PCmpFrom(c.index - o.index)
}

func (c roCur[E]) Advance(delta int) (ICur[E], bool) {
	if delta == 0 {
		return c, true
	}
	newIndex := c.index + delta
	if newIndex < 0 {
		panic("seq: cursor advanced below zero")
	}
	if newIndex > c.buf.length {
		return nil, false
	}
	return roCur[E]{buf: c.buf, index: newIndex}, true
}

func (c roCur[E]) Read() (E, bool) { return c.buf.read(c.index) }

func (c roCur[E]) ReadInto(dst []E, di, n int) int {
	return c.buf.t.BulkReadImu(c.buf.data, c.index, dst, di, n)
}

func (c roCur[E]) CountBetweenExceeds(other ICur[E], n int) TBool {
	if n < 0 {
		panic("seq: negative count")
	}
	o, ok := other.(roCur[E])
	if !ok || o.buf != c.buf {
		return Fail
	}
	if o.index < c.index {
		return Fail
	}
	return TBoolOf(o.index-c.index >= n)
}
