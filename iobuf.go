// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "fmt"

// IOBuf is an append-only buffer that supports both reads and appends.
// Restoring a snapshot cursor truncates everything appended after it,
// which makes failing computations side-effect free. Freeze converts
// the accumulated content into an [ROBuf] and consumes the buffer;
// Abandon is the alternative terminal event.
//
// An IOBuf is a single-goroutine container.
type IOBuf[E any] struct {
	t        Transport[E]
	store    MutStorage[E]
	serial   Serial
	consumed bool
}

func newIOBuf[E any](t Transport[E], store MutStorage[E]) *IOBuf[E] {
	return &IOBuf[E]{t: t, store: store, serial: nextSerial()}
}

func (b *IOBuf[E]) live() {
	if b.consumed {
		panic("seq: buffer already consumed")
	}
}

// Serial returns the serial number assigned to this buffer.
func (b *IOBuf[E]) Serial() Serial { return b.serial }

// Len returns the current element count.
func (b *IOBuf[E]) Len() int {
	b.live()
	return b.t.LengthMut(b.store)
}

// Start returns the cursor at index zero.
func (b *IOBuf[E]) Start() ICur[E] {
	b.live()
	return ioCur[E]{buf: b}
}

// End returns a fresh cursor sampling the current length.
func (b *IOBuf[E]) End() IOCur[E] {
	b.live()
	return ioCur[E]{buf: b, index: b.t.LengthMut(b.store)}
}

// Append appends one element.
func (b *IOBuf[E]) Append(v E) {
	b.live()
	b.t.Write(b.store, b.t.LengthMut(b.store), v)
}

// AppendSlice appends slice[left:right] and returns the number of
// elements appended.
func (b *IOBuf[E]) AppendSlice(slice []E, left, right int) int {
	b.live()
	b.t.BulkWrite(b.store, b.t.LengthMut(b.store), slice, left, right)
	return right - left
}

// EnsureCapacity grows the backing storage to hold at least n elements
// without changing the length, and returns the resulting capacity.
func (b *IOBuf[E]) EnsureCapacity(n int) int {
	b.live()
	return b.t.EnsureCapacity(b.store, n)
}

// Snapshot returns the current end cursor.
func (b *IOBuf[E]) Snapshot() Cur[E] {
	return b.End()
}

// Restore rolls the buffer back to a snapshot cursor: the length
// becomes the cursor index and later appends extend from there.
func (b *IOBuf[E]) Restore(c Cur[E]) {
	b.live()
	cur, ok := c.(ioCur[E])
	if !ok || cur.buf != b {
		panic("seq: cursor does not belong to this buffer")
	}
	if cur.index > b.t.LengthMut(b.store) {
		panic("seq: cursor beyond current length")
	}
	b.t.SetLength(b.store, cur.index)
}

// Freeze copies the content into a fresh [ROBuf] and consumes the
// buffer; any further operation panics.
func (b *IOBuf[E]) Freeze() *ROBuf[E] {
	b.live()
	imu := b.t.Freeze(b.store, 0, b.t.LengthMut(b.store))
	b.consumed = true
	b.store = nil
	return newROBuf(b.t, imu)
}

// Abandon releases the backing storage without freezing. The buffer is
// consumed; any further operation panics.
func (b *IOBuf[E]) Abandon() {
	b.live()
	b.consumed = true
	b.store = nil
}

func (b *IOBuf[E]) String() string {
	if b.consumed {
		return fmt.Sprintf("seq.IOBuf#%d(consumed)", b.serial)
	}
	return fmt.Sprintf("seq.IOBuf#%d(len=%d)", b.serial, b.t.LengthMut(b.store))
}

func (b *IOBuf[E]) read(i int) (E, bool) {
	b.live()
	if i < b.t.LengthMut(b.store) {
		return b.t.ReadMut(b.store, i), true
	}
	var zero E
	return zero, false
}

// ioCur is a cursor into an IOBuf: a (buffer, index) pair that both
// reads and reserves write capacity.
type ioCur[E any] struct {
	buf   *IOBuf[E]
	index int
}

func (c ioCur[E]) Buffer() Buf[E] { return c.buf }

func (c ioCur[E]) Compare(other Cur[E]) PCmp {
	o, ok := other.(ioCur[E])
	if !ok || o.buf != c.buf {
		return Unrelated
	}
	return PCmpFrom(c.index - o.index)
}

func (c ioCur[E]) Advance(delta int) (ICur[E], bool) {
	if delta == 0 {
		return c, true
	}
	c.buf.live()
	newIndex := c.index + delta
	if newIndex < 0 {
		panic("seq: cursor advanced below zero")
	}
	if newIndex > c.buf.t.LengthMut(c.buf.store) {
		return nil, false
	}
	return ioCur[E]{buf: c.buf, index: newIndex}, true
}

func (c ioCur[E]) Read() (E, bool) { return c.buf.read(c.index) }

func (c ioCur[E]) ReadInto(dst []E, di, n int) int {
	c.buf.live()
	return c.buf.t.BulkReadMut(c.buf.store, c.index, dst, di, n)
}

func (c ioCur[E]) CountBetweenExceeds(other ICur[E], n int) TBool {
	if n < 0 {
		panic("seq: negative count")
	}
	o, ok := other.(ioCur[E])
	if !ok || o.buf != c.buf {
		return Fail
	}
	if o.index < c.index {
		return Fail
	}
	return TBoolOf(o.index-c.index >= n)
}

// NeedCapacity grows the backing storage to hold at least n elements
// and returns the resulting capacity.
func (c ioCur[E]) NeedCapacity(n int) int {
	return c.buf.EnsureCapacity(n)
}
