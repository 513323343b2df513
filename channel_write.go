// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "code.hybscloud.com/iox"

// ChanWriter is the producer side of a [Chan]. Appends land in the
// written region and stay invisible to the reader until Commit; Restore
// rolls the written region back to a snapshot cursor.
type ChanWriter[E any] struct {
	c *Chan[E]
}

// Chan returns the channel this writer belongs to.
func (w *ChanWriter[E]) Chan() *Chan[E] { return w.c }

// End returns the write-end cursor, just past the written region.
func (w *ChanWriter[E]) End() OCur[E] {
	c := w.c
	c.mu.Lock()
	cy, idx := normCursor(c.cycle, c.readStart+c.nReadable+c.nWritten, c.capacity)
	c.mu.Unlock()
	return wCur[E]{buf: w, cycle: cy, index: idx}
}

// Snapshot returns the current write end; restoring it later discards
// anything appended in between.
func (w *ChanWriter[E]) Snapshot() Cur[E] { return w.End() }

// Append appends one element to the written region, blocking while the
// ring is full. Once the channel is closed appends return silently.
func (w *ChanWriter[E]) Append(v E) {
	c := w.c
	c.mu.Lock()
	for {
		if c.isClosedLocked() {
			c.mu.Unlock()
			return
		}
		used := c.nReadable + c.nWritten
		if used < c.capacity {
			i := (c.readStart + used) % c.capacity
			c.nWritten++
			store := c.store
			c.mu.Unlock()
			c.t.Write(store, i, v)
			c.readMon.Signal()
			return
		}
		c.writeMon.Wait()
	}
}

// TryAppend is the non-blocking form of Append. It returns
// iox.ErrWouldBlock when the ring is full and [ErrClosed] once the
// channel is closed.
func (w *ChanWriter[E]) TryAppend(v E) error {
	c := w.c
	c.mu.Lock()
	if c.isClosedLocked() {
		c.mu.Unlock()
		return ErrClosed
	}
	used := c.nReadable + c.nWritten
	if used == c.capacity {
		c.mu.Unlock()
		return iox.ErrWouldBlock
	}
	i := (c.readStart + used) % c.capacity
	c.nWritten++
	store := c.store
	c.mu.Unlock()
	c.t.Write(store, i, v)
	c.readMon.Signal()
	return nil
}

// AppendSlice appends slice[left:right], taking as much free space as
// is available each round and blocking only while nothing has been
// written yet. Returns the number of elements appended, which is short
// when the ring fills after a partial write or the channel closes
// mid-write.
func (w *ChanWriter[E]) AppendSlice(slice []E, left, right int) int {
	checkRange(left, right)
	c := w.c
	total := 0
	c.mu.Lock()
	for left < right {
		if c.isClosedLocked() {
			break
		}
		used := c.nReadable + c.nWritten
		n := min(c.capacity-used, right-left)
		if n == 0 {
			if total != 0 {
				break
			}
			c.writeMon.Wait()
			continue
		}
		i := (c.readStart + used) % c.capacity
		c.nWritten += n
		store := c.store
		c.mu.Unlock()
		if i+n <= c.capacity {
			c.t.BulkWrite(store, i, slice, left, left+n)
		} else {
			nTrailing := c.capacity - i
			c.t.BulkWrite(store, i, slice, left, left+nTrailing)
			c.t.BulkWrite(store, 0, slice, left+nTrailing, left+n)
		}
		left += n
		total += n
		c.readMon.Signal()
		c.mu.Lock()
	}
	c.mu.Unlock()
	return total
}

// Commit publishes the written region up to cur into the readable
// region and wakes the reader. Committing on a closed channel is a
// no-op. The cursor must lie within [write start, write end].
func (w *ChanWriter[E]) Commit(cv Cur[E]) {
	cur := w.own(cv)
	c := w.c
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosedLocked() {
		return
	}
	newWriteStart := c.absPos(cur.cycle, cur.index)
	writeStart := c.readStart + c.nReadable
	writeEnd := writeStart + c.nWritten
	if newWriteStart < writeStart || newWriteStart > writeEnd {
		panic("seq: commit cursor outside written region")
	}
	if delta := newWriteStart - writeStart; delta != 0 {
		c.nWritten -= delta
		c.nReadable += delta
		c.readMon.Broadcast()
	}
}

// Restore rolls the written region back so the write end is cur,
// discarding anything appended after the snapshot. Restoring past a
// commit panics; restoring on a closed channel is a no-op.
func (w *ChanWriter[E]) Restore(cv Cur[E]) {
	cur := w.own(cv)
	c := w.c
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosedLocked() {
		return
	}
	newWriteEnd := c.absPos(cur.cycle, cur.index)
	writeStart := c.readStart + c.nReadable
	writeEnd := writeStart + c.nWritten
	if newWriteEnd < writeStart || newWriteEnd > writeEnd {
		panic("seq: restore cursor outside written region")
	}
	// Only the producer rolls back and it is already running, so no
	// monitor needs waking here.
	c.nWritten = newWriteEnd - writeStart
}

// NeedCapacity blocks until at least one free cell exists and returns
// the free cell count, or 0 once the channel is closed.
func (w *ChanWriter[E]) NeedCapacity(n int) int {
	c := w.c
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		if c.isClosedLocked() {
			return 0
		}
		if avail := c.capacity - c.nReadable - c.nWritten; avail > 0 {
			return avail
		}
		c.writeMon.Wait()
	}
}

// Close closes the channel: further writes become no-ops and the
// reader drains what was committed, then observes end-of-stream.
func (w *ChanWriter[E]) Close() {
	w.c.close()
}

func (w *ChanWriter[E]) own(cv Cur[E]) wCur[E] {
	cur, ok := cv.(wCur[E])
	if !ok || cur.buf != w {
		panic("seq: cursor does not belong to this buffer")
	}
	return cur
}

// wCur is a writer-side cursor: (ring identity, cycle, index).
type wCur[E any] struct {
	buf   *ChanWriter[E]
	cycle uint64
	index int
}

func (c wCur[E]) Buffer() Buf[E] { return c.buf }

func (c wCur[E]) Compare(other Cur[E]) PCmp {
	o, ok := other.(wCur[E])
	if !ok || o.buf != c.buf {
		return Unrelated
	}
	if c.cycle != o.cycle {
		if c.cycle < o.cycle {
			return Less
		}
		return Greater
	}
	return PCmpFrom(c.index - o.index)
}

// NeedCapacity waits for free space on the ring; see
// [ChanWriter.NeedCapacity].
func (c wCur[E]) NeedCapacity(n int) int {
	return c.buf.NeedCapacity(n)
}
