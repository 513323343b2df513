// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "code.hybscloud.com/iox"

// ChanReader is the consumer side of a [Chan]. Reads see only the
// readable region; committing a cursor releases the cells before it
// back to the free region and unblocks a waiting writer.
type ChanReader[E any] struct {
	c *Chan[E]
}

// Chan returns the channel this reader belongs to.
func (r *ChanReader[E]) Chan() *Chan[E] { return r.c }

// Start returns a cursor at the first readable element.
func (r *ChanReader[E]) Start() ICur[E] {
	c := r.c
	c.mu.Lock()
	cur := rCur[E]{buf: r, cycle: c.cycle, index: c.readStart}
	c.mu.Unlock()
	return cur
}

// End returns the read-end cursor, just past the readable region.
func (r *ChanReader[E]) End() ICur[E] {
	c := r.c
	c.mu.Lock()
	cy, idx := normCursor(c.cycle, c.readStart+c.nReadable, c.capacity)
	c.mu.Unlock()
	return rCur[E]{buf: r, cycle: cy, index: idx}
}

// Snapshot returns the reader's current start. Consumption cannot be
// undone, so Restore validates and does nothing.
func (r *ChanReader[E]) Snapshot() Cur[E] { return r.Start() }

// Restore validates that the cursor belongs to this reader and does
// nothing: the reader cannot un-consume.
func (r *ChanReader[E]) Restore(cv Cur[E]) {
	r.own(cv)
}

// Commit releases the readable prefix before cur to the free region and
// wakes a waiting writer. Once the channel is closed and the last
// readable cell is committed, the shared storage is dropped.
func (r *ChanReader[E]) Commit(cv Cur[E]) {
	cur := r.own(cv)
	c := r.c
	c.mu.Lock()
	defer c.mu.Unlock()
	delta := c.absPos(cur.cycle, cur.index) - c.readStart
	if delta < 0 || delta > c.nReadable {
		panic("seq: commit cursor outside readable region")
	}
	if delta == 0 {
		return
	}
	left := c.readStart
	right := left + delta
	c.nReadable -= delta
	c.readStart += delta
	if c.readStart >= c.capacity {
		c.cycle++
		c.readStart -= c.capacity
	}
	if c.store != nil {
		if c.isClosedLocked() && c.nReadable == 0 {
			c.store = nil
		} else {
			c.releaseWrapped(left, right)
		}
	}
	c.writeMon.Signal()
}

// Close closes the channel so writes become no-ops, then commits to not
// needing any remaining readable content.
func (r *ChanReader[E]) Close() {
	r.c.close()
	r.Commit(r.End())
}

func (r *ChanReader[E]) own(cv Cur[E]) rCur[E] {
	cur, ok := cv.(rCur[E])
	if !ok || cur.buf != r {
		panic("seq: cursor does not belong to this buffer")
	}
	return cur
}

// read returns the element at the cursor position, waiting while the
// position is past the readable region and the channel is open.
func (r *ChanReader[E]) read(cycle uint64, index int) (E, bool) {
	c := r.c
	c.mu.Lock()
	for {
		abs := c.absPos(cycle, index)
		if abs < c.readStart {
			c.mu.Unlock()
			panic("seq: cursor precedes readable region")
		}
		if abs < c.readStart+c.nReadable {
			storageIndex := abs % c.capacity
			store := c.store
			c.mu.Unlock()
			return c.t.ReadMut(store, storageIndex), true
		}
		if c.isClosedLocked() {
			c.mu.Unlock()
			var zero E
			return zero, false
		}
		c.readMon.Wait()
	}
}

// tryRead is the non-blocking form of read.
func (r *ChanReader[E]) tryRead(cycle uint64, index int) (E, error) {
	c := r.c
	var zero E
	c.mu.Lock()
	abs := c.absPos(cycle, index)
	if abs < c.readStart {
		c.mu.Unlock()
		panic("seq: cursor precedes readable region")
	}
	if abs >= c.readStart+c.nReadable {
		closed := c.isClosedLocked()
		c.mu.Unlock()
		if closed {
			return zero, ErrClosed
		}
		return zero, iox.ErrWouldBlock
	}
	storageIndex := abs % c.capacity
	store := c.store
	c.mu.Unlock()
	return c.t.ReadMut(store, storageIndex), nil
}

// readInto copies up to nWanted elements into dst at di, looping over
// the largest available span each round and splitting wrapped spans
// into two sub-copies. Blocks only while nothing has been read yet and
// the channel is open. Returns the accumulated count.
func (r *ChanReader[E]) readInto(cycle uint64, index int, dst []E, di, nWanted int) int {
	if di < 0 || nWanted < 0 {
		panic("seq: bulk read out of range")
	}
	c := r.c
	nWanted = min(nWanted, len(dst)-di)
	nRead := 0
	c.mu.Lock()
	for nWanted > 0 {
		abs := c.absPos(cycle, index)
		if abs < c.readStart {
			c.mu.Unlock()
			panic("seq: cursor precedes readable region")
		}
		n := min(nWanted, c.readStart+c.nReadable-abs)
		if n <= 0 {
			if c.isClosedLocked() || nRead != 0 {
				break
			}
			c.readMon.Wait()
			continue
		}
		left := abs % c.capacity
		store := c.store
		c.mu.Unlock()
		if left+n <= c.capacity {
			c.t.BulkReadMut(store, left, dst, di, n)
		} else {
			nToBreak := c.capacity - left
			c.t.BulkReadMut(store, left, dst, di, nToBreak)
			c.t.BulkReadMut(store, 0, dst, di+nToBreak, n-nToBreak)
		}
		nWanted -= n
		di += n
		index += n
		nRead += n
		c.mu.Lock()
	}
	c.mu.Unlock()
	return nRead
}

// tryReadInto is the non-blocking form of readInto: it copies whatever
// is currently readable and never waits.
func (r *ChanReader[E]) tryReadInto(cycle uint64, index int, dst []E, di, nWanted int) (int, error) {
	if di < 0 || nWanted < 0 {
		panic("seq: bulk read out of range")
	}
	c := r.c
	nWanted = min(nWanted, len(dst)-di)
	c.mu.Lock()
	abs := c.absPos(cycle, index)
	if abs < c.readStart {
		c.mu.Unlock()
		panic("seq: cursor precedes readable region")
	}
	n := min(nWanted, c.readStart+c.nReadable-abs)
	if n <= 0 {
		closed := c.isClosedLocked()
		c.mu.Unlock()
		if closed {
			return 0, ErrClosed
		}
		if nWanted == 0 {
			return 0, nil
		}
		return 0, iox.ErrWouldBlock
	}
	left := abs % c.capacity
	store := c.store
	c.mu.Unlock()
	if left+n <= c.capacity {
		c.t.BulkReadMut(store, left, dst, di, n)
	} else {
		nToBreak := c.capacity - left
		c.t.BulkReadMut(store, left, dst, di, nToBreak)
		c.t.BulkReadMut(store, 0, dst, di+nToBreak, n-nToBreak)
	}
	return n, nil
}

// TryICur is a readable cursor with non-blocking forms of Read and
// ReadInto that report backpressure as iox.ErrWouldBlock instead of
// waiting on the ring monitors. Cursors handed out by [ChanReader]
// implement it.
type TryICur[E any] interface {
	ICur[E]

	// TryRead is the non-blocking form of [ICur.Read].
	TryRead() (E, error)

	// TryReadInto is the non-blocking form of [ICur.ReadInto].
	TryReadInto(dst []E, di, n int) (int, error)
}

// rCur is a reader-side cursor: (ring identity, cycle, index), stable
// across wraps through the cycle counter.
type rCur[E any] struct {
	buf   *ChanReader[E]
	cycle uint64
	index int
}

func (c rCur[E]) Buffer() Buf[E] { return c.buf }

func (c rCur[E]) Compare(other Cur[E]) PCmp {
	o, ok := other.(rCur[E])
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

// Advance returns a cursor delta positions on, or false when that
// would pass the end of the readable region. It does not block.
func (c rCur[E]) Advance(delta int) (ICur[E], bool) {
	if delta == 0 {
		return c, true
	}
	ch := c.buf.c
	ch.mu.Lock()
	newAbs := ch.absPos(c.cycle, c.index) + delta
	if newAbs < ch.readStart {
		ch.mu.Unlock()
		panic("seq: cursor advanced before readable region")
	}
	if newAbs > ch.readStart+ch.nReadable {
		ch.mu.Unlock()
		return nil, false
	}
	ch.mu.Unlock()
	cy, idx := normCursor(c.cycle, c.index+delta, ch.capacity)
	return rCur[E]{buf: c.buf, cycle: cy, index: idx}, true
}

// Read returns the element under the cursor, waiting while it is not
// yet readable; false once the channel is closed and drained.
func (c rCur[E]) Read() (E, bool) {
	return c.buf.read(c.cycle, c.index)
}

// TryRead is the non-blocking form of Read.
func (c rCur[E]) TryRead() (E, error) {
	return c.buf.tryRead(c.cycle, c.index)
}

// ReadInto bulk-reads up to n elements into dst at di; see
// [ChanReader] readInto semantics.
func (c rCur[E]) ReadInto(dst []E, di, n int) int {
	return c.buf.readInto(c.cycle, c.index, dst, di, n)
}

// TryReadInto is the non-blocking form of ReadInto.
func (c rCur[E]) TryReadInto(dst []E, di, n int) (int, error) {
	return c.buf.tryReadInto(c.cycle, c.index, dst, di, n)
}

// CountBetweenExceeds computes the wrapped distance to other as
// (other.cycle-this.cycle)*capacity + (other.index-this.index). The
// answer is Fail for unrelated cursors or a negative distance, and
// False whenever n exceeds the capacity: the ring cannot host that many
// live elements.
func (c rCur[E]) CountBetweenExceeds(other ICur[E], n int) TBool {
	if n < 0 {
		panic("seq: negative count")
	}
	o, ok := other.(rCur[E])
	if !ok || o.buf != c.buf {
		return Fail
	}
	capacity := c.buf.c.capacity
	dpos := int64(o.cycle-c.cycle)*int64(capacity) + int64(o.index-c.index)
	if dpos < 0 {
		return Fail
	}
	if n > capacity {
		return False
	}
	return TBoolOf(dpos >= int64(n))
}
