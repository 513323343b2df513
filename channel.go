// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"strings"
	"sync"

	"code.hybscloud.com/atomix"
)

// Chan is a bounded single-producer single-consumer ring over shared
// typed storage. The ring is split into three circular regions starting
// at readStart:
//
//  1. readable: committed by the writer, available to the reader;
//  2. written: appended but not yet committed, revisable by the writer;
//  3. free: everything else.
//
// The reader reads region 1 and commits prefixes of it back to region
// 3. The writer appends into region 3 (moving cells to region 2),
// rolls region 2 back to a snapshot, or commits prefixes of region 2
// into region 1.
//
// Rather than limits, the state stores counts (readStart, nReadable,
// nWritten) so a full ring is unambiguous. cycle counts how many times
// readStart has wrapped; cursor positions are cycle*capacity+index so
// wrapped addresses stay distinct.
//
// All index updates happen under one mutex with two condition-variable
// monitors hanging off it: readMon (reader waits for data; writer
// signals) and writeMon (writer waits for space; reader signals).
// Element cells are accessed outside the critical section: the producer
// alone mutates written-region cells and the consumer observes index
// bounds under the lock before reading, so the mutex pair establishes
// the required happens-before.
//
// This assumes a single reader goroutine and a single writer goroutine.
// It does not depend on goroutine identity, so it works if multiple
// readers or writers coordinate exclusive access amongst themselves.
type Chan[E any] struct {
	t        Transport[E]
	capacity int
	serial   Serial

	mu       sync.Mutex
	readMon  *sync.Cond
	writeMon *sync.Cond

	store     MutStorage[E] // nil once closed and drained
	cycle     uint64
	readStart int
	nReadable int
	nWritten  int
	closed    atomix.Uint32

	r ChanReader[E]
	w ChanWriter[E]
}

func newChan[E any](t Transport[E], store MutStorage[E], capacity int) *Chan[E] {
	if capacity < 2 {
		panic("seq: channel capacity must be at least 2")
	}
	t.EnsureCapacity(store, capacity)
	t.SetLength(store, capacity)
	c := &Chan[E]{
		t:        t,
		capacity: capacity,
		serial:   nextSerial(),
		store:    store,
	}
	c.readMon = sync.NewCond(&c.mu)
	c.writeMon = sync.NewCond(&c.mu)
	c.r.c = c
	c.w.c = c
	return c
}

// Reader returns the consumer side.
func (c *Chan[E]) Reader() *ChanReader[E] { return &c.r }

// Writer returns the producer side.
func (c *Chan[E]) Writer() *ChanWriter[E] { return &c.w }

// Cap returns the ring capacity.
func (c *Chan[E]) Cap() int { return c.capacity }

// Serial returns the serial number assigned to this channel.
func (c *Chan[E]) Serial() Serial { return c.serial }

// IsClosed reports whether the channel has been closed. The flag is
// sticky and read without taking the ring lock.
func (c *Chan[E]) IsClosed() bool { return c.closed.Load() != 0 }

func (c *Chan[E]) isClosedLocked() bool { return c.closed.Load() != 0 }

// close marks the channel closed, drops the uncommitted written region
// (releasing its cells for collection), and wakes both monitors.
// Idempotent.
func (c *Chan[E]) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosedLocked() {
		return
	}
	c.closed.Add(1)
	left := c.readStart + c.nReadable
	right := left + c.nWritten
	c.nWritten = 0
	if right != left && c.store != nil {
		c.releaseWrapped(left, right)
	}
	c.readMon.Broadcast()
	c.writeMon.Broadcast()
}

// releaseWrapped releases the circular cell range [left, right), given
// in unwrapped offsets from the cycle origin. Caller holds mu.
func (c *Chan[E]) releaseWrapped(left, right int) {
	if left >= c.capacity {
		left -= c.capacity
		right -= c.capacity
	}
	if right <= c.capacity {
		c.t.ReleaseForGC(c.store, left, right)
	} else {
		c.t.ReleaseForGC(c.store, left, c.capacity)
		c.t.ReleaseForGC(c.store, 0, right%c.capacity)
	}
}

// absPos converts a cursor (cycle, index) into an absolute offset from
// the ring's current cycle origin, so that readStart, readStart+
// nReadable and readStart+nReadable+nWritten delimit the regions
// directly. Caller holds mu.
func (c *Chan[E]) absPos(cycle uint64, index int) int {
	return int(int64(cycle-c.cycle))*c.capacity + index
}

// normCursor reduces an index to [0, capacity) carrying overflow into
// the cycle counter.
func normCursor(cycle uint64, index, capacity int) (uint64, int) {
	for index < 0 {
		index += capacity
		cycle--
	}
	if index >= capacity {
		cycle += uint64(index / capacity)
		index %= capacity
	}
	return cycle, index
}

// String dumps the region map: R for readable cells, W for written
// uncommitted cells, dots for free cells.
func (c *Chan[E]) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := []byte(strings.Repeat(".", c.capacity))
	i := c.readStart
	for j := 0; j < c.nReadable; j, i = j+1, i+1 {
		state[i%c.capacity] = 'R'
	}
	for j := 0; j < c.nWritten; j, i = j+1, i+1 {
		state[i%c.capacity] = 'W'
	}
	s := fmt.Sprintf("seq.Chan#%d[%s]", c.serial, state)
	if c.isClosedLocked() {
		s += ":closed"
	}
	return s
}
