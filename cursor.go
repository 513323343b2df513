// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Buf is the base interface of all buffers: a checkpointable container
// whose positions are expressed as opaque cursors.
type Buf[E any] interface {
	// Snapshot returns a cursor capturing the state to return to.
	Snapshot() Cur[E]
	// Restore returns the buffer to the state captured by a snapshot
	// cursor it emitted. Restoring a foreign cursor panics.
	Restore(Cur[E])
}

// Commitable is a Buf that can commit to never rolling back past a
// cursor. Attempts to restore to state prior to a commit panic.
type Commitable[E any] interface {
	Buf[E]
	Commit(Cur[E])
}

// Cur is an opaque position within a buffer. Cursors are immutable
// values; equality is by buffer identity and position, never by object
// identity.
type Cur[E any] interface {
	// Buffer returns the buffer this cursor indexes into.
	Buffer() Buf[E]
	// Compare partially orders this cursor against another. Cursors of
	// different buffers are Unrelated.
	Compare(other Cur[E]) PCmp
}

// ICur is a readable cursor.
type ICur[E any] interface {
	Cur[E]

	// Advance returns a cursor delta positions further on, or false
	// when that would pass the end of the readable region. Advancing by
	// zero returns the receiver. A delta that would take the position
	// below zero panics.
	Advance(delta int) (ICur[E], bool)

	// Read returns the element under the cursor, or false at the end
	// of the readable region. Channel cursors block until an element is
	// readable or the channel closes.
	Read() (E, bool)

	// ReadInto bulk-reads up to n elements into dst starting at di and
	// returns the count read.
	ReadInto(dst []E, di, n int) int

	// CountBetweenExceeds answers True when other lies at least n
	// positions after this cursor, False when fewer, and Fail when the
	// cursors index different buffers or other precedes this cursor.
	CountBetweenExceeds(other ICur[E], n int) TBool
}

// OCur is a writable-side cursor.
type OCur[E any] interface {
	Cur[E]

	// NeedCapacity requests capacity for n elements. For plain buffers
	// it grows the backing storage and returns the resulting capacity.
	// For channels it blocks until at least one free cell exists and
	// returns the free cell count, or 0 once the channel is closed.
	NeedCapacity(n int) int
}

// IOCur is a cursor into a buffer that is both readable and writable.
type IOCur[E any] interface {
	ICur[E]
	OCur[E]
}

// IBuf is a readable buffer.
type IBuf[E any] interface {
	Buf[E]
	// Start returns a cursor at the first readable element.
	Start() ICur[E]
}

// OBuf is an append-only output buffer.
type OBuf[E any] interface {
	Buf[E]

	// Append appends one element.
	Append(v E)

	// AppendSlice appends slice[left:right] and returns the number of
	// elements appended, which may be short of right-left if the buffer
	// is a channel that filled up or closed mid-write.
	AppendSlice(slice []E, left, right int) int
}

var (
	_ IBuf[int]       = (*ROBuf[int])(nil)
	_ IBuf[int]       = (*IOBuf[int])(nil)
	_ OBuf[int]       = (*IOBuf[int])(nil)
	_ IBuf[int]       = (*ChanReader[int])(nil)
	_ Commitable[int] = (*ChanReader[int])(nil)
	_ OBuf[int]       = (*ChanWriter[int])(nil)
	_ Commitable[int] = (*ChanWriter[int])(nil)

	_ ICur[int]    = roCur[int]{}
	_ IOCur[int]   = ioCur[int]{}
	_ TryICur[int] = rCur[int]{}
	_ OCur[int]    = wCur[int]{}

	_ Transport[int]  = (*valueTransport[int])(nil)
	_ Transport[int]  = (*refTransport[int])(nil)
	_ Transport[bool] = (*bitTransport)(nil)
)
