// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq provides append-only sequence containers sharing one
// cursor-based access protocol and a uniform snapshot / rollback /
// commit discipline.
//
// Three container kinds are built from a common typed storage back end:
//
//   - [ROBuf]: a frozen, immutable view; cursors are plain indices.
//   - [IOBuf]: a linear append-only buffer; a snapshot cursor can be
//     restored later, truncating everything appended since. Freezing
//     yields an [ROBuf] and consumes the buffer.
//   - [Chan]: a bounded single-producer single-consumer ring split into
//     readable, written-but-uncommitted, and free regions. Writer-side
//     commit publishes written elements to the reader; reader-side
//     commit returns consumed cells to the free region.
//
// # Architecture
//
//   - Storage: each element family (references, bits, bytes, UTF-16
//     units, shorts, ints, longs, floats, doubles) is served by one
//     [Transport], a stateless capability that performs every read,
//     write, copy, freeze and grow on its own storage kind.
//   - Cursors: opaque immutable positions. [ICur] reads and advances;
//     [OCur] reserves capacity. Cursors of the same buffer compare with
//     a partial order ([PCmp]); cursors of different buffers are
//     [Unrelated].
//   - Non-blocking: channel operations have TryAppend/TryRead/
//     TryReadInto forms returning iox.ErrWouldBlock on backpressure.
//     The blocking forms wait on the ring's monitors.
//   - Tri-state: questions that may be ill-posed, such as
//     [ICur.CountBetweenExceeds] across unrelated buffers, answer with
//     [TBool] rather than a plain bool.
//
// # Building
//
// A [Builder] ties a transport to an initial storage:
//
//	ch := seq.BuilderForChars(nil).BuildChannel(8)
//	go func() {
//		wr := ch.Writer()
//		wr.Append('h')
//		wr.Commit(wr.End())
//		wr.Close()
//	}()
//	cur := ch.Reader().Start()
//	v, ok := cur.Read()
//
// # Concurrency
//
// A channel coordinates exactly one producer goroutine and one consumer
// goroutine; it does not depend on goroutine identity, so multiple
// producers (or consumers) may share a side if they coordinate
// exclusive access amongst themselves. ROBuf and IOBuf are
// single-goroutine containers.
//
// Closing a channel from either side doubles as the cancellation
// primitive: every blocked operation returns in bounded time with the
// progress it has made so far.
package seq
