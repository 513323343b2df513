// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "slices"

// refMut is mutable storage for reference elements: an ordered slice of
// owning references, grown by append.
type refMut[E any] struct {
	elems []E
}

func (*refMut[E]) mutableStorage() {}

// refImu is an immutable ordered slice of references.
type refImu[E any] struct {
	elems []E
}

func (*refImu[E]) immutableStorage() {}

// refTransport serves arbitrary reference elements. Unlike the packed
// value transports it participates in garbage collection: vacated cells
// are zeroed so the storage does not pin user objects.
type refTransport[E any] struct{}

func (t *refTransport[E]) mut(m MutStorage[E]) *refMut[E] {
	rm, ok := m.(*refMut[E])
	if !ok {
		panic("seq: mutable storage does not belong to this transport")
	}
	return rm
}

func (t *refTransport[E]) imu(s ImuStorage[E]) *refImu[E] {
	ri, ok := s.(*refImu[E])
	if !ok {
		panic("seq: immutable storage does not belong to this transport")
	}
	return ri
}

func (t *refTransport[E]) EnsureCapacity(m MutStorage[E], n int) int {
	rm := t.mut(m)
	if n > cap(rm.elems) {
		nelems := make([]E, len(rm.elems), max(n, cap(rm.elems)<<1))
		copy(nelems, rm.elems)
		rm.elems = nelems
	}
	return cap(rm.elems)
}

func (t *refTransport[E]) LengthImu(s ImuStorage[E]) int { return len(t.imu(s).elems) }

func (t *refTransport[E]) LengthMut(m MutStorage[E]) int { return len(t.mut(m).elems) }

func (t *refTransport[E]) SetLength(m MutStorage[E], n int) {
	rm := t.mut(m)
	if n < 0 {
		panic("seq: negative length")
	}
	if n < len(rm.elems) {
		// Zero the dropped tail so truncation releases the references.
		clear(rm.elems[n:])
		rm.elems = rm.elems[:n]
		return
	}
	for len(rm.elems) < n {
		var zero E
		rm.elems = append(rm.elems, zero)
	}
}

func (t *refTransport[E]) MoveImuToMut(src ImuStorage[E], si int, dst MutStorage[E], di, n int) int {
	ri := t.imu(src)
	if si < 0 || si+n > len(ri.elems) {
		panic("seq: move source out of range")
	}
	t.moveInto(t.mut(dst), di, ri.elems[si:si+n])
	return n
}

func (t *refTransport[E]) MoveMutToMut(src MutStorage[E], si int, dst MutStorage[E], di, n int) int {
	rm := t.mut(src)
	if si < 0 || si+n > len(rm.elems) {
		panic("seq: move source out of range")
	}
	t.moveInto(t.mut(dst), di, rm.elems[si:si+n])
	return n
}

func (t *refTransport[E]) moveInto(rm *refMut[E], di int, src []E) {
	if di < 0 {
		panic("seq: move destination out of range")
	}
	if end := di + len(src); end > len(rm.elems) {
		t.SetLength(rm, end)
	}
	copy(rm.elems[di:di+len(src)], src)
}

func (t *refTransport[E]) Freeze(m MutStorage[E], left, right int) ImuStorage[E] {
	rm := t.mut(m)
	checkRange(left, right)
	if right > len(rm.elems) {
		panic("seq: freeze range out of range")
	}
	return &refImu[E]{elems: slices.Clone(rm.elems[left:right])}
}

func (t *refTransport[E]) ReadImu(s ImuStorage[E], i int) E {
	ri := t.imu(s)
	if i < 0 || i >= len(ri.elems) {
		panic("seq: index out of range")
	}
	return ri.elems[i]
}

func (t *refTransport[E]) ReadMut(m MutStorage[E], i int) E {
	rm := t.mut(m)
	if i < 0 || i >= len(rm.elems) {
		panic("seq: index out of range")
	}
	return rm.elems[i]
}

func (t *refTransport[E]) BulkReadImu(src ImuStorage[E], si int, dst []E, di, n int) int {
	return bulkRead(t.imu(src).elems, si, dst, di, n)
}

func (t *refTransport[E]) BulkReadMut(src MutStorage[E], si int, dst []E, di, n int) int {
	return bulkRead(t.mut(src).elems, si, dst, di, n)
}

func (t *refTransport[E]) Write(m MutStorage[E], i int, v E) {
	rm := t.mut(m)
	switch {
	case i < 0 || i > len(rm.elems):
		panic("seq: index out of range")
	case i == len(rm.elems):
		rm.elems = append(rm.elems, v)
	default:
		rm.elems[i] = v
	}
}

func (t *refTransport[E]) Insert(m MutStorage[E], i int, slice []E, left, right int) int {
	rm := t.mut(m)
	checkRange(left, right)
	if i < 0 || i > len(rm.elems) {
		panic("seq: index out of range")
	}
	rm.elems = slices.Insert(rm.elems, i, slice[left:right]...)
	return right - left
}

func (t *refTransport[E]) BulkWrite(m MutStorage[E], i int, slice []E, left, right int) {
	rm := t.mut(m)
	checkRange(left, right)
	if i < 0 || i > len(rm.elems) {
		panic("seq: index out of range")
	}
	n := right - left
	common := min(i+n, len(rm.elems))
	j := left
	for ; i < common; i, j = i+1, j+1 {
		rm.elems[i] = slice[j]
	}
	rm.elems = append(rm.elems, slice[j:right]...)
}

func (t *refTransport[E]) ReleaseForGC(m MutStorage[E], left, right int) {
	rm := t.mut(m)
	checkRange(left, right)
	if right > len(rm.elems) {
		panic("seq: release range out of range")
	}
	clear(rm.elems[left:right])
}

func (t *refTransport[E]) CreateStorage() MutStorage[E] {
	return &refMut[E]{}
}
