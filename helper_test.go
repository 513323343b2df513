// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"time"

	"code.hybscloud.com/seq"
)

// alphabetChars is the A..Z payload used by the channel round-trip
// tests, as UTF-16 code units.
func alphabetChars() []uint16 {
	out := make([]uint16, 26)
	for i := range out {
		out[i] = uint16('A' + i)
	}
	return out
}

// alphabetRefs is the A..Z payload as one-letter strings.
func alphabetRefs() []string {
	out := make([]string, 26)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

// drainOneByOne consumes a channel one element at a time with
// read+advance+commit, collecting everything until end-of-stream, then
// closes the reader side.
func drainOneByOne[E any](rd *seq.ChanReader[E]) []E {
	var out []E
	cur := rd.Start()
	for {
		v, ok := cur.Read()
		if !ok {
			break
		}
		out = append(out, v)
		next, ok := cur.Advance(1)
		if !ok {
			break
		}
		cur = next
		rd.Commit(cur)
	}
	rd.Close()
	return out
}

// withinBudget runs fn on its own goroutine and reports false when it
// does not finish inside the budget, the way a deadlocked channel pair
// would not.
func withinBudget(budget time.Duration, fn func()) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
		return true
	case <-time.After(budget):
		return false
	}
}
