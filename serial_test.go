// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"code.hybscloud.com/seq"
)

func TestSerialMonotonic(t *testing.T) {
	b1 := seq.BuilderForBytes(nil).BuildReadWrite()
	b2 := seq.BuilderForBytes(nil).BuildReadWrite()
	b3 := seq.BuilderForBytes(nil).BuildChannel(2)

	s1 := b1.Serial()
	s2 := b2.Serial()
	s3 := b3.Serial()

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}

func TestFreezeAssignsFreshSerial(t *testing.T) {
	buf := seq.BuilderForBytes([]byte{1}).BuildReadWrite()
	s := buf.Serial()
	frozen := buf.Freeze()
	if frozen.Serial() == s {
		t.Fatalf("frozen buffer reused serial %d", s)
	}
}
