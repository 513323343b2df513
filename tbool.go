// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// TBool is a tri-state truth value where [Fail] indicates that the
// question was not well phrased, as opposed to a definite yes or no.
type TBool uint8

const (
	// False is the definite negative answer.
	False TBool = iota
	// True is the definite affirmative answer.
	True
	// Fail answers an ill-posed question. Fail breaks excluded middle:
	// Not(Fail) is Fail.
	Fail
)

// Not inverts a definite answer and preserves Fail.
func (t TBool) Not() TBool {
	switch t {
	case False:
		return True
	case True:
		return False
	default:
		return Fail
	}
}

// TBoolOf converts a definite bool into a TBool.
func TBoolOf(b bool) TBool {
	if b {
		return True
	}
	return False
}

func (t TBool) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	case Fail:
		return "fail"
	default:
		return "invalid"
	}
}
