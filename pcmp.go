// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// PCmp is the result of a partial comparison. Not all values may be
// meaningfully compared, like cursors that index into different
// buffers; those compare as [Unrelated].
type PCmp int8

const (
	// Less orders the receiver strictly before the argument.
	Less PCmp = iota - 1
	// Equal relates two equivalent values.
	Equal
	// Greater orders the receiver strictly after the argument.
	Greater
	// Unrelated relates values with no meaningful order.
	Unrelated
)

// PCmpFrom maps a three-way comparison integer onto Less, Equal or
// Greater.
func PCmpFrom(cmp int) PCmp {
	switch {
	case cmp < 0:
		return Less
	case cmp == 0:
		return Equal
	default:
		return Greater
	}
}

// Neg swaps Less and Greater, preserving Equal and Unrelated.
func (p PCmp) Neg() PCmp {
	switch p {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return p
	}
}

func (p PCmp) String() string {
	switch p {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unrelated:
		return "unrelated"
	default:
		return "invalid"
	}
}
