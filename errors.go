// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "errors"

// ErrClosed is returned by the non-blocking channel operations once the
// channel is closed. The blocking forms do not surface it: closed
// writes return silently and closed reads report end-of-stream, so the
// error is only needed to tell "closed" apart from "would block" on the
// Try path.
var ErrClosed = errors.New("seq: channel closed")
