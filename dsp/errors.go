// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrDegenerateSignal = errors.New("degenerate signal: empty or silent buffer")
	ErrInvalidChannels  = errors.New("channel count must be positive")
)
