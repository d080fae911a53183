// SPDX-License-Identifier: EPL-2.0

package alsa

import "errors"

var (
	ErrAlreadyStarted = errors.New("capture already started")
	ErrNotSupported   = errors.New("alsa capture requires linux")
)
