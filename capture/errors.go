// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrInvalidDuration     = errors.New("record duration must be positive")
	ErrNoSamples           = errors.New("no samples captured")
	ErrFormatNotRegistered = errors.New("no decoder registered for format")
)
