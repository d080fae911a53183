// SPDX-License-Identifier: EPL-2.0

package extract

import "errors"

var (
	ErrInvalidParameter    = errors.New("extractor parameters out of range")
	ErrInsufficientSamples = errors.New("not enough samples for requested length")
)
