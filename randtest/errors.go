// SPDX-License-Identifier: EPL-2.0

package randtest

import "errors"

var (
	ErrEmptyInput = errors.New("empty input")
)
