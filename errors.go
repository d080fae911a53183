// SPDX-License-Identifier: EPL-2.0

package audseed

import "errors"

// ErrInvalidConfig reports a Config field that is out of range. The wrapped
// message names the offending field and its value.
var ErrInvalidConfig = errors.New("invalid configuration")
