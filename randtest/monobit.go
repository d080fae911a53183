// SPDX-License-Identifier: EPL-2.0

package randtest

import "math/bits"

// Monobit measures the proportion of set bits in data. A balanced random
// stream keeps the proportion near one half; the verdict passes only while
// 0.45 < p < 0.55 holds strictly, so landing exactly on either boundary
// fails.
func Monobit(data []byte) (p float64, ok bool, err error) {
	if len(data) == 0 {
		return 0, false, ErrEmptyInput
	}

	set := 0
	for _, b := range data {
		set += bits.OnesCount8(b)
	}

	p = float64(set) / float64(len(data)*8)

	return p, p > 0.45 && p < 0.55, nil
}
