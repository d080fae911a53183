// SPDX-License-Identifier: EPL-2.0

package randtest

import "math"

// Runs scans the bitstream most significant bit first and counts
// transitions between unequal neighbouring bits. The transition counter is
// cumulative across the whole stream; each increment landing at six or
// below bumps the histogram bucket just beneath it, so buckets[0] holds
// one exactly when the stream transitions at all. The statistic
//
//	p = |2*buckets[0] - n| / (2*sqrt(n))
//
// weighs that first bucket against the total bit count n, and the verdict
// passes while p < 1.96 strictly.
func Runs(data []byte) (p float64, ok bool, err error) {
	if len(data) == 0 {
		return 0, false, ErrEmptyInput
	}

	var buckets [6]int

	transitions := 0
	prev := (data[0] >> 7) & 1

	n := len(data) * 8
	for i := 1; i < n; i++ {
		bit := (data[i/8] >> (7 - i%8)) & 1
		if bit != prev {
			transitions++
			if transitions <= len(buckets) {
				buckets[transitions-1]++
			}
		}
		prev = bit
	}

	fn := float64(n)
	p = math.Abs(2*float64(buckets[0])-fn) / (2 * math.Sqrt(fn))

	return p, p < 1.96, nil
}
