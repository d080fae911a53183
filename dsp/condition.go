// SPDX-License-Identifier: EPL-2.0

package dsp

// RemoveDCOffset subtracts the arithmetic mean from every sample, in place.
// The mean is accumulated in float64 and rounded to float32 once, so the
// per-sample subtraction stays in 32-bit arithmetic.
func RemoveDCOffset(samples []float32) error {
	if len(samples) == 0 {
		return ErrDegenerateSignal
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}

	mean := float32(sum / float64(len(samples)))
	for i := range samples {
		samples[i] -= mean
	}

	return nil
}

// NormalizePeak scales samples in place so the largest absolute value
// becomes targetPeak. A buffer without signal (empty, or peak of zero)
// cannot be scaled and yields ErrDegenerateSignal.
func NormalizePeak(samples []float32, targetPeak float32) error {
	if len(samples) == 0 {
		return ErrDegenerateSignal
	}

	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	if peak == 0 {
		return ErrDegenerateSignal
	}

	factor := targetPeak / peak
	for i := range samples {
		samples[i] *= factor
	}

	return nil
}

// Condition removes the DC offset and then normalizes the peak, in that
// order. The order matters: a constant non-zero buffer carries all of its
// energy in the offset, becomes silence after the first step and fails the
// second.
func Condition(samples []float32, targetPeak float32) error {
	if err := RemoveDCOffset(samples); err != nil {
		return err
	}

	return NormalizePeak(samples, targetPeak)
}
