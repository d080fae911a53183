// SPDX-License-Identifier: EPL-2.0

// Package sigtest provides deterministic signal generators and capture
// fakes shared by tests across the module.
package sigtest

import "math"

// Noise returns n pseudo-random samples in [-1, 1) drawn from a fixed
// linear congruential generator. The sequence depends only on seed, so
// expected values stay reproducible bit for bit across platforms.
func Noise(seed uint32, n int) []float32 {
	out := make([]float32, n)

	s := seed
	for i := range out {
		s = s*1664525 + 1013904223
		out[i] = float32(int32(s)) / (1 << 31)
	}

	return out
}

// Sine returns n samples of a sine wave at freq Hz sampled at rate Hz.
func Sine(rate int, freq float64, n int) []float32 {
	out := make([]float32, n)

	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = float32(math.Sin(2 * math.Pi * freq * t))
	}

	return out
}

// Constant returns n copies of v.
func Constant(v float32, n int) []float32 {
	out := make([]float32, n)

	for i := range out {
		out[i] = v
	}

	return out
}
