// SPDX-License-Identifier: EPL-2.0

// Package extract turns conditioned float32 sample buffers into raw seed
// bytes.
//
// The extractor strides across the buffer, takes the difference between
// each visited sample and its predecessor, and keeps the low bits of the
// difference's IEEE-754 representation:
//
//	ex := extract.Extractor{NumLSB: 8, Length: 32}
//	seed, err := ex.Extract(samples)
//
// Buffers too short to honor Length are rejected with
// ErrInsufficientSamples; a short seed is never returned.
package extract
