// SPDX-License-Identifier: EPL-2.0

// Package alsa captures microphone noise through ALSA.
//
// The Device opens a PCM in 16-bit mono at the requested rate and pushes
// converted float32 batches into the capture callback:
//
//	dev := alsa.NewDevice("default", 44100)
//	samples, err := capture.Record(ctx, dev, 0, 5*time.Second)
//
// Only linux builds talk to ALSA; elsewhere Start fails with
// ErrNotSupported so callers can fall back to file input.
package alsa
