// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the sample conditioning primitives of the seed
// pipeline.
//
// # Conditioning
//
// Raw capture buffers carry two artifacts that get in the way of bit-level
// extraction: a DC offset from the capture hardware and an arbitrary
// amplitude that depends on input gain. Condition strips both, in place:
//
//	samples := record() // []float32
//	if err := dsp.Condition(samples, 1.0); err != nil {
//	    // empty or silent buffer
//	}
//
// RemoveDCOffset and NormalizePeak are also available separately when only
// one stage is wanted. The order is fixed when both run: offset first, peak
// second. A buffer that is silent once its offset is gone (including any
// constant buffer) is reported as ErrDegenerateSignal rather than being
// scaled into garbage.
//
// # Channel Mixing
//
// MixToMono converts interleaved multi-channel buffers to mono by
// averaging each frame:
//
//	mono, err := dsp.MixToMono(interleaved, 2)
//
// Mono input passes through untouched. Decoders use this so the rest of
// the pipeline only ever sees single-channel data.
//
// # Sample Format
//
// Samples are float32. Conditioned buffers span [-targetPeak, targetPeak];
// inputs may arrive in any finite range since NormalizePeak rescales
// whatever it finds.
package dsp
