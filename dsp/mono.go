// SPDX-License-Identifier: EPL-2.0

package dsp

// MixToMono folds interleaved multi-channel samples down to mono by
// averaging each frame. Mono input is returned as-is without copying. A
// trailing partial frame is dropped.
func MixToMono(samples []float32, channels int) ([]float32, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if channels == 1 {
		return samples, nil
	}

	frames := len(samples) / channels
	out := make([]float32, frames)

	// Cache division result for the generic path
	invChannels := float32(1.0) / float32(channels)

	// Unrolled loop for common cases
	switch channels {
	case 2: // Stereo (most common)
		for f := 0; f < frames; f++ {
			idx := f << 1 // f * 2
			out[f] = (samples[idx] + samples[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := 0; f < frames; f++ {
			idx := f << 2 // f * 4
			sum := samples[idx] + samples[idx+1] + samples[idx+2] + samples[idx+3]
			out[f] = sum * 0.25
		}
	default: // Generic path
		for f := 0; f < frames; f++ {
			sum := float32(0)
			baseIdx := f * channels
			for c := 0; c < channels; c++ {
				sum += samples[baseIdx+c]
			}
			out[f] = sum * invChannels
		}
	}

	return out, nil
}
