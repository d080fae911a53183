// SPDX-License-Identifier: EPL-2.0

package extract

import "math"

// Extractor derives raw bytes from the low-order bits of successive sample
// differences.
//
// The buffer is walked at a fixed stride starting from the second sample.
// At each visited index the difference to the preceding sample is taken,
// its IEEE-754 bit pattern is read as a uint32, and the NumLSB least
// significant bits become one output byte. Those mantissa tail bits are
// where quantization and thermal noise end up in a conditioned noise
// recording.
type Extractor struct {
	// NumLSB is how many low bits of each difference survive, 1..8.
	NumLSB int
	// Length is the number of bytes to produce.
	Length int
}

// Validate reports whether the extractor parameters are usable.
func (e Extractor) Validate() error {
	if e.NumLSB < 1 || e.NumLSB > 8 {
		return ErrInvalidParameter
	}
	if e.Length <= 0 {
		return ErrInvalidParameter
	}

	return nil
}

// Extract produces exactly e.Length bytes from samples.
//
// The stride between visited indices is (len(samples)-1)/e.Length using
// integer division. A stride of zero means the buffer cannot cover the
// requested length; that case, and a walk that somehow ends short, are
// reported as ErrInsufficientSamples instead of returning a truncated
// buffer.
func (e Extractor) Extract(samples []float32) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	stride := (len(samples) - 1) / e.Length
	if stride == 0 {
		return nil, ErrInsufficientSamples
	}

	mask := uint32(1<<e.NumLSB - 1)
	out := make([]byte, 0, e.Length)

	for i := 1; i < len(samples) && len(out) < e.Length; i += stride {
		diff := samples[i] - samples[i-1]
		out = append(out, byte(math.Float32bits(diff)&mask))
	}

	if len(out) < e.Length {
		return nil, ErrInsufficientSamples
	}

	return out, nil
}
