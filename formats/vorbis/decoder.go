package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audseed/dsp"
)

// Decoder parses Ogg Vorbis streams and yields mono float32 samples.
type Decoder struct{}

// Decode reads the whole Ogg Vorbis stream and mixes multi-channel
// audio down to mono. The second return value is the sample rate from
// the stream's identification header.
func (Decoder) Decode(r io.Reader) ([]float32, int, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return mixdown(data, format.Channels, format.SampleRate)
}

func mixdown(data []float32, channels, sampleRate int) ([]float32, int, error) {
	mono, err := dsp.MixToMono(data, channels)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return mono, sampleRate, nil
}
