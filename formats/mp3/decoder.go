// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audseed/dsp"
	"github.com/ik5/audseed/utils"
)

// mp3Stream is the part of gomp3.Decoder used here, split out so tests
// can substitute a fake stream.
type mp3Stream interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

// Decoder parses MP3 streams and yields mono float32 samples.
type Decoder struct{}

// Decode drains the whole MP3 stream. go-mp3 always emits 16-bit
// little-endian stereo PCM, so the result is mixed down to mono. The
// second return value is the stream's sample rate.
func (Decoder) Decode(r io.Reader) ([]float32, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return drain(dec)
}

func drain(dec mp3Stream) ([]float32, int, error) {
	// Length is in output bytes and is negative when the source is
	// not seekable.
	capHint := dec.Length() / 2
	if capHint < 0 {
		capHint = 0
	}

	interleaved := make([]float32, 0, capHint)
	buf := make([]byte, 8192)

	for {
		n, err := dec.Read(buf)

		for i := 0; i+1 < n; i += 2 {
			v := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
			interleaved = append(interleaved, utils.Int16ToFloat32(v))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	// go-mp3 output is always stereo interleaved
	mono, err := dsp.MixToMono(interleaved, 2)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return mono, dec.SampleRate(), nil
}
