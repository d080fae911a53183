// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audseed/dsp"
	"github.com/ik5/audseed/utils"
)

// Decoder parses 16-bit PCM WAV streams and yields mono float32 samples.
type Decoder struct{}

// Decode reads the whole WAV stream through go-audio/wav. Multi-channel
// audio is mixed down to mono. The second return value is the sample
// rate declared in the fmt chunk.
func (Decoder) Decode(r io.Reader) ([]float32, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking, so non-seekable input is buffered.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}

		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	dec.ReadInfo()

	if dec.WavAudioFormat != 1 {
		return nil, 0, ErrOnlyPCMSupported
	}

	if dec.BitDepth != 16 {
		return nil, 0, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	interleaved := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		interleaved[i] = utils.Int16ToFloat32(int16(v))
	}

	mono, err := dsp.MixToMono(interleaved, int(dec.NumChans))
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return mono, int(dec.SampleRate), nil
}
