package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audseed/dsp"
	"github.com/ik5/audseed/utils"
)

// aiffReader is the part of aiff.Decoder used here, split out so tests
// can substitute a fake decoder.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder parses 16-bit PCM AIFF streams and yields mono float32 samples.
type Decoder struct{}

// Decode reads the whole AIFF stream through go-audio/aiff. Multi-channel
// audio is mixed down to mono. The second return value is the sample
// rate from the COMM chunk.
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

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, 0, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, 0, ErrUnsupportedAiffLayout
	}

	return drain(dec, format)
}

// drain pulls PCM chunks until the decoder reports no more samples.
// go-audio/aiff signals the end of data with n == 0 and a nil error.
func drain(dec aiffReader, format *goaudio.Format) ([]float32, int, error) {
	var interleaved []float32

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}

		for _, v := range buf.Data[:n] {
			interleaved = append(interleaved, utils.Int16ToFloat32(int16(v)))
		}
	}

	mono, err := dsp.MixToMono(interleaved, format.NumChannels)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return mono, format.SampleRate, nil
}
