// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Decoder turns an encoded audio stream into mono float32 samples plus the
// stream's sample rate.
type Decoder interface {
	Decode(r io.Reader) (samples []float32, sampleRate int, err error)
}

// Registry maps file extensions (e.g., ".wav", ".mp3") to decoders.
// Lookups are case-insensitive and tolerate a missing leading dot.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// DecodeFile opens path, picks a decoder by file extension and returns the
// decoded samples and sample rate.
func (r *Registry) DecodeFile(path string) ([]float32, int, error) {
	dec, ok := r.Get(filepath.Ext(path))
	if !ok {
		return nil, 0, ErrFormatNotRegistered
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	samples, rate, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	return samples, rate, nil
}
