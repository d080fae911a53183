// SPDX-License-Identifier: EPL-2.0

package extract

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestExtractor_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ex      Extractor
		wantErr bool
	}{
		{name: "defaults", ex: Extractor{NumLSB: 8, Length: 32}, wantErr: false},
		{name: "single bit", ex: Extractor{NumLSB: 1, Length: 1}, wantErr: false},
		{name: "zero lsb", ex: Extractor{NumLSB: 0, Length: 32}, wantErr: true},
		{name: "nine lsb", ex: Extractor{NumLSB: 9, Length: 32}, wantErr: true},
		{name: "negative lsb", ex: Extractor{NumLSB: -1, Length: 32}, wantErr: true},
		{name: "zero length", ex: Extractor{NumLSB: 8, Length: 0}, wantErr: true},
		{name: "negative length", ex: Extractor{NumLSB: 8, Length: -5}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ex.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() error = %v, want ErrInvalidParameter", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

// evenZeroSamples interleaves zeros with the given bit patterns so every
// visited difference equals the odd sample exactly.
func evenZeroSamples(patterns ...uint32) []float32 {
	samples := make([]float32, 2*len(patterns)+1)
	for i, p := range patterns {
		samples[2*i+1] = math.Float32frombits(p)
	}
	return samples
}

func TestExtract_KnownBits(t *testing.T) {
	t.Parallel()

	// Nine samples, four bytes: stride (9-1)/4 = 2 visits indices 1,3,5,7.
	samples := evenZeroSamples(0x3F8000AB, 0x3F8000CD, 0x3F800012, 0x3F8000EF)

	ex := Extractor{NumLSB: 8, Length: 4}
	got, err := ex.Extract(samples)
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}

	want := []byte{0xAB, 0xCD, 0x12, 0xEF}
	if !bytes.Equal(got, want) {
		t.Errorf("Extract() = %x, want %x", got, want)
	}
}

func TestExtract_MaskWidth(t *testing.T) {
	t.Parallel()

	samples := evenZeroSamples(0x3F8000AB, 0x3F8000CD, 0x3F800012, 0x3F8000EF)

	tests := []struct {
		numLSB int
		want   []byte
	}{
		{numLSB: 8, want: []byte{0xAB, 0xCD, 0x12, 0xEF}},
		{numLSB: 4, want: []byte{0x0B, 0x0D, 0x02, 0x0F}},
		{numLSB: 1, want: []byte{0x01, 0x01, 0x00, 0x01}},
	}

	for _, tt := range tests {
		ex := Extractor{NumLSB: tt.numLSB, Length: 4}

		got, err := ex.Extract(samples)
		if err != nil {
			t.Fatalf("Extract(NumLSB=%d) error = %v, want nil", tt.numLSB, err)
		}

		if !bytes.Equal(got, tt.want) {
			t.Errorf("Extract(NumLSB=%d) = %x, want %x", tt.numLSB, got, tt.want)
		}
	}
}

func TestExtract_SignIgnoredInLowBits(t *testing.T) {
	t.Parallel()

	// A negative difference flips only the sign bit; the mantissa tail is
	// untouched.
	samples := []float32{math.Float32frombits(0x3F8000AB), 0, 0}

	ex := Extractor{NumLSB: 8, Length: 1}
	got, err := ex.Extract(samples)
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}

	if !bytes.Equal(got, []byte{0xAB}) {
		t.Errorf("Extract() = %x, want ab", got)
	}
}

func TestExtract_ZeroDifferences(t *testing.T) {
	t.Parallel()

	samples := []float32{5, 5, 5}

	ex := Extractor{NumLSB: 8, Length: 2}
	got, err := ex.Extract(samples)
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}

	if !bytes.Equal(got, []byte{0, 0}) {
		t.Errorf("Extract() = %x, want 0000", got)
	}
}

func TestExtract_ExactLength(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 101)
	for i := range samples {
		samples[i] = float32(i)
	}

	ex := Extractor{NumLSB: 8, Length: 10}
	got, err := ex.Extract(samples)
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}

	if len(got) != 10 {
		t.Errorf("Extract() returned %d bytes, want 10", len(got))
	}
}

func TestExtract_InsufficientSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples int
		length  int
		wantErr bool
	}{
		{name: "empty", samples: 0, length: 32, wantErr: true},
		{name: "single sample", samples: 1, length: 32, wantErr: true},
		{name: "one short of stride", samples: 32, length: 32, wantErr: true},
		{name: "exactly enough", samples: 33, length: 32, wantErr: false},
		{name: "two for one", samples: 2, length: 1, wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, tt.samples)
			for i := range samples {
				samples[i] = float32(i)
			}

			ex := Extractor{NumLSB: 8, Length: tt.length}
			got, err := ex.Extract(samples)

			if tt.wantErr {
				if !errors.Is(err, ErrInsufficientSamples) {
					t.Errorf("Extract() error = %v, want ErrInsufficientSamples", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Extract() error = %v, want nil", err)
			}
			if len(got) != tt.length {
				t.Errorf("Extract() returned %d bytes, want %d", len(got), tt.length)
			}
		})
	}
}

func TestExtract_InvalidParameters(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 100)

	for _, ex := range []Extractor{
		{NumLSB: 0, Length: 10},
		{NumLSB: 8, Length: 0},
	} {
		_, err := ex.Extract(samples)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Extract(%+v) error = %v, want ErrInvalidParameter", ex, err)
		}
	}
}

// BenchmarkExtract measures extraction of 32 bytes from five seconds of
// 44.1kHz samples.
func BenchmarkExtract(b *testing.B) {
	samples := make([]float32, 44100*5)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	ex := Extractor{NumLSB: 8, Length: 32}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = ex.Extract(samples)
	}
}
