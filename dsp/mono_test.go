// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"
)

func TestMixToMono_Stereo(t *testing.T) {
	t.Parallel()

	samples := []float32{0.2, 0.4, 0.6, 0.8}

	got, err := MixToMono(samples, 2)
	if err != nil {
		t.Fatalf("MixToMono() error = %v, want nil", err)
	}

	assertSamples(t, got, []float32{0.3, 0.7})
}

func TestMixToMono_Quad(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4}

	got, err := MixToMono(samples, 4)
	if err != nil {
		t.Fatalf("MixToMono() error = %v, want nil", err)
	}

	assertSamples(t, got, []float32{0.25})
}

func TestMixToMono_ThreeChannels(t *testing.T) {
	t.Parallel()

	samples := []float32{0.3, 0.6, 0.9, -0.3, -0.6, -0.9}

	got, err := MixToMono(samples, 3)
	if err != nil {
		t.Fatalf("MixToMono() error = %v, want nil", err)
	}

	assertSamples(t, got, []float32{0.6, -0.6})
}

func TestMixToMono_MonoPassthrough(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3}

	got, err := MixToMono(samples, 1)
	if err != nil {
		t.Fatalf("MixToMono() error = %v, want nil", err)
	}

	if &got[0] != &samples[0] {
		t.Error("MixToMono() copied a mono buffer instead of passing it through")
	}
}

func TestMixToMono_PartialFrameDropped(t *testing.T) {
	t.Parallel()

	samples := []float32{1, 2, 3}

	got, err := MixToMono(samples, 2)
	if err != nil {
		t.Fatalf("MixToMono() error = %v, want nil", err)
	}

	assertSamples(t, got, []float32{1.5})
}

func TestMixToMono_Empty(t *testing.T) {
	t.Parallel()

	got, err := MixToMono(nil, 2)
	if err != nil {
		t.Fatalf("MixToMono() error = %v, want nil", err)
	}

	if len(got) != 0 {
		t.Errorf("MixToMono() returned %d samples, want 0", len(got))
	}
}

func TestMixToMono_InvalidChannels(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{0, -1} {
		_, err := MixToMono([]float32{1, 2}, channels)
		if !errors.Is(err, ErrInvalidChannels) {
			t.Errorf("MixToMono(channels=%d) error = %v, want ErrInvalidChannels", channels, err)
		}
	}
}

// BenchmarkMixToMono_Stereo measures stereo mixdown of one second at 44.1kHz.
func BenchmarkMixToMono_Stereo(b *testing.B) {
	samples := make([]float32, 44100*2)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = MixToMono(samples, 2)
	}
}

// BenchmarkMixToMono_Generic measures the generic path with three channels.
func BenchmarkMixToMono_Generic(b *testing.B) {
	samples := make([]float32, 44100*3)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = MixToMono(samples, 3)
	}
}
