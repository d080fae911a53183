// SPDX-License-Identifier: EPL-2.0

package audseed

import (
	"context"
	"fmt"
	"os"

	"github.com/ik5/audseed/capture"
	"github.com/ik5/audseed/dsp"
	"github.com/ik5/audseed/extract"
	"github.com/ik5/audseed/formats/aiff"
	"github.com/ik5/audseed/formats/mp3"
	"github.com/ik5/audseed/formats/vorbis"
	"github.com/ik5/audseed/formats/wav"
	"github.com/ik5/audseed/randtest"
)

// Generate runs the full pipeline on an already captured buffer: condition
// the signal, extract cfg.Length random bytes and run the statistical tests
// on them. The samples slice is modified in place by the conditioning step.
func Generate(cfg Config, samples []float32) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w", err)
	}

	if err := dsp.Condition(samples, cfg.TargetPeak); err != nil {
		return Report{}, fmt.Errorf("conditioning: %w", err)
	}

	ext := extract.Extractor{
		NumLSB: cfg.NumLSB,
		Length: cfg.Length,
	}

	seed, err := ext.Extract(samples)
	if err != nil {
		return Report{}, fmt.Errorf("extracting: %w", err)
	}

	rep := Report{Seed: seed}

	rep.Monobit.P, rep.Monobit.OK, err = randtest.Monobit(seed)
	if err != nil {
		return Report{}, fmt.Errorf("monobit test: %w", err)
	}

	rep.Runs.P, rep.Runs.OK, err = randtest.Runs(seed)
	if err != nil {
		return Report{}, fmt.Errorf("runs test: %w", err)
	}

	return rep, nil
}

// Capture records from dev for cfg.Duration and feeds the recording through
// Generate. When cfg.SavePath is set the raw recording is written there as a
// WAV file before any processing touches it.
func Capture(ctx context.Context, dev capture.Device, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w", err)
	}

	samples, err := capture.Record(ctx, dev, 0, cfg.Duration)
	if err != nil {
		return Report{}, fmt.Errorf("recording: %w", err)
	}

	if cfg.SavePath != "" {
		if err := saveWAV(cfg.SavePath, cfg.SampleRate, samples); err != nil {
			return Report{}, fmt.Errorf("saving recording: %w", err)
		}
	}

	return Generate(cfg, samples)
}

// GenerateFromFile decodes an audio file through reg and feeds the samples
// through Generate. The file's own sample rate is used, not cfg.SampleRate.
func GenerateFromFile(reg *capture.Registry, path string, cfg Config) (Report, error) {
	samples, _, err := reg.DecodeFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("%w", err)
	}

	return Generate(cfg, samples)
}

// DefaultRegistry returns a Registry with decoders for all supported file
// formats registered under their usual extensions.
func DefaultRegistry() *capture.Registry {
	reg := capture.NewRegistry()
	reg.Register(".wav", wav.Decoder{})
	reg.Register(".mp3", mp3.Decoder{})
	reg.Register(".ogg", vorbis.Decoder{})
	reg.Register(".oga", vorbis.Decoder{})
	reg.Register(".aiff", aiff.Decoder{})
	reg.Register(".aif", aiff.Decoder{})

	return reg
}

func saveWAV(path string, sampleRate int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WriteWAV16(f, sampleRate, samples); err != nil {
		f.Close()
		return fmt.Errorf("%w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
