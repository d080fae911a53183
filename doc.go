// SPDX-License-Identifier: EPL-2.0

// Package audseed turns audio noise into random seed material for Go applications.
//
// This package records raw noise from a sound card (or reads it from an audio
// file), conditions the signal, harvests the chaotic low-order bits of the
// samples and checks the result with statistical tests. It's designed to be
// simple to use while keeping every pipeline stage available on its own.
//
// # Pipeline
//
// A full run has four stages:
//   - capture or decode: obtain mono float32 samples
//   - condition: remove the DC offset and normalize the peak via dsp
//   - extract: derive random bytes from sample-to-sample noise via extract
//   - test: run monobit and runs checks on the bytes via randtest
//
// # Quick Start
//
// The simplest way to produce a seed from a recording device:
//
//	cfg := audseed.DefaultConfig()
//	dev := alsa.NewDevice(cfg.Device, cfg.SampleRate)
//	rep, _ := audseed.Capture(context.Background(), dev, cfg)
//
//	// rep.Seed holds cfg.Length random bytes
//	fmt.Println(rep.HexString())
//
// Or from a prerecorded file:
//
//	reg := audseed.DefaultRegistry()
//	rep, _ := audseed.GenerateFromFile(reg, "noise.wav", cfg)
//
// # Supported Formats
//
// DefaultRegistry registers decoders for the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// All decoders mix multichannel audio down to mono float32 samples.
//
// # Statistical Tests
//
// Extracted bytes are never returned untested. Generate runs the monobit
// frequency test and the runs test from randtest and reports each p-value in
// the returned Report. Callers decide what to do with a failing report; the
// bytes are still included so a caller can inspect them.
//
// # Custom Pipelines
//
// Each stage is a separate subpackage, so a caller needing more control can
// compose them directly:
//
//	samples, _ := capture.Record(ctx, dev, 0, 5*time.Second)
//	_ = dsp.Condition(samples, 1.0)
//	ext := extract.Extractor{NumLSB: 8, Length: 32}
//	seed, _ := ext.Extract(samples)
//	p, ok, _ := randtest.Monobit(seed)
//
// See the individual subpackages for more detailed documentation.
package audseed
