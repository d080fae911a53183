// SPDX-License-Identifier: EPL-2.0

// Package capture provides the pipeline's sample input boundary: live
// devices, fixed-duration recording, and file decoding.
//
// # Devices
//
// A Device pushes batches of mono float32 samples into a callback:
//
//	type Device interface {
//	    Start(fn func(samples []float32)) error
//	    Stop() error
//	}
//
// The ALSA implementation lives in the alsa subpackage; tests use in-memory
// fakes.
//
// # Recording
//
// Record wires a Device to a Recorder and blocks for a fixed duration:
//
//	samples, err := capture.Record(ctx, dev, 0, 5*time.Second)
//
// The buffer is handed over exactly once, after the device has stopped.
// There is no streaming interface; the seed pipeline wants one complete
// buffer.
//
// # File Decoding
//
// The Registry maps file extensions to decoders so recordings on disk can
// stand in for a microphone:
//
//	reg := capture.NewRegistry()
//	reg.Register(".wav", wav.Decoder{})
//	samples, rate, err := reg.DecodeFile("noise.wav")
//
// Decoders return mono samples; multi-channel files are mixed down before
// they reach the caller.
package capture
