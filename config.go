// SPDX-License-Identifier: EPL-2.0

package audseed

import (
	"fmt"
	"time"
)

// Default configuration values used by DefaultConfig.
const (
	DefaultSampleRate = 44100
	DefaultDuration   = 5 * time.Second
	DefaultNumLSB     = 8
	DefaultLength     = 32
	DefaultTargetPeak = 1.0
	DefaultDevice     = "default"
)

// Config holds the knobs for a full capture-to-seed run.
type Config struct {
	// SampleRate is the capture rate in Hz.
	SampleRate int

	// Duration is how long to record from the capture device.
	Duration time.Duration

	// NumLSB is how many low-order bits each sample pair contributes,
	// between 1 and 8.
	NumLSB int

	// Length is the number of random bytes to produce.
	Length int

	// TargetPeak is the peak amplitude the conditioned signal is scaled
	// to, normally 1.0.
	TargetPeak float32

	// Device names the capture device, e.g. "default" or "hw:0,0".
	Device string

	// SavePath, when non-empty, is where the raw recording is written as
	// a 16-bit PCM WAV file before extraction.
	SavePath string
}

// DefaultConfig returns a Config with the package defaults filled in.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Duration:   DefaultDuration,
		NumLSB:     DefaultNumLSB,
		Length:     DefaultLength,
		TargetPeak: DefaultTargetPeak,
		Device:     DefaultDevice,
	}
}

// Validate checks every field and returns ErrInvalidConfig naming the first
// field that is out of range.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %s", ErrInvalidConfig, c.Duration)
	}

	if c.NumLSB < 1 || c.NumLSB > 8 {
		return fmt.Errorf("%w: lsb count %d", ErrInvalidConfig, c.NumLSB)
	}

	if c.Length <= 0 {
		return fmt.Errorf("%w: length %d", ErrInvalidConfig, c.Length)
	}

	if c.TargetPeak <= 0 {
		return fmt.Errorf("%w: target peak %f", ErrInvalidConfig, c.TargetPeak)
	}

	return nil
}
