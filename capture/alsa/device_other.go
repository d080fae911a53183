// SPDX-License-Identifier: EPL-2.0

//go:build !linux || !cgo

package alsa

// Device is the non-linux stand-in; Start always fails with
// ErrNotSupported.
type Device struct {
	name string
	rate int
}

// NewDevice prepares a capture device. The PCM can never be opened on this
// platform.
func NewDevice(name string, rate int) *Device {
	return &Device{name: name, rate: rate}
}

func (d *Device) Start(fn func(samples []float32)) error {
	return ErrNotSupported
}

func (d *Device) Stop() error {
	return nil
}
