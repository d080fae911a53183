// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package alsa

import (
	"fmt"
	"sync"

	goalsa "github.com/cocoonlife/goalsa"

	"github.com/ik5/audseed/utils"
)

// readChunk is the per-Read buffer size in samples; at 44.1kHz one chunk
// covers roughly 90ms, which also bounds how long Stop waits on a blocked
// read.
const readChunk = 4096

// Device captures mono float32 samples from an ALSA PCM device.
type Device struct {
	name string
	rate int

	mtx  sync.Mutex
	dev  *goalsa.CaptureDevice
	done chan struct{}
	wg   sync.WaitGroup
}

// NewDevice prepares a capture device. name is the ALSA PCM name
// ("default", "hw:0,0"); rate is the capture sample rate in Hz. The PCM is
// not opened until Start.
func NewDevice(name string, rate int) *Device {
	return &Device{name: name, rate: rate}
}

// Start opens the PCM for 16-bit mono capture and launches the pump
// goroutine that converts each chunk to float32 and hands it to fn.
func (d *Device) Start(fn func(samples []float32)) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.dev != nil {
		return ErrAlreadyStarted
	}

	dev, err := goalsa.NewCaptureDevice(d.name, 1, goalsa.FormatS16LE, d.rate, goalsa.BufferParams{})
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	d.dev = dev
	d.done = make(chan struct{})
	d.wg.Add(1)

	go d.pump(dev, fn)

	return nil
}

func (d *Device) pump(dev *goalsa.CaptureDevice, fn func(samples []float32)) {
	defer d.wg.Done()

	buf := make([]int16, readChunk)
	out := make([]float32, readChunk)

	for {
		select {
		case <-d.done:
			return
		default:
		}

		n, err := dev.Read(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				out[i] = utils.Int16ToFloat32(buf[i])
			}
			fn(out[:n])
		}
		if err != nil {
			// Overruns land here too; any read error ends this capture.
			return
		}
	}
}

// Stop ends delivery, waits for the pump goroutine to exit and closes the
// PCM. Safe to call without a preceding Start.
func (d *Device) Stop() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.dev == nil {
		return nil
	}

	close(d.done)
	d.wg.Wait()

	d.dev.Close()
	d.dev = nil

	return nil
}
