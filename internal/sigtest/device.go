// SPDX-License-Identifier: EPL-2.0

package sigtest

// Device feeds a fixed buffer to a capture callback from its own
// goroutine, in chunks. It implements the capture.Device interface
// (without importing it to avoid cycles).
type Device struct {
	samples  []float32
	chunk    int
	startErr error
	stopErr  error
	done     chan struct{}
}

// NewDevice returns a Device that delivers samples in chunk-sized batches.
// A chunk of zero or less delivers everything in a single call.
func NewDevice(samples []float32, chunk int) *Device {
	if chunk <= 0 {
		chunk = len(samples)
	}

	return &Device{samples: samples, chunk: chunk}
}

// NewFlakyDevice returns a Device that fails Start or Stop with the given
// errors. A nil error leaves that side working.
func NewFlakyDevice(startErr, stopErr error) *Device {
	return &Device{startErr: startErr, stopErr: stopErr}
}

func (d *Device) Start(fn func(samples []float32)) error {
	if d.startErr != nil {
		return d.startErr
	}

	d.done = make(chan struct{})

	go func() {
		defer close(d.done)

		for off := 0; off < len(d.samples); off += d.chunk {
			end := off + d.chunk
			if end > len(d.samples) {
				end = len(d.samples)
			}
			fn(d.samples[off:end])
		}
	}()

	return nil
}

// Stop waits for delivery to finish; the callback is never invoked after
// Stop returns.
func (d *Device) Stop() error {
	if d.done != nil {
		<-d.done
	}

	return d.stopErr
}
