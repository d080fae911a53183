// SPDX-License-Identifier: EPL-2.0

package capture

// Device is a live sample producer.
type Device interface {
	// Start begins delivery and invokes fn from the device's own
	// goroutine with each batch of mono float32 samples. The slice is
	// only valid for the duration of the call.
	Start(fn func(samples []float32)) error

	// Stop ends delivery and releases the device. No fn invocation
	// happens after Stop returns.
	Stop() error
}
