// SPDX-License-Identifier: EPL-2.0

package capture

import "sync"

// Recorder accumulates samples delivered by a Device callback. It is safe
// for concurrent use: the producing callback appends under a mutex while
// other goroutines inspect progress or take the result.
type Recorder struct {
	mtx     sync.Mutex
	samples []float32
	limit   int
}

// NewRecorder returns a Recorder that stops accumulating once limit
// samples are held. A limit of zero or less means unbounded.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Append stores a copy of batch. Input beyond the limit is dropped.
func (r *Recorder) Append(batch []float32) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.limit > 0 {
		room := r.limit - len(r.samples)
		if room <= 0 {
			return
		}
		if len(batch) > room {
			batch = batch[:room]
		}
	}

	r.samples = append(r.samples, batch...)
}

// Len reports how many samples are held.
func (r *Recorder) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.samples)
}

// Take hands the accumulated buffer over and leaves the Recorder empty.
// The returned slice is no longer shared with the callback.
func (r *Recorder) Take() []float32 {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	samples := r.samples
	r.samples = nil

	return samples
}
