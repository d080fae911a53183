// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"fmt"
	"time"
)

// Record starts dev, lets it deliver samples for the full duration d, then
// stops it and returns everything captured. The wait is fixed-length: the
// clock decides when recording ends, not the fill level. limit caps the
// number of retained samples; zero or less keeps everything.
//
// Cancelling ctx stops the device early and returns ctx.Err().
func Record(ctx context.Context, dev Device, limit int, d time.Duration) ([]float32, error) {
	if d <= 0 {
		return nil, ErrInvalidDuration
	}

	rec := NewRecorder(limit)
	if err := dev.Start(rec.Append); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		_ = dev.Stop()
		return nil, ctx.Err()
	}

	if err := dev.Stop(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples := rec.Take()
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	return samples, nil
}
