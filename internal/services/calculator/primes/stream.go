package primes

import (
	"context"
	"errors"
	"time"
)

// DefaultStreamDelay is the pause between two consecutive streamed primes.
const DefaultStreamDelay = 500 * time.Millisecond

// ErrEmitRequired indicates Stream was called without an emit function.
var ErrEmitRequired = errors.New("emit function is required")

// Stream scans [start, end] in ascending order and calls emit once per prime.
//
// Consecutive emissions are separated by delay; no pause follows the last
// prime. The pause runs on the caller's goroutine and is interrupted by ctx.
// The context is checked before every primality test, so a cancelled scan
// stops after at most one test or one pause. Stream returns ctx.Err() when
// cancelled, the first emit error, or nil once the range is exhausted.
// Nothing beyond the current prime is held in memory.
func Stream(ctx context.Context, start, end int64, delay time.Duration, emit func(int64) error) error {
	if emit == nil {
		return ErrEmitRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	emitted := false
	return scan(ctx, start, end, 1, func(n int64) error {
		if emitted && delay > 0 {
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := emit(n); err != nil {
			return err
		}
		emitted = true
		return nil
	})
}
