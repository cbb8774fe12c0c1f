package primes

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestStreamMatchesInRange(t *testing.T) {
	for _, r := range [][2]int64{{2, 10}, {10, 20}, {-10, 50}, {90, 96}, {30, 1}} {
		var streamed []int64
		err := Stream(context.Background(), r[0], r[1], 0, func(n int64) error {
			streamed = append(streamed, n)
			return nil
		})
		if err != nil {
			t.Fatalf("Stream(%d, %d) returned error: %v", r[0], r[1], err)
		}
		listed, err := InRange(context.Background(), r[0], r[1])
		if err != nil {
			t.Fatalf("InRange(%d, %d) returned error: %v", r[0], r[1], err)
		}
		if !slices.Equal(streamed, listed) {
			t.Fatalf("Stream(%d, %d) = %v, InRange = %v", r[0], r[1], streamed, listed)
		}
	}
}

func TestStreamPacesBetweenEmissionsOnly(t *testing.T) {
	const delay = 40 * time.Millisecond
	var stamps []time.Time

	start := time.Now()
	err := Stream(context.Background(), 2, 10, delay, func(int64) error {
		stamps = append(stamps, time.Now())
		return nil
	})
	finished := time.Now()
	if err != nil {
		t.Fatalf("Stream returned error: %v", err)
	}
	if len(stamps) != 4 {
		t.Fatalf("emitted %d primes, want 4", len(stamps))
	}
	if first := stamps[0].Sub(start); first >= delay {
		t.Fatalf("first prime waited %v, want no pause", first)
	}
	for i := 1; i < len(stamps); i++ {
		if gap := stamps[i].Sub(stamps[i-1]); gap < delay {
			t.Fatalf("gap before prime %d = %v, want at least %v", i, gap, delay)
		}
	}
	if tail := finished.Sub(stamps[len(stamps)-1]); tail >= delay {
		t.Fatalf("stream paused %v after the last prime", tail)
	}
}

func TestStreamStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []int64
	err := Stream(ctx, 2, 1000, 10*time.Millisecond, func(n int64) error {
		got = append(got, n)
		if len(got) == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Stream error = %v, want %v", err, context.Canceled)
	}
	if !slices.Equal(got, []int64{2, 3, 5}) {
		t.Fatalf("emitted %v after cancel, want [2 3 5]", got)
	}
}

func TestStreamCancelInterruptsPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Stream(ctx, 2, 10, time.Hour, func(int64) error { return nil })
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Stream error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after cancel")
	}
}

func TestStreamReturnsEmitError(t *testing.T) {
	sendErr := errors.New("send failed")
	calls := 0
	err := Stream(context.Background(), 2, 100, 0, func(int64) error {
		calls++
		return sendErr
	})
	if !errors.Is(err, sendErr) {
		t.Fatalf("Stream error = %v, want %v", err, sendErr)
	}
	if calls != 1 {
		t.Fatalf("emit called %d times, want 1", calls)
	}
}

func TestStreamRequiresEmit(t *testing.T) {
	if err := Stream(context.Background(), 2, 10, 0, nil); !errors.Is(err, ErrEmitRequired) {
		t.Fatalf("Stream error = %v, want %v", err, ErrEmitRequired)
	}
}
