package primes

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
)

// naivePrime is plain odd trial division, kept independent from IsPrime.
func naivePrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeSmallValues(t *testing.T) {
	primes := map[int64]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true, 25: false, 29: true, 49: false}
	for n, want := range primes {
		if got := IsPrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %t, want %t", n, got, want)
		}
	}
	for _, n := range []int64{math.MinInt64, -7, -1, 0, 1, 4, 6, 9, 35, 121} {
		if IsPrime(n) {
			t.Fatalf("IsPrime(%d) = true, want false", n)
		}
	}
}

func TestIsPrimeMatchesTrialDivision(t *testing.T) {
	for n := int64(-10); n <= 20000; n++ {
		if got, want := IsPrime(n), naivePrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %t, want %t", n, got, want)
		}
	}
}

func TestIsPrimeLargeValues(t *testing.T) {
	tcs := []struct {
		n    int64
		want bool
	}{
		{n: 2147483647, want: true},
		{n: 1000000007, want: true},
		{n: 999999999989, want: true},
		{n: 1000000007 * 998244353, want: false},
		{n: math.MaxInt64, want: false},
	}
	for _, tc := range tcs {
		if got := IsPrime(tc.n); got != tc.want {
			t.Fatalf("IsPrime(%d) = %t, want %t", tc.n, got, tc.want)
		}
	}
}

func TestInRange(t *testing.T) {
	tcs := []struct {
		start, end int64
		want       []int64
	}{
		{start: 10, end: 20, want: []int64{11, 13, 17, 19}},
		{start: 2, end: 10, want: []int64{2, 3, 5, 7}},
		{start: -5, end: 3, want: []int64{2, 3}},
		{start: 13, end: 13, want: []int64{13}},
		{start: 14, end: 16, want: nil},
		{start: 20, end: 10, want: nil},
		{start: math.MinInt64, end: 1, want: nil},
	}

	for _, tc := range tcs {
		got, err := InRange(context.Background(), tc.start, tc.end)
		if err != nil {
			t.Fatalf("InRange(%d, %d) returned error: %v", tc.start, tc.end, err)
		}
		if !slices.Equal(got, tc.want) {
			t.Fatalf("InRange(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestInRangeTerminatesAtMaxInt64(t *testing.T) {
	got, err := InRange(context.Background(), math.MaxInt64-30, math.MaxInt64)
	if err != nil {
		t.Fatalf("InRange returned error: %v", err)
	}
	if !slices.Equal(got, []int64{9223372036854775783}) {
		t.Fatalf("InRange near MaxInt64 = %v", got)
	}
}

func TestInRangeHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := InRange(ctx, 2, 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("InRange error = %v, want %v", err, context.Canceled)
	}
	if got != nil {
		t.Fatalf("expected no result, got %v", got)
	}
}

func TestCounterCountsDuplicates(t *testing.T) {
	counter := NewCounter()
	for _, value := range []int64{2, 3, 4, 5, 11, 11, -3, 1} {
		counter.Observe(value)
	}
	if got := counter.Count(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	if got := counter.Observed(); got != 8 {
		t.Fatalf("observed = %d, want 8", got)
	}
}

func TestCounterStartsEmpty(t *testing.T) {
	counter := NewCounter()
	if counter.Count() != 0 || counter.Observed() != 0 {
		t.Fatalf("new counter = %+v, want zero", *counter)
	}
}
