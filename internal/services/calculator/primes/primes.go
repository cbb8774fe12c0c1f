// Package primes implements the calculator's prime number queries: the
// primality predicate, whole-range evaluation, paced streaming and per-call
// counting.
package primes

import "context"

// rangeCancelCheckInterval bounds how many candidates InRange tests between
// context checks.
const rangeCancelCheckInterval = 1 << 12

// IsPrime reports whether n is prime using 6k±1 trial division up to √n.
//
// It is pure and allocation-free, so calls may run concurrently.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i is i*i <= n without overflowing near MaxInt64.
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// InRange returns the primes in [start, end] in ascending order.
//
// A start greater than end yields an empty result. The context is checked
// before the scan begins and periodically during long scans.
func InRange(ctx context.Context, start, end int64) ([]int64, error) {
	var found []int64
	err := scan(ctx, start, end, rangeCancelCheckInterval, func(n int64) error {
		found = append(found, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// scan calls visit for each prime in [start, end] in ascending order, checking
// ctx before the first candidate and then every checkEvery candidates.
// Candidates below 2 are skipped without testing.
func scan(ctx context.Context, start, end int64, checkEvery int64, visit func(int64) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if start < 2 {
		start = 2
	}
	if start > end {
		return nil
	}
	if checkEvery < 1 {
		checkEvery = 1
	}

	var tested int64
	for n := start; ; n++ {
		if tested%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		tested++
		if IsPrime(n) {
			if err := visit(n); err != nil {
				return err
			}
		}
		// Compare before incrementing so end == MaxInt64 terminates.
		if n == end {
			return nil
		}
	}
}
