package primes

// Counter tallies how many observed values are prime.
//
// A Counter belongs to exactly one call: allocate it when the call starts and
// drop it when the call ends. It is not safe for concurrent use.
type Counter struct {
	observed int64
	primes   int64
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Observe records one value and reports whether it was prime. Repeated
// values are counted every time.
func (c *Counter) Observe(value int64) bool {
	c.observed++
	if !IsPrime(value) {
		return false
	}
	c.primes++
	return true
}

// Count returns the number of prime values observed.
func (c *Counter) Count() int64 {
	return c.primes
}

// Observed returns the number of values observed.
func (c *Counter) Observed() int64 {
	return c.observed
}
