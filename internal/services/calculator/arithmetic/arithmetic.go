// Package arithmetic implements the calculator's integer operations.
//
// Every operation is a pure function of its operands. Overflow wraps with
// Go's two's-complement int64 semantics and never panics.
package arithmetic

import "errors"

// ErrDivisionByZero indicates a Div call with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns a + b.
func Add(a, b int64) int64 {
	return a + b
}

// Sub returns a - b.
func Sub(a, b int64) int64 {
	return a - b
}

// Mul returns a * b.
func Mul(a, b int64) int64 {
	return a * b
}

// Div returns dividend / divisor truncated toward zero.
//
// MinInt64 / -1 wraps to MinInt64.
func Div(dividend, divisor int64) (int64, error) {
	if divisor == 0 {
		return 0, ErrDivisionByZero
	}
	return dividend / divisor, nil
}

// Sum adds values in slice order. An empty slice sums to zero.
func Sum(values []int64) int64 {
	var total int64
	for _, value := range values {
		total += value
	}
	return total
}
