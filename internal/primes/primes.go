// Package primes generates primes by trial division.
package primes

import (
	"errors"
	"fmt"
)

// ErrValidation marks a request that cannot produce a result, such as
// asking for zero primes.
var ErrValidation = errors.New("validation error")

// IsPrime reports whether n is prime. Values below 2 are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// FirstN returns the first n primes in ascending order.
func FirstN(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: prime count must be positive, got %d", ErrValidation, n)
	}
	out := make([]int, 0, n)
	for candidate := 2; len(out) < n; candidate++ {
		if IsPrime(candidate) {
			out = append(out, candidate)
		}
	}
	return out, nil
}
