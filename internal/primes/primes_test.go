package primes

import (
	"errors"
	"slices"
	"testing"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, n := range primes {
		if !IsPrime(n) {
			t.Fatalf("expected %d to be prime", n)
		}
	}
	composites := []int{-7, 0, 1, 4, 9, 15, 25, 49, 7917}
	for _, n := range composites {
		if IsPrime(n) {
			t.Fatalf("expected %d not to be prime", n)
		}
	}
}

func TestFirstN(t *testing.T) {
	got, err := FirstN(10)
	if err != nil {
		t.Fatalf("FirstN returned error: %v", err)
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if !slices.Equal(got, want) {
		t.Fatalf("FirstN(10) = %v, want %v", got, want)
	}

	thousand, err := FirstN(1000)
	if err != nil {
		t.Fatalf("FirstN returned error: %v", err)
	}
	if last := thousand[len(thousand)-1]; last != 7919 {
		t.Fatalf("expected 1000th prime 7919, got %d", last)
	}
}

func TestFirstNRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := FirstN(n); !errors.Is(err, ErrValidation) {
			t.Fatalf("FirstN(%d): expected validation error, got %v", n, err)
		}
	}
}
