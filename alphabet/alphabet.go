// Package alphabet holds the 26 letter alphabet every wiring, position and
// ring setting is drawn from, together with the modular arithmetic used to
// rotate over it.
package alphabet

import (
	"errors"
	"fmt"
)

// Size is the number of symbols in the alphabet.
const Size = 26

// Letters is the alphabet in order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrOutOfRange is returned for any symbol or index outside the alphabet.
var ErrOutOfRange = errors.New("alphabet: value out of range")

// Contains reports whether c is one of 'A'..'Z'.
func Contains(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// Index converts a symbol to its index 0..25.
func Index(c byte) (int, error) {
	if !Contains(c) {
		return 0, fmt.Errorf("symbol %q: %w", c, ErrOutOfRange)
	}
	return int(c - 'A'), nil
}

// Symbol converts an index 0..25 to its symbol. It never wraps.
func Symbol(i int) (byte, error) {
	if i < 0 || i >= Size {
		return 0, fmt.Errorf("index %d: %w", i, ErrOutOfRange)
	}
	return byte(i) + 'A', nil
}

// Mod returns the non-negative remainder of n modulo Size.
func Mod(n int) int {
	return (n%Size + Size) % Size
}

// Shift returns the symbol at index Mod(i). It is meant for the result of
// modular arithmetic over indices that were already validated.
func Shift(i int) byte {
	return byte(Mod(i)) + 'A'
}
