package domain

import (
	"errors"
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters a shift rotates through.
const AlphabetSize = 26

const (
	DefaultPhrase = "Hello, world!"
	DefaultShift  = 13
)

// ErrInvalidDirection is returned when a direction string is not recognized.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a custom type for our ENUM
type Direction string

const (
	DirectionEncrypt Direction = "encrypt"
	DirectionDecrypt Direction = "decrypt"
)

// ParseDirection accepts "e", "encrypt", "d" or "decrypt" in any case.
// An empty string maps to DirectionEncrypt.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "e", "encrypt":
		return DirectionEncrypt, nil
	case "d", "decrypt":
		return DirectionDecrypt, nil
	default:
		return "", fmt.Errorf("%w: %q (want encrypt or decrypt)", ErrInvalidDirection, s)
	}
}

// NormalizeShift reduces any integer shift into [0, AlphabetSize).
func NormalizeShift(shift int) int {
	return ((shift % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// EffectiveShift returns the forward rotation to apply for this direction.
// Decrypting by n is encrypting by 26-n.
func (d Direction) EffectiveShift(shift int) int {
	n := NormalizeShift(shift)
	if d == DirectionDecrypt {
		return (AlphabetSize - n) % AlphabetSize
	}
	return n
}

// Request holds everything needed for a single transform.
type Request struct {
	Phrase    string
	Shift     int
	Direction Direction
}

// Result pairs a request with its transformed phrase.
type Result struct {
	Request
	Output string
}
