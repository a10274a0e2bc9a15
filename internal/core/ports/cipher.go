package ports

import "CaesarCipher/internal/core/domain"

// CipherPort defines the interface for the letter-rotating transform.
// Implementations must preserve rune count, letter case and every
// non-letter rune in place.
type CipherPort interface {
	// Transform rotates each ASCII letter in text by shift in the given direction.
	Transform(text string, shift int, direction domain.Direction) string

	// Encrypt is Transform with domain.DirectionEncrypt.
	Encrypt(text string, shift int) string

	// Decrypt is Transform with domain.DirectionDecrypt.
	Decrypt(text string, shift int) string
}
