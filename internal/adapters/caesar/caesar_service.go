package caesar

import (
	"CaesarCipher/internal/core/domain"
	"CaesarCipher/internal/core/ports"

	"github.com/rs/zerolog"
)

// caesarService implements the CipherPort interface with a fixed
// 26-letter Latin alphabet.
type caesarService struct {
	log zerolog.Logger
}

var _ ports.CipherPort = (*caesarService)(nil) // Ensure compliance

// NewCaesarService creates a new cipher service.
func NewCaesarService(baseLogger *zerolog.Logger) ports.CipherPort {
	log := baseLogger.With().Str("component", "cipher_service").Logger()
	log.Debug().Msg("Cipher service initialized")

	return &caesarService{log: log}
}

// Transform rotates ASCII letters within their case. Everything else,
// including non-ASCII letters and invalid UTF-8, is copied through unchanged.
// Works on bytes: ASCII never appears inside a multi-byte UTF-8 sequence.
func (s *caesarService) Transform(text string, shift int, direction domain.Direction) string {
	offset := byte(direction.EffectiveShift(shift))

	s.log.Debug().
		Str("direction", string(direction)).
		Int("shift", shift).
		Int("offset", int(offset)).
		Msg("Transforming phrase")

	if offset == 0 {
		return text
	}

	out := []byte(text)
	for i, c := range out {
		anchor, ok := caseAnchor(rune(c))
		if !ok {
			continue
		}
		out[i] = (c-byte(anchor)+offset)%domain.AlphabetSize + byte(anchor)
	}

	return string(out)
}

// Encrypt rotates forward by shift.
func (s *caesarService) Encrypt(text string, shift int) string {
	return s.Transform(text, shift, domain.DirectionEncrypt)
}

// Decrypt undoes Encrypt for the same shift.
func (s *caesarService) Decrypt(text string, shift int) string {
	return s.Transform(text, shift, domain.DirectionDecrypt)
}

// caseAnchor returns the first letter of r's case, or false if r is not
// an ASCII letter.
func caseAnchor(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return 'A', true
	case r >= 'a' && r <= 'z':
		return 'a', true
	default:
		return 0, false
	}
}
