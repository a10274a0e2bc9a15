package app

import (
	"CaesarCipher/internal/core/domain"
	"CaesarCipher/internal/core/ports"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Overrides carry values supplied up front (e.g. CLI flags).
// A nil field means "ask the user".
type Overrides struct {
	Phrase    *string
	Shift     *int
	Direction *domain.Direction
}

// Session runs a single prompt, transform and print cycle.
type Session struct {
	log        zerolog.Logger
	cipher     ports.CipherPort
	prompter   ports.PrompterPort
	renderer   ports.RendererPort
	out        io.Writer
	showBanner bool
}

// NewSession wires the ports into a runnable session.
func NewSession(
	cipher ports.CipherPort,
	prompter ports.PrompterPort,
	renderer ports.RendererPort,
	out io.Writer,
	showBanner bool,
	baseLogger *zerolog.Logger,
) *Session {
	return &Session{
		log:        baseLogger.With().Str("component", "session").Logger(),
		cipher:     cipher,
		prompter:   prompter,
		renderer:   renderer,
		out:        out,
		showBanner: showBanner,
	}
}

// Run collects a request, transforms it and writes the result block.
func (s *Session) Run(ctx context.Context, overrides Overrides) (*domain.Result, error) {
	if s.showBanner {
		if _, err := io.WriteString(s.out, s.renderer.Banner()); err != nil {
			return nil, fmt.Errorf("could not write banner: %w", err)
		}
	}

	req, err := s.collect(ctx, overrides)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("direction", string(req.Direction)).
		Int("shift", req.Shift).
		Int("phrase_len", len([]rune(req.Phrase))).
		Msg("Request collected")

	result := &domain.Result{
		Request: *req,
		Output:  s.cipher.Transform(req.Phrase, req.Shift, req.Direction),
	}

	if _, err := io.WriteString(s.out, s.renderer.Result(*result)); err != nil {
		return nil, fmt.Errorf("could not write result: %w", err)
	}

	s.log.Info().Str("direction", string(req.Direction)).Msg("Phrase processed")
	return result, nil
}

// collect fills a request from overrides first, then from the prompter,
// in the order phrase, shift, direction.
func (s *Session) collect(ctx context.Context, o Overrides) (*domain.Request, error) {
	var req domain.Request
	var err error

	if o.Phrase != nil {
		req.Phrase = *o.Phrase
	} else if req.Phrase, err = s.prompter.Phrase(ctx); err != nil {
		return nil, fmt.Errorf("could not read phrase: %w", err)
	}

	if o.Shift != nil {
		req.Shift = *o.Shift
	} else if req.Shift, err = s.prompter.Shift(ctx); err != nil {
		return nil, fmt.Errorf("could not read shift: %w", err)
	}

	if o.Direction != nil {
		req.Direction = *o.Direction
	} else if req.Direction, err = s.prompter.Direction(ctx); err != nil {
		return nil, fmt.Errorf("could not read direction: %w", err)
	}

	return &req, nil
}
