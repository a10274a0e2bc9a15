package console

import (
	"CaesarCipher/internal/core/domain"
	"CaesarCipher/internal/core/ports"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ErrInputClosed is returned when the input stream fails or ends before
// a line could be read.
var ErrInputClosed = errors.New("input closed")

const invalidNumberMsg = "Please enter a valid number."

// Defaults are the values used when the user submits an empty line.
type Defaults struct {
	Phrase string
	Shift  int
}

// lineResult is one ReadString outcome handed back from the reader goroutine.
type lineResult struct {
	line string
	err  error
}

// prompter implements ports.PrompterPort over a line-oriented stream.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	defaults Defaults
	log      zerolog.Logger

	// pending is the in-flight read left behind by a cancelled ask.
	// The next ask collects it instead of starting a second reader.
	pending chan lineResult
}

var _ ports.PrompterPort = (*prompter)(nil) // Ensure compliance

// NewPrompter creates a prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer, defaults Defaults, baseLogger *zerolog.Logger) ports.PrompterPort {
	return &prompter{
		in:       bufio.NewReader(in),
		out:      out,
		defaults: defaults,
		log:      baseLogger.With().Str("component", "console_prompter").Logger(),
	}
}

// Phrase asks for the text to transform.
func (p *prompter) Phrase(ctx context.Context) (string, error) {
	line, err := p.ask(ctx, fmt.Sprintf("Enter your phrase [%s]: ", p.defaults.Phrase))
	if err != nil {
		return "", err
	}
	if line == "" {
		return p.defaults.Phrase, nil
	}
	return line, nil
}

// Shift asks for the rotation amount until it gets a non-negative integer
// or an empty line.
func (p *prompter) Shift(ctx context.Context) (int, error) {
	label := fmt.Sprintf("Enter your shift [%d]: ", p.defaults.Shift)

	for {
		line, err := p.ask(ctx, label)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return p.defaults.Shift, nil
		}

		shift, err := strconv.Atoi(line)
		if err != nil || shift < 0 {
			p.log.Debug().Str("input", line).Msg("Rejected shift input")
			fmt.Fprintln(p.out, invalidNumberMsg)
			continue
		}
		return shift, nil
	}
}

// Direction asks whether to encrypt or decrypt. Only the first character
// of the answer matters. Unrecognized answers are asked again.
func (p *prompter) Direction(ctx context.Context) (domain.Direction, error) {
	for {
		line, err := p.ask(ctx, "Are you encrypting or decrypting? [E/d]: ")
		if err != nil {
			return "", err
		}
		if line == "" {
			return domain.DirectionEncrypt, nil
		}

		first, _ := utf8.DecodeRuneInString(line)
		switch unicode.ToLower(first) {
		case 'e':
			return domain.DirectionEncrypt, nil
		case 'd':
			return domain.DirectionDecrypt, nil
		}
		p.log.Debug().Str("input", line).Msg("Rejected direction input")
	}
}

// ask prints label and returns the next trimmed line.
func (p *prompter) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", fmt.Errorf("could not write prompt: %w", err)
	}

	line, err := p.readLine(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		// A last line without a trailing newline is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		p.log.Debug().Err(err).Msg("Failed to read from input")
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	return strings.TrimSpace(line), nil
}

// readLine blocks until a line arrives or ctx is done. Reads run on their
// own goroutine so cancellation is not held up by a blocked stdin.
func (p *prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		return res.line, res.err
	}
}
