package app

import (
	"CaesarCipher/internal/adapters/caesar"
	"CaesarCipher/internal/adapters/console"
	"CaesarCipher/internal/console/messages"
	"CaesarCipher/internal/core/domain"
	"CaesarCipher/internal/core/ports"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// MockPrompter
type MockPrompter struct {
	mock.Mock
}

var _ ports.PrompterPort = (*MockPrompter)(nil)

func (m *MockPrompter) Phrase(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Shift(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPrompter) Direction(ctx context.Context) (domain.Direction, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Direction), args.Error(1)
}

// MockCipher
type MockCipher struct {
	mock.Mock
}

var _ ports.CipherPort = (*MockCipher)(nil)

func (m *MockCipher) Transform(text string, shift int, direction domain.Direction) string {
	args := m.Called(text, shift, direction)
	return args.String(0)
}

func (m *MockCipher) Encrypt(text string, shift int) string {
	args := m.Called(text, shift)
	return args.String(0)
}

func (m *MockCipher) Decrypt(text string, shift int) string {
	args := m.Called(text, shift)
	return args.String(0)
}

// --- Helpers ---

func newTestSession(prompter ports.PrompterPort, cipher ports.CipherPort, showBanner bool) (*Session, *bytes.Buffer) {
	nopLogger := zerolog.Nop()
	if cipher == nil {
		cipher = caesar.NewCaesarService(&nopLogger)
	}
	out := &bytes.Buffer{}
	return NewSession(cipher, prompter, messages.NewRenderer(""), out, showBanner, &nopLogger), out
}

// --- Tests ---

func TestSession_Run_PromptsInOrder(t *testing.T) {
	ctx := context.Background()
	prompter := new(MockPrompter)
	prompter.On("Phrase", ctx).Return("Hello, World!", nil).Once()
	prompter.On("Shift", ctx).Return(13, nil).Once()
	prompter.On("Direction", ctx).Return(domain.DirectionEncrypt, nil).Once()

	session, out := newTestSession(prompter, nil, true)

	result, err := session.Run(ctx, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "Uryyb, Jbeyq!", result.Output)
	assert.Equal(t, "Hello, World!", result.Phrase)
	assert.Equal(t, 13, result.Shift)
	assert.Equal(t, domain.DirectionEncrypt, result.Direction)

	renderer := messages.NewRenderer("")
	assert.Equal(t, renderer.Banner()+renderer.Result(*result), out.String())
	prompter.AssertExpectations(t)
}

func TestSession_Run_Decrypt(t *testing.T) {
	ctx := context.Background()
	prompter := new(MockPrompter)
	prompter.On("Phrase", ctx).Return("Uryyb, Jbeyq!", nil)
	prompter.On("Shift", ctx).Return(13, nil)
	prompter.On("Direction", ctx).Return(domain.DirectionDecrypt, nil)

	session, out := newTestSession(prompter, nil, false)

	result, err := session.Run(ctx, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "Hello, World!", result.Output)
	assert.NotContains(t, out.String(), messages.DefaultTitle)
	assert.Contains(t, out.String(), "    Uryyb, Jbeyq!\n    ⇵\n    Hello, World!\n")
}

func TestSession_Run_OverridesSkipPrompts(t *testing.T) {
	ctx := context.Background()
	prompter := new(MockPrompter) // no expectations: any call fails the test

	phrase := "xyz"
	shift := 1
	direction := domain.DirectionEncrypt

	session, _ := newTestSession(prompter, nil, false)

	result, err := session.Run(ctx, Overrides{Phrase: &phrase, Shift: &shift, Direction: &direction})
	require.NoError(t, err)

	assert.Equal(t, "yza", result.Output)
	prompter.AssertNotCalled(t, "Phrase", mock.Anything)
	prompter.AssertNotCalled(t, "Shift", mock.Anything)
	prompter.AssertNotCalled(t, "Direction", mock.Anything)
}

func TestSession_Run_PartialOverrides(t *testing.T) {
	ctx := context.Background()
	prompter := new(MockPrompter)
	prompter.On("Shift", ctx).Return(3, nil).Once()

	phrase := "abc"
	direction := domain.DirectionDecrypt

	cipher := new(MockCipher)
	cipher.On("Transform", "abc", 3, domain.DirectionDecrypt).Return("xyz").Once()

	session, _ := newTestSession(prompter, cipher, false)

	result, err := session.Run(ctx, Overrides{Phrase: &phrase, Direction: &direction})
	require.NoError(t, err)

	assert.Equal(t, "xyz", result.Output)
	prompter.AssertExpectations(t)
	cipher.AssertExpectations(t)
}

func TestSession_Run_PrompterError(t *testing.T) {
	ctx := context.Background()
	prompter := new(MockPrompter)
	prompter.On("Phrase", ctx).Return("hi", nil)
	prompter.On("Shift", ctx).Return(0, console.ErrInputClosed)

	cipher := new(MockCipher)
	session, out := newTestSession(prompter, cipher, false)

	result, err := session.Run(ctx, Overrides{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, console.ErrInputClosed)
	assert.Contains(t, err.Error(), "shift")

	prompter.AssertNotCalled(t, "Direction", mock.Anything)
	cipher.AssertNotCalled(t, "Transform", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, out.String())
}

// failWriter fails every write
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSession_Run_WriteError(t *testing.T) {
	nopLogger := zerolog.Nop()
	cipherSvc := caesar.NewCaesarService(&nopLogger)
	session := NewSession(cipherSvc, new(MockPrompter), messages.NewRenderer(""), failWriter{}, true, &nopLogger)

	_, err := session.Run(context.Background(), Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "banner")
}

func TestSession_Run_WithConsolePrompter(t *testing.T) {
	nopLogger := zerolog.Nop()
	out := &bytes.Buffer{}
	input := strings.NewReader("\nnope\n\nd\n")
	prompter := console.NewPrompter(input, out, console.Defaults{Phrase: domain.DefaultPhrase, Shift: domain.DefaultShift}, &nopLogger)

	session := NewSession(caesar.NewCaesarService(&nopLogger), prompter, messages.NewRenderer(""), out, true, &nopLogger)

	result, err := session.Run(context.Background(), Overrides{})
	require.NoError(t, err)

	// Empty answers pick the defaults; the bad shift is asked again.
	assert.Equal(t, "Hello, world!", result.Phrase)
	assert.Equal(t, 13, result.Shift)
	assert.Equal(t, domain.DirectionDecrypt, result.Direction)
	assert.Equal(t, "Uryyb, jbeyq!", result.Output)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.True(t, strings.HasSuffix(out.String(), "    Hello, world!\n    ⇵\n    Uryyb, jbeyq!\n\n"))
}
