package messages

import (
	"CaesarCipher/internal/core/domain"
	"CaesarCipher/internal/core/ports"
)

// DefaultTitle is the banner text shown at startup.
const DefaultTitle = "✨  CAESAR CIPHER ✨"

// Renderer implements ports.RendererPort with the Builder.
type Renderer struct {
	title string
}

var _ ports.RendererPort = (*Renderer)(nil) // Ensure compliance

// NewRenderer creates a renderer. An empty title falls back to DefaultTitle.
func NewRenderer(title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{title: title}
}

// Banner returns the title framed in a box, padded by blank lines.
func (r *Renderer) Banner() string {
	return NewBuilder().WithBanner(r.title).String()
}

// Result returns the original phrase, an arrow and the transformed phrase.
func (r *Renderer) Result(result domain.Result) string {
	return NewBuilder().WithResult(result.Phrase, result.Output).String()
}
