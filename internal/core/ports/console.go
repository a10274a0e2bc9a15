package ports

import (
	"CaesarCipher/internal/core/domain"
	"context"
)

// PrompterPort defines the interface for collecting a Request from a user.
// Each method blocks until it has a valid value or the input fails.
type PrompterPort interface {
	Phrase(ctx context.Context) (string, error)
	Shift(ctx context.Context) (int, error)
	Direction(ctx context.Context) (domain.Direction, error)
}

// RendererPort turns session output into printable text.
type RendererPort interface {
	// Banner returns the framed title shown before the prompts.
	Banner() string
	// Result returns the original and processed phrase block.
	Result(result domain.Result) string
}
