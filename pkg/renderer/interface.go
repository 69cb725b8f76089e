package renderer

import (
	"context"

	"report-srv/pkg/log"
)

// IRenderer owns the shared headless-rendering session and exposes
// per-document page rendering. Implementations are safe for concurrent use.
type IRenderer interface {
	// WithPage opens an ephemeral page, renders the HTML to PDF bytes and
	// closes the page on every exit path. The session survives page
	// failures; it is only torn down by Close.
	WithPage(ctx context.Context, html string, opts PageOptions) ([]byte, error)
	// Close tears down the underlying browser session. For process shutdown.
	Close(ctx context.Context) error
}

// New creates a new rendering resource manager. The browser process is
// started lazily on first use.
func New(l log.Logger, cfg Config) IRenderer {
	return &rendererImpl{
		l:      l,
		config: cfg,
		engine: newChromeEngine(cfg),
	}
}
