package renderer

import (
	"context"
	"sync"

	"report-srv/pkg/log"
)

// Config holds renderer configuration.
type Config struct {
	// ExecPath overrides the headless browser executable. Empty means the
	// default lookup.
	ExecPath string
}

// PageOptions control one page render. The page format is fixed to A4 with
// backgrounds printed.
type PageOptions struct {
	Landscape bool
}

// session is one live browser handle.
type session struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// alive reports whether the session's browser context is still usable.
func (s *session) alive() bool {
	return s != nil && s.ctx.Err() == nil
}

// engine abstracts the headless browser so the session lifecycle can be
// tested without a Chrome binary.
type engine interface {
	newSession(ctx context.Context) (*session, error)
	renderPage(ctx context.Context, sess *session, html string, opts PageOptions) ([]byte, error)
}

// rendererImpl implements IRenderer. The mutex serializes session creation
// and replacement; page renders share the session concurrently.
type rendererImpl struct {
	l      log.Logger
	config Config
	engine engine

	mu   sync.Mutex
	sess *session
}
