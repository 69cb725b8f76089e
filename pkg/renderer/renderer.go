package renderer

import (
	"context"
	"fmt"
)

// WithPage renders HTML to PDF bytes through an ephemeral page of the shared
// session.
func (r *rendererImpl) WithPage(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	sess, err := r.acquireSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	pdf, err := r.engine.renderPage(ctx, sess, html, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return pdf, nil
}

// acquireSession returns the live session, creating or replacing it under
// the mutex. A session whose browser died is discarded, not reused.
func (r *rendererImpl) acquireSession(ctx context.Context) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sess.alive() {
		return r.sess, nil
	}

	if r.sess != nil {
		r.l.Warnf(ctx, "renderer.acquireSession: discarding disconnected session")
		r.sess.cancel()
		r.sess = nil
	}

	sess, err := r.engine.newSession(ctx)
	if err != nil {
		return nil, err
	}
	r.sess = sess
	r.l.Infof(ctx, "renderer.acquireSession: headless session started")
	return sess, nil
}

// Close tears down the session. Safe to call with no session started.
func (r *rendererImpl) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sess != nil {
		r.sess.cancel()
		r.sess = nil
		r.l.Infof(ctx, "renderer.Close: headless session stopped")
	}
	return nil
}
