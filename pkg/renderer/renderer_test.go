package renderer

import (
	"context"
	"errors"
	"testing"

	"report-srv/pkg/log"
)

type fakeEngine struct {
	sessions  int
	renders   int
	renderErr error
	data      []byte
}

func (f *fakeEngine) newSession(ctx context.Context) (*session, error) {
	f.sessions++
	sctx, cancel := context.WithCancel(context.Background())
	return &session{ctx: sctx, cancel: cancel}, nil
}

func (f *fakeEngine) renderPage(ctx context.Context, sess *session, html string, opts PageOptions) ([]byte, error) {
	f.renders++
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	return f.data, nil
}

func newTestRenderer(eng engine) *rendererImpl {
	return &rendererImpl{l: log.NewNop(), engine: eng}
}

func TestWithPageReusesSession(t *testing.T) {
	eng := &fakeEngine{data: []byte("%PDF")}
	r := newTestRenderer(eng)

	for i := 0; i < 3; i++ {
		pdf, err := r.WithPage(context.Background(), "<html></html>", PageOptions{})
		if err != nil {
			t.Fatalf("render %d failed: %v", i, err)
		}
		if string(pdf) != "%PDF" {
			t.Errorf("unexpected render output %q", pdf)
		}
	}

	if eng.sessions != 1 {
		t.Errorf("expected one shared session, got %d", eng.sessions)
	}
	if eng.renders != 3 {
		t.Errorf("expected 3 renders, got %d", eng.renders)
	}
}

func TestWithPageFailureKeepsSessionReusable(t *testing.T) {
	eng := &fakeEngine{data: []byte("%PDF")}
	r := newTestRenderer(eng)

	eng.renderErr = errors.New("page crashed")
	_, err := r.WithPage(context.Background(), "<html></html>", PageOptions{})
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}

	eng.renderErr = nil
	if _, err := r.WithPage(context.Background(), "<html></html>", PageOptions{}); err != nil {
		t.Fatalf("render after failure must reuse the session: %v", err)
	}
	if eng.sessions != 1 {
		t.Errorf("failed page render must not tear down the session, got %d sessions", eng.sessions)
	}
}

func TestDeadSessionIsReplaced(t *testing.T) {
	eng := &fakeEngine{data: []byte("%PDF")}
	r := newTestRenderer(eng)

	if _, err := r.WithPage(context.Background(), "<html></html>", PageOptions{}); err != nil {
		t.Fatalf("first render failed: %v", err)
	}

	// Simulate a browser crash.
	r.sess.cancel()

	if _, err := r.WithPage(context.Background(), "<html></html>", PageOptions{}); err != nil {
		t.Fatalf("render after crash failed: %v", err)
	}
	if eng.sessions != 2 {
		t.Errorf("dead session must be replaced, got %d sessions", eng.sessions)
	}
}

func TestClose(t *testing.T) {
	eng := &fakeEngine{data: []byte("%PDF")}
	r := newTestRenderer(eng)

	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("Close with no session: %v", err)
	}

	if _, err := r.WithPage(context.Background(), "<html></html>", PageOptions{}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if r.sess != nil {
		t.Error("session must be nil after Close")
	}
}
