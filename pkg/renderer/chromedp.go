package renderer

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromeEngine implements engine on chromedp.
type chromeEngine struct {
	config Config
}

func newChromeEngine(cfg Config) engine {
	return &chromeEngine{config: cfg}
}

// newSession starts a headless browser. The returned cancel func stops both
// the browser and its allocator.
func (e *chromeEngine) newSession(ctx context.Context) (*session, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if e.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.config.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser process now so a broken executable surfaces here,
	// not on the first page.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start headless browser: %w", err)
	}

	cancel := func() {
		browserCancel()
		allocCancel()
	}
	return &session{ctx: browserCtx, cancel: cancel}, nil
}

// renderPage opens a tab, sets the document content, waits for network idle
// and prints to A4 PDF. The tab is closed on every exit path; close failures
// are swallowed by the deferred cancel.
func (e *chromeEngine) renderPage(ctx context.Context, sess *session, html string, opts PageOptions) ([]byte, error) {
	pageCtx, pageCancel := chromedp.NewContext(sess.ctx)
	defer pageCancel()

	timeoutCtx, timeoutCancel := context.WithTimeout(pageCtx, contentTimeout)
	defer timeoutCancel()

	var pdf []byte
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
