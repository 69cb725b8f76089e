package renderer

import "errors"

// ErrRenderFailed is returned when a page fails to load or render within the
// content timeout. It wraps the underlying cause; check with errors.Is.
// PDF generation is single-attempt: callers do not retry.
var ErrRenderFailed = errors.New("renderer: render failed")
