package analytics

import "errors"

// ErrUnavailable is returned when every endpoint strategy fails in the first
// round. It wraps the last observed error; check with errors.Is.
var ErrUnavailable = errors.New("analytics: service unavailable")
