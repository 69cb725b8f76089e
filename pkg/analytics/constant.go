package analytics

import "time"

const (
	// DefaultLimit bounds the page size requested from the remote service.
	DefaultLimit = 5000
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
	// maxPageFetches caps continuation fetches per call, independent of any
	// caller timeout.
	maxPageFetches = 10
	// cacheTTL is how long fetched pages are reused. Remote data may lag
	// anyway; a short TTL only deduplicates back-to-back report runs.
	cacheTTL = 5 * time.Minute

	// UnknownKey is the bucket for events missing the aggregated property.
	UnknownKey = "unknown"

	// timestampFormat is the inclusive UTC bound format the endpoints accept.
	timestampFormat = time.RFC3339
)

// resultKeys are probed in order to find the event array in a response body.
var resultKeys = []string{"results", "events", "data", "items"}

// cursorKeys are probed in order to find the continuation cursor.
var cursorKeys = []string{"next_cursor", "cursor"}
