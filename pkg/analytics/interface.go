package analytics

import (
	"context"

	pkghttp "report-srv/pkg/http"
	"report-srv/pkg/log"
	"report-srv/pkg/redis"

	"report-srv/internal/model"
)

// IAnalytics fetches click-style events from the remote analytics service.
// Implementations are safe for concurrent use.
type IAnalytics interface {
	// FetchClickEvents fetches events for one event type and date range.
	// With no API key configured it returns an empty slice and no error;
	// callers must treat "no data" as valid.
	FetchClickEvents(ctx context.Context, input FetchInput) ([]model.ClickEvent, error)
}

// New creates a new analytics client. The cache is optional; pass nil to
// fetch uncached.
func New(l log.Logger, cfg Config, cache redis.IRedis) IAnalytics {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &analyticsImpl{
		l:      l,
		config: cfg,
		cache:  cache,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   0, // strategy fallback replaces per-request retries
			RetryWait: 0,
		}),
		strategies: defaultStrategies(),
	}
}
