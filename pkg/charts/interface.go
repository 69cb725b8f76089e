package charts

import (
	"context"
	"time"

	pkghttp "report-srv/pkg/http"
)

// ICharts renders a declarative chart spec to image bytes via the chart
// rendering service. Implementations are safe for concurrent use.
type ICharts interface {
	Render(ctx context.Context, spec Spec) ([]byte, error)
}

// New creates a new chart rendering client.
func New(cfg Config) ICharts {
	return &chartsImpl{
		config: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   2,
			RetryWait: 500 * time.Millisecond,
		}),
	}
}
