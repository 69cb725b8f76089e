package usecase

import (
	"time"

	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/analytics"
	"report-srv/pkg/charts"
	"report-srv/pkg/log"
	"report-srv/pkg/renderer"
)

const (
	defaultTopN = 5

	contentTypeCSV = "text/csv"
	contentTypePDF = "application/pdf"
)

// Config holds configuration for report composition.
type Config struct {
	TopN int
}

type implUseCase struct {
	repo      repository.AggregationRepository
	analytics analytics.IAnalytics
	charts    charts.ICharts
	renderer  renderer.IRenderer
	l         log.Logger
	config    Config
	now       func() time.Time
}

// New creates a new report UseCase implementation.
func New(
	repo repository.AggregationRepository,
	analyticsClient analytics.IAnalytics,
	chartsClient charts.ICharts,
	rendererClient renderer.IRenderer,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.TopN <= 0 {
		cfg.TopN = defaultTopN
	}

	return &implUseCase{
		repo:      repo,
		analytics: analyticsClient,
		charts:    chartsClient,
		renderer:  rendererClient,
		l:         l,
		config:    cfg,
		now:       time.Now,
	}
}
