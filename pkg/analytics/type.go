package analytics

import (
	pkghttp "report-srv/pkg/http"
	"report-srv/pkg/log"
	"report-srv/pkg/redis"

	"report-srv/internal/model"
)

// Config holds the configuration for the analytics client.
type Config struct {
	BaseURL   string
	APIKey    string
	ProjectID string
	Limit     int
}

// FetchInput describes one event fetch.
type FetchInput struct {
	EventType model.EventType
	Range     model.DateRange
	// Breakdown is the property the caller will aggregate by; forwarded to
	// endpoints that support server-side grouping hints.
	Breakdown string
	Limit     int
}

// analyticsImpl implements IAnalytics.
type analyticsImpl struct {
	l          log.Logger
	config     Config
	cache      redis.IRedis
	httpClient pkghttp.IClient
	strategies []endpointStrategy
}

// wireEvent is the union of the event shapes the endpoints return.
type wireEvent struct {
	EventType  string                `json:"event_type"`
	Type       string                `json:"type"` // legacy endpoint key
	Properties model.EventProperties `json:"properties"`
	Timestamp  string                `json:"timestamp"`
}
