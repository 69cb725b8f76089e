package analytics

import (
	"fmt"
	"net/url"

	"report-srv/pkg/util"
)

// endpointStrategy is one way of asking the remote service for events: a
// request builder paired with the shared response normalizer. Strategies are
// tried in table order; the first 2xx response wins and its strategy is kept
// for continuation fetches.
type endpointStrategy struct {
	name  string
	build func(c *analyticsImpl, input FetchInput, cursor string) request
}

// request is a built, not-yet-sent endpoint request.
type request struct {
	method string
	url    string
	body   interface{}
}

func defaultStrategies() []endpointStrategy {
	return []endpointStrategy{
		{name: "events", build: buildEventsRequest},
		{name: "query", build: buildQueryRequest},
		{name: "trend", build: buildTrendRequest},
		{name: "legacy", build: buildLegacyRequest},
	}
}

// buildEventsRequest targets the primary events-list endpoint.
func buildEventsRequest(c *analyticsImpl, input FetchInput, cursor string) request {
	q := url.Values{}
	q.Set("event_type", string(input.EventType))
	q.Set("from", util.RangeStart(input.Range.From).Format(timestampFormat))
	q.Set("to", util.RangeEnd(input.Range.To).Format(timestampFormat))
	q.Set("limit", fmt.Sprintf("%d", c.limitFor(input)))
	if c.config.ProjectID != "" {
		q.Set("project_id", c.config.ProjectID)
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return request{
		method: "GET",
		url:    c.config.BaseURL + "/api/v1/events?" + q.Encode(),
	}
}

// buildQueryRequest targets the structured-query endpoint.
func buildQueryRequest(c *analyticsImpl, input FetchInput, cursor string) request {
	body := map[string]interface{}{
		"event_type": string(input.EventType),
		"from":       util.RangeStart(input.Range.From).Format(timestampFormat),
		"to":         util.RangeEnd(input.Range.To).Format(timestampFormat),
		"limit":      c.limitFor(input),
	}
	if input.Breakdown != "" {
		body["breakdown"] = input.Breakdown
	}
	if c.config.ProjectID != "" {
		body["project_id"] = c.config.ProjectID
	}
	if cursor != "" {
		body["cursor"] = cursor
	}
	return request{
		method: "POST",
		url:    c.config.BaseURL + "/api/v1/query",
		body:   body,
	}
}

// buildTrendRequest targets the trend/insights endpoint.
func buildTrendRequest(c *analyticsImpl, input FetchInput, cursor string) request {
	q := url.Values{}
	q.Set("event", string(input.EventType))
	q.Set("date_from", util.RangeStart(input.Range.From).Format(timestampFormat))
	q.Set("date_to", util.RangeEnd(input.Range.To).Format(timestampFormat))
	q.Set("limit", fmt.Sprintf("%d", c.limitFor(input)))
	if input.Breakdown != "" {
		q.Set("breakdown", input.Breakdown)
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return request{
		method: "GET",
		url:    c.config.BaseURL + "/api/v1/insights/trend?" + q.Encode(),
	}
}

// buildLegacyRequest targets the pre-versioning events endpoint.
func buildLegacyRequest(c *analyticsImpl, input FetchInput, cursor string) request {
	q := url.Values{}
	q.Set("type", string(input.EventType))
	q.Set("from", util.RangeStart(input.Range.From).Format(timestampFormat))
	q.Set("to", util.RangeEnd(input.Range.To).Format(timestampFormat))
	q.Set("limit", fmt.Sprintf("%d", c.limitFor(input)))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return request{
		method: "GET",
		url:    c.config.BaseURL + "/api/events?" + q.Encode(),
	}
}

func (c *analyticsImpl) limitFor(input FetchInput) int {
	if input.Limit > 0 {
		return input.Limit
	}
	return c.config.Limit
}
