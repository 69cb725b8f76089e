package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"report-srv/internal/model"
	"report-srv/pkg/util"
)

// FetchClickEvents fetches events for one event type and date range. The
// endpoint strategies are tried in order; the first successful response wins
// and its strategy is reused for continuation fetches (cursor pagination,
// capped at maxPageFetches). A failed continuation stops silently and keeps
// the events collected so far.
func (c *analyticsImpl) FetchClickEvents(ctx context.Context, input FetchInput) ([]model.ClickEvent, error) {
	if c.config.APIKey == "" {
		// Graceful degradation: unconfigured analytics means no data, not an
		// error.
		return []model.ClickEvent{}, nil
	}

	if cached, ok := c.fromCache(ctx, input); ok {
		return cached, nil
	}

	events, strategy, cursor, err := c.fetchFirstPage(ctx, input)
	if err != nil {
		return nil, err
	}

	for i := 0; cursor != "" && i < maxPageFetches; i++ {
		page, next, pageErr := c.fetchPage(ctx, strategy, input, cursor)
		if pageErr != nil {
			c.l.Warnf(ctx, "analytics.FetchClickEvents: continuation fetch failed, truncating at %d events: %v", len(events), pageErr)
			break
		}
		events = append(events, page...)
		cursor = next
	}

	c.toCache(ctx, input, events)
	return events, nil
}

// fetchFirstPage walks the strategy table until one endpoint answers.
func (c *analyticsImpl) fetchFirstPage(ctx context.Context, input FetchInput) ([]model.ClickEvent, *endpointStrategy, string, error) {
	var lastErr error
	for i := range c.strategies {
		strategy := &c.strategies[i]
		events, cursor, err := c.fetchPage(ctx, strategy, input, "")
		if err != nil {
			c.l.Debugf(ctx, "analytics.fetchFirstPage: strategy %q failed: %v", strategy.name, err)
			lastErr = err
			continue
		}
		return events, strategy, cursor, nil
	}
	return nil, nil, "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// fetchPage executes one request of the given strategy and normalizes the
// response.
func (c *analyticsImpl) fetchPage(ctx context.Context, strategy *endpointStrategy, input FetchInput, cursor string) ([]model.ClickEvent, string, error) {
	req := strategy.build(c, input, cursor)
	headers := map[string]string{
		"Authorization": "Bearer " + c.config.APIKey,
	}

	var body []byte
	var status int
	var err error
	if req.method == "POST" {
		body, status, err = c.httpClient.Post(ctx, req.url, req.body, headers)
	} else {
		body, status, err = c.httpClient.Get(ctx, req.url, headers)
	}
	if err != nil {
		return nil, "", err
	}
	if status < 200 || status > 299 {
		return nil, "", fmt.Errorf("endpoint %s returned status %d", strategy.name, status)
	}

	return parseEventPage(body, input.EventType)
}

// parseEventPage extracts the event array (probing the known result keys) and
// the continuation cursor from a response body.
func parseEventPage(body []byte, fallbackType model.EventType) ([]model.ClickEvent, string, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, "", fmt.Errorf("failed to decode response: %w", err)
	}

	var raw []wireEvent
	found := false
	for _, key := range resultKeys {
		if msg, ok := envelope[key]; ok {
			if err := json.Unmarshal(msg, &raw); err != nil {
				return nil, "", fmt.Errorf("unexpected shape under %q: %w", key, err)
			}
			found = true
			break
		}
	}
	if !found {
		return nil, "", fmt.Errorf("no result array in response")
	}

	var cursor string
	for _, key := range cursorKeys {
		if msg, ok := envelope[key]; ok {
			_ = json.Unmarshal(msg, &cursor)
			if cursor != "" {
				break
			}
		}
	}

	events := make([]model.ClickEvent, 0, len(raw))
	for _, we := range raw {
		events = append(events, we.toModel(fallbackType))
	}
	return events, cursor, nil
}

func (we wireEvent) toModel(fallbackType model.EventType) model.ClickEvent {
	typ := we.EventType
	if typ == "" {
		typ = we.Type
	}
	if typ == "" {
		typ = string(fallbackType)
	}
	ts, err := time.Parse(time.RFC3339, we.Timestamp)
	if err != nil {
		ts = time.Time{}
	}
	return model.ClickEvent{
		Type:       model.EventType(typ),
		Properties: we.Properties,
		Timestamp:  ts,
	}
}

// ----------- Cache -----------

func (c *analyticsImpl) cacheKey(input FetchInput) string {
	return fmt.Sprintf("analytics:%s:%s:%s:%s",
		input.EventType,
		util.DateToStr(input.Range.From),
		util.DateToStr(input.Range.To),
		input.Breakdown,
	)
}

func (c *analyticsImpl) fromCache(ctx context.Context, input FetchInput) ([]model.ClickEvent, bool) {
	if c.cache == nil {
		return nil, false
	}
	val, err := c.cache.Get(ctx, c.cacheKey(input))
	if err != nil {
		return nil, false
	}
	var events []model.ClickEvent
	if err := json.Unmarshal([]byte(val), &events); err != nil {
		return nil, false
	}
	return events, true
}

func (c *analyticsImpl) toCache(ctx context.Context, input FetchInput, events []model.ClickEvent) {
	if c.cache == nil {
		return
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, c.cacheKey(input), string(payload), cacheTTL); err != nil {
		c.l.Debugf(ctx, "analytics.toCache: cache write failed: %v", err)
	}
}
