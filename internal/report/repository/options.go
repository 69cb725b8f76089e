package repository

import "report-srv/internal/model"

// Grouping dimensions.
const (
	DimensionGender     = "gender"
	DimensionAgeBracket = "ageBracket"
)

// RangeOptions bounds a query to a closed calendar-date interval.
type RangeOptions struct {
	Range model.DateRange
	// ChannelID restricts subscription queries to one channel (via the
	// program join). Empty means all channels.
	ChannelID string
}

// GroupedOptions describes a grouped demographic count.
type GroupedOptions struct {
	Range     model.DateRange
	Dimension string
	ChannelID string
}

// TopOptions describes a subscription ranking query.
type TopOptions struct {
	Range model.DateRange
	Limit int
	// CrossTab is an optional demographic dimension; when set, each ranked
	// entity carries per-bucket counts instead of a scalar.
	CrossTab  string
	ChannelID string
}
