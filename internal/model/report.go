package model

import "time"

// DateRange is a closed calendar-date interval. From/To carry no time
// component; bounds are interpreted as [From 00:00:00Z, To 23:59:59Z].
type DateRange struct {
	From time.Time
	To   time.Time
}

// GroupedCount is one bucket of a grouped aggregate. Key is a demographic
// bucket or an entity display name.
type GroupedCount struct {
	Key   string
	Count int64
}

// SumCounts returns the total across buckets.
func SumCounts(counts []GroupedCount) int64 {
	var total int64
	for _, gc := range counts {
		total += gc.Count
	}
	return total
}

// RankedEntity is one entry of a top-N ranking. Either Count (scalar) or
// Counts (cross-tabulated by a demographic dimension) is populated.
type RankedEntity struct {
	ID         string
	Name       string
	ParentName string
	Count      int64
	Counts     map[string]int64
	// Rank is the 1-based position; only set for focus-channel entries
	// appended outside the top list.
	Rank int
}

// Total returns the scalar count, or the sum across cross-tab buckets when
// Counts is populated.
func (r RankedEntity) Total() int64 {
	if len(r.Counts) == 0 {
		return r.Count
	}
	var total int64
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// ReportModel is the normalized report assembled per request. Constructed
// fresh per request, never mutated after handoff to the exporter.
type ReportModel struct {
	Title      string
	ReportType string
	Range      DateRange
	Generated  time.Time

	TotalUsers         int64
	TotalSubscriptions int64

	UsersByGender []GroupedCount
	UsersByAge    []GroupedCount
	SubsByGender  []GroupedCount
	SubsByAge     []GroupedCount

	TopChannelsBySubscriptions  []RankedEntity
	TopChannelsByLiveClicks     []RankedEntity
	TopChannelsByDeferredClicks []RankedEntity
	TopProgramsBySubscriptions  []RankedEntity
	TopProgramsByClicks         []RankedEntity

	// FocusChannel is the single-channel view for channel reports: the
	// channel's entry with its real rank, appended when outside the top list.
	FocusChannel *RankedEntity

	// Users / Subscriptions are only populated for the row-listing reports.
	Users         []User
	Subscriptions []Subscription

	// Charts maps chart name to rendered PNG bytes. Missing entries mean the
	// chart could not be rendered and is omitted from the document.
	Charts map[string][]byte
}
