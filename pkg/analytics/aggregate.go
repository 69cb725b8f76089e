package analytics

import "report-srv/internal/model"

// AggregateByProperty counts events by the value of the given property.
// Events missing the property are counted under UnknownKey; this is the one
// rule used at every call site, so breakdown totals always match the number
// of events fetched.
func AggregateByProperty(events []model.ClickEvent, property string) map[string]int64 {
	counts := make(map[string]int64)
	for _, ev := range events {
		key, ok := ev.Properties.Get(property)
		if !ok {
			key = UnknownKey
		}
		counts[key]++
	}
	return counts
}

// KeysInOrder returns the property values in first-seen event order. Rankings
// tie-break on this order, so it must be deterministic for a given fetch.
func KeysInOrder(events []model.ClickEvent, property string) []string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	for _, ev := range events {
		key, ok := ev.Properties.Get(property)
		if !ok {
			key = UnknownKey
		}
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}
	return order
}
