package postgre

import (
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/util"
)

// genderExpr folds null and unrecognized values into the unknown bucket.
const genderExpr = `CASE WHEN u.gender IN ('male', 'female') THEN u.gender ELSE 'unknown' END`

// ageBracketExpr mirrors model.BracketForAge: 18 and 30 fall into age18to30,
// 45 into age30to45, 60 into age45to60.
const ageBracketExpr = `CASE
	WHEN u.birth_date IS NULL THEN 'unknown'
	WHEN DATE_PART('year', AGE(u.birth_date)) < 18 THEN 'under18'
	WHEN DATE_PART('year', AGE(u.birth_date)) <= 30 THEN 'age18to30'
	WHEN DATE_PART('year', AGE(u.birth_date)) <= 45 THEN 'age30to45'
	WHEN DATE_PART('year', AGE(u.birth_date)) <= 60 THEN 'age45to60'
	ELSE 'over60'
END`

func bucketExpr(dimension string) (string, error) {
	switch dimension {
	case repository.DimensionGender:
		return genderExpr, nil
	case repository.DimensionAgeBracket:
		return ageBracketExpr, nil
	default:
		return "", repository.ErrInvalidDimension
	}
}

// bucketOrder returns the display order of buckets for a dimension.
func bucketOrder(dimension string) []string {
	switch dimension {
	case repository.DimensionGender:
		order := make([]string, 0, len(model.Genders))
		for _, g := range model.Genders {
			order = append(order, string(g))
		}
		return order
	default:
		order := make([]string, 0, len(model.AgeBrackets))
		for _, b := range model.AgeBrackets {
			order = append(order, string(b))
		}
		return order
	}
}

// seedBuckets pre-fills every bucket with zero so reports always show the
// full demographic breakdown.
func seedBuckets(dimension string, counted map[string]int64) []model.GroupedCount {
	order := bucketOrder(dimension)
	out := make([]model.GroupedCount, 0, len(order))
	for _, key := range order {
		out = append(out, model.GroupedCount{Key: key, Count: counted[key]})
	}
	return out
}

// rangeArgs expands a calendar-date range into timestamp bounds.
func rangeArgs(r model.DateRange) (from, to interface{}) {
	return util.RangeStart(r.From), util.RangeEnd(r.To)
}

// channelFilter appends an optional channel predicate. Callers must have
// programs joined as p.
func channelFilter(query string, args []interface{}, channelID string) (string, []interface{}) {
	if channelID == "" {
		return query, args
	}
	args = append(args, channelID)
	return query + fmt.Sprintf(" AND p.channel_id = $%d", len(args)), args
}
