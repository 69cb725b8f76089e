package util

import "time"

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

// StrToDate parses a calendar date in DateFormat, interpreted as UTC.
func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, time.UTC)
}

// DateToStr formats a date as DateFormat.
func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

// RangeStart returns the inclusive lower bound of a calendar date: 00:00:00 UTC.
func RangeStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// RangeEnd returns the inclusive upper bound of a calendar date: 23:59:59 UTC.
func RangeEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, time.UTC)
}
