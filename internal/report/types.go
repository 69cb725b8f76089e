package report

import (
	"time"

	"report-srv/internal/model"
)

// Report types. Period types differ only in the title label; channel types
// add the single-channel focus view, channel-full additionally cross-tabs
// rankings by demographics.
const (
	ReportTypeWeekly        = "weekly"
	ReportTypeMonthly       = "monthly"
	ReportTypeQuarterly     = "quarterly"
	ReportTypeYearly        = "yearly"
	ReportTypeChannel       = "channel"
	ReportTypeChannelFull   = "channel-full"
	ReportTypeUsers         = "users"
	ReportTypeSubscriptions = "subscriptions"
)

// Output formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ComposeInput describes one report request.
type ComposeInput struct {
	ReportType string
	From       time.Time
	To         time.Time
	ChannelID  string
	Format     string
}

// Range returns the request's date range.
func (in ComposeInput) Range() model.DateRange {
	return model.DateRange{From: in.From, To: in.To}
}

// ComposeOutput is the finished document.
type ComposeOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// IsValidReportType checks whether rt is a known report type.
func IsValidReportType(rt string) bool {
	switch rt {
	case ReportTypeWeekly, ReportTypeMonthly, ReportTypeQuarterly, ReportTypeYearly,
		ReportTypeChannel, ReportTypeChannelFull, ReportTypeUsers, ReportTypeSubscriptions:
		return true
	}
	return false
}

// IsValidFormat checks whether f is a known output format.
func IsValidFormat(f string) bool {
	return f == FormatCSV || f == FormatPDF
}

// PeriodLabel returns the title label for a report type.
func PeriodLabel(rt string) string {
	switch rt {
	case ReportTypeWeekly:
		return "Weekly"
	case ReportTypeMonthly:
		return "Monthly"
	case ReportTypeQuarterly:
		return "Quarterly"
	case ReportTypeYearly:
		return "Yearly"
	case ReportTypeChannel:
		return "Channel"
	case ReportTypeChannelFull:
		return "Channel (full)"
	case ReportTypeUsers:
		return "Users"
	case ReportTypeSubscriptions:
		return "Subscriptions"
	default:
		return rt
	}
}
