package report

import "errors"

var (
	ErrInvalidReportType = errors.New("invalid report type")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidDateRange  = errors.New("from must not be after to")
	ErrChannelRequired   = errors.New("channel_id is required for channel reports")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrComposeFailed     = errors.New("report composition failed")
	ErrExportFailed      = errors.New("report export failed")
)
