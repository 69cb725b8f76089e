package http

import (
	"errors"

	"report-srv/internal/report"
	pkgErrors "report-srv/pkg/errors"
)

var (
	errInvalidReportType = pkgErrors.NewHTTPError(400, "Invalid report type")
	errInvalidFormat     = pkgErrors.NewHTTPError(400, "Invalid output format")
	errInvalidDate       = pkgErrors.NewHTTPError(400, "Invalid date, expected YYYY-MM-DD")
	errInvalidDateRange  = pkgErrors.NewHTTPError(400, "from must not be after to")
	errChannelRequired   = pkgErrors.NewHTTPError(400, "channel_id is required for channel reports")
	errChannelNotFound   = pkgErrors.NewHTTPError(404, "Channel not found")
	errComposeFailed     = pkgErrors.NewHTTPError(500, "Report composition failed")
	errExportFailed      = pkgErrors.NewHTTPError(500, "Report export failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidReportType):
		return errInvalidReportType
	case errors.Is(err, report.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, report.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, report.ErrChannelRequired):
		return errChannelRequired
	case errors.Is(err, report.ErrChannelNotFound):
		return errChannelNotFound
	case errors.Is(err, report.ErrExportFailed):
		return errExportFailed
	default:
		return errComposeFailed
	}
}
