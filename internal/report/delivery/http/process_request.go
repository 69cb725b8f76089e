package http

import (
	"github.com/gin-gonic/gin"

	"report-srv/internal/report"
	"report-srv/pkg/util"
)

func (h *handler) processGetReportRequest(c *gin.Context) (getReportReq, error) {
	req := getReportReq{
		ReportType: c.Param("report_type"),
		ChannelID:  c.Query("channel_id"),
		Format:     c.DefaultQuery("format", report.FormatCSV),
	}

	if !report.IsValidReportType(req.ReportType) {
		return req, errInvalidReportType
	}
	if !report.IsValidFormat(req.Format) {
		return req, errInvalidFormat
	}

	from, err := util.StrToDate(c.Query("from"))
	if err != nil {
		return req, errInvalidDate
	}
	to, err := util.StrToDate(c.Query("to"))
	if err != nil {
		return req, errInvalidDate
	}
	if from.After(to) {
		return req, errInvalidDateRange
	}
	req.From, req.To = from, to

	return req, nil
}
