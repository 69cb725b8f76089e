package http

import (
	"github.com/gin-gonic/gin"

	"report-srv/pkg/response"
)

// @Summary Generate and download a report
// @Description Compose a report for a date range and stream it as CSV or PDF
// @Tags Report
// @Produce text/csv,application/pdf
// @Param report_type path string true "Report type" Enums(weekly, monthly, quarterly, yearly, channel, channel-full, users, subscriptions)
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param channel_id query string false "Channel ID, required for channel report types"
// @Param format query string false "Output format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/{report_type} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: processGetReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Compose(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase Compose failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, o.ContentType, o.FileName, o.Data)
}
