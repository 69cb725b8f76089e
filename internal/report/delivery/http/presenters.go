package http

import (
	"time"

	"report-srv/internal/report"
)

type getReportReq struct {
	ReportType string
	From       time.Time
	To         time.Time
	ChannelID  string
	Format     string
}

func (req getReportReq) toInput() report.ComposeInput {
	return report.ComposeInput{
		ReportType: req.ReportType,
		From:       req.From,
		To:         req.To,
		ChannelID:  req.ChannelID,
		Format:     req.Format,
	}
}
