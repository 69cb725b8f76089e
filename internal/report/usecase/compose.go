package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/report"
)

// Compose validates the request, assembles the report model and exports it in
// the requested format.
func (uc *implUseCase) Compose(ctx context.Context, input report.ComposeInput) (report.ComposeOutput, error) {
	if !report.IsValidReportType(input.ReportType) {
		return report.ComposeOutput{}, report.ErrInvalidReportType
	}
	if input.Format == "" {
		input.Format = report.FormatCSV
	}
	if !report.IsValidFormat(input.Format) {
		return report.ComposeOutput{}, report.ErrInvalidFormat
	}
	if input.From.After(input.To) {
		return report.ComposeOutput{}, report.ErrInvalidDateRange
	}
	if isChannelReport(input.ReportType) && input.ChannelID == "" {
		return report.ComposeOutput{}, report.ErrChannelRequired
	}

	var (
		m   *model.ReportModel
		err error
	)
	switch input.ReportType {
	case report.ReportTypeUsers:
		m, err = uc.composeUsers(ctx, input)
	case report.ReportTypeSubscriptions:
		m, err = uc.composeSubscriptions(ctx, input)
	default:
		m, err = uc.composeAggregate(ctx, input)
	}
	if err != nil {
		return report.ComposeOutput{}, err
	}

	return uc.export(ctx, input, m)
}

func isChannelReport(rt string) bool {
	return rt == report.ReportTypeChannel || rt == report.ReportTypeChannelFull
}
