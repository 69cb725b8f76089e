package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/renderer"
	"report-srv/pkg/util"
)

// Column is one CSV output column; Key addresses the row map, Label is the
// header cell.
type Column struct {
	Key   string
	Label string
}

func (uc *implUseCase) export(ctx context.Context, input report.ComposeInput, m *model.ReportModel) (report.ComposeOutput, error) {
	fileName := fmt.Sprintf("report-%s_%s_%s.%s",
		input.ReportType, util.DateToStr(input.From), util.DateToStr(input.To), input.Format)

	if input.Format == report.FormatPDF {
		uc.buildCharts(ctx, m)
		data, err := uc.exportPDF(ctx, m)
		if err != nil {
			return report.ComposeOutput{}, report.ErrExportFailed
		}
		return report.ComposeOutput{FileName: fileName, ContentType: contentTypePDF, Data: data}, nil
	}

	data, err := uc.exportCSVReport(m)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.export: Failed to write CSV: %v", err)
		return report.ComposeOutput{}, report.ErrExportFailed
	}
	return report.ComposeOutput{FileName: fileName, ContentType: contentTypeCSV, Data: data}, nil
}

// exportCSV writes rows under caller-ordered columns. The header is always
// written, even with no rows; quoting is left entirely to encoding/csv.
func exportCSV(rows []map[string]interface{}, cols []Column) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(cols))
	for _, col := range cols {
		header = append(header, col.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			record[i] = ""
			if v, ok := row[col.Key]; ok && v != nil {
				record[i] = fmt.Sprint(v)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func (uc *implUseCase) exportCSVReport(m *model.ReportModel) ([]byte, error) {
	switch m.ReportType {
	case report.ReportTypeUsers:
		return exportCSV(userRows(m.Users), []Column{
			{Key: "id", Label: "ID"},
			{Key: "email", Label: "Email"},
			{Key: "gender", Label: "Gender"},
			{Key: "birth_date", Label: "BirthDate"},
			{Key: "created_at", Label: "CreatedAt"},
		})
	case report.ReportTypeSubscriptions:
		return exportCSV(subscriptionRows(m.Subscriptions), []Column{
			{Key: "id", Label: "ID"},
			{Key: "user_id", Label: "UserID"},
			{Key: "program", Label: "Program"},
			{Key: "channel", Label: "Channel"},
			{Key: "active", Label: "Active"},
			{Key: "created_at", Label: "CreatedAt"},
		})
	default:
		return exportCSV(aggregateRows(m), []Column{
			{Key: "section", Label: "Section"},
			{Key: "item", Label: "Item"},
			{Key: "count", Label: "Count"},
		})
	}
}

func userRows(users []model.User) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		birthDate := ""
		if u.BirthDate != nil {
			birthDate = util.DateToStr(*u.BirthDate)
		}
		rows = append(rows, map[string]interface{}{
			"id":         u.ID,
			"email":      u.Email,
			"gender":     string(u.Gender),
			"birth_date": birthDate,
			"created_at": util.DateToStr(u.CreatedAt),
		})
	}
	return rows
}

func subscriptionRows(subs []model.Subscription) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, map[string]interface{}{
			"id":         s.ID,
			"user_id":    s.UserID,
			"program":    s.ProgramName,
			"channel":    s.ChannelName,
			"active":     s.Active,
			"created_at": util.DateToStr(s.CreatedAt),
		})
	}
	return rows
}

// aggregateRows flattens the aggregate model into Section/Item/Count rows,
// sections in document order.
func aggregateRows(m *model.ReportModel) []map[string]interface{} {
	rows := []map[string]interface{}{
		{"section": "Totals", "item": "New users", "count": m.TotalUsers},
		{"section": "Totals", "item": "New subscriptions", "count": m.TotalSubscriptions},
	}

	groups := []struct {
		section string
		counts  []model.GroupedCount
	}{
		{"Users by gender", m.UsersByGender},
		{"Users by age", m.UsersByAge},
		{"Subscriptions by gender", m.SubsByGender},
		{"Subscriptions by age", m.SubsByAge},
	}
	for _, g := range groups {
		for _, gc := range g.counts {
			rows = append(rows, map[string]interface{}{"section": g.section, "item": gc.Key, "count": gc.Count})
		}
	}

	rankings := []struct {
		section  string
		entities []model.RankedEntity
	}{
		{"Top channels by subscriptions", m.TopChannelsBySubscriptions},
		{"Top programs by subscriptions", m.TopProgramsBySubscriptions},
		{"Top channels by live clicks", m.TopChannelsByLiveClicks},
		{"Top channels by deferred clicks", m.TopChannelsByDeferredClicks},
		{"Top programs by clicks", m.TopProgramsByClicks},
	}
	for _, rk := range rankings {
		for _, e := range rk.entities {
			rows = append(rows, rankedRows(rk.section, e)...)
		}
	}

	if m.FocusChannel != nil {
		rows = append(rows, rankedRows("Focus channel", *m.FocusChannel)...)
	}

	return rows
}

func rankedRows(section string, e model.RankedEntity) []map[string]interface{} {
	item := e.Name
	if e.Rank > 0 {
		item = fmt.Sprintf("%s (rank %d)", e.Name, e.Rank)
	}
	rows := []map[string]interface{}{
		{"section": section, "item": item, "count": e.Total()},
	}

	// Cross-tabbed entities expand into one row per demographic bucket.
	buckets := make([]string, 0, len(e.Counts))
	for bucket := range e.Counts {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)
	for _, bucket := range buckets {
		rows = append(rows, map[string]interface{}{
			"section": section,
			"item":    fmt.Sprintf("%s [%s]", e.Name, bucket),
			"count":   e.Counts[bucket],
		})
	}

	return rows
}

func (uc *implUseCase) exportPDF(ctx context.Context, m *model.ReportModel) ([]byte, error) {
	html, err := renderReportHTML(m)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.exportPDF: Failed to build HTML body: %v", err)
		return nil, err
	}

	data, err := uc.renderer.WithPage(ctx, html, renderer.PageOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.exportPDF: Failed to render PDF: %v", err)
		return nil, err
	}

	return data, nil
}
