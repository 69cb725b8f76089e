package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/analytics"
	"report-srv/pkg/log"
)

func newTestUseCase(repo *fakeRepo, fa *fakeAnalytics) *implUseCase {
	if fa == nil {
		fa = &fakeAnalytics{}
	}
	uc := New(repo, fa, &fakeCharts{img: []byte("png")}, &fakeRenderer{data: []byte("%PDF")}, log.NewNop(), Config{})
	impl := uc.(*implUseCase)
	impl.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return impl
}

func testComposeInput(rt string) report.ComposeInput {
	return report.ComposeInput{
		ReportType: rt,
		From:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     report.FormatCSV,
	}
}

func TestComposeValidation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, nil)

	t.Run("invalid report type", func(t *testing.T) {
		in := testComposeInput("hourly")
		_, err := uc.Compose(context.Background(), in)
		if !errors.Is(err, report.ErrInvalidReportType) {
			t.Errorf("expected ErrInvalidReportType, got %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		in := testComposeInput(report.ReportTypeWeekly)
		in.Format = "xlsx"
		_, err := uc.Compose(context.Background(), in)
		if !errors.Is(err, report.ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("from after to", func(t *testing.T) {
		in := testComposeInput(report.ReportTypeWeekly)
		in.From, in.To = in.To, in.From
		_, err := uc.Compose(context.Background(), in)
		if !errors.Is(err, report.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("channel report without channel id", func(t *testing.T) {
		in := testComposeInput(report.ReportTypeChannel)
		_, err := uc.Compose(context.Background(), in)
		if !errors.Is(err, report.ErrChannelRequired) {
			t.Errorf("expected ErrChannelRequired, got %v", err)
		}
	})
}

func TestComposeUsersCSV(t *testing.T) {
	// Repository returns rows newest first; the export must keep that order.
	bd := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		users: []model.User{
			{ID: "u-2", Email: "b@example.com", Gender: model.GenderFemale, BirthDate: &bd, CreatedAt: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
			{ID: "u-1", Email: "a@example.com", Gender: model.GenderMale, CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	uc := newTestUseCase(repo, nil)

	out, err := uc.Compose(context.Background(), testComposeInput(report.ReportTypeUsers))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ContentType != contentTypeCSV {
		t.Errorf("content type = %s, want %s", out.ContentType, contentTypeCSV)
	}
	if out.FileName != "report-users_2026-01-01_2026-01-31.csv" {
		t.Errorf("unexpected file name %s", out.FileName)
	}

	lines := strings.Split(strings.TrimSpace(string(out.Data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "ID,Email,Gender,BirthDate,CreatedAt" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "u-2,b@example.com,female,1990-06-15,2026-01-20" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "u-1,a@example.com,male,,2026-01-10" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestComposeAggregateDegradesOnAnalyticsOutage(t *testing.T) {
	repo := &fakeRepo{usersTotal: 5, subsTotal: 3}
	fa := &fakeAnalytics{
		errs: map[model.EventType]error{
			model.EventLiveClick:     fmt.Errorf("%w: 503", analytics.ErrUnavailable),
			model.EventDeferredClick: fmt.Errorf("%w: 503", analytics.ErrUnavailable),
		},
	}
	uc := newTestUseCase(repo, fa)

	m, err := uc.composeAggregate(context.Background(), testComposeInput(report.ReportTypeMonthly))
	if err != nil {
		t.Fatalf("analytics outage must degrade, not fail: %v", err)
	}
	if m.TotalUsers != 5 || m.TotalSubscriptions != 3 {
		t.Errorf("store totals lost: %+v", m)
	}
	if len(m.TopChannelsByLiveClicks) != 0 || len(m.TopChannelsByDeferredClicks) != 0 || len(m.TopProgramsByClicks) != 0 {
		t.Errorf("click sections must be empty on outage")
	}
}

func TestComposeAggregateMergesProgramClicks(t *testing.T) {
	repo := &fakeRepo{parents: map[string]string{"Morning Show": "Alpha"}}
	fa := &fakeAnalytics{
		events: map[model.EventType][]model.ClickEvent{
			model.EventLiveClick: {
				{Properties: model.EventProperties{ProgramName: "Morning Show", ChannelName: "Alpha"}},
			},
			model.EventDeferredClick: {
				{Properties: model.EventProperties{ProgramName: "Morning Show", ChannelName: "Alpha"}},
				{Properties: model.EventProperties{ProgramName: "Late Night", ChannelName: "Beta"}},
			},
		},
	}
	uc := newTestUseCase(repo, fa)

	m, err := uc.composeAggregate(context.Background(), testComposeInput(report.ReportTypeWeekly))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.TopProgramsByClicks) != 2 {
		t.Fatalf("expected 2 ranked programs, got %+v", m.TopProgramsByClicks)
	}
	if m.TopProgramsByClicks[0].Name != "Morning Show" || m.TopProgramsByClicks[0].Count != 2 {
		t.Errorf("merged count wrong: %+v", m.TopProgramsByClicks[0])
	}
	if m.TopProgramsByClicks[0].ParentName != "Alpha" {
		t.Errorf("parent channel not resolved: %+v", m.TopProgramsByClicks[0])
	}
	if m.TopChannelsByLiveClicks[0].Count != 1 {
		t.Errorf("live channel count wrong: %+v", m.TopChannelsByLiveClicks)
	}
}

func TestComposeChannelFocusOutsideTop(t *testing.T) {
	full := make([]model.RankedEntity, 0, 7)
	for i := 0; i < 7; i++ {
		full = append(full, model.RankedEntity{
			ID:    fmt.Sprintf("ch-%d", i+1),
			Name:  fmt.Sprintf("Channel %d", i+1),
			Count: int64(70 - i*10),
		})
	}
	repo := &fakeRepo{
		topChannels: full,
		channel:     &model.Channel{ID: "ch-7", Name: "Channel 7"},
	}
	uc := newTestUseCase(repo, nil)

	in := testComposeInput(report.ReportTypeChannel)
	in.ChannelID = "ch-7"

	m, err := uc.composeAggregate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.TopChannelsBySubscriptions) != 6 {
		t.Fatalf("expected top 5 plus focus entry, got %d", len(m.TopChannelsBySubscriptions))
	}
	last := m.TopChannelsBySubscriptions[5]
	if last.ID != "ch-7" || last.Rank != 7 {
		t.Errorf("appended focus entry = %+v, want ch-7 with rank 7", last)
	}
	if m.FocusChannel == nil || m.FocusChannel.Rank != 7 {
		t.Errorf("focus view = %+v, want rank 7", m.FocusChannel)
	}
}

func TestComposeChannelFocusInsideTop(t *testing.T) {
	repo := &fakeRepo{
		topChannels: []model.RankedEntity{
			{ID: "ch-1", Name: "Channel 1", Count: 50},
			{ID: "ch-2", Name: "Channel 2", Count: 40},
		},
		channel: &model.Channel{ID: "ch-2", Name: "Channel 2"},
	}
	uc := newTestUseCase(repo, nil)

	in := testComposeInput(report.ReportTypeChannel)
	in.ChannelID = "ch-2"

	m, err := uc.composeAggregate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.TopChannelsBySubscriptions) != 2 {
		t.Fatalf("no extra entry expected, got %d", len(m.TopChannelsBySubscriptions))
	}
	if m.FocusChannel == nil || m.FocusChannel.Rank != 2 {
		t.Errorf("focus view = %+v, want rank 2", m.FocusChannel)
	}
}

func TestTopNStableOrdering(t *testing.T) {
	counts := map[string]int64{"A": 3, "B": 5, "C": 3, "D": 1}
	order := []string{"A", "B", "C", "D"}

	ranked := topN(counts, order, 3)
	if len(ranked) != 3 {
		t.Fatalf("got %d entries, want 3", len(ranked))
	}
	if ranked[0].Name != "B" {
		t.Errorf("first = %s, want B", ranked[0].Name)
	}
	// A and C tie at 3; A was seen first and must stay ahead.
	if ranked[1].Name != "A" || ranked[2].Name != "C" {
		t.Errorf("tie order broken: %s, %s", ranked[1].Name, ranked[2].Name)
	}
}
