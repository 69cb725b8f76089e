package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/pkg/charts"
)

// Chart names referenced by the PDF template.
const (
	chartUsersGender      = "users_gender"
	chartUsersAge         = "users_age"
	chartSubsGender       = "subs_gender"
	chartSubsAge          = "subs_age"
	chartChannelsSubs     = "channels_subs"
	chartProgramsSubs     = "programs_subs"
	chartChannelsLive     = "channels_live"
	chartChannelsDeferred = "channels_deferred"
	chartProgramsClicks   = "programs_clicks"
)

// buildCharts renders the report's charts into m.Charts. A chart that fails
// to render is logged and left absent; the report itself never fails here.
func (uc *implUseCase) buildCharts(ctx context.Context, m *model.ReportModel) {
	specs := map[string]charts.Spec{}

	if len(m.UsersByGender) > 0 {
		labels, values := splitCounts(m.UsersByGender)
		specs[chartUsersGender] = charts.BuildPieSpec("New users by gender", labels, values)
	}
	if len(m.UsersByAge) > 0 {
		labels, values := splitCounts(m.UsersByAge)
		specs[chartUsersAge] = charts.BuildBarSpec("New users by age", "Age bracket", "Users", labels,
			[]charts.Dataset{{Label: "Users", Values: values}})
	}
	if len(m.SubsByGender) > 0 {
		labels, values := splitCounts(m.SubsByGender)
		specs[chartSubsGender] = charts.BuildPieSpec("New subscriptions by gender", labels, values)
	}
	if len(m.SubsByAge) > 0 {
		labels, values := splitCounts(m.SubsByAge)
		specs[chartSubsAge] = charts.BuildBarSpec("New subscriptions by age", "Age bracket", "Subscriptions", labels,
			[]charts.Dataset{{Label: "Subscriptions", Values: values}})
	}

	rankings := []struct {
		name, title, yLabel string
		entities            []model.RankedEntity
	}{
		{chartChannelsSubs, "Top channels by subscriptions", "Subscriptions", m.TopChannelsBySubscriptions},
		{chartProgramsSubs, "Top programs by subscriptions", "Subscriptions", m.TopProgramsBySubscriptions},
		{chartChannelsLive, "Top channels by live clicks", "Clicks", m.TopChannelsByLiveClicks},
		{chartChannelsDeferred, "Top channels by deferred clicks", "Clicks", m.TopChannelsByDeferredClicks},
		{chartProgramsClicks, "Top programs by clicks", "Clicks", m.TopProgramsByClicks},
	}
	for _, rk := range rankings {
		if len(rk.entities) == 0 {
			continue
		}
		labels, values := splitRanking(rk.entities)
		specs[rk.name] = charts.BuildBarSpec(rk.title, "", rk.yLabel, labels,
			[]charts.Dataset{{Label: rk.yLabel, Values: values}})
	}

	m.Charts = make(map[string][]byte, len(specs))
	for name, spec := range specs {
		img, err := uc.charts.Render(ctx, spec)
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.buildCharts: Failed to render chart %s, omitting it: %v", name, err)
			continue
		}
		m.Charts[name] = img
	}
}

func splitCounts(counts []model.GroupedCount) ([]string, []int64) {
	labels := make([]string, 0, len(counts))
	values := make([]int64, 0, len(counts))
	for _, gc := range counts {
		labels = append(labels, gc.Key)
		values = append(values, gc.Count)
	}
	return labels, values
}

func splitRanking(entities []model.RankedEntity) ([]string, []int64) {
	labels := make([]string, 0, len(entities))
	values := make([]int64, 0, len(entities))
	for _, e := range entities {
		labels = append(labels, e.Name)
		values = append(values, e.Total())
	}
	return labels, values
}
