package usecase

import (
	"fmt"
	"sort"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/util"
)

// topN builds a ranked list from aggregated counts, descending by count.
// fetchOrder fixes the position of ties: the stable sort keeps the order keys
// were first seen in.
func topN(counts map[string]int64, fetchOrder []string, n int) []model.RankedEntity {
	entities := make([]model.RankedEntity, 0, len(fetchOrder))
	for _, key := range fetchOrder {
		entities = append(entities, model.RankedEntity{Name: key, Count: counts[key]})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Count > entities[j].Count
	})

	if n > 0 && len(entities) > n {
		entities = entities[:n]
	}
	return entities
}

func (uc *implUseCase) buildTitle(input report.ComposeInput, focus *model.Channel) string {
	period := fmt.Sprintf("%s to %s", util.DateToStr(input.From), util.DateToStr(input.To))
	if focus != nil {
		return fmt.Sprintf("%s Report: %s (%s)", report.PeriodLabel(input.ReportType), focus.Name, period)
	}
	return fmt.Sprintf("%s Report (%s)", report.PeriodLabel(input.ReportType), period)
}
