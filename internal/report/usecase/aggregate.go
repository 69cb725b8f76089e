package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/analytics"
)

// composeAggregate builds the model for the period and channel report types.
// Store failures abort the report; analytics outages degrade the click
// sections to empty.
func (uc *implUseCase) composeAggregate(ctx context.Context, input report.ComposeInput) (*model.ReportModel, error) {
	rng := input.Range()

	var focus *model.Channel
	if isChannelReport(input.ReportType) {
		channel, err := uc.repo.GetChannelByID(ctx, input.ChannelID)
		if err != nil {
			if errors.Is(err, repository.ErrChannelNotFound) {
				return nil, report.ErrChannelNotFound
			}
			uc.l.Errorf(ctx, "report.usecase.composeAggregate: Failed to load channel %s: %v", input.ChannelID, err)
			return nil, report.ErrComposeFailed
		}
		focus = channel
	}

	// channel-full cross-tabs the subscription rankings by gender.
	crossTab := ""
	if input.ReportType == report.ReportTypeChannelFull {
		crossTab = repository.DimensionGender
	}

	// The full channel ranking is needed to place the focus channel.
	channelLimit := uc.config.TopN
	if focus != nil {
		channelLimit = 0
	}

	var (
		totalUsers, totalSubs      int64
		usersByGender, usersByAge  []model.GroupedCount
		subsByGender, subsByAge    []model.GroupedCount
		topChannels, topPrograms   []model.RankedEntity
		liveEvents, deferredEvents []model.ClickEvent
		liveErr, deferredErr       error
	)

	subsRange := repository.RangeOptions{Range: rng, ChannelID: input.ChannelID}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := uc.repo.CountNewUsers(gctx, repository.RangeOptions{Range: rng})
		if err != nil {
			return err
		}
		totalUsers = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.repo.CountNewSubscriptions(gctx, subsRange)
		if err != nil {
			return err
		}
		totalSubs = count
		return nil
	})

	g.Go(func() error {
		counts, err := uc.repo.CountUsersGroupedBy(gctx, repository.GroupedOptions{Range: rng, Dimension: repository.DimensionGender})
		if err != nil {
			return err
		}
		usersByGender = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.repo.CountUsersGroupedBy(gctx, repository.GroupedOptions{Range: rng, Dimension: repository.DimensionAgeBracket})
		if err != nil {
			return err
		}
		usersByAge = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.repo.CountSubscriptionsGroupedBy(gctx, repository.GroupedOptions{Range: rng, Dimension: repository.DimensionGender, ChannelID: input.ChannelID})
		if err != nil {
			return err
		}
		subsByGender = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.repo.CountSubscriptionsGroupedBy(gctx, repository.GroupedOptions{Range: rng, Dimension: repository.DimensionAgeBracket, ChannelID: input.ChannelID})
		if err != nil {
			return err
		}
		subsByAge = counts
		return nil
	})

	g.Go(func() error {
		entities, err := uc.repo.TopChannelsBySubscriptions(gctx, repository.TopOptions{Range: rng, Limit: channelLimit, CrossTab: crossTab})
		if err != nil {
			return err
		}
		topChannels = entities
		return nil
	})

	g.Go(func() error {
		entities, err := uc.repo.TopProgramsBySubscriptions(gctx, repository.TopOptions{Range: rng, Limit: uc.config.TopN, CrossTab: crossTab, ChannelID: input.ChannelID})
		if err != nil {
			return err
		}
		topPrograms = entities
		return nil
	})

	// Analytics failures never cancel the group; degradation is decided
	// after the store tasks settle.
	g.Go(func() error {
		liveEvents, liveErr = uc.analytics.FetchClickEvents(gctx, analytics.FetchInput{
			EventType: model.EventLiveClick,
			Range:     rng,
			Breakdown: model.PropChannelName,
		})
		return nil
	})

	g.Go(func() error {
		deferredEvents, deferredErr = uc.analytics.FetchClickEvents(gctx, analytics.FetchInput{
			EventType: model.EventDeferredClick,
			Range:     rng,
			Breakdown: model.PropChannelName,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "report.usecase.composeAggregate: Store aggregation failed: %v", err)
		return nil, report.ErrComposeFailed
	}

	if liveEvents, liveErr = uc.degradeClicks(ctx, model.EventLiveClick, liveEvents, liveErr); liveErr != nil {
		return nil, report.ErrComposeFailed
	}
	if deferredEvents, deferredErr = uc.degradeClicks(ctx, model.EventDeferredClick, deferredEvents, deferredErr); deferredErr != nil {
		return nil, report.ErrComposeFailed
	}

	m := &model.ReportModel{
		Title:              uc.buildTitle(input, focus),
		ReportType:         input.ReportType,
		Range:              rng,
		Generated:          uc.now(),
		TotalUsers:         totalUsers,
		TotalSubscriptions: totalSubs,
		UsersByGender:      usersByGender,
		UsersByAge:         usersByAge,
		SubsByGender:       subsByGender,
		SubsByAge:          subsByAge,
	}

	m.TopChannelsByLiveClicks = uc.rankByProperty(liveEvents, model.PropChannelName)
	m.TopChannelsByDeferredClicks = uc.rankByProperty(deferredEvents, model.PropChannelName)

	merged := append(append([]model.ClickEvent{}, liveEvents...), deferredEvents...)
	m.TopProgramsByClicks = uc.rankByProperty(merged, model.PropProgramName)

	if err := uc.fillProgramParents(ctx, m.TopProgramsByClicks); err != nil {
		return nil, report.ErrComposeFailed
	}

	m.TopProgramsBySubscriptions = topPrograms
	if focus != nil {
		m.TopChannelsBySubscriptions, m.FocusChannel = uc.focusRanking(topChannels, focus)
	} else {
		m.TopChannelsBySubscriptions = topChannels
	}

	return m, nil
}

// degradeClicks applies the click-degradation rule: an unavailable analytics
// service yields an empty section, anything else fails the report.
func (uc *implUseCase) degradeClicks(ctx context.Context, et model.EventType, events []model.ClickEvent, err error) ([]model.ClickEvent, error) {
	if err == nil {
		return events, nil
	}
	if errors.Is(err, analytics.ErrUnavailable) {
		uc.l.Warnf(ctx, "report.usecase.composeAggregate: Analytics unavailable for %s, click sections degrade to empty: %v", et, err)
		return []model.ClickEvent{}, nil
	}
	uc.l.Errorf(ctx, "report.usecase.composeAggregate: Analytics fetch failed for %s: %v", et, err)
	return nil, err
}

// rankByProperty turns events into a descending ranked list keyed by the
// property's display value. Ties keep first-seen fetch order.
func (uc *implUseCase) rankByProperty(events []model.ClickEvent, property string) []model.RankedEntity {
	counts := analytics.AggregateByProperty(events, property)
	order := analytics.KeysInOrder(events, property)
	return topN(counts, order, uc.config.TopN)
}

// fillProgramParents resolves program names to their parent channel names in
// one batched lookup. Unmatched names keep an empty ParentName.
func (uc *implUseCase) fillProgramParents(ctx context.Context, programs []model.RankedEntity) error {
	if len(programs) == 0 {
		return nil
	}

	names := make([]string, 0, len(programs))
	for _, p := range programs {
		names = append(names, p.Name)
	}

	parents, err := uc.repo.ChannelNamesByProgramNames(ctx, names)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.fillProgramParents: Failed to resolve parent channels: %v", err)
		return err
	}

	for i := range programs {
		programs[i].ParentName = parents[programs[i].Name]
	}
	return nil
}

// focusRanking truncates the full channel ranking to the top list and builds
// the focus view. A focus channel outside the top list is appended as an
// extra entry carrying its real rank.
func (uc *implUseCase) focusRanking(full []model.RankedEntity, channel *model.Channel) ([]model.RankedEntity, *model.RankedEntity) {
	var focus *model.RankedEntity
	for i := range full {
		if full[i].ID == channel.ID {
			entry := full[i]
			entry.Rank = i + 1
			focus = &entry
			break
		}
	}
	if focus == nil {
		// No subscriptions in range; ranked entities omit zero counts.
		focus = &model.RankedEntity{ID: channel.ID, Name: channel.Name}
	}

	top := full
	if len(top) > uc.config.TopN {
		top = append([]model.RankedEntity{}, top[:uc.config.TopN]...)
	}
	if focus.Rank == 0 || focus.Rank > uc.config.TopN {
		top = append(top, *focus)
	}

	return top, focus
}
