package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/analytics"
	"report-srv/pkg/charts"
	"report-srv/pkg/renderer"
)

type fakeRepo struct {
	usersTotal  int64
	subsTotal   int64
	users       []model.User
	subs        []model.Subscription
	topChannels []model.RankedEntity
	topPrograms []model.RankedEntity
	channel     *model.Channel
	channelErr  error
	parents     map[string]string
	err         error
}

func (f *fakeRepo) CountNewUsers(ctx context.Context, opts repository.RangeOptions) (int64, error) {
	return f.usersTotal, f.err
}

func (f *fakeRepo) CountNewSubscriptions(ctx context.Context, opts repository.RangeOptions) (int64, error) {
	return f.subsTotal, f.err
}

func (f *fakeRepo) CountUsersGroupedBy(ctx context.Context, opts repository.GroupedOptions) ([]model.GroupedCount, error) {
	return zeroBuckets(opts.Dimension), f.err
}

func (f *fakeRepo) CountSubscriptionsGroupedBy(ctx context.Context, opts repository.GroupedOptions) ([]model.GroupedCount, error) {
	return zeroBuckets(opts.Dimension), f.err
}

func (f *fakeRepo) TopChannelsBySubscriptions(ctx context.Context, opts repository.TopOptions) ([]model.RankedEntity, error) {
	return f.topChannels, f.err
}

func (f *fakeRepo) TopProgramsBySubscriptions(ctx context.Context, opts repository.TopOptions) ([]model.RankedEntity, error) {
	return f.topPrograms, f.err
}

func (f *fakeRepo) GetChannelByID(ctx context.Context, id string) (*model.Channel, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channel, nil
}

func (f *fakeRepo) ChannelNamesByProgramNames(ctx context.Context, names []string) (map[string]string, error) {
	if f.parents == nil {
		return map[string]string{}, f.err
	}
	return f.parents, f.err
}

func (f *fakeRepo) ListUsersCreatedInRange(ctx context.Context, opts repository.RangeOptions) ([]model.User, error) {
	return f.users, f.err
}

func (f *fakeRepo) ListSubscriptionsInRange(ctx context.Context, opts repository.RangeOptions) ([]model.Subscription, error) {
	return f.subs, f.err
}

func zeroBuckets(dimension string) []model.GroupedCount {
	if dimension == repository.DimensionGender {
		out := make([]model.GroupedCount, 0, len(model.Genders))
		for _, g := range model.Genders {
			out = append(out, model.GroupedCount{Key: string(g)})
		}
		return out
	}
	out := make([]model.GroupedCount, 0, len(model.AgeBrackets))
	for _, b := range model.AgeBrackets {
		out = append(out, model.GroupedCount{Key: string(b)})
	}
	return out
}

type fakeAnalytics struct {
	events map[model.EventType][]model.ClickEvent
	errs   map[model.EventType]error
}

func (f *fakeAnalytics) FetchClickEvents(ctx context.Context, input analytics.FetchInput) ([]model.ClickEvent, error) {
	if err := f.errs[input.EventType]; err != nil {
		return nil, err
	}
	return f.events[input.EventType], nil
}

type fakeCharts struct {
	img []byte
	err error
}

func (f *fakeCharts) Render(ctx context.Context, spec charts.Spec) ([]byte, error) {
	return f.img, f.err
}

type fakeRenderer struct {
	data []byte
	err  error
}

func (f *fakeRenderer) WithPage(ctx context.Context, html string, opts renderer.PageOptions) ([]byte, error) {
	return f.data, f.err
}

func (f *fakeRenderer) Close(ctx context.Context) error { return nil }
