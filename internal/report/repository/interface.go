package repository

import (
	"context"

	"report-srv/internal/model"
)

// AggregationRepository is the data-store side of report composition: range-
// filtered counts, grouped demographic counts and subscription rankings.
//
//go:generate mockery --name AggregationRepository
type AggregationRepository interface {
	CountNewUsers(ctx context.Context, opts RangeOptions) (int64, error)
	CountNewSubscriptions(ctx context.Context, opts RangeOptions) (int64, error)

	// CountUsersGroupedBy / CountSubscriptionsGroupedBy return one entry per
	// demographic bucket, pre-seeded to zero, in display order.
	CountUsersGroupedBy(ctx context.Context, opts GroupedOptions) ([]model.GroupedCount, error)
	CountSubscriptionsGroupedBy(ctx context.Context, opts GroupedOptions) ([]model.GroupedCount, error)

	// TopChannelsBySubscriptions / TopProgramsBySubscriptions rank entities
	// by active subscriptions in range, descending. Entities with zero
	// subscriptions are omitted. Limit <= 0 means unlimited.
	TopChannelsBySubscriptions(ctx context.Context, opts TopOptions) ([]model.RankedEntity, error)
	TopProgramsBySubscriptions(ctx context.Context, opts TopOptions) ([]model.RankedEntity, error)

	// GetChannelByID returns ErrChannelNotFound for unknown ids.
	GetChannelByID(ctx context.Context, id string) (*model.Channel, error)

	// ChannelNamesByProgramNames resolves program display names to their
	// parent channel names in one batched query.
	ChannelNamesByProgramNames(ctx context.Context, names []string) (map[string]string, error)

	ListUsersCreatedInRange(ctx context.Context, opts RangeOptions) ([]model.User, error)
	ListSubscriptionsInRange(ctx context.Context, opts RangeOptions) ([]model.Subscription, error)
}
