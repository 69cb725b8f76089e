package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

// composeUsers builds the row-listing model for the users report.
func (uc *implUseCase) composeUsers(ctx context.Context, input report.ComposeInput) (*model.ReportModel, error) {
	users, err := uc.repo.ListUsersCreatedInRange(ctx, repository.RangeOptions{Range: input.Range()})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.composeUsers: Failed to list users: %v", err)
		return nil, report.ErrComposeFailed
	}

	return &model.ReportModel{
		Title:      uc.buildTitle(input, nil),
		ReportType: input.ReportType,
		Range:      input.Range(),
		Generated:  uc.now(),
		TotalUsers: int64(len(users)),
		Users:      users,
	}, nil
}

// composeSubscriptions builds the row-listing model for the subscriptions
// report.
func (uc *implUseCase) composeSubscriptions(ctx context.Context, input report.ComposeInput) (*model.ReportModel, error) {
	subs, err := uc.repo.ListSubscriptionsInRange(ctx, repository.RangeOptions{Range: input.Range(), ChannelID: input.ChannelID})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.composeSubscriptions: Failed to list subscriptions: %v", err)
		return nil, report.ErrComposeFailed
	}

	return &model.ReportModel{
		Title:              uc.buildTitle(input, nil),
		ReportType:         input.ReportType,
		Range:              input.Range(),
		Generated:          uc.now(),
		TotalSubscriptions: int64(len(subs)),
		Subscriptions:      subs,
	}, nil
}
