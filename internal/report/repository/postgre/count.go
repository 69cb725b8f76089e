package postgre

import (
	"context"

	"report-srv/internal/report/repository"
)

// CountNewUsers - Count users created inside the range.
func (r *implRepository) CountNewUsers(ctx context.Context, opts repository.RangeOptions) (int64, error) {
	from, to := rangeArgs(opts.Range)

	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users u WHERE u.created_at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CountNewUsers: Failed to count users: %v", err)
		return 0, repository.ErrQueryFailed
	}

	return count, nil
}

// CountNewSubscriptions - Count active subscriptions created inside the range.
func (r *implRepository) CountNewSubscriptions(ctx context.Context, opts repository.RangeOptions) (int64, error) {
	from, to := rangeArgs(opts.Range)

	query := `SELECT COUNT(*)
		FROM subscriptions s
		JOIN programs p ON p.id = s.program_id
		WHERE s.active = TRUE AND s.created_at BETWEEN $1 AND $2`
	args := []interface{}{from, to}
	query, args = channelFilter(query, args, opts.ChannelID)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CountNewSubscriptions: Failed to count subscriptions: %v", err)
		return 0, repository.ErrQueryFailed
	}

	return count, nil
}
