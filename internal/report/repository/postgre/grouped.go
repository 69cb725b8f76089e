package postgre

import (
	"context"
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// CountUsersGroupedBy - Count users created in range, grouped by a demographic
// dimension. Every bucket appears in the result, zero-filled when empty.
func (r *implRepository) CountUsersGroupedBy(ctx context.Context, opts repository.GroupedOptions) ([]model.GroupedCount, error) {
	expr, err := bucketExpr(opts.Dimension)
	if err != nil {
		return nil, err
	}

	from, to := rangeArgs(opts.Range)
	query := fmt.Sprintf(`SELECT %s AS bucket, COUNT(*)
		FROM users u
		WHERE u.created_at BETWEEN $1 AND $2
		GROUP BY bucket`, expr)

	counted, err := r.scanBuckets(ctx, query, from, to)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CountUsersGroupedBy: Failed to group users by %s: %v", opts.Dimension, err)
		return nil, repository.ErrQueryFailed
	}

	return seedBuckets(opts.Dimension, counted), nil
}

// CountSubscriptionsGroupedBy - Count active subscriptions created in range,
// grouped by the subscribing user's demographic dimension.
func (r *implRepository) CountSubscriptionsGroupedBy(ctx context.Context, opts repository.GroupedOptions) ([]model.GroupedCount, error) {
	expr, err := bucketExpr(opts.Dimension)
	if err != nil {
		return nil, err
	}

	from, to := rangeArgs(opts.Range)
	query := fmt.Sprintf(`SELECT %s AS bucket, COUNT(*)
		FROM subscriptions s
		JOIN users u ON u.id = s.user_id
		JOIN programs p ON p.id = s.program_id
		WHERE s.active = TRUE AND s.created_at BETWEEN $1 AND $2`, expr)
	args := []interface{}{from, to}
	query, args = channelFilter(query, args, opts.ChannelID)
	query += " GROUP BY bucket"

	counted, err := r.scanBuckets(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CountSubscriptionsGroupedBy: Failed to group subscriptions by %s: %v", opts.Dimension, err)
		return nil, repository.ErrQueryFailed
	}

	return seedBuckets(opts.Dimension, counted), nil
}

func (r *implRepository) scanBuckets(ctx context.Context, query string, args ...interface{}) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counted := make(map[string]int64)
	for rows.Next() {
		var bucket string
		var count int64
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, err
		}
		counted[bucket] = count
	}

	return counted, rows.Err()
}
