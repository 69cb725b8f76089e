package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// GetChannelByID - Get channel by primary key.
func (r *implRepository) GetChannelByID(ctx context.Context, id string) (*model.Channel, error) {
	var c model.Channel
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM channels WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, repository.ErrChannelNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetChannelByID: Failed to get channel: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return &c, nil
}

// ChannelNamesByProgramNames - Resolve program display names to parent channel
// names in a single batched query. Unmatched names are absent from the map.
func (r *implRepository) ChannelNamesByProgramNames(ctx context.Context, names []string) (map[string]string, error) {
	parents := make(map[string]string, len(names))
	if len(names) == 0 {
		return parents, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT p.name, c.name
		FROM programs p
		JOIN channels c ON c.id = p.channel_id
		WHERE p.name = ANY($1)`,
		pq.Array(names),
	)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ChannelNamesByProgramNames: Failed to resolve parents: %v", err)
		return nil, repository.ErrQueryFailed
	}
	defer rows.Close()

	for rows.Next() {
		var program, channel string
		if err := rows.Scan(&program, &channel); err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ChannelNamesByProgramNames: Failed to scan row: %v", err)
			return nil, repository.ErrQueryFailed
		}
		parents[program] = channel
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ChannelNamesByProgramNames: Failed to read rows: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return parents, nil
}

// ListUsersCreatedInRange - List users created in range, newest first.
func (r *implRepository) ListUsersCreatedInRange(ctx context.Context, opts repository.RangeOptions) ([]model.User, error) {
	from, to := rangeArgs(opts.Range)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, gender, birth_date, created_at
		FROM users u
		WHERE u.created_at BETWEEN $1 AND $2
		ORDER BY u.created_at DESC`,
		from, to,
	)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListUsersCreatedInRange: Failed to list users: %v", err)
		return nil, repository.ErrQueryFailed
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var gender sql.NullString
		var birthDate sql.NullTime
		if err := rows.Scan(&u.ID, &u.Email, &gender, &birthDate, &u.CreatedAt); err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListUsersCreatedInRange: Failed to scan user: %v", err)
			return nil, repository.ErrQueryFailed
		}
		u.Gender = model.NormalizeGender(gender.String)
		if birthDate.Valid {
			bd := birthDate.Time
			u.BirthDate = &bd
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListUsersCreatedInRange: Failed to read rows: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return users, nil
}

// ListSubscriptionsInRange - List subscriptions created in range with joined
// program and channel names, newest first. Includes inactive rows.
func (r *implRepository) ListSubscriptionsInRange(ctx context.Context, opts repository.RangeOptions) ([]model.Subscription, error) {
	from, to := rangeArgs(opts.Range)

	query := `SELECT s.id, s.user_id, s.program_id, p.name, c.name, s.active, s.created_at
		FROM subscriptions s
		JOIN programs p ON p.id = s.program_id
		JOIN channels c ON c.id = p.channel_id
		WHERE s.created_at BETWEEN $1 AND $2`
	args := []interface{}{from, to}
	query, args = channelFilter(query, args, opts.ChannelID)
	query += " ORDER BY s.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListSubscriptionsInRange: Failed to list subscriptions: %v", err)
		return nil, repository.ErrQueryFailed
	}
	defer rows.Close()

	subs := []model.Subscription{}
	for rows.Next() {
		var s model.Subscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProgramID, &s.ProgramName, &s.ChannelName, &s.Active, &s.CreatedAt); err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListSubscriptionsInRange: Failed to scan subscription: %v", err)
			return nil, repository.ErrQueryFailed
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListSubscriptionsInRange: Failed to read rows: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return subs, nil
}
