package postgre

import (
	"context"
	"fmt"
	"sort"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// TopChannelsBySubscriptions - Rank channels by active subscriptions created
// in range, descending. Channels without subscriptions are omitted.
func (r *implRepository) TopChannelsBySubscriptions(ctx context.Context, opts repository.TopOptions) ([]model.RankedEntity, error) {
	if opts.CrossTab != "" {
		return r.rankCrossTab(ctx, "report.repository.postgre.TopChannelsBySubscriptions", crossTabQuery{
			selectCols: "c.id, c.name, ''",
			groupCols:  "c.id, c.name",
			opts:       opts,
		})
	}

	from, to := rangeArgs(opts.Range)
	query := `SELECT c.id, c.name, COUNT(*) AS subs
		FROM subscriptions s
		JOIN programs p ON p.id = s.program_id
		JOIN channels c ON c.id = p.channel_id
		WHERE s.active = TRUE AND s.created_at BETWEEN $1 AND $2
		GROUP BY c.id, c.name
		ORDER BY subs DESC, c.name ASC`
	args := []interface{}{from, to}
	query, args = applyLimit(query, args, opts.Limit)

	entities, err := r.scanScalarRanking(ctx, query, args, false)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.TopChannelsBySubscriptions: Failed to rank channels: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return entities, nil
}

// TopProgramsBySubscriptions - Rank programs by active subscriptions created
// in range, descending, each carrying its parent channel name.
func (r *implRepository) TopProgramsBySubscriptions(ctx context.Context, opts repository.TopOptions) ([]model.RankedEntity, error) {
	if opts.CrossTab != "" {
		return r.rankCrossTab(ctx, "report.repository.postgre.TopProgramsBySubscriptions", crossTabQuery{
			selectCols: "p.id, p.name, c.name",
			groupCols:  "p.id, p.name, c.name",
			opts:       opts,
		})
	}

	from, to := rangeArgs(opts.Range)
	query := `SELECT p.id, p.name, c.name, COUNT(*) AS subs
		FROM subscriptions s
		JOIN programs p ON p.id = s.program_id
		JOIN channels c ON c.id = p.channel_id
		WHERE s.active = TRUE AND s.created_at BETWEEN $1 AND $2`
	args := []interface{}{from, to}
	query, args = channelFilter(query, args, opts.ChannelID)
	query += `
		GROUP BY p.id, p.name, c.name
		ORDER BY subs DESC, p.name ASC`
	query, args = applyLimit(query, args, opts.Limit)

	entities, err := r.scanScalarRanking(ctx, query, args, true)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.TopProgramsBySubscriptions: Failed to rank programs: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return entities, nil
}

func applyLimit(query string, args []interface{}, limit int) (string, []interface{}) {
	if limit <= 0 {
		return query, args
	}
	args = append(args, limit)
	return query + fmt.Sprintf(" LIMIT $%d", len(args)), args
}

func (r *implRepository) scanScalarRanking(ctx context.Context, query string, args []interface{}, withParent bool) ([]model.RankedEntity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := []model.RankedEntity{}
	for rows.Next() {
		var e model.RankedEntity
		if withParent {
			err = rows.Scan(&e.ID, &e.Name, &e.ParentName, &e.Count)
		} else {
			err = rows.Scan(&e.ID, &e.Name, &e.Count)
		}
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	return entities, rows.Err()
}

type crossTabQuery struct {
	selectCols string
	groupCols  string
	opts       repository.TopOptions
}

// rankCrossTab ranks entities with per-bucket demographic counts. Ordering by
// total happens here since SQL only sees one bucket per row.
func (r *implRepository) rankCrossTab(ctx context.Context, logPrefix string, q crossTabQuery) ([]model.RankedEntity, error) {
	expr, err := bucketExpr(q.opts.CrossTab)
	if err != nil {
		return nil, err
	}

	from, to := rangeArgs(q.opts.Range)
	query := fmt.Sprintf(`SELECT %s, %s AS bucket, COUNT(*)
		FROM subscriptions s
		JOIN users u ON u.id = s.user_id
		JOIN programs p ON p.id = s.program_id
		JOIN channels c ON c.id = p.channel_id
		WHERE s.active = TRUE AND s.created_at BETWEEN $1 AND $2`, q.selectCols, expr)
	args := []interface{}{from, to}
	query, args = channelFilter(query, args, q.opts.ChannelID)
	query += fmt.Sprintf(" GROUP BY %s, bucket", q.groupCols)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: Failed to rank with cross-tab: %v", logPrefix, err)
		return nil, repository.ErrQueryFailed
	}
	defer rows.Close()

	byID := make(map[string]*model.RankedEntity)
	order := []string{}
	for rows.Next() {
		var id, name, parent, bucket string
		var count int64
		if err := rows.Scan(&id, &name, &parent, &bucket, &count); err != nil {
			r.l.Errorf(ctx, "%s: Failed to scan cross-tab row: %v", logPrefix, err)
			return nil, repository.ErrQueryFailed
		}

		e, ok := byID[id]
		if !ok {
			e = &model.RankedEntity{ID: id, Name: name, ParentName: parent, Counts: map[string]int64{}}
			byID[id] = e
			order = append(order, id)
		}
		e.Counts[bucket] = count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: Failed to read cross-tab rows: %v", logPrefix, err)
		return nil, repository.ErrQueryFailed
	}

	entities := make([]model.RankedEntity, 0, len(order))
	for _, id := range order {
		entities = append(entities, *byID[id])
	}
	sort.SliceStable(entities, func(i, j int) bool {
		ti, tj := entities[i].Total(), entities[j].Total()
		if ti != tj {
			return ti > tj
		}
		return entities[i].Name < entities[j].Name
	})

	if q.opts.Limit > 0 && len(entities) > q.opts.Limit {
		entities = entities[:q.opts.Limit]
	}

	return entities, nil
}
