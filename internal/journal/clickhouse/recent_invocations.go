package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/journal"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
)

// RecentInvocations returns the newest journal rows, optionally filtered by caller address.
func (r *Repository) RecentInvocations(ctx context.Context, caller string, limit int) ([]journal.Entry, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_invocations", err, start)
	}()

	if limit <= 0 || limit > journal.MaxRecentLimit {
		limit = journal.MaxRecentLimit
	}
	n, err := safe.Uint64(limit)
	if err != nil {
		return nil, err
	}

	const query = `
SELECT id, function, caller, hash, status, polls, error, started_at, finished_at
FROM contract_invocations
WHERE (? = '' OR caller = ?)
ORDER BY started_at DESC, id DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, caller, caller, n)
	if err != nil {
		return nil, fmt.Errorf("query recent invocations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	entries := make([]journal.Entry, 0, limit)
	for rows.Next() {
		var e journal.Entry
		if err = rows.Scan(
			&e.ID,
			&e.Function,
			&e.Caller,
			&e.Hash,
			&e.Status,
			&e.Polls,
			&e.Error,
			&e.Started,
			&e.Finished,
		); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}
	return entries, nil
}
