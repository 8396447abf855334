package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/journal"
)

// InsertInvocations stores journal rows in ClickHouse.
func (r *Repository) InsertInvocations(ctx context.Context, entries []journal.Entry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_invocations", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO contract_invocations (
	id,
	function,
	caller,
	hash,
	status,
	polls,
	error,
	started_at,
	finished_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare invocations batch: %w", err)
	}

	for _, e := range entries {
		if err = batch.Append(
			e.ID,
			e.Function,
			e.Caller,
			e.Hash,
			e.Status,
			e.Polls,
			e.Error,
			e.Started,
			e.Finished,
		); err != nil {
			return fmt.Errorf("append invocation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert invocations: %w", err)
	}
	return nil
}
