package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Writer defaults.
const (
	DefaultFlushSize     = 100
	DefaultFlushInterval = 5 * time.Second
	DefaultFlushRPS      = 5
)

// Writer buffers invocation records and inserts them in batches. It satisfies invoker.Recorder.
type Writer struct {
	logger  *zap.Logger
	batcher *batcher.Batcher[Entry]
}

// NewWriter constructs a Writer over repo. Zero config values use the defaults.
func NewWriter(logger *zap.Logger, repo Repository, cfg batcher.Config) *Writer {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = DefaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = DefaultFlushRPS
	}
	logger = logger.Named("journal_writer")
	flush := func(ctx context.Context, entries []Entry) error {
		if err := repo.InsertInvocations(ctx, entries); err != nil {
			return fmt.Errorf("insert %d invocations: %w", len(entries), err)
		}
		return nil
	}
	return &Writer{
		logger:  logger,
		batcher: batcher.New(logger, flush, cfg),
	}
}

// Start begins background flushing.
func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes what is buffered and waits for the flush loop to exit.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// Record queues inv for the next batch.
func (w *Writer) Record(ctx context.Context, inv invoker.Invocation) error {
	if err := w.batcher.Add(ctx, NewEntry(inv)); err != nil {
		return fmt.Errorf("journal %s: %w", inv.Function, err)
	}
	return nil
}
