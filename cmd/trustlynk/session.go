package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/trustlynk-backend/internal/app"
	"github.com/goodnatureofminers/trustlynk-backend/internal/journal"
	journalch "github.com/goodnatureofminers/trustlynk-backend/internal/journal/clickhouse"
	"github.com/goodnatureofminers/trustlynk-backend/internal/logging"
	"github.com/goodnatureofminers/trustlynk-backend/internal/metrics"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/internal/wallet"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/batcher"
	"go.uber.org/zap"
)

var errNoJournal = errors.New("no invocation journal configured, set --clickhouse-dsn")

// session holds what a single command run needs. Everything is built on first use and
// released by close.
type session struct {
	ctx    context.Context
	opts   options
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger   *zap.Logger
	contract *app.Contract
	repo     *journalch.Repository
	writer   *journal.Writer
}

func newSession(ctx context.Context, in io.Reader, out, errOut io.Writer) *session {
	return &session{ctx: ctx, in: in, out: out, errOut: errOut}
}

func (s *session) log() (*zap.Logger, error) {
	if s.logger != nil {
		return s.logger, nil
	}
	logger, err := logging.New(s.opts.LogLevel, true)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	return logger, nil
}

func (s *session) client() (*app.Contract, error) {
	if s.contract != nil {
		return s.contract, nil
	}
	logger, err := s.log()
	if err != nil {
		return nil, err
	}

	var approver wallet.Approver = terminalApprover(s.in, s.errOut)
	if s.opts.Yes {
		approver = wallet.AutoApprove
	}
	signer, err := wallet.NewKeypair(logger, s.opts.SecretSeed, approver)
	if err != nil {
		return nil, err
	}

	var recorder invoker.Recorder
	if s.opts.ClickhouseDSN != "" {
		repo, err := s.journal()
		if err != nil {
			return nil, err
		}
		s.writer = journal.NewWriter(logger, repo, batcher.Config{})
		s.writer.Start(s.ctx)
		recorder = s.writer
	}

	contract, err := app.NewContract(logger, s.opts.Contract, signer, recorder)
	if err != nil {
		return nil, err
	}
	s.contract = contract
	return contract, nil
}

func (s *session) journal() (*journalch.Repository, error) {
	if s.repo != nil {
		return s.repo, nil
	}
	if s.opts.ClickhouseDSN == "" {
		return nil, errNoJournal
	}
	repo, err := journalch.NewRepository(s.opts.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	s.repo = repo
	return repo, nil
}

// address returns explicit, or the signing wallet's address when explicit is blank.
func (s *session) address(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	c, err := s.client()
	if err != nil {
		return "", err
	}
	addr, err := c.Invoker.Caller(s.ctx)
	if errors.Is(err, soroban.ErrWalletNotConnected) {
		return "", fmt.Errorf("%w: pass --address or set TRUSTLYNK_SECRET_SEED", err)
	}
	return addr, err
}

func (s *session) print(v any) error {
	return printJSON(s.out, v)
}

func (s *session) close() {
	// The writer flushes buffered journal rows into the repository, so it stops first.
	if s.writer != nil {
		s.writer.Stop()
	}
	if s.contract != nil {
		_ = s.contract.Close()
	}
	if s.repo != nil {
		_ = s.repo.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}
