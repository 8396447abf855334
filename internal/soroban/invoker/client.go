// Package invoker builds, simulates, signs, submits and tracks Soroban contract calls.
package invoker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/clock"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/rpc"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/txnbuild"
	"github.com/stellar/go/xdr"
	"go.uber.org/zap"
)

// Client invokes functions of a single contract.
type Client struct {
	logger   *zap.Logger
	cfg      Config
	contract xdr.ScAddress
	wallet   Wallet
	rpc      RPC
	accounts AccountLoader
	recorder Recorder
	metrics  Metrics
	sleep    clock.SleepFunc
	now      clock.NowFunc
}

// Option customizes a Client.
type Option func(*Client)

// WithRecorder sends every invocation outcome to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithSleep replaces the poll sleep function.
func WithSleep(sleep clock.SleepFunc) Option {
	return func(c *Client) { c.sleep = sleep }
}

// WithClock replaces the time source used for journal timestamps.
func WithClock(now clock.NowFunc) Option {
	return func(c *Client) { c.now = now }
}

// New validates cfg and constructs a Client.
func New(
	logger *zap.Logger,
	cfg Config,
	wallet Wallet,
	rpcClient RPC,
	accounts AccountLoader,
	metrics Metrics,
	opts ...Option,
) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invoker config: %w", err)
	}
	raw, err := strkey.Decode(strkey.VersionByteContract, cfg.ContractID)
	if err != nil {
		return nil, fmt.Errorf("invoker config: %w", err)
	}
	var id xdr.ContractId
	copy(id[:], raw)

	c := &Client{
		logger:   logger.Named("invoker"),
		cfg:      cfg,
		contract: xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &id},
		wallet:   wallet,
		rpc:      rpcClient,
		accounts: accounts,
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		now:      clock.UTCNow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Caller returns the connected wallet address. The wallet is asked for access before its
// public key is read.
func (c *Client) Caller(ctx context.Context) (string, error) {
	connected, err := c.wallet.IsConnected(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", soroban.ErrWalletNotConnected, err)
	}
	if !connected {
		return "", soroban.ErrWalletNotConnected
	}
	if _, err := c.wallet.RequestAccess(ctx); err != nil {
		if errors.Is(err, soroban.ErrWalletNotConnected) {
			return "", err
		}
		return "", fmt.Errorf("%w: access denied: %v", soroban.ErrWalletNotConnected, err)
	}
	address, err := c.wallet.PublicKey(ctx)
	if err != nil {
		if errors.Is(err, soroban.ErrWalletNotConnected) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", soroban.ErrWalletNotConnected, err)
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("%w: %w: wallet returned a blank address", soroban.ErrWalletNotConnected, soroban.ErrValidation)
	}
	return address, nil
}

// Invoke submits a state-changing call of function and waits for its outcome.
//
// A FAILED transaction returns the outcome together with soroban.ErrTransactionFailed. When the
// poll budget runs out first the outcome is StatusProvisional with a nil error.
func (c *Client) Invoke(ctx context.Context, function string, args ...scval.Arg) (out Outcome, err error) {
	started := c.now()
	var caller string
	defer func() {
		c.finish(ctx, function, caller, started, out, err)
	}()

	encoded, err := scval.EncodeAll(args...)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", function, err)
	}
	caller, err = c.Caller(ctx)
	if err != nil {
		return Outcome{}, err
	}
	account, err := c.accounts.LoadAccount(ctx, caller)
	if err != nil {
		return Outcome{}, err
	}

	source := txnbuild.SimpleAccount{AccountID: account.ID, Sequence: account.Sequence}
	draft, err := c.buildTransaction(source, c.invokeOp(function, encoded, nil, xdr.TransactionExt{}), c.cfg.ElevatedFee, c.cfg.WriteTimeout)
	if err != nil {
		return Outcome{}, err
	}
	draftXDR, err := draft.Base64()
	if err != nil {
		return Outcome{}, fmt.Errorf("encode draft %s: %w", function, err)
	}
	sim, err := c.rpc.SimulateTransaction(ctx, draftXDR)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %s: %w", soroban.ErrSimulationFailed, function, err)
	}
	ext, auth, err := assemble(sim)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", function, err)
	}

	// The envelope fee covers the inclusion bid plus the declared resource fee.
	fee := c.cfg.ElevatedFee + int64(ext.SorobanData.ResourceFee)
	prepared, err := c.buildTransaction(source, c.invokeOp(function, encoded, auth, ext), fee, c.cfg.WriteTimeout)
	if err != nil {
		return Outcome{}, err
	}
	preparedXDR, err := prepared.Base64()
	if err != nil {
		return Outcome{}, fmt.Errorf("encode prepared %s: %w", function, err)
	}

	signed, err := c.wallet.SignTransaction(ctx, preparedXDR, c.cfg.NetworkPassphrase)
	if err != nil {
		if errors.Is(err, soroban.ErrSigningRejected) || errors.Is(err, soroban.ErrWalletNotConnected) {
			return Outcome{}, err
		}
		return Outcome{}, fmt.Errorf("%w: %v", soroban.ErrSigningRejected, err)
	}

	sent, err := c.rpc.SendTransaction(ctx, signed)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %s: %w", soroban.ErrSubmissionFailed, function, err)
	}
	switch sent.Status {
	case rpc.SendStatusPending, rpc.SendStatusDuplicate:
	case rpc.SendStatusError, rpc.SendStatusTryAgainLater:
		return Outcome{Hash: sent.Hash}, fmt.Errorf("%w: %s returned %s%s",
			soroban.ErrSubmissionFailed, function, sent.Status, describeResult(sent.ErrorResultXDR))
	default:
		return Outcome{Hash: sent.Hash}, fmt.Errorf("%w: %s returned unknown status %q",
			soroban.ErrSubmissionFailed, function, sent.Status)
	}

	c.logger.Debug("transaction submitted",
		zap.String("function", function),
		zap.String("hash", sent.Hash),
		zap.String("status", sent.Status))
	return c.poll(ctx, function, sent.Hash)
}

func (c *Client) poll(ctx context.Context, function, hash string) (Outcome, error) {
	out := Outcome{Hash: hash, Status: StatusProvisional}
	for attempt := 0; ; attempt++ {
		delay, ok := c.cfg.Poll.Next(attempt)
		if !ok {
			c.logger.Warn("transaction status unknown after poll budget, treating as provisional",
				zap.String("function", function),
				zap.String("hash", hash),
				zap.Int("polls", out.Polls))
			return out, nil
		}
		if err := c.sleep(ctx, delay); err != nil {
			return out, err
		}

		out.Polls++
		res, err := c.rpc.GetTransaction(ctx, hash)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			c.logger.Warn("poll transaction",
				zap.String("hash", hash),
				zap.Int("attempt", out.Polls),
				zap.Error(err))
			continue
		}

		switch res.Status {
		case rpc.TxStatusNotFound:
			continue
		case rpc.TxStatusSuccess:
			out.Status = StatusSuccess
			out.Ledger = res.Ledger
			c.decodeReturnValue(&out, res.ResultMetaXDR)
			return out, nil
		case rpc.TxStatusFailed:
			out.Status = StatusFailed
			out.Ledger = res.Ledger
			return out, fmt.Errorf("%w: %s (%s)%s", soroban.ErrTransactionFailed, function, hash, describeResult(res.ResultXDR))
		default:
			c.logger.Warn("unexpected transaction status",
				zap.String("hash", hash),
				zap.String("status", res.Status))
		}
	}
}

func (c *Client) decodeReturnValue(out *Outcome, metaXDR string) {
	v, ok, err := returnValue(metaXDR)
	if err != nil {
		c.logger.Warn("decode transaction meta", zap.String("hash", out.Hash), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	out.ReturnValue = &v
	native, err := scval.ToNative(v)
	if err != nil {
		c.logger.Warn("decode return value", zap.String("hash", out.Hash), zap.Error(err))
		return
	}
	out.Result = native
}

// Simulate runs function read-only from a throwaway source account and returns the raw
// return value.
func (c *Client) Simulate(ctx context.Context, function string, args ...scval.Arg) (v xdr.ScVal, err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveSimulate(function, err, started)
	}()

	encoded, err := scval.EncodeAll(args...)
	if err != nil {
		return xdr.ScVal{}, fmt.Errorf("%s: %w", function, err)
	}
	source, err := keypair.Random()
	if err != nil {
		return xdr.ScVal{}, fmt.Errorf("generate simulation source: %w", err)
	}
	tx, err := c.buildTransaction(
		txnbuild.SimpleAccount{AccountID: source.Address(), Sequence: 0},
		c.invokeOp(function, encoded, nil, xdr.TransactionExt{}),
		c.cfg.ReadFee,
		c.cfg.ReadTimeout,
	)
	if err != nil {
		return xdr.ScVal{}, err
	}
	envelope, err := tx.Base64()
	if err != nil {
		return xdr.ScVal{}, fmt.Errorf("encode %s: %w", function, err)
	}

	res, err := c.rpc.SimulateTransaction(ctx, envelope)
	if err != nil {
		return xdr.ScVal{}, fmt.Errorf("%w: %s: %w", soroban.ErrSimulationFailed, function, err)
	}
	if res.Error != "" {
		return xdr.ScVal{}, fmt.Errorf("%w: %s: %s", soroban.ErrSimulationFailed, function, res.Error)
	}
	if len(res.Results) == 0 {
		return xdr.ScVal{}, fmt.Errorf("%w: %s: no result", soroban.ErrSimulationFailed, function)
	}
	if err := xdr.SafeUnmarshalBase64(res.Results[0].XDR, &v); err != nil {
		return xdr.ScVal{}, fmt.Errorf("%w: %s: decode result: %v", soroban.ErrSimulationFailed, function, err)
	}
	return v, nil
}

func (c *Client) finish(ctx context.Context, function, caller string, started time.Time, out Outcome, err error) {
	status := string(out.Status)
	if status == "" {
		status = "error"
	}
	c.metrics.ObserveInvoke(function, status, out.Polls, started)
	if err != nil {
		c.logger.Error("contract invocation failed",
			zap.String("function", function),
			zap.String("hash", out.Hash),
			zap.Error(err))
	} else {
		c.logger.Info("contract invocation finished",
			zap.String("function", function),
			zap.String("hash", out.Hash),
			zap.String("status", status),
			zap.Int("polls", out.Polls))
	}
	if c.recorder == nil {
		return
	}
	inv := Invocation{
		Function: function,
		Caller:   caller,
		Hash:     out.Hash,
		Status:   out.Status,
		Polls:    out.Polls,
		Err:      err,
		Started:  started,
		Finished: c.now(),
	}
	if recErr := c.recorder.Record(context.WithoutCancel(ctx), inv); recErr != nil {
		c.logger.Warn("record invocation", zap.String("function", function), zap.Error(recErr))
	}
}
