// Package wallet provides signers for contract transactions.
package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
	"go.uber.org/zap"
)

// Keypair is a wallet holding one secret seed in memory.
type Keypair struct {
	logger   *zap.Logger
	full     *keypair.Full
	approver Approver
}

// NewKeypair parses seed. A blank seed yields a disconnected wallet whose operations fail with
// soroban.ErrWalletNotConnected. A nil approver approves everything.
func NewKeypair(logger *zap.Logger, seed string, approver Approver) (*Keypair, error) {
	if approver == nil {
		approver = AutoApprove
	}
	w := &Keypair{logger: logger.Named("wallet"), approver: approver}

	seed = strings.TrimSpace(seed)
	if seed == "" {
		return w, nil
	}
	full, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, fmt.Errorf("parse secret seed: %w", err)
	}
	w.full = full
	return w, nil
}

// IsConnected reports whether a key is loaded.
func (w *Keypair) IsConnected(context.Context) (bool, error) {
	return w.full != nil, nil
}

// RequestAccess returns the address the holder shares with the caller.
func (w *Keypair) RequestAccess(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if w.full == nil {
		return "", soroban.ErrWalletNotConnected
	}
	return w.full.Address(), nil
}

// PublicKey returns the account address, or soroban.ErrWalletNotConnected.
func (w *Keypair) PublicKey(context.Context) (string, error) {
	if w.full == nil {
		return "", soroban.ErrWalletNotConnected
	}
	return w.full.Address(), nil
}

// SignTransaction asks the approver and signs envelopeXDR for passphrase.
func (w *Keypair) SignTransaction(ctx context.Context, envelopeXDR, passphrase string) (string, error) {
	if w.full == nil {
		return "", soroban.ErrWalletNotConnected
	}

	generic, err := txnbuild.TransactionFromXDR(envelopeXDR)
	if err != nil {
		return "", fmt.Errorf("%w: parse envelope: %v", soroban.ErrSigningRejected, err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return "", fmt.Errorf("%w: fee bump envelopes are not supported", soroban.ErrSigningRejected)
	}
	hash, err := tx.Hash(passphrase)
	if err != nil {
		return "", fmt.Errorf("%w: hash envelope: %v", soroban.ErrSigningRejected, err)
	}

	req := SignRequest{
		Address:     w.full.Address(),
		Passphrase:  passphrase,
		Hash:        hex.EncodeToString(hash[:]),
		Operations:  len(tx.Operations()),
		Fee:         tx.BaseFee(),
		EnvelopeXDR: envelopeXDR,
	}
	approved, err := w.approver.Approve(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", soroban.ErrSigningRejected, err)
	}
	if !approved {
		w.logger.Info("signature declined", zap.String("hash", req.Hash))
		return "", fmt.Errorf("%w: user declined", soroban.ErrSigningRejected)
	}

	signed, err := tx.Sign(passphrase, w.full)
	if err != nil {
		return "", fmt.Errorf("%w: %v", soroban.ErrSigningRejected, err)
	}
	out, err := signed.Base64()
	if err != nil {
		return "", fmt.Errorf("encode signed envelope: %w", err)
	}
	w.logger.Debug("transaction signed", zap.String("hash", req.Hash))
	return out, nil
}
