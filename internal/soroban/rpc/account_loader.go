package rpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/stellar/go/clients/horizonclient"
)

// Account is the source account state needed to build a transaction.
type Account struct {
	ID       string
	Sequence int64
}

// AccountLoader reads account sequence numbers from Horizon.
type AccountLoader struct {
	client  HorizonClient
	metrics Metrics
}

// NewAccountLoader constructs a loader for the Horizon server at url.
func NewAccountLoader(url string, httpClient *http.Client, metrics Metrics) *AccountLoader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return NewAccountLoaderWithClient(&horizonclient.Client{HorizonURL: url, HTTP: httpClient}, metrics)
}

// NewAccountLoaderWithClient builds a loader over an existing Horizon client.
func NewAccountLoaderWithClient(client HorizonClient, metrics Metrics) *AccountLoader {
	return &AccountLoader{client: client, metrics: metrics}
}

// LoadAccount returns the current sequence of address. A missing account maps to
// soroban.ErrAccountNotFunded.
func (l *AccountLoader) LoadAccount(ctx context.Context, address string) (acc Account, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("load_account", err, started)
	}()

	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	if err := soroban.ValidateAddress(address); err != nil {
		return Account{}, err
	}

	detail, err := l.client.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return Account{}, fmt.Errorf("%w: %s", soroban.ErrAccountNotFunded, address)
		}
		return Account{}, fmt.Errorf("load account %s: %w", address, err)
	}
	seq, err := detail.GetSequenceNumber()
	if err != nil {
		return Account{}, fmt.Errorf("parse sequence of %s: %w", address, err)
	}
	return Account{ID: detail.AccountID, Sequence: seq}, nil
}
