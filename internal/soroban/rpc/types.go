package rpc

import (
	"context"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Caller is the JSON-RPC transport. *jrpc2.Client satisfies it.
	Caller interface {
		CallResult(ctx context.Context, method string, params, result any) error
		Close() error
	}

	// HorizonClient is the subset of horizonclient used to load source accounts.
	HorizonClient interface {
		AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
	}
)
