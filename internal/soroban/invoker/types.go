package invoker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Wallet signs transactions on behalf of the account holder.
	Wallet interface {
		IsConnected(ctx context.Context) (bool, error)
		RequestAccess(ctx context.Context) (string, error)
		PublicKey(ctx context.Context) (string, error)
		SignTransaction(ctx context.Context, envelopeXDR, passphrase string) (string, error)
	}

	// RPC is the Soroban JSON-RPC surface the invoker needs.
	RPC interface {
		SimulateTransaction(ctx context.Context, envelopeXDR string) (rpc.SimulateTransactionResponse, error)
		SendTransaction(ctx context.Context, envelopeXDR string) (rpc.SendTransactionResponse, error)
		GetTransaction(ctx context.Context, hash string) (rpc.GetTransactionResponse, error)
	}

	// AccountLoader returns the current sequence of a source account.
	AccountLoader interface {
		LoadAccount(ctx context.Context, address string) (rpc.Account, error)
	}

	// Recorder persists invocation outcomes.
	Recorder interface {
		Record(ctx context.Context, inv Invocation) error
	}

	// Metrics records invocation and simulation metrics.
	Metrics interface {
		ObserveInvoke(function, status string, polls int, started time.Time)
		ObserveSimulate(function string, err error, started time.Time)
	}
)
