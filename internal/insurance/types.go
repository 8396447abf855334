package insurance

import (
	"context"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"github.com/stellar/go/xdr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Simulator runs read-only contract calls.
	Simulator interface {
		Simulate(ctx context.Context, function string, args ...scval.Arg) (xdr.ScVal, error)
	}

	// ContractInvoker submits state-changing contract calls from the connected wallet.
	ContractInvoker interface {
		Invoke(ctx context.Context, function string, args ...scval.Arg) (invoker.Outcome, error)
		Caller(ctx context.Context) (string, error)
	}

	// PolicyLookup lists the policies offered by the contract.
	PolicyLookup interface {
		AllPolicies(ctx context.Context) ([]Policy, error)
	}

	// FallbackMetrics counts queries answered with defaults.
	FallbackMetrics interface {
		ObserveFallback(query string)
	}
)
