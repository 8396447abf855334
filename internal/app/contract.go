// Package app wires the contract client stack for the binaries.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/currency"
	"github.com/goodnatureofminers/trustlynk-backend/internal/insurance"
	"github.com/goodnatureofminers/trustlynk-backend/internal/metrics"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/rpc"
	"github.com/goodnatureofminers/trustlynk-backend/internal/transport"
	"go.uber.org/zap"
)

// ContractOptions are the command line settings shared by every binary that talks to the
// contract.
type ContractOptions struct {
	Network      string        `long:"network" env:"NETWORK" default:"testnet" description:"Stellar network (testnet, mainnet, futurenet)"`
	ContractID   string        `long:"contract-id" env:"CONTRACT_ID" required:"true" description:"insurance contract address (C...)"`
	RPCURL       string        `long:"rpc-url" env:"RPC_URL" default:"https://soroban-testnet.stellar.org" description:"Soroban RPC endpoint"`
	HorizonURL   string        `long:"horizon-url" env:"HORIZON_URL" default:"https://horizon-testnet.stellar.org" description:"Horizon endpoint used to load accounts"`
	RPCRate      int           `long:"rpc-rps" env:"RPC_RPS" default:"10" description:"max RPC requests per second, 0 for unlimited"`
	HTTPTimeout  time.Duration `long:"http-timeout" env:"HTTP_TIMEOUT" default:"30s" description:"Horizon HTTP timeout"`
	ElevatedFee  int64         `long:"fee" env:"FEE" default:"100000" description:"base fee in stroops for state-changing calls"`
	ReadFee      int64         `long:"read-fee" env:"READ_FEE" default:"100" description:"base fee in stroops for simulated reads"`
	WriteTimeout time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"180s" description:"validity window of submitted transactions"`
	ReadTimeout  time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"30s" description:"validity window of simulated reads"`
	PollInterval time.Duration `long:"poll-interval" env:"POLL_INTERVAL" default:"1s" description:"delay between status polls"`
	PollAttempts int           `long:"poll-attempts" env:"POLL_ATTEMPTS" default:"10" description:"status polls before reporting a provisional success"`
	PollBackoff  bool          `long:"poll-backoff" env:"POLL_BACKOFF" description:"double the poll delay after every attempt"`
	INRRate      int64         `long:"inr-rate" env:"INR_RATE" default:"1000000" description:"INR conversion rate, stroops = inr * 10^7 / rate"`
}

// InvokerConfig maps the options onto the invoker configuration.
func (o ContractOptions) InvokerConfig() (invoker.Config, error) {
	passphrase, err := soroban.Network(o.Network).Passphrase()
	if err != nil {
		return invoker.Config{}, err
	}
	var poll invoker.PollPolicy = invoker.FixedPoll{Interval: o.PollInterval, MaxAttempts: o.PollAttempts}
	if o.PollBackoff {
		poll = invoker.BackoffPoll{
			Initial:     o.PollInterval,
			Max:         o.PollInterval * 8,
			Multiplier:  2,
			MaxAttempts: o.PollAttempts,
		}
	}
	return invoker.Config{
		ContractID:        o.ContractID,
		NetworkPassphrase: passphrase,
		RPCURL:            o.RPCURL,
		HorizonURL:        o.HorizonURL,
		ElevatedFee:       o.ElevatedFee,
		ReadFee:           o.ReadFee,
		WriteTimeout:      o.WriteTimeout,
		ReadTimeout:       o.ReadTimeout,
		Poll:              poll,
	}, nil
}

// Contract bundles the wired client layers.
type Contract struct {
	Invoker   *invoker.Client
	Queries   *insurance.Queries
	Mutations *insurance.Mutations
	Converter currency.Converter
	rpc       *rpc.Client
}

// NewContract builds the stack. wallet signs state-changing calls; recorder may be nil.
func NewContract(logger *zap.Logger, opts ContractOptions, wallet invoker.Wallet, recorder invoker.Recorder) (*Contract, error) {
	cfg, err := opts.InvokerConfig()
	if err != nil {
		return nil, fmt.Errorf("contract options: %w", err)
	}
	converter, err := currency.NewConverter(opts.INRRate)
	if err != nil {
		return nil, fmt.Errorf("contract options: %w", err)
	}
	nativeToken, err := soroban.NativeTokenAddress(cfg.NetworkPassphrase)
	if err != nil {
		return nil, err
	}

	rpcMetrics := metrics.NewRPCClient(opts.Network)
	rpcClient := rpc.NewClient(cfg.RPCURL, opts.RPCRate, rpcMetrics)
	accounts := rpc.NewAccountLoader(cfg.HorizonURL, &http.Client{Timeout: opts.HTTPTimeout}, rpcMetrics)

	var invokerOpts []invoker.Option
	if recorder != nil {
		invokerOpts = append(invokerOpts, invoker.WithRecorder(recorder))
	}
	client, err := invoker.New(logger, cfg, wallet, rpcClient, accounts, metrics.NewInvoker(), invokerOpts...)
	if err != nil {
		_ = rpcClient.Close()
		return nil, err
	}

	queries := insurance.NewQueries(logger, client)
	mutations, err := insurance.NewMutations(logger, client, queries, converter, nativeToken)
	if err != nil {
		_ = rpcClient.Close()
		return nil, err
	}
	return &Contract{
		Invoker:   client,
		Queries:   queries,
		Mutations: mutations,
		Converter: converter,
		rpc:       rpcClient,
	}, nil
}

// Health reports the RPC server state for readiness probes.
func (c *Contract) Health(ctx context.Context) (transport.NodeHealth, error) {
	health, err := c.rpc.GetHealth(ctx)
	if err != nil {
		return transport.NodeHealth{}, fmt.Errorf("rpc health: %w", err)
	}
	latest, err := c.rpc.GetLatestLedger(ctx)
	if err != nil {
		return transport.NodeHealth{}, fmt.Errorf("rpc latest ledger: %w", err)
	}
	return transport.NodeHealth{
		Status:          health.Status,
		LatestLedger:    latest.Sequence,
		OldestLedger:    health.OldestLedger,
		ProtocolVersion: latest.ProtocolVersion,
	}, nil
}

// Close releases the RPC transport.
func (c *Contract) Close() error {
	return c.rpc.Close()
}
