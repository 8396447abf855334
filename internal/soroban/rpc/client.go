// Package rpc talks to the Soroban JSON-RPC server and to Horizon for account state.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
	"go.uber.org/ratelimit"
)

// Error is a JSON-RPC error object returned by the server. Message is kept verbatim.
type Error struct {
	Method  string
	Code    int32
	Message string
	Data    string
}

func (e *Error) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("%s: rpc error %d: %s (%s)", e.Method, e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%s: rpc error %d: %s", e.Method, e.Code, e.Message)
}

// Client wraps a JSON-RPC connection with rate limiting and metrics instrumentation.
type Client struct {
	caller  Caller
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient dials url over HTTP. rps <= 0 disables throttling.
func NewClient(url string, rps int, metrics Metrics) *Client {
	ch := jhttp.NewChannel(url, nil)
	return NewClientWithCaller(jrpc2.NewClient(ch, nil), rps, metrics)
}

// NewClientWithCaller builds a client over an existing transport.
func NewClientWithCaller(caller Caller, rps int, metrics Metrics) *Client {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{caller: caller, limiter: limiter, metrics: metrics}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.caller.Close()
}

// SimulateTransaction dry-runs a base64 transaction envelope.
func (c *Client) SimulateTransaction(ctx context.Context, envelopeXDR string) (res SimulateTransactionResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("simulate_transaction", err, started)
	}()
	err = c.call(ctx, "simulateTransaction", transactionParams{Transaction: envelopeXDR}, &res)
	return res, err
}

// SendTransaction submits a signed base64 transaction envelope.
func (c *Client) SendTransaction(ctx context.Context, envelopeXDR string) (res SendTransactionResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("send_transaction", err, started)
	}()
	err = c.call(ctx, "sendTransaction", transactionParams{Transaction: envelopeXDR}, &res)
	return res, err
}

// GetTransaction fetches the status of a submitted transaction by hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (res GetTransactionResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction", err, started)
	}()
	err = c.call(ctx, "getTransaction", hashParams{Hash: hash}, &res)
	return res, err
}

// GetLatestLedger returns the most recent ledger known to the server.
func (c *Client) GetLatestLedger(ctx context.Context) (res GetLatestLedgerResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_latest_ledger", err, started)
	}()
	err = c.call(ctx, "getLatestLedger", nil, &res)
	return res, err
}

// GetHealth reports server health.
func (c *Client) GetHealth(ctx context.Context) (res GetHealthResponse, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_health", err, started)
	}()
	err = c.call(ctx, "getHealth", nil, &res)
	return res, err
}

func (c *Client) call(ctx context.Context, method string, params, result any) error {
	c.limiter.Take()
	if err := c.caller.CallResult(ctx, method, params, result); err != nil {
		var rpcErr *jrpc2.Error
		if errors.As(err, &rpcErr) {
			return &Error{Method: method, Code: int32(rpcErr.Code), Message: rpcErr.Message, Data: string(rpcErr.Data)}
		}
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
