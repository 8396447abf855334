// Package transport exposes the read-only HTTP gateway over contract state.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/insurance"
	"github.com/goodnatureofminers/trustlynk-backend/internal/journal"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Reader serves contract reads with display defaults.
	Reader interface {
		AllPolicies(ctx context.Context) []insurance.Policy
		Policy(ctx context.Context, id uint64) *insurance.Policy
		PolicyTokens(ctx context.Context, policyID uint64) []string
		UserPolicies(ctx context.Context, address string) []insurance.UserPolicy
		UserRole(ctx context.Context, address string) insurance.Role
		UserInfo(ctx context.Context, address string) *insurance.User
		UserClaims(ctx context.Context, address string) []insurance.Claim
		UserTokens(ctx context.Context, address string) []string
		Overview(ctx context.Context, address string) insurance.Overview
		AllClaims(ctx context.Context) []insurance.Claim
		ClaimDetails(ctx context.Context, claimID uint64) *insurance.Claim
		ClaimStatus(ctx context.Context, claimID uint64) *insurance.ClaimStatusSnapshot
		NFTMetadata(ctx context.Context, tokenID string) *insurance.NFTMetadata
		TotalTokens(ctx context.Context) uint64
		Treasury(ctx context.Context) scval.Int128
		IsInitialized(ctx context.Context) bool
	}

	// History reads the invocation journal.
	History interface {
		RecentInvocations(ctx context.Context, caller string, limit int) ([]journal.Entry, error)
	}

	// Node reports the state of the RPC server behind the gateway.
	Node interface {
		Health(ctx context.Context) (NodeHealth, error)
	}

	// Metrics observes served requests.
	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)

// NodeHealth is what the readiness probe reports about the RPC server.
type NodeHealth struct {
	Status          string `json:"status"`
	LatestLedger    uint32 `json:"latest_ledger"`
	OldestLedger    uint32 `json:"oldest_ledger"`
	ProtocolVersion int    `json:"protocol_version"`
}

// NodeHealthy is the status a ready RPC server reports.
const NodeHealthy = "healthy"
