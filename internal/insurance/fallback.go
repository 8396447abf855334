package insurance

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"go.uber.org/zap"
)

// Fallback answers queries for display. Any failure is logged, counted and replaced by an
// empty collection, RoleUnregistered, zero, false or nil.
type Fallback struct {
	logger  *zap.Logger
	queries *Queries
	metrics FallbackMetrics
}

// NewFallback wraps queries with default-on-error behavior.
func NewFallback(logger *zap.Logger, queries *Queries, metrics FallbackMetrics) *Fallback {
	return &Fallback{
		logger:  logger.Named("insurance_fallback"),
		queries: queries,
		metrics: metrics,
	}
}

func (f *Fallback) fallback(query string, err error, fields ...zap.Field) {
	f.metrics.ObserveFallback(query)
	f.logger.Warn("query failed, serving default", append(fields, zap.String("query", query), zap.Error(err))...)
}

// AllPolicies returns every policy, or an empty slice.
func (f *Fallback) AllPolicies(ctx context.Context) []Policy {
	policies, err := f.queries.AllPolicies(ctx)
	if err != nil {
		f.fallback("all_policies", err)
		return []Policy{}
	}
	return policies
}

// Policy returns nil when the policy is missing or the read failed.
func (f *Fallback) Policy(ctx context.Context, id uint64) *Policy {
	p, err := f.queries.Policy(ctx, id)
	if err != nil {
		f.fallback("policy", err, zap.Uint64("policy_id", id))
		return nil
	}
	return &p
}

// UserPolicies returns the policies bought by address, or an empty slice.
func (f *Fallback) UserPolicies(ctx context.Context, address string) []UserPolicy {
	policies, err := f.queries.UserPolicies(ctx, address)
	if err != nil {
		f.fallback("user_policies", err, zap.String("address", address))
		return []UserPolicy{}
	}
	return policies
}

// UserRole returns the registered role of address, or RoleUnregistered.
func (f *Fallback) UserRole(ctx context.Context, address string) Role {
	role, err := f.queries.UserRole(ctx, address)
	if err != nil {
		f.fallback("user_role", err, zap.String("address", address))
		return RoleUnregistered
	}
	return role
}

// IsAdmin reports whether address is the contract admin. Failures read as false.
func (f *Fallback) IsAdmin(ctx context.Context, address string) bool {
	ok, err := f.queries.IsAdmin(ctx, address)
	if err != nil {
		f.fallback("is_admin", err, zap.String("address", address))
		return false
	}
	return ok
}

// UserInfo returns the registration of address, or nil.
func (f *Fallback) UserInfo(ctx context.Context, address string) *User {
	user, err := f.queries.UserInfo(ctx, address)
	if err != nil {
		f.fallback("user_info", err, zap.String("address", address))
		return nil
	}
	return user
}

// UserClaims returns the claims filed by address, or an empty slice.
func (f *Fallback) UserClaims(ctx context.Context, address string) []Claim {
	claims, err := f.queries.UserClaims(ctx, address)
	if err != nil {
		f.fallback("user_claims", err, zap.String("address", address))
		return []Claim{}
	}
	return claims
}

// AllClaims returns every claim, or an empty slice.
func (f *Fallback) AllClaims(ctx context.Context) []Claim {
	claims, err := f.queries.AllClaims(ctx)
	if err != nil {
		f.fallback("all_claims", err)
		return []Claim{}
	}
	return claims
}

// ClaimStatus returns the status snapshot of a claim, or nil.
func (f *Fallback) ClaimStatus(ctx context.Context, claimID uint64) *ClaimStatusSnapshot {
	snap, err := f.queries.ClaimStatus(ctx, claimID)
	if err != nil {
		f.fallback("claim_status", err, zap.Uint64("claim_id", claimID))
		return nil
	}
	return &snap
}

// ClaimDetails returns a single claim, or nil.
func (f *Fallback) ClaimDetails(ctx context.Context, claimID uint64) *Claim {
	claim, err := f.queries.ClaimDetails(ctx, claimID)
	if err != nil {
		f.fallback("claim_details", err, zap.Uint64("claim_id", claimID))
		return nil
	}
	return claim
}

// NFTMetadata returns the certificate metadata of a token, or nil.
func (f *Fallback) NFTMetadata(ctx context.Context, tokenID string) *NFTMetadata {
	meta, err := f.queries.NFTMetadata(ctx, tokenID)
	if err != nil {
		f.fallback("nft_metadata", err, zap.String("token_id", tokenID))
		return nil
	}
	return meta
}

// PolicyNFTs resolves tokenIDs to certificates, or returns an empty slice.
func (f *Fallback) PolicyNFTs(ctx context.Context, tokenIDs []string) []PolicyNFT {
	nfts, err := f.queries.PolicyNFTs(ctx, tokenIDs)
	if err != nil {
		f.fallback("policy_nfts", err, zap.Int("tokens", len(tokenIDs)))
		return []PolicyNFT{}
	}
	return nfts
}

// UserTokens returns the token ids held by address, or an empty slice.
func (f *Fallback) UserTokens(ctx context.Context, address string) []string {
	tokens, err := f.queries.UserTokens(ctx, address)
	if err != nil {
		f.fallback("user_tokens", err, zap.String("address", address))
		return []string{}
	}
	return tokens
}

// PolicyTokens returns the token ids minted for a policy, or an empty slice.
func (f *Fallback) PolicyTokens(ctx context.Context, policyID uint64) []string {
	tokens, err := f.queries.PolicyTokens(ctx, policyID)
	if err != nil {
		f.fallback("policy_tokens", err, zap.Uint64("policy_id", policyID))
		return []string{}
	}
	return tokens
}

// TotalTokens returns the number of minted certificates, or zero.
func (f *Fallback) TotalTokens(ctx context.Context) uint64 {
	n, err := f.queries.TotalTokens(ctx)
	if err != nil {
		f.fallback("total_tokens", err)
		return 0
	}
	return n
}

// Treasury returns the contract treasury balance, or zero.
func (f *Fallback) Treasury(ctx context.Context) scval.Int128 {
	amount, err := f.queries.Treasury(ctx)
	if err != nil {
		f.fallback("treasury", err)
		return scval.Int128{}
	}
	return amount
}

// IsInitialized reports whether the contract has been initialized. Failures read as false.
func (f *Fallback) IsInitialized(ctx context.Context) bool {
	ok, err := f.queries.IsInitialized(ctx)
	if err != nil {
		f.fallback("is_initialized", err)
		return false
	}
	return ok
}

// Overview degrades per part: a failed read leaves only that part at its default. An invalid
// address yields an empty overview without further reads.
func (f *Fallback) Overview(ctx context.Context, address string) Overview {
	out, err := f.queries.Overview(ctx, address)
	if err == nil {
		return out
	}
	f.fallback("overview", err, zap.String("address", address))
	if errors.Is(err, soroban.ErrValidation) {
		return Overview{Address: address, Policies: []UserPolicy{}, Claims: []Claim{}, Tokens: []string{}}
	}
	return Overview{
		Address:  address,
		Role:     f.UserRole(ctx, address),
		Policies: f.UserPolicies(ctx, address),
		Claims:   f.UserClaims(ctx, address),
		Tokens:   f.UserTokens(ctx, address),
	}
}
