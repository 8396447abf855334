package insurance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/trustlynk-backend/internal/clock"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/workerpool"
	"github.com/stellar/go/xdr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a record lookup finds nothing.
var ErrNotFound = errors.New("not found")

// DefaultNFTWorkers bounds concurrent metadata reads in PolicyNFTs.
const DefaultNFTWorkers = 4

// Queries reads contract state and propagates every failure.
type Queries struct {
	logger     *zap.Logger
	sim        Simulator
	now        clock.NowFunc
	nftWorkers int
}

// QueriesOption customizes Queries.
type QueriesOption func(*Queries)

// WithClock sets the clock used to derive purchased policy status.
func WithClock(now clock.NowFunc) QueriesOption {
	return func(q *Queries) {
		if now != nil {
			q.now = now
		}
	}
}

// WithNFTWorkers sets how many metadata reads PolicyNFTs runs at once.
func WithNFTWorkers(n int) QueriesOption {
	return func(q *Queries) {
		if n > 0 {
			q.nftWorkers = n
		}
	}
}

// NewQueries constructs Queries over a read-only simulator.
func NewQueries(logger *zap.Logger, sim Simulator, opts ...QueriesOption) *Queries {
	q := &Queries{
		logger:     logger.Named("insurance_queries"),
		sim:        sim,
		now:        clock.UTCNow,
		nftWorkers: DefaultNFTWorkers,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// AllPolicies lists every policy offered by the contract.
func (q *Queries) AllPolicies(ctx context.Context) ([]Policy, error) {
	v, err := q.sim.Simulate(ctx, "get_all_policies")
	if err != nil {
		return nil, err
	}
	policies, err := decodeList(v, decodePolicy)
	if err != nil {
		return nil, fmt.Errorf("decode policies: %w", err)
	}
	return policies, nil
}

// Policy returns the policy with the given id.
func (q *Queries) Policy(ctx context.Context, id uint64) (Policy, error) {
	policies, err := q.AllPolicies(ctx)
	if err != nil {
		return Policy{}, err
	}
	for _, p := range policies {
		if p.ID == id {
			return p, nil
		}
	}
	return Policy{}, fmt.Errorf("policy %d: %w", id, ErrNotFound)
}

// UserPolicies lists the policies purchased by address.
func (q *Queries) UserPolicies(ctx context.Context, address string) ([]UserPolicy, error) {
	v, err := q.simulateFor(ctx, "get_my_policies", address)
	if err != nil {
		return nil, err
	}
	policies, err := decodeList(v, userPolicyDecoder(q.now()))
	if err != nil {
		return nil, fmt.Errorf("decode user policies: %w", err)
	}
	return policies, nil
}

// UserRole returns the registered role of address.
func (q *Queries) UserRole(ctx context.Context, address string) (Role, error) {
	v, err := q.simulateFor(ctx, "get_user_role", address)
	if err != nil {
		return RoleUnregistered, err
	}
	role, err := scval.AsUint32(v)
	if err != nil {
		return RoleUnregistered, fmt.Errorf("decode role: %w", err)
	}
	return Role(role), nil
}

// IsAdmin reports whether address holds the admin role.
func (q *Queries) IsAdmin(ctx context.Context, address string) (bool, error) {
	v, err := q.simulateFor(ctx, "check_admin_status", address)
	if err != nil {
		return false, err
	}
	ok, err := scval.AsBool(v)
	if err != nil {
		return false, fmt.Errorf("decode admin status: %w", err)
	}
	return ok, nil
}

// UserInfo returns the registration record of address, or nil if it never registered.
func (q *Queries) UserInfo(ctx context.Context, address string) (*User, error) {
	v, err := q.simulateFor(ctx, "get_user_info", address)
	if err != nil {
		return nil, err
	}
	user, err := decodeOption(v, decodeUser)
	if err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

// UserClaims lists the claims filed by address.
func (q *Queries) UserClaims(ctx context.Context, address string) ([]Claim, error) {
	v, err := q.simulateFor(ctx, "get_user_claims", address)
	if err != nil {
		return nil, err
	}
	claims, err := decodeList(v, decodeClaim)
	if err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return claims, nil
}

// AllClaims lists every claim.
func (q *Queries) AllClaims(ctx context.Context) ([]Claim, error) {
	v, err := q.sim.Simulate(ctx, "get_all_claims")
	if err != nil {
		return nil, err
	}
	claims, err := decodeList(v, decodeClaim)
	if err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return claims, nil
}

// ClaimStatus returns the compact status of a claim.
func (q *Queries) ClaimStatus(ctx context.Context, claimID uint64) (ClaimStatusSnapshot, error) {
	v, err := q.sim.Simulate(ctx, "get_claim_status", scval.U64(claimID))
	if err != nil {
		return ClaimStatusSnapshot{}, err
	}
	return decodeClaimStatus(v)
}

// ClaimDetails returns a claim, or nil if it does not exist.
func (q *Queries) ClaimDetails(ctx context.Context, claimID uint64) (*Claim, error) {
	v, err := q.sim.Simulate(ctx, "get_claim_details", scval.U64(claimID))
	if err != nil {
		return nil, err
	}
	claim, err := decodeOption(v, decodeClaim)
	if err != nil {
		return nil, fmt.Errorf("decode claim: %w", err)
	}
	return claim, nil
}

// ClaimByOracleRequest returns the claim filed with the given oracle request id, or nil.
func (q *Queries) ClaimByOracleRequest(ctx context.Context, requestID string) (*Claim, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, fmt.Errorf("%w: oracle request id cannot be empty", soroban.ErrValidation)
	}
	v, err := q.sim.Simulate(ctx, "get_claim_by_oracle_request", scval.String(requestID))
	if err != nil {
		return nil, err
	}
	claim, err := decodeOption(v, decodeClaim)
	if err != nil {
		return nil, fmt.Errorf("decode claim: %w", err)
	}
	return claim, nil
}

// ClaimsByAbhaID lists the claims that reference a health account id.
func (q *Queries) ClaimsByAbhaID(ctx context.Context, abhaID string) ([]Claim, error) {
	if strings.TrimSpace(abhaID) == "" {
		return nil, fmt.Errorf("%w: abha id cannot be empty", soroban.ErrValidation)
	}
	v, err := q.sim.Simulate(ctx, "get_claims_by_abha_id", scval.String(abhaID))
	if err != nil {
		return nil, err
	}
	claims, err := decodeList(v, decodeClaim)
	if err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return claims, nil
}

// NFTMetadata returns the metadata of a policy NFT, or nil if the token does not exist.
func (q *Queries) NFTMetadata(ctx context.Context, tokenID string) (*NFTMetadata, error) {
	if strings.TrimSpace(tokenID) == "" {
		return nil, fmt.Errorf("%w: token id cannot be empty", soroban.ErrValidation)
	}
	v, err := q.sim.Simulate(ctx, "get_nft_metadata", scval.String(tokenID))
	if err != nil {
		return nil, err
	}
	meta, err := decodeOption(v, decodeNFTMetadata)
	if err != nil {
		return nil, fmt.Errorf("decode nft metadata: %w", err)
	}
	return meta, nil
}

// PolicyNFT pairs a token id with its metadata. Metadata is nil for unknown tokens.
type PolicyNFT struct {
	TokenID  string       `json:"token_id"`
	Metadata *NFTMetadata `json:"metadata"`
}

// PolicyNFTs loads metadata for every token concurrently. Results keep the input order.
func (q *Queries) PolicyNFTs(ctx context.Context, tokenIDs []string) ([]PolicyNFT, error) {
	return workerpool.Map(ctx, q.nftWorkers, tokenIDs, func(ctx context.Context, id string) (PolicyNFT, error) {
		meta, err := q.NFTMetadata(ctx, id)
		if err != nil {
			return PolicyNFT{}, fmt.Errorf("token %s: %w", id, err)
		}
		return PolicyNFT{TokenID: id, Metadata: meta}, nil
	})
}

// UserTokens lists the NFT token ids owned by address.
func (q *Queries) UserTokens(ctx context.Context, address string) ([]string, error) {
	v, err := q.simulateFor(ctx, "get_user_tokens", address)
	if err != nil {
		return nil, err
	}
	return decodeTokens(v)
}

// PolicyTokens lists the NFT token ids minted for a policy.
func (q *Queries) PolicyTokens(ctx context.Context, policyID uint64) ([]string, error) {
	v, err := q.sim.Simulate(ctx, "get_policy_tokens", scval.U64(policyID))
	if err != nil {
		return nil, err
	}
	return decodeTokens(v)
}

// TotalTokens returns the number of NFTs minted so far.
func (q *Queries) TotalTokens(ctx context.Context) (uint64, error) {
	v, err := q.sim.Simulate(ctx, "get_total_tokens")
	if err != nil {
		return 0, err
	}
	n, err := scval.AsUint64(v)
	if err != nil {
		return 0, fmt.Errorf("decode total tokens: %w", err)
	}
	return n, nil
}

// Treasury returns the contract treasury balance in stroops.
func (q *Queries) Treasury(ctx context.Context) (scval.Int128, error) {
	v, err := q.sim.Simulate(ctx, "get_treasury")
	if err != nil {
		return scval.Int128{}, err
	}
	amount, err := scval.AsInt128(v)
	if err != nil {
		return scval.Int128{}, fmt.Errorf("decode treasury: %w", err)
	}
	return amount, nil
}

// IsInitialized reports whether the contract has an admin.
func (q *Queries) IsInitialized(ctx context.Context) (bool, error) {
	v, err := q.sim.Simulate(ctx, "is_initialized")
	if err != nil {
		return false, err
	}
	ok, err := scval.AsBool(v)
	if err != nil {
		return false, fmt.Errorf("decode initialized: %w", err)
	}
	return ok, nil
}

// Overview loads role, policies, claims and tokens of address concurrently.
// The first failure cancels the remaining reads.
func (q *Queries) Overview(ctx context.Context, address string) (Overview, error) {
	if err := soroban.ValidateAddress(address); err != nil {
		return Overview{}, err
	}
	out := Overview{Address: strings.TrimSpace(address)}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Role, err = q.UserRole(ctx, address)
		return err
	})
	g.Go(func() (err error) {
		out.Policies, err = q.UserPolicies(ctx, address)
		return err
	})
	g.Go(func() (err error) {
		out.Claims, err = q.UserClaims(ctx, address)
		return err
	})
	g.Go(func() (err error) {
		out.Tokens, err = q.UserTokens(ctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("overview %s: %w", out.Address, err)
	}
	return out, nil
}

func (q *Queries) simulateFor(ctx context.Context, function, address string) (xdr.ScVal, error) {
	if err := soroban.ValidateAddress(address); err != nil {
		return xdr.ScVal{}, err
	}
	return q.sim.Simulate(ctx, function, scval.Address(address))
}

func decodeTokens(v xdr.ScVal) ([]string, error) {
	tokens, err := scval.AsStrings(v)
	if err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	return tokens, nil
}
