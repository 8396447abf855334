package insurance

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/trustlynk-backend/internal/currency"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
	"go.uber.org/zap"
)

// PolicyParams describes a new policy. Amounts are passed to the contract as given.
type PolicyParams struct {
	Title             string
	Description       string
	Type              PolicyType
	MonthlyPremium    scval.Int128
	YearlyPremium     scval.Int128
	CoverageAmount    scval.Int128
	MinAge            uint64
	MaxAge            uint64
	DurationDays      uint64
	WaitingPeriodDays uint64
}

// Validate checks the preconditions the contract does not report clearly.
func (p PolicyParams) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: policy title cannot be empty", soroban.ErrValidation)
	case !p.Type.Valid():
		return fmt.Errorf("%w: unknown policy type %d", soroban.ErrValidation, p.Type)
	case p.MonthlyPremium.Sign() <= 0 || p.YearlyPremium.Sign() <= 0:
		return fmt.Errorf("%w: premiums must be positive", soroban.ErrValidation)
	case p.CoverageAmount.Sign() <= 0:
		return fmt.Errorf("%w: coverage amount must be positive", soroban.ErrValidation)
	case p.MinAge > p.MaxAge:
		return fmt.Errorf("%w: min age %d exceeds max age %d", soroban.ErrValidation, p.MinAge, p.MaxAge)
	case p.DurationDays == 0:
		return fmt.Errorf("%w: duration must be at least one day", soroban.ErrValidation)
	}
	return nil
}

// Arg encodes the params as the contract's PolicyParams struct.
func (p PolicyParams) Arg() scval.Arg {
	return scval.Struct(
		scval.Field{Name: "title", Value: scval.String(p.Title)},
		scval.Field{Name: "description", Value: scval.String(p.Description)},
		scval.Field{Name: "policy_type", Value: scval.U32(uint32(p.Type))},
		scval.Field{Name: "monthly_premium", Value: scval.I128(p.MonthlyPremium)},
		scval.Field{Name: "yearly_premium", Value: scval.I128(p.YearlyPremium)},
		scval.Field{Name: "coverage_amount", Value: scval.I128(p.CoverageAmount)},
		scval.Field{Name: "min_age", Value: scval.U64(p.MinAge)},
		scval.Field{Name: "max_age", Value: scval.U64(p.MaxAge)},
		scval.Field{Name: "duration_days", Value: scval.U64(p.DurationDays)},
		scval.Field{Name: "waiting_period_days", Value: scval.U64(p.WaitingPeriodDays)},
	)
}

// HolderDetails are the policyholder fields attached to a purchased policy NFT.
type HolderDetails struct {
	Name       string `json:"name"`
	Age        uint64 `json:"age,string"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"blood_group"`
}

// PurchaseRequest buys a policy for the connected wallet.
type PurchaseRequest struct {
	// PolicyID is the decimal policy id as shown to the user.
	PolicyID    string
	MetadataURI string
	// PremiumINR is the whole-rupee premium charged now.
	PremiumINR int64
	Holder     HolderDetails
}

// PurchaseResult reports a purchase.
type PurchaseResult struct {
	invoker.Outcome
	PolicyID      uint64
	PaymentStroop int64
	PaymentINR    int64
}

// ClaimEvidence is the off-chain verification data attached to a claim.
type ClaimEvidence struct {
	AbhaID          string
	IPFSCID         string
	OracleRequestID string
	Description     string
	HospitalName    string
}

// ClaimRequest files a claim with an externally computed fraud score.
type ClaimRequest struct {
	PolicyID       string
	AggregateScore int
	Evidence       ClaimEvidence
}

// ClaimResult reports a filed claim.
type ClaimResult struct {
	invoker.Outcome
	PolicyID       uint64
	ExpectedStatus ClaimStatus
	// ClaimAmount is the coverage of the claimed policy, zero if it could not be found.
	ClaimAmount scval.Int128
}

// Mutations submits state-changing contract calls and propagates every failure.
type Mutations struct {
	logger      *zap.Logger
	invoker     ContractInvoker
	policies    PolicyLookup
	converter   currency.Converter
	nativeToken string
}

// NewMutations constructs Mutations. nativeToken is the contract address of the native asset
// used for premium payments and claim payouts.
func NewMutations(
	logger *zap.Logger,
	contract ContractInvoker,
	policies PolicyLookup,
	converter currency.Converter,
	nativeToken string,
) (*Mutations, error) {
	if err := soroban.ValidateAddress(nativeToken); err != nil {
		return nil, fmt.Errorf("native token: %w", err)
	}
	return &Mutations{
		logger:      logger.Named("insurance_mutations"),
		invoker:     contract,
		policies:    policies,
		converter:   converter,
		nativeToken: strings.TrimSpace(nativeToken),
	}, nil
}

// RegisterUser assigns role to address.
func (m *Mutations) RegisterUser(ctx context.Context, address string, role Role) (invoker.Outcome, error) {
	if err := soroban.ValidateAddress(address); err != nil {
		return invoker.Outcome{}, err
	}
	if role != RolePolicyholder && role != RoleAdmin {
		return invoker.Outcome{}, fmt.Errorf("%w: cannot register role %s", soroban.ErrValidation, role)
	}
	return m.invoker.Invoke(ctx, "register_user", scval.Address(address), scval.U32(uint32(role)))
}

// RegisterAsAdmin registers the connected wallet as admin.
func (m *Mutations) RegisterAsAdmin(ctx context.Context) (invoker.Outcome, error) {
	return m.registerSelf(ctx, RoleAdmin)
}

// RegisterAsPolicyholder registers the connected wallet as policyholder.
func (m *Mutations) RegisterAsPolicyholder(ctx context.Context) (invoker.Outcome, error) {
	return m.registerSelf(ctx, RolePolicyholder)
}

func (m *Mutations) registerSelf(ctx context.Context, role Role) (invoker.Outcome, error) {
	address, err := m.invoker.Caller(ctx)
	if err != nil {
		return invoker.Outcome{}, err
	}
	return m.RegisterUser(ctx, address, role)
}

// CreatePolicy creates a policy as the connected admin and returns the new policy id. The id is
// zero when the transaction is provisional or its return value could not be read.
func (m *Mutations) CreatePolicy(ctx context.Context, params PolicyParams) (invoker.Outcome, uint64, error) {
	if err := params.Validate(); err != nil {
		return invoker.Outcome{}, 0, err
	}
	admin, err := m.invoker.Caller(ctx)
	if err != nil {
		return invoker.Outcome{}, 0, err
	}
	out, err := m.invoker.Invoke(ctx, "create_policy", scval.Address(admin), params.Arg())
	if err != nil {
		return out, 0, err
	}
	id, _ := out.Result.(uint64)
	m.logger.Info("policy created", zap.String("hash", out.Hash), zap.Uint64("policy_id", id))
	return out, id, nil
}

// PurchasePolicy pays the premium in native tokens and mints the policy NFT.
func (m *Mutations) PurchasePolicy(ctx context.Context, req PurchaseRequest) (PurchaseResult, error) {
	policyID, err := parsePolicyID(req.PolicyID)
	if err != nil {
		return PurchaseResult{}, err
	}
	if strings.TrimSpace(req.MetadataURI) == "" {
		return PurchaseResult{}, fmt.Errorf("%w: metadata uri cannot be empty", soroban.ErrValidation)
	}
	if req.PremiumINR <= 0 {
		return PurchaseResult{}, fmt.Errorf("%w: premium must be positive, got %d", soroban.ErrValidation, req.PremiumINR)
	}
	stroops, err := m.converter.ToStroops(req.PremiumINR)
	if err != nil {
		return PurchaseResult{}, fmt.Errorf("%w: premium: %w", soroban.ErrValidation, err)
	}
	if stroops <= 0 {
		return PurchaseResult{}, fmt.Errorf("%w: premium of %d INR is below one stroop", soroban.ErrValidation, req.PremiumINR)
	}
	user, err := m.invoker.Caller(ctx)
	if err != nil {
		return PurchaseResult{}, err
	}

	m.logger.Info("purchasing policy",
		zap.Uint64("policy_id", policyID),
		zap.Int64("premium_inr", req.PremiumINR),
		zap.String("premium_xlm", currency.FormatXLM(stroops)),
	)
	out, err := m.invoker.Invoke(ctx, "purchase_policy",
		scval.Address(user),
		scval.U64(policyID),
		scval.String(req.MetadataURI),
		scval.I64(stroops),
		scval.Address(m.nativeToken),
		scval.String(req.Holder.Name),
		scval.U64(req.Holder.Age),
		scval.String(req.Holder.Gender),
		scval.String(req.Holder.BloodGroup),
	)
	return PurchaseResult{Outcome: out, PolicyID: policyID, PaymentStroop: stroops, PaymentINR: req.PremiumINR}, err
}

// FileClaim files a claim against a purchased policy. ExpectedStatus is what the contract assigns
// for the score; ClaimAmount is the policy coverage.
func (m *Mutations) FileClaim(ctx context.Context, req ClaimRequest) (ClaimResult, error) {
	policyID, err := parsePolicyID(req.PolicyID)
	if err != nil {
		return ClaimResult{}, err
	}
	expected, err := ClaimStatusForScore(req.AggregateScore)
	if err != nil {
		return ClaimResult{}, err
	}
	score, err := safe.Uint32(req.AggregateScore)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("%w: aggregate score: %v", soroban.ErrValidation, err)
	}
	user, err := m.invoker.Caller(ctx)
	if err != nil {
		return ClaimResult{}, err
	}

	m.logger.Info("filing claim",
		zap.Uint64("policy_id", policyID),
		zap.Int("aggregate_score", req.AggregateScore),
		zap.Stringer("expected_status", expected),
	)
	ev := req.Evidence
	out, err := m.invoker.Invoke(ctx, "claim_policy",
		scval.Address(user),
		scval.U64(policyID),
		scval.U32(score),
		scval.Address(m.nativeToken),
		scval.String(ev.AbhaID),
		scval.String(ev.IPFSCID),
		scval.String(ev.OracleRequestID),
		scval.String(ev.Description),
		scval.String(ev.HospitalName),
	)
	res := ClaimResult{Outcome: out, PolicyID: policyID, ExpectedStatus: expected}
	if err != nil {
		return res, err
	}
	res.ClaimAmount = m.coverage(ctx, policyID)
	return res, nil
}

// ApproveClaim approves a pending claim as the connected admin.
func (m *Mutations) ApproveClaim(ctx context.Context, claimID uint64) (invoker.Outcome, error) {
	if claimID == 0 {
		return invoker.Outcome{}, fmt.Errorf("%w: claim id must be positive", soroban.ErrValidation)
	}
	admin, err := m.invoker.Caller(ctx)
	if err != nil {
		return invoker.Outcome{}, err
	}
	return m.invoker.Invoke(ctx, "approve_claim",
		scval.Address(admin),
		scval.U64(claimID),
		scval.Address(m.nativeToken),
	)
}

// coverage looks up the claimed policy. The claim is already on chain, so a failed lookup only
// loses the amount.
func (m *Mutations) coverage(ctx context.Context, policyID uint64) scval.Int128 {
	policies, err := m.policies.AllPolicies(ctx)
	if err != nil {
		m.logger.Warn("claim amount lookup failed", zap.Uint64("policy_id", policyID), zap.Error(err))
		return scval.Int128{}
	}
	for _, p := range policies {
		if p.ID == policyID {
			return p.CoverageAmount
		}
	}
	return scval.Int128{}
}

func parsePolicyID(s string) (uint64, error) {
	id, err := safe.ParsePositiveUint64(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid policy id %q: %w", soroban.ErrValidation, s, err)
	}
	return id, nil
}
