package insurance

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
	"github.com/stellar/go/xdr"
)

func decodePolicy(v xdr.ScVal) (Policy, error) {
	r := scval.NewRecord("Policy", v)
	p := Policy{
		ID:                r.Uint64("policy_id"),
		Title:             r.String("title"),
		Description:       r.String("description"),
		Type:              PolicyType(r.Uint32("policy_type")),
		MonthlyPremium:    r.Int128("monthly_premium"),
		YearlyPremium:     r.Int128("yearly_premium"),
		CoverageAmount:    r.Int128("coverage_amount"),
		MinAge:            r.Uint64("min_age"),
		MaxAge:            r.Uint64("max_age"),
		DurationDays:      r.Uint64("duration_days"),
		WaitingPeriodDays: r.Uint64("waiting_period_days"),
		CreatedAt:         r.Uint64("created_at"),
		CreatedBy:         r.Address("created_by"),
	}
	return p, r.Err()
}

// userPolicyDecoder derives Status from the active flag and the expiry compared to now.
func userPolicyDecoder(now time.Time) func(xdr.ScVal) (UserPolicy, error) {
	return func(v xdr.ScVal) (UserPolicy, error) {
		r := scval.NewRecord("UserPolicy", v)
		p := UserPolicy{
			PolicyID:         r.Uint64("policy_id"),
			UserAddress:      r.Address("user_address"),
			PurchaseDate:     r.Uint64("purchase_date"),
			ExpiryDate:       r.Uint64("expiry_date"),
			PremiumPaid:      r.Int128("premium_paid_xlm"),
			MonthlyPremium:   r.Int128("monthly_premium_xlm"),
			Active:           r.Bool("active"),
			TokenID:          r.String("token_id"),
			MetadataURI:      r.String("metadata_uri"),
			EscrowID:         r.Uint64("escrow_id"),
			HolderName:       r.String("holder_name"),
			HolderAge:        r.Uint64("holder_age"),
			HolderGender:     r.String("holder_gender"),
			HolderBloodGroup: r.String("holder_blood_group"),
		}
		if err := r.Err(); err != nil {
			return UserPolicy{}, err
		}
		p.Status = policyStatus(p.Active, p.ExpiryDate, now)
		return p, nil
	}
}

func policyStatus(active bool, expiry uint64, now time.Time) PolicyStatus {
	if !active {
		return PolicyStatusExpired
	}
	if secs, err := safe.Uint64(now.Unix()); err == nil && secs > expiry {
		return PolicyStatusExpired
	}
	return PolicyStatusActive
}

func decodeClaim(v xdr.ScVal) (Claim, error) {
	r := scval.NewRecord("PolicyClaim", v)
	c := Claim{
		ID:              r.Uint64("claim_id"),
		PolicyID:        r.Uint64("policy_id"),
		UserAddress:     r.Address("user_address"),
		Amount:          r.Int128("claim_amount"),
		AggregateScore:  r.Uint32("aggregate_score"),
		Status:          ClaimStatus(r.Uint32("status")),
		ClaimedAt:       r.Uint64("claimed_at"),
		ProcessedAt:     r.Uint64("processed_at"),
		AbhaID:          r.String("abha_id"),
		IPFSCID:         r.String("ipfs_cid"),
		OracleRequestID: r.String("oracle_request_id"),
		Description:     r.String("claim_description"),
		HospitalName:    r.String("hospital_name"),
	}
	return c, r.Err()
}

func decodeNFTMetadata(v xdr.ScVal) (NFTMetadata, error) {
	r := scval.NewRecord("PolicyNFTMetadata", v)
	m := NFTMetadata{
		Name:             r.String("name"),
		Description:      r.String("description"),
		ImageURI:         r.String("image_uri"),
		CoverageAmount:   r.Int128("coverage_amount"),
		ValidityStart:    r.Uint64("validity_start"),
		ValidityEnd:      r.Uint64("validity_end"),
		PremiumAmount:    r.Int128("premium_amount"),
		PolicyType:       PolicyType(r.Uint32("policy_type")),
		HolderName:       r.String("holder_name"),
		HolderAge:        r.Uint64("holder_age"),
		HolderGender:     r.String("holder_gender"),
		HolderBloodGroup: r.String("holder_blood_group"),
	}
	return m, r.Err()
}

func decodeUser(v xdr.ScVal) (User, error) {
	r := scval.NewRecord("User", v)
	u := User{
		Wallet:       r.Address("wallet"),
		Role:         Role(r.Uint32("role")),
		Registered:   r.Bool("registered"),
		Name:         r.String("name"),
		Location:     r.String("location"),
		Contact:      r.String("contact"),
		RegisteredAt: r.Uint64("registered_at"),
	}
	return u, r.Err()
}

// decodeClaimStatus reads the (status, amount, score) tuple.
func decodeClaimStatus(v xdr.ScVal) (ClaimStatusSnapshot, error) {
	items, err := scval.AsVec(v)
	if err != nil {
		return ClaimStatusSnapshot{}, fmt.Errorf("claim status: %w", err)
	}
	if len(items) != 3 {
		return ClaimStatusSnapshot{}, fmt.Errorf("claim status: expected 3 values, got %d", len(items))
	}
	status, err := scval.AsUint32(items[0])
	if err != nil {
		return ClaimStatusSnapshot{}, fmt.Errorf("claim status: %w", err)
	}
	amount, err := scval.AsInt128(items[1])
	if err != nil {
		return ClaimStatusSnapshot{}, fmt.Errorf("claim amount: %w", err)
	}
	score, err := scval.AsUint32(items[2])
	if err != nil {
		return ClaimStatusSnapshot{}, fmt.Errorf("claim score: %w", err)
	}
	return ClaimStatusSnapshot{Status: ClaimStatus(status), Amount: amount, Score: score}, nil
}

func decodeList[T any](v xdr.ScVal, decode func(xdr.ScVal) (T, error)) ([]T, error) {
	items, err := scval.AsVec(v)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		decoded, err := decode(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, decoded)
	}
	return out, nil
}

// decodeOption treats void as Option::None.
func decodeOption[T any](v xdr.ScVal, decode func(xdr.ScVal) (T, error)) (*T, error) {
	if scval.IsVoid(v) {
		return nil, nil
	}
	decoded, err := decode(v)
	if err != nil {
		return nil, err
	}
	return &decoded, nil
}
