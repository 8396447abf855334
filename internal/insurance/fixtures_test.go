package insurance

import (
	"testing"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/xdr"
)

var (
	holderAddress = keypair.MustRandom().Address()
	adminAddress  = keypair.MustRandom().Address()
)

func mustEncode(t *testing.T, a scval.Arg) xdr.ScVal {
	t.Helper()
	v, err := scval.Encode(a)
	if err != nil {
		t.Fatalf("Encode(%s) unexpected error: %v", a, err)
	}
	return v
}

func vecOf(items ...xdr.ScVal) xdr.ScVal {
	vec := xdr.ScVec(items)
	vp := &vec
	return xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &vp}
}

func void() xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScValTypeScvVoid}
}

func stringsVal(t *testing.T, items ...string) xdr.ScVal {
	t.Helper()
	vals := make([]xdr.ScVal, 0, len(items))
	for _, s := range items {
		vals = append(vals, mustEncode(t, scval.String(s)))
	}
	return vecOf(vals...)
}

func policyVal(t *testing.T, id uint64, coverage int64) xdr.ScVal {
	t.Helper()
	return mustEncode(t, scval.Struct(
		scval.Field{Name: "policy_id", Value: scval.U64(id)},
		scval.Field{Name: "title", Value: scval.String("Family Health")},
		scval.Field{Name: "description", Value: scval.String("Hospitalisation cover")},
		scval.Field{Name: "policy_type", Value: scval.U32(uint32(PolicyTypeHealth))},
		scval.Field{Name: "monthly_premium", Value: scval.I64(1_000)},
		scval.Field{Name: "yearly_premium", Value: scval.I64(11_000)},
		scval.Field{Name: "coverage_amount", Value: scval.I64(coverage)},
		scval.Field{Name: "min_age", Value: scval.U64(18)},
		scval.Field{Name: "max_age", Value: scval.U64(65)},
		scval.Field{Name: "duration_days", Value: scval.U64(365)},
		scval.Field{Name: "waiting_period_days", Value: scval.U64(30)},
		scval.Field{Name: "created_at", Value: scval.U64(1_700_000_000)},
		scval.Field{Name: "created_by", Value: scval.Address(adminAddress)},
	))
}

func userPolicyVal(t *testing.T, id uint64, active bool, expiry uint64) xdr.ScVal {
	t.Helper()
	return mustEncode(t, scval.Struct(
		scval.Field{Name: "policy_id", Value: scval.U64(id)},
		scval.Field{Name: "user_address", Value: scval.Address(holderAddress)},
		scval.Field{Name: "purchase_date", Value: scval.U64(1_700_000_000)},
		scval.Field{Name: "expiry_date", Value: scval.U64(expiry)},
		scval.Field{Name: "premium_paid_xlm", Value: scval.I64(10_000)},
		scval.Field{Name: "monthly_premium_xlm", Value: scval.I64(10_000)},
		scval.Field{Name: "active", Value: scval.Bool(active)},
		scval.Field{Name: "token_id", Value: scval.String("NFT-1")},
		scval.Field{Name: "metadata_uri", Value: scval.String("ipfs://meta")},
		scval.Field{Name: "escrow_id", Value: scval.U64(3)},
		scval.Field{Name: "holder_name", Value: scval.String("Asha")},
		scval.Field{Name: "holder_age", Value: scval.U64(34)},
		scval.Field{Name: "holder_gender", Value: scval.String("F")},
		scval.Field{Name: "holder_blood_group", Value: scval.String("O+")},
	))
}

func claimVal(t *testing.T, id uint64, score uint32, status ClaimStatus) xdr.ScVal {
	t.Helper()
	return mustEncode(t, scval.Struct(
		scval.Field{Name: "claim_id", Value: scval.U64(id)},
		scval.Field{Name: "policy_id", Value: scval.U64(1)},
		scval.Field{Name: "user_address", Value: scval.Address(holderAddress)},
		scval.Field{Name: "claim_amount", Value: scval.I64(500_000)},
		scval.Field{Name: "aggregate_score", Value: scval.U32(score)},
		scval.Field{Name: "status", Value: scval.U32(uint32(status))},
		scval.Field{Name: "claimed_at", Value: scval.U64(1_700_100_000)},
		scval.Field{Name: "processed_at", Value: scval.U64(0)},
		scval.Field{Name: "abha_id", Value: scval.String("91-1234-5678-9012")},
		scval.Field{Name: "ipfs_cid", Value: scval.String("bafybill")},
		scval.Field{Name: "oracle_request_id", Value: scval.String("req-1")},
		scval.Field{Name: "claim_description", Value: scval.String("appendectomy")},
		scval.Field{Name: "hospital_name", Value: scval.String("City Hospital")},
	))
}

func nftVal(t *testing.T, name string) xdr.ScVal {
	t.Helper()
	return mustEncode(t, scval.Struct(
		scval.Field{Name: "name", Value: scval.String(name)},
		scval.Field{Name: "description", Value: scval.String("certificate")},
		scval.Field{Name: "image_uri", Value: scval.String("https://trustlynk.io/policy-nft.png")},
		scval.Field{Name: "coverage_amount", Value: scval.I64(500_000)},
		scval.Field{Name: "validity_start", Value: scval.U64(1_700_000_000)},
		scval.Field{Name: "validity_end", Value: scval.U64(1_731_536_000)},
		scval.Field{Name: "premium_amount", Value: scval.I64(10_000)},
		scval.Field{Name: "policy_type", Value: scval.U32(uint32(PolicyTypeLife))},
		scval.Field{Name: "holder_name", Value: scval.String("Asha")},
		scval.Field{Name: "holder_age", Value: scval.U64(34)},
		scval.Field{Name: "holder_gender", Value: scval.String("F")},
		scval.Field{Name: "holder_blood_group", Value: scval.String("O+")},
	))
}
