package main

import (
	"fmt"

	"github.com/goodnatureofminers/trustlynk-backend/internal/currency"
	"github.com/goodnatureofminers/trustlynk-backend/internal/insurance"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
)

type outcomeView struct {
	Hash   string         `json:"hash"`
	Status invoker.Status `json:"status"`
	Polls  int            `json:"polls"`
	Ledger uint32         `json:"ledger,omitempty"`
	Result any            `json:"result,omitempty"`
}

func viewOutcome(out invoker.Outcome) outcomeView {
	return outcomeView{
		Hash:   out.Hash,
		Status: out.Status,
		Polls:  out.Polls,
		Ledger: out.Ledger,
		Result: out.Result,
	}
}

type registerCommand struct {
	*session `no-flag:"true"`
	Role     string `long:"role" choice:"admin" choice:"policyholder" required:"true" description:"role to register as"`
}

func (c *registerCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	var out invoker.Outcome
	switch c.Role {
	case "admin":
		out, err = client.Mutations.RegisterAsAdmin(c.ctx)
	default:
		out, err = client.Mutations.RegisterAsPolicyholder(c.ctx)
	}
	if err != nil {
		return err
	}
	return c.print(viewOutcome(out))
}

type createPolicyCommand struct {
	*session       `no-flag:"true"`
	Title          string `long:"title" required:"true" description:"policy title"`
	Description    string `long:"description" description:"policy description"`
	Type           string `long:"type" default:"health" description:"policy type: health, life, auto, home, travel or 1-5"`
	MonthlyPremium string `long:"monthly-premium" required:"true" description:"monthly premium in stroops"`
	YearlyPremium  string `long:"yearly-premium" required:"true" description:"yearly premium in stroops"`
	Coverage       string `long:"coverage" required:"true" description:"coverage amount in stroops"`
	MinAge         uint64 `long:"min-age" default:"18" description:"minimum holder age"`
	MaxAge         uint64 `long:"max-age" default:"65" description:"maximum holder age"`
	DurationDays   uint64 `long:"duration-days" default:"365" description:"policy duration"`
	WaitingDays    uint64 `long:"waiting-days" default:"30" description:"waiting period before claims"`
}

func (c *createPolicyCommand) params() (insurance.PolicyParams, error) {
	policyType, err := insurance.ParsePolicyType(c.Type)
	if err != nil {
		return insurance.PolicyParams{}, err
	}
	p := insurance.PolicyParams{
		Title:             c.Title,
		Description:       c.Description,
		Type:              policyType,
		MinAge:            c.MinAge,
		MaxAge:            c.MaxAge,
		DurationDays:      c.DurationDays,
		WaitingPeriodDays: c.WaitingDays,
	}
	amounts := []struct {
		name string
		raw  string
		dst  *scval.Int128
	}{
		{"monthly premium", c.MonthlyPremium, &p.MonthlyPremium},
		{"yearly premium", c.YearlyPremium, &p.YearlyPremium},
		{"coverage", c.Coverage, &p.CoverageAmount},
	}
	for _, a := range amounts {
		if err := a.dst.UnmarshalText([]byte(a.raw)); err != nil {
			return insurance.PolicyParams{}, fmt.Errorf("%w: %s: %w", soroban.ErrValidation, a.name, err)
		}
	}
	return p, p.Validate()
}

func (c *createPolicyCommand) Execute([]string) error {
	params, err := c.params()
	if err != nil {
		return err
	}
	client, err := c.client()
	if err != nil {
		return err
	}
	out, id, err := client.Mutations.CreatePolicy(c.ctx, params)
	if err != nil {
		return err
	}
	return c.print(struct {
		outcomeView
		PolicyID uint64 `json:"policy_id,string,omitempty"`
	}{viewOutcome(out), id})
}

type holderOptions struct {
	Name       string `long:"holder-name" description:"policyholder name"`
	Age        uint64 `long:"holder-age" description:"policyholder age"`
	Gender     string `long:"holder-gender" description:"policyholder gender"`
	BloodGroup string `long:"holder-blood-group" description:"policyholder blood group"`
}

func (o holderOptions) details() insurance.HolderDetails {
	return insurance.HolderDetails{Name: o.Name, Age: o.Age, Gender: o.Gender, BloodGroup: o.BloodGroup}
}

func (o holderOptions) empty() bool {
	return o == holderOptions{}
}

type purchaseCommand struct {
	*session    `no-flag:"true"`
	PolicyID    string        `long:"policy-id" required:"true" description:"policy to purchase"`
	MetadataURI string        `long:"metadata-uri" required:"true" description:"URI of the published NFT metadata document"`
	PremiumINR  int64         `long:"premium-inr" required:"true" description:"premium charged now, in INR"`
	Holder      holderOptions `group:"holder"`
}

func (c *purchaseCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	res, err := client.Mutations.PurchasePolicy(c.ctx, insurance.PurchaseRequest{
		PolicyID:    c.PolicyID,
		MetadataURI: c.MetadataURI,
		PremiumINR:  c.PremiumINR,
		Holder:      c.Holder.details(),
	})
	if err != nil {
		return err
	}
	return c.print(struct {
		outcomeView
		PolicyID   uint64 `json:"policy_id,string"`
		PaymentINR int64  `json:"payment_inr"`
		PaymentXLM string `json:"payment_xlm"`
	}{viewOutcome(res.Outcome), res.PolicyID, res.PaymentINR, currency.FormatXLM(res.PaymentStroop)})
}

type claimCommand struct {
	*session        `no-flag:"true"`
	PolicyID        string `long:"policy-id" required:"true" description:"purchased policy to claim against"`
	Score           int    `long:"score" required:"true" description:"aggregate fraud score from 0 to 100"`
	AbhaID          string `long:"abha-id" description:"ABHA health id of the patient"`
	IPFSCID         string `long:"ipfs-cid" description:"CID of the uploaded claim documents"`
	OracleRequestID string `long:"oracle-request-id" description:"id of the oracle verification request"`
	Description     string `long:"description" description:"claim description"`
	Hospital        string `long:"hospital" description:"hospital name"`
}

func (c *claimCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	res, err := client.Mutations.FileClaim(c.ctx, insurance.ClaimRequest{
		PolicyID:       c.PolicyID,
		AggregateScore: c.Score,
		Evidence: insurance.ClaimEvidence{
			AbhaID:          c.AbhaID,
			IPFSCID:         c.IPFSCID,
			OracleRequestID: c.OracleRequestID,
			Description:     c.Description,
			HospitalName:    c.Hospital,
		},
	})
	if err != nil {
		return err
	}
	return c.print(struct {
		outcomeView
		PolicyID       uint64       `json:"policy_id,string"`
		ExpectedStatus string       `json:"expected_status"`
		ClaimAmount    scval.Int128 `json:"claim_amount"`
	}{viewOutcome(res.Outcome), res.PolicyID, res.ExpectedStatus.String(), res.ClaimAmount})
}

type approveCommand struct {
	*session `no-flag:"true"`
	ClaimID  uint64 `long:"claim-id" required:"true" description:"pending claim to approve"`
}

func (c *approveCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	out, err := client.Mutations.ApproveClaim(c.ctx, c.ClaimID)
	if err != nil {
		return err
	}
	return c.print(viewOutcome(out))
}
