package main

import (
	"fmt"

	"github.com/goodnatureofminers/trustlynk-backend/internal/currency"
	"github.com/goodnatureofminers/trustlynk-backend/internal/insurance"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
)

type policiesCommand struct {
	*session `no-flag:"true"`
	ID       uint64 `long:"id" description:"show a single policy"`
}

func (c *policiesCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	if c.ID > 0 {
		policy, err := client.Queries.Policy(c.ctx, c.ID)
		if err != nil {
			return err
		}
		return c.print(policy)
	}
	policies, err := client.Queries.AllPolicies(c.ctx)
	if err != nil {
		return err
	}
	return c.print(policies)
}

type myPoliciesCommand struct {
	*session `no-flag:"true"`
	Address  string `long:"address" description:"account to inspect, defaults to the signing wallet"`
}

func (c *myPoliciesCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	addr, err := c.address(c.Address)
	if err != nil {
		return err
	}
	policies, err := client.Queries.UserPolicies(c.ctx, addr)
	if err != nil {
		return err
	}
	return c.print(policies)
}

type claimsCommand struct {
	*session      `no-flag:"true"`
	Address       string `long:"address" description:"account to inspect, defaults to the signing wallet"`
	All           bool   `long:"all" description:"list every claim (admin view)"`
	ID            uint64 `long:"id" description:"show a single claim"`
	AbhaID        string `long:"abha-id" description:"list claims filed with this ABHA id"`
	OracleRequest string `long:"oracle-request-id" description:"show the claim linked to an oracle request"`
}

func (c *claimsCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	switch {
	case c.ID > 0:
		claim, err := client.Queries.ClaimDetails(c.ctx, c.ID)
		if err != nil {
			return err
		}
		if claim == nil {
			return fmt.Errorf("claim %d: %w", c.ID, insurance.ErrNotFound)
		}
		return c.print(claim)
	case c.OracleRequest != "":
		claim, err := client.Queries.ClaimByOracleRequest(c.ctx, c.OracleRequest)
		if err != nil {
			return err
		}
		if claim == nil {
			return fmt.Errorf("oracle request %s: %w", c.OracleRequest, insurance.ErrNotFound)
		}
		return c.print(claim)
	case c.AbhaID != "":
		claims, err := client.Queries.ClaimsByAbhaID(c.ctx, c.AbhaID)
		if err != nil {
			return err
		}
		return c.print(claims)
	case c.All:
		claims, err := client.Queries.AllClaims(c.ctx)
		if err != nil {
			return err
		}
		return c.print(claims)
	}
	addr, err := c.address(c.Address)
	if err != nil {
		return err
	}
	claims, err := client.Queries.UserClaims(c.ctx, addr)
	if err != nil {
		return err
	}
	return c.print(claims)
}

type claimStatusCommand struct {
	*session `no-flag:"true"`
	ClaimID  uint64 `long:"claim-id" required:"true" description:"claim to inspect"`
}

func (c *claimStatusCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	snap, err := client.Queries.ClaimStatus(c.ctx, c.ClaimID)
	if err != nil {
		return err
	}
	return c.print(struct {
		insurance.ClaimStatusSnapshot
		Label string `json:"label"`
	}{snap, snap.Status.String()})
}

type roleCommand struct {
	*session `no-flag:"true"`
	Address  string `long:"address" description:"account to inspect, defaults to the signing wallet"`
}

func (c *roleCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	addr, err := c.address(c.Address)
	if err != nil {
		return err
	}
	role, err := client.Queries.UserRole(c.ctx, addr)
	if err != nil {
		return err
	}
	admin, err := client.Queries.IsAdmin(c.ctx, addr)
	if err != nil {
		return err
	}
	return c.print(struct {
		Address string `json:"address"`
		Role    string `json:"role"`
		IsAdmin bool   `json:"is_admin"`
	}{addr, role.String(), admin})
}

type userCommand struct {
	*session `no-flag:"true"`
	Address  string `long:"address" description:"account to inspect, defaults to the signing wallet"`
}

func (c *userCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	addr, err := c.address(c.Address)
	if err != nil {
		return err
	}
	user, err := client.Queries.UserInfo(c.ctx, addr)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("account %s: %w", addr, insurance.ErrNotFound)
	}
	return c.print(user)
}

type tokensCommand struct {
	*session `no-flag:"true"`
	Address  string `long:"address" description:"account to inspect, defaults to the signing wallet"`
	PolicyID uint64 `long:"policy-id" description:"list the NFTs minted for a policy instead"`
	Metadata bool   `long:"metadata" description:"load the metadata of every token"`
}

func (c *tokensCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	var tokens []string
	if c.PolicyID > 0 {
		tokens, err = client.Queries.PolicyTokens(c.ctx, c.PolicyID)
	} else {
		var addr string
		if addr, err = c.address(c.Address); err != nil {
			return err
		}
		tokens, err = client.Queries.UserTokens(c.ctx, addr)
	}
	if err != nil {
		return err
	}
	if !c.Metadata {
		return c.print(tokens)
	}
	nfts, err := client.Queries.PolicyNFTs(c.ctx, tokens)
	if err != nil {
		return err
	}
	return c.print(nfts)
}

type nftCommand struct {
	*session `no-flag:"true"`
	TokenID  string `long:"token-id" required:"true" description:"NFT token id"`
}

func (c *nftCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	meta, err := client.Queries.NFTMetadata(c.ctx, c.TokenID)
	if err != nil {
		return err
	}
	if meta == nil {
		return fmt.Errorf("token %s: %w", c.TokenID, insurance.ErrNotFound)
	}
	return c.print(meta)
}

type overviewCommand struct {
	*session `no-flag:"true"`
	Address  string `long:"address" description:"account to inspect, defaults to the signing wallet"`
}

func (c *overviewCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	addr, err := c.address(c.Address)
	if err != nil {
		return err
	}
	overview, err := client.Queries.Overview(c.ctx, addr)
	if err != nil {
		return err
	}
	return c.print(overview)
}

type statsCommand struct {
	*session `no-flag:"true"`
}

func (c *statsCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	initialized, err := client.Queries.IsInitialized(c.ctx)
	if err != nil {
		return err
	}
	treasury, err := client.Queries.Treasury(c.ctx)
	if err != nil {
		return err
	}
	total, err := client.Queries.TotalTokens(c.ctx)
	if err != nil {
		return err
	}
	treasuryXLM := ""
	if stroops, ok := treasury.Int64(); ok {
		treasuryXLM = currency.FormatXLM(stroops)
	}
	return c.print(struct {
		Initialized bool   `json:"initialized"`
		Treasury    string `json:"treasury_stroops"`
		TreasuryXLM string `json:"treasury_xlm,omitempty"`
		TotalTokens uint64 `json:"total_tokens,string"`
	}{initialized, treasury.String(), treasuryXLM, total})
}

type metadataCommand struct {
	*session `no-flag:"true"`
	PolicyID uint64        `long:"policy-id" required:"true" description:"policy being purchased"`
	Address  string        `long:"address" description:"buyer account, defaults to the signing wallet"`
	Holder   holderOptions `group:"holder"`
}

func (c *metadataCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}
	policy, err := client.Queries.Policy(c.ctx, c.PolicyID)
	if err != nil {
		return err
	}
	addr, err := c.address(c.Address)
	if err != nil {
		return err
	}
	var holder *insurance.HolderDetails
	if !c.Holder.empty() {
		d := c.Holder.details()
		holder = &d
	}
	return c.print(insurance.PolicyMetadata(policy, addr, holder))
}

type convertCommand struct {
	*session `no-flag:"true"`
	INR      int64 `long:"inr" description:"convert an INR amount to stroops"`
	Stroops  int64 `long:"stroops" description:"convert a stroop amount to INR"`
}

func (c *convertCommand) Execute([]string) error {
	if (c.INR == 0) == (c.Stroops == 0) {
		return fmt.Errorf("%w: pass exactly one of --inr and --stroops", soroban.ErrValidation)
	}
	converter, err := currency.NewConverter(c.opts.Contract.INRRate)
	if err != nil {
		return err
	}
	inr, stroops := c.INR, c.Stroops
	if inr != 0 {
		stroops, err = converter.ToStroops(inr)
	} else {
		inr, err = converter.FromStroops(stroops)
	}
	if err != nil {
		return err
	}
	return c.print(struct {
		INR     int64  `json:"inr"`
		Stroops int64  `json:"stroops"`
		XLM     string `json:"xlm"`
		Rate    int64  `json:"inr_per_xlm"`
	}{inr, stroops, currency.FormatXLM(stroops), converter.Rate()})
}

type historyCommand struct {
	*session `no-flag:"true"`
	Address  string `long:"address" description:"only invocations signed by this account"`
	Limit    int    `long:"limit" default:"20" description:"rows to show"`
}

func (c *historyCommand) Execute([]string) error {
	repo, err := c.journal()
	if err != nil {
		return err
	}
	entries, err := repo.RecentInvocations(c.ctx, c.Address, c.Limit)
	if err != nil {
		return err
	}
	return c.print(entries)
}
