package insurance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/scval"
)

// Role is the on-chain role of a wallet.
type Role uint32

// Roles known to the contract.
const (
	RoleUnregistered Role = 0
	RolePolicyholder Role = 1
	RoleAdmin        Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleUnregistered:
		return "unregistered"
	case RolePolicyholder:
		return "policyholder"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// PolicyType is the insurance line of a policy.
type PolicyType uint32

// Policy types known to the contract.
const (
	PolicyTypeHealth PolicyType = 1
	PolicyTypeLife   PolicyType = 2
	PolicyTypeAuto   PolicyType = 3
	PolicyTypeHome   PolicyType = 4
	PolicyTypeTravel PolicyType = 5
)

var policyTypeNames = map[PolicyType]string{
	PolicyTypeHealth: "Health",
	PolicyTypeLife:   "Life",
	PolicyTypeAuto:   "Auto",
	PolicyTypeHome:   "Home",
	PolicyTypeTravel: "Travel",
}

func (t PolicyType) String() string {
	if name, ok := policyTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether t is one of the known policy types.
func (t PolicyType) Valid() bool {
	_, ok := policyTypeNames[t]
	return ok
}

// ParsePolicyType accepts a type name in any case or its number.
func ParsePolicyType(s string) (PolicyType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		if t := PolicyType(n); t.Valid() {
			return t, nil
		}
	}
	for t, name := range policyTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown policy type %q", soroban.ErrValidation, s)
}

// Policy is an insurance product offered by the contract.
type Policy struct {
	ID                uint64       `json:"policy_id,string"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Type              PolicyType   `json:"policy_type"`
	MonthlyPremium    scval.Int128 `json:"monthly_premium"`
	YearlyPremium     scval.Int128 `json:"yearly_premium"`
	CoverageAmount    scval.Int128 `json:"coverage_amount"`
	MinAge            uint64       `json:"min_age,string"`
	MaxAge            uint64       `json:"max_age,string"`
	DurationDays      uint64       `json:"duration_days,string"`
	WaitingPeriodDays uint64       `json:"waiting_period_days,string"`
	CreatedAt         uint64       `json:"created_at,string"`
	CreatedBy         string       `json:"created_by"`
}

// PolicyStatus is the client-side state of a purchased policy.
type PolicyStatus string

// Purchased policy states.
const (
	PolicyStatusActive  PolicyStatus = "active"
	PolicyStatusExpired PolicyStatus = "expired"
)

// UserPolicy links a wallet to a purchased policy and its NFT.
type UserPolicy struct {
	PolicyID         uint64       `json:"policy_id,string"`
	UserAddress      string       `json:"user_address"`
	PurchaseDate     uint64       `json:"purchase_date,string"`
	ExpiryDate       uint64       `json:"expiry_date,string"`
	PremiumPaid      scval.Int128 `json:"premium_paid"`
	MonthlyPremium   scval.Int128 `json:"monthly_premium"`
	Active           bool         `json:"active"`
	Status           PolicyStatus `json:"status"`
	TokenID          string       `json:"token_id"`
	MetadataURI      string       `json:"metadata_uri"`
	EscrowID         uint64       `json:"escrow_id,string"`
	HolderName       string       `json:"holder_name"`
	HolderAge        uint64       `json:"holder_age,string"`
	HolderGender     string       `json:"holder_gender"`
	HolderBloodGroup string       `json:"holder_blood_group"`
}

// Claim is a filed insurance claim.
type Claim struct {
	ID              uint64       `json:"claim_id,string"`
	PolicyID        uint64       `json:"policy_id,string"`
	UserAddress     string       `json:"user_address"`
	Amount          scval.Int128 `json:"claim_amount"`
	AggregateScore  uint32       `json:"aggregate_score"`
	Status          ClaimStatus  `json:"status"`
	ClaimedAt       uint64       `json:"claimed_at,string"`
	ProcessedAt     uint64       `json:"processed_at,string"`
	AbhaID          string       `json:"abha_id"`
	IPFSCID         string       `json:"ipfs_cid"`
	OracleRequestID string       `json:"oracle_request_id"`
	Description     string       `json:"claim_description"`
	HospitalName    string       `json:"hospital_name"`
}

// ClaimStatusSnapshot is the compact status view returned by get_claim_status.
type ClaimStatusSnapshot struct {
	Status ClaimStatus  `json:"status"`
	Amount scval.Int128 `json:"amount"`
	Score  uint32       `json:"score"`
}

// NFTMetadata is the on-chain metadata of a policy NFT.
type NFTMetadata struct {
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	ImageURI         string       `json:"image_uri"`
	CoverageAmount   scval.Int128 `json:"coverage_amount"`
	ValidityStart    uint64       `json:"validity_start,string"`
	ValidityEnd      uint64       `json:"validity_end,string"`
	PremiumAmount    scval.Int128 `json:"premium_amount"`
	PolicyType       PolicyType   `json:"policy_type"`
	HolderName       string       `json:"holder_name"`
	HolderAge        uint64       `json:"holder_age,string"`
	HolderGender     string       `json:"holder_gender"`
	HolderBloodGroup string       `json:"holder_blood_group"`
}

// User is a registered wallet.
type User struct {
	Wallet       string `json:"wallet"`
	Role         Role   `json:"role"`
	Registered   bool   `json:"registered"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Contact      string `json:"contact"`
	RegisteredAt uint64 `json:"registered_at,string"`
}

// Overview is everything a dashboard shows for one wallet.
type Overview struct {
	Address  string       `json:"address"`
	Role     Role         `json:"role"`
	Policies []UserPolicy `json:"policies"`
	Claims   []Claim      `json:"claims"`
	Tokens   []string     `json:"tokens"`
}
