package insurance

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
)

// Links embedded in every policy NFT document.
const (
	PolicyNFTImage       = "https://trustlynk.io/policy-nft.png"
	PolicyExternalURLFmt = "https://trustlynk.io/policy/%d"
	CollectionName       = "TrustLynk Insurance Policies"
	CollectionFamily     = "TrustLynk"
)

// MetadataAttribute is one trait of an NFT metadata document.
type MetadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// MetadataCollection groups TrustLynk NFTs in marketplaces.
type MetadataCollection struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

// MetadataDocument is the JSON document a policy's metadata URI points to.
type MetadataDocument struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	ExternalURL string              `json:"external_url"`
	Attributes  []MetadataAttribute `json:"attributes"`
	Collection  MetadataCollection  `json:"collection"`
}

// PolicyMetadata builds the NFT document for policy bought by holderAddress. Holder traits are
// added when holder is non-nil.
func PolicyMetadata(policy Policy, holderAddress string, holder *HolderDetails) MetadataDocument {
	attrs := []MetadataAttribute{
		{TraitType: "Coverage", Value: policy.CoverageAmount.String() + " INR"},
		{TraitType: "Premium", Value: policy.YearlyPremium.String() + " INR/year"},
		{TraitType: "Policy Type", Value: policy.Type.String()},
		{TraitType: "Duration", Value: fmt.Sprintf("%d days", policy.DurationDays)},
		{TraitType: "Minimum Age", Value: policy.MinAge},
		{TraitType: "Maximum Age", Value: policy.MaxAge},
		{TraitType: "Policyholder", Value: holderAddress},
		{TraitType: "Created At", Value: formatDate(policy.CreatedAt)},
	}
	if holder != nil {
		attrs = append(attrs,
			MetadataAttribute{TraitType: "Holder Name", Value: holder.Name},
			MetadataAttribute{TraitType: "Holder Age", Value: strconv.FormatUint(holder.Age, 10)},
			MetadataAttribute{TraitType: "Holder Gender", Value: holder.Gender},
			MetadataAttribute{TraitType: "Holder Blood Group", Value: holder.BloodGroup},
		)
	}
	return MetadataDocument{
		Name:        fmt.Sprintf("%s #%d", policy.Title, policy.ID),
		Description: policy.Description + " - NFT Certificate for TrustLynk Insurance Policy",
		Image:       PolicyNFTImage,
		ExternalURL: fmt.Sprintf(PolicyExternalURLFmt, policy.ID),
		Attributes:  attrs,
		Collection:  MetadataCollection{Name: CollectionName, Family: CollectionFamily},
	}
}

func formatDate(unix uint64) string {
	secs, err := safe.Int64(unix)
	if err != nil || secs > 1<<62 {
		return "unknown"
	}
	return time.Unix(secs, 0).UTC().Format(time.DateOnly)
}
