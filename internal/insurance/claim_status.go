package insurance

import (
	"fmt"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
)

// ClaimStatus is the processing state of a claim.
type ClaimStatus uint32

// Claim statuses known to the contract.
const (
	ClaimStatusApproved ClaimStatus = 1
	ClaimStatusPending  ClaimStatus = 2
	ClaimStatusRejected ClaimStatus = 3
)

// Fraud score thresholds. Scores at or below AutoApproveMaxScore are approved on filing, scores
// up to ManualReviewMaxScore wait for an admin, anything higher is rejected.
const (
	MinScore             = 0
	AutoApproveMaxScore  = 30
	ManualReviewMaxScore = 70
	MaxScore             = 100
)

func (s ClaimStatus) String() string {
	switch s {
	case ClaimStatusApproved:
		return "Approved"
	case ClaimStatusPending:
		return "Pending Verification"
	case ClaimStatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// ValidateScore checks that score is within [MinScore, MaxScore].
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: aggregate score %d outside [%d, %d]", soroban.ErrValidation, score, MinScore, MaxScore)
	}
	return nil
}

// ClaimStatusForScore maps a fraud score to the status the contract assigns on filing.
func ClaimStatusForScore(score int) (ClaimStatus, error) {
	if err := ValidateScore(score); err != nil {
		return 0, err
	}
	switch {
	case score <= AutoApproveMaxScore:
		return ClaimStatusApproved, nil
	case score <= ManualReviewMaxScore:
		return ClaimStatusPending, nil
	default:
		return ClaimStatusRejected, nil
	}
}
