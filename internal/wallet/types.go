package wallet

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Approver decides whether a signature request may proceed.
	Approver interface {
		Approve(ctx context.Context, req SignRequest) (bool, error)
	}
)

// SignRequest describes a transaction awaiting the holder's confirmation.
type SignRequest struct {
	Address     string
	Passphrase  string
	Hash        string
	Operations  int
	Fee         int64
	EnvelopeXDR string
}

// ApproverFunc adapts a function to Approver.
type ApproverFunc func(ctx context.Context, req SignRequest) (bool, error)

// Approve calls f.
func (f ApproverFunc) Approve(ctx context.Context, req SignRequest) (bool, error) {
	return f(ctx, req)
}

// AutoApprove approves every request. Suitable for unattended service keys.
var AutoApprove = ApproverFunc(func(context.Context, SignRequest) (bool, error) { return true, nil })
