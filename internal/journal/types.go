package journal

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository persists journal entries.
	Repository interface {
		InsertInvocations(ctx context.Context, entries []Entry) error
	}
)
