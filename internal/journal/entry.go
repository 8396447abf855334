// Package journal keeps an append-only record of contract invocations made by this client.
package journal

import (
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/invoker"
	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
	"github.com/segmentio/ksuid"
)

// Entry is one row of the invocation journal.
type Entry struct {
	ID       string    `json:"id"`
	Function string    `json:"function"`
	Caller   string    `json:"caller"`
	Hash     string    `json:"hash"`
	Status   string    `json:"status"`
	Polls    uint32    `json:"polls"`
	Error    string    `json:"error,omitempty"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// MaxRecentLimit caps how many rows a recent-invocations read returns.
const MaxRecentLimit = 1000

// StatusError marks invocations that failed before a final on-chain status was known.
const StatusError = "error"

// NewEntry converts an invocation into a journal row with a fresh time-ordered id.
func NewEntry(inv invoker.Invocation) Entry {
	e := Entry{
		ID:       ksuid.New().String(),
		Function: inv.Function,
		Caller:   inv.Caller,
		Hash:     inv.Hash,
		Status:   string(inv.Status),
		Started:  inv.Started.UTC(),
		Finished: inv.Finished.UTC(),
	}
	if polls, err := safe.Uint32(inv.Polls); err == nil {
		e.Polls = polls
	}
	if inv.Err != nil {
		e.Error = inv.Err.Error()
	}
	if e.Status == "" {
		e.Status = StatusError
	}
	return e
}
