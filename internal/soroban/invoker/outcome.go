package invoker

import (
	"time"

	"github.com/stellar/go/xdr"
)

// Status is the final state of a submitted invocation.
type Status string

// Invocation statuses.
const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	// StatusProvisional means the network accepted the transaction but it was not seen in a
	// ledger before the poll budget ran out.
	StatusProvisional Status = "provisional"
)

// Outcome describes a submitted invocation.
type Outcome struct {
	Hash   string
	Status Status
	// ReturnValue is the raw contract return value, nil when unavailable.
	ReturnValue *xdr.ScVal
	// Result is ReturnValue converted to plain Go values, nil when it could not be decoded.
	Result any
	Polls  int
	Ledger uint32
}

// Invocation is what a Recorder receives for every Invoke call, failed or not.
type Invocation struct {
	Function string
	Caller   string
	Hash     string
	Status   Status
	Polls    int
	Err      error
	Started  time.Time
	Finished time.Time
}
