package rpc

// Transaction statuses reported by sendTransaction.
const (
	SendStatusPending       = "PENDING"
	SendStatusDuplicate     = "DUPLICATE"
	SendStatusTryAgainLater = "TRY_AGAIN_LATER"
	SendStatusError         = "ERROR"
)

// Transaction statuses reported by getTransaction.
const (
	TxStatusSuccess  = "SUCCESS"
	TxStatusNotFound = "NOT_FOUND"
	TxStatusFailed   = "FAILED"
)

type transactionParams struct {
	Transaction string `json:"transaction"`
}

type hashParams struct {
	Hash string `json:"hash"`
}

// SimulateHostFunctionResult is the per-invocation part of a simulation.
type SimulateHostFunctionResult struct {
	Auth []string `json:"auth"`
	XDR  string   `json:"xdr"`
}

// RestorePreamble is returned when archived ledger entries must be restored first.
type RestorePreamble struct {
	TransactionData string `json:"transactionData"`
	MinResourceFee  int64  `json:"minResourceFee,string"`
}

// SimulateTransactionResponse is the simulateTransaction result.
type SimulateTransactionResponse struct {
	Error           string                       `json:"error,omitempty"`
	TransactionData string                       `json:"transactionData,omitempty"`
	MinResourceFee  int64                        `json:"minResourceFee,string,omitempty"`
	Results         []SimulateHostFunctionResult `json:"results,omitempty"`
	RestorePreamble *RestorePreamble             `json:"restorePreamble,omitempty"`
	LatestLedger    uint32                       `json:"latestLedger"`
}

// SendTransactionResponse is the sendTransaction result.
type SendTransactionResponse struct {
	Status         string `json:"status"`
	Hash           string `json:"hash"`
	ErrorResultXDR string `json:"errorResultXdr,omitempty"`
	LatestLedger   uint32 `json:"latestLedger"`
}

// GetTransactionResponse is the getTransaction result.
type GetTransactionResponse struct {
	Status        string `json:"status"`
	LatestLedger  uint32 `json:"latestLedger"`
	Ledger        uint32 `json:"ledger,omitempty"`
	EnvelopeXDR   string `json:"envelopeXdr,omitempty"`
	ResultXDR     string `json:"resultXdr,omitempty"`
	ResultMetaXDR string `json:"resultMetaXdr,omitempty"`
}

// GetLatestLedgerResponse is the getLatestLedger result.
type GetLatestLedgerResponse struct {
	ID              string `json:"id"`
	ProtocolVersion int    `json:"protocolVersion"`
	Sequence        uint32 `json:"sequence"`
}

// GetHealthResponse is the getHealth result.
type GetHealthResponse struct {
	Status                string `json:"status"`
	LatestLedger          uint32 `json:"latestLedger"`
	OldestLedger          uint32 `json:"oldestLedger"`
	LedgerRetentionWindow uint32 `json:"ledgerRetentionWindow"`
}
