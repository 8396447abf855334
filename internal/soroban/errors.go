// Package soroban holds the error taxonomy and network settings shared by the contract
// client layers (scval, rpc, wallet, invoker).
package soroban

import "errors"

var (
	// ErrWalletNotConnected means no wallet is available or it returned a blank address.
	ErrWalletNotConnected = errors.New("wallet not connected")
	// ErrSigningRejected means the wallet declined or failed to sign the envelope.
	ErrSigningRejected = errors.New("signing rejected")
	// ErrAccountNotFunded means the source account does not exist on the ledger.
	ErrAccountNotFunded = errors.New("account not found or not funded")
	// ErrSimulationFailed means the RPC could not simulate or prepare the transaction.
	ErrSimulationFailed = errors.New("simulation failed")
	// ErrSubmissionFailed means the RPC refused the signed transaction.
	ErrSubmissionFailed = errors.New("submission failed")
	// ErrTransactionFailed means the transaction was included with a FAILED result.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrValidation marks client-side precondition failures detected before any network I/O.
	ErrValidation = errors.New("validation error")
)
