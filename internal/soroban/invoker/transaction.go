package invoker

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban/rpc"
	"github.com/stellar/go/txnbuild"
	"github.com/stellar/go/xdr"
)

func (c *Client) invokeOp(function string, args []xdr.ScVal, auth []xdr.SorobanAuthorizationEntry, ext xdr.TransactionExt) *txnbuild.InvokeHostFunction {
	return &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: c.contract,
				FunctionName:    xdr.ScSymbol(function),
				Args:            xdr.ScVec(args),
			},
		},
		Auth: auth,
		Ext:  ext,
	}
}

// buildTransaction wraps op in a transaction from source. source is taken by value so the
// draft and the prepared transaction consume the same sequence number.
func (c *Client) buildTransaction(source txnbuild.SimpleAccount, op *txnbuild.InvokeHostFunction, fee int64, timeout time.Duration) (*txnbuild.Transaction, error) {
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &source,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              fee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(timeout / time.Second)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build %s transaction: %w", op.HostFunction.InvokeContract.FunctionName, err)
	}
	return tx, nil
}

// assemble turns a simulation into the transaction extension and authorization entries the
// prepared transaction must carry. The declared resource fee is raised to the simulated
// minimum when the server reported a larger one.
func assemble(sim rpc.SimulateTransactionResponse) (xdr.TransactionExt, []xdr.SorobanAuthorizationEntry, error) {
	if sim.Error != "" {
		return xdr.TransactionExt{}, nil, fmt.Errorf("%w: %s", soroban.ErrSimulationFailed, sim.Error)
	}
	if sim.RestorePreamble != nil {
		return xdr.TransactionExt{}, nil, fmt.Errorf("%w: archived ledger entries must be restored first", soroban.ErrSimulationFailed)
	}
	if sim.TransactionData == "" {
		return xdr.TransactionExt{}, nil, fmt.Errorf("%w: simulation returned no transaction data", soroban.ErrSimulationFailed)
	}

	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(sim.TransactionData, &data); err != nil {
		return xdr.TransactionExt{}, nil, fmt.Errorf("%w: decode transaction data: %v", soroban.ErrSimulationFailed, err)
	}
	if int64(data.ResourceFee) < sim.MinResourceFee {
		data.ResourceFee = xdr.Int64(sim.MinResourceFee)
	}

	var auth []xdr.SorobanAuthorizationEntry
	if len(sim.Results) > 0 {
		for i, raw := range sim.Results[0].Auth {
			var entry xdr.SorobanAuthorizationEntry
			if err := xdr.SafeUnmarshalBase64(raw, &entry); err != nil {
				return xdr.TransactionExt{}, nil, fmt.Errorf("%w: decode auth entry %d: %v", soroban.ErrSimulationFailed, i, err)
			}
			auth = append(auth, entry)
		}
	}
	return xdr.TransactionExt{V: 1, SorobanData: &data}, auth, nil
}

// returnValue extracts the contract return value from base64 TransactionMeta. Protocol 23
// networks emit V4 meta, where the value is optional; older ledgers carry V3.
func returnValue(metaXDR string) (xdr.ScVal, bool, error) {
	if metaXDR == "" {
		return xdr.ScVal{}, false, nil
	}
	var meta xdr.TransactionMeta
	if err := xdr.SafeUnmarshalBase64(metaXDR, &meta); err != nil {
		return xdr.ScVal{}, false, err
	}
	switch meta.V {
	case 4:
		v4 := meta.MustV4()
		if v4.SorobanMeta == nil || v4.SorobanMeta.ReturnValue == nil {
			return xdr.ScVal{}, false, nil
		}
		return *v4.SorobanMeta.ReturnValue, true, nil
	case 3:
		v3 := meta.MustV3()
		if v3.SorobanMeta == nil {
			return xdr.ScVal{}, false, nil
		}
		return v3.SorobanMeta.ReturnValue, true, nil
	default:
		return xdr.ScVal{}, false, nil
	}
}

// describeResult renders the result code of a base64 TransactionResult, or nothing when it
// cannot be read.
func describeResult(resultXDR string) string {
	if resultXDR == "" {
		return ""
	}
	var res xdr.TransactionResult
	if err := xdr.SafeUnmarshalBase64(resultXDR, &res); err != nil {
		return ""
	}
	return ": " + res.Result.Code.String()
}
