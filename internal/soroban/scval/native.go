package scval

import (
	"fmt"
	"math/big"

	"github.com/stellar/go/xdr"
)

// ToNative converts v into plain Go values: nil for void, bool, uint32, int32, uint64,
// int64, *big.Int for 128-bit integers, []byte, string for strings/symbols/addresses,
// []any for vectors and map[string]any for maps keyed by symbols or strings.
func ToNative(v xdr.ScVal) (any, error) {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil, nil
	case xdr.ScValTypeScvBool:
		if v.B == nil {
			return nil, fmt.Errorf("%w: bool body missing", errDecode)
		}
		return *v.B, nil
	case xdr.ScValTypeScvU32:
		if v.U32 == nil {
			return nil, fmt.Errorf("%w: u32 body missing", errDecode)
		}
		return uint32(*v.U32), nil
	case xdr.ScValTypeScvI32:
		if v.I32 == nil {
			return nil, fmt.Errorf("%w: i32 body missing", errDecode)
		}
		return int32(*v.I32), nil
	case xdr.ScValTypeScvU64:
		if v.U64 == nil {
			return nil, fmt.Errorf("%w: u64 body missing", errDecode)
		}
		return uint64(*v.U64), nil
	case xdr.ScValTypeScvI64:
		if v.I64 == nil {
			return nil, fmt.Errorf("%w: i64 body missing", errDecode)
		}
		return int64(*v.I64), nil
	case xdr.ScValTypeScvTimepoint:
		if v.Timepoint == nil {
			return nil, fmt.Errorf("%w: timepoint body missing", errDecode)
		}
		return uint64(*v.Timepoint), nil
	case xdr.ScValTypeScvDuration:
		if v.Duration == nil {
			return nil, fmt.Errorf("%w: duration body missing", errDecode)
		}
		return uint64(*v.Duration), nil
	case xdr.ScValTypeScvU128:
		if v.U128 == nil {
			return nil, fmt.Errorf("%w: u128 body missing", errDecode)
		}
		hi := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(v.U128.Hi)), 64)
		return hi.Add(hi, new(big.Int).SetUint64(uint64(v.U128.Lo))), nil
	case xdr.ScValTypeScvI128:
		if v.I128 == nil {
			return nil, fmt.Errorf("%w: i128 body missing", errDecode)
		}
		return int128FromParts(*v.I128).Big(), nil
	case xdr.ScValTypeScvBytes:
		if v.Bytes == nil {
			return nil, fmt.Errorf("%w: bytes body missing", errDecode)
		}
		return []byte(*v.Bytes), nil
	case xdr.ScValTypeScvString:
		if v.Str == nil {
			return nil, fmt.Errorf("%w: string body missing", errDecode)
		}
		return string(*v.Str), nil
	case xdr.ScValTypeScvSymbol:
		if v.Sym == nil {
			return nil, fmt.Errorf("%w: symbol body missing", errDecode)
		}
		return string(*v.Sym), nil
	case xdr.ScValTypeScvAddress:
		if v.Address == nil {
			return nil, fmt.Errorf("%w: address body missing", errDecode)
		}
		return decodeAddress(*v.Address)
	case xdr.ScValTypeScvVec:
		items, err := vecItems(v)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			n, err := ToNative(item)
			if err != nil {
				return nil, fmt.Errorf("vec[%d]: %w", i, err)
			}
			out = append(out, n)
		}
		return out, nil
	case xdr.ScValTypeScvMap:
		entries, err := mapEntries(v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			key, err := keyName(e.Key)
			if err != nil {
				return nil, err
			}
			n, err := ToNative(e.Val)
			if err != nil {
				return nil, fmt.Errorf("map[%s]: %w", key, err)
			}
			out[key] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", errDecode, v.Type)
	}
}
