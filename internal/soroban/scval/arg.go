// Package scval converts between typed contract arguments and Soroban ScVal values.
package scval

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goodnatureofminers/trustlynk-backend/internal/soroban"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

var errDecode = errors.New("decode scval")

// IsDecodeError reports whether err came from ScVal decoding.
func IsDecodeError(err error) bool {
	return errors.Is(err, errDecode)
}

// Kind identifies the contract type an Arg encodes to.
type Kind int

// Supported argument kinds.
const (
	KindAddress Kind = iota + 1
	KindU32
	KindU64
	KindI128
	KindString
	KindSymbol
	KindBool
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI128:
		return "i128"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindBool:
		return "bool"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field is a named member of a struct argument.
type Field struct {
	Name  string
	Value Arg
}

// Arg is a typed contract argument.
type Arg struct {
	kind   Kind
	text   string
	num    uint64
	i128   Int128
	flag   bool
	fields []Field
}

// Address builds an address argument from a G... account or C... contract strkey.
func Address(s string) Arg { return Arg{kind: KindAddress, text: strings.TrimSpace(s)} }

// U32 builds an unsigned 32-bit argument.
func U32(v uint32) Arg { return Arg{kind: KindU32, num: uint64(v)} }

// U64 builds an unsigned 64-bit argument.
func U64(v uint64) Arg { return Arg{kind: KindU64, num: v} }

// I128 builds a signed 128-bit argument.
func I128(v Int128) Arg { return Arg{kind: KindI128, i128: v} }

// I64 builds a signed 128-bit argument from an int64.
func I64(v int64) Arg { return I128(Int128FromInt64(v)) }

// String builds a string argument.
func String(s string) Arg { return Arg{kind: KindString, text: s} }

// Symbol builds a symbol argument.
func Symbol(s string) Arg { return Arg{kind: KindSymbol, text: s} }

// Bool builds a boolean argument.
func Bool(b bool) Arg { return Arg{kind: KindBool, flag: b} }

// Struct builds a contracttype struct argument. Fields are encoded as a map sorted by name.
func Struct(fields ...Field) Arg { return Arg{kind: KindStruct, fields: fields} }

// Kind returns the argument kind.
func (a Arg) Kind() Kind { return a.kind }

// Text returns the address, string or symbol payload.
func (a Arg) Text() string { return a.text }

// Uint returns the u32 or u64 payload.
func (a Arg) Uint() uint64 { return a.num }

// Int128 returns the i128 payload.
func (a Arg) Int128() Int128 { return a.i128 }

// Flag returns the bool payload.
func (a Arg) Flag() bool { return a.flag }

// Fields returns the struct members.
func (a Arg) Fields() []Field { return a.fields }

// Equal reports whether two arguments carry the same kind and value.
func (a Arg) Equal(b Arg) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindAddress, KindString, KindSymbol:
		return a.text == b.text
	case KindU32, KindU64:
		return a.num == b.num
	case KindI128:
		return a.i128 == b.i128
	case KindBool:
		return a.flag == b.flag
	case KindStruct:
		if len(a.fields) != len(b.fields) {
			return false
		}
		af, bf := sortedFields(a.fields), sortedFields(b.fields)
		for i := range af {
			if af[i].Name != bf[i].Name || !af[i].Value.Equal(bf[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (a Arg) String() string {
	switch a.kind {
	case KindAddress, KindString, KindSymbol:
		return fmt.Sprintf("%s(%q)", a.kind, a.text)
	case KindU32, KindU64:
		return fmt.Sprintf("%s(%d)", a.kind, a.num)
	case KindI128:
		return fmt.Sprintf("i128(%s)", a.i128)
	case KindBool:
		return fmt.Sprintf("bool(%t)", a.flag)
	case KindStruct:
		parts := make([]string, 0, len(a.fields))
		for _, f := range sortedFields(a.fields) {
			parts = append(parts, f.Name+": "+f.Value.String())
		}
		return "struct{" + strings.Join(parts, ", ") + "}"
	default:
		return a.kind.String()
	}
}

// Encode converts a to its ScVal representation.
func Encode(a Arg) (xdr.ScVal, error) {
	switch a.kind {
	case KindAddress:
		addr, err := encodeAddress(a.text)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
	case KindU32:
		v := xdr.Uint32(a.num)
		return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &v}, nil
	case KindU64:
		v := xdr.Uint64(a.num)
		return xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &v}, nil
	case KindI128:
		v := a.i128.parts()
		return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &v}, nil
	case KindString:
		v := xdr.ScString(a.text)
		return xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &v}, nil
	case KindSymbol:
		if a.text == "" {
			return xdr.ScVal{}, fmt.Errorf("%w: empty symbol", soroban.ErrValidation)
		}
		v := xdr.ScSymbol(a.text)
		return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &v}, nil
	case KindBool:
		v := a.flag
		return xdr.ScVal{Type: xdr.ScValTypeScvBool, B: &v}, nil
	case KindStruct:
		return encodeStruct(a.fields)
	default:
		return xdr.ScVal{}, fmt.Errorf("%w: unsupported argument kind %s", soroban.ErrValidation, a.kind)
	}
}

// EncodeAll encodes args in order.
func EncodeAll(args ...Arg) ([]xdr.ScVal, error) {
	out := make([]xdr.ScVal, 0, len(args))
	for i, a := range args {
		v, err := Encode(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a.kind, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Decode converts v back into an Arg. Vectors, bytes and wider numeric types are not
// argument kinds and are rejected.
func Decode(v xdr.ScVal) (Arg, error) {
	switch v.Type {
	case xdr.ScValTypeScvAddress:
		if v.Address == nil {
			return Arg{}, fmt.Errorf("%w: address body missing", errDecode)
		}
		s, err := decodeAddress(*v.Address)
		if err != nil {
			return Arg{}, err
		}
		return Address(s), nil
	case xdr.ScValTypeScvU32:
		if v.U32 == nil {
			return Arg{}, fmt.Errorf("%w: u32 body missing", errDecode)
		}
		return U32(uint32(*v.U32)), nil
	case xdr.ScValTypeScvU64:
		if v.U64 == nil {
			return Arg{}, fmt.Errorf("%w: u64 body missing", errDecode)
		}
		return U64(uint64(*v.U64)), nil
	case xdr.ScValTypeScvI128:
		if v.I128 == nil {
			return Arg{}, fmt.Errorf("%w: i128 body missing", errDecode)
		}
		return I128(int128FromParts(*v.I128)), nil
	case xdr.ScValTypeScvString:
		if v.Str == nil {
			return Arg{}, fmt.Errorf("%w: string body missing", errDecode)
		}
		return String(string(*v.Str)), nil
	case xdr.ScValTypeScvSymbol:
		if v.Sym == nil {
			return Arg{}, fmt.Errorf("%w: symbol body missing", errDecode)
		}
		return Symbol(string(*v.Sym)), nil
	case xdr.ScValTypeScvBool:
		if v.B == nil {
			return Arg{}, fmt.Errorf("%w: bool body missing", errDecode)
		}
		return Bool(*v.B), nil
	case xdr.ScValTypeScvMap:
		entries, err := mapEntries(v)
		if err != nil {
			return Arg{}, err
		}
		fields := make([]Field, 0, len(entries))
		for _, e := range entries {
			name, err := keyName(e.Key)
			if err != nil {
				return Arg{}, err
			}
			val, err := Decode(e.Val)
			if err != nil {
				return Arg{}, fmt.Errorf("field %s: %w", name, err)
			}
			fields = append(fields, Field{Name: name, Value: val})
		}
		return Struct(fields...), nil
	default:
		return Arg{}, fmt.Errorf("%w: %s is not an argument type", errDecode, v.Type)
	}
}

func encodeStruct(fields []Field) (xdr.ScVal, error) {
	sorted := sortedFields(fields)
	m := make(xdr.ScMap, 0, len(sorted))
	for i, f := range sorted {
		if f.Name == "" {
			return xdr.ScVal{}, fmt.Errorf("%w: struct field with empty name", soroban.ErrValidation)
		}
		if i > 0 && sorted[i-1].Name == f.Name {
			return xdr.ScVal{}, fmt.Errorf("%w: duplicate struct field %s", soroban.ErrValidation, f.Name)
		}
		key, err := Encode(Symbol(f.Name))
		if err != nil {
			return xdr.ScVal{}, err
		}
		val, err := Encode(f.Value)
		if err != nil {
			return xdr.ScVal{}, fmt.Errorf("field %s: %w", f.Name, err)
		}
		m = append(m, xdr.ScMapEntry{Key: key, Val: val})
	}
	mp := &m
	return xdr.ScVal{Type: xdr.ScValTypeScvMap, Map: &mp}, nil
}

func sortedFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func encodeAddress(s string) (xdr.ScAddress, error) {
	if err := soroban.ValidateAddress(s); err != nil {
		return xdr.ScAddress{}, err
	}
	if strkey.IsValidEd25519PublicKey(s) {
		aid, err := xdr.AddressToAccountId(s)
		if err != nil {
			return xdr.ScAddress{}, fmt.Errorf("%w: %v", soroban.ErrValidation, err)
		}
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &aid}, nil
	}
	raw, err := strkey.Decode(strkey.VersionByteContract, s)
	if err != nil {
		return xdr.ScAddress{}, fmt.Errorf("%w: %v", soroban.ErrValidation, err)
	}
	var id xdr.ContractId
	if len(raw) != len(id) {
		return xdr.ScAddress{}, fmt.Errorf("%w: contract id has %d bytes", soroban.ErrValidation, len(raw))
	}
	copy(id[:], raw)
	return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &id}, nil
}

func decodeAddress(a xdr.ScAddress) (string, error) {
	switch a.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if a.AccountId == nil {
			return "", fmt.Errorf("%w: account id missing", errDecode)
		}
		s, err := a.AccountId.GetAddress()
		if err != nil {
			return "", fmt.Errorf("%w: %v", errDecode, err)
		}
		return s, nil
	case xdr.ScAddressTypeScAddressTypeContract:
		if a.ContractId == nil {
			return "", fmt.Errorf("%w: contract id missing", errDecode)
		}
		id := *a.ContractId
		s, err := strkey.Encode(strkey.VersionByteContract, id[:])
		if err != nil {
			return "", fmt.Errorf("%w: %v", errDecode, err)
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown address type %d", errDecode, a.Type)
	}
}

func mapEntries(v xdr.ScVal) (xdr.ScMap, error) {
	if v.Type != xdr.ScValTypeScvMap {
		return nil, fmt.Errorf("%w: expected map, got %s", errDecode, v.Type)
	}
	if v.Map == nil || *v.Map == nil {
		return nil, nil
	}
	return **v.Map, nil
}

func vecItems(v xdr.ScVal) (xdr.ScVec, error) {
	if v.Type != xdr.ScValTypeScvVec {
		return nil, fmt.Errorf("%w: expected vec, got %s", errDecode, v.Type)
	}
	if v.Vec == nil || *v.Vec == nil {
		return nil, nil
	}
	return **v.Vec, nil
}

func keyName(k xdr.ScVal) (string, error) {
	switch k.Type {
	case xdr.ScValTypeScvSymbol:
		if k.Sym != nil {
			return string(*k.Sym), nil
		}
	case xdr.ScValTypeScvString:
		if k.Str != nil {
			return string(*k.Str), nil
		}
	}
	return "", fmt.Errorf("%w: map key %s is not a name", errDecode, k.Type)
}
