package scval

import (
	"fmt"

	"github.com/stellar/go/xdr"
)

// Record reads typed fields out of a contracttype struct (an ScMap keyed by symbols).
// The first failure is kept and later reads become no-ops, so callers read every field and
// check Err once.
type Record struct {
	name   string
	fields map[string]xdr.ScVal
	err    error
}

// NewRecord validates that v is a struct and indexes its fields. name labels errors.
func NewRecord(name string, v xdr.ScVal) *Record {
	r := &Record{name: name, fields: map[string]xdr.ScVal{}}
	entries, err := mapEntries(v)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", name, err)
		return r
	}
	for _, e := range entries {
		key, err := keyName(e.Key)
		if err != nil {
			r.err = fmt.Errorf("%s: %w", name, err)
			return r
		}
		r.fields[key] = e.Val
	}
	return r
}

// Err returns the first decoding failure.
func (r *Record) Err() error { return r.err }

// Has reports whether the struct carries key.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

func (r *Record) field(key string, want xdr.ScValType) (xdr.ScVal, bool) {
	if r.err != nil {
		return xdr.ScVal{}, false
	}
	v, ok := r.fields[key]
	if !ok {
		r.err = fmt.Errorf("%s: %w: missing field %s", r.name, errDecode, key)
		return xdr.ScVal{}, false
	}
	if v.Type != want {
		r.err = fmt.Errorf("%s: %w: field %s is %s, want %s", r.name, errDecode, key, v.Type, want)
		return xdr.ScVal{}, false
	}
	return v, true
}

func (r *Record) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: field %s: %w", r.name, key, err)
	}
}

// Uint32 reads a u32 field.
func (r *Record) Uint32(key string) uint32 {
	v, ok := r.field(key, xdr.ScValTypeScvU32)
	if !ok {
		return 0
	}
	n, err := AsUint32(v)
	if err != nil {
		r.fail(key, err)
	}
	return n
}

// Uint64 reads a u64 field.
func (r *Record) Uint64(key string) uint64 {
	v, ok := r.field(key, xdr.ScValTypeScvU64)
	if !ok {
		return 0
	}
	n, err := AsUint64(v)
	if err != nil {
		r.fail(key, err)
	}
	return n
}

// Int128 reads an i128 field.
func (r *Record) Int128(key string) Int128 {
	v, ok := r.field(key, xdr.ScValTypeScvI128)
	if !ok {
		return Int128{}
	}
	n, err := AsInt128(v)
	if err != nil {
		r.fail(key, err)
	}
	return n
}

// String reads a string field.
func (r *Record) String(key string) string {
	v, ok := r.field(key, xdr.ScValTypeScvString)
	if !ok {
		return ""
	}
	s, err := AsString(v)
	if err != nil {
		r.fail(key, err)
	}
	return s
}

// Address reads an address field as a strkey.
func (r *Record) Address(key string) string {
	v, ok := r.field(key, xdr.ScValTypeScvAddress)
	if !ok {
		return ""
	}
	s, err := AsAddress(v)
	if err != nil {
		r.fail(key, err)
	}
	return s
}

// Bool reads a bool field.
func (r *Record) Bool(key string) bool {
	v, ok := r.field(key, xdr.ScValTypeScvBool)
	if !ok {
		return false
	}
	b, err := AsBool(v)
	if err != nil {
		r.fail(key, err)
	}
	return b
}

// AsUint32 reads a u32 value.
func AsUint32(v xdr.ScVal) (uint32, error) {
	if v.Type != xdr.ScValTypeScvU32 || v.U32 == nil {
		return 0, fmt.Errorf("%w: expected u32, got %s", errDecode, v.Type)
	}
	return uint32(*v.U32), nil
}

// AsUint64 reads a u64 value.
func AsUint64(v xdr.ScVal) (uint64, error) {
	if v.Type != xdr.ScValTypeScvU64 || v.U64 == nil {
		return 0, fmt.Errorf("%w: expected u64, got %s", errDecode, v.Type)
	}
	return uint64(*v.U64), nil
}

// AsInt128 reads an i128 value.
func AsInt128(v xdr.ScVal) (Int128, error) {
	if v.Type != xdr.ScValTypeScvI128 || v.I128 == nil {
		return Int128{}, fmt.Errorf("%w: expected i128, got %s", errDecode, v.Type)
	}
	return int128FromParts(*v.I128), nil
}

// AsString reads a string value.
func AsString(v xdr.ScVal) (string, error) {
	if v.Type != xdr.ScValTypeScvString || v.Str == nil {
		return "", fmt.Errorf("%w: expected string, got %s", errDecode, v.Type)
	}
	return string(*v.Str), nil
}

// AsAddress reads an address value as a strkey.
func AsAddress(v xdr.ScVal) (string, error) {
	if v.Type != xdr.ScValTypeScvAddress || v.Address == nil {
		return "", fmt.Errorf("%w: expected address, got %s", errDecode, v.Type)
	}
	return decodeAddress(*v.Address)
}

// AsBool reads a bool value.
func AsBool(v xdr.ScVal) (bool, error) {
	if v.Type != xdr.ScValTypeScvBool || v.B == nil {
		return false, fmt.Errorf("%w: expected bool, got %s", errDecode, v.Type)
	}
	return *v.B, nil
}

// AsVec returns the elements of a vector value.
func AsVec(v xdr.ScVal) ([]xdr.ScVal, error) {
	items, err := vecItems(v)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AsStrings reads a vector of strings.
func AsStrings(v xdr.ScVal) ([]string, error) {
	items, err := AsVec(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, err := AsString(item)
		if err != nil {
			return nil, fmt.Errorf("vec[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// IsVoid reports whether v is the unit value a contract returns for Option::None.
func IsVoid(v xdr.ScVal) bool {
	return v.Type == xdr.ScValTypeScvVoid
}
