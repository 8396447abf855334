package scval

import (
	"fmt"
	"math"
	"math/big"

	"github.com/stellar/go/xdr"
)

var (
	two64     = new(big.Int).Lsh(big.NewInt(1), 64)
	two128    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Int128 is a signed 128-bit contract integer in two's-complement halves. It renders as a
// base-10 string in text and JSON so large amounts survive transports limited to doubles.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 widens v.
func Int128FromInt64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// Int128FromBig converts v, failing when it lies outside [-2^127, 2^127).
func Int128FromBig(v *big.Int) (Int128, error) {
	if v == nil {
		return Int128{}, fmt.Errorf("%w: nil i128", errDecode)
	}
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128{}, fmt.Errorf("i128 value %s out of range", v)
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	lo := new(big.Int).And(u, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()
	return Int128{Hi: int64(hi), Lo: lo}, nil
}

// Big returns the value as a big integer.
func (i Int128) Big() *big.Int {
	v := new(big.Int).Mul(big.NewInt(i.Hi), two64)
	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

// Int64 returns the value when it fits int64.
func (i Int128) Int64() (int64, bool) {
	b := i.Big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Sign reports -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

func (i Int128) String() string {
	return i.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Int128) UnmarshalText(text []byte) error {
	v, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		return fmt.Errorf("invalid i128 %q", text)
	}
	parsed, err := Int128FromBig(v)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func (i Int128) parts() xdr.Int128Parts {
	return xdr.Int128Parts{Hi: xdr.Int64(i.Hi), Lo: xdr.Uint64(i.Lo)}
}

func int128FromParts(p xdr.Int128Parts) Int128 {
	return Int128{Hi: int64(p.Hi), Lo: uint64(p.Lo)}
}
