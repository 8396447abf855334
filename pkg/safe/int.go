// Package safe provides checked integer conversions and arithmetic for values that cross the
// contract boundary (u32/u64/i128 arguments, stroop amounts).
package safe

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Integer lists the integer kinds accepted by the conversion helpers.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// ErrOutOfRange is returned when a value does not fit the requested type.
var ErrOutOfRange = errors.New("value out of range")

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Int64 converts signed or unsigned integers to int64 while guarding against overflow.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit int64", ErrOutOfRange, v)
	}
	return int64(v), nil
}

// ParsePositiveUint64 parses a base-10 identifier and rejects zero, signs and garbage.
func ParsePositiveUint64(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty number")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrOutOfRange, s)
	}
	return v, nil
}

// MulDiv computes floor(v*mul/div) without intermediate overflow and reports when the
// result does not fit int64.
func MulDiv(v, mul, div int64) (int64, error) {
	if div == 0 {
		return 0, errors.New("division by zero")
	}
	n := new(big.Int).Mul(big.NewInt(v), big.NewInt(mul))
	d := big.NewInt(div)
	if div < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	// Euclidean division equals floor division for a positive divisor.
	n.Div(n, d)
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: %d*%d/%d overflows int64", ErrOutOfRange, v, mul, div)
	}
	return n.Int64(), nil
}
