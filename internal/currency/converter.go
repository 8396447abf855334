// Package currency converts between stroops and the display currencies.
package currency

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/trustlynk-backend/pkg/safe"
	"github.com/shopspring/decimal"
)

const (
	// StroopsPerXLM is the number of minor units in one XLM.
	StroopsPerXLM int64 = 10_000_000
	// DefaultINRRate is the fixed INR conversion rate: stroops = inr * StroopsPerXLM / rate.
	DefaultINRRate int64 = 1_000_000
)

// ErrInvalidRate is returned for non-positive conversion rates.
var ErrInvalidRate = errors.New("conversion rate must be positive")

// Converter applies a fixed INR rate. Divisions floor.
type Converter struct {
	rate int64
}

// NewConverter builds a Converter for rate.
func NewConverter(rate int64) (Converter, error) {
	if rate <= 0 {
		return Converter{}, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	return Converter{rate: rate}, nil
}

// Default returns the converter for DefaultINRRate.
func Default() Converter {
	return Converter{rate: DefaultINRRate}
}

// Rate returns the configured INR rate.
func (c Converter) Rate() int64 {
	return c.rate
}

// ToStroops converts an INR amount to stroops.
func (c Converter) ToStroops(inr int64) (int64, error) {
	v, err := safe.MulDiv(inr, StroopsPerXLM, c.rate)
	if err != nil {
		return 0, fmt.Errorf("convert %d INR: %w", inr, err)
	}
	return v, nil
}

// FromStroops converts stroops to INR.
func (c Converter) FromStroops(stroops int64) (int64, error) {
	v, err := safe.MulDiv(stroops, c.rate, StroopsPerXLM)
	if err != nil {
		return 0, fmt.Errorf("convert %d stroops: %w", stroops, err)
	}
	return v, nil
}

// FormatXLM renders stroops as XLM with four decimals, e.g. "12.3456 XLM".
func FormatXLM(stroops int64) string {
	return decimal.New(stroops, -7).StringFixed(4) + " XLM"
}
