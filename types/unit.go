package types

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MaxBasisPoints is 100% expressed in basis points.
const MaxBasisPoints uint16 = 10_000

func IsValidBasisPoints(bps uint16) bool {
	return bps <= MaxBasisPoints
}

// BpsToPercent renders basis points as a percentage (e.g. 500 -> "5").
func BpsToPercent(bps uint16) string {
	return decimal.New(int64(bps), -2).String()
}

// PercentToBps parses a percentage with at most two decimal places (e.g. "12.34") into basis points.
func PercentToBps(s string) (uint16, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative percentage: %v", s)
	}
	bps := d.Shift(2)
	if !bps.IsInteger() {
		return 0, fmt.Errorf("too many decimal places: %v", s)
	}
	if bps.GreaterThan(decimal.NewFromInt(math.MaxUint16)) {
		return 0, fmt.Errorf("percentage out of range: %v", s)
	}
	return uint16(bps.IntPart()), nil
}
