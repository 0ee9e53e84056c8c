package checkout

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// MinorUnits converts a dollar price into cents, rounding half away from
// zero. The multiplication happens in decimal arithmetic: 19.995 * 100 is
// exactly 1999.5 and rounds to 2000, where float64 math would produce
// 1999.4999... and round down.
func MinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(oneHundred).Round(0).IntPart()
}
