package math

import (
	"math"
	"math/big"
	"strconv"
)

// Precision is the number of decimals used for displayed values.
const Precision = 3

// NOTE : beyond this magnitude fixed notation is not used for display, values are kept as is.
const fixedLimit = 1e21

// Format formats a float with the display precision.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', Precision, 64)
}

// Round rounds the value to the given number of decimals.
// The decimal closest to the exact binary value is picked,
// exact ties are resolved away from zero.
// Non-finite values are returned unchanged.
func Round(f float64, decimals int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= fixedLimit {
		return f
	}
	if up, ok := tie(f, decimals); ok {
		return up
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', decimals, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// tie checks if the value lies exactly in the middle of two decimals
// and returns the one further away from zero.
// NOTE : strconv rounds such ties to even, which is not what we want here.
func tie(f float64, decimals int) (float64, bool) {
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	x := new(big.Float).SetPrec(512).SetFloat64(math.Abs(f))
	x.Mul(x, scale)
	i, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(512).Sub(x, new(big.Float).SetInt(i))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return 0, false
	}
	up := new(big.Float).SetPrec(512).SetInt(i.Add(i, big.NewInt(1)))
	up.Quo(up, scale)
	v, _ := up.Float64()
	return math.Copysign(v, f), true
}

// Finite checks that the value is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
