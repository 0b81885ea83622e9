package duration

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// floorDiv returns the floored quotient of a/b and the matching remainder,
// so that a = q*b + r with 0 <= r < b for positive b. It differs from
// QuoRem for negative a, which truncates toward zero.
func floorDiv(a, b decimal.Decimal) (q, r decimal.Decimal) {
	q, r = a.QuoRem(b, 0)
	if r.IsNegative() {
		q = q.Sub(one)
		r = r.Add(b)
	}
	return q, r
}

// scientific renders d exactly in mantissa-times-power-of-ten notation,
// e.g. "3.661e+6". Zero renders as "0e+0".
func scientific(d decimal.Decimal) string {
	if d.IsZero() {
		return "0e+0"
	}
	digits := new(big.Int).Abs(d.Coefficient()).String()
	exp := int(d.Exponent()) + len(digits) - 1
	digits = strings.TrimRight(digits, "0")
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	}
	if d.IsNegative() {
		mantissa = "-" + mantissa
	}
	return fmt.Sprintf("%se%+d", mantissa, exp)
}

// baseTwo renders the whole part of a non-negative d as a base-2 digit
// string.
func baseTwo(d decimal.Decimal) string {
	return d.BigInt().Text(2)
}
