package duration

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Standalone articles read as a quantity of one: "a day", "an hour".
	articleRe = regexp.MustCompile(`\b(a|an)\b`)

	// A quantity (optional sign, digits, optional fraction, optional
	// exponent) followed by an optional run of unit letters. The letter
	// class includes the Greek mu for "μs".
	tokenRe = regexp.MustCompile(`([+-]?\d+(?:\.\d+)?(?:e[+-]?\d+)?)\s*([a-zμ]*)`)
)

// Parse extracts every quantity-unit pair from free-form text and folds
// them into a single exact magnitude. Parsing is greedy and tolerant:
// commas are stripped, fragments without a leading quantity are skipped,
// and tokens with an unrecognized unit alias are dropped. Only when no
// token at all resolves does it fail, with ErrInvalidPattern.
//
//	Parse("3 days, 4hrs and 5 mins")
//	Parse("1h30m")
//	Parse("a day")
//	Parse("1.5e3 ms")
func Parse(text string) (Duration, error) {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, ",", "")
	s = articleRe.ReplaceAllString(s, "1")

	total := decimal.Zero
	tallies := make(map[Unit]decimal.Decimal)
	matched := false
	for _, m := range tokenRe.FindAllStringSubmatch(s, -1) {
		qty, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		unit, ok := Resolve(m[2])
		if !ok {
			continue
		}
		total = total.Add(qty.Mul(unit.Magnitude()))
		tallies[unit] = tallies[unit].Add(qty)
		matched = true
	}
	if !matched {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidPattern, text)
	}
	return Duration{mag: total, tallies: tallies, valid: true}, nil
}
