// Package duration converts between human-entered duration text and exact
// magnitudes, and renders magnitudes back in several human- and
// machine-oriented shapes. All arithmetic is arbitrary-precision decimal:
// magnitudes can reach tera-year scale, far beyond what native integers or
// floats represent exactly. The base unit is the millisecond.
package duration

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPattern reports input text containing no recognizable
	// quantity-unit tokens.
	ErrInvalidPattern = errors.New("not a number")

	// ErrInvalidDuration reports a Duration whose magnitude is not a valid
	// number, e.g. the zero value left behind by a failed parse.
	ErrInvalidDuration = errors.New("invalid duration")
)

// Duration is an exact signed magnitude in milliseconds. It is immutable
// once constructed and safe to share across goroutines. The zero value is
// invalid; construct one with Parse, FromDecimal or FromFloat.
type Duration struct {
	mag     decimal.Decimal
	tallies map[Unit]decimal.Decimal
	valid   bool
}

// FromDecimal wraps an exact millisecond magnitude.
func FromDecimal(mag decimal.Decimal) Duration {
	return Duration{mag: mag, valid: true}
}

// FromFloat converts a float64 millisecond magnitude. NaN and infinities
// fail with ErrInvalidDuration.
func FromFloat(f float64) (Duration, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Duration{}, ErrInvalidDuration
	}
	return FromDecimal(decimal.NewFromFloat(f)), nil
}

// Magnitude returns the magnitude in milliseconds.
func (d Duration) Magnitude() decimal.Decimal {
	return d.mag
}

// Negative reports whether the magnitude is below zero.
func (d Duration) Negative() bool {
	return d.mag.IsNegative()
}

// Valid reports whether the Duration holds a usable magnitude. Rendering
// an invalid Duration fails with ErrInvalidDuration.
func (d Duration) Valid() bool {
	return d.valid
}

// Tally returns the quantity the parser attributed to u, summed over every
// matched token for that unit. It is diagnostic bookkeeping: the magnitude
// is not re-derived from it.
func (d Duration) Tally(u Unit) decimal.Decimal {
	return d.tallies[u]
}

// Tallies returns a copy of every nonzero per-unit parsed quantity.
func (d Duration) Tallies() map[Unit]decimal.Decimal {
	out := make(map[Unit]decimal.Decimal, len(d.tallies))
	for u, q := range d.tallies {
		out[u] = q
	}
	return out
}
