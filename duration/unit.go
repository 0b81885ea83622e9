package duration

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit identifies one of the canonical duration units, ordered from the
// largest magnitude to the smallest.
type Unit int

const (
	TeraYear Unit = iota
	GigaYear
	MegaYear
	Millennium
	Century
	Decade
	Year
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
	numUnits
)

var unitNames = [numUnits]string{
	TeraYear:    "tera-year",
	GigaYear:    "giga-year",
	MegaYear:    "mega-year",
	Millennium:  "millennium",
	Century:     "century",
	Decade:      "decade",
	Year:        "year",
	Month:       "month",
	Week:        "week",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Millisecond: "millisecond",
	Microsecond: "microsecond",
	Nanosecond:  "nanosecond",
}

// String returns the canonical identifier, e.g. "tera-year".
func (u Unit) String() string {
	if u < TeraYear || u >= numUnits {
		return "unknown"
	}
	return unitNames[u]
}

// MarshalText lets Unit serve as a JSON object key.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnitByName maps a canonical identifier back to its Unit.
func UnitByName(name string) (Unit, bool) {
	for u := TeraYear; u < numUnits; u++ {
		if unitNames[u] == name {
			return u, true
		}
	}
	return 0, false
}

// Units returns every canonical unit in descending magnitude order.
func Units() []Unit {
	out := make([]Unit, 0, numUnits)
	for u := TeraYear; u < numUnits; u++ {
		out = append(out, u)
	}
	return out
}

// Magnitudes are exact milliseconds. Months and years are fixed averages:
// a year is 365.25 days and a month is a twelfth of a year. The larger
// units are decimal multiples of the year.
var unitMagnitudes = [numUnits]decimal.Decimal{
	TeraYear:    decimal.RequireFromString("31557600000000000000000"),
	GigaYear:    decimal.RequireFromString("31557600000000000000"),
	MegaYear:    decimal.RequireFromString("31557600000000000"),
	Millennium:  decimal.RequireFromString("31557600000000"),
	Century:     decimal.RequireFromString("3155760000000"),
	Decade:      decimal.RequireFromString("315576000000"),
	Year:        decimal.RequireFromString("31557600000"),
	Month:       decimal.RequireFromString("2629800000"),
	Week:        decimal.RequireFromString("604800000"),
	Day:         decimal.RequireFromString("86400000"),
	Hour:        decimal.RequireFromString("3600000"),
	Minute:      decimal.RequireFromString("60000"),
	Second:      decimal.RequireFromString("1000"),
	Millisecond: decimal.RequireFromString("1"),
	Microsecond: decimal.RequireFromString("0.001"),
	Nanosecond:  decimal.RequireFromString("0.000001"),
}

// Magnitude returns the unit's length in milliseconds.
func (u Unit) Magnitude() decimal.Decimal {
	return unitMagnitudes[u]
}

// Alias resolution is exact-match only: "m" is a minute and "mo" a month,
// and neither ever matches as a prefix of the other.
var aliases = map[string]Unit{
	"ty":           TeraYear,
	"tyr":          TeraYear,
	"teraannum":    TeraYear,
	"terayear":     TeraYear,
	"terayears":    TeraYear,
	"gy":           GigaYear,
	"gyr":          GigaYear,
	"gigaannum":    GigaYear,
	"gigayear":     GigaYear,
	"gigayears":    GigaYear,
	"eon":          GigaYear,
	"eons":         GigaYear,
	"my":           MegaYear,
	"myr":          MegaYear,
	"megaannum":    MegaYear,
	"megayear":     MegaYear,
	"megayears":    MegaYear,
	"ky":           Millennium,
	"kyr":          Millennium,
	"millennium":   Millennium,
	"millennia":    Millennium,
	"c":            Century,
	"century":      Century,
	"centuries":    Century,
	"dec":          Decade,
	"decade":       Decade,
	"decades":      Decade,
	"y":            Year,
	"yr":           Year,
	"yrs":          Year,
	"year":         Year,
	"years":        Year,
	"mo":           Month,
	"mos":          Month,
	"mth":          Month,
	"mths":         Month,
	"month":        Month,
	"months":       Month,
	"w":            Week,
	"wk":           Week,
	"wks":          Week,
	"week":         Week,
	"weeks":        Week,
	"d":            Day,
	"dy":           Day,
	"dys":          Day,
	"day":          Day,
	"days":         Day,
	"h":            Hour,
	"hr":           Hour,
	"hrs":          Hour,
	"hour":         Hour,
	"hours":        Hour,
	"m":            Minute,
	"min":          Minute,
	"mins":         Minute,
	"minutes":      Minute,
	"minute":       Minute,
	"s":            Second,
	"sec":          Second,
	"secs":         Second,
	"second":       Second,
	"seconds":      Second,
	"ms":           Millisecond,
	"msec":         Millisecond,
	"msecs":        Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"us":           Microsecond,
	"μs":           Microsecond,
	"usec":         Microsecond,
	"usecs":        Microsecond,
	"microsecond":  Microsecond,
	"microseconds": Microsecond,
	"ns":           Nanosecond,
	"nsec":         Nanosecond,
	"nsecs":        Nanosecond,
	"nanosecond":   Nanosecond,
	"nanoseconds":  Nanosecond,
}

// Resolve maps a free-text alias token to its canonical unit. Matching is
// case-insensitive on the whole token.
func Resolve(token string) (Unit, bool) {
	u, ok := aliases[strings.ToLower(token)]
	return u, ok
}
