package duration

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Options configures the text renderers. A zero field means its default:
// precision 7 and single-space separators.
type Options struct {
	Precision  int    // max entries emitted by Verbose and Elegant
	LeftSep    string // between a count and its label
	RightSep   string // between entries in Verbose
	CompactSep string // between entries in Compact
}

// DefaultOptions returns the defaults used when a field is left zero.
func DefaultOptions() Options {
	return Options{Precision: 7, LeftSep: " ", RightSep: " ", CompactSep: " "}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Precision <= 0 {
		o.Precision = def.Precision
	}
	if o.LeftSep == "" {
		o.LeftSep = def.LeftSep
	}
	if o.RightSep == "" {
		o.RightSep = def.RightSep
	}
	if o.CompactSep == "" {
		o.CompactSep = def.CompactSep
	}
	return o
}

// Formatter renders duration magnitudes. It is immutable after
// construction and safe for concurrent use.
type Formatter struct {
	labels LabelTable
}

// NewFormatter returns a formatter using the given label table. A nil
// table selects the built-in English one; units missing from a partial
// table fall back to English.
func NewFormatter(labels LabelTable) *Formatter {
	merged := EnglishLabels()
	for u, l := range labels {
		merged[u] = l
	}
	return &Formatter{labels: merged}
}

type term struct {
	count decimal.Decimal // non-negative whole number
	unit  Unit
}

// decompose walks units from largest to smallest over a non-negative
// magnitude, emitting the whole count of each unit that fits into what
// remains. Emitted units strictly decrease and no count is zero; the
// emitted terms plus the final remainder reconstruct the input exactly.
// max caps the number of terms; max <= 0 means no cap.
func decompose(mag decimal.Decimal, max int) []term {
	var terms []term
	remaining := mag
	for u := TeraYear; u < numUnits; u++ {
		if max > 0 && len(terms) >= max {
			break
		}
		count, rest := floorDiv(remaining, u.Magnitude())
		if count.IsZero() {
			continue
		}
		terms = append(terms, term{count: count, unit: u})
		remaining = rest
	}
	return terms
}

func (f *Formatter) label(u Unit, count decimal.Decimal) string {
	l := f.labels[u]
	if c := count.BigInt(); l.Overrides != nil && c.IsInt64() {
		if s, ok := l.Overrides[c.Int64()]; ok {
			return s
		}
	}
	return l.Default
}

// entry renders one term as a grouped count plus its label.
func (f *Formatter) entry(t term, sep string) string {
	return humanize.BigComma(t.count.BigInt()) + sep + f.label(t.unit, t.count)
}

// Verbose renders up to Precision entries of the decomposition with full
// labels, e.g. "3 days 4 hours 5 minutes". Zero renders as "0" with the
// smallest unit's label; a negative magnitude renders its absolute value
// with a leading "-".
func (f *Formatter) Verbose(d Duration, opts Options) (string, error) {
	parts, neg, err := f.verboseParts(d, opts)
	if err != nil {
		return "", err
	}
	o := opts.withDefaults()
	return sign(neg) + strings.Join(parts, o.RightSep), nil
}

// Elegant is Verbose with a natural-language join: entries separated by
// ", " and the last one attached with " and ".
func (f *Formatter) Elegant(d Duration, opts Options) (string, error) {
	parts, neg, err := f.verboseParts(d, opts)
	if err != nil {
		return "", err
	}
	out := parts[len(parts)-1]
	if len(parts) > 1 {
		out = strings.Join(parts[:len(parts)-1], ", ") + " and " + out
	}
	return sign(neg) + out, nil
}

func (f *Formatter) verboseParts(d Duration, opts Options) ([]string, bool, error) {
	if !d.valid {
		return nil, false, ErrInvalidDuration
	}
	o := opts.withDefaults()
	terms := decompose(d.mag.Abs(), o.Precision)
	if len(terms) == 0 {
		return []string{"0" + o.LeftSep + f.labels[Nanosecond].Default}, false, nil
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = f.entry(t, o.LeftSep)
	}
	return parts, d.mag.IsNegative(), nil
}

// Compact renders every nonzero unit down to the smallest with abbreviated
// labels and no separator between number and label, e.g. "3d 4h 5m".
// Zero renders as "0".
func (f *Formatter) Compact(d Duration, opts Options) (string, error) {
	if !d.valid {
		return "", ErrInvalidDuration
	}
	o := opts.withDefaults()
	terms := decompose(d.mag.Abs(), 0)
	if len(terms) == 0 {
		return "0", nil
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.count.String() + f.labels[t.unit].Compact
	}
	return sign(d.mag.IsNegative()) + strings.Join(parts, o.CompactSep), nil
}

// Colon renders the fixed three-field clock form "HH:MM:SS". The hours
// field is never truncated and may exceed two digits.
func (f *Formatter) Colon(d Duration) (string, error) {
	if !d.valid {
		return "", ErrInvalidDuration
	}
	hours, rest := floorDiv(d.mag.Abs(), Hour.Magnitude())
	minutes, rest := floorDiv(rest, Minute.Magnitude())
	seconds, _ := floorDiv(rest, Second.Magnitude())
	out := pad2(hours.String()) + ":" + pad2(minutes.String()) + ":" + pad2(seconds.String())
	return sign(d.mag.IsNegative()) + out, nil
}

// Scientific renders the magnitude in mantissa-times-power-of-ten
// notation, e.g. "3.661e+6".
func (f *Formatter) Scientific(d Duration) (string, error) {
	if !d.valid {
		return "", ErrInvalidDuration
	}
	return scientific(d.mag), nil
}

// Binary renders the whole number of seconds as a base-2 digit string,
// discarding any sub-second remainder. A negative magnitude renders its
// absolute value with a leading "-" unless the result is zero.
func (f *Formatter) Binary(d Duration) (string, error) {
	if !d.valid {
		return "", ErrInvalidDuration
	}
	secs, _ := floorDiv(d.mag.Abs(), Second.Magnitude())
	out := baseTwo(secs)
	if d.mag.IsNegative() && !secs.IsZero() {
		out = "-" + out
	}
	return out, nil
}

// Breakdown returns the full modulo cascade of the magnitude's absolute
// value: every canonical unit mapped to its whole count, zero counts
// included. The sign is discarded; callers that need it check
// Duration.Negative.
func (f *Formatter) Breakdown(d Duration) (map[Unit]decimal.Decimal, error) {
	if !d.valid {
		return nil, ErrInvalidDuration
	}
	out := make(map[Unit]decimal.Decimal, numUnits)
	remaining := d.mag.Abs()
	for u := TeraYear; u < numUnits; u++ {
		count, rest := floorDiv(remaining, u.Magnitude())
		out[u] = count
		remaining = rest
	}
	return out, nil
}

func sign(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
