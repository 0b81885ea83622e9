package duration

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func fromString(t *testing.T, s string) Duration {
	t.Helper()
	return FromDecimal(decimal.RequireFromString(s))
}

// year + month + week + day + hour, five nonzero units.
const fiveUnitSpan = "34882200000"

func TestVerbose(t *testing.T) {
	f := NewFormatter(nil)
	tests := []struct {
		name string
		mag  string
		opts Options
		want string
	}{
		{name: "three units", mag: "273900000", want: "3 days 4 hours 5 minutes"},
		{name: "zero", mag: "0", want: "0 nanoseconds"},
		{name: "singular override", mag: "3600000", want: "1 hour"},
		{name: "plural default", mag: "7200000", want: "2 hours"},
		{name: "precision cap", mag: fiveUnitSpan, opts: Options{Precision: 2}, want: "1 year 1 month"},
		{name: "full span", mag: fiveUnitSpan, want: "1 year 1 month 1 week 1 day 1 hour"},
		{name: "thousands grouping", mag: "157788000000000000000000000", want: "5,000 tera-years"},
		{name: "custom entry separator", mag: "273900000", opts: Options{RightSep: ", "}, want: "3 days, 4 hours, 5 minutes"},
		{name: "negative", mag: "-5400000", want: "-1 hour 30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Verbose(fromString(t, tt.mag), tt.opts)
			if err != nil {
				t.Fatalf("Verbose error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Verbose(%s) = %q, want %q", tt.mag, got, tt.want)
			}
		})
	}
}

func TestVerboseNegativeMatchesAbsolute(t *testing.T) {
	f := NewFormatter(nil)
	for _, mag := range []string{"1", "5400000", fiveUnitSpan} {
		pos, err := f.Verbose(fromString(t, mag), Options{})
		if err != nil {
			t.Fatalf("Verbose error = %v", err)
		}
		neg, err := f.Verbose(fromString(t, "-"+mag), Options{})
		if err != nil {
			t.Fatalf("Verbose error = %v", err)
		}
		if neg != "-"+pos {
			t.Errorf("Verbose(-%s) = %q, want %q", mag, neg, "-"+pos)
		}
	}
}

func TestElegant(t *testing.T) {
	f := NewFormatter(nil)
	tests := []struct {
		mag  string
		want string
	}{
		{mag: "273900000", want: "3 days, 4 hours and 5 minutes"},
		{mag: "5400000", want: "1 hour and 30 minutes"},
		{mag: "3600000", want: "1 hour"},
		{mag: "0", want: "0 nanoseconds"},
		{mag: "-5400000", want: "-1 hour and 30 minutes"},
	}

	for _, tt := range tests {
		got, err := f.Elegant(fromString(t, tt.mag), Options{})
		if err != nil {
			t.Fatalf("Elegant error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Elegant(%s) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestCompact(t *testing.T) {
	f := NewFormatter(nil)
	tests := []struct {
		name string
		mag  string
		opts Options
		want string
	}{
		{name: "three units", mag: "273900000", want: "3d 4h 5m"},
		{name: "zero", mag: "0", want: "0"},
		{name: "no precision cap", mag: "1001.002", want: "1s 1ms 2μs"},
		{name: "custom separator", mag: "90061000", opts: Options{CompactSep: "+"}, want: "1d+1h+1m+1s"},
		{name: "negative", mag: "-5400000", want: "-1h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Compact(fromString(t, tt.mag), tt.opts)
			if err != nil {
				t.Fatalf("Compact error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compact(%s) = %q, want %q", tt.mag, got, tt.want)
			}
		})
	}
}

func TestColon(t *testing.T) {
	f := NewFormatter(nil)
	tests := []struct {
		mag  string
		want string
	}{
		{mag: "3661000", want: "01:01:01"},
		{mag: "360000000", want: "100:00:00"},
		{mag: "0", want: "00:00:00"},
		{mag: "59999", want: "00:00:59"},
		{mag: "-3661000", want: "-01:01:01"},
	}

	for _, tt := range tests {
		got, err := f.Colon(fromString(t, tt.mag))
		if err != nil {
			t.Fatalf("Colon error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Colon(%s) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestScientificFormatter(t *testing.T) {
	f := NewFormatter(nil)
	d, err := Parse("1h1m1s")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	got, err := f.Scientific(d)
	if err != nil {
		t.Fatalf("Scientific error = %v", err)
	}
	if want := "3.661e+6"; got != want {
		t.Errorf("Scientific = %q, want %q", got, want)
	}
}

func TestBinary(t *testing.T) {
	f := NewFormatter(nil)
	tests := []struct {
		mag  string
		want string
	}{
		{mag: "5000", want: "101"},
		{mag: "5999", want: "101"}, // sub-second remainder discarded
		{mag: "999", want: "0"},
		{mag: "0", want: "0"},
		{mag: "-5000", want: "-101"},
		{mag: "-999", want: "0"},
	}

	for _, tt := range tests {
		got, err := f.Binary(fromString(t, tt.mag))
		if err != nil {
			t.Fatalf("Binary error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Binary(%s) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestBreakdown(t *testing.T) {
	f := NewFormatter(nil)
	counts, err := f.Breakdown(fromString(t, fiveUnitSpan))
	if err != nil {
		t.Fatalf("Breakdown error = %v", err)
	}
	if len(counts) != 16 {
		t.Fatalf("Breakdown has %d keys, want 16", len(counts))
	}

	one := decimal.NewFromInt(1)
	for _, u := range Units() {
		want := decimal.Zero
		switch u {
		case Year, Month, Week, Day, Hour:
			want = one
		}
		if !counts[u].Equal(want) {
			t.Errorf("Breakdown[%v] = %s, want %s", u, counts[u], want)
		}
	}
}

func TestBreakdownReconstructs(t *testing.T) {
	f := NewFormatter(nil)
	for _, mag := range []string{"0", "273900000", fiveUnitSpan, "123456789.654321"} {
		d := fromString(t, mag)
		counts, err := f.Breakdown(d)
		if err != nil {
			t.Fatalf("Breakdown error = %v", err)
		}
		sum := decimal.Zero
		for u, c := range counts {
			sum = sum.Add(c.Mul(u.Magnitude()))
		}
		if want := d.Magnitude().Abs(); !sum.Equal(want) {
			t.Errorf("Breakdown(%s) reconstructs to %s, want %s", mag, sum, want)
		}
	}
}

func TestBreakdownDiscardsSign(t *testing.T) {
	f := NewFormatter(nil)
	pos, err := f.Breakdown(fromString(t, "3600000"))
	if err != nil {
		t.Fatalf("Breakdown error = %v", err)
	}
	neg, err := f.Breakdown(fromString(t, "-3600000"))
	if err != nil {
		t.Fatalf("Breakdown error = %v", err)
	}
	for _, u := range Units() {
		if !pos[u].Equal(neg[u]) {
			t.Errorf("Breakdown sign mismatch at %v: %s vs %s", u, pos[u], neg[u])
		}
	}
}

func TestDecompositionInvariant(t *testing.T) {
	mags := []string{"0", "1", "999.999999", "273900000", fiveUnitSpan, "157788000000000000000000000"}
	for _, mag := range mags {
		m := decimal.RequireFromString(mag)
		terms := decompose(m, 0)

		sum := decimal.Zero
		prev := Unit(-1)
		for _, tm := range terms {
			if tm.count.IsZero() {
				t.Errorf("decompose(%s) emitted a zero count for %v", mag, tm.unit)
			}
			if tm.unit <= prev {
				t.Errorf("decompose(%s) units not strictly decreasing at %v", mag, tm.unit)
			}
			prev = tm.unit
			sum = sum.Add(tm.count.Mul(tm.unit.Magnitude()))
		}
		if !sum.Equal(m) {
			t.Errorf("decompose(%s) sums to %s", mag, sum)
		}
	}
}

func TestInvalidDuration(t *testing.T) {
	f := NewFormatter(nil)
	var zero Duration

	if _, err := f.Verbose(zero, Options{}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Verbose error = %v, want ErrInvalidDuration", err)
	}
	if _, err := f.Elegant(zero, Options{}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Elegant error = %v, want ErrInvalidDuration", err)
	}
	if _, err := f.Compact(zero, Options{}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Compact error = %v, want ErrInvalidDuration", err)
	}
	if _, err := f.Colon(zero); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Colon error = %v, want ErrInvalidDuration", err)
	}
	if _, err := f.Scientific(zero); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Scientific error = %v, want ErrInvalidDuration", err)
	}
	if _, err := f.Binary(zero); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Binary error = %v, want ErrInvalidDuration", err)
	}
	if _, err := f.Breakdown(zero); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Breakdown error = %v, want ErrInvalidDuration", err)
	}
}

func TestFromFloat(t *testing.T) {
	if _, err := FromFloat(math.NaN()); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("FromFloat(NaN) error = %v, want ErrInvalidDuration", err)
	}
	if _, err := FromFloat(math.Inf(1)); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("FromFloat(+Inf) error = %v, want ErrInvalidDuration", err)
	}
	d, err := FromFloat(1500.5)
	if err != nil {
		t.Fatalf("FromFloat error = %v", err)
	}
	if want := decimal.RequireFromString("1500.5"); !d.Magnitude().Equal(want) {
		t.Errorf("FromFloat(1500.5) = %s", d.Magnitude())
	}
}

func TestLabelTableOverride(t *testing.T) {
	f := NewFormatter(LabelTable{
		Day: {Default: "días", Compact: "D", Overrides: map[int64]string{1: "día"}},
	})

	got, err := f.Verbose(fromString(t, "259200000"), Options{})
	if err != nil {
		t.Fatalf("Verbose error = %v", err)
	}
	if want := "3 días"; got != want {
		t.Errorf("Verbose = %q, want %q", got, want)
	}

	got, err = f.Verbose(fromString(t, "86400000"), Options{})
	if err != nil {
		t.Fatalf("Verbose error = %v", err)
	}
	if want := "1 día"; got != want {
		t.Errorf("Verbose = %q, want %q", got, want)
	}

	// Units missing from a partial table fall back to English.
	got, err = f.Verbose(fromString(t, "3600000"), Options{})
	if err != nil {
		t.Fatalf("Verbose error = %v", err)
	}
	if want := "1 hour"; got != want {
		t.Errorf("Verbose = %q, want %q", got, want)
	}

	got, err = f.Compact(fromString(t, "86400000"), Options{})
	if err != nil {
		t.Fatalf("Compact error = %v", err)
	}
	if want := "1D"; got != want {
		t.Errorf("Compact = %q, want %q", got, want)
	}
}
