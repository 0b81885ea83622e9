package duration

// Label describes how one unit is rendered.
type Label struct {
	Default   string           // default form, used unless an override matches
	Compact   string           // abbreviated form, appended without a separator
	Overrides map[int64]string // exact-count forms, e.g. 1 -> singular
}

// LabelTable maps canonical units to label descriptors. Tables handed to a
// Formatter are read-only for its lifetime.
type LabelTable map[Unit]Label

// EnglishLabels returns a copy of the built-in English table.
func EnglishLabels() LabelTable {
	out := make(LabelTable, len(english))
	for u, l := range english {
		out[u] = l
	}
	return out
}

var english = LabelTable{
	TeraYear:    {Default: "tera-years", Compact: "ty", Overrides: map[int64]string{1: "tera-year"}},
	GigaYear:    {Default: "giga-years", Compact: "gy", Overrides: map[int64]string{1: "giga-year"}},
	MegaYear:    {Default: "mega-years", Compact: "my", Overrides: map[int64]string{1: "mega-year"}},
	Millennium:  {Default: "millennia", Compact: "ky", Overrides: map[int64]string{1: "millennium"}},
	Century:     {Default: "centuries", Compact: "c", Overrides: map[int64]string{1: "century"}},
	Decade:      {Default: "decades", Compact: "dec", Overrides: map[int64]string{1: "decade"}},
	Year:        {Default: "years", Compact: "y", Overrides: map[int64]string{1: "year"}},
	Month:       {Default: "months", Compact: "mo", Overrides: map[int64]string{1: "month"}},
	Week:        {Default: "weeks", Compact: "w", Overrides: map[int64]string{1: "week"}},
	Day:         {Default: "days", Compact: "d", Overrides: map[int64]string{1: "day"}},
	Hour:        {Default: "hours", Compact: "h", Overrides: map[int64]string{1: "hour"}},
	Minute:      {Default: "minutes", Compact: "m", Overrides: map[int64]string{1: "minute"}},
	Second:      {Default: "seconds", Compact: "s", Overrides: map[int64]string{1: "second"}},
	Millisecond: {Default: "milliseconds", Compact: "ms", Overrides: map[int64]string{1: "millisecond"}},
	Microsecond: {Default: "microseconds", Compact: "μs", Overrides: map[int64]string{1: "microsecond"}},
	Nanosecond:  {Default: "nanoseconds", Compact: "ns", Overrides: map[int64]string{1: "nanosecond"}},
}
