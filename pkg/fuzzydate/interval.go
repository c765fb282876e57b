// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package fuzzydate

// Interval is a pair of fuzzy dates expressing a span, e.g. a person's
// attested lifetime ("attested between X and Y").
type Interval struct {
	Start FuzzyDate `json:"start"`
	End   FuzzyDate `json:"end"`
}

// IsEmpty reports whether both ends of the interval are unknown.
func (i Interval) IsEmpty() bool {
	return i.Start.IsEmpty() && i.End.IsEmpty()
}

// String renders the interval, degrading to a single date when one end is
// unknown.
func (i Interval) String() string {
	switch {
	case i.IsEmpty():
		return ""
	case i.Start.IsEmpty():
		return i.End.String()
	case i.End.IsEmpty():
		return i.Start.String()
	}
	return i.Start.String() + " - " + i.End.String()
}

// SortKey orders intervals by their start; an interval with an unknown
// start falls back to its end. Callers must check [Interval.IsEmpty].
func (i Interval) SortKey() string {
	if key := i.Start.SortKey(); key != "" {
		return key
	}
	return i.End.SortKey()
}
