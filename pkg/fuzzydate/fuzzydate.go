// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

/*
Package fuzzydate models historical dates that are only known within bounds.

Medieval and ancient sources rarely give an exact day. A colophon may name a
single day, a watermark may narrow a manuscript to a decade, and many texts
are datable only to a century. One type must degrade smoothly across all of
these precisions without the caller having to branch.

Core Responsibilities:

  - Bounds: A date is a [floor, ceiling] pair; either side may be open.
  - Chronology: BC years are supported via astronomical numbering
    (year 0 = 1 BC, year -99 = 100 BC), so arithmetic stays linear.
  - Rendering: A single formatter picks the narrowest natural-language
    form (century, year, year range, exact day) the bounds allow.
  - Ordering: Sort keys are plain strings so mixed lists of records can
    be ordered lexically without type dispatch.
*/
package fuzzydate

import (
	"fmt"
	"regexp"
	"strconv"
)

// # Calendar Bounds

// Date is a single calendar day used as a fuzzy-date bound.
//
// Year uses astronomical numbering: values <= 0 are BC (0 = 1 BC).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// isYearStart reports whether the date is the first day of its year.
func (d Date) isYearStart() bool { return d.Month == 1 && d.Day == 1 }

// isYearEnd reports whether the date is the last day of its year.
func (d Date) isYearEnd() bool { return d.Month == 12 && d.Day == 31 }

// # Fuzzy Dates

// FuzzyDate is a historical date known only to lie within an optional
// lower/upper bound. Both bounds absent means the date is unknown.
//
// # Precondition
//
// When both bounds are present, Floor must not be after Ceiling. This is
// not enforced at construction; the behaviour of the formatters for an
// inverted range is unspecified.
type FuzzyDate struct {
	Floor   *Date `json:"floor,omitempty"`
	Ceiling *Date `json:"ceiling,omitempty"`
}

// rangePattern matches the canonical two-field range representation,
// e.g. "(1100-01-01,1199-12-31)", "[,1205-12-31)" or "(,)".
// Either bound may be empty. BC bounds carry a leading minus.
var rangePattern = regexp.MustCompile(
	`^[\[(]\s*(-?\d{1,4}-\d{2}-\d{2})?\s*,\s*(-?\d{1,4}-\d{2}-\d{2})?\s*[\])]$`)

// boundPattern splits a single bound into year, month and day groups.
var boundPattern = regexp.MustCompile(`^(-?\d{1,4})-(\d{2})-(\d{2})$`)

// Parse builds a FuzzyDate from the canonical "(floor,ceiling)" range
// string. Input that does not match the expected pattern yields the empty
// (unknown) date: an undatable record is a common, valid case, not an
// error.
func Parse(raw string) FuzzyDate {
	groups := rangePattern.FindStringSubmatch(raw)
	if groups == nil {
		return FuzzyDate{}
	}
	return FuzzyDate{
		Floor:   parseBound(groups[1]),
		Ceiling: parseBound(groups[2]),
	}
}

// parseBound converts one "-?YYYY-MM-DD" group into a Date, or nil when
// the group is empty (open bound).
func parseBound(raw string) *Date {
	if raw == "" {
		return nil
	}
	parts := boundPattern.FindStringSubmatch(raw)
	if parts == nil {
		return nil
	}

	year, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	day, _ := strconv.Atoi(parts[3])
	return &Date{Year: year, Month: month, Day: day}
}

// Canonical renders the date in the "(floor,ceiling)" range form that
// [Parse] accepts, e.g. "(1100-01-01,1199-12-31)" or "(,1205-12-31)".
// The empty date renders as the empty string, which Parse maps back to
// the empty date. This is the persistence form; [FuzzyDate.String] is
// the display form and does not round-trip.
func (f FuzzyDate) Canonical() string {
	if f.IsEmpty() {
		return ""
	}
	return "(" + canonicalBound(f.Floor) + "," + canonicalBound(f.Ceiling) + ")"
}

// canonicalBound renders one bound as "-?YYYY-MM-DD", or "" when open.
func canonicalBound(d *Date) string {
	if d == nil {
		return ""
	}
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsEmpty reports whether the date is fully unknown (both bounds open).
func (f FuzzyDate) IsEmpty() bool {
	return f.Floor == nil && f.Ceiling == nil
}

// # Sort Keys

// SortKey returns the zero-padded "YYYYMMDDYYYYMMDD" concatenation of
// floor and ceiling for lexical ordering.
//
// Callers must check [FuzzyDate.IsEmpty] first: a date with an open bound
// has no defined ordering and yields the empty string.
func (f FuzzyDate) SortKey() string {
	if f.Floor == nil || f.Ceiling == nil {
		return ""
	}
	return sortKeyPart(*f.Floor) + sortKeyPart(*f.Ceiling)
}

// sortKeyPart renders one bound as a fixed-width token. The leading
// minus groups BC years before AD years; the BC year itself is encoded
// as its ten's complement so that lexical order stays chronological
// among BC dates (200 BC keys lower than 100 BC).
func sortKeyPart(d Date) string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d%02d%02d", 10000+d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// # Natural-Language Rendering

// String renders the date in its narrowest natural-language form.
//
// Cases, in precedence order:
//  1. Unknown date: empty string.
//  2. Open floor: "before 1205" (day/month shown unless ceiling is Dec 31).
//  3. Open ceiling: "after 1089" (day/month shown unless floor is Jan 1).
//  4. Century-aligned bounds: "12th c.", "12th-13th c.", "1st c. BC", …
//  5. Whole years: "1200" or "1200-1205".
//  6. Exact day: "05/03/1200".
//  7. Fallback: "05/03/1200-06/04/1201".
func (f FuzzyDate) String() string {
	switch {
	case f.IsEmpty():
		return ""

	case f.Floor == nil:
		if f.Ceiling.isYearEnd() {
			return "before " + yearLabel(f.Ceiling.Year)
		}
		return "before " + dayLabel(*f.Ceiling)

	case f.Ceiling == nil:
		if f.Floor.isYearStart() {
			return "after " + yearLabel(f.Floor.Year)
		}
		return "after " + dayLabel(*f.Floor)
	}

	if label, ok := f.centuryLabel(); ok {
		return label
	}

	if f.Floor.isYearStart() && f.Ceiling.isYearEnd() {
		if f.Floor.Year == f.Ceiling.Year {
			return yearLabel(f.Floor.Year)
		}
		return yearLabel(f.Floor.Year) + "-" + yearLabel(f.Ceiling.Year)
	}

	if *f.Floor == *f.Ceiling {
		return dayLabel(*f.Floor)
	}

	return dayLabel(*f.Floor) + "-" + dayLabel(*f.Ceiling)
}

// Narrow renders the date at month precision when the bounds allow it.
//
// If floor and ceiling fall in the same month without being identical, the
// result is "March 1200" (BC-suffixed if negative). All other shapes defer
// to [FuzzyDate.String]. Used for person birth/death display, where a day
// range inside one month reads better as the month itself.
func (f FuzzyDate) Narrow() string {
	if f.Floor != nil && f.Ceiling != nil &&
		*f.Floor != *f.Ceiling &&
		f.Floor.Year == f.Ceiling.Year &&
		f.Floor.Month == f.Ceiling.Month {
		return monthNames[f.Floor.Month-1] + " " + yearLabel(f.Floor.Year)
	}
	return f.String()
}

// # Century Detection

// The century table, by sign of the bounds. One century N (AD) spans the
// astronomical years [(N-1)*100, N*100-1]; one century N BC spans
// [-(N*100-1), -(N-1)*100]. Each (floor-shape, ceiling-shape) combination
// below is a distinct case; they are verified individually by tests
// rather than derived from a single formula.
//
//	floor shape           ceiling shape          rendering
//	AD start (y%100==0)   same century end       "12th c."
//	AD start              later AD end           "12th-13th c."
//	BC start              same century end       "1st c. BC"
//	BC start              earlier-ordinal BC end "3rd-2nd c. BC"
//	BC start              AD end                 "1st c. BC - 1st c."
func (f FuzzyDate) centuryLabel() (string, bool) {
	if !f.Floor.isYearStart() || !f.Ceiling.isYearEnd() {
		return "", false
	}

	floorYear, ceilingYear := f.Floor.Year, f.Ceiling.Year

	floorADStart := floorYear >= 0 && floorYear%100 == 0
	floorBCStart := floorYear < 0 && (-floorYear)%100 == 99
	ceilingADEnd := ceilingYear > 0 && ceilingYear%100 == 99
	ceilingBCEnd := ceilingYear <= 0 && (-ceilingYear)%100 == 0

	switch {
	case floorADStart && ceilingADEnd:
		from := floorYear/100 + 1
		to := (ceilingYear + 1) / 100
		if from == to {
			return ordinal(from) + " c.", true
		}
		return ordinal(from) + "-" + ordinal(to) + " c.", true

	case floorBCStart && ceilingBCEnd:
		from := (-floorYear + 1) / 100
		to := -ceilingYear/100 + 1
		if from == to {
			return ordinal(from) + " c. BC", true
		}
		// BC ordinals run backwards along the timeline.
		return ordinal(from) + "-" + ordinal(to) + " c. BC", true

	case floorBCStart && ceilingADEnd:
		from := (-floorYear + 1) / 100
		to := (ceilingYear + 1) / 100
		return ordinal(from) + " c. BC - " + ordinal(to) + " c.", true
	}

	return "", false
}

// # Label Helpers

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// yearLabel renders an astronomical year for display ("1200", "100 BC").
func yearLabel(year int) string {
	if year <= 0 {
		return strconv.Itoa(1-year) + " BC"
	}
	return strconv.Itoa(year)
}

// dayLabel renders an exact day as "dd/mm/YYYY", BC-suffixed if negative.
func dayLabel(d Date) string {
	return fmt.Sprintf("%02d/%02d/%s", d.Day, d.Month, yearLabel(d.Year))
}

// ordinal renders 1 as "1st", 2 as "2nd", 11 as "11th", and so on.
func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return strconv.Itoa(n) + "th"
	}
	switch n % 10 {
	case 1:
		return strconv.Itoa(n) + "st"
	case 2:
		return strconv.Itoa(n) + "nd"
	case 3:
		return strconv.Itoa(n) + "rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}
