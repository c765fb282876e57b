// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package fuzzydate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/pkg/fuzzydate"
)

/*
TestParse verifies the canonical range-string parser, including malformed
input degrading to the unknown date.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		floor   *fuzzydate.Date
		ceiling *fuzzydate.Date
	}{
		{
			"closed_range", "(1100-01-01,1199-12-31)",
			&fuzzydate.Date{Year: 1100, Month: 1, Day: 1},
			&fuzzydate.Date{Year: 1199, Month: 12, Day: 31},
		},
		{
			"open_floor", "(,1205-12-31)",
			nil,
			&fuzzydate.Date{Year: 1205, Month: 12, Day: 31},
		},
		{
			"open_ceiling", "(1089-01-01,)",
			&fuzzydate.Date{Year: 1089, Month: 1, Day: 1},
			nil,
		},
		{
			"bc_bound", "(-99-01-01,0000-12-31)",
			&fuzzydate.Date{Year: -99, Month: 1, Day: 1},
			&fuzzydate.Date{Year: 0, Month: 12, Day: 31},
		},
		{"fully_open", "(,)", nil, nil},
		{"garbage", "twelfth century-ish", nil, nil},
		{"missing_brackets", "1100-01-01,1199-12-31", nil, nil},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := fuzzydate.Parse(tt.input)
			assert.Equal(t, tt.floor, date.Floor)
			assert.Equal(t, tt.ceiling, date.Ceiling)
		})
	}
}

/*
TestFuzzyDate_Canonical verifies that Canonical is the exact inverse of
Parse, so a stored date survives any number of write/read cycles. The
display form is explicitly not the persistence form: "1110" must never
come back from storage as the unknown date.
*/
func TestFuzzyDate_Canonical(t *testing.T) {
	inputs := []string{
		"(1110-01-01,1110-12-31)",
		"(1100-01-01,1199-12-31)",
		"(,1205-12-31)",
		"(1089-01-01,)",
		"(-0099-01-01,0000-12-31)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			date := fuzzydate.Parse(input)
			require.False(t, date.IsEmpty())

			restored := fuzzydate.Parse(date.Canonical())
			assert.Equal(t, date, restored)

			// A second cycle must be byte-stable.
			assert.Equal(t, date.Canonical(), restored.Canonical())
		})
	}

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", fuzzydate.FuzzyDate{}.Canonical())
		assert.True(t, fuzzydate.Parse(fuzzydate.FuzzyDate{}.Canonical()).IsEmpty())
	})

	t.Run("display_form_is_not_canonical", func(t *testing.T) {
		date := fuzzydate.Parse("(1110-01-01,1110-12-31)")
		assert.Equal(t, "1110", date.String())
		assert.True(t, fuzzydate.Parse(date.String()).IsEmpty())
	})
}

/*
TestFuzzyDate_IsEmpty checks that only the fully open date is empty and
that the empty date renders as "".
*/
func TestFuzzyDate_IsEmpty(t *testing.T) {
	empty := fuzzydate.Parse("(,)")
	require.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.String())
	assert.Equal(t, "", empty.SortKey())

	half := fuzzydate.Parse("(,1205-12-31)")
	assert.False(t, half.IsEmpty())
}

/*
TestFuzzyDate_SortKey verifies the fixed-width concatenated key and its
open-bound degradation.
*/
func TestFuzzyDate_SortKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact_day", "(1200-03-05,1200-03-05)", "1200030512000305"},
		{"year_range", "(1100-01-01,1199-12-31)", "1100010111991231"},
		{"bc_floor", "(-99-01-01,0000-12-31)", "-9901010100001231"},
		{"open_bound_undefined", "(1100-01-01,)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzydate.Parse(tt.input).SortKey())
		})
	}

	// Lexical order must follow the timeline across the BC/AD boundary:
	// 200 BC < 100 BC < AD 50.
	t.Run("bc_keys_are_chronological", func(t *testing.T) {
		secondCenturyBC := fuzzydate.Parse("(-0199-01-01,-0100-12-31)").SortKey()
		firstCenturyBC := fuzzydate.Parse("(-0099-01-01,0000-12-31)").SortKey()
		ad := fuzzydate.Parse("(0050-01-01,0050-12-31)").SortKey()

		assert.Less(t, secondCenturyBC, firstCenturyBC)
		assert.Less(t, firstCenturyBC, ad)
	})
}

/*
TestFuzzyDate_String drives the full formatting cascade, one sub-case per
row. The century table cases (AD/AD, BC/BC, BC straddling AD) each get a
dedicated row because they are independent branches, not one formula.
*/
func TestFuzzyDate_String(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Open bounds
		{"before_year", "(,1205-12-31)", "before 1205"},
		{"before_day", "(,1205-03-05)", "before 05/03/1205"},
		{"after_year", "(1089-01-01,)", "after 1089"},
		{"after_day", "(1089-06-15,)", "after 15/06/1089"},
		{"before_bc_year", "(,-100-12-31)", "before 101 BC"},

		// Century table
		{"single_century_ad", "(1100-01-01,1199-12-31)", "12th c."},
		{"century_range_ad", "(1100-01-01,1299-12-31)", "12th-13th c."},
		{"first_century_ad", "(0000-01-01,0099-12-31)", "1st c."},
		{"single_century_bc", "(-99-01-01,0000-12-31)", "1st c. BC"},
		{"century_range_bc", "(-299-01-01,-100-12-31)", "3rd-2nd c. BC"},
		{"straddle_bc_ad", "(-99-01-01,0099-12-31)", "1st c. BC - 1st c."},
		{"eleventh_century_th", "(1000-01-01,1099-12-31)", "11th c."},

		// Whole years
		{"single_year", "(1200-01-01,1200-12-31)", "1200"},
		{"year_range", "(1200-01-01,1205-12-31)", "1200-1205"},
		{"bc_year", "(-330-01-01,-330-12-31)", "331 BC"},

		// Exact days and fallback
		{"exact_day", "(1200-03-05,1200-03-05)", "05/03/1200"},
		{"exact_day_bc", "(-46-07-12,-46-07-12)", "12/07/47 BC"},
		{"day_range", "(1200-03-05,1201-04-06)", "05/03/1200-06/04/1201"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzydate.Parse(tt.input).String())
		})
	}
}

/*
TestFuzzyDate_Narrow checks the month-precision formatter used for person
birth and death dates.
*/
func TestFuzzyDate_Narrow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"same_month", "(1200-03-01,1200-03-31)", "March 1200"},
		{"same_month_bc", "(-46-07-01,-46-07-28)", "July 47 BC"},
		{"identical_bounds_defer", "(1200-03-05,1200-03-05)", "05/03/1200"},
		{"different_months_defer", "(1200-01-01,1200-12-31)", "1200"},
		{"open_bound_defer", "(,1205-12-31)", "before 1205"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzydate.Parse(tt.input).Narrow())
		})
	}
}
