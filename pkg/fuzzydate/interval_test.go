// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package fuzzydate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdebaets/codex/pkg/fuzzydate"
)

/*
TestInterval_String verifies span rendering and its degradation when one
end is unknown.
*/
func TestInterval_String(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"both_known", "(1050-01-01,1050-12-31)", "(1120-01-01,1120-12-31)", "1050 - 1120"},
		{"open_start", "(,)", "(1120-01-01,1120-12-31)", "1120"},
		{"open_end", "(1050-01-01,1050-12-31)", "(,)", "1050"},
		{"both_open", "(,)", "(,)", ""},
		{"century_ends", "(1000-01-01,1099-12-31)", "(1100-01-01,1199-12-31)", "11th c. - 12th c."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := fuzzydate.Interval{
				Start: fuzzydate.Parse(tt.start),
				End:   fuzzydate.Parse(tt.end),
			}
			assert.Equal(t, tt.want, interval.String())
		})
	}
}

/*
TestInterval_SortKey checks that intervals order by start, falling back to
the end when the start is unknown.
*/
func TestInterval_SortKey(t *testing.T) {
	known := fuzzydate.Interval{
		Start: fuzzydate.Parse("(1050-01-01,1050-12-31)"),
		End:   fuzzydate.Parse("(1120-01-01,1120-12-31)"),
	}
	assert.Equal(t, "1050010110501231", known.SortKey())

	openStart := fuzzydate.Interval{
		End: fuzzydate.Parse("(1120-01-01,1120-12-31)"),
	}
	assert.Equal(t, "1120010111201231", openStart.SortKey())

	assert.True(t, fuzzydate.Interval{}.IsEmpty())
	assert.Equal(t, "", fuzzydate.Interval{}.SortKey())
}
