// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package fold_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdebaets/codex/pkg/fold"
)

/*
TestString verifies accent folding and lowercasing for sort-key tokens.
*/
func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Lauxtermann", "lauxtermann"},
		{"diacritics", "Ševčenko", "sevcenko"},
		{"mixed_punctuation", "D'Aiuto, F.", "daiuto f"},
		{"greek_accents", "Παπαϊωάννου", "παπαιωαννου"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.String(tt.input))
		})
	}
}

/*
TestPadNumbers checks that numeric runs are padded so volumes order
naturally: 2 < 2a < 10.
*/
func TestPadNumbers(t *testing.T) {
	assert.Equal(t, "00000002", fold.PadNumbers("2"))
	assert.Equal(t, "00000002a", fold.PadNumbers("2a"))
	assert.Equal(t, "00000010", fold.PadNumbers("10"))
	assert.Equal(t, "iv.00000002", fold.PadNumbers("iv.2"))
	assert.Equal(t, "annex", fold.PadNumbers("annex"))

	volumes := []string{
		fold.PadNumbers("10"),
		fold.PadNumbers("2a"),
		fold.PadNumbers("2"),
	}
	sort.Strings(volumes)
	assert.Equal(t, []string{
		fold.PadNumbers("2"),
		fold.PadNumbers("2a"),
		fold.PadNumbers("10"),
	}, volumes)
}
