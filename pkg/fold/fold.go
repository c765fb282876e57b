// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

// Package fold builds collation-stable tokens from arbitrary Unicode text.
//
// # Usage
//
// Bibliographic sort keys must order "Ševčenko" next to "Sevcenko" and
// volume "2" before volume "10". This package handles accent removal and
// natural-order numeric padding so a plain lexical comparison suffices.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NumberWidth is the fixed width numeric runs are padded to, so that
// "2" < "2a" < "10" holds under lexical comparison.
const NumberWidth = 8

// String converts arbitrary Unicode text into a lowercase ASCII-folded
// token suitable for lexical sorting.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Drops everything that is not a letter, digit, or space.
func String(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	var b strings.Builder
	b.Grow(len(result))
	for _, r := range result {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// PadNumbers zero-pads every run of digits in s to [NumberWidth] so that
// numeric substrings order naturally under lexical comparison.
//
// "IV.2a" becomes "iv.00000002a"-style tokens when combined with
// [String]; padding alone leaves non-digit runes untouched.
func PadNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + NumberWidth)

	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		digits := run.String()
		for i := len(digits); i < NumberWidth; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
		run.Reset()
	}

	for _, r := range s {
		if r >= '0' && r <= '9' {
			run.WriteRune(r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()

	return b.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
