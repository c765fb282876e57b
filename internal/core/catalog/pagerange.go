// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import "strconv"

// PageRange is the page span of an article or chapter.
//
// Raw holds the unparsed page string from the source record; it is the
// fallback when no structured start/end could be extracted ("xii-xiv,
// 3 plates").
type PageRange struct {
	Start *int   `json:"start,omitempty"`
	End   *int   `json:"end,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// IsEmpty reports whether the range carries no page information at all.
func (p PageRange) IsEmpty() bool {
	return p.Start == nil && p.End == nil && p.Raw == ""
}

// String renders "45-67", collapsing to "45" when start equals end, or
// falls back to the raw string when bounds are unavailable.
func (p PageRange) String() string {
	switch {
	case p.Start == nil || p.End == nil:
		return p.Raw
	case *p.Start == *p.End:
		return strconv.Itoa(*p.Start)
	}
	return strconv.Itoa(*p.Start) + "-" + strconv.Itoa(*p.End)
}
