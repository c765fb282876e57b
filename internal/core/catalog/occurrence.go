// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import "strings"

// # Poems

// Poem is the shared textual base of an occurrence: the verses as they
// stand in one witness, with their incipit.
type Poem struct {
	Document

	Incipit string   `json:"incipit"`
	Verses  []string `json:"verses,omitempty"`
}

// NumberOfVerses counts the transcribed verses.
func (p *Poem) NumberOfVerses() int { return len(p.Verses) }

// # Occurrences

// Occurrence is a poem as physically copied at a specific location in a
// manuscript.
type Occurrence struct {
	Poem

	// Manuscript is the witness carrying this occurrence.
	Manuscript *Manuscript `json:"-"`

	// Physical location inside the witness. Folia use recto/verso
	// notation ("12r"); paged manuscripts use PageStart/PageEnd.
	FoliumStart     string `json:"folium_start,omitempty"`
	FoliumEnd       string `json:"folium_end,omitempty"`
	PageStart       string `json:"page_start,omitempty"`
	PageEnd         string `json:"page_end,omitempty"`
	GeneralLocation string `json:"general_location,omitempty"`

	// Types is the content classification of the poem.
	Types []*Content `json:"-"`

	// Related links occurrences of the same text in other witnesses,
	// with the number of verses they share. Treated as a flat set, not
	// a traversal: mutual links never require cycle detection.
	Related []RelatedOccurrence `json:"-"`
}

// RelatedOccurrence pairs a related occurrence with the verse overlap
// that motivated the link.
type RelatedOccurrence struct {
	Occurrence   *Occurrence `json:"-"`
	SharedVerses int         `json:"shared_verses"`
}

// NewOccurrence returns an occurrence with empty association graphs.
func NewOccurrence(id int, public bool, incipit string) *Occurrence {
	return &Occurrence{
		Poem: Poem{
			Document: NewDocument(id, public, incipit),
			Incipit:  incipit,
		},
	}
}

// AddRelated links another occurrence sharing the given number of
// verses, deduplicated by occurrence id.
func (o *Occurrence) AddRelated(other *Occurrence, sharedVerses int) {
	for _, existing := range o.Related {
		if existing.Occurrence.ID == other.ID {
			return
		}
	}
	o.Related = append(o.Related, RelatedOccurrence{Occurrence: other, SharedVerses: sharedVerses})
}

// SortedTypes returns the classification list ordered by sort key.
func (o *Occurrence) SortedTypes() []*Content {
	types := make([]*Content, len(o.Types))
	copy(types, o.Types)
	SortContents(types)
	return types
}

// # Presentation

// Location renders the physical position inside the witness: folium
// range first, page range second, the free-text fallback last.
func (o *Occurrence) Location() string {
	switch {
	case o.FoliumStart != "" && o.FoliumEnd != "" && o.FoliumStart != o.FoliumEnd:
		return "f. " + o.FoliumStart + "-" + o.FoliumEnd
	case o.FoliumStart != "":
		return "f. " + o.FoliumStart
	case o.PageStart != "" && o.PageEnd != "" && o.PageStart != o.PageEnd:
		return "p. " + o.PageStart + "-" + o.PageEnd
	case o.PageStart != "":
		return "p. " + o.PageStart
	}
	return o.GeneralLocation
}

// DisplayName identifies the occurrence by witness and location:
// "Witness (location): incipit", skipping missing parts.
func (o *Occurrence) DisplayName() string {
	var b strings.Builder
	if o.Manuscript != nil {
		b.WriteString(o.Manuscript.DisplayName())
	}
	if location := o.Location(); location != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("(" + location + ")")
	}
	if o.Incipit != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(o.Incipit)
	}
	return b.String()
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldIncipit         = "incipit"
	FieldVerses          = "verses"
	FieldFoliumStart     = "folium_start"
	FieldFoliumEnd       = "folium_end"
	FieldPageStart       = "page_start"
	FieldPageEnd         = "page_end"
	FieldGeneralLocation = "general_location"
	FieldManuscriptID    = "manuscript_id"
)
