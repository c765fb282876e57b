// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"fmt"
	"strings"

	"github.com/wdebaets/codex/internal/core/relation"
	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/pkg/fold"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

// # Document Kinds

// DocumentKind discriminates the bibliographic subtypes.
type DocumentKind string

const (
	KindBook         DocumentKind = "book"
	KindArticle      DocumentKind = "article"
	KindBookChapter  DocumentKind = "book_chapter"
	KindPhdThesis    DocumentKind = "phd_thesis"
	KindOnlineSource DocumentKind = "online_source"
)

// IsValid reports whether k is a recognised [DocumentKind].
func (k DocumentKind) IsValid() bool {
	switch k {
	case KindBook, KindArticle, KindBookChapter, KindPhdThesis, KindOnlineSource:
		return true
	}
	return false
}

// Bibliographic is the projection surface every document subtype offers.
type Bibliographic interface {
	relation.Entity
	Named

	Kind() DocumentKind

	// SortKey is the collation-stable lexical key; records of different
	// kinds sort consistently in one mixed list.
	SortKey() string

	// Citation is the human-readable reference string.
	Citation() string
}

// # Document Base

// Document is the shared base of every bibliographic record.
type Document struct {
	Entity
	Title string `json:"title"`

	// Date is the (possibly unknown) publication or composition date.
	Date fuzzydate.FuzzyDate `json:"date"`

	// People holds the historical person roles authored on the record
	// (who appears in, wrote, or commissioned the source).
	People *relation.Graph `json:"-"`

	// Contributors holds the editorial contributor axis (who edited or
	// translated the publication itself).
	Contributors *relation.Graph `json:"-"`

	Acknowledgements []string `json:"acknowledgements,omitempty"`
}

// NewDocument returns a document base with empty association graphs.
func NewDocument(id int, public bool, title string) Document {
	return Document{
		Entity:       Entity{ID: id, Public: public},
		Title:        title,
		People:       relation.NewGraph(),
		Contributors: relation.NewGraph(),
	}
}

// AddPersonRole records a direct historical person role.
func (d *Document) AddPersonRole(r role.Role, p *Person) {
	d.People.AddDirect(r, p)
}

// AddContributorRole records an editorial contributor role.
func (d *Document) AddContributorRole(r role.Role, p *Person) {
	d.Contributors.AddDirect(r, p)
}

// PersonsWithRole returns the directly associated persons under the
// given role system name, in insertion order.
func (d *Document) PersonsWithRole(systemName string) []*Person {
	return personsUnder(d.People, systemName)
}

// ContributorsWithRole is the counterpart over the contributor axis.
// Contributor-flagged roles such as "editor" land there, so citation
// templates must look them up here, not in People.
func (d *Document) ContributorsWithRole(systemName string) []*Person {
	return personsUnder(d.Contributors, systemName)
}

func personsUnder(graph *relation.Graph, systemName string) []*Person {
	for _, group := range graph.Direct() {
		if group.Role.SystemName != systemName {
			continue
		}
		persons := make([]*Person, 0, len(group.Refs))
		for _, ref := range group.Refs {
			if p, ok := ref.Entity.(*Person); ok {
				persons = append(persons, p)
			}
		}
		return persons
	}
	return nil
}

// Authors is shorthand for the "author" role group.
func (d *Document) Authors() []*Person {
	return d.PersonsWithRole(role.SystemNameAuthor)
}

// DisplayName implements [Named].
func (d *Document) DisplayName() string { return d.Title }

// # Sort-Key Building Blocks

// Maximal fillers push records with missing fields to the end of a
// lexically sorted list.
const (
	sortKeyPrefix = "biblio"
	fillerAuthor  = "zzzzzz"
	fillerYear    = "9999"
	fillerVolume  = "99999999"
)

// authorSortToken folds the last name of the first author, or yields the
// maximal filler when the record has no author.
func (d *Document) authorSortToken() string {
	authors := d.Authors()
	if len(authors) == 0 {
		return fillerAuthor
	}
	token := fold.String(authors[0].LastName)
	if token == "" {
		return fillerAuthor
	}
	return token
}

// yearSortToken renders a publication year, treating unknown and
// forthcoming as maximally late.
func yearSortToken(year *int, forthcoming bool) string {
	if year == nil || forthcoming {
		return fillerYear
	}
	return fmt.Sprintf("%04d", *year)
}

// volumeSortToken pads numeric runs so volumes order naturally; absent
// volumes sort last.
func volumeSortToken(volume string) string {
	if volume == "" {
		return fillerVolume
	}
	return fold.PadNumbers(fold.String(volume))
}

// buildSortKey joins the fixed field sequence with a separator that
// lexically precedes every folded token.
func buildSortKey(fields ...string) string {
	return strings.Join(fields, " ")
}

// # Citation Building Blocks

// citationNames joins person display names with ", " for citation lists.
func citationNames(persons []*Person) string {
	names := make([]string, 0, len(persons))
	for _, p := range persons {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, ", ")
}

// editorLabel disambiguates "(ed.)" and "(eds.)" by count.
func editorLabel(count int) string {
	if count > 1 {
		return "(eds.)"
	}
	return "(ed.)"
}

// yearCitationToken renders the year segment of a citation.
func yearCitationToken(year *int, forthcoming bool) string {
	if forthcoming {
		return "(forthcoming)"
	}
	if year == nil {
		return ""
	}
	return fmt.Sprintf("%d", *year)
}

// joinCitation concatenates non-empty citation segments with ", ",
// omitting missing optional fields without placeholders.
func joinCitation(segments ...string) string {
	parts := segments[:0:0]
	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, ", ")
}

// citationHead renders the "names year" opening segment shared by every
// kind that carries authors.
func (d *Document) citationHead(year *int, forthcoming bool) string {
	names := citationNames(d.Authors())
	yearToken := yearCitationToken(year, forthcoming)

	switch {
	case names == "":
		return yearToken
	case yearToken == "":
		return names
	}
	return names + " " + yearToken
}
