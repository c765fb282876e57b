// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"github.com/wdebaets/codex/internal/core/relation"
)

// Search documents: the flattened projections handed to the external
// indexing collaborator. Every visibility-sensitive field carries a
// "_public"-suffixed parallel copy so the indexing layer can filter by
// audience without re-deriving effective visibility.

// SearchDocument is one flattened record for the index.
type SearchDocument map[string]any

// roleFields flattens merged role groups into "<role>_<suffix>" id
// arrays, one pair of fields (all + public) per role.
func roleFields(doc SearchDocument, suffix string, all, public []relation.Group) {
	ids := func(group relation.Group) []int {
		out := make([]int, 0, len(group.Refs))
		for _, ref := range group.Refs {
			out = append(out, ref.Entity.EntityID())
		}
		return out
	}

	for _, group := range all {
		doc[group.Role.SystemName+"_"+suffix] = ids(group)
	}
	for _, group := range public {
		doc[group.Role.SystemName+"_"+suffix+"_public"] = ids(group)
	}
}

// PersonSearchDocument flattens a person for indexing.
func PersonSearchDocument(p *Person) SearchDocument {
	doc := SearchDocument{
		"id":         p.ID,
		"public":     p.Public,
		"name":       p.DisplayName(),
		"sort_key":   p.SortKey(),
		"historical": p.Historical,
		"modern":     p.Modern,
		"editorial":  p.Editorial,
	}

	if !p.BornDate.IsEmpty() {
		doc["born_sort_key"] = p.BornDate.SortKey()
	}
	if !p.DeathDate.IsEmpty() {
		doc["death_sort_key"] = p.DeathDate.SortKey()
	}

	roleFields(doc, "manuscripts", p.AllManuscriptRoles(), p.PublicManuscriptRoles())
	return doc
}

// ManuscriptSearchDocument flattens a manuscript for indexing.
func ManuscriptSearchDocument(m *Manuscript) SearchDocument {
	doc := SearchDocument{
		"id":       m.ID,
		"public":   m.Public,
		"name":     m.DisplayName(),
		"sort_key": m.SortKey(),
		"status":   string(m.Status),
		"date":     m.Date.String(),
	}

	if !m.Date.IsEmpty() {
		doc["date_sort_key"] = m.Date.SortKey()
	}

	contents := make([]string, 0, len(m.Contents))
	for _, content := range m.SortedContents() {
		contents = append(contents, content.DisplayName())
	}
	doc["contents"] = contents

	occurrenceIDs := make([]int, 0, len(m.Occurrences))
	publicOccurrenceIDs := make([]int, 0, len(m.Occurrences))
	for _, occurrence := range m.Occurrences {
		occurrenceIDs = append(occurrenceIDs, occurrence.ID)
		if occurrence.Public {
			publicOccurrenceIDs = append(publicOccurrenceIDs, occurrence.ID)
		}
	}
	doc["occurrences"] = occurrenceIDs
	doc["occurrences_public"] = publicOccurrenceIDs

	roleFields(doc, "persons", m.AllPersonRoles(), m.PublicPersonRoles())
	return doc
}

// OccurrenceSearchDocument flattens an occurrence for indexing.
func OccurrenceSearchDocument(o *Occurrence) SearchDocument {
	doc := SearchDocument{
		"id":               o.ID,
		"public":           o.Public,
		"incipit":          o.Incipit,
		"location":         o.Location(),
		"number_of_verses": o.NumberOfVerses(),
		"date":             o.Date.String(),
	}

	if !o.Date.IsEmpty() {
		doc["date_sort_key"] = o.Date.SortKey()
	}
	if o.Manuscript != nil {
		doc["manuscript_id"] = o.Manuscript.ID
		doc["manuscript_public"] = o.Manuscript.Public
	}

	types := make([]string, 0, len(o.Types))
	for _, contentType := range o.SortedTypes() {
		types = append(types, contentType.DisplayName())
	}
	doc["types"] = types

	roleFields(doc, "persons",
		relation.ReduceRelated(o.People.All()),
		relation.ReduceRelated(o.People.Public()))
	return doc
}

// BiblioSearchDocument flattens a bibliographic record for indexing.
func BiblioSearchDocument(b Bibliographic) SearchDocument {
	doc := SearchDocument{
		"id":       b.EntityID(),
		"public":   b.IsPublic(),
		"kind":     string(b.Kind()),
		"title":    b.DisplayName(),
		"citation": b.Citation(),
		"sort_key": b.SortKey(),
	}

	if base := documentBase(b); base != nil {
		authorIDs := make([]int, 0)
		publicAuthorIDs := make([]int, 0)
		for _, author := range base.Authors() {
			authorIDs = append(authorIDs, author.ID)
			if author.Public {
				publicAuthorIDs = append(publicAuthorIDs, author.ID)
			}
		}
		doc["authors"] = authorIDs
		doc["authors_public"] = publicAuthorIDs
	}

	return doc
}
