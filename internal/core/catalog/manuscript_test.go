// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/catalog"
	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

/*
TestManuscript_OccurrenceInheritedPersons mirrors the person-side rule
from the manuscript's perspective: a person reaches the manuscript's
merged view through its occurrences, disclosable only through a public
one.
*/
func TestManuscript_OccurrenceInheritedPersons(t *testing.T) {
	author := mustRole(t, role.SystemNameAuthor)
	scribe := mustRole(t, role.SystemNameScribe)

	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")
	poet := catalog.NewPerson(1, true, "Manuel", "Philes")
	copyist := catalog.NewPerson(2, true, "Georgios", "Kalligraphos")

	publicWitness := catalog.NewOccurrence(100, true, "public witness")
	privateWitness := catalog.NewOccurrence(101, false, "private witness")
	manuscript.AddOccurrence(publicWitness)
	manuscript.AddOccurrence(privateWitness)

	// Scribe is authored directly on the manuscript; the poet arrives
	// only through occurrences.
	manuscript.AddPersonRole(scribe, copyist)
	manuscript.AddOccurrencePersonRole(author, poet, publicWitness)
	manuscript.AddOccurrencePersonRole(author, poet, privateWitness)

	all := manuscript.AllPersonRoles()
	require.Len(t, all, 2)
	// Author ordering precedes scribe (role order 10 < 20).
	assert.Equal(t, role.SystemNameAuthor, all[0].Role.SystemName)
	assert.Equal(t, role.SystemNameScribe, all[1].Role.SystemName)

	poetRef, ok := all[0].ByID(1)
	require.True(t, ok)
	assert.True(t, poetRef.Visible)
	assert.Len(t, poetRef.Via, 2)

	public := manuscript.PublicPersonRoles()
	require.Len(t, public, 2)
}

/*
TestManuscript_SortedContents verifies that the classification list is
rendered ordered by each node's own path-based sort key while the
stored order is preserved.
*/
func TestManuscript_SortedContents(t *testing.T) {
	religious := &catalog.Content{ID: 1, Name: "Religious"}
	prayer := &catalog.Content{ID: 2, Name: "Prayer", Parent: religious}
	dedication := &catalog.Content{ID: 3, Name: "Dedication"}

	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")
	manuscript.Contents = []*catalog.Content{prayer, dedication}

	sorted := manuscript.SortedContents()
	require.Len(t, sorted, 2)
	assert.Equal(t, "Dedication", sorted[0].DisplayName())
	assert.Equal(t, "Religious > Prayer", sorted[1].DisplayName())

	// Stored order untouched.
	assert.Equal(t, prayer, manuscript.Contents[0])
}

/*
TestManuscript_Presentation covers the shelf-mark display name and its
natural-order sort key.
*/
func TestManuscript_Presentation(t *testing.T) {
	manuscript := catalog.NewManuscript(10, true, "Roma", "BAV", "Vat. gr. 2")
	assert.Equal(t, "Roma - BAV - Vat. gr. 2", manuscript.DisplayName())

	later := catalog.NewManuscript(11, true, "Roma", "BAV", "Vat. gr. 10")
	assert.Less(t, manuscript.SortKey(), later.SortKey())

	partial := catalog.NewManuscript(12, true, "Athos", "", "Iviron 56")
	assert.Equal(t, "Athos - Iviron 56", partial.DisplayName())
}

/*
TestManuscriptView verifies the audience split of the display
projection: public readers see neither private occurrences nor the
effective-visibility flags.
*/
func TestManuscriptView(t *testing.T) {
	author := mustRole(t, role.SystemNameAuthor)

	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")
	manuscript.Date = fuzzydate.Parse("(1100-01-01,1199-12-31)")
	poet := catalog.NewPerson(1, true, "Manuel", "Philes")

	publicWitness := catalog.NewOccurrence(100, true, "public witness")
	privateWitness := catalog.NewOccurrence(101, false, "private witness")
	manuscript.AddOccurrence(publicWitness)
	manuscript.AddOccurrence(privateWitness)
	manuscript.AddOccurrencePersonRole(author, poet, privateWitness)

	publicView := catalog.NewManuscriptView(manuscript, catalog.AudiencePublic)
	assert.Equal(t, "12th c.", publicView.Date)
	require.Len(t, publicView.Occurrences, 1)
	assert.Equal(t, 100, publicView.Occurrences[0].ID)
	// The poet's only witness is private: no person roles disclosed.
	assert.Empty(t, publicView.PersonRoles)

	internalView := catalog.NewManuscriptView(manuscript, catalog.AudienceInternal)
	assert.Len(t, internalView.Occurrences, 2)
	require.Len(t, internalView.PersonRoles, 1)
	target := internalView.PersonRoles[0].Targets[0]
	require.NotNil(t, target.Visible)
	assert.False(t, *target.Visible)
	assert.Len(t, target.Via, 1)
}

/*
TestSearchDocuments spot-checks the flattened index projections and
their _public parallel fields.
*/
func TestSearchDocuments(t *testing.T) {
	author := mustRole(t, role.SystemNameAuthor)

	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")
	poet := catalog.NewPerson(1, true, "Manuel", "Philes")
	publicWitness := catalog.NewOccurrence(100, true, "public witness")
	privateWitness := catalog.NewOccurrence(101, false, "private witness")
	manuscript.AddOccurrence(publicWitness)
	manuscript.AddOccurrence(privateWitness)
	manuscript.AddOccurrencePersonRole(author, poet, publicWitness)

	doc := catalog.ManuscriptSearchDocument(manuscript)
	assert.Equal(t, []int{100, 101}, doc["occurrences"])
	assert.Equal(t, []int{100}, doc["occurrences_public"])
	assert.Equal(t, []int{1}, doc["author_persons"])
	assert.Equal(t, []int{1}, doc["author_persons_public"])

	poet.AddOccurrenceManuscriptRole(author, manuscript, privateWitness)
	personDoc := catalog.PersonSearchDocument(poet)
	assert.Equal(t, true, personDoc["public"])
	assert.Equal(t, []int{10}, personDoc["author_manuscripts"])
	_, hasPublic := personDoc["author_manuscripts_public"]
	assert.False(t, hasPublic)
}
