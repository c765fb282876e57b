// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/catalog"
	"github.com/wdebaets/codex/internal/core/relation"
	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/pkg/fuzzydate"
)

func mustRole(t *testing.T, systemName string) role.Role {
	t.Helper()
	r, err := role.Default().Get(systemName)
	require.NoError(t, err)
	return r
}

/*
TestPerson_OccurrenceInheritedVisibility drives the §-defining privacy
rule end to end on real records: a person's manuscript association that
exists only through occurrences is disclosable iff at least one
contributing occurrence is public.
*/
func TestPerson_OccurrenceInheritedVisibility(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)

	t.Run("public_occurrence_discloses", func(t *testing.T) {
		person := catalog.NewPerson(1, true, "Ioannes", "Tzetzes")
		// The manuscript record itself is private; the public occurrence
		// still witnesses the association.
		manuscript := catalog.NewManuscript(10, false, "Wien", "ÖNB", "theol. gr. 203")
		hidden := catalog.NewOccurrence(100, false, "hidden witness")
		visible := catalog.NewOccurrence(101, true, "public witness")

		person.AddOccurrenceManuscriptRole(scribe, manuscript, hidden)
		person.AddOccurrenceManuscriptRole(scribe, manuscript, visible)

		view := person.AllManuscriptRoles()
		require.Len(t, view, 1)
		ref, ok := view[0].ByID(10)
		require.True(t, ok)
		assert.True(t, ref.Visible)
		assert.Len(t, ref.Via, 2)
	})

	t.Run("public_manuscript_private_occurrences_hides", func(t *testing.T) {
		person := catalog.NewPerson(1, true, "Ioannes", "Tzetzes")
		manuscript := catalog.NewManuscript(10, true, "Wien", "ÖNB", "theol. gr. 203")
		hidden := catalog.NewOccurrence(100, false, "hidden witness")

		person.AddOccurrenceManuscriptRole(scribe, manuscript, hidden)

		view := person.AllManuscriptRoles()
		ref, ok := view[0].ByID(10)
		require.True(t, ok)
		assert.False(t, ref.Visible)
		assert.Empty(t, person.PublicManuscriptRoles())

		// The shared manuscript record keeps its stored flag.
		assert.True(t, manuscript.IsPublic())
	})

	t.Run("public_manuscript_public_occurrence_shows", func(t *testing.T) {
		person := catalog.NewPerson(1, true, "Ioannes", "Tzetzes")
		manuscript := catalog.NewManuscript(10, true, "Wien", "ÖNB", "theol. gr. 203")
		visible := catalog.NewOccurrence(101, true, "public witness")

		person.AddOccurrenceManuscriptRole(scribe, manuscript, visible)

		public := person.PublicManuscriptRoles()
		require.Len(t, public, 1)
		_, ok := public[0].ByID(10)
		assert.True(t, ok)
	})
}

/*
TestPerson_MergedManuscriptView checks that direct and inherited
manuscript roles union without duplication.
*/
func TestPerson_MergedManuscriptView(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)

	person := catalog.NewPerson(1, true, "Manuel", "Philes")
	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")
	occurrence := catalog.NewOccurrence(100, false, "witness")

	person.AddManuscriptRole(scribe, manuscript)
	person.AddOccurrenceManuscriptRole(scribe, manuscript, occurrence)

	view := person.AllManuscriptRoles()
	require.Len(t, view, 1)
	require.Len(t, view[0].Refs, 1)

	ref := view[0].Refs[0]
	// The direct association discloses on its own, regardless of the
	// private contributing occurrence.
	assert.True(t, ref.Visible)
	assert.Len(t, ref.Via, 1)
}

/*
TestPerson_RelatedReduction: a manuscript known under a specific role
must not also surface under the catch-all "related".
*/
func TestPerson_RelatedReduction(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)
	related := mustRole(t, role.SystemNameRelated)

	person := catalog.NewPerson(1, true, "Manuel", "Philes")
	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")
	other := catalog.NewManuscript(11, true, "Roma", "BAV", "Vat. gr. 1851")

	person.AddManuscriptRole(scribe, manuscript)
	person.AddManuscriptRole(related, manuscript)
	person.AddManuscriptRole(related, other)

	for _, view := range [][]relation.Group{person.AllManuscriptRoles(), person.PublicManuscriptRoles()} {
		for _, group := range view {
			if group.Role.SystemName != role.SystemNameRelated {
				continue
			}
			require.Len(t, group.Refs, 1)
			assert.Equal(t, 11, group.Refs[0].Entity.EntityID())
			_, reduced := group.ByID(10)
			assert.False(t, reduced)
		}
	}
}

/*
TestPerson_Presentation covers name, sort key, lifespan and attestation
rendering.
*/
func TestPerson_Presentation(t *testing.T) {
	person := catalog.NewPerson(1, true, "Ioannes", "Tzetzes")
	person.BornDate = fuzzydate.Parse("(1110-01-01,1110-12-31)")
	person.DeathDate = fuzzydate.Parse("(1180-01-01,1185-12-31)")
	person.Attestations = []catalog.Attestation{
		{Interval: &fuzzydate.Interval{
			Start: fuzzydate.Parse("(1140-01-01,1140-12-31)"),
			End:   fuzzydate.Parse("(1170-01-01,1170-12-31)"),
		}},
	}

	assert.Equal(t, "Ioannes Tzetzes", person.DisplayName())
	assert.Equal(t, "tzetzes ioannes", person.SortKey())
	assert.Equal(t, "1110 - 1180-1185", person.Lifespan())

	view := catalog.NewPersonView(person, catalog.AudiencePublic)
	assert.Equal(t, []string{"1140 - 1170"}, view.Attestations)

	anonymous := catalog.NewPerson(2, true, "", "")
	assert.Equal(t, "Anonymous", anonymous.DisplayName())
}
