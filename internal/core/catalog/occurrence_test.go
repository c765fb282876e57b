// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/catalog"
	"github.com/wdebaets/codex/internal/core/role"
)

/*
TestOccurrence_Location covers the precedence of the physical location
renderings: folium range, single folium, page range, free text.
*/
func TestOccurrence_Location(t *testing.T) {
	tests := []struct {
		name string
		set  func(o *catalog.Occurrence)
		want string
	}{
		{
			name: "folium_range",
			set: func(o *catalog.Occurrence) {
				o.FoliumStart, o.FoliumEnd = "12r", "13v"
			},
			want: "f. 12r-13v",
		},
		{
			name: "single_folium",
			set: func(o *catalog.Occurrence) {
				o.FoliumStart, o.FoliumEnd = "12r", "12r"
			},
			want: "f. 12r",
		},
		{
			name: "page_range",
			set: func(o *catalog.Occurrence) {
				o.PageStart, o.PageEnd = "45", "47"
			},
			want: "p. 45-47",
		},
		{
			name: "folium_wins_over_page",
			set: func(o *catalog.Occurrence) {
				o.FoliumStart = "12r"
				o.PageStart = "45"
			},
			want: "f. 12r",
		},
		{
			name: "general_location_fallback",
			set: func(o *catalog.Occurrence) {
				o.GeneralLocation = "lower margin"
			},
			want: "lower margin",
		},
		{
			name: "nothing",
			set:  func(o *catalog.Occurrence) {},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			occurrence := catalog.NewOccurrence(1, true, "incipit")
			tc.set(occurrence)
			assert.Equal(t, tc.want, occurrence.Location())
		})
	}
}

func TestOccurrence_DisplayName(t *testing.T) {
	manuscript := catalog.NewManuscript(10, true, "Paris", "BNF", "gr. 2511")

	occurrence := catalog.NewOccurrence(1, true, "Χαῖρε, κεχαριτωμένη")
	occurrence.Manuscript = manuscript
	occurrence.FoliumStart, occurrence.FoliumEnd = "12r", "13v"
	assert.Equal(t,
		"Paris - BNF - gr. 2511 (f. 12r-13v): Χαῖρε, κεχαριτωμένη",
		occurrence.DisplayName())

	orphan := catalog.NewOccurrence(2, true, "incipit only")
	assert.Equal(t, "incipit only", orphan.DisplayName())
}

func TestOccurrence_AddRelatedDedup(t *testing.T) {
	occurrence := catalog.NewOccurrence(1, true, "a")
	twin := catalog.NewOccurrence(2, true, "a")

	occurrence.AddRelated(twin, 8)
	occurrence.AddRelated(twin, 12)
	require.Len(t, occurrence.Related, 1)
	assert.Equal(t, 8, occurrence.Related[0].SharedVerses)

	// Mutual links stay flat; no traversal means no cycle to break.
	twin.AddRelated(occurrence, 8)
	assert.Len(t, twin.Related, 1)
}

/*
TestOccurrenceView verifies the audience split: the public projection
hides a private witness, private related occurrences and invisible
person associations.
*/
func TestOccurrenceView(t *testing.T) {
	author := mustRole(t, role.SystemNameAuthor)
	related := mustRole(t, role.SystemNameRelated)

	privateWitness := catalog.NewManuscript(10, false, "Paris", "BNF", "gr. 2511")
	poet := catalog.NewPerson(1, true, "Manuel", "Philes")
	bystander := catalog.NewPerson(2, false, "Ignotus", "")

	occurrence := catalog.NewOccurrence(100, true, "incipit")
	occurrence.Manuscript = privateWitness
	occurrence.Verses = []string{"v1", "v2", "v3"}
	occurrence.People.AddDirect(author, poet)
	occurrence.People.AddDirect(related, bystander)
	occurrence.People.AddDirect(related, poet)

	privateTwin := catalog.NewOccurrence(101, false, "incipit")
	occurrence.AddRelated(privateTwin, 3)

	public := catalog.NewOccurrenceView(occurrence, catalog.AudiencePublic)
	assert.Nil(t, public.Manuscript)
	assert.Empty(t, public.Related)
	assert.Equal(t, 3, public.NumberOfVerses)
	// The poet is stripped from "related" because the author role already
	// carries them; the private bystander is not disclosed at all.
	require.Len(t, public.PersonRoles, 1)
	assert.Equal(t, role.SystemNameAuthor, public.PersonRoles[0].Role)

	internal := catalog.NewOccurrenceView(occurrence, catalog.AudienceInternal)
	require.NotNil(t, internal.Manuscript)
	assert.Equal(t, 10, internal.Manuscript.ID)
	require.Len(t, internal.Related, 1)
	assert.Equal(t, 3, internal.Related[0].SharedVerses)
	require.Len(t, internal.PersonRoles, 2)
	assert.Equal(t, role.SystemNameRelated, internal.PersonRoles[1].Role)
	require.Len(t, internal.PersonRoles[1].Targets, 1)
	assert.Equal(t, 2, internal.PersonRoles[1].Targets[0].ID)
}
