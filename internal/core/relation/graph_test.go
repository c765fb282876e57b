// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/relation"
	"github.com/wdebaets/codex/internal/core/role"
)

// stub is a minimal catalogue record for engine tests.
type stub struct {
	id     int
	public bool
}

func (s *stub) EntityID() int  { return s.id }
func (s *stub) IsPublic() bool { return s.public }

func mustRole(t *testing.T, systemName string) role.Role {
	t.Helper()
	r, err := role.Default().Get(systemName)
	require.NoError(t, err)
	return r
}

/*
TestGraph_DirectDedup verifies that a target id appears at most once per
role regardless of how often it is added.
*/
func TestGraph_DirectDedup(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)
	target := &stub{id: 7, public: true}

	graph := relation.NewGraph()
	graph.AddDirect(scribe, target)
	graph.AddDirect(scribe, target)
	graph.AddDirect(scribe, &stub{id: 7, public: true})

	view := graph.All()
	require.Len(t, view, 1)
	assert.Len(t, view[0].Refs, 1)
	assert.True(t, view[0].Refs[0].Visible)
}

/*
TestGraph_InheritedVisibility drives the effective-visibility rule for
inherited-only associations:

  - at least one public intermediate: visible, even when the target's
    own stored flag is false; the public intermediate witnesses the
    association;
  - only private intermediates: hidden, even when the target itself is
    stored as public;
  - zero intermediates: hidden.
*/
func TestGraph_InheritedVisibility(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)

	tests := []struct {
		name        string
		target      *stub
		via         []relation.Entity
		wantVisible bool
	}{
		{
			"one_public_intermediate",
			&stub{id: 1, public: true},
			[]relation.Entity{&stub{id: 100, public: false}, &stub{id: 101, public: true}},
			true,
		},
		{
			"only_private_intermediates",
			&stub{id: 2, public: true},
			[]relation.Entity{&stub{id: 102, public: false}},
			false,
		},
		{
			"private_target_public_intermediate",
			&stub{id: 3, public: false},
			[]relation.Entity{&stub{id: 103, public: true}},
			true,
		},
		{
			"zero_intermediates",
			&stub{id: 4, public: true},
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := relation.NewGraph()
			graph.AddInherited(scribe, tt.target, tt.via...)

			view := graph.All()
			require.Len(t, view, 1)
			ref, ok := view[0].ByID(tt.target.id)
			require.True(t, ok)
			assert.Equal(t, tt.wantVisible, ref.Visible)
		})
	}
}

/*
TestGraph_InheritedDoesNotMutateTarget pins the clone-on-write contract:
deriving the merged visibility must never write through to the shared
target entity.
*/
func TestGraph_InheritedDoesNotMutateTarget(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)
	shared := &stub{id: 5, public: true}

	graph := relation.NewGraph()
	graph.AddInherited(scribe, shared, &stub{id: 200, public: false})

	view := graph.All()
	ref, ok := view[0].ByID(5)
	require.True(t, ok)
	assert.False(t, ref.Visible)

	// The shared record is untouched: every other place referencing it in
	// the same request still sees its stored flag.
	assert.True(t, shared.IsPublic())
}

/*
TestGraph_MergeUnionsDirectAndInherited checks that a target present in
both layers appears once, with the direct association deciding visibility
and the intermediates retained for provenance.
*/
func TestGraph_MergeUnionsDirectAndInherited(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)
	target := &stub{id: 9, public: true}

	graph := relation.NewGraph()
	graph.AddDirect(scribe, target)
	graph.AddInherited(scribe, target, &stub{id: 300, public: false})
	graph.AddInherited(scribe, &stub{id: 10, public: true}, &stub{id: 301, public: true})

	view := graph.All()
	require.Len(t, view, 1)
	require.Len(t, view[0].Refs, 2)

	merged, ok := view[0].ByID(9)
	require.True(t, ok)
	// Direct association stands on its own even though the only
	// intermediate is private.
	assert.True(t, merged.Visible)
	assert.Len(t, merged.Via, 1)

	inherited, ok := view[0].ByID(10)
	require.True(t, ok)
	assert.True(t, inherited.Visible)
}

/*
TestGraph_PublicView verifies that the public subset hides invisible
associations and drops emptied roles entirely.
*/
func TestGraph_PublicView(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)
	patron := mustRole(t, role.SystemNamePatron)

	graph := relation.NewGraph()
	graph.AddDirect(scribe, &stub{id: 1, public: true})
	graph.AddDirect(scribe, &stub{id: 2, public: false})
	graph.AddInherited(patron, &stub{id: 3, public: true}, &stub{id: 400, public: false})

	public := graph.Public()
	require.Len(t, public, 1)
	assert.Equal(t, role.SystemNameScribe, public[0].Role.SystemName)
	require.Len(t, public[0].Refs, 1)
	assert.Equal(t, 1, public[0].Refs[0].Entity.EntityID())
}

/*
TestGraph_RoleOrdering checks ordering by Role.Order ascending with nil
orders last and insertion order preserved among them.
*/
func TestGraph_RoleOrdering(t *testing.T) {
	catalog := role.Default()
	related, err := catalog.Get(role.SystemNameRelated)
	require.NoError(t, err)
	author := mustRole(t, role.SystemNameAuthor)
	patron := mustRole(t, role.SystemNamePatron)

	graph := relation.NewGraph()
	graph.AddDirect(related, &stub{id: 1, public: true})
	graph.AddDirect(patron, &stub{id: 2, public: true})
	graph.AddDirect(author, &stub{id: 3, public: true})

	view := graph.All()
	require.Len(t, view, 3)
	assert.Equal(t, role.SystemNameAuthor, view[0].Role.SystemName)
	assert.Equal(t, role.SystemNamePatron, view[1].Role.SystemName)
	assert.Equal(t, role.SystemNameRelated, view[2].Role.SystemName)
}

/*
TestGraph_RankTieBreak: when two roles share an order value, the ranked
one sorts first regardless of insertion order.
*/
func TestGraph_RankTieBreak(t *testing.T) {
	order := 10
	plain := role.Role{ID: 90, SystemName: "annotator", Order: &order}
	ranked := role.Role{ID: 91, SystemName: "composer", Rank: true, Order: &order}

	graph := relation.NewGraph()
	graph.AddDirect(plain, &stub{id: 1, public: true})
	graph.AddDirect(ranked, &stub{id: 2, public: true})

	view := graph.All()
	require.Len(t, view, 2)
	assert.Equal(t, "composer", view[0].Role.SystemName)
	assert.Equal(t, "annotator", view[1].Role.SystemName)

	// Among orderless roles the ranked one also leads.
	orderless := relation.NewGraph()
	orderless.AddDirect(role.Role{ID: 92, SystemName: "annotator"}, &stub{id: 1, public: true})
	orderless.AddDirect(role.Role{ID: 93, SystemName: "composer", Rank: true}, &stub{id: 2, public: true})

	view = orderless.All()
	require.Len(t, view, 2)
	assert.Equal(t, "composer", view[0].Role.SystemName)
}

/*
TestReduceRelated verifies the catch-all reduction: targets known under a
specific role disappear from "related", the remainder is deduped and
sorted by id, and an emptied group is dropped.
*/
func TestReduceRelated(t *testing.T) {
	related := mustRole(t, role.SystemNameRelated)
	scribe := mustRole(t, role.SystemNameScribe)

	t.Run("specific_role_wins", func(t *testing.T) {
		graph := relation.NewGraph()
		graph.AddDirect(scribe, &stub{id: 1, public: true})
		graph.AddDirect(related, &stub{id: 1, public: true})
		graph.AddDirect(related, &stub{id: 30, public: true})
		graph.AddDirect(related, &stub{id: 20, public: true})

		view := relation.ReduceRelated(graph.All())
		require.Len(t, view, 2)

		relatedGroup := view[1]
		require.Len(t, relatedGroup.Refs, 2)
		assert.Equal(t, 20, relatedGroup.Refs[0].Entity.EntityID())
		assert.Equal(t, 30, relatedGroup.Refs[1].Entity.EntityID())
		_, stillThere := relatedGroup.ByID(1)
		assert.False(t, stillThere)
	})

	t.Run("emptied_group_dropped", func(t *testing.T) {
		graph := relation.NewGraph()
		graph.AddDirect(scribe, &stub{id: 1, public: true})
		graph.AddDirect(related, &stub{id: 1, public: true})

		view := relation.ReduceRelated(graph.All())
		require.Len(t, view, 1)
		assert.Equal(t, role.SystemNameScribe, view[0].Role.SystemName)
	})

	t.Run("view_consistent_public_reduction", func(t *testing.T) {
		// The specific association is private; the public reader must
		// still see the related tag because the specificity information
		// is itself not disclosable.
		graph := relation.NewGraph()
		graph.AddInherited(scribe, &stub{id: 1, public: true}, &stub{id: 500, public: false})
		graph.AddDirect(related, &stub{id: 1, public: true})

		all := relation.ReduceRelated(graph.All())
		require.Len(t, all, 1)
		assert.Equal(t, role.SystemNameScribe, all[0].Role.SystemName)

		public := relation.ReduceRelated(graph.Public())
		require.Len(t, public, 1)
		assert.Equal(t, role.SystemNameRelated, public[0].Role.SystemName)
	})
}

/*
TestGraph_MemoIdempotence checks that repeated reads return identical
views with no hidden incrementing state.
*/
func TestGraph_MemoIdempotence(t *testing.T) {
	scribe := mustRole(t, role.SystemNameScribe)
	graph := relation.NewGraph()
	graph.AddInherited(scribe, &stub{id: 1, public: true}, &stub{id: 2, public: true})

	first := graph.All()
	second := graph.All()
	assert.Equal(t, first, second)
	assert.Equal(t, graph.Public(), graph.Public())
}
