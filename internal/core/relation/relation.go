// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

/*
Package relation implements the role-aggregation and visibility engine
shared by every record kind in the Codex catalogue.

A record carries two layers of relationship information: associations
authored directly on the record, and associations it inherits through a
chain of other records (a person is linked to a manuscript because one of
that manuscript's occurrences names them). The engine merges both layers
into one queryable view and derives, per association, an effective
visibility flag that respects the privacy of every record along the chain.

Core Responsibilities:

  - Merge: Union of direct and inherited targets per role, deduplicated
    by target id, ordered by the role's display priority.
  - Visibility: An inherited association is disclosable exactly when at
    least one contributing intermediate record is itself public,
    independently of the target's own stored flag. The derived flag
    lives on a [Ref] wrapper; the shared target entity is never mutated.
  - Reduction: The catch-all "related" role is stripped of targets that
    already appear under a more specific role.
*/
package relation

import (
	"sort"

	"github.com/wdebaets/codex/internal/core/role"
)

// # Entities

// Entity is the minimal view the engine needs of a catalogue record.
//
// Implementations are shared by reference across one request's entity
// graph; the engine treats them as read-only.
type Entity interface {
	// EntityID is the stable numeric identity used for deduplication.
	EntityID() int

	// IsPublic is the record's own stored visibility flag.
	IsPublic() bool
}

// # Merged View

// Ref is one target entity inside a merged role view, together with its
// derived visibility.
//
// Visible is scoped to the view that produced the Ref. It never feeds
// back into the target's own stored flag: the same entity may be visible
// in one record's view and hidden in another's.
type Ref struct {
	Entity Entity

	// Visible is the effective visibility of this association.
	Visible bool

	// Via holds the intermediate records the association was inherited
	// through, in insertion order. Empty for direct associations.
	Via []Entity
}

// Group is all merged targets of a single role.
type Group struct {
	Role role.Role
	Refs []Ref
}

// ByID returns the ref for the given target id, if present.
func (g Group) ByID(id int) (Ref, bool) {
	for _, ref := range g.Refs {
		if ref.Entity.EntityID() == id {
			return ref, true
		}
	}
	return Ref{}, false
}

// # Reduction

// ReduceRelated removes from the catch-all "related" group every target
// that also appears under a specific role in the same view, then dedupes
// and sorts the remainder by target id. An emptied group is dropped.
//
// The rule is applied per view: the public view is reduced against
// public groups only, so a public reader never observes a "related" tag
// whose more specific counterpart is private.
func ReduceRelated(view []Group) []Group {
	specific := make(map[int]bool)
	relatedIndex := -1

	for i, group := range view {
		if group.Role.SystemName == role.SystemNameRelated {
			relatedIndex = i
			continue
		}
		for _, ref := range group.Refs {
			specific[ref.Entity.EntityID()] = true
		}
	}

	if relatedIndex < 0 {
		return view
	}

	seen := make(map[int]bool)
	var kept []Ref
	for _, ref := range view[relatedIndex].Refs {
		id := ref.Entity.EntityID()
		if specific[id] || seen[id] {
			continue
		}
		seen[id] = true
		kept = append(kept, ref)
	}

	if len(kept) == 0 {
		reduced := make([]Group, 0, len(view)-1)
		reduced = append(reduced, view[:relatedIndex]...)
		reduced = append(reduced, view[relatedIndex+1:]...)
		return reduced
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Entity.EntityID() < kept[j].Entity.EntityID()
	})

	reduced := make([]Group, len(view))
	copy(reduced, view)
	reduced[relatedIndex] = Group{Role: view[relatedIndex].Role, Refs: kept}
	return reduced
}
