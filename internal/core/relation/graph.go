// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package relation

import (
	"sort"

	"github.com/wdebaets/codex/internal/core/role"
)

// Graph stores one record's role associations, direct and inherited, and
// computes the merged views on demand.
//
// # Concurrency
//
// Graph is not safe for concurrent use. It follows the catalogue's
// request model: assembled once, then read-only. The merged views are
// memoised on first access; adding associations after that point is a
// programming error and the memo is not invalidated.
type Graph struct {
	direct    []*directGroup
	inherited []*inheritedGroup

	memoAll    []Group
	memoPublic []Group
	memoised   bool
}

type directGroup struct {
	role    role.Role
	targets []Entity
	byID    map[int]bool
}

type inheritedGroup struct {
	role    role.Role
	order   []int
	targets map[int]*inheritedTarget
}

type inheritedTarget struct {
	entity Entity
	via    []Entity
}

// NewGraph returns an empty association graph.
func NewGraph() *Graph {
	return &Graph{}
}

// # Assembly

// AddDirect records a direct association of target under r, deduplicated
// by target id.
func (g *Graph) AddDirect(r role.Role, target Entity) {
	group := g.directFor(r)
	if group.byID[target.EntityID()] {
		return
	}
	group.byID[target.EntityID()] = true
	group.targets = append(group.targets, target)
}

// AddInherited records that target is associated under r through the
// given intermediate record. Repeated calls for the same (role, target)
// accumulate intermediates.
func (g *Graph) AddInherited(r role.Role, target Entity, via ...Entity) {
	group := g.inheritedFor(r)

	existing, ok := group.targets[target.EntityID()]
	if !ok {
		existing = &inheritedTarget{entity: target}
		group.targets[target.EntityID()] = existing
		group.order = append(group.order, target.EntityID())
	}
	existing.via = append(existing.via, via...)
}

func (g *Graph) directFor(r role.Role) *directGroup {
	for _, group := range g.direct {
		if group.role.SystemName == r.SystemName {
			return group
		}
	}
	group := &directGroup{role: r, byID: make(map[int]bool)}
	g.direct = append(g.direct, group)
	return group
}

func (g *Graph) inheritedFor(r role.Role) *inheritedGroup {
	for _, group := range g.inherited {
		if group.role.SystemName == r.SystemName {
			return group
		}
	}
	group := &inheritedGroup{role: r, targets: make(map[int]*inheritedTarget)}
	g.inherited = append(g.inherited, group)
	return group
}

// # Views

// Direct returns the directly authored associations only, unmerged, in
// insertion order.
func (g *Graph) Direct() []Group {
	groups := make([]Group, 0, len(g.direct))
	for _, group := range g.direct {
		refs := make([]Ref, 0, len(group.targets))
		for _, target := range group.targets {
			refs = append(refs, Ref{Entity: target, Visible: target.IsPublic()})
		}
		groups = append(groups, Group{Role: group.role, Refs: refs})
	}
	return groups
}

// All returns the merged view: per role, the union of direct and
// inherited targets with their effective visibility, ordered by the
// role's display priority (nil orders last, ranked roles win ties,
// stable otherwise).
func (g *Graph) All() []Group {
	g.memoise()
	return g.memoAll
}

// Public returns the merged view restricted to effectively visible
// associations. Roles whose target set becomes empty are dropped.
func (g *Graph) Public() []Group {
	g.memoise()
	return g.memoPublic
}

func (g *Graph) memoise() {
	if g.memoised {
		return
	}

	g.memoAll = g.merge()

	public := make([]Group, 0, len(g.memoAll))
	for _, group := range g.memoAll {
		var visible []Ref
		for _, ref := range group.Refs {
			if ref.Visible {
				visible = append(visible, ref)
			}
		}
		if len(visible) > 0 {
			public = append(public, Group{Role: group.Role, Refs: visible})
		}
	}
	g.memoPublic = public

	g.memoised = true
}

// merge unions the direct and inherited layers.
//
// Effective visibility:
//   - a direct association is visible iff the target itself is public;
//   - an inherited-only association is visible iff at least one of the
//     intermediates it arrived through is public: the association is
//     witnessed by that public record, independently of the target's
//     own stored flag. Zero intermediates count as having no public
//     intermediate.
func (g *Graph) merge() []Group {
	type slot struct {
		group Group
		byID  map[int]int // target id -> index in group.Refs
	}

	var order []string
	slots := make(map[string]*slot)

	slotFor := func(r role.Role) *slot {
		s, ok := slots[r.SystemName]
		if !ok {
			s = &slot{group: Group{Role: r}, byID: make(map[int]int)}
			slots[r.SystemName] = s
			order = append(order, r.SystemName)
		}
		return s
	}

	for _, group := range g.direct {
		s := slotFor(group.role)
		for _, target := range group.targets {
			s.byID[target.EntityID()] = len(s.group.Refs)
			s.group.Refs = append(s.group.Refs, Ref{
				Entity:  target,
				Visible: target.IsPublic(),
			})
		}
	}

	for _, group := range g.inherited {
		s := slotFor(group.role)
		for _, id := range group.order {
			target := group.targets[id]

			if index, exists := s.byID[id]; exists {
				// Already present directly: the direct association
				// stands on its own, keep the intermediates for
				// provenance only.
				s.group.Refs[index].Via = append(s.group.Refs[index].Via, target.via...)
				continue
			}

			s.byID[id] = len(s.group.Refs)
			s.group.Refs = append(s.group.Refs, Ref{
				Entity:  target.entity,
				Visible: anyPublic(target.via),
				Via:     target.via,
			})
		}
	}

	merged := make([]Group, 0, len(order))
	for _, systemName := range order {
		merged = append(merged, slots[systemName].group)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		left, right := merged[i].Role, merged[j].Role
		switch {
		case left.Order == nil && right.Order == nil:
			return left.Rank && !right.Rank
		case left.Order == nil:
			return false
		case right.Order == nil:
			return true
		case *left.Order != *right.Order:
			return *left.Order < *right.Order
		default:
			// Ranked roles break ties on a shared order value.
			return left.Rank && !right.Rank
		}
	})

	return merged
}

func anyPublic(entities []Entity) bool {
	for _, e := range entities {
		if e.IsPublic() {
			return true
		}
	}
	return false
}
