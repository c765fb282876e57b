// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package role

import "fmt"

// Catalog is the in-memory lookup table of roles keyed by system name.
//
// # Strictness
//
// A lookup for an unknown system name is a bug in the assembly step, not
// a data condition: silently dropping the edge would produce an
// incomplete, undetectable record. [Catalog.Get] therefore returns an
// error that callers are expected to propagate, never swallow.
type Catalog struct {
	bySystemName map[string]Role
	order        []string
}

// NewCatalog builds a catalog from the given roles. The two synthetic
// roles (content, subject) are always present.
func NewCatalog(roles ...Role) *Catalog {
	catalog := &Catalog{bySystemName: make(map[string]Role, len(roles)+2)}
	catalog.put(Content())
	catalog.put(Subject())
	for _, r := range roles {
		catalog.put(r)
	}
	return catalog
}

func (c *Catalog) put(r Role) {
	if _, exists := c.bySystemName[r.SystemName]; !exists {
		c.order = append(c.order, r.SystemName)
	}
	c.bySystemName[r.SystemName] = r
}

// Get returns the role registered under systemName.
func (c *Catalog) Get(systemName string) (Role, error) {
	r, ok := c.bySystemName[systemName]
	if !ok {
		return Role{}, fmt.Errorf("role: unknown system name %q", systemName)
	}
	return r, nil
}

// All returns every role in registration order.
func (c *Catalog) All() []Role {
	roles := make([]Role, 0, len(c.order))
	for _, name := range c.order {
		roles = append(roles, c.bySystemName[name])
	}
	return roles
}

// Default returns the seeded role set used when the store is empty and in
// tests. Orders follow the editorial display convention: authorship
// first, production roles next, the related fallback last.
func Default() *Catalog {
	order := func(n int) *int { return &n }

	return NewCatalog(
		Role{ID: 1, SystemName: SystemNameAuthor, Name: "Author",
			Usage: []Usage{UsageManuscript, UsageOccurrence, UsageDocument},
			Rank:  true, Order: order(10)},
		Role{ID: 2, SystemName: SystemNameScribe, Name: "Scribe",
			Usage: []Usage{UsageManuscript, UsageOccurrence},
			Order: order(20)},
		Role{ID: 3, SystemName: SystemNamePatron, Name: "Patron",
			Usage: []Usage{UsageManuscript, UsageOccurrence},
			Order: order(30)},
		Role{ID: 4, SystemName: "recipient", Name: "Recipient",
			Usage: []Usage{UsageOccurrence},
			Order: order(40)},
		Role{ID: 5, SystemName: SystemNameEditor, Name: "Editor",
			Usage:           []Usage{UsageDocument},
			ContributorRole: true, Order: order(50)},
		Role{ID: 6, SystemName: "translator", Name: "Translator",
			Usage:           []Usage{UsageDocument},
			ContributorRole: true, Order: order(60)},
		Role{ID: 7, SystemName: SystemNameRelated, Name: "Related",
			Usage: []Usage{UsageManuscript, UsageOccurrence, UsageDocument}},
	)
}
