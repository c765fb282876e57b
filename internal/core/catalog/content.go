// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"sort"
	"strings"

	"github.com/wdebaets/codex/pkg/fold"
)

// Content is one node in the hierarchical content classification
// (genre, subject matter). A node knows its parent chain so it can
// render and sort by its full path.
type Content struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Parent *Content `json:"-"`
}

// DisplayName renders the full classification path, root first.
func (c *Content) DisplayName() string {
	if c.Parent == nil {
		return c.Name
	}
	return c.Parent.DisplayName() + " > " + c.Name
}

// SortKey folds the full path for collation-stable ordering.
func (c *Content) SortKey() string {
	parts := make([]string, 0, 4)
	for node := c; node != nil; node = node.Parent {
		parts = append(parts, fold.String(node.Name))
	}
	// Collected leaf-first; reverse to sort by root category first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// SortContents orders a classification list by each element's own sort
// key, in place, stable.
func SortContents(contents []*Content) {
	sort.SliceStable(contents, func(i, j int) bool {
		return contents[i].SortKey() < contents[j].SortKey()
	})
}
