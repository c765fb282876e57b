// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/role"
)

func TestCatalog_StrictLookup(t *testing.T) {
	catalog := role.Default()

	author, err := catalog.Get(role.SystemNameAuthor)
	require.NoError(t, err)
	assert.True(t, author.Rank)
	assert.True(t, author.AppliesTo(role.UsageDocument))

	// Unknown names are an assembly bug, never silently dropped.
	_, err = catalog.Get("benefactor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "benefactor")
}

func TestCatalog_SyntheticsAlwaysPresent(t *testing.T) {
	catalog := role.NewCatalog()

	content, err := catalog.Get("content")
	require.NoError(t, err)
	assert.Equal(t, -1, content.ID)

	subject, err := catalog.Get("subject")
	require.NoError(t, err)
	assert.Equal(t, -2, subject.ID)
}

func TestCatalog_LastRegistrationWins(t *testing.T) {
	order := func(n int) *int { return &n }

	catalog := role.NewCatalog(
		role.Role{ID: 1, SystemName: "scribe", Name: "Scribe", Order: order(20)},
		role.Role{ID: 1, SystemName: "scribe", Name: "Copyist", Order: order(25)},
	)

	scribe, err := catalog.Get("scribe")
	require.NoError(t, err)
	assert.Equal(t, "Copyist", scribe.Name)

	// Re-registration does not duplicate the entry.
	var count int
	for _, r := range catalog.All() {
		if r.SystemName == "scribe" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
