// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/catalog"
	"github.com/wdebaets/codex/internal/core/role"
)

func intPtr(n int) *int { return &n }

func authorRole(t *testing.T) role.Role {
	t.Helper()
	r, err := role.Default().Get(role.SystemNameAuthor)
	require.NoError(t, err)
	return r
}

func newBook(t *testing.T, title, city string, year *int, authors ...*catalog.Person) *catalog.Book {
	t.Helper()
	book := &catalog.Book{Document: catalog.NewDocument(1, true, title), Year: year, City: city}
	for _, author := range authors {
		book.AddPersonRole(authorRole(t), author)
	}
	return book
}

/*
TestBook_Citation pins the book template: "A, B 1999, T, City", with
missing optional fields omitted and forthcoming replacing the year.
*/
func TestBook_Citation(t *testing.T) {
	a := catalog.NewPerson(1, true, "", "A")
	b := catalog.NewPerson(2, true, "", "B")

	t.Run("two_authors", func(t *testing.T) {
		book := newBook(t, "T", "City", intPtr(1999), a, b)
		assert.Equal(t, "A, B 1999, T, City", book.Citation())
	})

	t.Run("forthcoming", func(t *testing.T) {
		book := newBook(t, "T", "City", nil, a)
		book.Forthcoming = true
		assert.Equal(t, "A (forthcoming), T, City", book.Citation())
	})

	t.Run("no_city", func(t *testing.T) {
		book := newBook(t, "T", "", intPtr(1999), a)
		assert.Equal(t, "A 1999, T", book.Citation())
	})

	t.Run("no_author_no_year", func(t *testing.T) {
		book := newBook(t, "T", "City", nil)
		assert.Equal(t, "T, City", book.Citation())
	})
}

/*
TestArticle_Citation covers the journal template including the page-range
collapse and raw fallback.
*/
func TestArticle_Citation(t *testing.T) {
	author := catalog.NewPerson(1, true, "", "A")

	article := &catalog.Article{
		Document: catalog.NewDocument(2, true, "T"),
		Year:     intPtr(1999),
		Journal:  "Journal",
		Volume:   "12",
		Number:   "3",
		Pages:    catalog.PageRange{Start: intPtr(45), End: intPtr(67)},
	}
	article.AddPersonRole(authorRole(t), author)
	assert.Equal(t, "A 1999, T, Journal, 12, 3, 45-67", article.Citation())

	t.Run("single_page", func(t *testing.T) {
		article.Pages = catalog.PageRange{Start: intPtr(45), End: intPtr(45)}
		assert.Equal(t, "A 1999, T, Journal, 12, 3, 45", article.Citation())
	})

	t.Run("raw_pages_fallback", func(t *testing.T) {
		article.Pages = catalog.PageRange{Raw: "xii-xiv"}
		assert.Equal(t, "A 1999, T, Journal, 12, 3, xii-xiv", article.Citation())
	})
}

/*
TestBookChapter_Citation checks the editor disambiguation: "(ed.)" for
one editor, "(eds.)" for several. Editors are a contributor role, so
they are attached on the contributor axis, as record assembly does.
*/
func TestBookChapter_Citation(t *testing.T) {
	catalogRoles := role.Default()
	editorRole, err := catalogRoles.Get(role.SystemNameEditor)
	require.NoError(t, err)
	require.True(t, editorRole.ContributorRole)

	chapter := &catalog.BookChapter{
		Document:  catalog.NewDocument(3, true, "T"),
		Year:      intPtr(2004),
		BookTitle: "Collected Studies",
		City:      "Ghent",
	}
	chapter.AddPersonRole(authorRole(t), catalog.NewPerson(1, true, "", "A"))
	chapter.AddContributorRole(editorRole, catalog.NewPerson(2, true, "", "E"))

	assert.Equal(t, "A 2004, T, in E (ed.), Collected Studies, Ghent", chapter.Citation())

	chapter.AddContributorRole(editorRole, catalog.NewPerson(4, true, "", "F"))
	assert.Equal(t, "A 2004, T, in E, F (eds.), Collected Studies, Ghent", chapter.Citation())
}

/*
TestSortKey_Idempotence: formatting the same document twice produces
identical keys; the formatters keep no hidden state.
*/
func TestSortKey_Idempotence(t *testing.T) {
	book := newBook(t, "T", "City", intPtr(1999), catalog.NewPerson(1, true, "Marc", "Ševčenko"))
	first := book.SortKey()
	second := book.SortKey()
	assert.Equal(t, first, second)
	assert.Contains(t, first, "sevcenko")
}

/*
TestSortKey_NaturalVolumeOrdering: volumes "2", "10", "2a" sort as
2 < 2a < 10 under the padding scheme.
*/
func TestSortKey_NaturalVolumeOrdering(t *testing.T) {
	author := catalog.NewPerson(1, true, "", "A")

	makeVolume := func(volume string) string {
		book := newBook(t, "T", "City", intPtr(1999), author)
		book.Volume = volume
		return book.SortKey()
	}

	keys := []string{makeVolume("10"), makeVolume("2a"), makeVolume("2")}
	sort.Strings(keys)
	assert.Equal(t, []string{makeVolume("2"), makeVolume("2a"), makeVolume("10")}, keys)
}

/*
TestSortKey_Fillers: records with missing author, year, or volume sort
after fully described ones.
*/
func TestSortKey_Fillers(t *testing.T) {
	author := catalog.NewPerson(1, true, "", "A")

	described := newBook(t, "T", "City", intPtr(1999), author)
	described.Volume = "2"
	anonymous := newBook(t, "T", "City", intPtr(1999))
	forthcoming := newBook(t, "T", "City", nil, author)
	forthcoming.Forthcoming = true

	assert.Less(t, described.SortKey(), anonymous.SortKey())
	assert.Less(t, described.SortKey(), forthcoming.SortKey())
}

/*
TestSortKey_CrossKind: a thesis and a book by the same author interleave
on the same uniform key without per-pair type dispatch.
*/
func TestSortKey_CrossKind(t *testing.T) {
	early := catalog.NewPerson(1, true, "", "Abel")
	late := catalog.NewPerson(2, true, "", "Zonaras")

	thesis := &catalog.PhdThesis{Document: catalog.NewDocument(1, true, "T"), Year: intPtr(1990)}
	thesis.AddPersonRole(authorRole(t), early)
	book := newBook(t, "T", "City", intPtr(1985), late)

	assert.Less(t, thesis.SortKey(), book.SortKey())
}

/*
TestOnlineSource_Citation checks the consultation-year template.
*/
func TestOnlineSource_Citation(t *testing.T) {
	source := &catalog.OnlineSource{
		Document:     catalog.NewDocument(9, true, "Pinakes"),
		URL:          "https://pinakes.irht.cnrs.fr",
		LastAccessed: intPtr(2024),
	}
	assert.Equal(t, "Pinakes (consulted 2024), https://pinakes.irht.cnrs.fr", source.Citation())
}

/*
TestPageRange covers the value type in isolation.
*/
func TestPageRange(t *testing.T) {
	assert.Equal(t, "", catalog.PageRange{}.String())
	assert.True(t, catalog.PageRange{}.IsEmpty())
	assert.Equal(t, "45-67", catalog.PageRange{Start: intPtr(45), End: intPtr(67)}.String())
	assert.Equal(t, "45", catalog.PageRange{Start: intPtr(45), End: intPtr(45)}.String())
	assert.Equal(t, "xii-xiv", catalog.PageRange{Raw: "xii-xiv"}.String())
}
