// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdebaets/codex/internal/core/catalog"
	"github.com/wdebaets/codex/internal/core/role"
	"github.com/wdebaets/codex/internal/platform/dberr"
)

func dberrNotFound() error { return dberr.ErrNotFound }

// # In-Memory Fakes

// fakeRoles serves the seeded default catalogue.
type fakeRoles struct{}

func (fakeRoles) LoadCatalog(context.Context) (*role.Catalog, error) {
	return role.Default(), nil
}

type fakePersonRepo struct {
	persons         map[int]func() *catalog.Person
	manuscriptEdges map[int][]catalog.ManuscriptEdge
	documentEdges   map[int][]catalog.DocumentEdge
	created         []*catalog.Person
}

func (repo *fakePersonRepo) ListPersons(_ context.Context, f catalog.PersonFilter, limit, offset int) ([]*catalog.Person, int, error) {
	var rows []*catalog.Person
	for _, build := range repo.persons {
		p := build()
		if f.PublicOnly && !p.Public {
			continue
		}
		rows = append(rows, p)
	}
	return rows, len(rows), nil
}

func (repo *fakePersonRepo) GetPerson(_ context.Context, id int) (*catalog.Person, error) {
	build, ok := repo.persons[id]
	if !ok {
		return nil, dberrNotFound()
	}
	return build(), nil
}

func (repo *fakePersonRepo) CreatePerson(_ context.Context, p *catalog.Person) error {
	p.ID = len(repo.created) + 1
	repo.created = append(repo.created, p)
	return nil
}

func (repo *fakePersonRepo) UpdatePerson(context.Context, *catalog.Person) error { return nil }
func (repo *fakePersonRepo) DeletePerson(context.Context, int) error             { return nil }

func (repo *fakePersonRepo) ListManuscriptEdges(_ context.Context, personID int) ([]catalog.ManuscriptEdge, error) {
	return repo.manuscriptEdges[personID], nil
}

func (repo *fakePersonRepo) ListDocumentEdges(_ context.Context, personID int) ([]catalog.DocumentEdge, error) {
	return repo.documentEdges[personID], nil
}

type fakeManuscriptRepo struct {
	manuscripts map[int]func() *catalog.Manuscript
	occurrences map[int][]*catalog.Occurrence
	personEdges map[int][]catalog.PersonEdge
	bindings    []catalog.RoleBinding
}

func (repo *fakeManuscriptRepo) ListManuscripts(context.Context, catalog.ManuscriptFilter, int, int) ([]*catalog.Manuscript, int, error) {
	return nil, 0, nil
}

func (repo *fakeManuscriptRepo) GetManuscript(_ context.Context, id int) (*catalog.Manuscript, error) {
	build, ok := repo.manuscripts[id]
	if !ok {
		return nil, dberrNotFound()
	}
	return build(), nil
}

func (repo *fakeManuscriptRepo) CreateManuscript(context.Context, *catalog.Manuscript) error {
	return nil
}
func (repo *fakeManuscriptRepo) UpdateManuscript(context.Context, *catalog.Manuscript) error {
	return nil
}
func (repo *fakeManuscriptRepo) DeleteManuscript(context.Context, int) error { return nil }

func (repo *fakeManuscriptRepo) ListOccurrences(_ context.Context, manuscriptID int) ([]*catalog.Occurrence, error) {
	return repo.occurrences[manuscriptID], nil
}

func (repo *fakeManuscriptRepo) ListPersonEdges(_ context.Context, manuscriptID int) ([]catalog.PersonEdge, error) {
	return repo.personEdges[manuscriptID], nil
}

func (repo *fakeManuscriptRepo) ReplacePersonRoles(_ context.Context, _ int, bindings []catalog.RoleBinding) error {
	repo.bindings = bindings
	return nil
}

func (repo *fakeManuscriptRepo) ReplaceContents(context.Context, int, []int) error { return nil }

type fakeOccurrenceRepo struct {
	created []*catalog.Occurrence
}

func (repo *fakeOccurrenceRepo) ListOccurrences(context.Context, catalog.OccurrenceFilter, int, int) ([]*catalog.Occurrence, int, error) {
	return nil, 0, nil
}
func (repo *fakeOccurrenceRepo) GetOccurrence(context.Context, int) (*catalog.Occurrence, error) {
	return nil, dberrNotFound()
}

func (repo *fakeOccurrenceRepo) CreateOccurrence(_ context.Context, o *catalog.Occurrence) error {
	o.ID = len(repo.created) + 1
	repo.created = append(repo.created, o)
	return nil
}

func (repo *fakeOccurrenceRepo) UpdateOccurrence(context.Context, *catalog.Occurrence) error {
	return nil
}
func (repo *fakeOccurrenceRepo) DeleteOccurrence(context.Context, int) error { return nil }
func (repo *fakeOccurrenceRepo) ListPersonEdges(context.Context, int) ([]catalog.PersonEdge, error) {
	return nil, nil
}
func (repo *fakeOccurrenceRepo) ReplacePersonRoles(context.Context, int, []catalog.RoleBinding) error {
	return nil
}
func (repo *fakeOccurrenceRepo) ReplaceContents(context.Context, int, []int) error { return nil }
func (repo *fakeOccurrenceRepo) ListRelated(context.Context, int) ([]catalog.RelatedOccurrence, error) {
	return nil, nil
}
func (repo *fakeOccurrenceRepo) ReplaceRelated(context.Context, int, []catalog.RelatedOccurrence) error {
	return nil
}

type fakeDocumentRepo struct {
	documents   map[int]func() catalog.Bibliographic
	personEdges map[int][]catalog.PersonEdge
}

func (repo *fakeDocumentRepo) ListDocuments(context.Context, catalog.DocumentFilter, int, int) ([]catalog.Bibliographic, int, error) {
	return nil, 0, nil
}

func (repo *fakeDocumentRepo) GetDocument(_ context.Context, id int) (catalog.Bibliographic, error) {
	build, ok := repo.documents[id]
	if !ok {
		return nil, dberrNotFound()
	}
	return build(), nil
}

func (repo *fakeDocumentRepo) CreateDocument(context.Context, catalog.Bibliographic) error {
	return nil
}
func (repo *fakeDocumentRepo) UpdateDocument(context.Context, catalog.Bibliographic) error {
	return nil
}
func (repo *fakeDocumentRepo) DeleteDocument(context.Context, int) error { return nil }

func (repo *fakeDocumentRepo) ListPersonEdges(_ context.Context, documentID int) ([]catalog.PersonEdge, error) {
	return repo.personEdges[documentID], nil
}

func (repo *fakeDocumentRepo) ReplacePersonRoles(context.Context, int, []catalog.RoleBinding) error {
	return nil
}

type fakeContentRepo struct{}

func (fakeContentRepo) ListContents(context.Context) ([]*catalog.Content, error)   { return nil, nil }
func (fakeContentRepo) CreateContent(context.Context, *catalog.Content) error      { return nil }
func (fakeContentRepo) UpdateContent(context.Context, *catalog.Content) error      { return nil }
func (fakeContentRepo) DeleteContent(context.Context, int) error                   { return nil }

func newTestService(persons *fakePersonRepo, manuscripts *fakeManuscriptRepo, occurrences *fakeOccurrenceRepo, documents *fakeDocumentRepo) *catalog.Service {
	if persons == nil {
		persons = &fakePersonRepo{persons: map[int]func() *catalog.Person{}}
	}
	if manuscripts == nil {
		manuscripts = &fakeManuscriptRepo{manuscripts: map[int]func() *catalog.Manuscript{}}
	}
	if occurrences == nil {
		occurrences = &fakeOccurrenceRepo{}
	}
	if documents == nil {
		documents = &fakeDocumentRepo{documents: map[int]func() catalog.Bibliographic{}}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return catalog.NewService(persons, manuscripts, occurrences, documents, fakeContentRepo{}, fakeRoles{}, nil, logger)
}

// # Assembly & Visibility

func TestService_GetPerson(t *testing.T) {
	manuscript := catalog.NewManuscript(10, true, "Wien", "ÖNB", "theol. gr. 128")
	witness := catalog.NewOccurrence(100, true, "Ἐτελειώθη ἡ βίβλος")

	persons := &fakePersonRepo{
		persons: map[int]func() *catalog.Person{
			1: func() *catalog.Person { return catalog.NewPerson(1, true, "Ioannes", "Chortasmenos") },
			2: func() *catalog.Person { return catalog.NewPerson(2, false, "", "Anonymus Vindobonensis") },
		},
		manuscriptEdges: map[int][]catalog.ManuscriptEdge{
			1: {
				{RoleSystemName: "scribe", Manuscript: manuscript},
				{RoleSystemName: "author", Manuscript: manuscript, Occurrence: witness},
			},
		},
	}
	service := newTestService(persons, nil, nil, nil)

	t.Run("internal view merges direct and inherited roles", func(t *testing.T) {
		view, err := service.GetPerson(context.Background(), 1, catalog.AudienceInternal)
		require.NoError(t, err)

		assert.Equal(t, "Ioannes Chortasmenos", view.Name)
		require.Len(t, view.ManuscriptRoles, 2)

		// Author (order 10) sorts before scribe (order 20).
		assert.Equal(t, "author", view.ManuscriptRoles[0].Role)
		assert.Equal(t, "scribe", view.ManuscriptRoles[1].Role)

		// The inherited edge keeps its contributing witness.
		require.Len(t, view.ManuscriptRoles[0].Targets, 1)
		require.Len(t, view.ManuscriptRoles[0].Targets[0].Via, 1)
		assert.Equal(t, 100, view.ManuscriptRoles[0].Targets[0].Via[0].ID)
	})

	t.Run("public audience does not see a private person", func(t *testing.T) {
		_, err := service.GetPerson(context.Background(), 2, catalog.AudiencePublic)
		assert.Error(t, err)
	})

	t.Run("internal audience sees a private person", func(t *testing.T) {
		view, err := service.GetPerson(context.Background(), 2, catalog.AudienceInternal)
		require.NoError(t, err)
		assert.Equal(t, "Anonymus Vindobonensis", view.Name)
	})
}

func TestService_GetManuscript(t *testing.T) {
	publicOccurrence := catalog.NewOccurrence(100, true, "Χεὶρ μὲν ἡ γράψασα")
	privateOccurrence := catalog.NewOccurrence(101, false, "σήπεται τάφῳ")
	scribe := catalog.NewPerson(1, true, "Michael", "Panergates")

	manuscripts := &fakeManuscriptRepo{
		manuscripts: map[int]func() *catalog.Manuscript{
			10: func() *catalog.Manuscript {
				return catalog.NewManuscript(10, true, "Athos", "Iviron", "56")
			},
		},
		occurrences: map[int][]*catalog.Occurrence{
			10: {publicOccurrence, privateOccurrence},
		},
		personEdges: map[int][]catalog.PersonEdge{
			10: {{RoleSystemName: "scribe", Person: scribe, Occurrence: publicOccurrence}},
		},
	}
	service := newTestService(nil, manuscripts, nil, nil)

	view, err := service.GetManuscript(context.Background(), 10, catalog.AudiencePublic)
	require.NoError(t, err)

	assert.Equal(t, "Athos - Iviron 56", view.Name)

	// The private occurrence drops from the public projection.
	require.Len(t, view.Occurrences, 1)
	assert.Equal(t, 100, view.Occurrences[0].ID)

	require.Len(t, view.PersonRoles, 1)
	assert.Equal(t, "scribe", view.PersonRoles[0].Role)
}

func TestService_GetDocument(t *testing.T) {
	author := catalog.NewPerson(1, true, "Wolfram", "Hörandner")
	documents := &fakeDocumentRepo{
		documents: map[int]func() catalog.Bibliographic{
			30: func() catalog.Bibliographic {
				base := catalog.NewDocument(30, true, "Byzantinische Epigramme")
				year := 2019
				return &catalog.Book{Document: base, Year: &year, City: "Wien"}
			},
		},
		personEdges: map[int][]catalog.PersonEdge{
			30: {
				{RoleSystemName: "author", Person: author},
				{RoleSystemName: "editor", Person: catalog.NewPerson(2, true, "Andreas", "Rhoby")},
			},
		},
	}
	service := newTestService(nil, nil, nil, documents)

	view, err := service.GetDocument(context.Background(), 30, catalog.AudienceInternal)
	require.NoError(t, err)

	assert.Equal(t, "book", view.Kind)
	require.Len(t, view.Authors, 1)
	assert.Equal(t, "Wolfram Hörandner", view.Authors[0].Name)

	// The editor edge lands on the contributor axis, so the combined
	// person listing carries both groups.
	groups, err := service.GetDocumentPersons(context.Background(), 30, catalog.AudienceInternal)
	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestService_GetDocument_ChapterCitation(t *testing.T) {
	documents := &fakeDocumentRepo{
		documents: map[int]func() catalog.Bibliographic{
			31: func() catalog.Bibliographic {
				base := catalog.NewDocument(31, true, "A Poem on its Frame")
				year := 2004
				return &catalog.BookChapter{
					Document:  base,
					Year:      &year,
					BookTitle: "Collected Studies",
					City:      "Ghent",
				}
			},
		},
		personEdges: map[int][]catalog.PersonEdge{
			31: {
				{RoleSystemName: "author", Person: catalog.NewPerson(1, true, "", "Demoen")},
				{RoleSystemName: "editor", Person: catalog.NewPerson(2, true, "", "Bernard")},
			},
		},
	}
	service := newTestService(nil, nil, nil, documents)

	// A chapter loaded from storage keeps its editor segment: the
	// citation reads editors off the contributor axis, where assembly
	// puts contributor-flagged roles.
	view, err := service.GetDocument(context.Background(), 31, catalog.AudienceInternal)
	require.NoError(t, err)
	assert.Equal(t,
		"Demoen 2004, A Poem on its Frame, in Bernard (ed.), Collected Studies, Ghent",
		view.Citation)
}

// # Write Validation

func TestService_SetManuscriptPersonRoles(t *testing.T) {
	manuscripts := &fakeManuscriptRepo{manuscripts: map[int]func() *catalog.Manuscript{}}
	service := newTestService(nil, manuscripts, nil, nil)

	t.Run("unknown role fails the replacement", func(t *testing.T) {
		err := service.SetManuscriptPersonRoles(context.Background(), 10,
			[]catalog.RoleBinding{{RoleSystemName: "benefactor", PersonID: 1}})
		assert.Error(t, err)
		assert.Nil(t, manuscripts.bindings)
	})

	t.Run("role declared for another kind fails", func(t *testing.T) {
		// Recipient only applies to occurrences.
		err := service.SetManuscriptPersonRoles(context.Background(), 10,
			[]catalog.RoleBinding{{RoleSystemName: "recipient", PersonID: 1}})
		assert.Error(t, err)
	})

	t.Run("valid bindings reach the store", func(t *testing.T) {
		bindings := []catalog.RoleBinding{{RoleSystemName: "scribe", PersonID: 1}}
		err := service.SetManuscriptPersonRoles(context.Background(), 10, bindings)
		require.NoError(t, err)
		assert.Equal(t, bindings, manuscripts.bindings)
	})
}

func TestService_CreateOccurrence_Validation(t *testing.T) {
	occurrences := &fakeOccurrenceRepo{}
	service := newTestService(nil, nil, occurrences, nil)

	t.Run("requires an incipit", func(t *testing.T) {
		err := service.CreateOccurrence(context.Background(), catalog.NewOccurrence(0, false, ""))
		assert.Error(t, err)
	})

	t.Run("folium and page notation are mutually exclusive", func(t *testing.T) {
		o := catalog.NewOccurrence(0, false, "Χαῖρε, κεχαριτωμένη")
		o.FoliumStart = "12r"
		o.PageStart = "34"
		err := service.CreateOccurrence(context.Background(), o)
		assert.Error(t, err)
	})

	t.Run("valid occurrence persists", func(t *testing.T) {
		o := catalog.NewOccurrence(0, false, "Χαῖρε, κεχαριτωμένη")
		o.FoliumStart = "12r"
		o.FoliumEnd = "13v"
		err := service.CreateOccurrence(context.Background(), o)
		require.NoError(t, err)
		assert.Equal(t, 1, o.ID)
	})
}

func TestService_CreateDocument_Validation(t *testing.T) {
	service := newTestService(nil, nil, nil, &fakeDocumentRepo{documents: map[int]func() catalog.Bibliographic{}})

	t.Run("article requires a journal", func(t *testing.T) {
		_, err := service.CreateDocument(context.Background(), catalog.DocumentInput{
			Kind: catalog.KindArticle, Title: "Epigrams on icons",
		})
		assert.Error(t, err)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := service.CreateDocument(context.Background(), catalog.DocumentInput{
			Kind: "pamphlet", Title: "Ephemera",
		})
		assert.Error(t, err)
	})
}

// # Index Export

func TestService_ExportIndex(t *testing.T) {
	persons := &fakePersonRepo{
		persons: map[int]func() *catalog.Person{
			1: func() *catalog.Person { return catalog.NewPerson(1, true, "Theodoros", "Prodromos") },
		},
	}
	service := newTestService(persons, nil, nil, nil)

	t.Run("unknown kind errors", func(t *testing.T) {
		_, err := service.ExportIndex(context.Background(), "colophon")
		assert.Error(t, err)
	})

	t.Run("person export flattens every record", func(t *testing.T) {
		documents, err := service.ExportIndex(context.Background(), catalog.KindPersonRecord)
		require.NoError(t, err)
		require.Len(t, documents, 1)
		assert.Equal(t, "Theodoros Prodromos", documents[0]["name"])
	})
}
