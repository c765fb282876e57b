// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"github.com/wdebaets/codex/internal/core/role"
)

// Bibliographic document subtypes. Every kind renders a citation from a
// fixed template (missing optional fields are simply omitted) and a
// sort key over the fixed field sequence (author, year, volume) so that
// mixed bibliography lists order consistently across kinds.

// # Books

// Book is a monograph.
type Book struct {
	Document

	Year        *int   `json:"year,omitempty"`
	Forthcoming bool   `json:"forthcoming"`
	City        string `json:"city"`
	Publisher   string `json:"publisher,omitempty"`
	Volume      string `json:"volume,omitempty"`
}

func (b *Book) Kind() DocumentKind { return KindBook }

// SortKey orders books by first author, year, then volume.
func (b *Book) SortKey() string {
	return buildSortKey(
		sortKeyPrefix,
		b.authorSortToken(),
		yearSortToken(b.Year, b.Forthcoming),
		volumeSortToken(b.Volume),
	)
}

// Citation renders "A, B 1999, Title, City".
func (b *Book) Citation() string {
	return joinCitation(
		b.citationHead(b.Year, b.Forthcoming),
		b.Title,
		b.Volume,
		b.City,
		b.Publisher,
	)
}

// # Articles

// Article is a journal article.
type Article struct {
	Document

	Year        *int   `json:"year,omitempty"`
	Forthcoming bool   `json:"forthcoming"`
	Journal     string `json:"journal"`
	Volume      string `json:"volume,omitempty"`
	Number      string `json:"number,omitempty"`
	Pages       PageRange
}

func (a *Article) Kind() DocumentKind { return KindArticle }

func (a *Article) SortKey() string {
	return buildSortKey(
		sortKeyPrefix,
		a.authorSortToken(),
		yearSortToken(a.Year, a.Forthcoming),
		volumeSortToken(a.Volume),
	)
}

// Citation renders "A 1999, Title, Journal, 12, 3, 45-67".
func (a *Article) Citation() string {
	return joinCitation(
		a.citationHead(a.Year, a.Forthcoming),
		a.Title,
		a.Journal,
		a.Volume,
		a.Number,
		a.Pages.String(),
	)
}

// # Book Chapters

// BookChapter is a contribution inside an edited volume.
type BookChapter struct {
	Document

	Year        *int   `json:"year,omitempty"`
	Forthcoming bool   `json:"forthcoming"`
	BookTitle   string `json:"book_title"`
	City        string `json:"city,omitempty"`
	Pages       PageRange
}

func (c *BookChapter) Kind() DocumentKind { return KindBookChapter }

// SortKey carries no volume; the slot takes the maximal filler so
// chapters interleave correctly with volumed kinds.
func (c *BookChapter) SortKey() string {
	return buildSortKey(
		sortKeyPrefix,
		c.authorSortToken(),
		yearSortToken(c.Year, c.Forthcoming),
		fillerVolume,
	)
}

// Citation renders
// "A 1999, Title, in E (ed.), Book Title, City, 45-67".
func (c *BookChapter) Citation() string {
	editors := c.ContributorsWithRole(role.SystemNameEditor)

	inSegment := c.BookTitle
	if len(editors) > 0 {
		inSegment = citationNames(editors) + " " + editorLabel(len(editors)) + ", " + c.BookTitle
	}
	if inSegment != "" {
		inSegment = "in " + inSegment
	}

	return joinCitation(
		c.citationHead(c.Year, c.Forthcoming),
		c.Title,
		inSegment,
		c.City,
		c.Pages.String(),
	)
}

// # Doctoral Theses

// PhdThesis is a doctoral dissertation.
type PhdThesis struct {
	Document

	Year        *int   `json:"year,omitempty"`
	Forthcoming bool   `json:"forthcoming"`
	Institution string `json:"institution"`
	City        string `json:"city,omitempty"`
}

func (p *PhdThesis) Kind() DocumentKind { return KindPhdThesis }

func (p *PhdThesis) SortKey() string {
	return buildSortKey(
		sortKeyPrefix,
		p.authorSortToken(),
		yearSortToken(p.Year, p.Forthcoming),
		fillerVolume,
	)
}

// Citation renders "A 1999, Title, PhD thesis, Institution, City".
func (p *PhdThesis) Citation() string {
	return joinCitation(
		p.citationHead(p.Year, p.Forthcoming),
		p.Title,
		"PhD thesis",
		p.Institution,
		p.City,
	)
}

// # Online Sources

// OnlineSource is a database or digital resource cited by URL.
type OnlineSource struct {
	Document

	URL string `json:"url"`

	// LastAccessed is the consultation year shown in the citation.
	LastAccessed *int `json:"last_accessed,omitempty"`
}

func (o *OnlineSource) Kind() DocumentKind { return KindOnlineSource }

// SortKey: online sources rarely carry an author or year; both slots
// degrade to their fillers naturally.
func (o *OnlineSource) SortKey() string {
	return buildSortKey(
		sortKeyPrefix,
		o.authorSortToken(),
		yearSortToken(o.LastAccessed, false),
		fillerVolume,
	)
}

// Citation renders "Title (consulted 2024), https://…".
func (o *OnlineSource) Citation() string {
	title := o.Title
	if o.LastAccessed != nil {
		title += " (consulted " + yearCitationToken(o.LastAccessed, false) + ")"
	}
	return joinCitation(title, o.URL)
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldTitle       = "title"
	FieldKind        = "kind"
	FieldYear        = "year"
	FieldVolume      = "volume"
	FieldJournal     = "journal"
	FieldNumber      = "number"
	FieldBookTitle   = "book_title"
	FieldPublisher   = "publisher"
	FieldInstitution = "institution"
	FieldURL         = "url"
	FieldPages       = "pages"
)
