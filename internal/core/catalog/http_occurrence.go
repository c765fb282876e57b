// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wdebaets/codex/internal/platform/middleware"
	requestutil "github.com/wdebaets/codex/internal/platform/request"
	"github.com/wdebaets/codex/internal/platform/respond"
	"github.com/wdebaets/codex/internal/platform/sec"
	"github.com/wdebaets/codex/pkg/convert"
	"github.com/wdebaets/codex/pkg/pagination"
	"github.com/wdebaets/codex/pkg/pointer"
)

// occurrencePayload wraps the decoded occurrence with the witness
// reference, which travels as a bare id on the wire.
type occurrencePayload struct {
	*Occurrence
	ManuscriptID *int `json:"manuscript_id"`
}

func decodeOccurrence(request *http.Request) (*Occurrence, error) {
	payload := occurrencePayload{Occurrence: NewOccurrence(0, false, "")}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		return nil, err
	}
	if payload.ManuscriptID != nil {
		payload.Occurrence.Manuscript = NewManuscript(*payload.ManuscriptID, false, "", "", "")
	}
	return payload.Occurrence, nil
}

// # Occurrence Routes

func (handler *Handler) RegisterOccurrenceRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listOccurrences)
	router.Get("/{id}", handler.getOccurrence)
	router.Get("/{id}/related", handler.getOccurrenceRelated)

	// Editor/Admin only
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createOccurrence)
		editorRoute.Patch("/{id}", handler.updateOccurrence)
		editorRoute.Put("/{id}/persons", handler.setOccurrencePersons)
		editorRoute.Put("/{id}/contents", handler.setOccurrenceContents)
		editorRoute.Put("/{id}/related", handler.setOccurrenceRelated)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteOccurrence)
	})
}

func (handler *Handler) listOccurrences(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := OccurrenceFilter{
		Query: request.URL.Query().Get("q"),
	}
	if raw := request.URL.Query().Get("manuscript_id"); raw != "" {
		filter.ManuscriptID = pointer.To(convert.ToInt(raw))
	}

	occurrences, total, err := handler.service.ListOccurrences(request.Context(), filter, paginationParams.Limit, paginationParams.Offset(), audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, occurrences, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getOccurrence(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetOccurrence(request.Context(), occurrenceID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) getOccurrenceRelated(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views, err := handler.service.GetOccurrenceRelated(request.Context(), occurrenceID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

func (handler *Handler) createOccurrence(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeOccurrence(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOccurrence(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateOccurrence(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := decodeOccurrence(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOccurrence(request.Context(), occurrenceID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteOccurrence(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOccurrence(request.Context(), occurrenceID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setOccurrencePersons(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bindings, err := decodeBindings(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetOccurrencePersonRoles(request.Context(), occurrenceID, bindings); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respondID(writer, occurrenceID)
}

func (handler *Handler) setOccurrenceContents(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contentIDs, err := decodeIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetOccurrenceContents(request.Context(), occurrenceID, contentIDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respondID(writer, occurrenceID)
}

func (handler *Handler) setOccurrenceRelated(writer http.ResponseWriter, request *http.Request) {
	occurrenceID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload struct {
		Links []RelatedInput `json:"links"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetOccurrenceRelated(request.Context(), occurrenceID, payload.Links); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respondID(writer, occurrenceID)
}
