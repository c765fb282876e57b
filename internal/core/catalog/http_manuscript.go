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
	"github.com/wdebaets/codex/pkg/pagination"
)

// # Manuscript Routes

func (handler *Handler) RegisterManuscriptRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listManuscripts)
	router.Get("/{id}", handler.getManuscript)
	router.Get("/{id}/persons", handler.getManuscriptPersons)
	router.Get("/{id}/occurrences", handler.getManuscriptOccurrences)

	// Editor/Admin only
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createManuscript)
		editorRoute.Patch("/{id}", handler.updateManuscript)
		editorRoute.Put("/{id}/persons", handler.setManuscriptPersons)
		editorRoute.Put("/{id}/contents", handler.setManuscriptContents)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteManuscript)
	})
}

func (handler *Handler) listManuscripts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := ManuscriptFilter{
		Query:  request.URL.Query().Get("q"),
		City:   request.URL.Query().Get("city"),
		Status: Status(request.URL.Query().Get("status")),
	}

	manuscripts, total, err := handler.service.ListManuscripts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset(), audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, manuscripts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getManuscript(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetManuscript(request.Context(), manuscriptID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) getManuscriptPersons(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	groups, err := handler.service.GetManuscriptPersons(request.Context(), manuscriptID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) getManuscriptOccurrences(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	refs, err := handler.service.GetManuscriptOccurrences(request.Context(), manuscriptID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, refs)
}

func (handler *Handler) createManuscript(writer http.ResponseWriter, request *http.Request) {
	input := NewManuscript(0, false, "", "", "")
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateManuscript(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateManuscript(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := NewManuscript(0, false, "", "", "")
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateManuscript(request.Context(), manuscriptID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteManuscript(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteManuscript(request.Context(), manuscriptID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setManuscriptPersons(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bindings, err := decodeBindings(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetManuscriptPersonRoles(request.Context(), manuscriptID, bindings); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respondID(writer, manuscriptID)
}

func (handler *Handler) setManuscriptContents(writer http.ResponseWriter, request *http.Request) {
	manuscriptID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contentIDs, err := decodeIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetManuscriptContents(request.Context(), manuscriptID, contentIDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respondID(writer, manuscriptID)
}
