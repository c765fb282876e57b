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

// # Person Routes

func (handler *Handler) RegisterPersonRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listPersons)
	router.Get("/{id}", handler.getPerson)
	router.Get("/{id}/manuscripts", handler.getPersonManuscripts)
	router.Get("/{id}/documents", handler.getPersonDocuments)

	// Editor/Admin only
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createPerson)
		editorRoute.Patch("/{id}", handler.updatePerson)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deletePerson)
	})
}

func (handler *Handler) listPersons(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := PersonFilter{
		Query:      request.URL.Query().Get("q"),
		Historical: boolParam(request, "historical"),
		Modern:     boolParam(request, "modern"),
		Editorial:  boolParam(request, "editorial"),
	}

	persons, total, err := handler.service.ListPersons(request.Context(), filter, paginationParams.Limit, paginationParams.Offset(), audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, persons, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	personID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetPerson(request.Context(), personID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) getPersonManuscripts(writer http.ResponseWriter, request *http.Request) {
	personID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	groups, err := handler.service.GetPersonManuscripts(request.Context(), personID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) getPersonDocuments(writer http.ResponseWriter, request *http.Request) {
	personID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	groups, err := handler.service.GetPersonDocuments(request.Context(), personID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) createPerson(writer http.ResponseWriter, request *http.Request) {
	input := NewPerson(0, false, "", "")
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePerson(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePerson(writer http.ResponseWriter, request *http.Request) {
	personID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := NewPerson(0, false, "", "")
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePerson(request.Context(), personID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePerson(writer http.ResponseWriter, request *http.Request) {
	personID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePerson(request.Context(), personID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
