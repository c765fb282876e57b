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
	"github.com/wdebaets/codex/pkg/slice"
)

// # Document Routes

func (handler *Handler) RegisterDocumentRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listDocuments)
	router.Get("/{id}", handler.getDocument)
	router.Get("/{id}/persons", handler.getDocumentPersons)

	// Editor/Admin only
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createDocument)
		editorRoute.Put("/{id}", handler.updateDocument)
		editorRoute.Put("/{id}/persons", handler.setDocumentPersons)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteDocument)
	})
}

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := DocumentFilter{
		Query: request.URL.Query().Get("q"),
		Kind:  DocumentKind(request.URL.Query().Get("kind")),
	}

	documents, total, err := handler.service.ListDocuments(request.Context(), filter, paginationParams.Limit, paginationParams.Offset(), audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Rows project to their citation form so a mixed-kind list stays
	// uniform on the wire.
	audience := audienceFrom(request)
	views := slice.Map(documents, func(document Bibliographic) DocumentView {
		return NewDocumentView(document, audience)
	})

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDocument(writer http.ResponseWriter, request *http.Request) {
	documentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetDocument(request.Context(), documentID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) getDocumentPersons(writer http.ResponseWriter, request *http.Request) {
	documentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	groups, err := handler.service.GetDocumentPersons(request.Context(), documentID, audienceFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) createDocument(writer http.ResponseWriter, request *http.Request) {
	var input DocumentInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.CreateDocument(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, NewDocumentView(document, AudienceInternal))
}

func (handler *Handler) updateDocument(writer http.ResponseWriter, request *http.Request) {
	documentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input DocumentInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.UpdateDocument(request.Context(), documentID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewDocumentView(document, AudienceInternal))
}

func (handler *Handler) deleteDocument(writer http.ResponseWriter, request *http.Request) {
	documentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDocument(request.Context(), documentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setDocumentPersons(writer http.ResponseWriter, request *http.Request) {
	documentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bindings, err := decodeBindings(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetDocumentPersonRoles(request.Context(), documentID, bindings); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respondID(writer, documentID)
}
