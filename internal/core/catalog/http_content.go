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
	"github.com/wdebaets/codex/pkg/slice"
)

// contentNode is the wire form of a classification node; the parent
// travels as a bare id.
type contentNode struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	ParentID *int   `json:"parent_id,omitempty"`
}

func newContentNode(c *Content) contentNode {
	node := contentNode{ID: c.ID, Name: c.Name, Path: c.DisplayName()}
	if c.Parent != nil {
		node.ParentID = &c.Parent.ID
	}
	return node
}

// # Content Routes

func (handler *Handler) RegisterContentRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listContents)

	// Editor/Admin only
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createContent)
		editorRoute.Patch("/{id}", handler.updateContent)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteContent)
	})
}

func (handler *Handler) listContents(writer http.ResponseWriter, request *http.Request) {
	contents, err := handler.service.ListContents(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(contents, newContentNode))
}

func decodeContent(request *http.Request) (*Content, error) {
	var node contentNode
	if err := requestutil.DecodeJSON(request, &node); err != nil {
		return nil, err
	}

	content := &Content{Name: node.Name}
	if node.ParentID != nil {
		content.Parent = &Content{ID: *node.ParentID}
	}
	return content, nil
}

func (handler *Handler) createContent(writer http.ResponseWriter, request *http.Request) {
	content, err := decodeContent(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateContent(request.Context(), content); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, newContentNode(content))
}

func (handler *Handler) updateContent(writer http.ResponseWriter, request *http.Request) {
	contentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	content, err := decodeContent(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateContent(request.Context(), contentID, content); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newContentNode(content))
}

func (handler *Handler) deleteContent(writer http.ResponseWriter, request *http.Request) {
	contentID, err := recordID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteContent(request.Context(), contentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
