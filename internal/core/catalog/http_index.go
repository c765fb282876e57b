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
)

// # Index Routes

// Index exports carry the internal parallel fields, so the whole group
// is admin-gated: the search engine syncs with an admin credential.
func (handler *Handler) RegisterIndexRoutes(router chi.Router) {
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Get("/{kind}", handler.exportIndex)
	})
}

func (handler *Handler) exportIndex(writer http.ResponseWriter, request *http.Request) {
	kind := requestutil.Param(request, "kind")

	documents, err := handler.service.ExportIndex(request.Context(), kind)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, documents)
}
