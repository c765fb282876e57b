// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"net/http"
	"strconv"

	requestutil "github.com/wdebaets/codex/internal/platform/request"
	"github.com/wdebaets/codex/internal/platform/respond"
	"github.com/wdebaets/codex/internal/platform/sec"
	"github.com/wdebaets/codex/pkg/convert"
	"github.com/wdebaets/codex/pkg/pointer"
)

// # HTTP Layer

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// audienceFrom maps the request's claims to a projection audience.
// Editors and admins see the internal views; members and anonymous
// requests get the public projection.
func audienceFrom(request *http.Request) Audience {
	claims := requestutil.Claims(request)
	if claims != nil && sec.UserRole(claims.Role).AtLeast(sec.RoleEditor) {
		return AudienceInternal
	}
	return AudiencePublic
}

// recordID parses the {id} route parameter.
func recordID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		return 0, err
	}
	return id, nil
}

// boolParam parses an optional three-state query flag; absent means nil.
func boolParam(request *http.Request, name string) *bool {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return pointer.To(convert.ToBool(raw))
}

// decodeIDs reads a {"ids": [...]} replacement payload.
func decodeIDs(request *http.Request) ([]int, error) {
	var payload struct {
		IDs []int `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		return nil, err
	}
	return payload.IDs, nil
}

// decodeBindings reads a {"bindings": [...]} role replacement payload.
func decodeBindings(request *http.Request) ([]RoleBinding, error) {
	var payload struct {
		Bindings []RoleBinding `json:"bindings"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		return nil, err
	}
	return payload.Bindings, nil
}

// respondID is the minimal body for replacement endpoints.
func respondID(writer http.ResponseWriter, id int) {
	respond.OK(writer, map[string]int{"id": id})
}
