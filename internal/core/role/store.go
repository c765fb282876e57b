// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package role

import "context"

type Repository interface {
	ListRoles(context context.Context) ([]Role, error)
	GetRole(context context.Context, id int) (Role, error)
	CreateRole(context context.Context, r *Role) error
	UpdateRole(context context.Context, r *Role) error
	DeleteRole(context context.Context, id int) error
}
