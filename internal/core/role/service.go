// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package role

import (
	"context"
	"log/slog"

	"github.com/wdebaets/codex/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListRoles(context context.Context) ([]Role, error) {
	return service.repo.ListRoles(context)
}

func (service *Service) GetRole(context context.Context, id int) (Role, error) {
	return service.repo.GetRole(context, id)
}

// LoadCatalog assembles the strict lookup catalog used by record
// assembly. An empty store falls back to the seeded default set so a
// fresh deployment can serve records immediately.
func (service *Service) LoadCatalog(context context.Context) (*Catalog, error) {
	roles, err := service.repo.ListRoles(context)
	if err != nil {
		return nil, err
	}

	if len(roles) == 0 {
		service.logger.Warn("role_catalog_empty_using_defaults")
		return Default(), nil
	}

	return NewCatalog(roles...), nil
}

func (service *Service) CreateRole(context context.Context, r *Role) error {
	if err := service.validateRole(r); err != nil {
		return err
	}

	if err := service.repo.CreateRole(context, r); err != nil {
		return err
	}

	service.logger.Info("role_created", slog.String("system_name", r.SystemName))
	return nil
}

func (service *Service) UpdateRole(context context.Context, id int, r *Role) error {
	r.ID = id
	if err := service.validateRole(r); err != nil {
		return err
	}

	if err := service.repo.UpdateRole(context, r); err != nil {
		return err
	}

	service.logger.Info("role_updated", slog.Int("role_id", r.ID))
	return nil
}

func (service *Service) DeleteRole(context context.Context, id int) error {
	if err := service.repo.DeleteRole(context, id); err != nil {
		return err
	}

	service.logger.Warn("role_deleted", slog.Int("role_id", id))
	return nil
}

func (service *Service) validateRole(r *Role) error {
	validator := &validate.Validator{}

	validator.Required(FieldSystemName, r.SystemName).
		Slug(FieldSystemName, r.SystemName).
		MaxLen(FieldSystemName, r.SystemName, 50)
	validator.Required(FieldName, r.Name).MaxLen(FieldName, r.Name, 100)

	if len(r.Usage) == 0 {
		validator.Custom(FieldUsage, true, "At least one usage is required")
	}
	for _, u := range r.Usage {
		switch u {
		case UsageManuscript, UsageOccurrence, UsageDocument:
		default:
			validator.Custom(FieldUsage, true, "Unknown usage: "+string(u))
		}
	}

	return validator.Err()
}
