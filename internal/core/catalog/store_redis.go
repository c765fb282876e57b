// Copyright (c) 2026 Codex. All rights reserved.
// Author: w.debaets@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wdebaets/codex/internal/platform/constants"
)

// ViewCache keeps rendered projections in Redis so the assembly work
// (row loads, graph merges, reductions) only runs on a miss.
//
// # Invalidation
//
// Writes invalidate by record: one record's views and the affected
// index exports are dropped together. A stale related record repairs
// itself at TTL expiry; visibility-sensitive callers must treat the
// cache as an optimization, never as the authority.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewCache constructs a projection cache with the given TTL.
func NewViewCache(client *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{client: client, ttl: ttl}
}

// viewKey builds "catalog:view:<kind>:<id>:<audience>".
func viewKey(kind string, id int, audience Audience) string {
	return fmt.Sprintf("%s%s:%d:%d", constants.RedisPrefixView, kind, id, audience)
}

// indexKey builds "catalog:index:<kind>".
func indexKey(kind string) string {
	return constants.RedisPrefixIndex + kind
}

// GetView loads a cached projection into target. The boolean reports a
// hit; cache errors degrade to a miss so Redis outages never break reads.
func (cache *ViewCache) GetView(context context.Context, kind string, id int, audience Audience, target any) bool {
	if cache == nil {
		return false
	}

	payload, err := cache.client.Get(context, viewKey(kind, id, audience)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, target) == nil
}

// SetView stores a rendered projection.
func (cache *ViewCache) SetView(context context.Context, kind string, id int, audience Audience, view any) error {
	if cache == nil {
		return nil
	}

	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("cache: marshal %s view: %w", kind, err)
	}
	return cache.client.Set(context, viewKey(kind, id, audience), payload, cache.ttl).Err()
}

// GetIndex loads a cached index export.
func (cache *ViewCache) GetIndex(context context.Context, kind string) ([]SearchDocument, bool) {
	if cache == nil {
		return nil, false
	}

	payload, err := cache.client.Get(context, indexKey(kind)).Bytes()
	if err != nil {
		return nil, false
	}

	var documents []SearchDocument
	if json.Unmarshal(payload, &documents) != nil {
		return nil, false
	}
	return documents, true
}

// SetIndex stores an index export.
func (cache *ViewCache) SetIndex(context context.Context, kind string, documents []SearchDocument) error {
	if cache == nil {
		return nil
	}

	payload, err := json.Marshal(documents)
	if err != nil {
		return fmt.Errorf("cache: marshal %s index: %w", kind, err)
	}
	return cache.client.Set(context, indexKey(kind), payload, cache.ttl).Err()
}

// InvalidateIndex drops only the kind's index export, for reference
// data changes that touch no record directly.
func (cache *ViewCache) InvalidateIndex(context context.Context, kind string) error {
	if cache == nil {
		return nil
	}

	if err := cache.client.Del(context, indexKey(kind)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache: invalidate %s index: %w", kind, err)
	}
	return nil
}

// InvalidateRecord drops both audience views of one record and the
// kind's index export.
func (cache *ViewCache) InvalidateRecord(context context.Context, kind string, id int) error {
	if cache == nil {
		return nil
	}

	err := cache.client.Del(context,
		viewKey(kind, id, AudiencePublic),
		viewKey(kind, id, AudienceInternal),
		indexKey(kind),
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache: invalidate %s %d: %w", kind, id, err)
	}
	return nil
}
