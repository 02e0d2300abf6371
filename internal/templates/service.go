// Package templates serves template items through the cache-aside read path.
package templates

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/cache"
	"github.com/gin-gonic/gin"
)

// ListCacheKey holds the full template list.
const ListCacheKey = "templates:all"

// Store is the persistence port for template items.
type Store interface {
	List(ctx context.Context) ([]v1.Template, error)
	Get(ctx context.Context, id int64) (*v1.Template, error)
	Create(ctx context.Context, req v1.CreateTemplateRequest) (*v1.Template, error)
}

// ListResponse is the body of GET /v1/templates.
type ListResponse struct {
	Source    cache.Source  `json:"source"`
	Templates []v1.Template `json:"templates"`
}

type Service struct {
	store Store
	cache *cache.Aside[v1.Template]
	ttl   time.Duration
}

// NewService wires the template store behind aside. A non-positive ttl
// defers to the Aside default.
func NewService(store Store, aside *cache.Aside[v1.Template], ttl time.Duration) *Service {
	if store == nil {
		panic("templates: store must not be nil")
	}
	if aside == nil {
		panic("templates: cache must not be nil")
	}
	return &Service{store: store, cache: aside, ttl: ttl}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/templates")
	g.GET("", s.HandleList)
	g.POST("", s.HandleCreate)
	g.GET("/:id", s.HandleGet)
}

// List returns every template. With useCache the list is read through the
// cache; without it the store is queried and the cache left untouched.
func (s *Service) List(ctx context.Context, useCache bool) (ListResponse, error) {
	if !useCache {
		templates, err := s.store.List(ctx)
		if err != nil {
			return ListResponse{}, err
		}
		return ListResponse{Source: cache.SourceStore, Templates: templates}, nil
	}

	source, templates, err := s.cache.GetOrPopulate(ctx, ListCacheKey, s.ttl, s.store.List)
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{Source: source, Templates: templates}, nil
}

// Create stores a template and drops the cached list so the next read sees it.
func (s *Service) Create(ctx context.Context, req v1.CreateTemplateRequest) (*v1.Template, error) {
	t, err := s.store.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	s.cache.Invalidate(ctx, ListCacheKey)

	slog.Info("Template created", "template_id", t.ID, "status", t.Status)
	return t, nil
}
