// Package service provides application use cases.
package service

import (
	"context"

	"go.uber.org/zap"

	"resource-catalog-service/internal/domain"
)

// CatalogService serves resource reads for the gateway and the catalog page.
type CatalogService struct {
	store  domain.ResourceStore
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(store domain.ResourceStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// Query returns the resources matching q, filtered by the store.
func (s *CatalogService) Query(ctx context.Context, q domain.Query) ([]*domain.Resource, error) {
	s.logger.Debug("querying resources",
		zap.String("store", s.store.Name()),
		zap.String("type", string(q.Kind)),
		zap.String("subject", q.Subject),
		zap.String("level", q.Level),
		zap.String("search", q.Search),
	)

	resources, err := s.store.List(ctx, q)
	if err != nil {
		s.logger.Error("resource query failed",
			zap.String("store", s.store.Name()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("resource query completed", zap.Int("count", len(resources)))

	return resources, nil
}

// Browse loads the whole catalog and applies f in memory.
// Stats and subject facets need the unfiltered list, so the store is never
// asked to filter here.
func (s *CatalogService) Browse(ctx context.Context, f domain.Filter) (*domain.View, error) {
	resources, err := s.store.List(ctx, domain.Query{})
	if err != nil {
		s.logger.Error("catalog load failed",
			zap.String("store", s.store.Name()),
			zap.Error(err),
		)
		return nil, err
	}

	view := domain.Apply(resources, f)

	s.logger.Debug("catalog browsed",
		zap.String("tab", string(view.Filter.Tab)),
		zap.String("subject", view.Filter.Subject),
		zap.String("level", view.Filter.Level),
		zap.String("search", view.Filter.Search),
		zap.Int("total", view.Stats.Total),
		zap.Int("visible", len(view.Visible)),
	)

	return view, nil
}

// HealthCheck verifies the underlying store is reachable.
func (s *CatalogService) HealthCheck(ctx context.Context) error {
	return s.store.HealthCheck(ctx)
}

// StoreName returns the configured store driver.
func (s *CatalogService) StoreName() string {
	return s.store.Name()
}
