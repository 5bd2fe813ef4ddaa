package postgres

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resource-catalog-service/internal/domain"
)

// Repository implements domain.ResourceStore using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Name returns the driver identifier.
func (r *Repository) Name() string {
	return "postgres"
}

// List retrieves the resources matching q, newest first.
func (r *Repository) List(ctx context.Context, q domain.Query) ([]*domain.Resource, error) {
	var models []ResourceModel

	err := r.buildQuery(q).
		WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}

	resources := make([]*domain.Resource, len(models))
	for i := range models {
		resources[i] = models[i].ToDomain()
	}

	return resources, nil
}

// HealthCheck verifies the database connection is alive.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return HealthCheck(ctx, r.db)
}

// Create inserts resources. Used to seed the catalog.
func (r *Repository) Create(ctx context.Context, resources ...*domain.Resource) error {
	if len(resources) == 0 {
		return nil
	}

	models := make([]*ResourceModel, len(resources))
	for i, res := range resources {
		models[i] = FromDomain(res)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return fmt.Errorf("creating resources: %w", err)
	}

	// Copy back database-generated fields
	for i, m := range models {
		resources[i].ID = m.ID
		resources[i].CreatedAt = m.CreatedAt
	}

	return nil
}

// buildQuery builds the WHERE clause for q.
// All values are bound as parameters; the search term is escaped so LIKE
// wildcards in user input match literally.
func (r *Repository) buildQuery(q domain.Query) *gorm.DB {
	query := r.db.Model(&ResourceModel{})

	if q.Kind != "" {
		query = query.Where("type = ?", string(q.Kind))
	}
	if q.Subject != "" {
		query = query.Where("subject = ?", q.Subject)
	}
	if q.Level != "" {
		query = query.Where("level = ?", q.Level)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		query = query.Where(
			"(title ILIKE ? OR description ILIKE ? OR subject ILIKE ?)",
			pattern, pattern, pattern,
		)
	}

	return query
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
