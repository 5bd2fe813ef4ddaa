package postgres

import (
	"time"

	"github.com/lib/pq"

	"resource-catalog-service/internal/domain"
)

// ResourceModel is the GORM model for the resources table.
// Nullable columns map to pointers.
type ResourceModel struct {
	ID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt   time.Time      `gorm:"not null;default:now();index"`
	Title       string         `gorm:"type:text;not null"`
	Description *string        `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(10);not null;index"`
	URL         string         `gorm:"column:url;type:text;not null"`
	Subject     *string        `gorm:"type:varchar(100);index"`
	Level       *string        `gorm:"type:varchar(50);index"`
	XP          int            `gorm:"column:xp;not null;default:0"`
	Duration    *string        `gorm:"type:varchar(20)"`
	Pages       *int           `gorm:"type:integer"`
	Thumbnail   *string        `gorm:"type:text"`
	IsNew       bool           `gorm:"not null;default:false"`
	Tags        pq.StringArray `gorm:"type:text[]"`
}

// TableName returns the table name for ResourceModel.
func (ResourceModel) TableName() string {
	return "resources"
}

// ToDomain converts ResourceModel to domain.Resource.
func (m *ResourceModel) ToDomain() *domain.Resource {
	r := &domain.Resource{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Title:       m.Title,
		Description: deref(m.Description),
		Kind:        domain.Kind(m.Type),
		URL:         m.URL,
		Subject:     deref(m.Subject),
		Level:       domain.Level(deref(m.Level)),
		XP:          m.XP,
		Duration:    deref(m.Duration),
		Thumbnail:   deref(m.Thumbnail),
		IsNew:       m.IsNew,
		Tags:        []string(m.Tags),
	}
	if m.Pages != nil && *m.Pages > 0 {
		r.Pages = *m.Pages
	}

	return r
}

// FromDomain creates a ResourceModel from domain.Resource. Empty optional
// fields are stored as NULL.
func FromDomain(r *domain.Resource) *ResourceModel {
	m := &ResourceModel{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		Title:       r.Title,
		Description: ptr(r.Description),
		Type:        string(r.Kind),
		URL:         r.URL,
		Subject:     ptr(r.Subject),
		Level:       ptr(string(r.Level)),
		XP:          r.XP,
		Duration:    ptr(r.Duration),
		Thumbnail:   ptr(r.Thumbnail),
		IsNew:       r.IsNew,
		Tags:        pq.StringArray(r.Tags),
	}
	if r.Pages > 0 {
		pages := r.Pages
		m.Pages = &pages
	}

	return m
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
