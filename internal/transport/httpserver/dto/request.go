// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import (
	"strings"

	"resource-catalog-service/internal/domain"
)

// ResourceQueryRequest represents the query parameters of the resource gateway.
// A type other than VIDEO or PDF is ignored, not rejected.
type ResourceQueryRequest struct {
	Type    string `query:"type" validate:"max=20"`
	Subject string `query:"subject" validate:"max=100"`
	Level   string `query:"level" validate:"max=50"`
	Search  string `query:"search" validate:"max=200"`
}

// ToQuery converts ResourceQueryRequest to domain.Query.
// Values are passed through untouched: type must be exactly VIDEO or PDF and
// surrounding spaces in search are part of the matched text.
func (r *ResourceQueryRequest) ToQuery() domain.Query {
	return domain.NewQuery(r.Type, r.Subject, r.Level, r.Search)
}

// CatalogRequest represents the filter state of the catalog page.
type CatalogRequest struct {
	Tab     string `query:"tab" validate:"max=20"`
	Subject string `query:"subject" validate:"max=100"`
	Level   string `query:"level" validate:"max=50"`
	Search  string `query:"search" validate:"max=200"`
}

// ToFilter converts CatalogRequest to domain.Filter.
// Unknown tabs fall back to ALL and unknown levels to any level.
func (r *CatalogRequest) ToFilter() domain.Filter {
	f := domain.Filter{
		Tab:     domain.ParseTab(strings.ToUpper(strings.TrimSpace(r.Tab))),
		Subject: strings.TrimSpace(r.Subject),
		Level:   strings.TrimSpace(r.Level),
		Search:  strings.TrimSpace(r.Search),
	}
	if _, ok := domain.ParseLevel(f.Level); !ok {
		f.Level = domain.LevelAny
	}
	f.Normalize()

	return f
}
