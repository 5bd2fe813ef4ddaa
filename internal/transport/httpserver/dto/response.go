package dto

import (
	"time"

	"resource-catalog-service/internal/domain"
)

// ResourceResponse represents a single resource row as returned by the gateway.
// Optional fields are null when unset, matching the store's columns.
type ResourceResponse struct {
	ID          string   `json:"id"`
	CreatedAt   string   `json:"created_at"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Subject     *string  `json:"subject"`
	Level       *string  `json:"level"`
	XP          int      `json:"xp"`
	Duration    *string  `json:"duration"`
	Pages       *int     `json:"pages"`
	Thumbnail   *string  `json:"thumbnail"`
	IsNew       bool     `json:"is_new"`
	Tags        []string `json:"tags"`
}

// FromDomainResource converts domain.Resource to ResourceResponse.
func FromDomainResource(r *domain.Resource) ResourceResponse {
	resp := ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: nullable(r.Description),
		Type:        string(r.Kind),
		URL:         r.URL,
		Subject:     nullable(r.Subject),
		Level:       nullable(string(r.Level)),
		XP:          r.XP,
		Duration:    nullable(r.Duration),
		Thumbnail:   nullable(r.Thumbnail),
		IsNew:       r.IsNew,
		Tags:        r.Tags,
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339Nano)
	}
	if r.Pages > 0 {
		pages := r.Pages
		resp.Pages = &pages
	}

	return resp
}

// FromDomainResources converts a resource list, never returning nil.
func FromDomainResources(resources []*domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, len(resources))
	for i, r := range resources {
		out[i] = FromDomainResource(r)
	}

	return out
}

// StatsResponse represents the unfiltered catalog counters.
type StatsResponse struct {
	Total   int `json:"total"`
	Videos  int `json:"videos"`
	PDFs    int `json:"pdfs"`
	TotalXP int `json:"total_xp"`
}

// FilterResponse echoes the normalized filter state.
type FilterResponse struct {
	Tab     string `json:"tab"`
	Subject string `json:"subject"`
	Level   string `json:"level"`
	Search  string `json:"search"`
}

// CatalogResponse represents the engine output for one filter state.
type CatalogResponse struct {
	Filter   FilterResponse     `json:"filter"`
	Visible  []ResourceResponse `json:"visible"`
	Videos   []ResourceResponse `json:"videos"`
	PDFs     []ResourceResponse `json:"pdfs"`
	Stats    StatsResponse      `json:"stats"`
	Subjects []string           `json:"subjects"`
	Levels   []string           `json:"levels"`
	Empty    bool               `json:"empty"`
}

// FromView converts domain.View to CatalogResponse.
func FromView(v *domain.View) CatalogResponse {
	return CatalogResponse{
		Filter: FilterResponse{
			Tab:     string(v.Filter.Tab),
			Subject: v.Filter.Subject,
			Level:   v.Filter.Level,
			Search:  v.Filter.Search,
		},
		Visible: FromDomainResources(v.Visible),
		Videos:  FromDomainResources(v.Videos),
		PDFs:    FromDomainResources(v.PDFs),
		Stats: StatsResponse{
			Total:   v.Stats.Total,
			Videos:  v.Stats.Videos,
			PDFs:    v.Stats.PDFs,
			TotalXP: v.Stats.TotalXP,
		},
		Subjects: v.Subjects,
		Levels:   domain.LevelFacets(),
		Empty:    v.Empty(),
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
