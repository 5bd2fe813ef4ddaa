package rest

import (
	"time"

	"resource-catalog-service/internal/domain"
)

// Row represents a single resource row returned by the store.
// Nullable columns decode to pointers.
type Row struct {
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

// APIError is the error body returned by the store.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// ToDomain converts Row to domain.Resource.
func (r *Row) ToDomain() *domain.Resource {
	createdAt := parseTimestamp(r.CreatedAt)

	res := &domain.Resource{
		ID:          r.ID,
		CreatedAt:   createdAt,
		Title:       r.Title,
		Description: deref(r.Description),
		Kind:        domain.Kind(r.Type),
		URL:         r.URL,
		Subject:     deref(r.Subject),
		Level:       domain.Level(deref(r.Level)),
		XP:          r.XP,
		Duration:    deref(r.Duration),
		Thumbnail:   deref(r.Thumbnail),
		IsNew:       r.IsNew,
		Tags:        r.Tags,
	}
	if r.Pages != nil && *r.Pages > 0 {
		res.Pages = *r.Pages
	}

	return res
}

// timestampLayouts are tried in order. A timestamp column without time zone
// is serialised without an offset and is read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp returns the zero time when no layout matches.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
