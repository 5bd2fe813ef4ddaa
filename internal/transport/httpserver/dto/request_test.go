package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-catalog-service/internal/domain"
	"resource-catalog-service/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.New()
}

// TestResourceQueryRequest_Validation tests the parameter length limits.
func TestResourceQueryRequest_Validation(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		req       ResourceQueryRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "empty request",
			req:  ResourceQueryRequest{},
		},
		{
			name: "all parameters",
			req:  ResourceQueryRequest{Type: "VIDEO", Subject: "React", Level: "Débutant", Search: "hooks"},
		},
		{
			name: "unknown type passes validation",
			req:  ResourceQueryRequest{Type: "podcast"},
		},
		{
			name: "search at limit",
			req:  ResourceQueryRequest{Search: strings.Repeat("a", 200)},
		},
		{
			name:      "search too long",
			req:       ResourceQueryRequest{Search: strings.Repeat("a", 201)},
			wantErr:   true,
			wantField: "search",
		},
		{
			name:      "subject too long",
			req:       ResourceQueryRequest{Subject: strings.Repeat("s", 101)},
			wantErr:   true,
			wantField: "subject",
		},
		{
			name:      "level too long",
			req:       ResourceQueryRequest{Level: strings.Repeat("l", 51)},
			wantErr:   true,
			wantField: "level",
		},
		{
			name:      "type too long",
			req:       ResourceQueryRequest{Type: strings.Repeat("t", 21)},
			wantErr:   true,
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			verrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "expected ValidationErrors")
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Equal(t, "max", verrs[0].Tag)
		})
	}
}

// TestResourceQueryRequest_ToQuery tests translation to the store query.
func TestResourceQueryRequest_ToQuery(t *testing.T) {
	tests := []struct {
		name     string
		req      ResourceQueryRequest
		expected domain.Query
	}{
		{
			name:     "empty",
			req:      ResourceQueryRequest{},
			expected: domain.Query{},
		},
		{
			name: "all parameters",
			req:  ResourceQueryRequest{Type: "PDF", Subject: "React", Level: "Avancé", Search: " guide "},
			expected: domain.Query{
				Kind:    domain.KindPDF,
				Subject: "React",
				Level:   "Avancé",
				Search:  " guide ",
			},
		},
		{
			name:     "padded type ignored",
			req:      ResourceQueryRequest{Type: " VIDEO "},
			expected: domain.Query{},
		},
		{
			name:     "unknown type ignored",
			req:      ResourceQueryRequest{Type: "podcast", Subject: "Vue"},
			expected: domain.Query{Subject: "Vue"},
		},
		{
			name:     "type is case sensitive",
			req:      ResourceQueryRequest{Type: "video"},
			expected: domain.Query{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToQuery())
		})
	}
}

// TestCatalogRequest_ToFilter tests the page filter normalization.
func TestCatalogRequest_ToFilter(t *testing.T) {
	tests := []struct {
		name     string
		req      CatalogRequest
		expected domain.Filter
	}{
		{
			name:     "empty is default",
			req:      CatalogRequest{},
			expected: domain.DefaultFilter(),
		},
		{
			name: "explicit values",
			req:  CatalogRequest{Tab: "PDF", Subject: "React", Level: "Intermédiaire", Search: "hooks"},
			expected: domain.Filter{
				Tab:     domain.TabPDF,
				Subject: "React",
				Level:   "Intermédiaire",
				Search:  "hooks",
			},
		},
		{
			name: "lower case tab accepted",
			req:  CatalogRequest{Tab: "video"},
			expected: domain.Filter{
				Tab:     domain.TabVideo,
				Subject: domain.SubjectAny,
				Level:   domain.LevelAny,
			},
		},
		{
			name:     "unknown tab and level fall back",
			req:      CatalogRequest{Tab: "AUDIO", Level: "Expert"},
			expected: domain.DefaultFilter(),
		},
		{
			name:     "sentinels kept",
			req:      CatalogRequest{Tab: "ALL", Subject: "Tous", Level: "Tous niveaux"},
			expected: domain.DefaultFilter(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToFilter())
		})
	}
}
