package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-catalog-service/internal/domain"
)

func TestFromDomainResource_WireNames(t *testing.T) {
	r := &domain.Resource{
		ID:        "42",
		CreatedAt: time.Date(2025, 3, 2, 9, 15, 0, 0, time.UTC),
		Title:     "Guide Next.js",
		Kind:      domain.KindPDF,
		URL:       "https://example.com/next.pdf",
		Subject:   "Next.js",
		XP:        30,
		Pages:     40,
		IsNew:     true,
	}

	data, err := json.Marshal(FromDomainResource(r))
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "2025-03-02T09:15:00Z", m["created_at"])
	assert.Equal(t, "PDF", m["type"])
	assert.Equal(t, true, m["is_new"])
	assert.Equal(t, float64(40), m["pages"])
	assert.Equal(t, "Next.js", m["subject"])
	assert.Contains(t, m, "level")
	assert.Nil(t, m["level"], "unset level is null")
	assert.Nil(t, m["description"])
	assert.Nil(t, m["duration"])
}

func TestFromView(t *testing.T) {
	resources := []*domain.Resource{
		{ID: "1", Kind: domain.KindVideo, Subject: "React", XP: 50},
		{ID: "2", Kind: domain.KindPDF, Subject: "Vue", XP: 30},
	}

	resp := FromView(domain.Apply(resources, domain.Filter{Tab: domain.TabVideo}))

	assert.Equal(t, "VIDEO", resp.Filter.Tab)
	assert.Equal(t, domain.SubjectAny, resp.Filter.Subject)
	require.Len(t, resp.Visible, 1)
	assert.Equal(t, "1", resp.Visible[0].ID)
	assert.Len(t, resp.Videos, 1)
	assert.NotNil(t, resp.PDFs)
	assert.Empty(t, resp.PDFs)
	assert.Equal(t, StatsResponse{Total: 2, Videos: 1, PDFs: 1, TotalXP: 80}, resp.Stats)
	assert.Equal(t, []string{"Tous", "React", "Vue"}, resp.Subjects)
	assert.Equal(t, []string{"Tous niveaux", "Débutant", "Intermédiaire", "Avancé"}, resp.Levels)
	assert.False(t, resp.Empty)
}
