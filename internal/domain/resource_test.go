package domain

import (
	"reflect"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"VIDEO", KindVideo, true},
		{"PDF", KindPDF, true},
		{"video", "", false},
		{"", "", false},
		{"ARTICLE", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if l, ok := ParseLevel("Avancé"); !ok || l != LevelAdvanced {
		t.Errorf("expected Avancé to parse, got (%q, %v)", l, ok)
	}
	if _, ok := ParseLevel("Expert"); ok {
		t.Error("expected unknown level to be rejected")
	}
	if _, ok := ParseLevel(LevelAny); ok {
		t.Error("expected the any sentinel not to be a level")
	}
}

func TestResource_IsVideo(t *testing.T) {
	video := &Resource{Kind: KindVideo}
	pdf := &Resource{Kind: KindPDF}

	if !video.IsVideo() || video.IsPDF() {
		t.Error("expected video to be a video only")
	}
	if pdf.IsVideo() || !pdf.IsPDF() {
		t.Error("expected pdf to be a pdf only")
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https url", "https://example.com/guide.pdf", true},
		{"http url", "http://example.com/x", true},
		{"empty", "", false},
		{"placeholder with valid scheme", "https://TON_ID_PLACEHOLDER", false},
		{"placeholder in query", "https://youtube.com/watch?v=TON_ID", false},
		{"no scheme", "example.com/x", false},
		{"other scheme", "ftp://example.com/x", false},
		{"relative", "/files/guide.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidURL(tt.url); got != tt.want {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
			r := &Resource{URL: tt.url}
			if got := r.HasValidURL(); got != tt.want {
				t.Errorf("HasValidURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResource_ThumbnailURL(t *testing.T) {
	tests := []struct {
		name     string
		resource *Resource
		expected string
	}{
		{
			name: "stored thumbnail wins",
			resource: &Resource{
				URL:       "https://www.youtube.com/watch?v=abc123",
				Thumbnail: "https://cdn.example.com/thumb.png",
			},
			expected: "https://cdn.example.com/thumb.png",
		},
		{
			name:     "youtube watch url",
			resource: &Resource{URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
			expected: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:     "watch url with extra params",
			resource: &Resource{URL: "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s"},
			expected: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:     "short url",
			resource: &Resource{URL: "https://youtu.be/dQw4w9WgXcQ"},
			expected: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:     "non youtube url falls back",
			resource: &Resource{URL: "http://example.com/x"},
			expected: "",
		},
		{
			name:     "empty url falls back",
			resource: &Resource{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resource.ThumbnailURL(); got != tt.expected {
				t.Errorf("ThumbnailURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResource_DisplayTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{"nil", nil, nil},
		{"fewer than max", []string{"go"}, []string{"go"}},
		{"exactly max", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"more than max", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resource{Tags: tt.tags}
			if got := r.DisplayTags(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DisplayTags() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewQuery(t *testing.T) {
	q := NewQuery("VIDEO", "React", "Débutant", "hooks")
	if q.Kind != KindVideo || q.Subject != "React" || q.Level != "Débutant" || q.Search != "hooks" {
		t.Errorf("unexpected query: %+v", q)
	}

	ignored := NewQuery("podcast", "", "", "")
	if ignored.Kind != "" {
		t.Errorf("expected unknown type to be ignored, got %q", ignored.Kind)
	}
	if !ignored.IsZero() {
		t.Error("expected query with only an ignored type to be zero")
	}
}
