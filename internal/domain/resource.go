// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Kind represents the type of a resource.
type Kind string

const (
	KindVideo Kind = "VIDEO"
	KindPDF   Kind = "PDF"
)

// ParseKind returns the Kind for s. Only the exact values "VIDEO" and "PDF"
// are accepted.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindVideo, KindPDF:
		return Kind(s), true
	default:
		return "", false
	}
}

// Level is the difficulty level of a resource. Values are stored in French.
type Level string

const (
	LevelBeginner     Level = "Débutant"
	LevelIntermediate Level = "Intermédiaire"
	LevelAdvanced     Level = "Avancé"
)

// Levels returns the selectable levels in display order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel returns the Level for s if it is one of the known levels.
func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels() {
		if string(l) == s {
			return l, true
		}
	}

	return "", false
}

// PlaceholderMarker marks URLs that were never filled in the store.
const PlaceholderMarker = "TON_ID"

// MaxDisplayTags is the number of tags shown on a card.
const MaxDisplayTags = 3

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\s]+)`)

// Resource is a catalog entry: a video or a PDF learning asset.
// Resources are read-only; they are created and edited in the external store.
type Resource struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Kind        Kind   `json:"type"`
	URL         string `json:"url"`

	// Facets
	Subject string `json:"subject,omitempty"`
	Level   Level  `json:"level,omitempty"`

	XP int `json:"xp"`

	Duration  string `json:"duration,omitempty"`  // Video only, display string (e.g. "12:40")
	Pages     int    `json:"pages,omitempty"`     // PDF only, 0 when unknown
	Thumbnail string `json:"thumbnail,omitempty"` // Overrides the derived video thumbnail

	IsNew bool     `json:"is_new"`
	Tags  []string `json:"tags,omitempty"`
}

// IsVideo returns true if the resource is a video.
func (r *Resource) IsVideo() bool {
	return r.Kind == KindVideo
}

// IsPDF returns true if the resource is a PDF.
func (r *Resource) IsPDF() bool {
	return r.Kind == KindPDF
}

// HasValidURL reports whether the resource URL can be navigated to.
func (r *Resource) HasValidURL() bool {
	return IsValidURL(r.URL)
}

// IsValidURL reports whether url is non-empty, free of the placeholder
// marker and starts with an http or https scheme.
func IsValidURL(url string) bool {
	if url == "" || strings.Contains(url, PlaceholderMarker) {
		return false
	}

	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// ThumbnailURL returns the image to show on a video card.
//
// The stored thumbnail wins. Otherwise a YouTube video ID is extracted from
// the URL and the maximum resolution still is used. An empty string means
// no thumbnail could be derived and the card falls back to its icon.
func (r *Resource) ThumbnailURL() string {
	if r.Thumbnail != "" {
		return r.Thumbnail
	}

	id := YouTubeID(r.URL)
	if id == "" {
		return ""
	}

	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}

// YouTubeID extracts the video identifier from a youtube.com/watch?v= or
// youtu.be/ URL. Returns "" if url has neither form.
func YouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}

	return m[1]
}

// DisplayTags returns at most the first MaxDisplayTags tags.
func (r *Resource) DisplayTags() []string {
	if len(r.Tags) > MaxDisplayTags {
		return r.Tags[:MaxDisplayTags]
	}

	return r.Tags
}
