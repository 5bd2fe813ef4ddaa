// Package view builds the template models and helpers of the catalog pages.
package view

import (
	"html"
	"html/template"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"resource-catalog-service/internal/domain"
)

// Tab is one entry of the tab bar. Count is always over the unfiltered list.
type Tab struct {
	Value  domain.Tab
	Label  string
	Count  int
	Active bool
}

// Catalog is the model of the ready catalog fragment and the results region.
type Catalog struct {
	View   *domain.View
	Tabs   []Tab
	Levels []string
	Query  string // Encoded filter, carried by links and the shell page
	Error   string // Set when the catalog could not be built
	Invalid bool   // The request filter was rejected; the store was not read
}

// NewCatalog builds the model for a successful store read.
func NewCatalog(v *domain.View) Catalog {
	return Catalog{
		View:   v,
		Tabs:   tabs(v),
		Levels: domain.LevelFacets(),
		Query:  EncodeFilter(v.Filter),
	}
}

// NewCatalogError builds the model shown when the store read failed.
// The filter is kept so the controls still reflect the request.
func NewCatalogError(f domain.Filter, msg string) Catalog {
	f.Normalize()

	return Catalog{
		View:   &domain.View{Filter: f, Subjects: []string{domain.SubjectAny}},
		Levels: domain.LevelFacets(),
		Query:  EncodeFilter(f),
		Error:  msg,
	}
}

// NewCatalogInvalid builds the model shown when the request filter was
// rejected. Unlike NewCatalogError it offers a reset, since retrying the same
// filter fails again.
func NewCatalogInvalid(f domain.Filter, msg string) Catalog {
	c := NewCatalogError(f, msg)
	c.Invalid = true

	return c
}

// Failed reports whether the catalog could not be built.
func (c Catalog) Failed() bool {
	return c.Error != ""
}

func tabs(v *domain.View) []Tab {
	entries := []struct {
		value domain.Tab
		label string
	}{
		{domain.TabAll, "TOUT"},
		{domain.TabVideo, "VIDÉOS"},
		{domain.TabPDF, "PDF"},
	}

	out := make([]Tab, len(entries))
	for i, e := range entries {
		out[i] = Tab{
			Value:  e.value,
			Label:  e.label,
			Count:  v.Stats.Count(e.value),
			Active: v.Filter.Tab == e.value,
		}
	}

	return out
}

// EncodeFilter renders the non-default facets of f as a query string.
func EncodeFilter(f domain.Filter) string {
	q := url.Values{}
	if f.Tab != "" && f.Tab != domain.TabAll {
		q.Set("tab", string(f.Tab))
	}
	if f.Subject != "" && f.Subject != domain.SubjectAny {
		q.Set("subject", f.Subject)
	}
	if f.Level != "" && f.Level != domain.LevelAny {
		q.Set("level", f.Level)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	return q.Encode()
}

// PageTitle is the document title of every page.
const PageTitle = "Ressources | Plateforme éducative"

// Shell is the model of the loading page. Source is the catalog fragment
// the client script loads for the requested filter.
type Shell struct {
	Title  string
	Source string
}

// NewShell builds the loading page model for f.
func NewShell(f domain.Filter) Shell {
	src := "/catalog"
	if q := EncodeFilter(f); q != "" {
		src += "?" + q
	}

	return Shell{Title: PageTitle, Source: src}
}

// Setup is the model of the missing configuration screen.
type Setup struct {
	Title   string
	Missing []string // Config keys, e.g. "store.url"
	URLEnv  []string // Accepted variable names, preferred first
	KeyEnv  []string
}

var (
	strict  = bluemonday.StrictPolicy()
	printer = message.NewPrinter(language.French)
)

// Plain strips any markup from store-authored text. The result is plain
// text; html/template escapes it again on output. Text that parses as a tag,
// such as "<vs>", is dropped with the markup. Search still matches the raw
// stored text.
func Plain(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// FormatXP formats n with French digit grouping.
func FormatXP(n int) string {
	return printer.Sprintf("%d", n)
}

// LevelClass returns the CSS modifier of a level badge.
func LevelClass(l domain.Level) string {
	switch l {
	case domain.LevelBeginner:
		return "level--beginner"
	case domain.LevelIntermediate:
		return "level--intermediate"
	case domain.LevelAdvanced:
		return "level--advanced"
	default:
		return ""
	}
}

// Funcs returns the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"plain":      Plain,
		"xp":         FormatXP,
		"levelClass": LevelClass,
		"join":       strings.Join,
	}
}
