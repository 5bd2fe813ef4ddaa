package domain

import "strings"

// Tab is the top-level type filter.
type Tab string

const (
	TabAll   Tab = "ALL"
	TabVideo Tab = "VIDEO"
	TabPDF   Tab = "PDF"
)

// ParseTab returns the Tab for s, defaulting to TabAll for unknown values.
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabVideo, TabPDF:
		return Tab(s)
	default:
		return TabAll
	}
}

// Includes reports whether resources of kind k belong to the tab.
func (t Tab) Includes(k Kind) bool {
	return t == TabAll || string(t) == string(k)
}

// Sentinels for the "any" choice of the subject and level facets.
const (
	SubjectAny = "Tous"
	LevelAny   = "Tous niveaux"
)

// Filter is the transient filter state of a catalog page.
type Filter struct {
	Tab     Tab    `json:"tab"`
	Subject string `json:"subject"`
	Level   string `json:"level"`
	Search  string `json:"search"`
}

// DefaultFilter returns the unfiltered state.
func DefaultFilter() Filter {
	return Filter{
		Tab:     TabAll,
		Subject: SubjectAny,
		Level:   LevelAny,
	}
}

// Reset clears every facet back to DefaultFilter.
func (f *Filter) Reset() {
	*f = DefaultFilter()
}

// IsDefault reports whether no facet is active.
func (f Filter) IsDefault() bool {
	return f == DefaultFilter()
}

// Normalize replaces empty facets with their "any" sentinel and unknown tabs
// with TabAll.
func (f *Filter) Normalize() {
	f.Tab = ParseTab(string(f.Tab))
	if f.Subject == "" {
		f.Subject = SubjectAny
	}
	if f.Level == "" {
		f.Level = LevelAny
	}
}

// Matches reports whether r passes every active facet. All conditions are
// conjunctive: the search term never bypasses tab, subject or level.
func (f Filter) Matches(r *Resource) bool {
	if f.Tab != TabAll && string(r.Kind) != string(f.Tab) {
		return false
	}
	if f.Subject != SubjectAny && r.Subject != f.Subject {
		return false
	}
	if f.Level != LevelAny && string(r.Level) != f.Level {
		return false
	}
	if f.Search != "" {
		return matchesSearch(r, strings.ToLower(f.Search))
	}

	return true
}

// matchesSearch checks q against title, description, subject and tags.
// q must already be lower-cased.
func matchesSearch(r *Resource, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Subject), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}

	return false
}

// Stats are the catalog-wide counters shown in the hero and on the tabs.
// They are always computed over the unfiltered list.
type Stats struct {
	Total   int `json:"total"`
	Videos  int `json:"videos"`
	PDFs    int `json:"pdfs"`
	TotalXP int `json:"total_xp"`
}

// Summarize computes Stats over resources.
func Summarize(resources []*Resource) Stats {
	var s Stats
	for _, r := range resources {
		s.Total++
		s.TotalXP += r.XP
		switch r.Kind {
		case KindVideo:
			s.Videos++
		case KindPDF:
			s.PDFs++
		}
	}

	return s
}

// Count returns the number of resources shown under tab t in the
// unfiltered list.
func (s Stats) Count(t Tab) int {
	switch t {
	case TabVideo:
		return s.Videos
	case TabPDF:
		return s.PDFs
	default:
		return s.Total
	}
}

// SubjectFacets returns SubjectAny followed by the distinct non-empty
// subjects of resources in order of first appearance.
func SubjectFacets(resources []*Resource) []string {
	facets := []string{SubjectAny}
	seen := make(map[string]struct{})
	for _, r := range resources {
		if r.Subject == "" {
			continue
		}
		if _, ok := seen[r.Subject]; ok {
			continue
		}
		seen[r.Subject] = struct{}{}
		facets = append(facets, r.Subject)
	}

	return facets
}

// LevelFacets returns LevelAny followed by every known level.
func LevelFacets() []string {
	facets := []string{LevelAny}
	for _, l := range Levels() {
		facets = append(facets, string(l))
	}

	return facets
}

// View is the output of the engine for one filter state.
type View struct {
	Filter   Filter      `json:"filter"`
	Visible  []*Resource `json:"visible"`
	Videos   []*Resource `json:"videos"`
	PDFs     []*Resource `json:"pdfs"`
	Stats    Stats       `json:"stats"`
	Subjects []string    `json:"subjects"`
}

// Apply filters resources with f and derives the partition, stats and
// facets. resources is never modified; relative order is preserved.
func Apply(resources []*Resource, f Filter) *View {
	f.Normalize()

	v := &View{
		Filter:   f,
		Visible:  make([]*Resource, 0, len(resources)),
		Videos:   []*Resource{},
		PDFs:     []*Resource{},
		Stats:    Summarize(resources),
		Subjects: SubjectFacets(resources),
	}

	for _, r := range resources {
		if !f.Matches(r) {
			continue
		}
		v.Visible = append(v.Visible, r)
		switch r.Kind {
		case KindVideo:
			v.Videos = append(v.Videos, r)
		case KindPDF:
			v.PDFs = append(v.PDFs, r)
		}
	}

	return v
}

// Empty reports whether the filter yields no resource.
func (v *View) Empty() bool {
	return len(v.Visible) == 0
}

// ShowVideos reports whether the video section is rendered.
func (v *View) ShowVideos() bool {
	return v.Filter.Tab.Includes(KindVideo) && len(v.Videos) > 0
}

// ShowPDFs reports whether the PDF section is rendered.
func (v *View) ShowPDFs() bool {
	return v.Filter.Tab.Includes(KindPDF) && len(v.PDFs) > 0
}
