package domain

import (
	"reflect"
	"testing"
)

func sampleCatalog() []*Resource {
	return []*Resource{
		{ID: "1", Title: "React Guide", Kind: KindVideo, Subject: "React", Level: LevelBeginner, XP: 50, Tags: []string{"hooks", "jsx"}},
		{ID: "2", Title: "Vue Basics", Kind: KindPDF, Subject: "Vue", Level: LevelBeginner, XP: 30},
		{ID: "3", Title: "Advanced Routing", Description: "App router in depth", Kind: KindVideo, Subject: "Next.js", Level: LevelAdvanced, XP: 80},
		{ID: "4", Title: "Cheat sheet", Kind: KindPDF, Subject: "React", Level: LevelIntermediate, XP: 20, Tags: []string{"Performance"}},
		{ID: "5", Title: "Untitled notes", Kind: KindPDF, XP: 0},
	}
}

func ids(resources []*Resource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.ID
	}

	return out
}

func TestApply_PartitionIsExhaustiveAndDisjoint(t *testing.T) {
	catalog := sampleCatalog()
	filters := []Filter{
		DefaultFilter(),
		{Tab: TabVideo, Subject: SubjectAny, Level: LevelAny},
		{Tab: TabPDF, Subject: "React", Level: LevelAny},
		{Tab: TabAll, Subject: SubjectAny, Level: string(LevelBeginner), Search: "e"},
		{Tab: TabAll, Subject: "Nope", Level: LevelAny},
	}

	for _, f := range filters {
		v := Apply(catalog, f)
		if len(v.Videos)+len(v.PDFs) != len(v.Visible) {
			t.Errorf("filter %+v: videos(%d)+pdfs(%d) != visible(%d)", f, len(v.Videos), len(v.PDFs), len(v.Visible))
		}
		for _, r := range v.Videos {
			if !r.IsVideo() {
				t.Errorf("filter %+v: non-video %s in videos", f, r.ID)
			}
		}
		for _, r := range v.PDFs {
			if !r.IsPDF() {
				t.Errorf("filter %+v: non-pdf %s in pdfs", f, r.ID)
			}
		}
	}
}

func TestApply_TabAllIsNoop(t *testing.T) {
	catalog := sampleCatalog()
	v := Apply(catalog, DefaultFilter())

	if !reflect.DeepEqual(ids(v.Visible), ids(catalog)) {
		t.Errorf("expected all resources visible in order, got %v", ids(v.Visible))
	}
}

func TestApply_ResetRestoresUnfilteredView(t *testing.T) {
	catalog := sampleCatalog()
	initial := Apply(catalog, DefaultFilter())

	f := Filter{Tab: TabPDF, Subject: "React", Level: string(LevelIntermediate), Search: "cheat"}
	narrowed := Apply(catalog, f)
	if len(narrowed.Visible) != 1 {
		t.Fatalf("expected 1 visible resource, got %d", len(narrowed.Visible))
	}

	f.Reset()
	if !f.IsDefault() {
		t.Errorf("expected reset filter to be default, got %+v", f)
	}
	reset := Apply(catalog, f)
	if !reflect.DeepEqual(ids(reset.Visible), ids(initial.Visible)) {
		t.Errorf("reset view %v differs from initial %v", ids(reset.Visible), ids(initial.Visible))
	}
}

func TestApply_TotalXPIgnoresFilters(t *testing.T) {
	catalog := sampleCatalog()
	filters := []Filter{
		DefaultFilter(),
		{Tab: TabVideo},
		{Search: "nothing matches this"},
		{Subject: "Vue", Level: string(LevelAdvanced)},
	}

	for _, f := range filters {
		if got := Apply(catalog, f).Stats.TotalXP; got != 180 {
			t.Errorf("filter %+v: TotalXP = %d, want 180", f, got)
		}
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	catalog := sampleCatalog()

	v := Apply(catalog, Filter{Search: "REACT"})
	if !reflect.DeepEqual(ids(v.Visible), []string{"1", "4"}) {
		t.Errorf("expected React resources, got %v", ids(v.Visible))
	}
}

func TestApply_SearchFields(t *testing.T) {
	catalog := sampleCatalog()
	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{"title", "basics", []string{"2"}},
		{"description", "app router", []string{"3"}},
		{"subject", "next.js", []string{"3"}},
		{"tag", "performance", []string{"4"}},
		{"tag partial", "hoo", []string{"1"}},
		{"no match", "kubernetes", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Apply(catalog, Filter{Search: tt.search})
			if !reflect.DeepEqual(ids(v.Visible), tt.expected) {
				t.Errorf("search %q = %v, want %v", tt.search, ids(v.Visible), tt.expected)
			}
		})
	}
}

func TestApply_SearchCombinesWithFacets(t *testing.T) {
	catalog := sampleCatalog()

	// "React" matches resources 1 and 4; the PDF tab must still apply.
	v := Apply(catalog, Filter{Tab: TabPDF, Search: "react"})
	if !reflect.DeepEqual(ids(v.Visible), []string{"4"}) {
		t.Errorf("expected search ANDed with tab, got %v", ids(v.Visible))
	}

	v = Apply(catalog, Filter{Level: string(LevelAdvanced), Search: "react"})
	if !v.Empty() {
		t.Errorf("expected search ANDed with level, got %v", ids(v.Visible))
	}
}

func TestApply_SubjectFilterSkipsUnsetSubject(t *testing.T) {
	catalog := sampleCatalog()

	v := Apply(catalog, Filter{Subject: "React"})
	if !reflect.DeepEqual(ids(v.Visible), []string{"1", "4"}) {
		t.Errorf("expected React resources, got %v", ids(v.Visible))
	}
	for _, r := range v.Visible {
		if r.Subject == "" {
			t.Errorf("resource %s without subject matched a subject filter", r.ID)
		}
	}
}

func TestApply_LevelFilter(t *testing.T) {
	v := Apply(sampleCatalog(), Filter{Level: string(LevelBeginner)})
	if !reflect.DeepEqual(ids(v.Visible), []string{"1", "2"}) {
		t.Errorf("expected beginner resources, got %v", ids(v.Visible))
	}
}

func TestApply_ThreeItemCatalog(t *testing.T) {
	catalog := []*Resource{
		{ID: "a", Kind: KindVideo, XP: 10},
		{ID: "b", Kind: KindPDF, XP: 5},
		{ID: "c", Kind: KindVideo, XP: 20},
	}

	v := Apply(catalog, DefaultFilter())
	if v.Stats.TotalXP != 35 {
		t.Errorf("TotalXP = %d, want 35", v.Stats.TotalXP)
	}
	if len(v.Videos) != 2 || len(v.PDFs) != 1 {
		t.Errorf("expected 2 videos and 1 pdf, got %d and %d", len(v.Videos), len(v.PDFs))
	}

	v = Apply(catalog, Filter{Tab: TabVideo})
	if !reflect.DeepEqual(ids(v.Visible), []string{"a", "c"}) {
		t.Errorf("expected videos in input order, got %v", ids(v.Visible))
	}
	if v.Stats.TotalXP != 35 {
		t.Errorf("TotalXP under tab filter = %d, want 35", v.Stats.TotalXP)
	}
}

func TestApply_EmptySearchShowsAll(t *testing.T) {
	catalog := []*Resource{
		{ID: "1", Title: "React Guide", Kind: KindVideo},
		{ID: "2", Title: "Vue Basics", Kind: KindVideo},
	}

	if got := ids(Apply(catalog, Filter{Search: "guide"}).Visible); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("search guide = %v, want [1]", got)
	}
	if got := ids(Apply(catalog, Filter{Search: ""}).Visible); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("empty search = %v, want [1 2]", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	before := ids(catalog)

	_ = Apply(catalog, Filter{Tab: TabPDF, Search: "e"})

	if !reflect.DeepEqual(ids(catalog), before) {
		t.Errorf("input reordered: %v", ids(catalog))
	}
}

func TestSubjectFacets(t *testing.T) {
	catalog := []*Resource{
		{Subject: "React"},
		{Subject: ""},
		{Subject: "Vue"},
		{Subject: "React"},
		{Subject: "Go"},
		{Subject: "Vue"},
	}

	got := SubjectFacets(catalog)
	want := []string{SubjectAny, "React", "Vue", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectFacets() = %v, want %v", got, want)
	}

	if got := SubjectFacets(nil); !reflect.DeepEqual(got, []string{SubjectAny}) {
		t.Errorf("SubjectFacets(nil) = %v, want [%s]", got, SubjectAny)
	}
}

func TestLevelFacets(t *testing.T) {
	want := []string{LevelAny, "Débutant", "Intermédiaire", "Avancé"}
	if got := LevelFacets(); !reflect.DeepEqual(got, want) {
		t.Errorf("LevelFacets() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleCatalog())

	expected := Stats{Total: 5, Videos: 2, PDFs: 3, TotalXP: 180}
	if s != expected {
		t.Errorf("Summarize() = %+v, want %+v", s, expected)
	}
	if s.Count(TabAll) != 5 || s.Count(TabVideo) != 2 || s.Count(TabPDF) != 3 {
		t.Errorf("unexpected tab counts: %d %d %d", s.Count(TabAll), s.Count(TabVideo), s.Count(TabPDF))
	}
}

func TestFilter_Normalize(t *testing.T) {
	f := Filter{Tab: "bogus"}
	f.Normalize()

	if !f.IsDefault() {
		t.Errorf("expected normalized empty filter to be default, got %+v", f)
	}
}

func TestView_SectionVisibility(t *testing.T) {
	catalog := sampleCatalog()

	all := Apply(catalog, DefaultFilter())
	if !all.ShowVideos() || !all.ShowPDFs() {
		t.Error("expected both sections on the ALL tab")
	}

	videos := Apply(catalog, Filter{Tab: TabVideo})
	if !videos.ShowVideos() || videos.ShowPDFs() {
		t.Error("expected only the video section on the VIDEO tab")
	}

	onlyPDFMatch := Apply(catalog, Filter{Search: "vue"})
	if onlyPDFMatch.ShowVideos() {
		t.Error("expected the video section hidden when no video is visible")
	}

	none := Apply(catalog, Filter{Search: "zzz"})
	if !none.Empty() || none.ShowVideos() || none.ShowPDFs() {
		t.Error("expected an empty view with no sections")
	}
}
