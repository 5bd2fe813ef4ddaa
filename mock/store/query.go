package main

import (
	"net/url"
	"regexp"
	"strings"
)

// row mirrors one resources row. Unknown columns are kept as raw JSON by the
// caller; only the filterable ones are typed here.
type row struct {
	Type        string  `json:"type"`
	Subject     *string `json:"subject"`
	Level       *string `json:"level"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

var ilikePattern = regexp.MustCompile(`^[a-z_]+\.ilike\."\*(.*)\*"$`)

// filter is the subset of the REST query grammar the catalog sends.
type filter struct {
	eq     map[string]string // column -> value
	search string            // lower-cased, unescaped
	limit  int
}

func parseFilter(q url.Values) filter {
	f := filter{eq: map[string]string{}}
	for _, col := range []string{"type", "subject", "level"} {
		if v := q.Get(col); strings.HasPrefix(v, "eq.") {
			f.eq[col] = strings.TrimPrefix(v, "eq.")
		}
	}

	if or := q.Get("or"); strings.HasPrefix(or, "(") && strings.HasSuffix(or, ")") {
		// Every term carries the same pattern; read the first one
		first := splitTerms(or[1 : len(or)-1])
		if len(first) > 0 {
			if m := ilikePattern.FindStringSubmatch(first[0]); m != nil {
				f.search = strings.ToLower(unescape(unescape(m[1])))
			}
		}
	}

	if q.Get("limit") == "1" {
		f.limit = 1
	}

	return f
}

// splitTerms splits on commas outside double quotes.
func splitTerms(s string) []string {
	var (
		terms   []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			terms = append(terms, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}

	return append(terms, cur.String())
}

// unescape removes one level of backslash escaping. The client applies two:
// LIKE wildcards first, then the double-quote quoting.
func unescape(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}

	return b.String()
}

func (f filter) matches(r row) bool {
	if v, ok := f.eq["type"]; ok && r.Type != v {
		return false
	}
	if v, ok := f.eq["subject"]; ok && deref(r.Subject) != v {
		return false
	}
	if v, ok := f.eq["level"]; ok && deref(r.Level) != v {
		return false
	}
	if f.search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(r.Title), f.search) ||
		strings.Contains(strings.ToLower(deref(r.Description)), f.search) ||
		strings.Contains(strings.ToLower(deref(r.Subject)), f.search)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
