package domain

// Query holds the store-level filters of the query gateway.
//
// Kind, Subject and Level are equality filters combined with AND. Search,
// when set, adds one more AND clause: a case-insensitive substring match on
// title OR description OR subject. Results are ordered newest first.
type Query struct {
	Kind    Kind   // Empty means any kind
	Subject string // Exact match
	Level   string // Exact match
	Search  string // Free text
}

// NewQuery builds a Query from raw request values. A kind other than
// "VIDEO" or "PDF" is ignored rather than rejected.
func NewQuery(kind, subject, level, search string) Query {
	q := Query{
		Subject: subject,
		Level:   level,
		Search:  search,
	}
	if k, ok := ParseKind(kind); ok {
		q.Kind = k
	}

	return q
}

// IsZero reports whether the query has no filter and selects every resource.
func (q Query) IsZero() bool {
	return q == Query{}
}
