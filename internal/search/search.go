// Package search implements the live post filter: query normalization, the
// substring match predicate, and the pass that pushes visibility verdicts and
// the visible count out to the presentation surface.
package search

import (
	"strings"

	"github.com/aryannaik/blog-search/internal/index"
)

// View is the presentation surface the filter writes verdicts to. SetVisible
// is called exactly once per entry per pass, in index order.
type View interface {
	SetVisible(i int, visible bool)
}

// Filter binds one Index to one View. It holds no other state between
// passes; each Apply re-evaluates every entry from scratch.
type Filter struct {
	idx    *index.Index
	view   View
	report func(count int)
}

// NewFilter wires a filter to its index and view. report receives the visible
// count at the end of every pass and may be nil.
func NewFilter(idx *index.Index, view View, report func(count int)) *Filter {
	return &Filter{idx: idx, view: view, report: report}
}

// Normalize reduces raw user input to its comparison form: trimmed and
// lowercased. Whitespace-only input becomes the empty match-all query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Matches reports whether a normalized query matches an entry. The empty
// query matches everything; otherwise plain substring containment against
// the pre-lowercased title, joined tag string, and both date forms. "ctob"
// matches "october"; "2025-10" matches via the ISO date.
func Matches(q string, e index.Entry) bool {
	if q == "" {
		return true
	}
	return strings.Contains(e.SearchTitle, q) ||
		strings.Contains(e.SearchTags, q) ||
		strings.Contains(e.DateISO, q) ||
		strings.Contains(e.DateHuman, q)
}

// Apply runs one full filtering pass for the raw query: normalize, evaluate
// every entry, render each verdict to the view, then report and return the
// visible count. The pass completes synchronously; a new query simply runs
// another pass over the same immutable index.
func (f *Filter) Apply(raw string) int {
	q := Normalize(raw)

	count := 0
	for i, e := range f.idx.Entries {
		visible := Matches(q, e)
		f.view.SetVisible(i, visible)
		if visible {
			count++
		}
	}

	if f.report != nil {
		f.report(count)
	}
	return count
}
