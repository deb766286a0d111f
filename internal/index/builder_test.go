package index

import (
	"testing"
	"time"

	"github.com/aryannaik/blog-search/internal/content"
)

func TestBuildPreservesOrder(t *testing.T) {
	posts := []content.Post{
		{Slug: "c", Title: "Third"},
		{Slug: "a", Title: "First"},
		{Slug: "b", Title: "Second"},
	}

	idx := Build(posts)
	if idx.Len() != 3 {
		t.Fatalf("Len = %d, want 3", idx.Len())
	}
	for i, p := range posts {
		if idx.Entries[i].Slug != p.Slug {
			t.Errorf("entry %d slug = %q, want %q", i, idx.Entries[i].Slug, p.Slug)
		}
	}
}

func TestBuildLowercasesSearchFields(t *testing.T) {
	idx := Build([]content.Post{
		{Slug: "p", Title: "Mixed CASE Title", Tags: []string{"Go", "Web Dev"}},
	})

	e := idx.Entries[0]
	if e.Title != "Mixed CASE Title" {
		t.Errorf("display title changed: %q", e.Title)
	}
	if e.SearchTitle != "mixed case title" {
		t.Errorf("SearchTitle = %q", e.SearchTitle)
	}
	if e.SearchTags != "go web dev" {
		t.Errorf("SearchTags = %q", e.SearchTags)
	}
}

func TestBuildDates(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantISO   string
		wantHuman string
	}{
		{
			name:      "mid-month",
			date:      time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC),
			wantISO:   "2025-10-16",
			wantHuman: "october 16, 2025",
		},
		{
			name:      "zero-padded day",
			date:      time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			wantISO:   "2025-09-01",
			wantHuman: "september 01, 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := Build([]content.Post{{Slug: "p", Title: "T", Date: tt.date}})
			e := idx.Entries[0]
			if e.DateISO != tt.wantISO {
				t.Errorf("DateISO = %q, want %q", e.DateISO, tt.wantISO)
			}
			if e.DateHuman != tt.wantHuman {
				t.Errorf("DateHuman = %q, want %q", e.DateHuman, tt.wantHuman)
			}
		})
	}
}

func TestBuildUndatedPost(t *testing.T) {
	idx := Build([]content.Post{{Slug: "p", Title: "No Date"}})

	e := idx.Entries[0]
	if e.DateISO != "" || e.DateHuman != "" {
		t.Errorf("undated post got date fields: %q / %q", e.DateISO, e.DateHuman)
	}
}

func TestBuildEmptyTags(t *testing.T) {
	idx := Build([]content.Post{{Slug: "p", Title: "Untagged"}})

	if idx.Entries[0].SearchTags != "" {
		t.Errorf("SearchTags = %q, want empty", idx.Entries[0].SearchTags)
	}
}

func TestBuildEmpty(t *testing.T) {
	if n := Build(nil).Len(); n != 0 {
		t.Errorf("Len = %d, want 0", n)
	}

	var idx *Index
	if n := idx.Len(); n != 0 {
		t.Errorf("nil index Len = %d, want 0", n)
	}
}
