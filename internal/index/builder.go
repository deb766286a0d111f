package index

import (
	"strings"

	"github.com/aryannaik/blog-search/internal/content"
)

const (
	isoDate   = "2006-01-02"
	humanDate = "January 02, 2006"
)

// Build creates the Index from the loaded posts, one Entry per post, in the
// order given. All comparison fields are lowercased here so the match path
// never folds anything but the query itself.
func Build(posts []content.Post) *Index {
	entries := make([]Entry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, newEntry(p))
	}
	return &Index{Entries: entries}
}

func newEntry(p content.Post) Entry {
	e := Entry{
		Slug:        p.Slug,
		Title:       p.Title,
		Tags:        p.Tags,
		SearchTitle: strings.ToLower(p.Title),
		SearchTags:  strings.ToLower(strings.Join(p.Tags, " ")),
	}
	if p.HasDate() {
		e.DateISO = p.Date.Format(isoDate)
		e.DateHuman = strings.ToLower(p.Date.Format(humanDate))
	}
	return e
}
