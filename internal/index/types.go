package index

// Entry is one post's searchable representation. The Search* fields are
// lowercased once at build time; matching never case-folds them again.
type Entry struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`

	// DateISO is YYYY-MM-DD; DateHuman is the lowercase long form, e.g.
	// "october 16, 2025". Both are empty when the post has no usable date.
	DateISO   string `json:"dateISO,omitempty"`
	DateHuman string `json:"dateHuman,omitempty"`

	SearchTitle string `json:"-"`
	SearchTags  string `json:"-"`
}

// Index is the fixed, ordered set of entries built once per load. Entries
// keeps the loader's presentation order and is never re-sorted or mutated
// after Build returns; reloading constructs a new Index instead.
type Index struct {
	Entries []Entry
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Entries)
}
