package content

import "time"

// Post is one blog post as loaded from disk. Date is the zero time when the
// frontmatter carried no parseable date.
type Post struct {
	Slug  string    `json:"slug"`
	Title string    `json:"title"`
	Tags  []string  `json:"tags,omitempty"`
	Date  time.Time `json:"date"`
	Body  string    `json:"-"`
}

// HasDate reports whether the post carries a usable publish date.
func (p Post) HasDate() bool {
	return !p.Date.IsZero()
}

// meta is the YAML frontmatter block at the top of a post file.
type meta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
	Date  string   `yaml:"date"`
}
