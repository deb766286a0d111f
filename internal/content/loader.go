package content

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Load reads every markdown post under dir and returns them in presentation
// order: newest first, undated posts last, ties broken by slug. A missing
// directory is not an error; the page simply renders empty.
func Load(dir string) ([]Post, error) {
	names, err := postFiles(dir)
	if os.IsNotExist(err) {
		slog.Warn("posts directory missing, serving empty list", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan posts dir: %w", err)
	}

	var posts []Post
	for _, name := range names {
		p, err := parseFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("skipping post", "file", name, "error", err)
			continue
		}
		posts = append(posts, p)
	}

	sortPosts(posts)
	return posts, nil
}

func postFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func parseFile(path string) (Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return Post{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var m meta
	body, err := frontmatter.Parse(f, &m)
	if err != nil {
		return Post{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	if strings.TrimSpace(m.Title) == "" {
		return Post{}, fmt.Errorf("missing title")
	}

	p := Post{
		Slug:  strings.TrimSuffix(filepath.Base(path), ".md"),
		Title: m.Title,
		Tags:  m.Tags,
		Body:  string(bytes.TrimSpace(body)),
	}

	// A malformed date is not fatal: the post stays listed and searchable by
	// title and tags, it just never matches date queries.
	if m.Date != "" {
		t, err := parseDate(m.Date)
		if err != nil {
			slog.Warn("ignoring malformed date", "file", filepath.Base(path), "date", m.Date)
		} else {
			p.Date = t
		}
	}

	return p, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})
}
