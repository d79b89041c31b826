// Package feedquery narrows a post listing for display. It is pure:
// same input, same output, input order preserved.
package feedquery

import (
	"strings"

	"github.com/student-hub/backend/model"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

type Options struct {
	Category string // CategoryAll or an exact category value
	Search   string // free text, optionally prefixed title: / tag: / user:
}

// Apply filters posts by category first, then by the search term.
// Search is case-insensitive substring matching; the recognized prefixes
// scope it to one field, otherwise title, tags and author are all tried.
func Apply(posts []model.Post, opt Options) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if opt.Category != "" && opt.Category != CategoryAll && p.Category != opt.Category {
			continue
		}
		if !matchSearch(p, opt.Search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchSearch(p model.Post, search string) bool {
	if strings.TrimSpace(search) == "" {
		return true
	}
	term := strings.ToLower(search)

	switch {
	case strings.HasPrefix(term, "title:"):
		t := strings.TrimSpace(strings.TrimPrefix(term, "title:"))
		return strings.Contains(strings.ToLower(p.Title), t)
	case strings.HasPrefix(term, "tag:"):
		t := strings.TrimSpace(strings.TrimPrefix(term, "tag:"))
		return anyTagContains(p.Tags, t)
	case strings.HasPrefix(term, "user:"):
		t := strings.TrimSpace(strings.TrimPrefix(term, "user:"))
		return strings.Contains(strings.ToLower(p.Author), t)
	}

	return strings.Contains(strings.ToLower(p.Title), term) ||
		anyTagContains(p.Tags, term) ||
		strings.Contains(strings.ToLower(p.Author), term)
}

func anyTagContains(tags []string, t string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), t) {
			return true
		}
	}
	return false
}
