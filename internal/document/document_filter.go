package document

import (
	"strings"
	"time"
)

const AllCategories = "all"

// recentWindow is how far back an upload still counts as "this month".
const recentWindow = 30 * 24 * time.Hour

// Filter narrows an already fetched document list.
type Filter struct {
	Search   string `form:"q"`
	Category string `form:"category"`
}

// Match reports whether d matches: case-insensitive substring on title and an
// exact category unless the filter asks for all.
func (f Filter) Match(d Document) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	matchesSearch := term == "" || strings.Contains(strings.ToLower(d.Title), term)

	matchesCategory := f.Category == "" ||
		f.Category == AllCategories ||
		d.Category == f.Category

	return matchesSearch && matchesCategory
}

func (f Filter) Apply(docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// Categories lists the distinct categories in first-seen order.
func Categories(docs []Document) []string {
	seen := make(map[string]struct{}, len(docs))
	out := make([]string, 0)
	for _, d := range docs {
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		out = append(out, d.Category)
	}
	return out
}

type Stats struct {
	Total          int `json:"total"`
	Categories     int `json:"categories"`
	UploadedRecent int `json:"uploadedRecent"`
	Shared         int `json:"shared"`
}

// Summarize folds docs into page stats. Uploads dated strictly after
// now-30d count as recent; unparseable dates never do.
func Summarize(docs []Document, now time.Time) Stats {
	cutoff := now.Add(-recentWindow)
	stats := Stats{
		Total:      len(docs),
		Categories: len(Categories(docs)),
	}
	for _, d := range docs {
		if d.Shared {
			stats.Shared++
		}
		uploaded, err := time.Parse(time.DateOnly, d.UploadDate)
		if err == nil && uploaded.After(cutoff) {
			stats.UploadedRecent++
		}
	}
	return stats
}
