package department

import "strings"

// Filter narrows an already fetched department list by a search term
// matched against name or description.
type Filter struct {
	Search string `form:"q"`
}

func (f Filter) Match(d Department) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	return term == "" ||
		strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Description), term)
}

func (f Filter) Apply(depts []Department) []Department {
	out := make([]Department, 0, len(depts))
	for _, d := range depts {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}
