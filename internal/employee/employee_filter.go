package employee

import "strings"

// AllDepartments is the sentinel for "no department filter".
const AllDepartments = "all"

// Filter narrows an already fetched employee list. It never touches a store.
type Filter struct {
	Search     string `form:"q"`
	Department string `form:"department"`
}

// Match reports whether e matches: case-insensitive substring on name or
// role, and an exact department unless the filter asks for all.
func (f Filter) Match(e Employee) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	matchesSearch := term == "" ||
		strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Role), term)

	matchesDepartment := f.Department == "" ||
		f.Department == AllDepartments ||
		e.Department == f.Department

	return matchesSearch && matchesDepartment
}

func (f Filter) Apply(empls []Employee) []Employee {
	out := make([]Employee, 0, len(empls))
	for _, e := range empls {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// ParseSkills splits a comma separated skills field, trimming blanks.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
