package department

const StatusActive = "Active"

type Department struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Code        string  `json:"code" yaml:"code"`
	Description string  `json:"description" yaml:"description"`
	Manager     string  `json:"manager" yaml:"manager"`
	Location    string  `json:"location" yaml:"location"`
	Budget      float64 `json:"budget" yaml:"budget"`
	Status      string  `json:"status" yaml:"status"`
}

func (d Department) Clone() Department {
	return d
}

// NameRef is how employees point at a department: by name, not id. Renaming
// a department orphans its employees.
type NameRef string

// Of reports whether d is the referenced department.
func (r NameRef) Of(d Department) bool {
	return string(r) == d.Name
}
