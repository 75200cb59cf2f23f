package employee

import "slices"

const StatusActive = "Active"

type Employee struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Role       string   `json:"role" yaml:"role"`
	Department string   `json:"department" yaml:"department"`
	Phone      string   `json:"phone" yaml:"phone"`
	Skills     []string `json:"skills" yaml:"skills"`
	StartDate  string   `json:"startDate" yaml:"startDate"`
	DOB        string   `json:"dob,omitempty" yaml:"dob,omitempty"`
	Avatar     string   `json:"avatar" yaml:"avatar"`
	Status     string   `json:"status" yaml:"status"`
}

// Clone returns a deep copy.
func (e Employee) Clone() Employee {
	e.Skills = slices.Clone(e.Skills)
	return e
}

// Ref points at an employee by id. It is a lookup key only: nothing checks
// that the employee exists, and deleting the employee leaves refs dangling.
type Ref string

// Resolve finds the referenced employee in an already loaded list.
func (r Ref) Resolve(employees []Employee) (Employee, bool) {
	for _, e := range employees {
		if e.ID == string(r) {
			return e, true
		}
	}
	return Employee{}, false
}
