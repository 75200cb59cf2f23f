package employee

import "slices"

type CreateEmployeeRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	StartDate  string   `json:"startDate"`
	DOB        string   `json:"dob"`
	Avatar     string   `json:"avatar"`
	Status     string   `json:"status"`
}

// UpdateEmployeeRequest is a shallow patch: nil fields are left untouched.
type UpdateEmployeeRequest struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Role       *string   `json:"role"`
	Department *string   `json:"department"`
	Phone      *string   `json:"phone"`
	Skills     *[]string `json:"skills"`
	StartDate  *string   `json:"startDate"`
	DOB        *string   `json:"dob"`
	Avatar     *string   `json:"avatar"`
	Status     *string   `json:"status"`
}

func (p UpdateEmployeeRequest) applyTo(e *Employee) {
	setIf(&e.Name, p.Name)
	setIf(&e.Email, p.Email)
	setIf(&e.Role, p.Role)
	setIf(&e.Department, p.Department)
	setIf(&e.Phone, p.Phone)
	setIf(&e.StartDate, p.StartDate)
	setIf(&e.DOB, p.DOB)
	setIf(&e.Avatar, p.Avatar)
	setIf(&e.Status, p.Status)
	if p.Skills != nil {
		e.Skills = slices.Clone(*p.Skills)
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
