package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Manager     string  `json:"manager"`
	Location    string  `json:"location"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
}

type UpdateDepartmentRequest struct {
	Name        *string  `json:"name"`
	Code        *string  `json:"code"`
	Description *string  `json:"description"`
	Manager     *string  `json:"manager"`
	Location    *string  `json:"location"`
	Budget      *float64 `json:"budget"`
	Status      *string  `json:"status"`
}

func (p UpdateDepartmentRequest) applyTo(d *Department) {
	setIf(&d.Name, p.Name)
	setIf(&d.Code, p.Code)
	setIf(&d.Description, p.Description)
	setIf(&d.Manager, p.Manager)
	setIf(&d.Location, p.Location)
	setIf(&d.Budget, p.Budget)
	setIf(&d.Status, p.Status)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
