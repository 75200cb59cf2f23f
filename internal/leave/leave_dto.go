package leave

import "hris-dashboard/internal/employee"

// CreateLeaveRequest carries no status: new requests always start pending.
type CreateLeaveRequest struct {
	EmployeeID   employee.Ref `json:"employeeId"`
	EmployeeName string       `json:"employeeName"`
	Type         string       `json:"type"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Reason       string       `json:"reason"`
	Days         int          `json:"days"`
}

// UpdateLeaveRequest is a shallow patch: nil fields are left untouched.
type UpdateLeaveRequest struct {
	EmployeeID   *employee.Ref `json:"employeeId"`
	EmployeeName *string       `json:"employeeName"`
	Type         *string       `json:"type"`
	Status       *string       `json:"status"`
	StartDate    *string       `json:"startDate"`
	EndDate      *string       `json:"endDate"`
	Reason       *string       `json:"reason"`
	Days         *int          `json:"days"`
}

func (p UpdateLeaveRequest) applyTo(lr *LeaveRequest) {
	setIf(&lr.EmployeeID, p.EmployeeID)
	setIf(&lr.EmployeeName, p.EmployeeName)
	setIf(&lr.Type, p.Type)
	setIf(&lr.Status, p.Status)
	setIf(&lr.StartDate, p.StartDate)
	setIf(&lr.EndDate, p.EndDate)
	setIf(&lr.Reason, p.Reason)
	setIf(&lr.Days, p.Days)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
