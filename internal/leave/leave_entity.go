package leave

import (
	"strings"

	"hris-dashboard/internal/employee"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveRequest struct {
	ID           string       `json:"id" yaml:"id"`
	EmployeeID   employee.Ref `json:"employeeId" yaml:"employeeId"`
	EmployeeName string       `json:"employeeName" yaml:"employeeName"`
	Type         string       `json:"type" yaml:"type"`
	Status       string       `json:"status" yaml:"status"`
	StartDate    string       `json:"startDate" yaml:"startDate"`
	EndDate      string       `json:"endDate" yaml:"endDate"`
	Reason       string       `json:"reason" yaml:"reason"`
	Days         int          `json:"days" yaml:"days"`
}

// Clone returns a copy. LeaveRequest holds no reference types, so a value
// copy is already deep.
func (lr LeaveRequest) Clone() LeaveRequest {
	return lr
}

// NormalizedStatus is the status lowercased, which is how filters and stats
// compare it.
func (lr LeaveRequest) NormalizedStatus() string {
	return strings.ToLower(lr.Status)
}
