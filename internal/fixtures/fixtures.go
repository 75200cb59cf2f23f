// Package fixtures loads the seed records for the in-memory stores.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"hris-dashboard/internal/department"
	"hris-dashboard/internal/document"
	"hris-dashboard/internal/employee"
	"hris-dashboard/internal/leave"

	"gopkg.in/yaml.v3"
)

const (
	EmployeesFile     = "employees.yaml"
	LeaveRequestsFile = "leave_requests.yaml"
	DocumentsFile     = "documents.yaml"
	DepartmentsFile   = "departments.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type Set struct {
	Employees     []employee.Employee
	LeaveRequests []leave.LeaveRequest
	Documents     []document.Document
	Departments   []department.Department
}

// Load reads the four fixture files from dir, or from the embedded defaults
// when dir is empty. A missing file in dir is an error; there is no
// per-file fallback.
func Load(dir string) (Set, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return Set{}, err
		}
		return LoadFS(sub)
	}
	return LoadFS(os.DirFS(dir))
}

func LoadFS(fsys fs.FS) (Set, error) {
	var set Set
	if err := decode(fsys, EmployeesFile, &set.Employees); err != nil {
		return Set{}, err
	}
	if err := decode(fsys, LeaveRequestsFile, &set.LeaveRequests); err != nil {
		return Set{}, err
	}
	if err := decode(fsys, DocumentsFile, &set.Documents); err != nil {
		return Set{}, err
	}
	if err := decode(fsys, DepartmentsFile, &set.Departments); err != nil {
		return Set{}, err
	}
	return set, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}
