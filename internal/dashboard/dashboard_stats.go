package dashboard

import (
	"fmt"
	"math"
	"time"

	"hris-dashboard/internal/department"
	"hris-dashboard/internal/employee"
	"hris-dashboard/internal/leave"
)

// BirthdayWindowDays is how many days ahead, today included, a birthday
// still counts as upcoming.
const BirthdayWindowDays = 7

const (
	fallbackFirstName  = "Sarah Johnson"
	fallbackSecondName = "Mike Chen"
)

// CountPending counts requests whose status is exactly "pending". Unlike the
// leave page stats this is case-sensitive.
func CountPending(leaves []leave.LeaveRequest) int {
	n := 0
	for _, lr := range leaves {
		if lr.Status == leave.StatusPending {
			n++
		}
	}
	return n
}

// UpcomingBirthdays counts employees whose next birthday falls within
// [today, today+BirthdayWindowDays]. The birthday is read from DOB, falling
// back to StartDate; employees with neither parseable are skipped.
func UpcomingBirthdays(empls []employee.Employee, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	n := 0
	for _, e := range empls {
		raw := e.DOB
		if raw == "" {
			raw = e.StartDate
		}
		born, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			continue
		}

		next := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = next.AddDate(1, 0, 0)
		}
		if days := int(next.Sub(today).Hours() / 24); days <= BirthdayWindowDays {
			n++
		}
	}
	return n
}

// RecentActivity builds the fixed three-entry feed from the first two
// employees, substituting placeholder names when fewer exist.
func RecentActivity(empls []employee.Employee) []Activity {
	first, second := fallbackFirstName, fallbackSecondName
	if len(empls) > 0 {
		first = empls[0].Name
	}
	if len(empls) > 1 {
		second = empls[1].Name
	}

	return []Activity{
		{
			ID:      1,
			Type:    "leave_request",
			Message: fmt.Sprintf("%s submitted a vacation request", first),
			Time:    "2 hours ago",
			Icon:    "Calendar",
		},
		{
			ID:      2,
			Type:    "document",
			Message: `New policy document uploaded: "Remote Work Guidelines"`,
			Time:    "4 hours ago",
			Icon:    "FileText",
		},
		{
			ID:      3,
			Type:    "birthday",
			Message: fmt.Sprintf("🎂 %s's birthday is tomorrow!", second),
			Time:    "1 day ago",
			Icon:    "Gift",
		},
	}
}

// Headcounts folds employees into per-department totals. Employees are
// matched to departments by name.
func Headcounts(depts []department.Department, empls []employee.Employee) DepartmentOverview {
	overview := DepartmentOverview{
		Departments:      make([]DepartmentHeadcount, 0, len(depts)),
		TotalDepartments: len(depts),
		TotalEmployees:   len(empls),
	}

	for _, e := range empls {
		if e.Status == employee.StatusActive {
			overview.ActiveEmployees++
		}
	}

	for _, d := range depts {
		hc := DepartmentHeadcount{Department: d}
		for _, e := range empls {
			if !department.NameRef(e.Department).Of(d) {
				continue
			}
			hc.TotalEmployees++
			if e.Status == employee.StatusActive {
				hc.ActiveEmployees++
			}
		}
		overview.Departments = append(overview.Departments, hc)
	}

	if len(depts) > 0 {
		overview.AvgPerDepartment = int(math.Round(float64(len(empls)) / float64(len(depts))))
	}
	return overview
}
