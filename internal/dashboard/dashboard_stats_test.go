package dashboard_test

import (
	"testing"
	"time"

	"hris-dashboard/internal/dashboard"
	"hris-dashboard/internal/department"
	"hris-dashboard/internal/employee"
	"hris-dashboard/internal/leave"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPending(t *testing.T) {
	leaves := []leave.LeaveRequest{
		{Status: "pending"},
		{Status: "Pending"},
		{Status: "approved"},
		{Status: "pending"},
	}
	assert.Equal(t, 2, dashboard.CountPending(leaves))
	assert.Equal(t, 0, dashboard.CountPending(nil))
}

func TestUpcomingBirthdays(t *testing.T) {
	now := time.Date(2024, 12, 28, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		empl employee.Employee
		want int
	}{
		{"today counts", employee.Employee{DOB: "1990-12-28"}, 1},
		{"seven days ahead counts", employee.Employee{DOB: "1985-01-04"}, 1},
		{"eight days ahead does not", employee.Employee{DOB: "1985-01-05"}, 0},
		{"yesterday rolls to next year", employee.Employee{DOB: "1992-12-27"}, 0},
		{"falls back to start date", employee.Employee{StartDate: "2020-12-30"}, 1},
		{"dob wins over start date", employee.Employee{DOB: "1990-06-01", StartDate: "2020-12-30"}, 0},
		{"no dates", employee.Employee{}, 0},
		{"garbage date", employee.Employee{DOB: "someday"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dashboard.UpcomingBirthdays([]employee.Employee{tt.empl}, now))
		})
	}
}

func TestRecentActivity(t *testing.T) {
	t.Run("uses first two employees", func(t *testing.T) {
		feed := dashboard.RecentActivity([]employee.Employee{{Name: "Ana Ruiz"}, {Name: "Tom Lee"}, {Name: "X"}})

		require.Len(t, feed, 3)
		assert.Equal(t, "Ana Ruiz submitted a vacation request", feed[0].Message)
		assert.Equal(t, "leave_request", feed[0].Type)
		assert.Equal(t, `New policy document uploaded: "Remote Work Guidelines"`, feed[1].Message)
		assert.Equal(t, "🎂 Tom Lee's birthday is tomorrow!", feed[2].Message)
		assert.Equal(t, "Gift", feed[2].Icon)
	})

	t.Run("placeholders when store is small", func(t *testing.T) {
		feed := dashboard.RecentActivity(nil)

		assert.Equal(t, "Sarah Johnson submitted a vacation request", feed[0].Message)
		assert.Equal(t, "🎂 Mike Chen's birthday is tomorrow!", feed[2].Message)
	})
}

func TestHeadcounts(t *testing.T) {
	depts := []department.Department{{ID: "1", Name: "Engineering"}, {ID: "2", Name: "Design"}, {ID: "3", Name: "Legal"}}
	empls := []employee.Employee{
		{Department: "Engineering", Status: "Active"},
		{Department: "Engineering", Status: "On Leave"},
		{Department: "Design", Status: "Active"},
		{Department: "Marketing", Status: "Active"},
	}

	got := dashboard.Headcounts(depts, empls)

	assert.Equal(t, 3, got.TotalDepartments)
	assert.Equal(t, 4, got.TotalEmployees)
	assert.Equal(t, 3, got.ActiveEmployees)
	assert.Equal(t, 1, got.AvgPerDepartment)
	require.Len(t, got.Departments, 3)
	assert.Equal(t, 2, got.Departments[0].TotalEmployees)
	assert.Equal(t, 1, got.Departments[0].ActiveEmployees)
	assert.Equal(t, 1, got.Departments[1].TotalEmployees)
	assert.Equal(t, 0, got.Departments[2].TotalEmployees)

	assert.Equal(t, 0, dashboard.Headcounts(nil, empls).AvgPerDepartment)
}
