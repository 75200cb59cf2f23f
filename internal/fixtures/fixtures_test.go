package fixtures_test

import (
	"testing"
	"testing/fstest"

	"hris-dashboard/internal/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	set, err := fixtures.Load("")
	require.NoError(t, err)

	require.Len(t, set.Employees, 8)
	assert.Equal(t, "Sarah Johnson", set.Employees[0].Name)
	assert.Equal(t, []string{"Leadership", "Go", "System Design"}, set.Employees[0].Skills)
	assert.Empty(t, set.Employees[2].DOB)

	require.Len(t, set.LeaveRequests, 6)
	assert.Equal(t, "pending", set.LeaveRequests[0].Status)

	require.Len(t, set.Documents, 6)
	assert.True(t, set.Documents[0].IsPublic())
	require.NotNil(t, set.Documents[1].EmployeeID)
	assert.EqualValues(t, "1", *set.Documents[1].EmployeeID)

	require.Len(t, set.Departments, 6)
	assert.Equal(t, 2500000.0, set.Departments[0].Budget)
}

func TestLoad_EmbeddedIDsUnique(t *testing.T) {
	set, err := fixtures.Load("")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, e := range set.Employees {
		assert.False(t, seen[e.ID], "duplicate employee id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		fixtures.EmployeesFile:     {Data: []byte("- id: a\n  name: Only One\n")},
		fixtures.LeaveRequestsFile: {Data: []byte("[]\n")},
		fixtures.DocumentsFile:     {Data: []byte("[]\n")},
		fixtures.DepartmentsFile:   {Data: []byte("[]\n")},
	}

	set, err := fixtures.LoadFS(fsys)
	require.NoError(t, err)
	require.Len(t, set.Employees, 1)
	assert.Equal(t, "Only One", set.Employees[0].Name)
	assert.Empty(t, set.Documents)
}

func TestLoadFS_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := fixtures.LoadFS(fstest.MapFS{})
		assert.ErrorContains(t, err, fixtures.EmployeesFile)
	})

	t.Run("bad yaml", func(t *testing.T) {
		fsys := fstest.MapFS{
			fixtures.EmployeesFile: {Data: []byte("- id: [unclosed\n")},
		}
		_, err := fixtures.LoadFS(fsys)
		assert.ErrorContains(t, err, "parse fixture")
	})
}

func TestLoad_Dir(t *testing.T) {
	_, err := fixtures.Load(t.TempDir())
	assert.Error(t, err)
}
