package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hris-dashboard/internal/dashboard"
	"hris-dashboard/internal/department"
	departmentMock "hris-dashboard/internal/department/mock"
	"hris-dashboard/internal/document"
	documentMock "hris-dashboard/internal/document/mock"
	"hris-dashboard/internal/employee"
	employeeMock "hris-dashboard/internal/employee/mock"
	"hris-dashboard/internal/leave"
	leaveMock "hris-dashboard/internal/leave/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type aggregatorDeps struct {
	employees   *employeeMock.MockService
	leaves      *leaveMock.MockService
	documents   *documentMock.MockService
	departments *departmentMock.MockService
	aggregator  *dashboard.Aggregator
}

var fixedNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func setupAggregator(t *testing.T) *aggregatorDeps {
	ctrl := gomock.NewController(t)
	deps := &aggregatorDeps{
		employees:   employeeMock.NewMockService(ctrl),
		leaves:      leaveMock.NewMockService(ctrl),
		documents:   documentMock.NewMockService(ctrl),
		departments: departmentMock.NewMockService(ctrl),
	}
	deps.aggregator = dashboard.NewAggregator(
		dashboard.Sources{
			Employees:   deps.employees,
			Leaves:      deps.leaves,
			Documents:   deps.documents,
			Departments: deps.departments,
		},
		dashboard.WithLogger(zap.NewNop()),
		dashboard.WithClock(func() time.Time { return fixedNow }),
	)
	return deps
}

func fiveEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "1", Name: "Sarah Johnson", Department: "Engineering", Status: "Active", DOB: "1990-06-12"},
		{ID: "2", Name: "Mike Chen", Department: "Design", Status: "Active", DOB: "1988-02-01"},
		{ID: "3", Name: "Lisa Park", Department: "HR", Status: "Active", StartDate: "2019-06-10"},
		{ID: "4", Name: "Tom Lee", Department: "Engineering", Status: "On Leave", DOB: "1995-06-09"},
		{ID: "5", Name: "Ana Ruiz", Department: "Engineering", Status: "Active", DOB: "1993-11-20"},
	}
}

func TestAggregator_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAggregator(t)
		deps.employees.EXPECT().GetAll(gomock.Any()).Return(fiveEmployees(), nil)
		deps.leaves.EXPECT().GetAll(gomock.Any()).Return([]leave.LeaveRequest{
			{ID: "L1", Status: "pending"},
			{ID: "L2", Status: "approved"},
			{ID: "L3", Status: "pending"},
		}, nil)
		deps.documents.EXPECT().GetAll(gomock.Any()).Return([]document.Document{{ID: "D1"}, {ID: "D2"}}, nil)

		got, err := deps.aggregator.Summary(ctx)
		require.NoError(t, err)

		assert.Equal(t, dashboard.Stats{
			TotalEmployees:    5,
			PendingLeaves:     2,
			DocumentsCount:    2,
			UpcomingBirthdays: 2,
		}, got.Stats)
		require.Len(t, got.RecentActivity, 3)
		assert.Equal(t, "Sarah Johnson submitted a vacation request", got.RecentActivity[0].Message)
		assert.Equal(t, "🎂 Mike Chen's birthday is tomorrow!", got.RecentActivity[2].Message)
	})

	t.Run("one failing source fails the summary", func(t *testing.T) {
		deps := setupAggregator(t)
		boom := errors.New("leave store unavailable")
		deps.employees.EXPECT().GetAll(gomock.Any()).Return(fiveEmployees(), nil).AnyTimes()
		deps.leaves.EXPECT().GetAll(gomock.Any()).Return(nil, boom)
		deps.documents.EXPECT().GetAll(gomock.Any()).Return(nil, nil).AnyTimes()

		got, err := deps.aggregator.Summary(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, dashboard.Summary{}, got)
	})

	t.Run("concurrent calls share one fetch", func(t *testing.T) {
		deps := setupAggregator(t)
		entered := make(chan struct{})
		release := make(chan struct{})

		deps.employees.EXPECT().GetAll(gomock.Any()).
			DoAndReturn(func(context.Context) ([]employee.Employee, error) {
				close(entered)
				<-release
				return fiveEmployees(), nil
			}).Times(1)
		deps.leaves.EXPECT().GetAll(gomock.Any()).Return(nil, nil).Times(1)
		deps.documents.EXPECT().GetAll(gomock.Any()).Return(nil, nil).Times(1)

		const callers = 4
		results := make([]dashboard.Summary, callers)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[0], _ = deps.aggregator.Summary(ctx)
		}()
		<-entered

		for i := 1; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = deps.aggregator.Summary(ctx)
			}(i)
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, 5, r.Stats.TotalEmployees)
		}
	})

	t.Run("first caller leaving does not fail the others", func(t *testing.T) {
		deps := setupAggregator(t)
		entered := make(chan struct{})
		release := make(chan struct{})

		deps.employees.EXPECT().GetAll(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]employee.Employee, error) {
				close(entered)
				<-release
				return fiveEmployees(), ctx.Err()
			}).Times(1)
		deps.leaves.EXPECT().GetAll(gomock.Any()).Return(nil, nil).Times(1)
		deps.documents.EXPECT().GetAll(gomock.Any()).Return(nil, nil).Times(1)

		firstCtx, cancelFirst := context.WithCancel(ctx)
		firstErr := make(chan error, 1)
		go func() {
			_, err := deps.aggregator.Summary(firstCtx)
			firstErr <- err
		}()
		<-entered

		type result struct {
			summary dashboard.Summary
			err     error
		}
		second := make(chan result, 1)
		go func() {
			s, err := deps.aggregator.Summary(ctx)
			second <- result{s, err}
		}()

		cancelFirst()
		assert.ErrorIs(t, <-firstErr, context.Canceled)

		time.Sleep(50 * time.Millisecond)
		close(release)

		got := <-second
		require.NoError(t, got.err)
		assert.Equal(t, 5, got.summary.Stats.TotalEmployees)
	})
}

func TestAggregator_DepartmentOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAggregator(t)
		deps.departments.EXPECT().GetAll(gomock.Any()).Return([]department.Department{
			{ID: "1", Name: "Engineering"},
			{ID: "2", Name: "Design"},
		}, nil)
		deps.employees.EXPECT().GetAll(gomock.Any()).Return(fiveEmployees(), nil)

		got, err := deps.aggregator.DepartmentOverview(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, got.TotalDepartments)
		assert.Equal(t, 5, got.TotalEmployees)
		assert.Equal(t, 4, got.ActiveEmployees)
		assert.Equal(t, 3, got.AvgPerDepartment)
		assert.Equal(t, 3, got.Departments[0].TotalEmployees)
		assert.Equal(t, 2, got.Departments[0].ActiveEmployees)
	})

	t.Run("fetch failure", func(t *testing.T) {
		deps := setupAggregator(t)
		deps.departments.EXPECT().GetAll(gomock.Any()).Return(nil, context.DeadlineExceeded)
		deps.employees.EXPECT().GetAll(gomock.Any()).Return(fiveEmployees(), nil).AnyTimes()

		_, err := deps.aggregator.DepartmentOverview(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
