package dashboard

import (
	"context"
	"time"

	"hris-dashboard/internal/department"
	"hris-dashboard/internal/document"
	"hris-dashboard/internal/employee"
	"hris-dashboard/internal/leave"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type EmployeeLister interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
}

type LeaveLister interface {
	GetAll(ctx context.Context) ([]leave.LeaveRequest, error)
}

type DocumentLister interface {
	GetAll(ctx context.Context) ([]document.Document, error)
}

type DepartmentLister interface {
	GetAll(ctx context.Context) ([]department.Department, error)
}

// Sources are the entity services the aggregator reads from. The entity
// Service interfaces satisfy them directly.
type Sources struct {
	Employees   EmployeeLister
	Leaves      LeaveLister
	Documents   DocumentLister
	Departments DepartmentLister
}

// Aggregator derives dashboard views from several entity services at once.
// Its fetches are all-or-nothing: one failing source fails the view.
type Aggregator struct {
	src    Sources
	now    func() time.Time
	flight singleflight.Group
	logger *zap.Logger
}

func NewAggregator(src Sources, opts ...Option) *Aggregator {
	a := &Aggregator{
		src:    src,
		now:    time.Now,
		logger: zap.L().Named("dashboard.aggregator"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Summary fetches employees, leave requests and documents concurrently and
// folds them into the home page stats and activity feed. Concurrent calls
// share one in-flight fetch. The shared fetch is detached from any single
// caller's cancellation; each caller stops waiting when its own ctx ends.
func (a *Aggregator) Summary(ctx context.Context) (Summary, error) {
	ch := a.flight.DoChan("summary", func() (any, error) {
		return a.summary(context.WithoutCancel(ctx))
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Summary{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return Summary{}, res.Err
	}
	if res.Shared {
		a.logger.Debug("dashboard summary coalesced")
	}

	s := res.Val.(Summary)
	s.RecentActivity = append([]Activity(nil), s.RecentActivity...)
	return s, nil
}

func (a *Aggregator) summary(ctx context.Context) (Summary, error) {
	a.logger.Debug("dashboard summary requested")

	var (
		empls  []employee.Employee
		leaves []leave.LeaveRequest
		docs   []document.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		empls, err = a.src.Employees.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = a.src.Leaves.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = a.src.Documents.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("dashboard summary fetch failed", zap.Error(err))
		return Summary{}, err
	}

	summary := Summary{
		Stats: Stats{
			TotalEmployees:    len(empls),
			PendingLeaves:     CountPending(leaves),
			DocumentsCount:    len(docs),
			UpcomingBirthdays: UpcomingBirthdays(empls, a.now()),
		},
		RecentActivity: RecentActivity(empls),
	}

	a.logger.Info("dashboard summary success",
		zap.Int("total_employees", summary.Stats.TotalEmployees),
		zap.Int("pending_leaves", summary.Stats.PendingLeaves),
		zap.Int("documents", summary.Stats.DocumentsCount),
		zap.Int("upcoming_birthdays", summary.Stats.UpcomingBirthdays),
	)
	return summary, nil
}

// DepartmentOverview fetches departments and employees concurrently and
// returns per-department headcounts.
func (a *Aggregator) DepartmentOverview(ctx context.Context) (DepartmentOverview, error) {
	a.logger.Debug("department overview requested")

	var (
		depts []department.Department
		empls []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		depts, err = a.src.Departments.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		empls, err = a.src.Employees.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("department overview fetch failed", zap.Error(err))
		return DepartmentOverview{}, err
	}

	return Headcounts(depts, empls), nil
}
