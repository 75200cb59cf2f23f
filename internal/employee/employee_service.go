package employee

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	employeeerrors "hris-dashboard/internal/employee/errors"
	"hris-dashboard/internal/events"
	"hris-dashboard/internal/memstore"
	"hris-dashboard/internal/shared/contextutil"
	"hris-dashboard/internal/shared/idgen"
	"hris-dashboard/internal/shared/latency"

	"go.uber.org/zap"
)

const (
	maxIDAttempts = 5
	avatarURLFmt  = "https://images.unsplash.com/photo-%d?w=150&h=150&fit=crop&crop=face"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	delay     latency.Delayer
	ids       idgen.Generator
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, delay latency.Delayer, ids idgen.Generator, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, delay, ids, nil, logger...)
}

func NewServiceWithPublisher(
	repo Repository,
	delay latency.Delayer,
	ids idgen.Generator,
	publisher events.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if delay == nil {
		delay = latency.None()
	}
	if ids == nil {
		ids = idgen.UUID()
	}
	if publisher == nil {
		publisher = events.Noop()
	}
	return &service{
		repo:      repo,
		delay:     delay,
		ids:       ids,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	s.logger.Debug("get all employees requested")
	if err := s.delay.Wait(ctx, latency.OpGetAll); err != nil {
		return nil, err
	}

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return empls, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if err := s.delay.Wait(ctx, latency.OpGetByID); err != nil {
		return Employee{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, mapRepositoryError(err)
	}
	return *empl, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)
	if err := s.delay.Wait(ctx, latency.OpCreate); err != nil {
		return Employee{}, err
	}

	empl := &Employee{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
		Skills:     slices.Clone(req.Skills),
		StartDate:  req.StartDate,
		DOB:        req.DOB,
		Avatar:     req.Avatar,
		Status:     req.Status,
	}
	if empl.StartDate == "" {
		empl.StartDate = time.Now().Format("2006-01-02")
	}
	if empl.Avatar == "" {
		empl.Avatar = fmt.Sprintf(avatarURLFmt, rand.IntN(1_000_000_000))
	}
	if empl.Skills == nil {
		empl.Skills = []string{}
	}

	if err := s.insertWithFreshID(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return Employee{}, err
	}

	s.publishCreated(ctx, rid, *empl)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)

	return empl.Clone(), nil
}

func (s *service) insertWithFreshID(ctx context.Context, empl *Employee) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		empl.ID = s.ids.NewID()
		err := s.repo.Create(ctx, empl)
		if err == nil {
			return nil
		}
		if !errors.Is(err, memstore.ErrDuplicateID) {
			return mapRepositoryError(err)
		}
		s.logger.Warn("create employee id collision, retrying", zap.String("employee_id", empl.ID))
	}
	return employeeerrors.ErrIDExhausted
}

func (s *service) publishCreated(ctx context.Context, rid string, empl Employee) {
	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		EmployeeID: empl.ID,
		Name:       empl.Name,
		Department: empl.Department,
		OccurredAt: time.Now().UTC(),
	}
	msg, err := events.NewMessage(events.EmployeeLifecycleTopic, empl.ID, event.EventType, "employee", event)
	if err == nil {
		err = s.publisher.Publish(ctx, msg)
	}
	if err != nil {
		s.logger.Error("publish employee created failed",
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))
	if err := s.delay.Wait(ctx, latency.OpUpdate); err != nil {
		return Employee{}, err
	}

	empl, err := s.repo.Update(ctx, id, req.applyTo)
	if err != nil {
		s.logger.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return empl.Clone(), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if err := s.delay.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}
