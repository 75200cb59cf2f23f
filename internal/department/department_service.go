package department

import (
	"context"
	"errors"

	departmenterrors "hris-dashboard/internal/department/errors"
	"hris-dashboard/internal/memstore"
	"hris-dashboard/internal/shared/idgen"
	"hris-dashboard/internal/shared/latency"

	"go.uber.org/zap"
)

const maxIDAttempts = 5

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	delay  latency.Delayer
	ids    idgen.Generator
	logger *zap.Logger
}

func NewService(repo Repository, delay latency.Delayer, ids idgen.Generator, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	if delay == nil {
		delay = latency.None()
	}
	if ids == nil {
		ids = idgen.UUID()
	}
	return &service{repo: repo, delay: delay, ids: ids, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]Department, error) {
	if err := s.delay.Wait(ctx, latency.OpGetAll); err != nil {
		return nil, err
	}

	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return depts, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Department, error) {
	if err := s.delay.Wait(ctx, latency.OpGetByID); err != nil {
		return Department{}, err
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Department{}, mapRepositoryError(err)
	}
	return *dept, nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (Department, error) {
	if err := s.delay.Wait(ctx, latency.OpCreate); err != nil {
		return Department{}, err
	}

	dept := &Department{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Manager:     req.Manager,
		Location:    req.Location,
		Budget:      req.Budget,
		Status:      req.Status,
	}

	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			return Department{}, departmenterrors.ErrIDExhausted
		}
		dept.ID = s.ids.NewID()
		err := s.repo.Create(ctx, dept)
		if err == nil {
			break
		}
		if !errors.Is(err, memstore.ErrDuplicateID) {
			s.logger.Error("create department persist failed", zap.Error(err))
			return Department{}, mapRepositoryError(err)
		}
	}

	s.logger.Info("create department success",
		zap.String("department_id", dept.ID),
		zap.String("name", dept.Name),
	)
	return *dept, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (Department, error) {
	if err := s.delay.Wait(ctx, latency.OpUpdate); err != nil {
		return Department{}, err
	}

	dept, err := s.repo.Update(ctx, id, req.applyTo)
	if err != nil {
		return Department{}, mapRepositoryError(err)
	}

	s.logger.Info("update department success", zap.String("department_id", id))
	return *dept, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}
