package leave

import (
	"context"
	"errors"
	"time"

	"hris-dashboard/internal/events"
	leaveerrors "hris-dashboard/internal/leave/errors"
	"hris-dashboard/internal/memstore"
	"hris-dashboard/internal/shared/contextutil"
	"hris-dashboard/internal/shared/idgen"
	"hris-dashboard/internal/shared/latency"

	"go.uber.org/zap"
)

const maxIDAttempts = 5

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (LeaveRequest, error)
	Reject(ctx context.Context, id string) (LeaveRequest, error)
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
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
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

func (s *service) GetAll(ctx context.Context) ([]LeaveRequest, error) {
	s.logger.Debug("get all leave requests requested")
	if err := s.delay.Wait(ctx, latency.OpGetAll); err != nil {
		return nil, err
	}

	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leave requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return leaves, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveRequest, error) {
	s.logger.Debug("get leave request by id requested", zap.String("leave_id", id))
	if err := s.delay.Wait(ctx, latency.OpGetByID); err != nil {
		return LeaveRequest{}, err
	}

	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get leave request by id failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveRequest{}, mapRepositoryError(err)
	}
	return *lr, nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request requested",
		zap.String("request_id", rid),
		zap.String("employee_id", string(req.EmployeeID)),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)
	if err := s.delay.Wait(ctx, latency.OpCreate); err != nil {
		return LeaveRequest{}, err
	}

	lr := &LeaveRequest{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         req.Type,
		Status:       StatusPending,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Days:         req.Days,
	}

	if err := s.insertWithFreshID(ctx, lr); err != nil {
		s.logger.Error("create leave request persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequest{}, err
	}

	s.logger.Info("create leave request success",
		zap.String("request_id", rid),
		zap.String("leave_id", lr.ID),
		zap.String("employee_id", string(lr.EmployeeID)),
	)
	return *lr, nil
}

func (s *service) insertWithFreshID(ctx context.Context, lr *LeaveRequest) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		lr.ID = s.ids.NewID()
		err := s.repo.Create(ctx, lr)
		if err == nil {
			return nil
		}
		if !errors.Is(err, memstore.ErrDuplicateID) {
			return mapRepositoryError(err)
		}
		s.logger.Warn("create leave request id collision, retrying", zap.String("leave_id", lr.ID))
	}
	return leaveerrors.ErrIDExhausted
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveRequest, error) {
	s.logger.Debug("update leave request requested", zap.String("leave_id", id))
	if err := s.delay.Wait(ctx, latency.OpUpdate); err != nil {
		return LeaveRequest{}, err
	}

	var fromStatus string
	lr, err := s.repo.Update(ctx, id, func(rec *LeaveRequest) {
		fromStatus = rec.Status
		req.applyTo(rec)
	})
	if err != nil {
		s.logger.Warn("update leave request failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveRequest{}, mapRepositoryError(err)
	}

	if lr.Status != fromStatus {
		s.publishStatusChanged(ctx, *lr, fromStatus)
	}
	s.logger.Info("update leave request success",
		zap.String("leave_id", id),
		zap.String("from_status", fromStatus),
		zap.String("to_status", lr.Status),
	)
	return *lr, nil
}

func (s *service) Approve(ctx context.Context, id string) (LeaveRequest, error) {
	status := StatusApproved
	return s.Update(ctx, id, UpdateLeaveRequest{Status: &status})
}

func (s *service) Reject(ctx context.Context, id string) (LeaveRequest, error) {
	status := StatusRejected
	return s.Update(ctx, id, UpdateLeaveRequest{Status: &status})
}

func (s *service) publishStatusChanged(ctx context.Context, lr LeaveRequest, fromStatus string) {
	event := events.LeaveStatusChangedEvent{
		EventType:  "leave_status_changed",
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    lr.ID,
		EmployeeID: string(lr.EmployeeID),
		FromStatus: fromStatus,
		ToStatus:   lr.Status,
		OccurredAt: time.Now().UTC(),
	}
	msg, err := events.NewMessage(events.LeaveStatusTopic, lr.ID, event.EventType, "leave_request", event)
	if err == nil {
		err = s.publisher.Publish(ctx, msg)
	}
	if err != nil {
		s.logger.Error("publish leave status changed failed",
			zap.String("leave_id", lr.ID),
			zap.Error(err),
		)
	}
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete leave request requested", zap.String("leave_id", id))
	if err := s.delay.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete leave request failed", zap.String("leave_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete leave request success", zap.String("leave_id", id))
	return nil
}
