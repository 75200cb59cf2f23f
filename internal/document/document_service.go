package document

import (
	"context"
	"errors"
	"time"

	documenterrors "hris-dashboard/internal/document/errors"
	"hris-dashboard/internal/memstore"
	"hris-dashboard/internal/shared/contextutil"
	"hris-dashboard/internal/shared/idgen"
	"hris-dashboard/internal/shared/latency"

	"go.uber.org/zap"
)

const maxIDAttempts = 5

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	Create(ctx context.Context, req CreateDocumentRequest) (Document, error)
	Update(ctx context.Context, id string, req UpdateDocumentRequest) (Document, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	delay  latency.Delayer
	ids    idgen.Generator
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, delay latency.Delayer, ids idgen.Generator, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	if delay == nil {
		delay = latency.None()
	}
	if ids == nil {
		ids = idgen.UUID()
	}
	return &service{
		repo:   repo,
		delay:  delay,
		ids:    ids,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]Document, error) {
	s.logger.Debug("get all documents requested")
	if err := s.delay.Wait(ctx, latency.OpGetAll); err != nil {
		return nil, err
	}

	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all documents failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return docs, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Document, error) {
	s.logger.Debug("get document by id requested", zap.String("document_id", id))
	if err := s.delay.Wait(ctx, latency.OpGetByID); err != nil {
		return Document{}, err
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get document by id failed", zap.String("document_id", id), zap.Error(err))
		return Document{}, mapRepositoryError(err)
	}
	return *doc, nil
}

func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (Document, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create document requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
		zap.String("category", req.Category),
	)
	if err := s.delay.Wait(ctx, latency.OpCreate); err != nil {
		return Document{}, err
	}

	doc := &Document{
		Title:      req.Title,
		Category:   req.Category,
		FileType:   req.FileType,
		Size:       req.Size,
		UploadDate: s.now().Format("2006-01-02"),
		Shared:     req.Shared,
	}
	if req.EmployeeID != nil {
		ref := *req.EmployeeID
		doc.EmployeeID = &ref
	}

	if err := s.insertWithFreshID(ctx, doc); err != nil {
		s.logger.Error("create document persist failed", zap.String("request_id", rid), zap.Error(err))
		return Document{}, err
	}

	s.logger.Info("create document success",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID),
		zap.Bool("public", doc.IsPublic()),
	)
	return doc.Clone(), nil
}

func (s *service) insertWithFreshID(ctx context.Context, doc *Document) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		doc.ID = s.ids.NewID()
		err := s.repo.Create(ctx, doc)
		if err == nil {
			return nil
		}
		if !errors.Is(err, memstore.ErrDuplicateID) {
			return mapRepositoryError(err)
		}
		s.logger.Warn("create document id collision, retrying", zap.String("document_id", doc.ID))
	}
	return documenterrors.ErrIDExhausted
}

func (s *service) Update(ctx context.Context, id string, req UpdateDocumentRequest) (Document, error) {
	s.logger.Debug("update document requested", zap.String("document_id", id))
	if err := s.delay.Wait(ctx, latency.OpUpdate); err != nil {
		return Document{}, err
	}

	doc, err := s.repo.Update(ctx, id, req.applyTo)
	if err != nil {
		s.logger.Warn("update document failed", zap.String("document_id", id), zap.Error(err))
		return Document{}, mapRepositoryError(err)
	}

	s.logger.Info("update document success", zap.String("document_id", id))
	return doc.Clone(), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete document requested", zap.String("document_id", id))
	if err := s.delay.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete document failed", zap.String("document_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete document success", zap.String("document_id", id))
	return nil
}
