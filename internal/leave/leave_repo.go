package leave

import (
	"context"

	"hris-dashboard/internal/memstore"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	Create(ctx context.Context, lr *LeaveRequest) error
	Update(ctx context.Context, id string, mutate func(*LeaveRequest)) (*LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *memstore.Store[LeaveRequest]
}

// NewRepository returns an in-memory repository seeded with fixtures, in
// order. Seeding fails on duplicate ids.
func NewRepository(seed []LeaveRequest) (Repository, error) {
	store := memstore.New(
		func(lr LeaveRequest) string { return lr.ID },
		LeaveRequest.Clone,
	)
	if err := store.Seed(seed); err != nil {
		return nil, err
	}
	return &repository{store: store}, nil
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	return r.store.List(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	lr, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.store.Insert(*lr)
}

// Update applies mutate to the stored record atomically and returns the
// result.
func (r *repository) Update(ctx context.Context, id string, mutate func(*LeaveRequest)) (*LeaveRequest, error) {
	lr, err := r.store.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}
