package department

import (
	"context"

	"hris-dashboard/internal/memstore"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, id string, mutate func(*Department)) (*Department, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *memstore.Store[Department]
}

// NewRepository returns an in-memory repository seeded with fixtures, in
// order. Seeding fails on duplicate ids.
func NewRepository(seed []Department) (Repository, error) {
	store := memstore.New(
		func(dept Department) string { return dept.ID },
		Department.Clone,
	)
	if err := store.Seed(seed); err != nil {
		return nil, err
	}
	return &repository{store: store}, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	return r.store.List(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	dept, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.store.Insert(*dept)
}

// Update applies mutate to the stored record atomically and returns the
// result.
func (r *repository) Update(ctx context.Context, id string, mutate func(*Department)) (*Department, error) {
	dept, err := r.store.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}
