package employee

import (
	"context"

	"hris-dashboard/internal/memstore"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, id string, mutate func(*Employee)) (*Employee, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *memstore.Store[Employee]
}

// NewRepository returns an in-memory repository seeded with fixtures, in
// order. Seeding fails on duplicate ids.
func NewRepository(seed []Employee) (Repository, error) {
	store := memstore.New(
		func(e Employee) string { return e.ID },
		Employee.Clone,
	)
	if err := store.Seed(seed); err != nil {
		return nil, err
	}
	return &repository{store: store}, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	return r.store.List(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	empl, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.store.Insert(*empl)
}

// Update applies mutate to the stored record atomically and returns the
// result.
func (r *repository) Update(ctx context.Context, id string, mutate func(*Employee)) (*Employee, error) {
	empl, err := r.store.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}
