package document

import (
	"context"

	"hris-dashboard/internal/memstore"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Document, error)
	FindByID(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, id string, mutate func(*Document)) (*Document, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *memstore.Store[Document]
}

// NewRepository returns an in-memory repository seeded with fixtures, in
// order. Seeding fails on duplicate ids.
func NewRepository(seed []Document) (Repository, error) {
	store := memstore.New(
		func(doc Document) string { return doc.ID },
		Document.Clone,
	)
	if err := store.Seed(seed); err != nil {
		return nil, err
	}
	return &repository{store: store}, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Document, error) {
	return r.store.List(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Document, error) {
	doc, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) Create(ctx context.Context, doc *Document) error {
	return r.store.Insert(*doc)
}

// Update applies mutate to the stored record atomically and returns the
// result.
func (r *repository) Update(ctx context.Context, id string, mutate func(*Document)) (*Document, error) {
	doc, err := r.store.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(id)
}
