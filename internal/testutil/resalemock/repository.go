package resalemock

import (
	"context"
	"errors"

	domain "realestate-backend/internal/domain/resale"
)

var _ domain.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("resalemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, r *domain.Resale) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Resale, error)
	ListFn    func(ctx context.Context) ([]domain.Resale, error)
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Resale) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Resale, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Resale, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
