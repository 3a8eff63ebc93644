package housemock

import (
	"context"
	"errors"

	domain "realestate-backend/internal/domain/house"
)

var _ domain.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("housemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset writers succeed; unset readers return ErrUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, h *domain.House) error
	SaveFn             func(ctx context.Context, h *domain.House) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.House, error)
	GetByHouseNumberFn func(ctx context.Context, number int) (*domain.House, error)
	ListFn             func(ctx context.Context, f domain.ListFilter) ([]domain.House, error)
	UpdateStatusFn     func(ctx context.Context, id uint64, s domain.Status) error
	MaxHouseNumberFn   func(ctx context.Context) (int, error)
}

func (m *Repo) Create(ctx context.Context, h *domain.House) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, h)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, h *domain.House) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, h)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.House, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) GetByHouseNumber(ctx context.Context, number int) (*domain.House, error) {
	if m.GetByHouseNumberFn != nil {
		return m.GetByHouseNumberFn(ctx, number)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.House, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, s domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) MaxHouseNumber(ctx context.Context) (int, error) {
	if m.MaxHouseNumberFn != nil {
		return m.MaxHouseNumberFn(ctx)
	}
	return 0, ErrUnimplemented
}
