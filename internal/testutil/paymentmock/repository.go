package paymentmock

import (
	"context"
	"errors"

	domain "realestate-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("paymentmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, p *domain.Payment) error
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Payment, error)
	ListByContractIDFn   func(ctx context.Context, contractID uint64) ([]domain.Payment, error)
	ListAllFn            func(ctx context.Context) ([]domain.Payment, error)
	DeleteFn             func(ctx context.Context, id uint64) error
	DeleteByContractIDFn func(ctx context.Context, contractID uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Payment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) ListByContractID(ctx context.Context, contractID uint64) ([]domain.Payment, error) {
	if m.ListByContractIDFn != nil {
		return m.ListByContractIDFn(ctx, contractID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Payment, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) DeleteByContractID(ctx context.Context, contractID uint64) error {
	if m.DeleteByContractIDFn != nil {
		return m.DeleteByContractIDFn(ctx, contractID)
	}
	return nil
}
