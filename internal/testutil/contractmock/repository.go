package contractmock

import (
	"context"
	"errors"

	domain "realestate-backend/internal/domain/contract"
)

var _ domain.Repository = (*Repo)(nil)

var ErrUnimplemented = errors.New("contractmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset writers succeed; unset readers return ErrUnimplemented.
type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Contract) error
	SaveFn                func(ctx context.Context, c *domain.Contract) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Contract, error)
	GetByContractNumberFn func(ctx context.Context, number int) (*domain.Contract, error)
	ListFn                func(ctx context.Context) ([]domain.Contract, error)
	DeleteFn              func(ctx context.Context, id uint64) error
	CountFn               func(ctx context.Context) (int64, error)
	MaxContractNumberFn   func(ctx context.Context) (int, error)
	CountByHouseIDFn      func(ctx context.Context, houseID, excludeID uint64) (int64, error)
	FirstByHouseIDFn      func(ctx context.Context, houseID uint64) (*domain.Contract, error)
	GetByReceiptIDFn      func(ctx context.Context, receiptID uint64) (*domain.Contract, error)
	FindByBuyerFn         func(ctx context.Context, houseID uint64, buyerName, mobile string) (*domain.Contract, error)
	SoldHousesFn          func(ctx context.Context) ([]domain.SoldHouse, error)
	StatRowsFn            func(ctx context.Context) ([]domain.StatRow, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Contract, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) GetByContractNumber(ctx context.Context, number int) (*domain.Contract, error) {
	if m.GetByContractNumberFn != nil {
		return m.GetByContractNumberFn(ctx, number)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Contract, error) {
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

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, ErrUnimplemented
}

func (m *Repo) MaxContractNumber(ctx context.Context) (int, error) {
	if m.MaxContractNumberFn != nil {
		return m.MaxContractNumberFn(ctx)
	}
	return 0, ErrUnimplemented
}

func (m *Repo) CountByHouseID(ctx context.Context, houseID, excludeID uint64) (int64, error) {
	if m.CountByHouseIDFn != nil {
		return m.CountByHouseIDFn(ctx, houseID, excludeID)
	}
	return 0, ErrUnimplemented
}

func (m *Repo) FirstByHouseID(ctx context.Context, houseID uint64) (*domain.Contract, error) {
	if m.FirstByHouseIDFn != nil {
		return m.FirstByHouseIDFn(ctx, houseID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) GetByReceiptID(ctx context.Context, receiptID uint64) (*domain.Contract, error) {
	if m.GetByReceiptIDFn != nil {
		return m.GetByReceiptIDFn(ctx, receiptID)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) FindByBuyer(ctx context.Context, houseID uint64, buyerName, mobile string) (*domain.Contract, error) {
	if m.FindByBuyerFn != nil {
		return m.FindByBuyerFn(ctx, houseID, buyerName, mobile)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) SoldHouses(ctx context.Context) ([]domain.SoldHouse, error) {
	if m.SoldHousesFn != nil {
		return m.SoldHousesFn(ctx)
	}
	return nil, ErrUnimplemented
}

func (m *Repo) StatRows(ctx context.Context) ([]domain.StatRow, error) {
	if m.StatRowsFn != nil {
		return m.StatRowsFn(ctx)
	}
	return nil, ErrUnimplemented
}
