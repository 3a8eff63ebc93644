package uow

import (
	"context"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/payment"
	"realestate-backend/internal/domain/receipt"
	"realestate-backend/internal/domain/resale"
)

// Repos bundles every repository bound to the same connection or transaction.
type Repos struct {
	Houses    house.Repository
	Receipts  receipt.Repository
	Contracts contract.Repository
	Payments  payment.Repository
	Resales   resale.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
