package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint64) (*Payment, error)
	// ListByContractID orders by payment_date DESC, created_at DESC, so the
	// first element is the latest payment.
	ListByContractID(ctx context.Context, contractID uint64) ([]Payment, error)
	// ListAll uses the same ordering as ListByContractID.
	ListAll(ctx context.Context) ([]Payment, error)
	Delete(ctx context.Context, id uint64) error
	DeleteByContractID(ctx context.Context, contractID uint64) error
}
