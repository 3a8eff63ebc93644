package receipt

import "context"

type Repository interface {
	Create(ctx context.Context, r *Receipt) error
	GetByID(ctx context.Context, id uint64) (*Receipt, error)
	GetByReceiptNumber(ctx context.Context, number int) (*Receipt, error)
	// List orders by receipt_date DESC, receipt_number DESC.
	List(ctx context.Context) ([]Receipt, error)
	Delete(ctx context.Context, id uint64) error
}
