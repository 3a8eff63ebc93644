package resale

import "context"

type Repository interface {
	Create(ctx context.Context, r *Resale) error
	GetByID(ctx context.Context, id uint64) (*Resale, error)
	// List orders by contact_date DESC.
	List(ctx context.Context) ([]Resale, error)
	Delete(ctx context.Context, id uint64) error
}
