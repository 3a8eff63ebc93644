package house

import "context"

type Repository interface {
	Create(ctx context.Context, h *House) error
	Save(ctx context.Context, h *House) error
	GetByID(ctx context.Context, id uint64) (*House, error)
	GetByHouseNumber(ctx context.Context, number int) (*House, error)
	List(ctx context.Context, f ListFilter) ([]House, error)
	UpdateStatus(ctx context.Context, id uint64, s Status) error
	// MaxHouseNumber returns 0 on an empty table.
	MaxHouseNumber(ctx context.Context) (int, error)
}
