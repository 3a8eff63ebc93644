package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	Save(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, id uint64) (*Contract, error)
	GetByContractNumber(ctx context.Context, number int) (*Contract, error)
	// List orders by sale_date DESC.
	List(ctx context.Context) ([]Contract, error)
	Delete(ctx context.Context, id uint64) error

	Count(ctx context.Context) (int64, error)
	MaxContractNumber(ctx context.Context) (int, error)
	// CountByHouseID counts contracts referencing houseID, ignoring excludeID (0 = none).
	CountByHouseID(ctx context.Context, houseID, excludeID uint64) (int64, error)
	// FirstByHouseID returns the lowest-id contract referencing houseID.
	FirstByHouseID(ctx context.Context, houseID uint64) (*Contract, error)
	GetByReceiptID(ctx context.Context, receiptID uint64) (*Contract, error)
	// FindByBuyer is the legacy receipt→contract match on house, buyer name and
	// mobile. Contracts already bound to a receipt are skipped.
	FindByBuyer(ctx context.Context, houseID uint64, buyerName, mobile string) (*Contract, error)

	SoldHouses(ctx context.Context) ([]SoldHouse, error)
	StatRows(ctx context.Context) ([]StatRow, error)
}
