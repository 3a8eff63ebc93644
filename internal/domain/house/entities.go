package house

import (
	"time"

	"realestate-backend/internal/domain/apperr"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusDeleted   Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusDeleted:
		return true
	}
	return false
}

var (
	ErrNotFound  = apperr.NotFound("المنزل غير موجود")
	ErrDuplicate = apperr.Duplicate("يوجد منزل بنفس الرقم")
)

// Table: houses
type House struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	HouseNumber      int       `gorm:"column:house_number;not null;uniqueIndex:ux_houses_house_number"`
	BlockNumber      int       `gorm:"column:block_number;not null"`
	TotalArea        float64   `gorm:"column:total_area;not null"`
	BuildingArea     float64   `gorm:"column:building_area;not null"`
	TotalPrice       float64   `gorm:"column:total_price;not null"`
	DownPayment      float64   `gorm:"column:down_payment;not null;default:0"`
	LoanAmount       float64   `gorm:"column:loan_amount;not null;default:0"`
	Phase            int       `gorm:"column:phase;not null;index"`
	Outlook          *float64  `gorm:"column:outlook"`
	AdditionalSpecs  *string   `gorm:"column:additional_specs;type:text"`
	Status           Status    `gorm:"column:status;size:16;not null;default:available;index"`
	Floors           *int      `gorm:"column:floors"`
	BuildingMaterial *string   `gorm:"column:building_material;size:255"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (House) TableName() string { return "houses" }

// ListFilter carries the two optional listing parameters.
type ListFilter struct {
	Phase       *int
	IncludeSold bool
}
