package resale

import (
	"time"

	"realestate-backend/internal/domain/apperr"
)

var ErrNotFound = apperr.NotFound("السجل غير موجود")

// Table: resale
type Resale struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	HouseID          uint64    `gorm:"column:house_id;not null;index"`
	Source           string    `gorm:"column:source;size:255;not null"`
	MobileNumber     string    `gorm:"column:mobile_number;size:64;not null"`
	ContactDate      time.Time `gorm:"column:contact_date;type:date;not null"`
	RemainingAmount  *float64  `gorm:"column:remaining_amount"`
	Floors           *int      `gorm:"column:floors"`
	BuildingMaterial *string   `gorm:"column:building_material;size:255"`
	AdditionalSpecs  *string   `gorm:"column:additional_specs;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Resale) TableName() string { return "resale" }
