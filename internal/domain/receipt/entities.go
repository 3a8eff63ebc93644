package receipt

import (
	"time"

	"realestate-backend/internal/domain/apperr"
)

var (
	ErrNotFound  = apperr.NotFound("الوصول غير موجود")
	ErrDuplicate = apperr.Duplicate("يوجد وصل بنفس الرقم")
)

// Table: receipts
type Receipt struct {
	ID              uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	ReceiptNumber   int        `gorm:"column:receipt_number;not null;uniqueIndex:ux_receipts_receipt_number"`
	ReceiptDate     time.Time  `gorm:"column:receipt_date;type:date;not null"`
	BuyerName       string     `gorm:"column:buyer_name;size:255;not null"`
	MobileNumber    string     `gorm:"column:mobile_number;size:64;not null"`
	UnitNumber      int        `gorm:"column:unit_number;not null"`
	BlockNumber     int        `gorm:"column:block_number;not null"`
	UnitArea        float64    `gorm:"column:unit_area;not null"`
	AmountReceived  float64    `gorm:"column:amount_received;not null"`
	RemainingAmount float64    `gorm:"column:remaining_amount;not null"`
	DueDate         *time.Time `gorm:"column:due_date;type:date"`
	Notes           *string    `gorm:"column:notes;type:text"`
	HouseID         *uint64    `gorm:"column:house_id;index"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Receipt) TableName() string { return "receipts" }
