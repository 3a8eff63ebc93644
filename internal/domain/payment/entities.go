package payment

import (
	"time"

	"realestate-backend/internal/domain/apperr"
)

var ErrNotFound = apperr.NotFound("الدفعة غير موجودة")

// Table: payments
type Payment struct {
	ID                 uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	ContractID         uint64     `gorm:"column:contract_id;not null;index"`
	PaymentDate        time.Time  `gorm:"column:payment_date;type:date;not null"`
	Amount             float64    `gorm:"column:amount;not null"`
	PaymentType        *string    `gorm:"column:payment_type;size:64"`
	Notes              *string    `gorm:"column:notes;type:text"`
	NextPaymentDueDate *time.Time `gorm:"column:next_payment_due_date;type:date"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }
