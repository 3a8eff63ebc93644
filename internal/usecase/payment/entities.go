package payment

import "time"

type PaymentInput struct {
	ContractID         uint64  `json:"contract_id" validate:"required"`
	PaymentDate        string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Amount             float64 `json:"amount" validate:"gt=0"`
	PaymentType        *string `json:"payment_type"`
	Notes              *string `json:"notes"`
	NextPaymentDueDate *string `json:"next_payment_due_date" validate:"omitempty,date"`
}

type PaymentDTO struct {
	ID                 uint64    `json:"id"`
	ContractID         uint64    `json:"contract_id"`
	PaymentDate        string    `json:"payment_date"`
	Amount             float64   `json:"amount"`
	PaymentType        *string   `json:"payment_type"`
	Notes              *string   `json:"notes"`
	NextPaymentDueDate *string   `json:"next_payment_due_date"`
	CreatedAt          time.Time `json:"created_at"`
}
