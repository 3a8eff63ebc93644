package receipt

import "time"

type ReceiptInput struct {
	ReceiptNumber   int     `json:"receipt_number" validate:"gt=0"`
	ReceiptDate     string  `json:"receipt_date" validate:"required,datetime=2006-01-02"`
	BuyerName       string  `json:"buyer_name" validate:"required"`
	MobileNumber    string  `json:"mobile_number" validate:"required"`
	UnitNumber      int     `json:"unit_number" validate:"gte=0"`
	BlockNumber     int     `json:"block_number" validate:"gte=0"`
	UnitArea        float64 `json:"unit_area" validate:"gte=0"`
	AmountReceived  float64 `json:"amount_received" validate:"gte=0"`
	RemainingAmount float64 `json:"remaining_amount" validate:"gte=0"`
	DueDate         *string `json:"due_date" validate:"omitempty,date"`
	Notes           *string `json:"notes"`
	HouseID         *uint64 `json:"house_id"`
}

type ReceiptDTO struct {
	ID              uint64    `json:"id"`
	ReceiptNumber   int       `json:"receipt_number"`
	ReceiptDate     string    `json:"receipt_date"`
	BuyerName       string    `json:"buyer_name"`
	MobileNumber    string    `json:"mobile_number"`
	UnitNumber      int       `json:"unit_number"`
	BlockNumber     int       `json:"block_number"`
	UnitArea        float64   `json:"unit_area"`
	AmountReceived  float64   `json:"amount_received"`
	RemainingAmount float64   `json:"remaining_amount"`
	DueDate         *string   `json:"due_date"`
	Notes           *string   `json:"notes"`
	HouseID         *uint64   `json:"house_id"`
	CreatedAt       time.Time `json:"created_at"`
}
