package house

import "time"

// HouseInput carries every writable column; Update replaces all of them.
type HouseInput struct {
	HouseNumber      int      `json:"house_number" validate:"gt=0"`
	BlockNumber      int      `json:"block_number" validate:"gte=0"`
	TotalArea        float64  `json:"total_area" validate:"gte=0"`
	BuildingArea     float64  `json:"building_area" validate:"gte=0"`
	TotalPrice       float64  `json:"total_price" validate:"gte=0"`
	DownPayment      float64  `json:"down_payment" validate:"gte=0"`
	LoanAmount       float64  `json:"loan_amount" validate:"gte=0"`
	Phase            int      `json:"phase" validate:"gte=1"`
	Outlook          *float64 `json:"outlook"`
	AdditionalSpecs  *string  `json:"additional_specs"`
	Floors           *int     `json:"floors" validate:"omitempty,gte=0"`
	BuildingMaterial *string  `json:"building_material"`
}

type HouseDTO struct {
	ID               uint64    `json:"id"`
	HouseNumber      int       `json:"house_number"`
	BlockNumber      int       `json:"block_number"`
	TotalArea        float64   `json:"total_area"`
	BuildingArea     float64   `json:"building_area"`
	TotalPrice       float64   `json:"total_price"`
	DownPayment      float64   `json:"down_payment"`
	LoanAmount       float64   `json:"loan_amount"`
	Phase            int       `json:"phase"`
	Outlook          *float64  `json:"outlook"`
	AdditionalSpecs  *string   `json:"additional_specs"`
	Floors           *int      `json:"floors"`
	BuildingMaterial *string   `json:"building_material"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
