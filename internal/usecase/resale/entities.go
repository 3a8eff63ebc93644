package resale

import "time"

type ResaleInput struct {
	HouseID          uint64   `json:"house_id" validate:"required"`
	Source           string   `json:"source" validate:"required"`
	MobileNumber     string   `json:"mobile_number" validate:"required"`
	ContactDate      string   `json:"contact_date" validate:"required,datetime=2006-01-02"`
	RemainingAmount  *float64 `json:"remaining_amount"`
	Floors           *int     `json:"floors" validate:"omitempty,gte=0"`
	BuildingMaterial *string  `json:"building_material"`
	AdditionalSpecs  *string  `json:"additional_specs"`
}

// ResaleDTO is the resale row plus display fields resolved from its house,
// or from a contract on that house once the house is gone.
type ResaleDTO struct {
	ID               uint64    `json:"id"`
	HouseID          uint64    `json:"house_id"`
	Source           string    `json:"source"`
	MobileNumber     string    `json:"mobile_number"`
	ContactDate      string    `json:"contact_date"`
	RemainingAmount  *float64  `json:"remaining_amount"`
	Floors           *int      `json:"floors"`
	BuildingMaterial *string   `json:"building_material"`
	AdditionalSpecs  *string   `json:"additional_specs"`
	CreatedAt        time.Time `json:"created_at"`

	HouseNumber  *int     `json:"house_number"`
	BlockNumber  *int     `json:"block_number"`
	Phase        *int     `json:"phase"`
	TotalArea    *float64 `json:"total_area"`
	BuildingArea *float64 `json:"building_area"`
	TotalPrice   *float64 `json:"total_price"`
	LoanAmount   *float64 `json:"loan_amount"`
	Outlook      *float64 `json:"outlook"`
}
