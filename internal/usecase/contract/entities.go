package contract

import "time"

// ContractInput carries every writable column; Update replaces all of them.
// house_id is derived from house_number and never read from the body.
type ContractInput struct {
	SaleDate           string  `json:"sale_date" validate:"required,datetime=2006-01-02"`
	HouseNumber        int     `json:"house_number" validate:"gte=0"`
	BlockNumber        int     `json:"block_number" validate:"gte=0"`
	Area               float64 `json:"area" validate:"gte=0"`
	Floors             int     `json:"floors" validate:"gte=0"`
	BuyerName          string  `json:"buyer_name" validate:"required"`
	MobileNumber       string  `json:"mobile_number" validate:"required"`
	SaleType           string  `json:"sale_type" validate:"required"`
	TotalAmount        float64 `json:"total_amount" validate:"gte=0"`
	DownPayment        float64 `json:"down_payment" validate:"gte=0"`
	LoanAmount         float64 `json:"loan_amount" validate:"gte=0"`
	AmountPaid         float64 `json:"amount_paid" validate:"gte=0"`
	ContractDate       string  `json:"contract_date" validate:"required,datetime=2006-01-02"`
	ContractNumber     int     `json:"contract_number" validate:"gt=0"`
	BuyerSignature     string  `json:"buyer_signature"`
	InvestorSignature  string  `json:"investor_signature"`
	ContractReceipt    string  `json:"contract_receipt"`
	NextPaymentDueDate *string `json:"next_payment_due_date" validate:"omitempty,date"`
}

type ContractDTO struct {
	ID                 uint64    `json:"id"`
	SaleDate           string    `json:"sale_date"`
	HouseNumber        int       `json:"house_number"`
	BlockNumber        int       `json:"block_number"`
	Area               float64   `json:"area"`
	Floors             int       `json:"floors"`
	BuyerName          string    `json:"buyer_name"`
	MobileNumber       string    `json:"mobile_number"`
	SaleType           string    `json:"sale_type"`
	TotalAmount        float64   `json:"total_amount"`
	DownPayment        float64   `json:"down_payment"`
	LoanAmount         float64   `json:"loan_amount"`
	AmountPaid         float64   `json:"amount_paid"`
	ContractDate       string    `json:"contract_date"`
	ContractNumber     int       `json:"contract_number"`
	BuyerSignature     string    `json:"buyer_signature"`
	InvestorSignature  string    `json:"investor_signature"`
	ContractReceipt    string    `json:"contract_receipt"`
	NextPaymentDueDate *string   `json:"next_payment_due_date"`
	HouseID            *uint64   `json:"house_id"`
	ReceiptID          *uint64   `json:"receipt_id"`
	CreatedAt          time.Time `json:"created_at"`
}

type RemainingDTO struct {
	RemainingAmount float64 `json:"remaining_amount"`
}

type SoldHouseDTO struct {
	ID             uint64  `json:"id"`
	HouseNumber    int     `json:"house_number"`
	BlockNumber    int     `json:"block_number"`
	Phase          int     `json:"phase"`
	BuildingArea   float64 `json:"building_area"`
	TotalPrice     float64 `json:"total_price"`
	LoanAmount     float64 `json:"loan_amount"`
	BuyerName      string  `json:"buyer_name"`
	ContractDate   string  `json:"contract_date"`
	ContractNumber int     `json:"contract_number"`
}

// OverdueDTO is a contract with an unpaid balance whose next installment
// is past due.
type OverdueDTO struct {
	ContractDTO
	RemainingAmount float64 `json:"remaining_amount"`
	NextDueDate     string  `json:"next_due_date"`
	DaysOverdue     int     `json:"days_overdue"`
}
