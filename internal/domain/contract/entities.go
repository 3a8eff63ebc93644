package contract

import (
	"time"

	"realestate-backend/internal/domain/apperr"
	"realestate-backend/pkg/money"
)

const (
	// SaleTypeFirstSale tags contracts generated from a receipt ("first sale").
	SaleTypeFirstSale = "بيع أول مرة"
	// SignaturePending is the default for the three signature/receipt columns ("pending").
	SignaturePending = "بالانتظار"
)

var (
	ErrNotFound  = apperr.NotFound("العقد غير موجود")
	ErrDuplicate = apperr.Duplicate("يوجد عقد بنفس الرقم")
)

// Table: contracts
type Contract struct {
	ID                 uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	SaleDate           time.Time  `gorm:"column:sale_date;type:date;not null;index"`
	HouseNumber        int        `gorm:"column:house_number;not null"`
	BlockNumber        int        `gorm:"column:block_number;not null"`
	Area               float64    `gorm:"column:area;not null"`
	Floors             int        `gorm:"column:floors;not null"`
	BuyerName          string     `gorm:"column:buyer_name;size:255;not null"`
	MobileNumber       string     `gorm:"column:mobile_number;size:64;not null"`
	SaleType           string     `gorm:"column:sale_type;size:64;not null"`
	TotalAmount        float64    `gorm:"column:total_amount;not null"`
	DownPayment        float64    `gorm:"column:down_payment;not null"`
	LoanAmount         float64    `gorm:"column:loan_amount;not null"`
	AmountPaid         float64    `gorm:"column:amount_paid;not null"`
	ContractDate       time.Time  `gorm:"column:contract_date;type:date;not null"`
	ContractNumber     int        `gorm:"column:contract_number;not null;uniqueIndex:ux_contracts_contract_number"`
	BuyerSignature     string     `gorm:"column:buyer_signature;size:64;default:بالانتظار"`
	InvestorSignature  string     `gorm:"column:investor_signature;size:64;default:بالانتظار"`
	ContractReceipt    string     `gorm:"column:contract_receipt;size:64;default:بالانتظار"`
	NextPaymentDueDate *time.Time `gorm:"column:next_payment_due_date;type:date"`
	HouseID            *uint64    `gorm:"column:house_id;index"`
	// ReceiptID is set on contracts generated from a receipt.
	ReceiptID *uint64   `gorm:"column:receipt_id;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Contract) TableName() string { return "contracts" }

// Remaining is total_amount - amount_paid, floored at zero.
func (c *Contract) Remaining() float64 {
	return money.SubFloor(c.TotalAmount, c.AmountPaid)
}

// SoldHouse is one row of the sold-houses report.
type SoldHouse struct {
	HouseID        uint64
	HouseNumber    int
	BlockNumber    int
	Phase          int
	BuildingArea   float64
	TotalPrice     float64
	LoanAmount     float64
	BuyerName      string
	ContractDate   time.Time
	ContractNumber int
}

// StatRow is one contract joined with its house (if any) for statistics.
type StatRow struct {
	SaleDate    time.Time
	DownPayment float64
	TotalAmount float64
	AmountPaid  float64
	HouseFound  bool
	Phase       *int
	Outlook     *float64
}
