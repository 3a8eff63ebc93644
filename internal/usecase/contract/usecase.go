package contract

import (
	"context"
	"sort"
	"time"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/payment"
	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/usecase/shared"
)

// InstallmentPeriod is the gap after which an unpaid balance is overdue,
// counted from the latest payment or else the contract date.
const InstallmentPeriod = 30 * 24 * time.Hour

type Usecase struct {
	contracts contract.Repository
	payments  payment.Repository
	uow       uow.UnitOfWork
	now       func() time.Time
}

func NewUsecase(contracts contract.Repository, payments payment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{contracts: contracts, payments: payments, uow: tx, now: time.Now}
}

// Create links the contract to the house carrying its house_number, if any,
// and marks that house sold.
func (u *Usecase) Create(ctx context.Context, in ContractInput) (*ContractDTO, error) {
	c := &contract.Contract{}
	if err := apply(c, in); err != nil {
		return nil, err
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Contracts.GetByContractNumber(ctx, c.ContractNumber)
		found, err := shared.Exists(err)
		if err != nil {
			return err
		}
		if found {
			return contract.ErrDuplicate
		}

		h, err := houseByNumber(ctx, r.Houses, c.HouseNumber)
		if err != nil {
			return err
		}
		if h != nil {
			c.HouseID = &h.ID
			if err := shared.MarkSold(ctx, r.Houses, h); err != nil {
				return err
			}
		}
		return shared.Translate(r.Contracts.Create(ctx, c), nil, contract.ErrDuplicate)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Update replaces every writable column and relinks the house by
// house_number. A previously linked house no other contract references goes
// back to available.
func (u *Usecase) Update(ctx context.Context, id uint64, in ContractInput) (*ContractDTO, error) {
	var out *contract.Contract
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByID(ctx, id)
		if err != nil {
			return shared.Translate(err, contract.ErrNotFound, nil)
		}
		oldHouseID := c.HouseID

		h, err := houseByNumber(ctx, r.Houses, in.HouseNumber)
		if err != nil {
			return err
		}
		var newHouseID *uint64
		if h != nil {
			newHouseID = &h.ID
		}

		if oldHouseID != nil && (newHouseID == nil || *oldHouseID != *newHouseID) {
			if err := shared.ReleaseHouse(ctx, r, *oldHouseID, c.ID); err != nil {
				return err
			}
		}
		if h != nil {
			if err := shared.MarkSold(ctx, r.Houses, h); err != nil {
				return err
			}
		}

		if err := apply(c, in); err != nil {
			return err
		}
		c.HouseID = newHouseID
		if err := r.Contracts.Save(ctx, c); err != nil {
			return shared.Translate(err, nil, contract.ErrDuplicate)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(out), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ContractDTO, error) {
	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, shared.Translate(err, contract.ErrNotFound, nil)
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ContractDTO, error) {
	rows, err := u.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ContractDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Remaining(ctx context.Context, id uint64) (*RemainingDTO, error) {
	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, shared.Translate(err, contract.ErrNotFound, nil)
	}
	return &RemainingDTO{RemainingAmount: c.Remaining()}, nil
}

func (u *Usecase) SoldHouses(ctx context.Context) ([]SoldHouseDTO, error) {
	rows, err := u.contracts.SoldHouses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SoldHouseDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, SoldHouseDTO{
			ID:             s.HouseID,
			HouseNumber:    s.HouseNumber,
			BlockNumber:    s.BlockNumber,
			Phase:          s.Phase,
			BuildingArea:   s.BuildingArea,
			TotalPrice:     s.TotalPrice,
			LoanAmount:     s.LoanAmount,
			BuyerName:      s.BuyerName,
			ContractDate:   shared.FormatDate(s.ContractDate),
			ContractNumber: s.ContractNumber,
		})
	}
	return out, nil
}

// Overdue lists contracts with a positive balance whose next installment
// date lies before today, most overdue first.
func (u *Usecase) Overdue(ctx context.Context) ([]OverdueDTO, error) {
	contracts, err := u.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	// payments arrive latest first
	lastPaid := make(map[uint64]time.Time, len(payments))
	for _, p := range payments {
		if _, ok := lastPaid[p.ContractID]; !ok {
			lastPaid[p.ContractID] = p.PaymentDate
		}
	}

	today := shared.Today(u.now())
	out := []OverdueDTO{}
	for i := range contracts {
		c := &contracts[i]
		remaining := c.Remaining()
		if remaining <= 0 {
			continue
		}
		base, ok := lastPaid[c.ID]
		if !ok {
			base = c.ContractDate
		}
		due := shared.Today(base).Add(InstallmentPeriod)
		if !due.Before(today) {
			continue
		}
		out = append(out, OverdueDTO{
			ContractDTO:     *toDTO(c),
			RemainingAmount: remaining,
			NextDueDate:     shared.FormatDate(due),
			DaysOverdue:     int(today.Sub(due) / (24 * time.Hour)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysOverdue > out[j].DaysOverdue })
	return out, nil
}

// houseByNumber returns nil when number is zero or matches no house.
func houseByNumber(ctx context.Context, houses house.Repository, number int) (*house.House, error) {
	if number == 0 {
		return nil, nil
	}
	h, err := houses.GetByHouseNumber(ctx, number)
	if found, err := shared.Exists(err); err != nil || !found {
		return nil, err
	}
	return h, nil
}

func apply(c *contract.Contract, in ContractInput) error {
	saleDate, err := shared.ParseDate("sale_date", in.SaleDate)
	if err != nil {
		return err
	}
	contractDate, err := shared.ParseDate("contract_date", in.ContractDate)
	if err != nil {
		return err
	}
	nextDue, err := shared.ParseOptionalDate("next_payment_due_date", in.NextPaymentDueDate)
	if err != nil {
		return err
	}

	c.SaleDate = saleDate
	c.HouseNumber = in.HouseNumber
	c.BlockNumber = in.BlockNumber
	c.Area = in.Area
	c.Floors = in.Floors
	c.BuyerName = in.BuyerName
	c.MobileNumber = in.MobileNumber
	c.SaleType = in.SaleType
	c.TotalAmount = in.TotalAmount
	c.DownPayment = in.DownPayment
	c.LoanAmount = in.LoanAmount
	c.AmountPaid = in.AmountPaid
	c.ContractDate = contractDate
	c.ContractNumber = in.ContractNumber
	c.BuyerSignature = orPending(in.BuyerSignature)
	c.InvestorSignature = orPending(in.InvestorSignature)
	c.ContractReceipt = orPending(in.ContractReceipt)
	c.NextPaymentDueDate = nextDue
	return nil
}

func orPending(s string) string {
	if s == "" {
		return contract.SignaturePending
	}
	return s
}

func toDTO(c *contract.Contract) *ContractDTO {
	return &ContractDTO{
		ID:                 c.ID,
		SaleDate:           shared.FormatDate(c.SaleDate),
		HouseNumber:        c.HouseNumber,
		BlockNumber:        c.BlockNumber,
		Area:               c.Area,
		Floors:             c.Floors,
		BuyerName:          c.BuyerName,
		MobileNumber:       c.MobileNumber,
		SaleType:           c.SaleType,
		TotalAmount:        c.TotalAmount,
		DownPayment:        c.DownPayment,
		LoanAmount:         c.LoanAmount,
		AmountPaid:         c.AmountPaid,
		ContractDate:       shared.FormatDate(c.ContractDate),
		ContractNumber:     c.ContractNumber,
		BuyerSignature:     c.BuyerSignature,
		InvestorSignature:  c.InvestorSignature,
		ContractReceipt:    c.ContractReceipt,
		NextPaymentDueDate: shared.FormatOptionalDate(c.NextPaymentDueDate),
		HouseID:            c.HouseID,
		ReceiptID:          c.ReceiptID,
		CreatedAt:          c.CreatedAt,
	}
}
