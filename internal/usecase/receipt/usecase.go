package receipt

import (
	"context"
	"errors"
	"fmt"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/receipt"
	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/usecase/shared"
	"realestate-backend/pkg/money"

	"gorm.io/gorm"
)

type Usecase struct {
	repo receipt.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r receipt.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Create stores the receipt. When house_id resolves, the house is marked
// sold and a first-sale contract is generated from the receipt; any failure
// rolls back all three writes.
func (u *Usecase) Create(ctx context.Context, in ReceiptInput) (*ReceiptDTO, error) {
	receiptDate, err := shared.ParseDate("receipt_date", in.ReceiptDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := shared.ParseOptionalDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	rc := &receipt.Receipt{
		ReceiptNumber:   in.ReceiptNumber,
		ReceiptDate:     receiptDate,
		BuyerName:       in.BuyerName,
		MobileNumber:    in.MobileNumber,
		UnitNumber:      in.UnitNumber,
		BlockNumber:     in.BlockNumber,
		UnitArea:        in.UnitArea,
		AmountReceived:  in.AmountReceived,
		RemainingAmount: in.RemainingAmount,
		DueDate:         dueDate,
		Notes:           in.Notes,
	}
	if in.HouseID != nil && *in.HouseID != 0 {
		rc.HouseID = in.HouseID
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Receipts.GetByReceiptNumber(ctx, rc.ReceiptNumber)
		found, err := shared.Exists(err)
		if err != nil {
			return err
		}
		if found {
			return receipt.ErrDuplicate
		}
		if err := r.Receipts.Create(ctx, rc); err != nil {
			return shared.Translate(err, nil, receipt.ErrDuplicate)
		}
		if rc.HouseID == nil {
			return nil
		}

		h, err := r.Houses.GetByID(ctx, *rc.HouseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := shared.MarkSold(ctx, r.Houses, h); err != nil {
			return fmt.Errorf("mark house %d sold: %w", h.ID, err)
		}

		number, err := shared.NextContractNumber(ctx, r.Contracts)
		if err != nil {
			return err
		}
		if err := r.Contracts.Create(ctx, firstSaleContract(rc, h, number)); err != nil {
			return shared.Translate(err, nil, contract.ErrDuplicate)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(rc), nil
}

// Delete removes the receipt together with the contract generated from it
// (and that contract's payments), then frees the house once nothing
// references it.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rc, err := r.Receipts.GetByID(ctx, id)
		if err != nil {
			return shared.Translate(err, receipt.ErrNotFound, nil)
		}

		var houseIDs []uint64
		if rc.HouseID != nil {
			houseIDs = append(houseIDs, *rc.HouseID)
		}

		c, err := linkedContract(ctx, r.Contracts, rc)
		if err != nil {
			return err
		}
		if c != nil {
			if err := r.Payments.DeleteByContractID(ctx, c.ID); err != nil {
				return err
			}
			if err := r.Contracts.Delete(ctx, c.ID); err != nil {
				return err
			}
			if c.HouseID != nil && (rc.HouseID == nil || *c.HouseID != *rc.HouseID) {
				houseIDs = append(houseIDs, *c.HouseID)
			}
		}

		if err := r.Receipts.Delete(ctx, rc.ID); err != nil {
			return err
		}
		for _, hid := range houseIDs {
			if err := shared.ReleaseHouse(ctx, r, hid, 0); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ReceiptDTO, error) {
	rc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, shared.Translate(err, receipt.ErrNotFound, nil)
	}
	return toDTO(rc), nil
}

func (u *Usecase) List(ctx context.Context) ([]ReceiptDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ReceiptDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// linkedContract finds the contract generated from rc: by its stored
// back-reference first, then by house, buyer name and mobile for rows that
// predate the back-reference. A nil contract means none matched.
func linkedContract(ctx context.Context, contracts contract.Repository, rc *receipt.Receipt) (*contract.Contract, error) {
	c, err := contracts.GetByReceiptID(ctx, rc.ID)
	if found, err := shared.Exists(err); err != nil {
		return nil, err
	} else if found {
		return c, nil
	}
	if rc.HouseID == nil {
		return nil, nil
	}
	c, err = contracts.FindByBuyer(ctx, *rc.HouseID, rc.BuyerName, rc.MobileNumber)
	if found, err := shared.Exists(err); err != nil || !found {
		return nil, err
	}
	return c, nil
}

func firstSaleContract(rc *receipt.Receipt, h *house.House, number int) *contract.Contract {
	total := h.TotalPrice
	if total == 0 {
		total = money.Add(rc.AmountReceived, rc.RemainingAmount)
	}
	loan := h.LoanAmount
	if loan == 0 {
		loan = rc.RemainingAmount
	}
	receiptID := rc.ID
	houseID := h.ID
	return &contract.Contract{
		SaleDate:          rc.ReceiptDate,
		HouseNumber:       rc.UnitNumber,
		BlockNumber:       rc.BlockNumber,
		Area:              rc.UnitArea,
		Floors:            1,
		BuyerName:         rc.BuyerName,
		MobileNumber:      rc.MobileNumber,
		SaleType:          contract.SaleTypeFirstSale,
		TotalAmount:       total,
		DownPayment:       rc.AmountReceived,
		LoanAmount:        loan,
		AmountPaid:        rc.AmountReceived,
		ContractDate:      rc.ReceiptDate,
		ContractNumber:    number,
		BuyerSignature:    contract.SignaturePending,
		InvestorSignature: contract.SignaturePending,
		ContractReceipt:   contract.SignaturePending,
		HouseID:           &houseID,
		ReceiptID:         &receiptID,
	}
}

func toDTO(rc *receipt.Receipt) *ReceiptDTO {
	return &ReceiptDTO{
		ID:              rc.ID,
		ReceiptNumber:   rc.ReceiptNumber,
		ReceiptDate:     shared.FormatDate(rc.ReceiptDate),
		BuyerName:       rc.BuyerName,
		MobileNumber:    rc.MobileNumber,
		UnitNumber:      rc.UnitNumber,
		BlockNumber:     rc.BlockNumber,
		UnitArea:        rc.UnitArea,
		AmountReceived:  rc.AmountReceived,
		RemainingAmount: rc.RemainingAmount,
		DueDate:         shared.FormatOptionalDate(rc.DueDate),
		Notes:           rc.Notes,
		HouseID:         rc.HouseID,
		CreatedAt:       rc.CreatedAt,
	}
}
