package payment

import (
	"context"
	"fmt"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/payment"
	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/usecase/shared"
	"realestate-backend/pkg/money"
)

type Usecase struct {
	repo payment.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r payment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Create records the payment and adds its amount to the contract's amount_paid.
func (u *Usecase) Create(ctx context.Context, in PaymentInput) (*PaymentDTO, error) {
	paymentDate, err := shared.ParseDate("payment_date", in.PaymentDate)
	if err != nil {
		return nil, err
	}
	nextDue, err := shared.ParseOptionalDate("next_payment_due_date", in.NextPaymentDueDate)
	if err != nil {
		return nil, err
	}
	p := &payment.Payment{
		ContractID:         in.ContractID,
		PaymentDate:        paymentDate,
		Amount:             in.Amount,
		PaymentType:        in.PaymentType,
		Notes:              in.Notes,
		NextPaymentDueDate: nextDue,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByID(ctx, in.ContractID)
		if err != nil {
			return shared.Translate(err, contract.ErrNotFound, nil)
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		c.AmountPaid = money.Add(c.AmountPaid, p.Amount)
		if err := r.Contracts.Save(ctx, c); err != nil {
			return fmt.Errorf("update amount_paid of contract %d: %w", c.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// Delete subtracts the payment from its contract's amount_paid, floored at
// zero, then removes it. A payment whose contract is gone is still removed.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByID(ctx, id)
		if err != nil {
			return shared.Translate(err, payment.ErrNotFound, nil)
		}
		c, err := r.Contracts.GetByID(ctx, p.ContractID)
		found, err := shared.Exists(err)
		if err != nil {
			return err
		}
		if found {
			c.AmountPaid = money.SubFloor(c.AmountPaid, p.Amount)
			if err := r.Contracts.Save(ctx, c); err != nil {
				return fmt.Errorf("update amount_paid of contract %d: %w", c.ID, err)
			}
		}
		return r.Payments.Delete(ctx, p.ID)
	})
}

// ListByContract orders latest first. An unknown contract yields an empty list.
func (u *Usecase) ListByContract(ctx context.Context, contractID uint64) ([]PaymentDTO, error) {
	rows, err := u.repo.ListByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(p *payment.Payment) *PaymentDTO {
	return &PaymentDTO{
		ID:                 p.ID,
		ContractID:         p.ContractID,
		PaymentDate:        shared.FormatDate(p.PaymentDate),
		Amount:             p.Amount,
		PaymentType:        p.PaymentType,
		Notes:              p.Notes,
		NextPaymentDueDate: shared.FormatOptionalDate(p.NextPaymentDueDate),
		CreatedAt:          p.CreatedAt,
	}
}
