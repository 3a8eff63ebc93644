package resale

import (
	"context"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/resale"
	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/usecase/shared"
)

type Usecase struct {
	repo      resale.Repository
	houses    house.Repository
	contracts contract.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(r resale.Repository, houses house.Repository, contracts contract.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, houses: houses, contracts: contracts, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in ResaleInput) (*ResaleDTO, error) {
	contactDate, err := shared.ParseDate("contact_date", in.ContactDate)
	if err != nil {
		return nil, err
	}
	rs := &resale.Resale{
		HouseID:          in.HouseID,
		Source:           in.Source,
		MobileNumber:     in.MobileNumber,
		ContactDate:      contactDate,
		RemainingAmount:  in.RemainingAmount,
		Floors:           in.Floors,
		BuildingMaterial: in.BuildingMaterial,
		AdditionalSpecs:  in.AdditionalSpecs,
	}

	var h *house.House
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		h, err = r.Houses.GetByID(ctx, in.HouseID)
		if err != nil {
			return shared.Translate(err, house.ErrNotFound, nil)
		}
		return r.Resales.Create(ctx, rs)
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(rs)
	fromHouse(dto, h)
	return dto, nil
}

// List orders by contact_date DESC. Display fields come from the house
// unless it is missing or deleted, then from the first contract on that
// house, else stay null.
func (u *Usecase) List(ctx context.Context) ([]ResaleDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	houses := map[uint64]*house.House{}
	contracts := map[uint64]*contract.Contract{}

	out := make([]ResaleDTO, 0, len(rows))
	for i := range rows {
		dto := toDTO(&rows[i])
		hid := rows[i].HouseID

		h, seen := houses[hid]
		if !seen {
			if h, err = u.liveHouse(ctx, hid); err != nil {
				return nil, err
			}
			houses[hid] = h
		}
		if h != nil {
			fromHouse(dto, h)
			out = append(out, *dto)
			continue
		}

		c, seen := contracts[hid]
		if !seen {
			if c, err = u.firstContract(ctx, hid); err != nil {
				return nil, err
			}
			contracts[hid] = c
		}
		if c != nil {
			fromContract(dto, c)
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rs, err := r.Resales.GetByID(ctx, id)
		if err != nil {
			return shared.Translate(err, resale.ErrNotFound, nil)
		}
		return r.Resales.Delete(ctx, rs.ID)
	})
}

// liveHouse returns nil for a missing or deleted house.
func (u *Usecase) liveHouse(ctx context.Context, id uint64) (*house.House, error) {
	h, err := u.houses.GetByID(ctx, id)
	if found, err := shared.Exists(err); err != nil || !found {
		return nil, err
	}
	if h.Status == house.StatusDeleted {
		return nil, nil
	}
	return h, nil
}

func (u *Usecase) firstContract(ctx context.Context, houseID uint64) (*contract.Contract, error) {
	c, err := u.contracts.FirstByHouseID(ctx, houseID)
	if found, err := shared.Exists(err); err != nil || !found {
		return nil, err
	}
	return c, nil
}

func fromHouse(dto *ResaleDTO, h *house.House) {
	dto.HouseNumber = &h.HouseNumber
	dto.BlockNumber = &h.BlockNumber
	dto.Phase = &h.Phase
	dto.TotalArea = &h.TotalArea
	dto.BuildingArea = &h.BuildingArea
	dto.TotalPrice = &h.TotalPrice
	dto.LoanAmount = &h.LoanAmount
	dto.Outlook = h.Outlook
}

// fromContract maps the overlapping columns; phase, outlook and total_area
// have no contract counterpart.
func fromContract(dto *ResaleDTO, c *contract.Contract) {
	dto.HouseNumber = &c.HouseNumber
	dto.BlockNumber = &c.BlockNumber
	dto.BuildingArea = &c.Area
	dto.TotalPrice = &c.TotalAmount
	dto.LoanAmount = &c.LoanAmount
}

func toDTO(rs *resale.Resale) *ResaleDTO {
	return &ResaleDTO{
		ID:               rs.ID,
		HouseID:          rs.HouseID,
		Source:           rs.Source,
		MobileNumber:     rs.MobileNumber,
		ContactDate:      shared.FormatDate(rs.ContactDate),
		RemainingAmount:  rs.RemainingAmount,
		Floors:           rs.Floors,
		BuildingMaterial: rs.BuildingMaterial,
		AdditionalSpecs:  rs.AdditionalSpecs,
		CreatedAt:        rs.CreatedAt,
	}
}
