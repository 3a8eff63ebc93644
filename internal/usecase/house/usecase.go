package house

import (
	"context"
	"fmt"
	"math/rand/v2"

	"realestate-backend/internal/domain/apperr"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/usecase/shared"
	"realestate-backend/pkg/money"
)

// ErrInvalidStatus rejects status values outside available/sold/deleted.
var ErrInvalidStatus = apperr.Invalid("حالة المنزل غير صالحة")

type Usecase struct {
	repo house.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r house.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in HouseInput) (*HouseDTO, error) {
	h := &house.House{Status: house.StatusAvailable}
	apply(h, in)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Houses.GetByHouseNumber(ctx, in.HouseNumber)
		found, err := shared.Exists(err)
		if err != nil {
			return err
		}
		if found {
			return house.ErrDuplicate
		}
		return shared.Translate(r.Houses.Create(ctx, h), nil, house.ErrDuplicate)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(h), nil
}

// Update replaces every writable column. Status is left alone.
func (u *Usecase) Update(ctx context.Context, id uint64, in HouseInput) (*HouseDTO, error) {
	var out *house.House
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		h, err := r.Houses.GetByID(ctx, id)
		if err != nil {
			return shared.Translate(err, house.ErrNotFound, nil)
		}
		apply(h, in)
		if err := r.Houses.Save(ctx, h); err != nil {
			return shared.Translate(err, nil, house.ErrDuplicate)
		}
		out = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(out), nil
}

// SetStatus overwrites the status with any of the known values; the lifecycle
// order is not enforced.
func (u *Usecase) SetStatus(ctx context.Context, id uint64, status string) error {
	s := house.Status(status)
	if !s.Valid() {
		return ErrInvalidStatus
	}
	return shared.Translate(u.repo.UpdateStatus(ctx, id, s), house.ErrNotFound, nil)
}

func (u *Usecase) SoftDelete(ctx context.Context, id uint64) error {
	return shared.Translate(u.repo.UpdateStatus(ctx, id, house.StatusDeleted), house.ErrNotFound, nil)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*HouseDTO, error) {
	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, shared.Translate(err, house.ErrNotFound, nil)
	}
	return toDTO(h), nil
}

// List orders by house_number. A zero or nil phase means "all phases".
func (u *Usecase) List(ctx context.Context, phase *int, includeSold bool) ([]HouseDTO, error) {
	f := house.ListFilter{IncludeSold: includeSold}
	if phase != nil && *phase != 0 {
		f.Phase = phase
	}
	hs, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]HouseDTO, 0, len(hs))
	for i := range hs {
		out = append(out, *toDTO(&hs[i]))
	}
	return out, nil
}

// Seed bulk-creates count available houses numbered after the current
// maximum, with randomized figures.
func (u *Usecase) Seed(ctx context.Context, count int, rnd *rand.Rand) ([]HouseDTO, error) {
	if count <= 0 {
		return nil, apperr.Invalid("count must be positive")
	}
	created := make([]HouseDTO, 0, count)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		start, err := r.Houses.MaxHouseNumber(ctx)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			h := randomHouse(start+i+1, rnd)
			if err := r.Houses.Create(ctx, h); err != nil {
				return fmt.Errorf("seed house %d: %w", h.HouseNumber, shared.Translate(err, nil, house.ErrDuplicate))
			}
			created = append(created, *toDTO(h))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func randomHouse(number int, rnd *rand.Rand) *house.House {
	totalArea := float64(150 + rnd.IntN(251))
	buildingArea := float64(int(totalArea) * (50 + rnd.IntN(41)) / 100)
	// prices in whole millions
	price := float64(80+rnd.IntN(171)) * 1_000_000
	down := float64(int(price)/5/1_000_000) * 1_000_000
	floors := 1 + rnd.IntN(2)
	return &house.House{
		HouseNumber:  number,
		BlockNumber:  (number-1)/20 + 1,
		TotalArea:    totalArea,
		BuildingArea: buildingArea,
		TotalPrice:   price,
		DownPayment:  down,
		LoanAmount:   money.SubFloor(price, down),
		Phase:        1 + rnd.IntN(5),
		Floors:       &floors,
		Status:       house.StatusAvailable,
	}
}

func apply(h *house.House, in HouseInput) {
	h.HouseNumber = in.HouseNumber
	h.BlockNumber = in.BlockNumber
	h.TotalArea = in.TotalArea
	h.BuildingArea = in.BuildingArea
	h.TotalPrice = in.TotalPrice
	h.DownPayment = in.DownPayment
	h.LoanAmount = in.LoanAmount
	h.Phase = in.Phase
	h.Outlook = in.Outlook
	h.AdditionalSpecs = in.AdditionalSpecs
	h.Floors = in.Floors
	h.BuildingMaterial = in.BuildingMaterial
}

func toDTO(h *house.House) *HouseDTO {
	return &HouseDTO{
		ID:               h.ID,
		HouseNumber:      h.HouseNumber,
		BlockNumber:      h.BlockNumber,
		TotalArea:        h.TotalArea,
		BuildingArea:     h.BuildingArea,
		TotalPrice:       h.TotalPrice,
		DownPayment:      h.DownPayment,
		LoanAmount:       h.LoanAmount,
		Phase:            h.Phase,
		Outlook:          h.Outlook,
		AdditionalSpecs:  h.AdditionalSpecs,
		Floors:           h.Floors,
		BuildingMaterial: h.BuildingMaterial,
		Status:           string(h.Status),
		CreatedAt:        h.CreatedAt,
	}
}
