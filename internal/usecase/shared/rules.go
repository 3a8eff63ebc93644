package shared

import (
	"context"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/uow"
)

// NextContractNumber returns count+1, or max+1 when count+1 is already taken
// (possible after deletions). The unique index stays the final guard.
func NextContractNumber(ctx context.Context, contracts contract.Repository) (int, error) {
	n, err := contracts.Count(ctx)
	if err != nil {
		return 0, err
	}
	next := int(n) + 1
	_, err = contracts.GetByContractNumber(ctx, next)
	taken, err := Exists(err)
	if err != nil {
		return 0, err
	}
	if !taken {
		return next, nil
	}
	highest, err := contracts.MaxContractNumber(ctx)
	if err != nil {
		return 0, err
	}
	return highest + 1, nil
}

// ReleaseHouse reverts houseID to available when no contract other than
// excludeID references it. Deleted and missing houses are left alone.
func ReleaseHouse(ctx context.Context, r uow.Repos, houseID, excludeID uint64) error {
	n, err := r.Contracts.CountByHouseID(ctx, houseID, excludeID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	h, err := r.Houses.GetByID(ctx, houseID)
	if found, err := Exists(err); err != nil || !found {
		return err
	}
	if h.Status == house.StatusDeleted || h.Status == house.StatusAvailable {
		return nil
	}
	return r.Houses.UpdateStatus(ctx, houseID, house.StatusAvailable)
}

// MarkSold flips h to sold. A deleted house keeps its status; the sale is
// still recorded against it.
func MarkSold(ctx context.Context, houses house.Repository, h *house.House) error {
	if h.Status == house.StatusDeleted || h.Status == house.StatusSold {
		return nil
	}
	return houses.UpdateStatus(ctx, h.ID, house.StatusSold)
}
