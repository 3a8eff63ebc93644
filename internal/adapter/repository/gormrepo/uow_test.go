package gormrepo

import (
	"context"
	"errors"
	"testing"

	houseDomain "realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(gdb)
	houses := NewHouseRepository(gdb)
	contracts := NewContractRepository(gdb)

	var houseID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		h := makeHouse(1, 1, houseDomain.StatusAvailable)
		if err := r.Houses.Create(ctx, h); err != nil {
			return err
		}
		houseID = h.ID
		if err := r.Houses.UpdateStatus(ctx, h.ID, houseDomain.StatusSold); err != nil {
			return err
		}
		return r.Contracts.Create(ctx, makeContract(1, &h.ID, day(2025, 1, 1)))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	h, err := houses.GetByID(ctx, houseID)
	if err != nil || h.Status != houseDomain.StatusSold {
		t.Fatalf("house after commit = %+v, %v", h, err)
	}
	if n, _ := contracts.CountByHouseID(ctx, houseID, 0); n != 1 {
		t.Fatalf("contracts after commit = %d", n)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(gdb)
	houses := NewHouseRepository(gdb)
	contracts := NewContractRepository(gdb)

	sentinel := errors.New("boom")
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		h := makeHouse(2, 1, houseDomain.StatusAvailable)
		if err := r.Houses.Create(ctx, h); err != nil {
			return err
		}
		if err := r.Contracts.Create(ctx, makeContract(1, &h.ID, day(2025, 1, 1))); err != nil {
			return err
		}
		return sentinel // force rollback
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	if _, err := houses.GetByHouseNumber(ctx, 2); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected house absent after rollback, got %v", err)
	}
	if n, _ := contracts.Count(ctx); n != 0 {
		t.Fatalf("expected no contracts after rollback, got %d", n)
	}
}

func TestGormUoW_WithinTx_DuplicateAbortsEverything(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(gdb)
	contracts := NewContractRepository(gdb)

	if err := contracts.Create(ctx, makeContract(1, nil, day(2025, 1, 1))); err != nil {
		t.Fatal(err)
	}

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Houses.Create(ctx, makeHouse(9, 1, houseDomain.StatusSold)); err != nil {
			return err
		}
		return r.Contracts.Create(ctx, makeContract(1, nil, day(2025, 2, 1)))
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
	if _, err := NewHouseRepository(gdb).GetByHouseNumber(ctx, 9); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("house must be rolled back, got %v", err)
	}
}
