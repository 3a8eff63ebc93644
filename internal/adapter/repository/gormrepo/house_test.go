package gormrepo

import (
	"context"
	"errors"
	"testing"

	houseDomain "realestate-backend/internal/domain/house"

	"gorm.io/gorm"
)

func makeHouse(number, phase int, status houseDomain.Status) *houseDomain.House {
	return &houseDomain.House{
		HouseNumber:  number,
		BlockNumber:  1,
		TotalArea:    200,
		BuildingArea: 150,
		TotalPrice:   100_000,
		LoanAmount:   60_000,
		Phase:        phase,
		Status:       status,
	}
}

func TestHouse_CreateAndGet(t *testing.T) {
	repo := NewHouseRepository(openTestDB(t))
	ctx := context.Background()

	h := makeHouse(101, 1, houseDomain.StatusAvailable)
	if err := repo.Create(ctx, h); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if h.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, h.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.HouseNumber != 101 || got.Status != houseDomain.StatusAvailable {
		t.Fatalf("unexpected house: %+v", got)
	}

	byNumber, err := repo.GetByHouseNumber(ctx, 101)
	if err != nil || byNumber.ID != h.ID {
		t.Fatalf("GetByHouseNumber = %+v, %v", byNumber, err)
	}
}

func TestHouse_DuplicateNumberIsTranslated(t *testing.T) {
	repo := NewHouseRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, makeHouse(7, 1, houseDomain.StatusAvailable)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeHouse(7, 2, houseDomain.StatusAvailable))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestHouse_NotFound(t *testing.T) {
	repo := NewHouseRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, 999, houseDomain.StatusSold); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateStatus on missing row: expected ErrRecordNotFound, got %v", err)
	}
}

func TestHouse_ListFilters(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewHouseRepository(gdb)
	ctx := context.Background()

	seed := []*houseDomain.House{
		makeHouse(3, 1, houseDomain.StatusSold),
		makeHouse(1, 1, houseDomain.StatusAvailable),
		makeHouse(2, 2, houseDomain.StatusAvailable),
		makeHouse(4, 2, houseDomain.StatusDeleted),
	}
	for _, h := range seed {
		if err := repo.Create(ctx, h); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := repo.List(ctx, houseDomain.ListFilter{IncludeSold: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 || all[0].HouseNumber != 1 || all[3].HouseNumber != 4 {
		t.Fatalf("expected 4 houses ordered by number, got %+v", all)
	}

	avail, _ := repo.List(ctx, houseDomain.ListFilter{IncludeSold: false})
	if len(avail) != 2 {
		t.Fatalf("available houses = %d, want 2", len(avail))
	}

	phase2, _ := repo.List(ctx, houseDomain.ListFilter{IncludeSold: true, Phase: ptr(2)})
	if len(phase2) != 2 {
		t.Fatalf("phase 2 houses = %d, want 2", len(phase2))
	}

	phase2Avail, _ := repo.List(ctx, houseDomain.ListFilter{IncludeSold: false, Phase: ptr(2)})
	if len(phase2Avail) != 1 || phase2Avail[0].HouseNumber != 2 {
		t.Fatalf("phase 2 available = %+v", phase2Avail)
	}
}

func TestHouse_UpdateStatusAndSave(t *testing.T) {
	repo := NewHouseRepository(openTestDB(t))
	ctx := context.Background()

	h := makeHouse(10, 1, houseDomain.StatusAvailable)
	if err := repo.Create(ctx, h); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.UpdateStatus(ctx, h.ID, houseDomain.StatusDeleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, _ := repo.GetByID(ctx, h.ID)
	if got.Status != houseDomain.StatusDeleted {
		t.Fatalf("status = %s, want deleted", got.Status)
	}

	got.Outlook = ptr(2500.0)
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, _ := repo.GetByID(ctx, h.ID)
	if again.Outlook == nil || *again.Outlook != 2500 {
		t.Fatalf("outlook not saved: %+v", again.Outlook)
	}
}

func TestHouse_MaxHouseNumber(t *testing.T) {
	repo := NewHouseRepository(openTestDB(t))
	ctx := context.Background()

	n, err := repo.MaxHouseNumber(ctx)
	if err != nil || n != 0 {
		t.Fatalf("empty MaxHouseNumber = %d, %v", n, err)
	}
	for _, num := range []int{5, 42, 17} {
		if err := repo.Create(ctx, makeHouse(num, 1, houseDomain.StatusAvailable)); err != nil {
			t.Fatal(err)
		}
	}
	if n, _ = repo.MaxHouseNumber(ctx); n != 42 {
		t.Fatalf("MaxHouseNumber = %d, want 42", n)
	}
}
