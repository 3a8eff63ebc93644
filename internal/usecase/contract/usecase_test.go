package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-backend/internal/adapter/repository/gormrepo"
	"realestate-backend/internal/domain/apperr"
	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/domain/house"
	"realestate-backend/internal/domain/payment"
	"realestate-backend/internal/domain/uow"
	"realestate-backend/internal/testutil/contractmock"
	"realestate-backend/internal/testutil/paymentmock"
	"realestate-backend/internal/testutil/testdb"
)

func newUsecase(t *testing.T) (*Usecase, uow.Repos) {
	t.Helper()
	gdb := testdb.Open(t)
	repos := gormrepo.NewRepos(gdb)
	return NewUsecase(repos.Contracts, repos.Payments, gormrepo.NewGormUoW(gdb)), repos
}

func seedHouse(t *testing.T, repos uow.Repos, number int) *house.House {
	t.Helper()
	h := &house.House{HouseNumber: number, BlockNumber: 1, Phase: 1, TotalPrice: 50_000, Status: house.StatusAvailable}
	require.NoError(t, repos.Houses.Create(context.Background(), h))
	return h
}

func input(number, houseNumber int) ContractInput {
	return ContractInput{
		SaleDate:       "2025-01-15",
		HouseNumber:    houseNumber,
		BlockNumber:    1,
		Area:           200,
		Floors:         2,
		BuyerName:      "Mariam",
		MobileNumber:   "07800000000",
		SaleType:       "cash",
		TotalAmount:    10_000,
		DownPayment:    2_000,
		LoanAmount:     8_000,
		AmountPaid:     2_000,
		ContractDate:   "2025-01-15",
		ContractNumber: number,
	}
}

func status(t *testing.T, repos uow.Repos, id uint64) house.Status {
	t.Helper()
	h, err := repos.Houses.GetByID(context.Background(), id)
	require.NoError(t, err)
	return h.Status
}

func TestCreate_LinksHouseByNumber(t *testing.T) {
	uc, repos := newUsecase(t)
	ctx := context.Background()
	h := seedHouse(t, repos, 21)

	dto, err := uc.Create(ctx, input(1, 21))
	require.NoError(t, err)
	require.NotNil(t, dto.HouseID)
	assert.Equal(t, h.ID, *dto.HouseID)
	assert.Equal(t, house.StatusSold, status(t, repos, h.ID))
	assert.Equal(t, contract.SignaturePending, dto.BuyerSignature)
	assert.Equal(t, "2025-01-15", dto.SaleDate)

	unlinked, err := uc.Create(ctx, input(2, 999))
	require.NoError(t, err)
	assert.Nil(t, unlinked.HouseID)

	_, err = uc.Create(ctx, input(1, 0))
	assert.True(t, errors.Is(err, apperr.ErrDuplicateKey))
	assert.Equal(t, "يوجد عقد بنفس الرقم", err.Error())
}

func TestUpdate_RelinkReleasesOldHouse(t *testing.T) {
	uc, repos := newUsecase(t)
	ctx := context.Background()
	oldHouse := seedHouse(t, repos, 1)
	newHouse := seedHouse(t, repos, 2)

	dto, err := uc.Create(ctx, input(1, 1))
	require.NoError(t, err)

	in := input(1, 2)
	in.BuyerName = "Mariam A."
	updated, err := uc.Update(ctx, dto.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated.HouseID)
	assert.Equal(t, newHouse.ID, *updated.HouseID)
	assert.Equal(t, "Mariam A.", updated.BuyerName)

	assert.Equal(t, house.StatusAvailable, status(t, repos, oldHouse.ID))
	assert.Equal(t, house.StatusSold, status(t, repos, newHouse.ID))
}

func TestCreateAndRelink_DeletedHouseStaysDeleted(t *testing.T) {
	uc, repos := newUsecase(t)
	ctx := context.Background()
	gone := seedHouse(t, repos, 5)
	other := seedHouse(t, repos, 6)
	require.NoError(t, repos.Houses.UpdateStatus(ctx, gone.ID, house.StatusDeleted))

	dto, err := uc.Create(ctx, input(1, 5))
	require.NoError(t, err)
	require.NotNil(t, dto.HouseID)
	assert.Equal(t, gone.ID, *dto.HouseID)
	assert.Equal(t, house.StatusDeleted, status(t, repos, gone.ID))

	require.NoError(t, repos.Houses.UpdateStatus(ctx, other.ID, house.StatusDeleted))

	// relink onto another deleted house
	updated, err := uc.Update(ctx, dto.ID, input(1, 6))
	require.NoError(t, err)
	require.NotNil(t, updated.HouseID)
	assert.Equal(t, other.ID, *updated.HouseID)
	assert.Equal(t, house.StatusDeleted, status(t, repos, other.ID))
	assert.Equal(t, house.StatusDeleted, status(t, repos, gone.ID))
}

func TestUpdate_OldHouseKeptSoldWhenStillReferenced(t *testing.T) {
	uc, repos := newUsecase(t)
	ctx := context.Background()
	shared := seedHouse(t, repos, 1)

	a, err := uc.Create(ctx, input(1, 1))
	require.NoError(t, err)
	_, err = uc.Create(ctx, input(2, 1))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, a.ID, input(1, 0))
	require.NoError(t, err)
	assert.Nil(t, updated.HouseID)
	assert.Equal(t, house.StatusSold, status(t, repos, shared.ID))
}

func TestUpdate_Errors(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, 77, input(1, 0))
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = uc.Create(ctx, input(1, 0))
	require.NoError(t, err)
	b, err := uc.Create(ctx, input(2, 0))
	require.NoError(t, err)
	_, err = uc.Update(ctx, b.ID, input(1, 0))
	assert.True(t, errors.Is(err, apperr.ErrDuplicateKey), "got %v", err)
}

func TestRemaining_FlooredAtZero(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	in := input(1, 0)
	in.TotalAmount, in.AmountPaid = 10_000, 12_000
	dto, err := uc.Create(ctx, in)
	require.NoError(t, err)

	rem, err := uc.Remaining(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rem.RemainingAmount)

	_, err = uc.Remaining(ctx, 123)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListAndSoldHouses(t *testing.T) {
	uc, repos := newUsecase(t)
	ctx := context.Background()
	h := seedHouse(t, repos, 5)

	first := input(1, 5)
	first.ContractDate = "2025-01-01"
	_, err := uc.Create(ctx, first)
	require.NoError(t, err)
	second := input(2, 5)
	second.SaleDate = "2025-03-01"
	second.BuyerName = "Later buyer"
	_, err = uc.Create(ctx, second)
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-03-01", list[0].SaleDate)

	sold, err := uc.SoldHouses(ctx)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, h.ID, sold[0].ID)
	assert.Equal(t, "Mariam", sold[0].BuyerName)
	assert.Equal(t, "2025-01-01", sold[0].ContractDate)
	assert.Equal(t, 1, sold[0].ContractNumber)
}

func TestOverdue(t *testing.T) {
	uc, repos := newUsecase(t)
	ctx := context.Background()
	uc.now = func() time.Time { return time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC) }

	// no payments: due 30 days after contract date (2025-05-01 -> 2025-05-31)
	noPay := input(1, 0)
	noPay.ContractDate = "2025-05-01"
	a, err := uc.Create(ctx, noPay)
	require.NoError(t, err)

	// latest payment 2025-06-10 -> due 2025-07-10, not overdue yet
	recent := input(2, 0)
	recent.ContractDate = "2025-01-01"
	b, err := uc.Create(ctx, recent)
	require.NoError(t, err)
	for _, d := range []time.Time{
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, repos.Payments.Create(ctx, &payment.Payment{ContractID: b.ID, PaymentDate: d, Amount: 1}))
	}

	// latest payment 2025-03-01 -> due 2025-03-31, 91 days late
	old := input(3, 0)
	c, err := uc.Create(ctx, old)
	require.NoError(t, err)
	require.NoError(t, repos.Payments.Create(ctx, &payment.Payment{ContractID: c.ID, PaymentDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: 1}))

	// fully paid contracts never show up
	paid := input(4, 0)
	paid.AmountPaid = paid.TotalAmount
	paid.ContractDate = "2024-01-01"
	_, err = uc.Create(ctx, paid)
	require.NoError(t, err)

	got, err := uc.Overdue(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, "2025-03-31", got[0].NextDueDate)
	assert.Equal(t, 91, got[0].DaysOverdue)
	assert.Equal(t, 8_000.0, got[0].RemainingAmount)

	assert.Equal(t, a.ID, got[1].ID)
	assert.Equal(t, "2025-05-31", got[1].NextDueDate)
	assert.Equal(t, 30, got[1].DaysOverdue)
}

func TestOverdue_RepoErrors(t *testing.T) {
	boom := errors.New("boom")
	uc := NewUsecase(
		&contractmock.Repo{ListFn: func(context.Context) ([]contract.Contract, error) { return []contract.Contract{}, nil }},
		&paymentmock.Repo{ListAllFn: func(context.Context) ([]payment.Payment, error) { return nil, boom }},
		nil,
	)
	_, err := uc.Overdue(context.Background())
	assert.ErrorIs(t, err, boom)
}
