// Package statistics aggregates dashboard figures from one joined query over
// contracts and their houses. Nothing is cached; every call reads fresh rows.
package statistics

import (
	"context"
	"sort"
	"time"

	"realestate-backend/internal/domain/contract"
	"realestate-backend/internal/usecase/shared"
	"realestate-backend/pkg/money"
)

// salesWindowMonths bounds MonthlySalesData.
const salesWindowMonths = 6

type MonthlySales struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type StatisticsDTO struct {
	TotalSoldHouses   int            `json:"total_sold_houses"`
	MonthlySoldHouses int            `json:"monthly_sold_houses"`
	TotalRevenue      float64        `json:"total_revenue"`
	MonthlyRevenue    float64        `json:"monthly_revenue"`
	TotalDebts        float64        `json:"total_debts"`
	PhaseSales        map[int]int    `json:"phase_sales"`
	MonthlySalesData  []MonthlySales `json:"monthly_sales_data"`
}

type Usecase struct {
	contracts contract.Repository
	now       func() time.Time
}

func NewUsecase(contracts contract.Repository) *Usecase {
	return &Usecase{contracts: contracts, now: time.Now}
}

// Get computes:
//   - revenue as down_payment plus the linked house's outlook when positive
//   - debts as the floored remaining balance of every contract
//   - phase_sales only over contracts whose house row still exists
//   - monthly_sales_data over the trailing six months, ascending
func (u *Usecase) Get(ctx context.Context) (*StatisticsDTO, error) {
	rows, err := u.contracts.StatRows(ctx)
	if err != nil {
		return nil, err
	}

	today := shared.Today(u.now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	windowStart := today.AddDate(0, -salesWindowMonths, 0)

	out := &StatisticsDTO{PhaseSales: map[int]int{}, MonthlySalesData: []MonthlySales{}}
	var total, monthly, debts money.Sum
	perMonth := map[string]int{}

	for _, r := range rows {
		out.TotalSoldHouses++

		revenue := r.DownPayment
		if r.HouseFound && r.Outlook != nil && *r.Outlook > 0 {
			revenue = money.Add(revenue, *r.Outlook)
		}
		total.Add(revenue)

		sale := shared.Today(r.SaleDate)
		if !sale.Before(monthStart) && sale.Before(nextMonth) {
			out.MonthlySoldHouses++
			monthly.Add(revenue)
		}
		if !sale.Before(windowStart) {
			perMonth[sale.Format("2006-01")]++
		}

		debts.Add(money.SubFloor(r.TotalAmount, r.AmountPaid))

		if r.HouseFound && r.Phase != nil {
			out.PhaseSales[*r.Phase]++
		}
	}

	out.TotalRevenue = total.Float64()
	out.MonthlyRevenue = monthly.Float64()
	out.TotalDebts = debts.Float64()

	months := make([]string, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		out.MonthlySalesData = append(out.MonthlySalesData, MonthlySales{Month: m, Count: perMonth[m]})
	}
	return out, nil
}
