package gormrepo

import (
	"context"
	"time"

	contractDomain "realestate-backend/internal/domain/contract"
)

type soldHouseRow struct {
	HouseID        uint64
	HouseNumber    int
	BlockNumber    int
	Phase          int
	BuildingArea   float64
	TotalPrice     float64
	LoanAmount     float64
	BuyerName      string
	ContractDate   time.Time
	ContractNumber int
}

// SoldHouses joins contracts to their houses. A house referenced by several
// contracts is reported once, with the lowest-id contract's buyer details.
func (r *ContractRepository) SoldHouses(ctx context.Context) ([]contractDomain.SoldHouse, error) {
	var rows []soldHouseRow
	err := r.db.WithContext(ctx).Table("contracts").
		Select(`houses.id AS house_id, houses.house_number, houses.block_number, houses.phase,
			houses.building_area, houses.total_price, houses.loan_amount,
			contracts.buyer_name, contracts.contract_date, contracts.contract_number`).
		Joins("JOIN houses ON houses.id = contracts.house_id").
		Where("contracts.house_id IS NOT NULL").
		Order("contracts.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]struct{}, len(rows))
	out := make([]contractDomain.SoldHouse, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.HouseID]; ok {
			continue
		}
		seen[row.HouseID] = struct{}{}
		out = append(out, contractDomain.SoldHouse(row))
	}
	return out, nil
}

type statRow struct {
	SaleDate    time.Time
	DownPayment float64
	TotalAmount float64
	AmountPaid  float64
	HouseRowID  *uint64
	Phase       *int
	Outlook     *float64
}

// StatRows returns every contract with its house phase/outlook in one query.
func (r *ContractRepository) StatRows(ctx context.Context) ([]contractDomain.StatRow, error) {
	var rows []statRow
	err := r.db.WithContext(ctx).Table("contracts").
		Select(`contracts.sale_date, contracts.down_payment, contracts.total_amount, contracts.amount_paid,
			houses.id AS house_row_id, houses.phase, houses.outlook`).
		Joins("LEFT JOIN houses ON houses.id = contracts.house_id").
		Order("contracts.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]contractDomain.StatRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, contractDomain.StatRow{
			SaleDate:    row.SaleDate,
			DownPayment: row.DownPayment,
			TotalAmount: row.TotalAmount,
			AmountPaid:  row.AmountPaid,
			HouseFound:  row.HouseRowID != nil,
			Phase:       row.Phase,
			Outlook:     row.Outlook,
		})
	}
	return out, nil
}
