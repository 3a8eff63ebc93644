package gormrepo

import (
	"context"

	contractDomain "realestate-backend/internal/domain/contract"

	"gorm.io/gorm"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) Save(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint64) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByContractNumber(ctx context.Context, number int) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("contract_number = ?", number).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) List(ctx context.Context) ([]contractDomain.Contract, error) {
	out := []contractDomain.Contract{}
	err := r.db.WithContext(ctx).Order("sale_date DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ContractRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&contractDomain.Contract{}, id).Error
}

func (r *ContractRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&contractDomain.Contract{}).Count(&n).Error
	return n, err
}

func (r *ContractRepository) MaxContractNumber(ctx context.Context) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Model(&contractDomain.Contract{}).
		Select("COALESCE(MAX(contract_number), 0)").
		Scan(&n).Error
	return n, err
}

func (r *ContractRepository) CountByHouseID(ctx context.Context, houseID, excludeID uint64) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&contractDomain.Contract{}).Where("house_id = ?", houseID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *ContractRepository) FirstByHouseID(ctx context.Context, houseID uint64) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("house_id = ?", houseID).Order("id ASC").First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByReceiptID(ctx context.Context, receiptID uint64) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("receipt_id = ?", receiptID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) FindByBuyer(ctx context.Context, houseID uint64, buyerName, mobile string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).
		Where("house_id = ? AND buyer_name = ? AND mobile_number = ?", houseID, buyerName, mobile).
		Where("receipt_id IS NULL").
		Order("id ASC").
		First(&out)
	return &out, res.Error
}
