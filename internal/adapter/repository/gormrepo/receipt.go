package gormrepo

import (
	"context"

	receiptDomain "realestate-backend/internal/domain/receipt"

	"gorm.io/gorm"
)

type ReceiptRepository struct{ db *gorm.DB }

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository { return &ReceiptRepository{db: db} }

func (r *ReceiptRepository) Create(ctx context.Context, rc *receiptDomain.Receipt) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id uint64) (*receiptDomain.Receipt, error) {
	var out receiptDomain.Receipt
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ReceiptRepository) GetByReceiptNumber(ctx context.Context, number int) (*receiptDomain.Receipt, error) {
	var out receiptDomain.Receipt
	res := r.db.WithContext(ctx).Where("receipt_number = ?", number).First(&out)
	return &out, res.Error
}

func (r *ReceiptRepository) List(ctx context.Context) ([]receiptDomain.Receipt, error) {
	out := []receiptDomain.Receipt{}
	err := r.db.WithContext(ctx).
		Order("receipt_date DESC, receipt_number DESC").
		Find(&out).Error
	return out, err
}

func (r *ReceiptRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&receiptDomain.Receipt{}, id).Error
}
