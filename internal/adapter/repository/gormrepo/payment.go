package gormrepo

import (
	"context"

	paymentDomain "realestate-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByContractID(ctx context.Context, contractID uint64) ([]paymentDomain.Payment, error) {
	out := []paymentDomain.Payment{}
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("payment_date DESC, created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]paymentDomain.Payment, error) {
	out := []paymentDomain.Payment{}
	err := r.db.WithContext(ctx).
		Order("payment_date DESC, created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&paymentDomain.Payment{}, id).Error
}

func (r *PaymentRepository) DeleteByContractID(ctx context.Context, contractID uint64) error {
	return r.db.WithContext(ctx).Where("contract_id = ?", contractID).Delete(&paymentDomain.Payment{}).Error
}
