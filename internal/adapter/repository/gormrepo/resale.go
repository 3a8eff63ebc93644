package gormrepo

import (
	"context"

	resaleDomain "realestate-backend/internal/domain/resale"

	"gorm.io/gorm"
)

type ResaleRepository struct{ db *gorm.DB }

func NewResaleRepository(db *gorm.DB) *ResaleRepository { return &ResaleRepository{db: db} }

func (r *ResaleRepository) Create(ctx context.Context, rs *resaleDomain.Resale) error {
	return r.db.WithContext(ctx).Create(rs).Error
}

func (r *ResaleRepository) GetByID(ctx context.Context, id uint64) (*resaleDomain.Resale, error) {
	var out resaleDomain.Resale
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ResaleRepository) List(ctx context.Context) ([]resaleDomain.Resale, error) {
	out := []resaleDomain.Resale{}
	err := r.db.WithContext(ctx).Order("contact_date DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ResaleRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&resaleDomain.Resale{}, id).Error
}
