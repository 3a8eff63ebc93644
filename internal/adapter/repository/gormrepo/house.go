package gormrepo

import (
	"context"

	houseDomain "realestate-backend/internal/domain/house"

	"gorm.io/gorm"
)

type HouseRepository struct{ db *gorm.DB }

func NewHouseRepository(db *gorm.DB) *HouseRepository { return &HouseRepository{db: db} }

func (r *HouseRepository) Create(ctx context.Context, h *houseDomain.House) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HouseRepository) Save(ctx context.Context, h *houseDomain.House) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HouseRepository) GetByID(ctx context.Context, id uint64) (*houseDomain.House, error) {
	var out houseDomain.House
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *HouseRepository) GetByHouseNumber(ctx context.Context, number int) (*houseDomain.House, error) {
	var out houseDomain.House
	res := r.db.WithContext(ctx).Where("house_number = ?", number).First(&out)
	return &out, res.Error
}

func (r *HouseRepository) List(ctx context.Context, f houseDomain.ListFilter) ([]houseDomain.House, error) {
	q := r.db.WithContext(ctx).Model(&houseDomain.House{})
	if !f.IncludeSold {
		q = q.Where("status = ?", houseDomain.StatusAvailable)
	}
	if f.Phase != nil {
		q = q.Where("phase = ?", *f.Phase)
	}
	out := []houseDomain.House{}
	err := q.Order("house_number ASC").Find(&out).Error
	return out, err
}

func (r *HouseRepository) UpdateStatus(ctx context.Context, id uint64, s houseDomain.Status) error {
	res := r.db.WithContext(ctx).Model(&houseDomain.House{}).Where("id = ?", id).Update("status", s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// mysql reports 0 affected rows when the value is unchanged
	var n int64
	if err := r.db.WithContext(ctx).Model(&houseDomain.House{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HouseRepository) MaxHouseNumber(ctx context.Context) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Model(&houseDomain.House{}).
		Select("COALESCE(MAX(house_number), 0)").
		Scan(&n).Error
	return n, err
}
