package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// ClosingDayRepository 闭馆日数据访问接口
type ClosingDayRepository interface {
	Create(ctx context.Context, day *model.ClosingDay) error
	GetByID(ctx context.Context, id string) (*model.ClosingDay, error)
	GetByCourtAndDate(ctx context.Context, courtID string, date datatypes.Date) (*model.ClosingDay, error)
	ListByCourt(ctx context.Context, courtID string) ([]model.ClosingDay, error)
	Delete(ctx context.Context, id string) error
}

type closingDayRepo struct {
	db *gorm.DB
}

// NewClosingDayRepo 创建 ClosingDayRepository 实例
func NewClosingDayRepo(db *gorm.DB) ClosingDayRepository {
	return &closingDayRepo{db: db}
}

func (r *closingDayRepo) Create(ctx context.Context, day *model.ClosingDay) error {
	return r.db.WithContext(ctx).Create(day).Error
}

func (r *closingDayRepo) GetByID(ctx context.Context, id string) (*model.ClosingDay, error) {
	var day model.ClosingDay
	err := r.db.WithContext(ctx).
		Where("closing_day_id = ?", id).
		First(&day).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *closingDayRepo) GetByCourtAndDate(ctx context.Context, courtID string, date datatypes.Date) (*model.ClosingDay, error) {
	var day model.ClosingDay
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		First(&day).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *closingDayRepo) ListByCourt(ctx context.Context, courtID string) ([]model.ClosingDay, error) {
	var days []model.ClosingDay
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

// Delete 闭馆日为物理删除，删除后同一天可重新设置
func (r *closingDayRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("closing_day_id = ?", id).
		Delete(&model.ClosingDay{}).Error
}
