package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// CourtRepository 场地数据访问接口
type CourtRepository interface {
	Create(ctx context.Context, court *model.Court) error
	GetByID(ctx context.Context, id string) (*model.Court, error)
	// List futsalID 为空时返回全部场地
	List(ctx context.Context, futsalID string) ([]model.Court, error)
	Update(ctx context.Context, court *model.Court) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type courtRepo struct {
	db *gorm.DB
}

// NewCourtRepo 创建 CourtRepository 实例
func NewCourtRepo(db *gorm.DB) CourtRepository {
	return &courtRepo{db: db}
}

func (r *courtRepo) Create(ctx context.Context, court *model.Court) error {
	return r.db.WithContext(ctx).Create(court).Error
}

func (r *courtRepo) GetByID(ctx context.Context, id string) (*model.Court, error) {
	var court model.Court
	err := r.db.WithContext(ctx).
		Where("court_id = ?", id).
		First(&court).Error
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *courtRepo) List(ctx context.Context, futsalID string) ([]model.Court, error) {
	var courts []model.Court
	db := r.db.WithContext(ctx)
	if futsalID != "" {
		db = db.Where("futsal_id = ?", futsalID)
	}
	err := db.Order("title ASC").Find(&courts).Error
	return courts, err
}

func (r *courtRepo) Update(ctx context.Context, court *model.Court) error {
	return r.db.WithContext(ctx).Save(court).Error
}

func (r *courtRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Court{}).
		Where("court_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": time.Now(),
		}).Error
}
