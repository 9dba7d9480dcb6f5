package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// BannerRepository 横幅数据访问接口
type BannerRepository interface {
	Create(ctx context.Context, banner *model.Banner) error
	GetByID(ctx context.Context, id string) (*model.Banner, error)
	List(ctx context.Context, offset, limit int) ([]model.Banner, int64, error)
	ListActive(ctx context.Context) ([]model.Banner, error)
	Update(ctx context.Context, banner *model.Banner) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type bannerRepo struct {
	db *gorm.DB
}

// NewBannerRepo 创建 BannerRepository 实例
func NewBannerRepo(db *gorm.DB) BannerRepository {
	return &bannerRepo{db: db}
}

func (r *bannerRepo) Create(ctx context.Context, banner *model.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepo) GetByID(ctx context.Context, id string) (*model.Banner, error) {
	var banner model.Banner
	err := r.db.WithContext(ctx).
		Where("banner_id = ?", id).
		First(&banner).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepo) List(ctx context.Context, offset, limit int) ([]model.Banner, int64, error) {
	var banners []model.Banner
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Banner{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&banners).Error; err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

func (r *bannerRepo) ListActive(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) Update(ctx context.Context, banner *model.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *bannerRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Banner{}).
		Where("banner_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": time.Now(),
		}).Error
}
