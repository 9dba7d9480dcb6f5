package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// FutsalFilter 球馆列表过滤条件
type FutsalFilter struct {
	Keyword         string
	IncludeInactive bool
}

// FutsalRepository 球馆数据访问接口
type FutsalRepository interface {
	Create(ctx context.Context, futsal *model.Futsal) error
	GetByID(ctx context.Context, id string) (*model.Futsal, error)
	GetBySlug(ctx context.Context, slug string) (*model.Futsal, error)
	// SlugTaken 检查 slug 是否已被占用（含已软删除记录，唯一索引同样覆盖它们）
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context, filter FutsalFilter, offset, limit int) ([]model.Futsal, int64, error)
	Update(ctx context.Context, futsal *model.Futsal) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type futsalRepo struct {
	db *gorm.DB
}

// NewFutsalRepo 创建 FutsalRepository 实例
func NewFutsalRepo(db *gorm.DB) FutsalRepository {
	return &futsalRepo{db: db}
}

func (r *futsalRepo) Create(ctx context.Context, futsal *model.Futsal) error {
	return r.db.WithContext(ctx).Create(futsal).Error
}

func (r *futsalRepo) GetByID(ctx context.Context, id string) (*model.Futsal, error) {
	var futsal model.Futsal
	err := r.db.WithContext(ctx).
		Where("futsal_id = ?", id).
		First(&futsal).Error
	if err != nil {
		return nil, err
	}
	return &futsal, nil
}

func (r *futsalRepo) GetBySlug(ctx context.Context, slug string) (*model.Futsal, error) {
	var futsal model.Futsal
	err := r.db.WithContext(ctx).
		Preload("Courts", func(db *gorm.DB) *gorm.DB {
			return db.Order("title ASC")
		}).
		Where("slug = ?", slug).
		First(&futsal).Error
	if err != nil {
		return nil, err
	}
	return &futsal, nil
}

func (r *futsalRepo) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).Unscoped().
		Model(&model.Futsal{}).
		Where("slug = ?", slug)
	if excludeID != "" {
		db = db.Where("futsal_id <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *futsalRepo) List(ctx context.Context, filter FutsalFilter, offset, limit int) ([]model.Futsal, int64, error) {
	var futsals []model.Futsal
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Futsal{})
	if !filter.IncludeInactive {
		db = db.Where("is_active = ?", true)
	}
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&futsals).Error; err != nil {
		return nil, 0, err
	}

	return futsals, total, nil
}

func (r *futsalRepo) Update(ctx context.Context, futsal *model.Futsal) error {
	return r.db.WithContext(ctx).Save(futsal).Error
}

func (r *futsalRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Futsal{}).
		Where("futsal_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": time.Now(),
		}).Error
}
