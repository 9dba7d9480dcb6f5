package repository

import (
	"context"

	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// ContactRepository 联系我们留言数据访问接口
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, offset, limit int) ([]model.ContactMessage, int64, error)
}

type contactRepo struct {
	db *gorm.DB
}

// NewContactRepo 创建 ContactRepository 实例
func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactRepo) List(ctx context.Context, offset, limit int) ([]model.ContactMessage, int64, error) {
	var msgs []model.ContactMessage
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ContactMessage{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}
