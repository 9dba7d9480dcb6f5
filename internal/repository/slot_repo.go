package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// SlotRepository 场次数据访问接口
type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	GetByID(ctx context.Context, id string) (*model.Slot, error)
	ListByCourt(ctx context.Context, courtID string, includeInactive bool) ([]model.Slot, error)
	Update(ctx context.Context, slot *model.Slot) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type slotRepo struct {
	db *gorm.DB
}

// NewSlotRepo 创建 SlotRepository 实例
func NewSlotRepo(db *gorm.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepo) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	var slot model.Slot
	err := r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) ListByCourt(ctx context.Context, courtID string, includeInactive bool) ([]model.Slot, error) {
	var slots []model.Slot
	db := r.db.WithContext(ctx).Where("court_id = ?", courtID)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("start_time ASC").Find(&slots).Error
	return slots, err
}

// Update 只写入可编辑字段，start_time / end_time 不随更新变化
func (r *slotRepo) Update(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("slot_id = ?", slot.SlotID).
		Updates(map[string]interface{}{
			"title":        slot.Title,
			"price":        slot.Price,
			"credit_point": slot.CreditPoint,
			"is_active":    slot.IsActive,
			"updated_by":   slot.UpdatedBy,
			"updated_at":   time.Now(),
		}).Error
}

func (r *slotRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("slot_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": time.Now(),
		}).Error
}
