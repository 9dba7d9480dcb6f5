package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"futsal-booking/backend/internal/model"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// activeBookingStatuses 仍占用场次的预订状态
var activeBookingStatuses = []string{model.BookingStatusBooked, model.BookingStatusRescheduled}

// BookingFilter 管理员预订查询条件，零值字段不参与过滤
type BookingFilter struct {
	UserID  string
	CourtID string
	Date    *datatypes.Date
	From    *datatypes.Date
	To      *datatypes.Date
	Status  string
}

// BookingRepository 预订数据访问接口
// 涉及积分的写操作与积分流水在同一事务中完成
type BookingRepository interface {
	// CreateWithLedger 创建预订并追加积分流水
	// 场次已被占用返回 ErrSlotAlreadyBooked，兑换积分不足返回 ErrInsufficientPoints
	CreateWithLedger(ctx context.Context, booking *model.Booking, entry *model.CreditPointTransaction) error
	// CancelWithLedger 取消预订并追加补偿流水，entry 可为 nil
	CancelWithLedger(ctx context.Context, bookingID string, entry *model.CreditPointTransaction) (*model.Booking, error)
	// Reschedule 将预订改到新场次/日期，积分不变
	Reschedule(ctx context.Context, bookingID string, slot *model.Slot, date datatypes.Date) (*model.Booking, error)
	// CompletePast 将日期早于 before 的有效预订标记为已完成
	CompletePast(ctx context.Context, before datatypes.Date) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filter BookingFilter, offset, limit int) ([]model.Booking, int64, error)
	ListForExport(ctx context.Context, filter BookingFilter) ([]model.Booking, error)
	// BookedSlotIDs 某场地某日已被占用的场次 ID
	BookedSlotIDs(ctx context.Context, courtID string, date datatypes.Date) ([]string, error)
}

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo 创建 BookingRepository 实例
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

// ────────────────────── 写操作 ──────────────────────

func (r *bookingRepo) CreateWithLedger(ctx context.Context, booking *model.Booking, entry *model.CreditPointTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSlotFree(tx, booking.SlotID, booking.BookingDate, ""); err != nil {
			return err
		}

		if entry != nil && entry.Type == model.CreditTypeRedeemed {
			if err := lockUser(tx, booking.UserID); err != nil {
				return err
			}
			totals, err := sumPoints(tx, booking.UserID)
			if err != nil {
				return err
			}
			if totals.Balance() < entry.Amount {
				return pkgerrors.ErrInsufficientPoints
			}
		}

		if err := tx.Create(booking).Error; err != nil {
			if pkgerrors.IsUniqueViolation(err) {
				return pkgerrors.ErrSlotAlreadyBooked
			}
			return err
		}

		if entry != nil {
			entry.BookingID = &booking.BookingID
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *bookingRepo) CancelWithLedger(ctx context.Context, bookingID string, entry *model.CreditPointTransaction) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).
			Take(&booking).Error; err != nil {
			return err
		}
		if !booking.IsActive() {
			return pkgerrors.ErrBookingNotActive
		}

		now := time.Now()
		booking.Status = model.BookingStatusCancelled
		booking.CancelledAt = &now
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":       booking.Status,
			"cancelled_at": now,
			"updated_at":   now,
		}).Error; err != nil {
			return err
		}

		if entry == nil {
			return nil
		}
		entry.BookingID = &booking.BookingID

		// 回收已获得积分时不让余额变为负数
		if entry.Type == model.CreditTypeRedeemed {
			totals, err := sumPoints(tx, booking.UserID)
			if err != nil {
				return err
			}
			if bal := totals.Balance(); bal < entry.Amount {
				entry.Amount = bal
			}
			if entry.Amount <= 0 {
				return nil
			}
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) Reschedule(ctx context.Context, bookingID string, slot *model.Slot, date datatypes.Date) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).
			Take(&booking).Error; err != nil {
			return err
		}
		if !booking.IsActive() {
			return pkgerrors.ErrBookingNotActive
		}
		if err := ensureSlotFree(tx, slot.SlotID, date, booking.BookingID); err != nil {
			return err
		}

		booking.SlotID = slot.SlotID
		booking.CourtID = slot.CourtID
		booking.BookingDate = date
		booking.Status = model.BookingStatusRescheduled
		err := tx.Model(&booking).Updates(map[string]interface{}{
			"slot_id":      booking.SlotID,
			"court_id":     booking.CourtID,
			"booking_date": booking.BookingDate,
			"status":       booking.Status,
			"updated_at":   time.Now(),
		}).Error
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.ErrSlotAlreadyBooked
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) CompletePast(ctx context.Context, before datatypes.Date) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status IN ? AND booking_date < ?", activeBookingStatuses, before).
			Find(&bookings).Error; err != nil {
			return err
		}
		if len(bookings) == 0 {
			return nil
		}

		ids := make([]string, len(bookings))
		for i := range bookings {
			ids[i] = bookings[i].BookingID
			bookings[i].Status = model.BookingStatusCompleted
		}
		return tx.Model(&model.Booking{}).
			Where("booking_id IN ?", ids).
			Updates(map[string]interface{}{
				"status":     model.BookingStatusCompleted,
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ────────────────────── 查询 ──────────────────────

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Slot", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context, filter BookingFilter, offset, limit int) ([]model.Booking, int64, error) {
	var bookings []model.Booking
	var total int64

	db := applyBookingFilter(r.db.WithContext(ctx).Model(&model.Booking{}), filter)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.
		Preload("Slot", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Offset(offset).Limit(limit).
		Order("booking_date DESC, created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepo) ListForExport(ctx context.Context, filter BookingFilter) ([]model.Booking, error) {
	var bookings []model.Booking
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	err := applyBookingFilter(r.db.WithContext(ctx), filter).
		Preload("User", unscoped).
		Preload("Slot", unscoped).
		Preload("Court", unscoped).
		Order("booking_date ASC, created_at ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) BookedSlotIDs(ctx context.Context, courtID string, date datatypes.Date) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("court_id = ? AND booking_date = ? AND status IN ?", courtID, date, activeBookingStatuses).
		Pluck("slot_id", &ids).Error
	return ids, err
}

// ── 内部辅助方法 ──

func applyBookingFilter(db *gorm.DB, f BookingFilter) *gorm.DB {
	if f.UserID != "" {
		db = db.Where("user_id = ?", f.UserID)
	}
	if f.CourtID != "" {
		db = db.Where("court_id = ?", f.CourtID)
	}
	if f.Date != nil {
		db = db.Where("booking_date = ?", *f.Date)
	}
	if f.From != nil {
		db = db.Where("booking_date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("booking_date <= ?", *f.To)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

// ensureSlotFree 锁定并检查场次当天是否已有有效预订，excludeID 用于改期时排除自身
func ensureSlotFree(tx *gorm.DB, slotID string, date datatypes.Date, excludeID string) error {
	var existing model.Booking
	q := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slot_id = ? AND booking_date = ? AND status IN ?", slotID, date, activeBookingStatuses)
	if excludeID != "" {
		q = q.Where("booking_id <> ?", excludeID)
	}
	err := q.Take(&existing).Error
	if err == nil {
		return pkgerrors.ErrSlotAlreadyBooked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// lockUser 锁定用户行，串行化同一用户的积分兑换
func lockUser(tx *gorm.DB, userID string) error {
	var user model.User
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("user_id").
		Where("user_id = ?", userID).
		Take(&user).Error
}
