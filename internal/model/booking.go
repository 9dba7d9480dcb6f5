package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 预订状态
const (
	BookingStatusBooked      = "booked"
	BookingStatusCompleted   = "completed"
	BookingStatusCancelled   = "cancelled"
	BookingStatusRescheduled = "rescheduled"
)

// 支付方式
const (
	PaymentTypePoint  = "point"
	PaymentTypeCash   = "cash"
	PaymentTypeOnline = "online"
)

// Booking 预订表 — 对应 bookings
// (slot_id, booking_date) 在未取消的预订中唯一
type Booking struct {
	BookingID   string          `gorm:"type:uuid;primaryKey"                                                           json:"booking_id"`
	UserID      string          `gorm:"type:uuid;not null;index"                                                       json:"user_id"`
	SlotID      string          `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_active_slot,where:status <> 'cancelled'" json:"slot_id"`
	CourtID     string          `gorm:"type:uuid;not null;index"                                                       json:"court_id"`
	BookingDate datatypes.Date  `gorm:"not null;uniqueIndex:idx_bookings_active_slot,where:status <> 'cancelled'"      json:"booking_date"`
	Status      string          `gorm:"type:varchar(20);not null;default:'booked'"                                     json:"status"`
	PaymentType string          `gorm:"type:varchar(20);not null"                                                      json:"payment_type"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"                                                    json:"amount"`
	Points      int64           `gorm:"not null;default:0"                                                             json:"points"` // 积分变化，兑换为负
	CancelledAt *time.Time      `                                                                                      json:"cancelled_at,omitempty"`
	BaseModel

	// 关联
	User  *User  `gorm:"foreignKey:UserID;references:UserID"   json:"user,omitempty"`
	Slot  *Slot  `gorm:"foreignKey:SlotID;references:SlotID"   json:"slot,omitempty"`
	Court *Court `gorm:"foreignKey:CourtID;references:CourtID" json:"court,omitempty"`
}

// TableName 指定表名
func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(*gorm.DB) error {
	ensureID(&b.BookingID)
	return nil
}

// IsActive 是否仍占用场次（未取消且未完成）
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusBooked || b.Status == BookingStatusRescheduled
}
