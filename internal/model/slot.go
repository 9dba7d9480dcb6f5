package model

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInvalidHourTime 时间不是整点 HH:00 格式
var ErrInvalidHourTime = errors.New("时间必须为整点 HH:00 格式")

// Slot 场次表 — 对应 slots
// start_time / end_time 为 24 小时制整点，创建后不可修改
type Slot struct {
	SlotID      string          `gorm:"type:uuid;primaryKey"           json:"slot_id"`
	CourtID     string          `gorm:"type:uuid;not null;index"       json:"court_id"`
	Title       string          `gorm:"type:varchar(100);not null"     json:"title"`
	StartTime   string          `gorm:"type:varchar(5);not null"       json:"start_time"`
	EndTime     string          `gorm:"type:varchar(5);not null"       json:"end_time"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"    json:"price"`
	CreditPoint int64           `gorm:"not null"                       json:"credit_point"`
	IsActive    bool            `gorm:"not null;default:true"          json:"is_active"`
	SoftDeleteModel

	// 关联
	Court *Court `gorm:"foreignKey:CourtID;references:CourtID" json:"court,omitempty"`
}

// TableName 指定表名
func (Slot) TableName() string { return "slots" }

func (s *Slot) BeforeCreate(*gorm.DB) error {
	ensureID(&s.SlotID)
	return nil
}

// Label 场次展示名，例如 "Morning 06:00-07:00"
func (s *Slot) Label() string {
	return fmt.Sprintf("%s %s-%s", s.Title, s.StartTime, s.EndTime)
}

// PointCost 使用积分支付时需要扣除的积分（价格向上取整）
func (s *Slot) PointCost() int64 {
	return s.Price.Ceil().IntPart()
}

// ParseHourTime 解析整点时间 "HH:00"，返回小时数 0-23
func ParseHourTime(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' || s[3:] != "00" {
		return 0, ErrInvalidHourTime
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidHourTime
	}
	return h, nil
}
