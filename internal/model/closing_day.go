package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClosingDay 闭馆日表 — 对应 closing_days
// 同一场地同一天只允许一条记录
type ClosingDay struct {
	ClosingDayID string         `gorm:"type:uuid;primaryKey"                                      json:"closing_day_id"`
	CourtID      string         `gorm:"type:uuid;not null;uniqueIndex:idx_closing_days_court_date" json:"court_id"`
	Date         datatypes.Date `gorm:"not null;uniqueIndex:idx_closing_days_court_date"          json:"date"`
	Reason       string         `gorm:"type:varchar(200);not null"                                json:"reason"`
	BaseModel

	// 关联
	Court *Court `gorm:"foreignKey:CourtID;references:CourtID" json:"court,omitempty"`
}

// TableName 指定表名
func (ClosingDay) TableName() string { return "closing_days" }

func (d *ClosingDay) BeforeCreate(*gorm.DB) error {
	ensureID(&d.ClosingDayID)
	return nil
}
