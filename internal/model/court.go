package model

import "gorm.io/gorm"

// 场地类型
const (
	CourtTypeIndoor  = "indoor"
	CourtTypeOutdoor = "outdoor"
)

// Court 场地表 — 对应 courts
type Court struct {
	CourtID  string `gorm:"type:uuid;primaryKey"         json:"court_id"`
	FutsalID string `gorm:"type:uuid;not null;index"     json:"futsal_id"`
	Title    string `gorm:"type:varchar(100);not null"   json:"title"`
	Type     string `gorm:"type:varchar(10);not null"    json:"type"` // indoor | outdoor
	SoftDeleteModel

	// 关联
	Futsal *Futsal `gorm:"foreignKey:FutsalID;references:FutsalID" json:"futsal,omitempty"`
}

// TableName 指定表名
func (Court) TableName() string { return "courts" }

func (c *Court) BeforeCreate(*gorm.DB) error {
	ensureID(&c.CourtID)
	return nil
}
