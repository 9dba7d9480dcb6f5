package model

import "gorm.io/gorm"

// Futsal 球馆表 — 对应 futsals
// slug 为稳定的 URL 键，创建后默认不随名称变化
type Futsal struct {
	FutsalID    string `gorm:"type:uuid;primaryKey"                json:"futsal_id"`
	Name        string `gorm:"type:varchar(100);not null"          json:"name"`
	Slug        string `gorm:"type:varchar(160);not null;uniqueIndex" json:"slug"`
	Location    string `gorm:"type:varchar(200);not null"          json:"location"`
	Description string `gorm:"type:text"                           json:"description,omitempty"`
	Contact     string `gorm:"type:varchar(50)"                    json:"contact,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"               json:"is_active"`
	IsVerified  bool   `gorm:"not null;default:false"              json:"is_verified"`
	SoftDeleteModel

	// 关联
	Courts []Court `gorm:"foreignKey:FutsalID;references:FutsalID" json:"courts,omitempty"`
}

// TableName 指定表名
func (Futsal) TableName() string { return "futsals" }

func (f *Futsal) BeforeCreate(*gorm.DB) error {
	ensureID(&f.FutsalID)
	return nil
}
