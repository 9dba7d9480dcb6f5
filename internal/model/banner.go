package model

import "gorm.io/gorm"

// Banner 首页横幅表 — 对应 banners
type Banner struct {
	BannerID string `gorm:"type:uuid;primaryKey"        json:"banner_id"`
	Title    string `gorm:"type:varchar(150);not null"  json:"title"`
	Link     string `gorm:"type:varchar(500)"           json:"link,omitempty"`
	ImageURL string `gorm:"type:varchar(500);not null"  json:"image_url"`
	IsActive bool   `gorm:"not null;index"              json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Banner) TableName() string { return "banners" }

func (b *Banner) BeforeCreate(*gorm.DB) error {
	ensureID(&b.BannerID)
	return nil
}
