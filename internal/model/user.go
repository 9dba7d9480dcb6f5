package model

import "gorm.io/gorm"

// 用户角色
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// User 用户表 — 对应 users
// role_title = 'Admin' 上的部分唯一索引保证系统中只有一个管理员
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey"                                                                                   json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                                                                             json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"                                                                 json:"email"`
	Phone        string `gorm:"type:varchar(20)"                                                                                       json:"phone,omitempty"`
	Address      string `gorm:"type:varchar(200)"                                                                                      json:"address,omitempty"`
	PasswordHash string `gorm:"type:varchar(255);not null"                                                                             json:"-"`
	RoleTitle    string `gorm:"type:varchar(20);not null;default:'Customer';uniqueIndex:idx_users_single_admin,where:role_title = 'Admin'" json:"role_title"`
	IsVerified   bool   `gorm:"not null;default:false"                                                                                 json:"is_verified"`
	SoftDeleteModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.UserID)
	return nil
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool { return u.RoleTitle == RoleAdmin }
