package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"futsal-booking/backend/internal/model"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	// CreateAdminIfAbsent 在事务内检查并创建唯一管理员，已存在时返回 ErrAdminExists
	CreateAdminIfAbsent(ctx context.Context, admin *model.User) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) CreateAdminIfAbsent(ctx context.Context, admin *model.User) error {
	admin.RoleTitle = model.RoleAdmin
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.User
		err := tx.Unscoped().
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("role_title = ?", model.RoleAdmin).
			Take(&existing).Error
		if err == nil {
			return pkgerrors.ErrAdminExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var emailCount int64
		if err := tx.Unscoped().Model(&model.User{}).
			Where("email = ?", admin.Email).
			Count(&emailCount).Error; err != nil {
			return err
		}
		if emailCount > 0 {
			return fmt.Errorf("管理员邮箱 %s 已被其他用户占用", admin.Email)
		}

		// 并发插入由部分唯一索引兜底
		if err := tx.Create(admin).Error; err != nil {
			if pkgerrors.IsUniqueViolation(err) {
				return pkgerrors.ErrAdminExists
			}
			return err
		}
		return nil
	})
}
