package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"futsal-booking/backend/config"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// ErrAdminExists 管理员已存在，调用方可视为正常情况
var ErrAdminExists = pkgerrors.ErrAdminExists

// ErrSeedNotConfigured 未配置管理员邮箱或密码
var ErrSeedNotConfigured = errors.New("未配置管理员初始化账号")

// SeedAdmin 初始化唯一的管理员账号
//
// 已存在管理员时返回 ErrAdminExists；其他错误原样返回，由调用方决定是否中止启动
func SeedAdmin(ctx context.Context, users repository.UserRepository, cfg config.SeedConfig, logger *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return ErrSeedNotConfigured
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("管理员密码加密失败: %w", err)
	}

	admin := &model.User{
		Name:         cfg.AdminName,
		Email:        email,
		Phone:        cfg.AdminPhone,
		PasswordHash: string(hash),
		RoleTitle:    model.RoleAdmin,
		IsVerified:   true,
	}
	if err := users.CreateAdminIfAbsent(ctx, admin); err != nil {
		if errors.Is(err, ErrAdminExists) {
			return ErrAdminExists
		}
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	logger.Info("管理员账号已创建", zap.String("user_id", admin.UserID), zap.String("email", admin.Email))
	return nil
}
