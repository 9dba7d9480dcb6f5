package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL 唯一约束冲突错误码
const pgUniqueViolation = "23505"

// 跨层共享的领域错误（由 Repository 事务内返回，Service 直接透传）
var (
	// ErrSlotAlreadyBooked 同一场次在同一天已被预订
	ErrSlotAlreadyBooked = errors.New("该场次当天已被预订")
	// ErrInsufficientPoints 积分余额不足
	ErrInsufficientPoints = errors.New("积分余额不足")
	// ErrBookingNotActive 预订已取消或已完成
	ErrBookingNotActive = errors.New("预订已取消或已完成")
	// ErrAdminExists 管理员账号已存在
	ErrAdminExists = errors.New("管理员账号已存在")
)

// IsUniqueViolation 判断是否为唯一约束冲突
// 开启 TranslateError 时 GORM 返回 ErrDuplicatedKey，否则回退检查 pgconn 错误码
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
