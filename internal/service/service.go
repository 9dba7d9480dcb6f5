package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"futsal-booking/backend/config"
	"futsal-booking/backend/internal/repository"
	"futsal-booking/backend/pkg/jwt"
)

// Cache JSON 缓存（pkg/redis.Client 实现）
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) error
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// TokenBlacklist Token 黑名单（pkg/redis.Client 实现）
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// EventPublisher 领域事件发布（pkg/mq.Publisher 实现）
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v interface{}) error
}

// Dependencies 可选的外部依赖，字段为 nil 时对应功能降级
type Dependencies struct {
	Cache  Cache
	Tokens TokenBlacklist
	Events EventPublisher
}

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Futsal      FutsalService
	Court       CourtService
	Slot        SlotService
	ClosingDay  ClosingDayService
	Banner      BannerService
	Contact     ContactService
	CreditPoint CreditPointService
	Booking     BookingService
	Export      ExportService
	Calendar    CalendarService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	deps Dependencies,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, deps.Tokens, logger),
		Futsal:      NewFutsalService(repo, logger),
		Court:       NewCourtService(repo, logger),
		Slot:        NewSlotService(repo, logger),
		ClosingDay:  NewClosingDayService(repo, logger),
		Banner:      NewBannerService(repo, deps.Cache, cfg.Cache.BannerTTL, logger),
		Contact:     NewContactService(repo, logger),
		CreditPoint: NewCreditPointService(repo, logger),
		Booking:     NewBookingService(repo, deps.Events, logger),
		Export:      NewExportService(repo, logger),
		Calendar:    NewCalendarService(repo, venueLocation(cfg, logger), logger),
	}
}

// venueLocation 场馆时区，沿用数据库会话时区，无法识别时回退到 UTC
func venueLocation(cfg *config.Config, logger *zap.Logger) *time.Location {
	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		logger.Warn("无法识别的时区，日历使用 UTC", zap.String("timezone", cfg.Database.Timezone), zap.Error(err))
		return time.UTC
	}
	return loc
}
