package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
)

// ── 横幅模块业务错误 ──

var (
	ErrBannerNotFound = errors.New("横幅不存在")
)

// bannerHomeCacheKey 首页横幅缓存键
const bannerHomeCacheKey = "cache:banner:list-home"

// BannerService 横幅业务接口
type BannerService interface {
	Create(ctx context.Context, req *dto.CreateBannerRequest, callerID string) (*dto.BannerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.BannerResponse, error)
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.BannerResponse, int64, error)
	// ListHome 首页横幅，只返回启用状态
	ListHome(ctx context.Context) ([]dto.BannerResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateBannerRequest, callerID string) (*dto.BannerResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type bannerService struct {
	repo   *repository.Repository
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewBannerService 创建 BannerService 实例
// cache 为 nil 时首页横幅直接查库
func NewBannerService(repo *repository.Repository, cache Cache, ttl time.Duration, logger *zap.Logger) BannerService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &bannerService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *bannerService) Create(ctx context.Context, req *dto.CreateBannerRequest, callerID string) (*dto.BannerResponse, error) {
	banner := &model.Banner{
		Title:    req.Title,
		Link:     req.Link,
		ImageURL: req.ImageURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	banner.CreatedBy = &callerID
	banner.UpdatedBy = &callerID

	if err := s.repo.Banner.Create(ctx, banner); err != nil {
		s.logger.Error("创建横幅失败", zap.Error(err))
		return nil, err
	}
	s.invalidateHome(ctx)

	return toBannerResponse(banner), nil
}

// ────────────────────── Query ──────────────────────

func (s *bannerService) GetByID(ctx context.Context, id string) (*dto.BannerResponse, error) {
	banner, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

func (s *bannerService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.BannerResponse, int64, error) {
	banners, total, err := s.repo.Banner.List(ctx, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("列出横幅失败", zap.Error(err))
		return nil, 0, err
	}
	return toBannerResponses(banners), total, nil
}

func (s *bannerService) ListHome(ctx context.Context) ([]dto.BannerResponse, error) {
	if s.cache != nil {
		var cached []dto.BannerResponse
		if err := s.cache.GetJSON(ctx, bannerHomeCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	banners, err := s.repo.Banner.ListActive(ctx)
	if err != nil {
		s.logger.Error("列出首页横幅失败", zap.Error(err))
		return nil, err
	}
	result := toBannerResponses(banners)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, bannerHomeCacheKey, result, s.ttl); err != nil {
			s.logger.Warn("写入横幅缓存失败", zap.Error(err))
		}
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *bannerService) Update(ctx context.Context, id string, req *dto.UpdateBannerRequest, callerID string) (*dto.BannerResponse, error) {
	banner, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Link != nil {
		banner.Link = *req.Link
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	banner.UpdatedBy = &callerID

	if err := s.repo.Banner.Update(ctx, banner); err != nil {
		s.logger.Error("更新横幅失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.invalidateHome(ctx)

	return toBannerResponse(banner), nil
}

// ────────────────────── Delete ──────────────────────

func (s *bannerService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Banner.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除横幅失败", zap.String("id", id), zap.Error(err))
		return err
	}
	s.invalidateHome(ctx)
	return nil
}

// ── 内部辅助方法 ──

func (s *bannerService) get(ctx context.Context, id string) (*model.Banner, error) {
	banner, err := s.repo.Banner.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		s.logger.Error("查询横幅失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) invalidateHome(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, bannerHomeCacheKey); err != nil {
		s.logger.Warn("清除横幅缓存失败", zap.Error(err))
	}
}

func toBannerResponses(banners []model.Banner) []dto.BannerResponse {
	result := make([]dto.BannerResponse, 0, len(banners))
	for i := range banners {
		result = append(result, *toBannerResponse(&banners[i]))
	}
	return result
}

func toBannerResponse(b *model.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.BannerID,
		Title:     b.Title,
		Link:      b.Link,
		ImageURL:  b.ImageURL,
		IsActive:  b.IsActive,
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}
