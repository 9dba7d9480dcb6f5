package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// ── 球馆模块业务错误 ──

var (
	ErrFutsalNotFound  = errors.New("球馆不存在")
	ErrFutsalSlugTaken = errors.New("球馆 slug 冲突，请重试")
)

// maxSlugAttempts slug 后缀最多尝试次数
const maxSlugAttempts = 100

// FutsalService 球馆业务接口
type FutsalService interface {
	Create(ctx context.Context, req *dto.CreateFutsalRequest, callerID string) (*dto.FutsalResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.FutsalResponse, error)
	// List includeInactive 仅对管理员生效，由 Handler 判定
	List(ctx context.Context, req *dto.FutsalListRequest, includeInactive bool) ([]dto.FutsalResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateFutsalRequest, callerID string) (*dto.FutsalResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type futsalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFutsalService 创建 FutsalService 实例
func NewFutsalService(repo *repository.Repository, logger *zap.Logger) FutsalService {
	return &futsalService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *futsalService) Create(ctx context.Context, req *dto.CreateFutsalRequest, callerID string) (*dto.FutsalResponse, error) {
	slug, err := s.uniqueSlug(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}

	futsal := &model.Futsal{
		Name:        req.Name,
		Slug:        slug,
		Location:    req.Location,
		Description: req.Description,
		Contact:     req.Contact,
		IsActive:    true,
	}
	futsal.CreatedBy = &callerID
	futsal.UpdatedBy = &callerID

	if err := s.repo.Futsal.Create(ctx, futsal); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrFutsalSlugTaken
		}
		s.logger.Error("创建球馆失败", zap.Error(err))
		return nil, err
	}

	return toFutsalResponse(futsal), nil
}

// ────────────────────── GetBySlug ──────────────────────

func (s *futsalService) GetBySlug(ctx context.Context, slug string) (*dto.FutsalResponse, error) {
	futsal, err := s.repo.Futsal.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFutsalNotFound
		}
		s.logger.Error("查询球馆失败", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return toFutsalResponse(futsal), nil
}

// ────────────────────── List ──────────────────────

func (s *futsalService) List(ctx context.Context, req *dto.FutsalListRequest, includeInactive bool) ([]dto.FutsalResponse, int64, error) {
	filter := repository.FutsalFilter{
		Keyword:         req.Keyword,
		IncludeInactive: includeInactive,
	}
	futsals, total, err := s.repo.Futsal.List(ctx, filter, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("列出球馆失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.FutsalResponse, 0, len(futsals))
	for i := range futsals {
		result = append(result, *toFutsalResponse(&futsals[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *futsalService) Update(ctx context.Context, id string, req *dto.UpdateFutsalRequest, callerID string) (*dto.FutsalResponse, error) {
	futsal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != futsal.Name {
		futsal.Name = *req.Name
		// slug 作为稳定 URL，只有显式要求时才随名称变化
		if req.RegenerateSlug {
			slug, err := s.uniqueSlug(ctx, futsal.Name, futsal.FutsalID)
			if err != nil {
				return nil, err
			}
			futsal.Slug = slug
		}
	}
	if req.Location != nil {
		futsal.Location = *req.Location
	}
	if req.Description != nil {
		futsal.Description = *req.Description
	}
	if req.Contact != nil {
		futsal.Contact = *req.Contact
	}
	if req.IsActive != nil {
		futsal.IsActive = *req.IsActive
	}
	if req.IsVerified != nil {
		futsal.IsVerified = *req.IsVerified
	}
	futsal.UpdatedBy = &callerID

	if err := s.repo.Futsal.Update(ctx, futsal); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrFutsalSlugTaken
		}
		s.logger.Error("更新球馆失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toFutsalResponse(futsal), nil
}

// ────────────────────── Delete ──────────────────────

func (s *futsalService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Futsal.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除球馆失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *futsalService) get(ctx context.Context, id string) (*model.Futsal, error) {
	futsal, err := s.repo.Futsal.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFutsalNotFound
		}
		s.logger.Error("查询球馆失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return futsal, nil
}

// uniqueSlug 依次尝试 base、base-2、base-3 … 直到未被占用
func (s *futsalService) uniqueSlug(ctx context.Context, name, excludeID string) (string, error) {
	base := slugify(name)
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := s.repo.Futsal.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			s.logger.Error("检查 slug 失败", zap.String("slug", candidate), zap.Error(err))
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrFutsalSlugTaken
}

func toFutsalResponse(f *model.Futsal) *dto.FutsalResponse {
	resp := &dto.FutsalResponse{
		ID:          f.FutsalID,
		Name:        f.Name,
		Slug:        f.Slug,
		Location:    f.Location,
		Description: f.Description,
		Contact:     f.Contact,
		IsActive:    f.IsActive,
		IsVerified:  f.IsVerified,
		CreatedAt:   formatTime(f.CreatedAt),
		UpdatedAt:   formatTime(f.UpdatedAt),
	}
	for i := range f.Courts {
		resp.Courts = append(resp.Courts, *toCourtResponse(&f.Courts[i]))
	}
	return resp
}
