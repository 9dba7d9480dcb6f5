package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
)

// ── 场地模块业务错误 ──

var (
	ErrCourtNotFound = errors.New("场地不存在")
)

// CourtService 场地业务接口
type CourtService interface {
	Create(ctx context.Context, req *dto.CreateCourtRequest, callerID string) (*dto.CourtResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CourtResponse, error)
	List(ctx context.Context, req *dto.CourtListRequest) ([]dto.CourtResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourtRequest, callerID string) (*dto.CourtResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type courtService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourtService 创建 CourtService 实例
func NewCourtService(repo *repository.Repository, logger *zap.Logger) CourtService {
	return &courtService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courtService) Create(ctx context.Context, req *dto.CreateCourtRequest, callerID string) (*dto.CourtResponse, error) {
	if _, err := s.repo.Futsal.GetByID(ctx, req.FutsalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFutsalNotFound
		}
		s.logger.Error("查询球馆失败", zap.String("futsal_id", req.FutsalID), zap.Error(err))
		return nil, err
	}

	court := &model.Court{
		FutsalID: req.FutsalID,
		Title:    req.Title,
		Type:     req.Type,
	}
	court.CreatedBy = &callerID
	court.UpdatedBy = &callerID

	if err := s.repo.Court.Create(ctx, court); err != nil {
		s.logger.Error("创建场地失败", zap.Error(err))
		return nil, err
	}

	return toCourtResponse(court), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courtService) GetByID(ctx context.Context, id string) (*dto.CourtResponse, error) {
	court, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCourtResponse(court), nil
}

// ────────────────────── List ──────────────────────

func (s *courtService) List(ctx context.Context, req *dto.CourtListRequest) ([]dto.CourtResponse, error) {
	courts, err := s.repo.Court.List(ctx, req.FutsalID)
	if err != nil {
		s.logger.Error("列出场地失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourtResponse, 0, len(courts))
	for i := range courts {
		result = append(result, *toCourtResponse(&courts[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *courtService) Update(ctx context.Context, id string, req *dto.UpdateCourtRequest, callerID string) (*dto.CourtResponse, error) {
	court, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		court.Title = *req.Title
	}
	if req.Type != nil {
		court.Type = *req.Type
	}
	court.UpdatedBy = &callerID

	if err := s.repo.Court.Update(ctx, court); err != nil {
		s.logger.Error("更新场地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toCourtResponse(court), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courtService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Court.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除场地失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *courtService) get(ctx context.Context, id string) (*model.Court, error) {
	court, err := s.repo.Court.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("查询场地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return court, nil
}

// ensureCourtOpen 场地及其所属球馆均未删除且球馆处于启用状态时才可对外开放
// 场地或球馆已删除、球馆停用时统一返回 ErrCourtNotFound
func ensureCourtOpen(ctx context.Context, repo *repository.Repository, courtID string) error {
	court, err := repo.Court.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourtNotFound
		}
		return err
	}
	futsal, err := repo.Futsal.GetByID(ctx, court.FutsalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourtNotFound
		}
		return err
	}
	if !futsal.IsActive {
		return ErrCourtNotFound
	}
	return nil
}

func toCourtResponse(c *model.Court) *dto.CourtResponse {
	return &dto.CourtResponse{
		ID:        c.CourtID,
		FutsalID:  c.FutsalID,
		Title:     c.Title,
		Type:      c.Type,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}
