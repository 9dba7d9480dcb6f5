package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// ── 闭馆日模块业务错误 ──

var (
	ErrClosingDayNotFound = errors.New("闭馆日不存在")
	ErrClosingDayExists   = errors.New("该场地当天已设置闭馆")
)

// ClosingDayService 闭馆日业务接口
type ClosingDayService interface {
	Create(ctx context.Context, req *dto.CreateClosingDayRequest, callerID string) (*dto.ClosingDayResponse, error)
	// List 只返回指定场地的闭馆日，按日期升序
	List(ctx context.Context, courtID string) ([]dto.ClosingDayResponse, error)
	Delete(ctx context.Context, id string) error
}

type closingDayService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClosingDayService 创建 ClosingDayService 实例
func NewClosingDayService(repo *repository.Repository, logger *zap.Logger) ClosingDayService {
	return &closingDayService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *closingDayService) Create(ctx context.Context, req *dto.CreateClosingDayRequest, callerID string) (*dto.ClosingDayResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Court.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("查询场地失败", zap.String("court_id", req.CourtID), zap.Error(err))
		return nil, err
	}

	day := &model.ClosingDay{
		CourtID: req.CourtID,
		Date:    date,
		Reason:  req.Reason,
	}
	day.CreatedBy = &callerID
	day.UpdatedBy = &callerID

	if err := s.repo.ClosingDay.Create(ctx, day); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrClosingDayExists
		}
		s.logger.Error("创建闭馆日失败", zap.Error(err))
		return nil, err
	}

	return toClosingDayResponse(day), nil
}

// ────────────────────── List ──────────────────────

func (s *closingDayService) List(ctx context.Context, courtID string) ([]dto.ClosingDayResponse, error) {
	days, err := s.repo.ClosingDay.ListByCourt(ctx, courtID)
	if err != nil {
		s.logger.Error("列出闭馆日失败", zap.String("court_id", courtID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClosingDayResponse, 0, len(days))
	for i := range days {
		result = append(result, *toClosingDayResponse(&days[i]))
	}
	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *closingDayService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.ClosingDay.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClosingDayNotFound
		}
		s.logger.Error("查询闭馆日失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.ClosingDay.Delete(ctx, id); err != nil {
		s.logger.Error("删除闭馆日失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toClosingDayResponse(d *model.ClosingDay) *dto.ClosingDayResponse {
	return &dto.ClosingDayResponse{
		ID:        d.ClosingDayID,
		CourtID:   d.CourtID,
		Date:      formatDate(d.Date),
		Reason:    d.Reason,
		CreatedAt: formatTime(d.CreatedAt),
	}
}
