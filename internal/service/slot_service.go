package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
)

// ── 场次模块业务错误 ──

var (
	ErrSlotNotFound      = errors.New("场次不存在")
	ErrSlotInvalidTime   = errors.New("场次时间必须为整点 HH:00")
	ErrSlotInvalidWindow = errors.New("结束时间必须晚于开始时间")
	ErrSlotPriceTooLow   = errors.New("场次价格不能低于 100")
	ErrSlotCreditTooLow  = errors.New("场次积分不能低于 10")
)

// 场次价格与积分下限
var minSlotPrice = decimal.NewFromInt(100)

const minSlotCreditPoint = 10

// SlotService 场次业务接口
type SlotService interface {
	Create(ctx context.Context, req *dto.CreateSlotRequest, callerID string) (*dto.SlotResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SlotResponse, error)
	List(ctx context.Context, req *dto.SlotListRequest) ([]dto.SlotResponse, error)
	// Update 只修改标题、价格、积分与启用状态，时间窗口保持不变
	Update(ctx context.Context, id string, req *dto.UpdateSlotRequest, callerID string) (*dto.SlotResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
	// Available 某场地某日可预订的场次，闭馆日返回 closed=true
	Available(ctx context.Context, req *dto.AvailableSlotRequest) (*dto.AvailableSlotsResponse, error)
}

type slotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSlotService 创建 SlotService 实例
func NewSlotService(repo *repository.Repository, logger *zap.Logger) SlotService {
	return &slotService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *slotService) Create(ctx context.Context, req *dto.CreateSlotRequest, callerID string) (*dto.SlotResponse, error) {
	// 1. 时间校验
	start, err := model.ParseHourTime(req.StartTime)
	if err != nil {
		return nil, ErrSlotInvalidTime
	}
	end, err := model.ParseHourTime(req.EndTime)
	if err != nil {
		return nil, ErrSlotInvalidTime
	}
	if end <= start {
		return nil, ErrSlotInvalidWindow
	}

	// 2. 价格与积分校验
	if req.Price == nil || req.Price.LessThan(minSlotPrice) {
		return nil, ErrSlotPriceTooLow
	}
	if req.CreditPoint < minSlotCreditPoint {
		return nil, ErrSlotCreditTooLow
	}

	// 3. 场地存在性
	if _, err := s.repo.Court.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("查询场地失败", zap.String("court_id", req.CourtID), zap.Error(err))
		return nil, err
	}

	slot := &model.Slot{
		CourtID:     req.CourtID,
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Price:       *req.Price,
		CreditPoint: req.CreditPoint,
		IsActive:    true,
	}
	slot.CreatedBy = &callerID
	slot.UpdatedBy = &callerID

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.logger.Error("创建场次失败", zap.Error(err))
		return nil, err
	}

	return toSlotResponse(slot), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *slotService) GetByID(ctx context.Context, id string) (*dto.SlotResponse, error) {
	slot, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// ────────────────────── List ──────────────────────

func (s *slotService) List(ctx context.Context, req *dto.SlotListRequest) ([]dto.SlotResponse, error) {
	slots, err := s.repo.Slot.ListByCourt(ctx, req.CourtID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出场次失败", zap.String("court_id", req.CourtID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, *toSlotResponse(&slots[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *slotService) Update(ctx context.Context, id string, req *dto.UpdateSlotRequest, callerID string) (*dto.SlotResponse, error) {
	slot, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		slot.Title = *req.Title
	}
	if req.Price != nil {
		if req.Price.LessThan(minSlotPrice) {
			return nil, ErrSlotPriceTooLow
		}
		slot.Price = *req.Price
	}
	if req.CreditPoint != nil {
		if *req.CreditPoint < minSlotCreditPoint {
			return nil, ErrSlotCreditTooLow
		}
		slot.CreditPoint = *req.CreditPoint
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}
	slot.UpdatedBy = &callerID

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		s.logger.Error("更新场次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// ────────────────────── Delete ──────────────────────

func (s *slotService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Slot.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除场次失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Available ──────────────────────

func (s *slotService) Available(ctx context.Context, req *dto.AvailableSlotRequest) (*dto.AvailableSlotsResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	resp := &dto.AvailableSlotsResponse{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   []dto.SlotResponse{},
	}

	// 1. 场地或球馆已删除、球馆停用时不对外开放
	if err := ensureCourtOpen(ctx, s.repo, req.CourtID); err != nil {
		if !errors.Is(err, ErrCourtNotFound) {
			s.logger.Error("查询场地失败", zap.String("court_id", req.CourtID), zap.Error(err))
		}
		return nil, err
	}

	// 2. 闭馆日直接返回空
	closing, err := s.repo.ClosingDay.GetByCourtAndDate(ctx, req.CourtID, date)
	if err == nil {
		resp.Closed = true
		resp.Reason = closing.Reason
		return resp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询闭馆日失败", zap.String("court_id", req.CourtID), zap.Error(err))
		return nil, err
	}

	// 3. 启用的场次减去当天已被占用的场次
	slots, err := s.repo.Slot.ListByCourt(ctx, req.CourtID, false)
	if err != nil {
		s.logger.Error("列出场次失败", zap.String("court_id", req.CourtID), zap.Error(err))
		return nil, err
	}
	bookedIDs, err := s.repo.Booking.BookedSlotIDs(ctx, req.CourtID, date)
	if err != nil {
		s.logger.Error("查询已预订场次失败", zap.String("court_id", req.CourtID), zap.Error(err))
		return nil, err
	}
	booked := make(map[string]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	for i := range slots {
		if !booked[slots[i].SlotID] {
			resp.Slots = append(resp.Slots, *toSlotResponse(&slots[i]))
		}
	}
	return resp, nil
}

// ── 内部辅助方法 ──

func (s *slotService) get(ctx context.Context, id string) (*model.Slot, error) {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("查询场次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func toSlotResponse(sl *model.Slot) *dto.SlotResponse {
	return &dto.SlotResponse{
		ID:          sl.SlotID,
		CourtID:     sl.CourtID,
		Title:       sl.Title,
		StartTime:   sl.StartTime,
		EndTime:     sl.EndTime,
		Price:       sl.Price,
		CreditPoint: sl.CreditPoint,
		IsActive:    sl.IsActive,
		CreatedAt:   formatTime(sl.CreatedAt),
		UpdatedAt:   formatTime(sl.UpdatedAt),
	}
}
