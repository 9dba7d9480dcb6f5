package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// ── 预订模块业务错误 ──

var (
	ErrBookingNotFound   = errors.New("预订不存在")
	ErrBookingForbidden  = errors.New("无权操作该预订")
	ErrBookingDateInPast = errors.New("不能预订或修改过去日期的场次")
	ErrSlotInactive      = errors.New("场次已停用")
	ErrSlotStarted       = errors.New("场次已开始，无法预订")
	ErrCourtClosed       = errors.New("场地当天闭馆")
)

// 预订事件 routing key
const (
	EventBookingCreated     = "booking.created"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingRescheduled = "booking.rescheduled"
	EventBookingCompleted   = "booking.completed"
)

// BookingEvent 发布到消息队列的预订事件
type BookingEvent struct {
	Event       string `json:"event"`
	BookingID   string `json:"booking_id"`
	UserID      string `json:"user_id"`
	SlotID      string `json:"slot_id"`
	CourtID     string `json:"court_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	PaymentType string `json:"payment_type"`
	Points      int64  `json:"points"`
	OccurredAt  string `json:"occurred_at"`
}

// BookingService 预订业务接口
type BookingService interface {
	Create(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListMine(ctx context.Context, userID string, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error)
	ListAll(ctx context.Context, req *dto.AdminBookingListRequest) ([]dto.BookingResponse, int64, error)
	// GetByID 仅本人或管理员可查看
	GetByID(ctx context.Context, id, callerID, role string) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, id, callerID, role string) (*dto.BookingResponse, error)
	Reschedule(ctx context.Context, id, callerID, role string, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error)
	// CompletePast 将过去日期的有效预订标记为已完成，返回处理条数
	CompletePast(ctx context.Context) (int, error)
}

type bookingService struct {
	repo   *repository.Repository
	events EventPublisher
	now    func() time.Time
	logger *zap.Logger
}

// NewBookingService 创建 BookingService 实例
// events 为 nil 时不发布事件
func NewBookingService(repo *repository.Repository, events EventPublisher, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, events: events, now: time.Now, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *bookingService) Create(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	// 1. 日期与场次校验
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := s.checkBookable(ctx, req.SlotID, date)
	if err != nil {
		return nil, err
	}

	// 2. 计算积分变化与流水
	booking := &model.Booking{
		UserID:      userID,
		SlotID:      slot.SlotID,
		CourtID:     slot.CourtID,
		BookingDate: date,
		Status:      model.BookingStatusBooked,
		PaymentType: req.PaymentType,
		Amount:      slot.Price,
	}
	booking.CreatedBy = &userID
	booking.UpdatedBy = &userID

	entry := &model.CreditPointTransaction{
		UserID:  userID,
		Session: slot.Label(),
		Date:    date,
	}
	if req.PaymentType == model.PaymentTypePoint {
		cost := slot.PointCost()
		entry.Type = model.CreditTypeRedeemed
		entry.Amount = cost
		booking.Points = -cost
	} else {
		entry.Type = model.CreditTypeEarned
		entry.Amount = slot.CreditPoint
		booking.Points = slot.CreditPoint
	}

	// 3. 预订与流水同一事务写入
	if err := s.repo.Booking.CreateWithLedger(ctx, booking, entry); err != nil {
		if errors.Is(err, pkgerrors.ErrSlotAlreadyBooked) || errors.Is(err, pkgerrors.ErrInsufficientPoints) {
			return nil, err
		}
		s.logger.Error("创建预订失败", zap.String("slot_id", slot.SlotID), zap.Error(err))
		return nil, err
	}

	booking.Slot = slot
	s.publish(ctx, EventBookingCreated, booking)
	return toBookingResponse(booking), nil
}

// ────────────────────── Query ──────────────────────

func (s *bookingService) ListMine(ctx context.Context, userID string, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error) {
	filter := repository.BookingFilter{UserID: userID, Status: req.Status}
	return s.list(ctx, filter, &req.PaginationRequest)
}

func (s *bookingService) ListAll(ctx context.Context, req *dto.AdminBookingListRequest) ([]dto.BookingResponse, int64, error) {
	filter := repository.BookingFilter{CourtID: req.CourtID, Status: req.Status}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, 0, err
		}
		filter.Date = &date
	}
	return s.list(ctx, filter, &req.PaginationRequest)
}

func (s *bookingService) GetByID(ctx context.Context, id, callerID, role string) (*dto.BookingResponse, error) {
	booking, err := s.getOwned(ctx, id, callerID, role)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// ────────────────────── Cancel ──────────────────────

func (s *bookingService) Cancel(ctx context.Context, id, callerID, role string) (*dto.BookingResponse, error) {
	booking, err := s.getOwned(ctx, id, callerID, role)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive() {
		return nil, pkgerrors.ErrBookingNotActive
	}
	if dateBefore(booking.BookingDate, s.today()) {
		return nil, ErrBookingDateInPast
	}

	// 补偿流水：积分支付退回，其他支付回收已获得积分
	var entry *model.CreditPointTransaction
	session := ""
	if booking.Slot != nil {
		session = booking.Slot.Label()
	}
	switch {
	case booking.Points < 0:
		entry = &model.CreditPointTransaction{
			UserID: booking.UserID, Amount: -booking.Points, Type: model.CreditTypeEarned,
			Session: session, Date: s.today(),
		}
	case booking.Points > 0:
		entry = &model.CreditPointTransaction{
			UserID: booking.UserID, Amount: booking.Points, Type: model.CreditTypeRedeemed,
			Session: session, Date: s.today(),
		}
	}

	cancelled, err := s.repo.Booking.CancelWithLedger(ctx, booking.BookingID, entry)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrBookingNotActive) {
			return nil, err
		}
		s.logger.Error("取消预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	cancelled.Slot = booking.Slot
	s.publish(ctx, EventBookingCancelled, cancelled)
	return toBookingResponse(cancelled), nil
}

// ────────────────────── Reschedule ──────────────────────

func (s *bookingService) Reschedule(ctx context.Context, id, callerID, role string, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error) {
	booking, err := s.getOwned(ctx, id, callerID, role)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive() {
		return nil, pkgerrors.ErrBookingNotActive
	}
	if dateBefore(booking.BookingDate, s.today()) {
		return nil, ErrBookingDateInPast
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := s.checkBookable(ctx, req.SlotID, date)
	if err != nil {
		return nil, err
	}

	moved, err := s.repo.Booking.Reschedule(ctx, booking.BookingID, slot, date)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrSlotAlreadyBooked) || errors.Is(err, pkgerrors.ErrBookingNotActive) {
			return nil, err
		}
		s.logger.Error("预订改期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	moved.Slot = slot
	s.publish(ctx, EventBookingRescheduled, moved)
	return toBookingResponse(moved), nil
}

// ────────────────────── CompletePast ──────────────────────

func (s *bookingService) CompletePast(ctx context.Context) (int, error) {
	done, err := s.repo.Booking.CompletePast(ctx, s.today())
	if err != nil {
		s.logger.Error("批量完成预订失败", zap.Error(err))
		return 0, err
	}
	for i := range done {
		s.publish(ctx, EventBookingCompleted, &done[i])
	}
	return len(done), nil
}

// ── 内部辅助方法 ──

func (s *bookingService) today() datatypes.Date {
	return toDate(s.now())
}

// checkBookable 校验场次在指定日期可被预订（不含占用检查，占用在事务内判断）
func (s *bookingService) checkBookable(ctx context.Context, slotID string, date datatypes.Date) (*model.Slot, error) {
	today := s.today()
	if dateBefore(date, today) {
		return nil, ErrBookingDateInPast
	}

	slot, err := s.repo.Slot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("查询场次失败", zap.String("slot_id", slotID), zap.Error(err))
		return nil, err
	}
	if !slot.IsActive {
		return nil, ErrSlotInactive
	}
	if err := ensureCourtOpen(ctx, s.repo, slot.CourtID); err != nil {
		if !errors.Is(err, ErrCourtNotFound) {
			s.logger.Error("查询场地失败", zap.String("court_id", slot.CourtID), zap.Error(err))
		}
		return nil, err
	}
	if dateEqual(date, today) {
		if start, err := model.ParseHourTime(slot.StartTime); err == nil && s.now().Hour() >= start {
			return nil, ErrSlotStarted
		}
	}

	if _, err := s.repo.ClosingDay.GetByCourtAndDate(ctx, slot.CourtID, date); err == nil {
		return nil, ErrCourtClosed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询闭馆日失败", zap.String("court_id", slot.CourtID), zap.Error(err))
		return nil, err
	}

	return slot, nil
}

func (s *bookingService) getOwned(ctx context.Context, id, callerID, role string) (*model.Booking, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if role != model.RoleAdmin && booking.UserID != callerID {
		return nil, ErrBookingForbidden
	}
	return booking, nil
}

func (s *bookingService) list(ctx context.Context, filter repository.BookingFilter, page *dto.PaginationRequest) ([]dto.BookingResponse, int64, error) {
	bookings, total, err := s.repo.Booking.List(ctx, filter, page.GetOffset(), page.GetLimit())
	if err != nil {
		s.logger.Error("查询预订列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBookingResponse(&bookings[i]))
	}
	return result, total, nil
}

// publish 事件发布失败只记录日志，不影响已提交的预订
func (s *bookingService) publish(ctx context.Context, event string, b *model.Booking) {
	if s.events == nil {
		return
	}
	payload := BookingEvent{
		Event:       event,
		BookingID:   b.BookingID,
		UserID:      b.UserID,
		SlotID:      b.SlotID,
		CourtID:     b.CourtID,
		Date:        formatDate(b.BookingDate),
		Status:      b.Status,
		PaymentType: b.PaymentType,
		Points:      b.Points,
		OccurredAt:  formatTime(s.now()),
	}
	if err := s.events.PublishJSON(ctx, event, payload); err != nil {
		s.logger.Warn("发布预订事件失败", zap.String("event", event), zap.String("booking_id", b.BookingID), zap.Error(err))
	}
}

func toBookingResponse(b *model.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:          b.BookingID,
		UserID:      b.UserID,
		SlotID:      b.SlotID,
		CourtID:     b.CourtID,
		Date:        formatDate(b.BookingDate),
		Status:      b.Status,
		PaymentType: b.PaymentType,
		Amount:      b.Amount,
		Points:      b.Points,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
	if b.Slot != nil {
		resp.Session = b.Slot.Label()
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = formatTime(*b.CancelledAt)
	}
	return resp
}
