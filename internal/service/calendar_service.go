package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
)

const (
	calendarProductID = "-//futsal-booking//bookings//ZH"
	calendarUIDSuffix = "@futsal-booking"
)

// CalendarService 预订日历订阅（iCalendar / RFC 5545）
type CalendarService interface {
	// BookingFeed 用户全部预订的日历，已取消的预订保留为 STATUS:CANCELLED
	BookingFeed(ctx context.Context, userID string) ([]byte, error)
}

type calendarService struct {
	repo   *repository.Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
// loc 为场馆所在时区，场次的整点时间按该时区解释
func NewCalendarService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarService{repo: repo, loc: loc, now: time.Now, logger: logger}
}

func (s *calendarService) BookingFeed(ctx context.Context, userID string) ([]byte, error) {
	bookings, err := s.repo.Booking.ListForExport(ctx, repository.BookingFilter{UserID: userID})
	if err != nil {
		s.logger.Error("查询日历预订失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName("我的球场预订")
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.now().UTC()
	for i := range bookings {
		b := &bookings[i]
		if b.Slot == nil {
			continue
		}
		start, end, err := s.window(b)
		if err != nil {
			s.logger.Warn("场次时间无法解析，跳过", zap.String("booking_id", b.BookingID), zap.Error(err))
			continue
		}

		event := cal.AddEvent(b.BookingID + calendarUIDSuffix)
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(b.Slot.Label())
		if b.Court != nil {
			event.SetLocation(b.Court.Title)
		}
		event.SetDescription(fmt.Sprintf("支付方式: %s\n金额: %s\n积分: %d", b.PaymentType, b.Amount.StringFixed(2), b.Points))
		event.SetStatus(eventStatus(b.Status))
	}

	return []byte(cal.Serialize()), nil
}

// ── 内部辅助方法 ──

// window 预订日期 + 场次整点，换算为场馆时区的起止时间
func (s *calendarService) window(b *model.Booking) (time.Time, time.Time, error) {
	startHour, err := model.ParseHourTime(b.Slot.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endHour, err := model.ParseHourTime(b.Slot.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	y, m, d := timeOf(b.BookingDate).Date()
	return time.Date(y, m, d, startHour, 0, 0, 0, s.loc), time.Date(y, m, d, endHour, 0, 0, 0, s.loc), nil
}

func eventStatus(status string) ics.ObjectStatus {
	if status == model.BookingStatusCancelled {
		return ics.ObjectStatusCancelled
	}
	return ics.ObjectStatusConfirmed
}
