package handler

import "futsal-booking/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Futsal      *FutsalHandler
	Court       *CourtHandler
	Slot        *SlotHandler
	ClosingDay  *ClosingDayHandler
	Banner      *BannerHandler
	Contact     *ContactHandler
	CreditPoint *CreditPointHandler
	Booking     *BookingHandler
	Export      *ExportHandler
	Calendar    *CalendarHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Futsal:      NewFutsalHandler(svc.Futsal),
		Court:       NewCourtHandler(svc.Court),
		Slot:        NewSlotHandler(svc.Slot),
		ClosingDay:  NewClosingDayHandler(svc.ClosingDay),
		Banner:      NewBannerHandler(svc.Banner),
		Contact:     NewContactHandler(svc.Contact),
		CreditPoint: NewCreditPointHandler(svc.CreditPoint),
		Booking:     NewBookingHandler(svc.Booking),
		Export:      NewExportHandler(svc.Export),
		Calendar:    NewCalendarHandler(svc.Calendar),
	}
}
