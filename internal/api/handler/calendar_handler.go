package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

const calendarContentType = "text/calendar; charset=utf-8"

// CalendarHandler 日历订阅 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// BookingFeed 当前用户的预订日历
// GET /api/v1/booking/calendar.ics
func (h *CalendarHandler) BookingFeed(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	data, err := h.calendarSvc.BookingFeed(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `inline; filename="bookings.ics"`)
	c.Data(http.StatusOK, calendarContentType, data)
}
