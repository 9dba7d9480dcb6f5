package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	pkgerrors "futsal-booking/backend/pkg/errors"
	"futsal-booking/backend/pkg/response"
)

// BookingHandler 预订模块 HTTP 处理器
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler 创建 BookingHandler
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// CreateBooking 创建预订
// POST /api/v1/booking
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// ListMyBookings 个人预订历史
// GET /api/v1/booking?page=&limit=&status=
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	var req dto.BookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, total, err := h.bookingSvc.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetLimit())
}

// ListAllBookings 全部预订（管理端）
// GET /api/v1/booking/all?court_id=&date=&status=
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	var req dto.AdminBookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.bookingSvc.ListAll(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetLimit())
}

// GetBooking 预订详情（本人或管理员）
// GET /api/v1/booking/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, role, ok := h.caller(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.GetByID(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// CancelBooking 取消预订
// PUT /api/v1/booking/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, role, ok := h.caller(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Cancel(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// RescheduleBooking 预订改期
// PUT /api/v1/booking/:id/reschedule
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var req dto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, role, ok := h.caller(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Reschedule(c.Request.Context(), c.Param("id"), userID, role, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

func (h *BookingHandler) caller(c *gin.Context) (string, string, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return "", "", false
	}
	role, ok := MustGetRole(c)
	if !ok {
		return "", "", false
	}
	return userID, role, true
}

// handleBookingError 统一处理预订模块业务错误
func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 19001, "预订不存在")
	case errors.Is(err, service.ErrBookingForbidden):
		response.Forbidden(c, 19002, "无权操作该预订")
	case errors.Is(err, service.ErrBookingDateInPast):
		response.BadRequest(c, 19003, "不能预订或修改过去日期的场次")
	case errors.Is(err, service.ErrSlotInactive):
		response.BadRequest(c, 19004, "场次已停用")
	case errors.Is(err, service.ErrSlotStarted):
		response.BadRequest(c, 19005, "场次已开始，无法预订")
	case errors.Is(err, service.ErrCourtClosed):
		response.Conflict(c, 19006, "场地当天闭馆")
	case errors.Is(err, pkgerrors.ErrSlotAlreadyBooked):
		response.Conflict(c, 19007, "该场次当天已被预订")
	case errors.Is(err, pkgerrors.ErrInsufficientPoints):
		response.BadRequest(c, 19008, "积分余额不足")
	case errors.Is(err, pkgerrors.ErrBookingNotActive):
		response.Conflict(c, 19009, "预订已取消或已完成")
	case errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 19010, "场次不存在")
	case errors.Is(err, service.ErrCourtNotFound):
		response.NotFound(c, 19011, "场地不存在或已停用")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式错误，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
