package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// ClosingDayHandler 闭馆日模块 HTTP 处理器
type ClosingDayHandler struct {
	closingSvc service.ClosingDayService
}

// NewClosingDayHandler 创建 ClosingDayHandler
func NewClosingDayHandler(closingSvc service.ClosingDayService) *ClosingDayHandler {
	return &ClosingDayHandler{closingSvc: closingSvc}
}

// ListClosingDays 某场地的闭馆日
// GET /api/v1/closing-day?court_id=
func (h *ClosingDayHandler) ListClosingDays(c *gin.Context) {
	var req dto.ClosingDayListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	days, err := h.closingSvc.List(c.Request.Context(), req.CourtID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": days})
}

// CreateClosingDay 设置闭馆日
// POST /api/v1/closing-day
func (h *ClosingDayHandler) CreateClosingDay(c *gin.Context) {
	var req dto.CreateClosingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	day, err := h.closingSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleClosingDayError(c, err)
		return
	}

	response.Created(c, day)
}

// DeleteClosingDay 删除闭馆日
// DELETE /api/v1/closing-day/:id
func (h *ClosingDayHandler) DeleteClosingDay(c *gin.Context) {
	if err := h.closingSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleClosingDayError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ClosingDayHandler) handleClosingDayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClosingDayNotFound):
		response.NotFound(c, 15001, "闭馆日不存在")
	case errors.Is(err, service.ErrClosingDayExists):
		response.Conflict(c, 15002, "该场地当天已设置闭馆")
	case errors.Is(err, service.ErrCourtNotFound):
		response.NotFound(c, 15003, "场地不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式错误，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
