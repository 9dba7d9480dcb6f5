package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// SlotHandler 场次模块 HTTP 处理器
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler 创建 SlotHandler
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// ListSlots 某场地的场次列表
// GET /api/v1/slot?court_id=&include_inactive=
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var req dto.SlotListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	// 停用场次仅管理员可见
	req.IncludeInactive = req.IncludeInactive && IsAdmin(c)

	slots, err := h.slotSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// AvailableSlots 某场地某日可预订场次
// GET /api/v1/slot/available?court_id=&date=YYYY-MM-DD
func (h *SlotHandler) AvailableSlots(c *gin.Context) {
	var req dto.AvailableSlotRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.slotSvc.Available(c.Request.Context(), &req)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, result)
}

// GetSlot 场次详情
// GET /api/v1/slot/:id
func (h *SlotHandler) GetSlot(c *gin.Context) {
	slot, err := h.slotSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, slot)
}

// CreateSlot 创建场次
// POST /api/v1/slot
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	slot, err := h.slotSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.Created(c, slot)
}

// UpdateSlot 更新场次（时间窗口不可修改）
// PUT /api/v1/slot/:id
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	slot, err := h.slotSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, slot)
}

// DeleteSlot 删除场次
// DELETE /api/v1/slot/:id
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.slotSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleSlotError 统一处理场次模块业务错误
func (h *SlotHandler) handleSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 14001, "场次不存在")
	case errors.Is(err, service.ErrSlotInvalidTime):
		response.BadRequest(c, 14002, "场次时间必须为整点 HH:00")
	case errors.Is(err, service.ErrSlotInvalidWindow):
		response.BadRequest(c, 14003, "结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrSlotPriceTooLow):
		response.BadRequest(c, 14004, "场次价格不能低于 100")
	case errors.Is(err, service.ErrSlotCreditTooLow):
		response.BadRequest(c, 14005, "场次积分不能低于 10")
	case errors.Is(err, service.ErrCourtNotFound):
		response.NotFound(c, 14006, "场地不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式错误，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
