package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// CourtHandler 场地模块 HTTP 处理器
type CourtHandler struct {
	courtSvc service.CourtService
}

// NewCourtHandler 创建 CourtHandler
func NewCourtHandler(courtSvc service.CourtService) *CourtHandler {
	return &CourtHandler{courtSvc: courtSvc}
}

// ListCourts 场地列表
// GET /api/v1/court?futsal_id=
func (h *CourtHandler) ListCourts(c *gin.Context) {
	var req dto.CourtListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	courts, err := h.courtSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courts})
}

// GetCourt 场地详情
// GET /api/v1/court/:id
func (h *CourtHandler) GetCourt(c *gin.Context) {
	court, err := h.courtSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCourtError(c, err)
		return
	}

	response.OK(c, court)
}

// CreateCourt 创建场地
// POST /api/v1/court
func (h *CourtHandler) CreateCourt(c *gin.Context) {
	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	court, err := h.courtSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCourtError(c, err)
		return
	}

	response.Created(c, court)
}

// UpdateCourt 更新场地
// PUT /api/v1/court/:id
func (h *CourtHandler) UpdateCourt(c *gin.Context) {
	var req dto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	court, err := h.courtSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleCourtError(c, err)
		return
	}

	response.OK(c, court)
}

// DeleteCourt 删除场地
// DELETE /api/v1/court/:id
func (h *CourtHandler) DeleteCourt(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.courtSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleCourtError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *CourtHandler) handleCourtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourtNotFound):
		response.NotFound(c, 13001, "场地不存在")
	case errors.Is(err, service.ErrFutsalNotFound):
		response.NotFound(c, 13002, "所属球馆不存在")
	default:
		response.InternalError(c)
	}
}
