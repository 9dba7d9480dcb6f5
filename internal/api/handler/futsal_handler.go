package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// FutsalHandler 球馆模块 HTTP 处理器
type FutsalHandler struct {
	futsalSvc service.FutsalService
}

// NewFutsalHandler 创建 FutsalHandler
func NewFutsalHandler(futsalSvc service.FutsalService) *FutsalHandler {
	return &FutsalHandler{futsalSvc: futsalSvc}
}

// ListFutsals 球馆列表
// GET /api/v1/futsal?page=&limit=&keyword=&include_inactive=
// include_inactive 仅管理员生效
func (h *FutsalHandler) ListFutsals(c *gin.Context) {
	var req dto.FutsalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.futsalSvc.List(c.Request.Context(), &req, req.IncludeInactive && IsAdmin(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetLimit())
}

// GetFutsal 按 slug 获取球馆详情（含场地）
// GET /api/v1/futsal/:slug
func (h *FutsalHandler) GetFutsal(c *gin.Context) {
	futsal, err := h.futsalSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleFutsalError(c, err)
		return
	}

	response.OK(c, futsal)
}

// CreateFutsal 创建球馆
// POST /api/v1/futsal
func (h *FutsalHandler) CreateFutsal(c *gin.Context) {
	var req dto.CreateFutsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	futsal, err := h.futsalSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleFutsalError(c, err)
		return
	}

	response.Created(c, futsal)
}

// UpdateFutsal 更新球馆
// PUT /api/v1/futsal/:id
func (h *FutsalHandler) UpdateFutsal(c *gin.Context) {
	var req dto.UpdateFutsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	futsal, err := h.futsalSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleFutsalError(c, err)
		return
	}

	response.OK(c, futsal)
}

// DeleteFutsal 删除球馆（软删除）
// DELETE /api/v1/futsal/:id
func (h *FutsalHandler) DeleteFutsal(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.futsalSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleFutsalError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleFutsalError 统一处理球馆模块业务错误
func (h *FutsalHandler) handleFutsalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFutsalNotFound):
		response.NotFound(c, 12001, "球馆不存在")
	case errors.Is(err, service.ErrFutsalSlugTaken):
		response.Conflict(c, 12002, "球馆 slug 冲突，请重试")
	default:
		response.InternalError(c)
	}
}
