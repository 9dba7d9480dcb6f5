package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// BannerHandler 横幅模块 HTTP 处理器
type BannerHandler struct {
	bannerSvc service.BannerService
}

// NewBannerHandler 创建 BannerHandler
func NewBannerHandler(bannerSvc service.BannerService) *BannerHandler {
	return &BannerHandler{bannerSvc: bannerSvc}
}

// ListHomeBanners 首页横幅（仅启用）
// GET /api/v1/banner/list-home
func (h *BannerHandler) ListHomeBanners(c *gin.Context) {
	banners, err := h.bannerSvc.ListHome(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": banners})
}

// ListBanners 横幅分页列表（管理端）
// GET /api/v1/banner?page=&limit=
func (h *BannerHandler) ListBanners(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.bannerSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetLimit())
}

// GetBanner 横幅详情
// GET /api/v1/banner/:id
func (h *BannerHandler) GetBanner(c *gin.Context) {
	banner, err := h.bannerSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBannerError(c, err)
		return
	}

	response.OK(c, banner)
}

// CreateBanner 创建横幅（multipart 表单或 JSON）
// POST /api/v1/banner
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req dto.CreateBannerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	banner, err := h.bannerSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleBannerError(c, err)
		return
	}

	response.Created(c, banner)
}

// UpdateBanner 更新横幅（multipart 表单或 JSON）
// PUT /api/v1/banner/:id
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	var req dto.UpdateBannerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	banner, err := h.bannerSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleBannerError(c, err)
		return
	}

	response.OK(c, banner)
}

// DeleteBanner 删除横幅
// DELETE /api/v1/banner/:id
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.bannerSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleBannerError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *BannerHandler) handleBannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBannerNotFound):
		response.NotFound(c, 16001, "横幅不存在")
	default:
		response.InternalError(c)
	}
}
