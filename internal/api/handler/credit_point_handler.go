package handler

import (
	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// CreditPointHandler 积分模块 HTTP 处理器
type CreditPointHandler struct {
	creditSvc service.CreditPointService
}

// NewCreditPointHandler 创建 CreditPointHandler
func NewCreditPointHandler(creditSvc service.CreditPointService) *CreditPointHandler {
	return &CreditPointHandler{creditSvc: creditSvc}
}

// ListTransactions 当前用户积分流水
// GET /api/v1/credit-point/list-home?page=&limit=&type=
func (h *CreditPointHandler) ListTransactions(c *gin.Context) {
	var req dto.CreditPointListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, total, err := h.creditSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetLimit())
}

// ViewPoints 当前用户积分汇总
// GET /api/v1/credit-point/view-point
func (h *CreditPointHandler) ViewPoints(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	summary, err := h.creditSvc.Summary(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
