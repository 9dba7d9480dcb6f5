package handler

import (
	"github.com/gin-gonic/gin"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/response"
)

// ContactHandler 联系我们 HTTP 处理器
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler 创建 ContactHandler
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// CreateMessage 提交留言
// POST /api/v1/contactus
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	msg, err := h.contactSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, msg)
}

// ListMessages 留言列表（最新在前）
// GET /api/v1/contactus?page=&limit=
func (h *ContactHandler) ListMessages(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.contactSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetLimit())
}
