package dto

// ── 联系我们模块 DTO ──

// CreateContactRequest 提交留言请求
type CreateContactRequest struct {
	Email   string `json:"email"   binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

// ContactResponse 留言信息响应
type ContactResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
