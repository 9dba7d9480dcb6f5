package dto

// ── 场地模块 DTO ──

// CreateCourtRequest 创建场地请求
type CreateCourtRequest struct {
	FutsalID string `json:"futsal_id" binding:"required,uuid"`
	Title    string `json:"title"     binding:"required,min=1,max=100"`
	Type     string `json:"type"      binding:"required,oneof=indoor outdoor"`
}

// UpdateCourtRequest 更新场地请求
type UpdateCourtRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=100"`
	Type  *string `json:"type"  binding:"omitempty,oneof=indoor outdoor"`
}

// CourtListRequest 场地列表查询参数
type CourtListRequest struct {
	FutsalID string `form:"futsal_id" binding:"omitempty,uuid"`
}

// CourtResponse 场地信息响应
type CourtResponse struct {
	ID        string `json:"id"`
	FutsalID  string `json:"futsal_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
