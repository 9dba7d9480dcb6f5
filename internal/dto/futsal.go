package dto

// ── 球馆模块 DTO ──

// CreateFutsalRequest 创建球馆请求
type CreateFutsalRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Location    string `json:"location"    binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Contact     string `json:"contact"     binding:"omitempty,max=50"`
}

// UpdateFutsalRequest 更新球馆请求
// 仅当 regenerate_slug=true 且名称变化时重新生成 slug
type UpdateFutsalRequest struct {
	Name           *string `json:"name"            binding:"omitempty,min=2,max=100"`
	Location       *string `json:"location"        binding:"omitempty,max=200"`
	Description    *string `json:"description"     binding:"omitempty,max=2000"`
	Contact        *string `json:"contact"         binding:"omitempty,max=50"`
	IsActive       *bool   `json:"is_active"`
	IsVerified     *bool   `json:"is_verified"`
	RegenerateSlug bool    `json:"regenerate_slug"`
}

// FutsalListRequest 球馆列表查询参数
type FutsalListRequest struct {
	PaginationRequest
	Keyword         string `form:"keyword"          binding:"omitempty,max=100"`
	IncludeInactive bool   `form:"include_inactive"`
}

// FutsalResponse 球馆信息响应
type FutsalResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Location    string          `json:"location"`
	Description string          `json:"description,omitempty"`
	Contact     string          `json:"contact,omitempty"`
	IsActive    bool            `json:"is_active"`
	IsVerified  bool            `json:"is_verified"`
	Courts      []CourtResponse `json:"courts,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
