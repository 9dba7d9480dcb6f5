package dto

// ── 横幅模块 DTO ──

// CreateBannerRequest 创建横幅请求（multipart 表单或 JSON）
type CreateBannerRequest struct {
	Title    string `form:"title"     json:"title"     binding:"required,min=1,max=150"`
	Link     string `form:"link"      json:"link"      binding:"omitempty,url,max=500"`
	ImageURL string `form:"image_url" json:"image_url" binding:"required,url,max=500"`
	IsActive *bool  `form:"is_active" json:"is_active"`
}

// UpdateBannerRequest 更新横幅请求（multipart 表单或 JSON）
type UpdateBannerRequest struct {
	Title    *string `form:"title"     json:"title"     binding:"omitempty,min=1,max=150"`
	Link     *string `form:"link"      json:"link"      binding:"omitempty,url,max=500"`
	ImageURL *string `form:"image_url" json:"image_url" binding:"omitempty,url,max=500"`
	IsActive *bool   `form:"is_active" json:"is_active"`
}

// BannerResponse 横幅信息响应
type BannerResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Link      string `json:"link,omitempty"`
	ImageURL  string `json:"image_url"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
