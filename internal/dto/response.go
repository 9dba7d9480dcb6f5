package dto

// ── 分页请求 ──

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxPage      = 100000
)

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page  int `form:"page"  binding:"omitempty,min=1,max=100000"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// GetPage 获取页码（含默认值，上限 100000，避免偏移量溢出）
func (p *PaginationRequest) GetPage() int {
	switch {
	case p.Page <= 0:
		return defaultPage
	case p.Page > maxPage:
		return maxPage
	}
	return p.Page
}

// GetLimit 获取每页数量（含默认值，上限 100）
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit <= 0:
		return defaultLimit
	case p.Limit > maxLimit:
		return maxLimit
	}
	return p.Limit
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}
