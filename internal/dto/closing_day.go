package dto

// ── 闭馆日模块 DTO ──

// CreateClosingDayRequest 创建闭馆日请求
type CreateClosingDayRequest struct {
	CourtID string `json:"court_id" binding:"required,uuid"`
	Date    string `json:"date"     binding:"required,datetime=2006-01-02"`
	Reason  string `json:"reason"   binding:"required,min=1,max=200"`
}

// ClosingDayListRequest 闭馆日列表查询参数
type ClosingDayListRequest struct {
	CourtID string `form:"court_id" binding:"required,uuid"`
}

// ClosingDayResponse 闭馆日信息响应
type ClosingDayResponse struct {
	ID        string `json:"id"`
	CourtID   string `json:"court_id"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}
