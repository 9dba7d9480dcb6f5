package dto

// ── 积分模块 DTO ──

// CreditPointListRequest 积分流水查询参数
type CreditPointListRequest struct {
	PaginationRequest
	Type string `form:"type" binding:"omitempty,oneof=earned redeemed"`
}

// CreditPointResponse 积分流水响应
type CreditPointResponse struct {
	ID        string  `json:"id"`
	BookingID *string `json:"booking_id,omitempty"`
	Amount    int64   `json:"amount"`
	Type      string  `json:"type"`
	Session   string  `json:"session,omitempty"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"created_at"`
}

// CreditPointSummaryResponse 积分汇总（balance = earned - redeemed）
type CreditPointSummaryResponse struct {
	Earned   int64 `json:"earned"`
	Redeemed int64 `json:"redeemed"`
	Balance  int64 `json:"balance"`
}
