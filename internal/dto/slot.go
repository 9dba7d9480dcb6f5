package dto

import "github.com/shopspring/decimal"

// ── 场次模块 DTO ──

// CreateSlotRequest 创建场次请求
// 时间为 24 小时制整点，例如 "06:00"
type CreateSlotRequest struct {
	CourtID     string           `json:"court_id"     binding:"required,uuid"`
	Title       string           `json:"title"        binding:"required,min=1,max=100"`
	StartTime   string           `json:"start_time"   binding:"required,hourtime"`
	EndTime     string           `json:"end_time"     binding:"required,hourtime"`
	Price       *decimal.Decimal `json:"price"        binding:"required"`
	CreditPoint int64            `json:"credit_point" binding:"required,min=10"`
}

// UpdateSlotRequest 更新场次请求
// 不接受 start_time / end_time，原时间窗口保持不变
type UpdateSlotRequest struct {
	Title       *string          `json:"title"        binding:"omitempty,min=1,max=100"`
	Price       *decimal.Decimal `json:"price"`
	CreditPoint *int64           `json:"credit_point" binding:"omitempty,min=10"`
	IsActive    *bool            `json:"is_active"`
}

// SlotListRequest 场次列表查询参数
type SlotListRequest struct {
	CourtID         string `form:"court_id"         binding:"required,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}

// AvailableSlotRequest 可预订场次查询参数
type AvailableSlotRequest struct {
	CourtID string `form:"court_id" binding:"required,uuid"`
	Date    string `form:"date"     binding:"required,datetime=2006-01-02"`
}

// SlotResponse 场次信息响应
type SlotResponse struct {
	ID          string          `json:"id"`
	CourtID     string          `json:"court_id"`
	Title       string          `json:"title"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	Price       decimal.Decimal `json:"price"`
	CreditPoint int64           `json:"credit_point"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// AvailableSlotsResponse 某日可预订场次
// 当天为闭馆日时 closed=true，slots 为空
type AvailableSlotsResponse struct {
	CourtID string         `json:"court_id"`
	Date    string         `json:"date"`
	Closed  bool           `json:"closed"`
	Reason  string         `json:"reason,omitempty"`
	Slots   []SlotResponse `json:"slots"`
}
