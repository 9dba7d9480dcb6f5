package dto

import "github.com/shopspring/decimal"

// ── 预订模块 DTO ──

// CreateBookingRequest 创建预订请求
type CreateBookingRequest struct {
	SlotID      string `json:"slot_id"      binding:"required,uuid"`
	Date        string `json:"date"         binding:"required,datetime=2006-01-02"`
	PaymentType string `json:"payment_type" binding:"required,oneof=point cash online"`
}

// RescheduleBookingRequest 改期请求
type RescheduleBookingRequest struct {
	SlotID string `json:"slot_id" binding:"required,uuid"`
	Date   string `json:"date"    binding:"required,datetime=2006-01-02"`
}

// BookingListRequest 个人预订历史查询参数
type BookingListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=booked completed cancelled rescheduled"`
}

// AdminBookingListRequest 管理员预订查询参数
type AdminBookingListRequest struct {
	PaginationRequest
	CourtID string `form:"court_id" binding:"omitempty,uuid"`
	Date    string `form:"date"     binding:"omitempty,datetime=2006-01-02"`
	Status  string `form:"status"   binding:"omitempty,oneof=booked completed cancelled rescheduled"`
}

// ExportBookingRequest 预订导出查询参数
type ExportBookingRequest struct {
	CourtID string `form:"court_id" binding:"omitempty,uuid"`
	From    string `form:"from"     binding:"required,datetime=2006-01-02"`
	To      string `form:"to"       binding:"required,datetime=2006-01-02"`
}

// BookingResponse 预订信息响应
type BookingResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	SlotID      string          `json:"slot_id"`
	CourtID     string          `json:"court_id"`
	Date        string          `json:"date"`
	Session     string          `json:"session,omitempty"`
	Status      string          `json:"status"`
	PaymentType string          `json:"payment_type"`
	Amount      decimal.Decimal `json:"amount"`
	Points      int64           `json:"points"`
	CancelledAt string          `json:"cancelled_at,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
