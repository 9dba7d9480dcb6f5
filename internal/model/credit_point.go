package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 积分流水类型
const (
	CreditTypeEarned   = "earned"
	CreditTypeRedeemed = "redeemed"
)

// CreditPointTransaction 积分流水表 — 对应 credit_point_transactions
// 只追加不修改；余额由流水实时汇总得出
type CreditPointTransaction struct {
	TransactionID string         `gorm:"type:uuid;primaryKey"               json:"transaction_id"`
	UserID        string         `gorm:"type:uuid;not null;index"           json:"user_id"`
	BookingID     *string        `gorm:"type:uuid;index"                    json:"booking_id,omitempty"`
	Amount        int64          `gorm:"not null"                           json:"amount"`
	Type          string         `gorm:"type:varchar(10);not null"          json:"type"` // earned | redeemed
	Session       string         `gorm:"type:varchar(150)"                  json:"session,omitempty"`
	Date          datatypes.Date `gorm:"not null"                           json:"date"`
	CreatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (CreditPointTransaction) TableName() string { return "credit_point_transactions" }

func (t *CreditPointTransaction) BeforeCreate(*gorm.DB) error {
	ensureID(&t.TransactionID)
	return nil
}

// Signed 带符号的积分变化：获得为正，兑换为负
func (t *CreditPointTransaction) Signed() int64 {
	if t.Type == CreditTypeRedeemed {
		return -t.Amount
	}
	return t.Amount
}
