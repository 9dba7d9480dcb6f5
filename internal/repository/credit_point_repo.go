package repository

import (
	"context"

	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
)

// PointTotals 积分汇总
type PointTotals struct {
	Earned   int64
	Redeemed int64
}

// Balance 当前余额
func (t PointTotals) Balance() int64 {
	return t.Earned - t.Redeemed
}

// CreditPointRepository 积分流水数据访问接口
// 流水只由预订事务追加，这里仅提供查询
type CreditPointRepository interface {
	// ListByUser typ 为空时不过滤类型
	ListByUser(ctx context.Context, userID, typ string, offset, limit int) ([]model.CreditPointTransaction, int64, error)
	Totals(ctx context.Context, userID string) (PointTotals, error)
}

type creditPointRepo struct {
	db *gorm.DB
}

// NewCreditPointRepo 创建 CreditPointRepository 实例
func NewCreditPointRepo(db *gorm.DB) CreditPointRepository {
	return &creditPointRepo{db: db}
}

func (r *creditPointRepo) ListByUser(ctx context.Context, userID, typ string, offset, limit int) ([]model.CreditPointTransaction, int64, error) {
	var txs []model.CreditPointTransaction
	var total int64

	db := r.db.WithContext(ctx).
		Model(&model.CreditPointTransaction{}).
		Where("user_id = ?", userID)
	if typ != "" {
		db = db.Where("type = ?", typ)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (r *creditPointRepo) Totals(ctx context.Context, userID string) (PointTotals, error) {
	return sumPoints(r.db.WithContext(ctx), userID)
}

// sumPoints 在数据库中汇总获得/兑换积分，可在事务内调用
func sumPoints(db *gorm.DB, userID string) (PointTotals, error) {
	var row struct {
		Earned   int64
		Redeemed int64
	}
	err := db.Model(&model.CreditPointTransaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS earned, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS redeemed",
			model.CreditTypeEarned, model.CreditTypeRedeemed,
		).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return PointTotals{}, err
	}
	return PointTotals{Earned: row.Earned, Redeemed: row.Redeemed}, nil
}
