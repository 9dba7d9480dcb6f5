package service

import (
	"context"

	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
)

// CreditPointService 积分业务接口
// 流水由预订流程写入，这里只读
type CreditPointService interface {
	List(ctx context.Context, userID string, req *dto.CreditPointListRequest) ([]dto.CreditPointResponse, int64, error)
	// Summary 实时汇总积分，balance = earned - redeemed
	Summary(ctx context.Context, userID string) (*dto.CreditPointSummaryResponse, error)
}

type creditPointService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCreditPointService 创建 CreditPointService 实例
func NewCreditPointService(repo *repository.Repository, logger *zap.Logger) CreditPointService {
	return &creditPointService{repo: repo, logger: logger}
}

func (s *creditPointService) List(ctx context.Context, userID string, req *dto.CreditPointListRequest) ([]dto.CreditPointResponse, int64, error) {
	txs, total, err := s.repo.CreditPoint.ListByUser(ctx, userID, req.Type, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("查询积分流水失败", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CreditPointResponse, 0, len(txs))
	for i := range txs {
		result = append(result, toCreditPointResponse(&txs[i]))
	}
	return result, total, nil
}

func (s *creditPointService) Summary(ctx context.Context, userID string) (*dto.CreditPointSummaryResponse, error) {
	totals, err := s.repo.CreditPoint.Totals(ctx, userID)
	if err != nil {
		s.logger.Error("汇总积分失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &dto.CreditPointSummaryResponse{
		Earned:   totals.Earned,
		Redeemed: totals.Redeemed,
		Balance:  totals.Balance(),
	}, nil
}

func toCreditPointResponse(t *model.CreditPointTransaction) dto.CreditPointResponse {
	return dto.CreditPointResponse{
		ID:        t.TransactionID,
		BookingID: t.BookingID,
		Amount:    t.Amount,
		Type:      t.Type,
		Session:   t.Session,
		Date:      formatDate(t.Date),
		CreatedAt: formatTime(t.CreatedAt),
	}
}
