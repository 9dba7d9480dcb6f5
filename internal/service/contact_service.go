package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
)

// ContactService 联系我们业务接口
type ContactService interface {
	Create(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.ContactResponse, int64, error)
}

type contactService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContactService 创建 ContactService 实例
func NewContactService(repo *repository.Repository, logger *zap.Logger) ContactService {
	return &contactService{repo: repo, logger: logger}
}

func (s *contactService) Create(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	msg := &model.ContactMessage{
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if err := s.repo.Contact.Create(ctx, msg); err != nil {
		s.logger.Error("保存留言失败", zap.Error(err))
		return nil, err
	}
	s.logger.Info("收到联系留言", zap.String("message_id", msg.MessageID), zap.String("subject", msg.Subject))
	return toContactResponse(msg), nil
}

func (s *contactService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.ContactResponse, int64, error) {
	msgs, total, err := s.repo.Contact.List(ctx, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("列出留言失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ContactResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, *toContactResponse(&msgs[i]))
	}
	return result, total, nil
}

func toContactResponse(m *model.ContactMessage) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        m.MessageID,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: formatTime(m.CreatedAt),
	}
}
