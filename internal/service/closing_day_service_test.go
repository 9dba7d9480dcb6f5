package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
)

func setupTestClosingDayService() (ClosingDayService, *mockRepos) {
	repo, mocks := newMockRepos()
	mocks.courts.courts["court-1"] = &model.Court{CourtID: "court-1", FutsalID: "futsal-1", Title: "Court 1"}
	mocks.courts.courts["court-2"] = &model.Court{CourtID: "court-2", FutsalID: "futsal-1", Title: "Court 2"}
	return NewClosingDayService(repo, zap.NewNop()), mocks
}

func TestClosingDayService_Create_Duplicate(t *testing.T) {
	svc, _ := setupTestClosingDayService()
	ctx := context.Background()
	req := &dto.CreateClosingDayRequest{CourtID: "court-1", Date: "2030-01-01", Reason: "New Year"}

	if _, err := svc.Create(ctx, req, "admin-001"); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	if _, err := svc.Create(ctx, req, "admin-001"); !errors.Is(err, ErrClosingDayExists) {
		t.Errorf("重复创建期望 ErrClosingDayExists，实际=%v", err)
	}

	// 其他场地同一天不冲突
	other := *req
	other.CourtID = "court-2"
	if _, err := svc.Create(ctx, &other, "admin-001"); err != nil {
		t.Errorf("其他场地同日应允许: %v", err)
	}
}

func TestClosingDayService_Create_CourtNotFound(t *testing.T) {
	svc, _ := setupTestClosingDayService()
	_, err := svc.Create(context.Background(), &dto.CreateClosingDayRequest{CourtID: "missing", Date: "2030-01-01", Reason: "x"}, "admin-001")
	if !errors.Is(err, ErrCourtNotFound) {
		t.Errorf("期望 ErrCourtNotFound，实际=%v", err)
	}
}

func TestClosingDayService_List_SortedPerCourt(t *testing.T) {
	svc, _ := setupTestClosingDayService()
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateClosingDayRequest{CourtID: "court-1", Date: "2030-03-01", Reason: "b"}, "admin-001")
	svc.Create(ctx, &dto.CreateClosingDayRequest{CourtID: "court-1", Date: "2030-02-01", Reason: "a"}, "admin-001")
	svc.Create(ctx, &dto.CreateClosingDayRequest{CourtID: "court-2", Date: "2030-01-15", Reason: "c"}, "admin-001")

	days, err := svc.List(ctx, "court-1")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("期望 2 条，实际=%d", len(days))
	}
	if days[0].Date != "2030-02-01" || days[1].Date != "2030-03-01" {
		t.Errorf("应按日期升序，实际 %s, %s", days[0].Date, days[1].Date)
	}
}

func TestClosingDayService_Delete(t *testing.T) {
	svc, _ := setupTestClosingDayService()
	ctx := context.Background()

	day, _ := svc.Create(ctx, &dto.CreateClosingDayRequest{CourtID: "court-1", Date: "2030-03-01", Reason: "b"}, "admin-001")
	if err := svc.Delete(ctx, day.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if err := svc.Delete(ctx, day.ID); !errors.Is(err, ErrClosingDayNotFound) {
		t.Errorf("再次删除期望 ErrClosingDayNotFound，实际=%v", err)
	}
}
