package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
)

func setupTestCourtService() (CourtService, *mockRepos) {
	repo, mocks := newMockRepos()
	mocks.futsals.futsals["futsal-a"] = &model.Futsal{FutsalID: "futsal-a", Name: "A", Slug: "a", IsActive: true}
	mocks.futsals.futsals["futsal-b"] = &model.Futsal{FutsalID: "futsal-b", Name: "B", Slug: "b", IsActive: true}
	return NewCourtService(repo, zap.NewNop()), mocks
}

func TestCourtService_Create_FutsalNotFound(t *testing.T) {
	svc, _ := setupTestCourtService()
	_, err := svc.Create(context.Background(), &dto.CreateCourtRequest{
		FutsalID: "missing", Title: "Court 1", Type: model.CourtTypeIndoor,
	}, "admin-001")
	if !errors.Is(err, ErrFutsalNotFound) {
		t.Errorf("期望 ErrFutsalNotFound，实际=%v", err)
	}
}

func TestCourtService_List_FilterByFutsal(t *testing.T) {
	svc, _ := setupTestCourtService()
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateCourtRequest{FutsalID: "futsal-a", Title: "A1", Type: model.CourtTypeIndoor}, "admin-001")
	svc.Create(ctx, &dto.CreateCourtRequest{FutsalID: "futsal-a", Title: "A2", Type: model.CourtTypeOutdoor}, "admin-001")
	svc.Create(ctx, &dto.CreateCourtRequest{FutsalID: "futsal-b", Title: "B1", Type: model.CourtTypeIndoor}, "admin-001")

	courts, err := svc.List(ctx, &dto.CourtListRequest{FutsalID: "futsal-a"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(courts) != 2 {
		t.Fatalf("期望 2 个场地，实际=%d", len(courts))
	}
	for _, c := range courts {
		if c.FutsalID != "futsal-a" {
			t.Errorf("返回了其他球馆的场地: %s", c.FutsalID)
		}
	}
}

func TestCourtService_UpdateAndDelete(t *testing.T) {
	svc, _ := setupTestCourtService()
	ctx := context.Background()

	court, _ := svc.Create(ctx, &dto.CreateCourtRequest{FutsalID: "futsal-a", Title: "A1", Type: model.CourtTypeIndoor}, "admin-001")
	typ := model.CourtTypeOutdoor
	updated, err := svc.Update(ctx, court.ID, &dto.UpdateCourtRequest{Type: &typ}, "admin-001")
	if err != nil || updated.Type != model.CourtTypeOutdoor {
		t.Fatalf("Update 应成功: %v", err)
	}

	if err := svc.Delete(ctx, court.ID, "admin-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(ctx, court.ID); !errors.Is(err, ErrCourtNotFound) {
		t.Errorf("删除后期望 ErrCourtNotFound，实际=%v", err)
	}
}
