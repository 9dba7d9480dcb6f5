package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
)

func setupTestFutsalService() (FutsalService, *mockRepos) {
	repo, mocks := newMockRepos()
	return NewFutsalService(repo, zap.NewNop()), mocks
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Dhuku Futsal Arena":  "dhuku-futsal-arena",
		"  Kick -- Off!! ":    "kick-off",
		"Futsal@Baneshwor#1": "futsal-baneshwor-1",
		"काठमाडौं":            "futsal",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q)=%q，期望 %q", in, got, want)
		}
	}
}

func TestFutsalService_Create_SlugSuffix(t *testing.T) {
	svc, _ := setupTestFutsalService()
	ctx := context.Background()
	req := &dto.CreateFutsalRequest{Name: "Royal Futsal", Location: "Kathmandu"}

	first, err := svc.Create(ctx, req, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	second, err := svc.Create(ctx, req, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	third, _ := svc.Create(ctx, req, "admin-001")

	if first.Slug != "royal-futsal" || second.Slug != "royal-futsal-2" || third.Slug != "royal-futsal-3" {
		t.Errorf("slug 序列不正确: %s %s %s", first.Slug, second.Slug, third.Slug)
	}
	if !first.IsActive || first.IsVerified {
		t.Error("新球馆应启用且未认证")
	}
}

func TestFutsalService_Update_SlugStable(t *testing.T) {
	svc, _ := setupTestFutsalService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateFutsalRequest{Name: "Old Name", Location: "Lalitpur"}, "admin-001")

	name := "New Name"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateFutsalRequest{Name: &name}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Slug != "old-name" {
		t.Errorf("未要求时 slug 不应变化，实际=%s", updated.Slug)
	}

	name = "Newest Name"
	updated, _ = svc.Update(ctx, created.ID, &dto.UpdateFutsalRequest{Name: &name, RegenerateSlug: true}, "admin-001")
	if updated.Slug != "newest-name" {
		t.Errorf("regenerate_slug 时应更新 slug，实际=%s", updated.Slug)
	}
}

func TestFutsalService_List_ActiveOnly(t *testing.T) {
	svc, _ := setupTestFutsalService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateFutsalRequest{Name: "Alpha", Location: "KTM"}, "admin-001")
	svc.Create(ctx, &dto.CreateFutsalRequest{Name: "Beta", Location: "KTM"}, "admin-001")
	inactive := false
	svc.Update(ctx, a.ID, &dto.UpdateFutsalRequest{IsActive: &inactive}, "admin-001")

	list, total, err := svc.List(ctx, &dto.FutsalListRequest{}, false)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].Name != "Beta" {
		t.Errorf("公开列表应只含启用球馆，实际 total=%d", total)
	}

	_, total, _ = svc.List(ctx, &dto.FutsalListRequest{}, true)
	if total != 2 {
		t.Errorf("管理员列表应包含停用球馆，实际 total=%d", total)
	}
}

func TestFutsalService_GetBySlug_NotFound(t *testing.T) {
	svc, _ := setupTestFutsalService()
	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, ErrFutsalNotFound) {
		t.Errorf("期望 ErrFutsalNotFound，实际=%v", err)
	}
}
