package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
)

func setupTestSlotService() (SlotService, *mockRepos) {
	repo, mocks := newMockRepos()
	mocks.futsals.futsals["futsal-1"] = &model.Futsal{FutsalID: "futsal-1", Name: "Arena", Slug: "arena", IsActive: true}
	mocks.courts.courts["court-1"] = &model.Court{CourtID: "court-1", FutsalID: "futsal-1", Title: "Court 1", Type: model.CourtTypeIndoor}
	mocks.courts.courts["court-2"] = &model.Court{CourtID: "court-2", FutsalID: "futsal-1", Title: "Court 2", Type: model.CourtTypeOutdoor}
	return NewSlotService(repo, zap.NewNop()), mocks
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func slotReq(start, end string) *dto.CreateSlotRequest {
	return &dto.CreateSlotRequest{
		CourtID:     "court-1",
		Title:       "Session",
		StartTime:   start,
		EndTime:     end,
		Price:       price(1000),
		CreditPoint: 10,
	}
}

// ── Create 测试 ──

func TestSlotService_Create_Success(t *testing.T) {
	svc, _ := setupTestSlotService()

	slot, err := svc.Create(context.Background(), slotReq("06:00", "07:00"), "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if slot.StartTime != "06:00" || slot.EndTime != "07:00" || !slot.IsActive {
		t.Errorf("场次字段不正确: %+v", slot)
	}
}

func TestSlotService_Create_EndBeforeStart(t *testing.T) {
	svc, _ := setupTestSlotService()

	for _, tc := range [][2]string{{"07:00", "06:00"}, {"08:00", "08:00"}} {
		_, err := svc.Create(context.Background(), slotReq(tc[0], tc[1]), "admin-001")
		if !errors.Is(err, ErrSlotInvalidWindow) {
			t.Errorf("%s-%s 期望 ErrSlotInvalidWindow，实际=%v", tc[0], tc[1], err)
		}
	}
}

func TestSlotService_Create_NotHourAligned(t *testing.T) {
	svc, _ := setupTestSlotService()

	for _, tc := range [][2]string{{"06:30", "07:00"}, {"6:00", "07:00"}, {"06:00", "24:00"}} {
		_, err := svc.Create(context.Background(), slotReq(tc[0], tc[1]), "admin-001")
		if !errors.Is(err, ErrSlotInvalidTime) {
			t.Errorf("%s-%s 期望 ErrSlotInvalidTime，实际=%v", tc[0], tc[1], err)
		}
	}
}

func TestSlotService_Create_PriceAndCreditMinimum(t *testing.T) {
	svc, _ := setupTestSlotService()
	ctx := context.Background()

	req := slotReq("06:00", "07:00")
	low := decimal.RequireFromString("99.99")
	req.Price = &low
	if _, err := svc.Create(ctx, req, "admin-001"); !errors.Is(err, ErrSlotPriceTooLow) {
		t.Errorf("价格 99.99 期望 ErrSlotPriceTooLow，实际=%v", err)
	}

	req = slotReq("06:00", "07:00")
	req.Price = price(100)
	if _, err := svc.Create(ctx, req, "admin-001"); err != nil {
		t.Errorf("价格 100 应允许: %v", err)
	}

	req = slotReq("07:00", "08:00")
	req.CreditPoint = 9
	if _, err := svc.Create(ctx, req, "admin-001"); !errors.Is(err, ErrSlotCreditTooLow) {
		t.Errorf("积分 9 期望 ErrSlotCreditTooLow，实际=%v", err)
	}
}

func TestSlotService_Create_CourtNotFound(t *testing.T) {
	svc, _ := setupTestSlotService()
	req := slotReq("06:00", "07:00")
	req.CourtID = "missing"
	if _, err := svc.Create(context.Background(), req, "admin-001"); !errors.Is(err, ErrCourtNotFound) {
		t.Errorf("期望 ErrCourtNotFound，实际=%v", err)
	}
}

// ── Update 测试 ──

func TestSlotService_Update_KeepsTimeWindow(t *testing.T) {
	svc, mocks := setupTestSlotService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, slotReq("18:00", "19:00"), "admin-001")
	title := "Evening"
	credit := int64(25)
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateSlotRequest{Title: &title, Price: price(1500), CreditPoint: &credit}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.StartTime != "18:00" || updated.EndTime != "19:00" {
		t.Errorf("时间窗口不应变化，实际 %s-%s", updated.StartTime, updated.EndTime)
	}
	stored := mocks.slots.slots[created.ID]
	if stored.Title != "Evening" || stored.CreditPoint != 25 || !stored.Price.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("可编辑字段未更新: %+v", stored)
	}
}

func TestSlotService_Update_RejectsLowPrice(t *testing.T) {
	svc, _ := setupTestSlotService()
	created, _ := svc.Create(context.Background(), slotReq("18:00", "19:00"), "admin-001")
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateSlotRequest{Price: price(50)}, "admin-001"); !errors.Is(err, ErrSlotPriceTooLow) {
		t.Errorf("期望 ErrSlotPriceTooLow，实际=%v", err)
	}
}

// ── List / Available 测试 ──

func TestSlotService_List_OnlyCourt(t *testing.T) {
	svc, _ := setupTestSlotService()
	ctx := context.Background()

	svc.Create(ctx, slotReq("06:00", "07:00"), "admin-001")
	other := slotReq("06:00", "07:00")
	other.CourtID = "court-2"
	svc.Create(ctx, other, "admin-001")

	slots, err := svc.List(ctx, &dto.SlotListRequest{CourtID: "court-1"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(slots) != 1 || slots[0].CourtID != "court-1" {
		t.Errorf("期望只返回 court-1 的场次，实际 %d 条", len(slots))
	}
}

func TestSlotService_Available(t *testing.T) {
	svc, mocks := setupTestSlotService()
	ctx := context.Background()

	morning, _ := svc.Create(ctx, slotReq("06:00", "07:00"), "admin-001")
	svc.Create(ctx, slotReq("07:00", "08:00"), "admin-001")

	date := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	mocks.bookings.bookings["b-1"] = &model.Booking{
		BookingID: "b-1", SlotID: morning.ID, CourtID: "court-1",
		BookingDate: toDate(date), Status: model.BookingStatusBooked,
	}

	resp, err := svc.Available(ctx, &dto.AvailableSlotRequest{CourtID: "court-1", Date: "2030-06-01"})
	if err != nil {
		t.Fatalf("Available 应成功: %v", err)
	}
	if resp.Closed || len(resp.Slots) != 1 || resp.Slots[0].StartTime != "07:00" {
		t.Errorf("期望仅剩 07:00 场次，实际 %+v", resp)
	}

	mocks.closings.days["c-1"] = &model.ClosingDay{ClosingDayID: "c-1", CourtID: "court-1", Date: toDate(date), Reason: "Maintenance"}
	resp, _ = svc.Available(ctx, &dto.AvailableSlotRequest{CourtID: "court-1", Date: "2030-06-01"})
	if !resp.Closed || resp.Reason != "Maintenance" || len(resp.Slots) != 0 {
		t.Errorf("闭馆日应返回 closed=true 且无场次，实际 %+v", resp)
	}
}

func TestSlotService_Available_CourtOrVenueRemoved(t *testing.T) {
	svc, mocks := setupTestSlotService()
	ctx := context.Background()
	svc.Create(ctx, slotReq("06:00", "07:00"), "admin-001")
	req := &dto.AvailableSlotRequest{CourtID: "court-1", Date: "2030-06-01"}

	mocks.futsals.futsals["futsal-1"].IsActive = false
	if _, err := svc.Available(ctx, req); !errors.Is(err, ErrCourtNotFound) {
		t.Errorf("球馆停用时期望 ErrCourtNotFound，实际 %v", err)
	}

	mocks.futsals.futsals["futsal-1"].IsActive = true
	if resp, err := svc.Available(ctx, req); err != nil || len(resp.Slots) != 1 {
		t.Fatalf("球馆恢复后应返回 1 个场次，实际 %+v, %v", resp, err)
	}

	mocks.futsals.Delete(ctx, "futsal-1", "admin")
	if _, err := svc.Available(ctx, req); !errors.Is(err, ErrCourtNotFound) {
		t.Errorf("球馆删除后期望 ErrCourtNotFound，实际 %v", err)
	}

	if _, err := svc.Available(ctx, &dto.AvailableSlotRequest{CourtID: "court-missing", Date: "2030-06-01"}); !errors.Is(err, ErrCourtNotFound) {
		t.Errorf("场地不存在时期望 ErrCourtNotFound，实际 %v", err)
	}
}
