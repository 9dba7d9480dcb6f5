package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/internal/repository"
	pkgerrors "futsal-booking/backend/pkg/errors"
)

// ── Mock 聚合 ──

type mockRepos struct {
	users    *mockUserRepo
	futsals  *mockFutsalRepo
	courts   *mockCourtRepo
	slots    *mockSlotRepo
	closings *mockClosingDayRepo
	banners  *mockBannerRepo
	contacts *mockContactRepo
	ledger   *mockCreditPointRepo
	bookings *mockBookingRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		users:    &mockUserRepo{users: make(map[string]*model.User)},
		futsals:  &mockFutsalRepo{futsals: make(map[string]*model.Futsal)},
		courts:   &mockCourtRepo{courts: make(map[string]*model.Court)},
		slots:    &mockSlotRepo{slots: make(map[string]*model.Slot)},
		closings: &mockClosingDayRepo{days: make(map[string]*model.ClosingDay)},
		banners:  &mockBannerRepo{banners: make(map[string]*model.Banner)},
		contacts: &mockContactRepo{},
		ledger:   &mockCreditPointRepo{},
	}
	m.bookings = &mockBookingRepo{bookings: make(map[string]*model.Booking), slots: m.slots, ledger: m.ledger}

	repo := &repository.Repository{
		User:        m.users,
		Futsal:      m.futsals,
		Court:       m.courts,
		Slot:        m.slots,
		ClosingDay:  m.closings,
		Banner:      m.banners,
		Contact:     m.contacts,
		CreditPoint: m.ledger,
		Booking:     m.bookings,
	}
	return repo, m
}

var mockSeq int

func nextID(prefix string) string {
	mockSeq++
	return fmt.Sprintf("%s-%03d", prefix, mockSeq)
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		user.UserID = nextID("user")
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) CreateAdminIfAbsent(ctx context.Context, admin *model.User) error {
	for _, u := range m.users {
		if u.RoleTitle == model.RoleAdmin {
			return pkgerrors.ErrAdminExists
		}
	}
	admin.RoleTitle = model.RoleAdmin
	return m.Create(ctx, admin)
}

// ── Mock FutsalRepository ──

type mockFutsalRepo struct {
	futsals map[string]*model.Futsal
}

func (m *mockFutsalRepo) Create(_ context.Context, f *model.Futsal) error {
	if f.FutsalID == "" {
		f.FutsalID = nextID("futsal")
	}
	m.futsals[f.FutsalID] = f
	return nil
}

func (m *mockFutsalRepo) GetByID(_ context.Context, id string) (*model.Futsal, error) {
	if f, ok := m.futsals[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFutsalRepo) GetBySlug(_ context.Context, slug string) (*model.Futsal, error) {
	for _, f := range m.futsals {
		if f.Slug == slug {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFutsalRepo) SlugTaken(_ context.Context, slug, excludeID string) (bool, error) {
	for _, f := range m.futsals {
		if f.Slug == slug && f.FutsalID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFutsalRepo) List(_ context.Context, filter repository.FutsalFilter, offset, limit int) ([]model.Futsal, int64, error) {
	var result []model.Futsal
	for _, f := range m.futsals {
		if !filter.IncludeInactive && !f.IsActive {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(filter.Keyword)) {
			continue
		}
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockFutsalRepo) Update(_ context.Context, f *model.Futsal) error {
	m.futsals[f.FutsalID] = f
	return nil
}

func (m *mockFutsalRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.futsals, id)
	return nil
}

// ── Mock CourtRepository ──

type mockCourtRepo struct {
	courts map[string]*model.Court
}

func (m *mockCourtRepo) Create(_ context.Context, c *model.Court) error {
	if c.CourtID == "" {
		c.CourtID = nextID("court")
	}
	m.courts[c.CourtID] = c
	return nil
}

func (m *mockCourtRepo) GetByID(_ context.Context, id string) (*model.Court, error) {
	if c, ok := m.courts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourtRepo) List(_ context.Context, futsalID string) ([]model.Court, error) {
	var result []model.Court
	for _, c := range m.courts {
		if futsalID == "" || c.FutsalID == futsalID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCourtRepo) Update(_ context.Context, c *model.Court) error {
	m.courts[c.CourtID] = c
	return nil
}

func (m *mockCourtRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.courts, id)
	return nil
}

// ── Mock SlotRepository ──

type mockSlotRepo struct {
	slots map[string]*model.Slot
}

func (m *mockSlotRepo) Create(_ context.Context, s *model.Slot) error {
	if s.SlotID == "" {
		s.SlotID = nextID("slot")
	}
	m.slots[s.SlotID] = s
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.Slot, error) {
	if s, ok := m.slots[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) ListByCourt(_ context.Context, courtID string, includeInactive bool) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.CourtID == courtID && (includeInactive || s.IsActive) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

// Update 与 GORM 实现一致，只写可编辑字段
func (m *mockSlotRepo) Update(_ context.Context, s *model.Slot) error {
	stored, ok := m.slots[s.SlotID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Title = s.Title
	stored.Price = s.Price
	stored.CreditPoint = s.CreditPoint
	stored.IsActive = s.IsActive
	return nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.slots, id)
	return nil
}

// ── Mock ClosingDayRepository ──

type mockClosingDayRepo struct {
	days map[string]*model.ClosingDay
}

func (m *mockClosingDayRepo) Create(_ context.Context, d *model.ClosingDay) error {
	for _, existing := range m.days {
		if existing.CourtID == d.CourtID && dateEqual(existing.Date, d.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if d.ClosingDayID == "" {
		d.ClosingDayID = nextID("closing")
	}
	m.days[d.ClosingDayID] = d
	return nil
}

func (m *mockClosingDayRepo) GetByID(_ context.Context, id string) (*model.ClosingDay, error) {
	if d, ok := m.days[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClosingDayRepo) GetByCourtAndDate(_ context.Context, courtID string, date datatypes.Date) (*model.ClosingDay, error) {
	for _, d := range m.days {
		if d.CourtID == courtID && dateEqual(d.Date, date) {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClosingDayRepo) ListByCourt(_ context.Context, courtID string) ([]model.ClosingDay, error) {
	var result []model.ClosingDay
	for _, d := range m.days {
		if d.CourtID == courtID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return dateBefore(result[i].Date, result[j].Date) })
	return result, nil
}

func (m *mockClosingDayRepo) Delete(_ context.Context, id string) error {
	delete(m.days, id)
	return nil
}

// ── Mock BannerRepository ──

type mockBannerRepo struct {
	banners       map[string]*model.Banner
	listActiveHit int
}

func (m *mockBannerRepo) Create(_ context.Context, b *model.Banner) error {
	if b.BannerID == "" {
		b.BannerID = nextID("banner")
	}
	m.banners[b.BannerID] = b
	return nil
}

func (m *mockBannerRepo) GetByID(_ context.Context, id string) (*model.Banner, error) {
	if b, ok := m.banners[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBannerRepo) List(_ context.Context, offset, limit int) ([]model.Banner, int64, error) {
	var result []model.Banner
	for _, b := range m.banners {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].BannerID < result[j].BannerID })
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockBannerRepo) ListActive(_ context.Context) ([]model.Banner, error) {
	m.listActiveHit++
	var result []model.Banner
	for _, b := range m.banners {
		if b.IsActive {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBannerRepo) Update(_ context.Context, b *model.Banner) error {
	m.banners[b.BannerID] = b
	return nil
}

func (m *mockBannerRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.banners, id)
	return nil
}

// ── Mock ContactRepository ──

type mockContactRepo struct {
	msgs []model.ContactMessage
}

func (m *mockContactRepo) Create(_ context.Context, msg *model.ContactMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = nextID("msg")
	}
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *mockContactRepo) List(_ context.Context, offset, limit int) ([]model.ContactMessage, int64, error) {
	return page(m.msgs, offset, limit), int64(len(m.msgs)), nil
}

// ── Mock CreditPointRepository ──

type mockCreditPointRepo struct {
	txs []model.CreditPointTransaction
}

func (m *mockCreditPointRepo) add(tx *model.CreditPointTransaction) {
	if tx.TransactionID == "" {
		tx.TransactionID = nextID("cp")
	}
	m.txs = append(m.txs, *tx)
}

func (m *mockCreditPointRepo) ListByUser(_ context.Context, userID, typ string, offset, limit int) ([]model.CreditPointTransaction, int64, error) {
	var result []model.CreditPointTransaction
	for i := len(m.txs) - 1; i >= 0; i-- {
		tx := m.txs[i]
		if tx.UserID == userID && (typ == "" || tx.Type == typ) {
			result = append(result, tx)
		}
	}
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockCreditPointRepo) Totals(_ context.Context, userID string) (repository.PointTotals, error) {
	var t repository.PointTotals
	for _, tx := range m.txs {
		if tx.UserID != userID {
			continue
		}
		switch tx.Type {
		case model.CreditTypeEarned:
			t.Earned += tx.Amount
		case model.CreditTypeRedeemed:
			t.Redeemed += tx.Amount
		}
	}
	return t, nil
}

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	bookings map[string]*model.Booking
	slots    *mockSlotRepo
	ledger   *mockCreditPointRepo
}

func (m *mockBookingRepo) occupied(slotID string, date datatypes.Date, excludeID string) bool {
	for _, b := range m.bookings {
		if b.BookingID != excludeID && b.SlotID == slotID && dateEqual(b.BookingDate, date) && b.IsActive() {
			return true
		}
	}
	return false
}

func (m *mockBookingRepo) CreateWithLedger(ctx context.Context, b *model.Booking, entry *model.CreditPointTransaction) error {
	if m.occupied(b.SlotID, b.BookingDate, "") {
		return pkgerrors.ErrSlotAlreadyBooked
	}
	if entry != nil && entry.Type == model.CreditTypeRedeemed {
		totals, _ := m.ledger.Totals(ctx, b.UserID)
		if totals.Balance() < entry.Amount {
			return pkgerrors.ErrInsufficientPoints
		}
	}
	if b.BookingID == "" {
		b.BookingID = nextID("booking")
	}
	stored := *b
	m.bookings[b.BookingID] = &stored
	if entry != nil {
		entry.BookingID = &b.BookingID
		m.ledger.add(entry)
	}
	return nil
}

func (m *mockBookingRepo) CancelWithLedger(ctx context.Context, id string, entry *model.CreditPointTransaction) (*model.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if !b.IsActive() {
		return nil, pkgerrors.ErrBookingNotActive
	}
	now := time.Now()
	b.Status = model.BookingStatusCancelled
	b.CancelledAt = &now
	if entry != nil {
		if entry.Type == model.CreditTypeRedeemed {
			totals, _ := m.ledger.Totals(ctx, b.UserID)
			if totals.Balance() < entry.Amount {
				entry.Amount = totals.Balance()
			}
		}
		if entry.Amount > 0 {
			entry.BookingID = &b.BookingID
			m.ledger.add(entry)
		}
	}
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepo) Reschedule(_ context.Context, id string, slot *model.Slot, date datatypes.Date) (*model.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if !b.IsActive() {
		return nil, pkgerrors.ErrBookingNotActive
	}
	if m.occupied(slot.SlotID, date, id) {
		return nil, pkgerrors.ErrSlotAlreadyBooked
	}
	b.SlotID = slot.SlotID
	b.CourtID = slot.CourtID
	b.BookingDate = date
	b.Status = model.BookingStatusRescheduled
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepo) CompletePast(_ context.Context, before datatypes.Date) ([]model.Booking, error) {
	var done []model.Booking
	for _, b := range m.bookings {
		if b.IsActive() && dateBefore(b.BookingDate, before) {
			b.Status = model.BookingStatusCompleted
			done = append(done, *b)
		}
	}
	return done, nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	if s, ok := m.slots.slots[b.SlotID]; ok {
		cp.Slot = s
	}
	return &cp, nil
}

func (m *mockBookingRepo) filter(f repository.BookingFilter) []model.Booking {
	var result []model.Booking
	for _, b := range m.bookings {
		if f.UserID != "" && b.UserID != f.UserID {
			continue
		}
		if f.CourtID != "" && b.CourtID != f.CourtID {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Date != nil && !dateEqual(b.BookingDate, *f.Date) {
			continue
		}
		if f.From != nil && dateBefore(b.BookingDate, *f.From) {
			continue
		}
		if f.To != nil && dateBefore(*f.To, b.BookingDate) {
			continue
		}
		cp := *b
		if s, ok := m.slots.slots[b.SlotID]; ok {
			cp.Slot = s
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return dateBefore(result[i].BookingDate, result[j].BookingDate) })
	return result
}

func (m *mockBookingRepo) List(_ context.Context, f repository.BookingFilter, offset, limit int) ([]model.Booking, int64, error) {
	result := m.filter(f)
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockBookingRepo) ListForExport(_ context.Context, f repository.BookingFilter) ([]model.Booking, error) {
	return m.filter(f), nil
}

func (m *mockBookingRepo) BookedSlotIDs(_ context.Context, courtID string, date datatypes.Date) ([]string, error) {
	var ids []string
	for _, b := range m.bookings {
		if b.CourtID == courtID && dateEqual(b.BookingDate, date) && b.IsActive() {
			ids = append(ids, b.SlotID)
		}
	}
	return ids, nil
}

// ── 通用辅助 ──

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
