package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User        UserRepository
	Futsal      FutsalRepository
	Court       CourtRepository
	Slot        SlotRepository
	ClosingDay  ClosingDayRepository
	Banner      BannerRepository
	Contact     ContactRepository
	CreditPoint CreditPointRepository
	Booking     BookingRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Futsal:      NewFutsalRepo(db),
		Court:       NewCourtRepo(db),
		Slot:        NewSlotRepo(db),
		ClosingDay:  NewClosingDayRepo(db),
		Banner:      NewBannerRepo(db),
		Contact:     NewContactRepo(db),
		CreditPoint: NewCreditPointRepo(db),
		Booking:     NewBookingRepo(db),
	}
}
