package registration

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Registration
//
// No duplicate check happens here; that is the validator's job. The unique
// index still rejects a raced duplicate, surfaced as gorm.ErrDuplicatedKey.
func (r *Repository) Create(reg *Registration) error {
	return r.DB.Create(reg).Error
}

// ===========================
// 🔢 Count registrations for an email on an event date (duplicate check)
func (r *Repository) CountByEmailAndDate(email string, eventDate time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&Registration{}).
		Where("email = ? AND event_date = ?", email, eventDate).
		Count(&count).Error
	return count, err
}

// ===========================
// 📄 List registrations, newest first
//
// id breaks ties between rows created within the same instant so the
// ordering is deterministic.
func (r *Repository) List(filters ListFilters) ([]Registration, error) {
	regs := []Registration{}

	query := r.DB.Model(&Registration{})
	if filters.EventDate != nil {
		query = query.Where("event_date = ?", *filters.EventDate)
	}
	if filters.EventID != nil {
		query = query.Where("event_id = ?", *filters.EventID)
	}

	err := query.Order("created_at DESC").Order("id DESC").Find(&regs).Error
	return regs, err
}

// ===========================
// 🔢 Count registrations for an event (participant banner)
func (r *Repository) CountByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&Registration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
