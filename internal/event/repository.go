package event

import (
	"errors"
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
// 🎯 Create Event
func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

// ===========================
// 🔍 Get Event By ID
//
// A missing event is not an error: callers get (nil, nil) and must handle
// absence themselves, e.g. a listing filtered on a stale event id.
func (r *Repository) GetByID(id uint) (*Event, error) {
	var e Event
	err := r.DB.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📆 List Active Events (registration window contains today)
func (r *Repository) ListActive(today time.Time) ([]Event, error) {
	events := []Event{}
	err := r.DB.
		Where("registration_start_date <= ? AND registration_end_date >= ?", today, today).
		Find(&events).Error
	return events, err
}

// ===========================
// 📆 Active Events filtered by category
func (r *Repository) ListActiveByCategory(category string, today time.Time) ([]Event, error) {
	events := []Event{}
	err := r.DB.
		Where("category = ? AND registration_start_date <= ? AND registration_end_date >= ?", category, today, today).
		Find(&events).Error
	return events, err
}

// ===========================
// 📆 Active Events filtered by category and event date
func (r *Repository) ListActiveByCategoryAndDate(category string, date, today time.Time) ([]Event, error) {
	events := []Event{}
	err := r.DB.
		Where("category = ? AND event_date = ? AND registration_start_date <= ? AND registration_end_date >= ?",
			category, date, today, today).
		Find(&events).Error
	return events, err
}

// ===========================
// 🔢 Distinct event dates among active events of a category
func (r *Repository) DistinctDatesForCategory(category string, today time.Time) ([]time.Time, error) {
	dates := []time.Time{}
	err := r.DB.Model(&Event{}).
		Distinct().
		Where("category = ? AND registration_start_date <= ? AND registration_end_date >= ?", category, today, today).
		Pluck("event_date", &dates).Error
	return dates, err
}

// ===========================
// 🔢 Distinct categories among active events
func (r *Repository) DistinctCategories(today time.Time) ([]string, error) {
	categories := []string{}
	err := r.DB.Model(&Event{}).
		Distinct().
		Where("registration_start_date <= ? AND registration_end_date >= ?", today, today).
		Pluck("category", &categories).Error
	return categories, err
}

// ===========================
// 📄 List All Events (admin view, newest event date first)
func (r *Repository) ListAll() ([]Event, error) {
	events := []Event{}
	err := r.DB.Order("event_date DESC").Find(&events).Error
	return events, err
}

// ===========================
// 🔢 All distinct event dates, newest first (admin filter dropdown)
func (r *Repository) AllDistinctDates() ([]time.Time, error) {
	dates := []time.Time{}
	err := r.DB.Model(&Event{}).
		Distinct().
		Order("event_date DESC").
		Pluck("event_date", &dates).Error
	return dates, err
}

// ===========================
// 📄 Events on a given date, with no active-window filter so the admin
// view also shows historical events
func (r *Repository) ListByDate(date time.Time) ([]Event, error) {
	events := []Event{}
	err := r.DB.Where("event_date = ?", date).Find(&events).Error
	return events, err
}
