package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Event{}))
	return db
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return DateOnly(d)
}

func newTestEvent(name, category, eventDate, regStart, regEnd string) *Event {
	return &Event{
		EventName:             name,
		Category:              category,
		EventDate:             date(eventDate),
		RegistrationStartDate: date(regStart),
		RegistrationEndDate:   date(regEnd),
	}
}

// The registration window defines "active", independent of whether the
// event date itself has passed.
func TestListActiveWindow(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestEvent("Spring Hackathon", "Hackathon", "2026-05-01", "2026-01-01", "2026-04-30")))

	active, err := repo.ListActive(date("2026-03-01"))
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Spring Hackathon", active[0].EventName)

	// Window boundaries are inclusive on both ends.
	active, err = repo.ListActive(date("2026-01-01"))
	require.NoError(t, err)
	require.Len(t, active, 1)
	active, err = repo.ListActive(date("2026-04-30"))
	require.NoError(t, err)
	require.Len(t, active, 1)

	// After the window closes the event disappears from the active list.
	active, err = repo.ListActive(date("2026-05-02"))
	require.NoError(t, err)
	require.Empty(t, active)

	// And before it opens.
	active, err = repo.ListActive(date("2025-12-31"))
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestListActiveIdempotent(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestEvent("Conf A", "Conference", "2026-06-01", "2026-01-01", "2026-05-30")))
	require.NoError(t, repo.Create(newTestEvent("Conf B", "Conference", "2026-06-02", "2026-01-01", "2026-05-30")))

	today := date("2026-03-01")
	first, err := repo.ListActive(today)
	require.NoError(t, err)
	second, err := repo.ListActive(today)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestListActiveByCategoryAndDate(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestEvent("Hack Day", "Hackathon", "2026-05-01", "2026-01-01", "2026-04-30")))
	require.NoError(t, repo.Create(newTestEvent("Go Workshop", "Online Workshop", "2026-05-01", "2026-01-01", "2026-04-30")))
	require.NoError(t, repo.Create(newTestEvent("Hack Night", "Hackathon", "2026-05-02", "2026-01-01", "2026-04-30")))
	// Same category but registration already closed.
	require.NoError(t, repo.Create(newTestEvent("Old Hack", "Hackathon", "2026-05-01", "2025-01-01", "2025-02-01")))

	today := date("2026-03-01")

	byCategory, err := repo.ListActiveByCategory("Hackathon", today)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	both, err := repo.ListActiveByCategoryAndDate("Hackathon", date("2026-05-01"), today)
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "Hack Day", both[0].EventName)
}

func TestDistinctDatesAndCategories(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestEvent("A", "Hackathon", "2026-05-01", "2026-01-01", "2026-04-30")))
	require.NoError(t, repo.Create(newTestEvent("B", "Hackathon", "2026-05-01", "2026-01-01", "2026-04-30")))
	require.NoError(t, repo.Create(newTestEvent("C", "Hackathon", "2026-05-02", "2026-01-01", "2026-04-30")))
	require.NoError(t, repo.Create(newTestEvent("D", "Conference", "2026-06-01", "2026-01-01", "2026-05-30")))

	today := date("2026-03-01")

	dates, err := repo.DistinctDatesForCategory("Hackathon", today)
	require.NoError(t, err)
	require.Len(t, dates, 2)

	categories, err := repo.DistinctCategories(today)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Hackathon", "Conference"}, categories)
}

func TestAdminListings(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestEvent("Oldest", "Conference", "2025-01-10", "2024-11-01", "2024-12-31")))
	require.NoError(t, repo.Create(newTestEvent("Newest", "Hackathon", "2026-05-01", "2026-01-01", "2026-04-30")))
	require.NoError(t, repo.Create(newTestEvent("Middle", "Hackathon", "2025-08-01", "2025-05-01", "2025-07-01")))

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Newest", all[0].EventName)
	require.Equal(t, "Middle", all[1].EventName)
	require.Equal(t, "Oldest", all[2].EventName)

	dates, err := repo.AllDistinctDates()
	require.NoError(t, err)
	require.Len(t, dates, 3)
	require.Equal(t, date("2026-05-01"), DateOnly(dates[0]))
	require.Equal(t, date("2025-01-10"), DateOnly(dates[2]))

	// ListByDate has no active-window filter, so historical events show up.
	historic, err := repo.ListByDate(date("2025-01-10"))
	require.NoError(t, err)
	require.Len(t, historic, 1)
	require.Equal(t, "Oldest", historic[0].EventName)
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	e, err := repo.GetByID(42)
	require.NoError(t, err)
	require.Nil(t, e)

	require.NoError(t, repo.Create(newTestEvent("Hack Day", "Hackathon", "2026-05-01", "2026-01-01", "2026-04-30")))
	e, err = repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "Hack Day", e.EventName)
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	events, err := repo.ListActive(date("2026-01-01"))
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)

	dates, err := repo.AllDistinctDates()
	require.NoError(t, err)
	require.NotNil(t, dates)
	require.Empty(t, dates)
}
