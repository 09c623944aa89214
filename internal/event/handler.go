package event

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yug1204/event-registration/internal/validation"
	"github.com/yug1204/event-registration/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🎯 Create Event - POST /events
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	e, err := h.Service.CreateEvent(&req, ip)
	if err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "event configuration saved successfully", "id": e.ID})
}

// ===========================
// 🔍 Get Event - GET /events/:id
func (h *Handler) GetEventByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	e, err := h.Service.GetEventByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// 📄 List Events - GET /events?event_date=
//
// Admin view: unfiltered list is ordered by event date descending; a date
// filter returns historical events too.
func (h *Handler) ListEvents(c *gin.Context) {
	if dateParam := c.Query("event_date"); dateParam != "" {
		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_date. Use YYYY-MM-DD"})
			return
		}
		events, err := h.Service.EventsByDate(date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	events, err := h.Service.AllEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ===========================
// 📆 Active Events - GET /events/active?category=&event_date=
//
// Feeds the public registration form. With no filters it returns every
// event whose registration window contains today.
func (h *Handler) ListActiveEvents(c *gin.Context) {
	today := time.Now()
	category := c.Query("category")
	dateParam := c.Query("event_date")

	var (
		events []Event
		err    error
	)

	switch {
	case category != "" && dateParam != "":
		var date time.Time
		date, err = time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_date. Use YYYY-MM-DD"})
			return
		}
		events, err = h.Service.ActiveEventsByCategoryAndDate(category, date, today)
	case category != "":
		events, err = h.Service.ActiveEventsByCategory(category, today)
	default:
		events, err = h.Service.ActiveEvents(today)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list active events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ===========================
// 🔢 Categories - GET /events/categories
func (h *Handler) ListActiveCategories(c *gin.Context) {
	categories, err := h.Service.ActiveCategories(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ===========================
// 🔢 Event Dates - GET /events/dates?category=
//
// With a category: distinct dates among active events of that category
// (the second dropdown of the registration form). Without: every distinct
// event date, newest first (the admin listing filter).
func (h *Handler) ListEventDates(c *gin.Context) {
	category := c.Query("category")

	var (
		dates []time.Time
		err   error
	)
	if category != "" {
		dates, err = h.Service.DatesForCategory(category, time.Now())
	} else {
		dates, err = h.Service.AllEventDates()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list event dates"})
		return
	}

	formatted := []string{}
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	c.JSON(http.StatusOK, formatted)
}
