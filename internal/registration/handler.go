package registration

import (
	"errors"
	"net/http"

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
// 🎯 Register - POST /registrations
func (h *Handler) Register(c *gin.Context) {
	var input RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	reg, err := h.Service.Submit(&input, ip)
	if err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			// The client redisplays the form with the entered values, so
			// they are echoed back alongside the per-field messages.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": fieldErrs,
				"values": input,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save registration: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for registering! A confirmation email has been sent to " + reg.Email + ".",
		"id":      reg.ID,
	})
}

// ===========================
// 📄 List Registrations - GET /registrations?event_date=&event_id=
func (h *Handler) ListRegistrations(c *gin.Context) {
	filters, err := ParseListFilters(c.Query("event_date"), c.Query("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Listing(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list registrations"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
