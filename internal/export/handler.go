package export

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yug1204/event-registration/internal/registration"
	"github.com/yug1204/event-registration/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📥 Export Registrations - GET /registrations/export?event_date=&event_id=&format=
func (h *Handler) ExportRegistrations(c *gin.Context) {
	filters, err := registration.ParseListFilters(c.Query("event_date"), c.Query("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := c.DefaultQuery("format", FormatCSV)
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format: " + format})
		return
	}

	ip := middleware.GetIPFromContext(c)

	data, fname, mime, err := h.Service.ExportRegistrations(filters, format, ip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export registrations: " + err.Error()})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fname))
	c.Data(http.StatusOK, mime, data)
}
