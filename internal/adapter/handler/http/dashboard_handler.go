package http

import (
	"net/http"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	documentService  *services.DocumentService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type DocumentInfo struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	DocType    string    `json:"doc_type"`
	ExpiryDate time.Time `json:"expiry_date"`
	DaysLeft   int       `json:"days_left"`
	Expired    bool      `json:"expired"`
}

type ReminderInfo struct {
	Subject  string `json:"subject"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

type DashboardResponse struct {
	Vehicle     VehicleInfo    `json:"vehicle"`
	OilHealth   int            `json:"oil_health"`
	BrakeHealth int            `json:"brake_health"`
	Documents   []DocumentInfo `json:"documents"`
	Reminders   []ReminderInfo `json:"reminders"`
}

type ListDocumentsResponse struct {
	Documents []DocumentInfo `json:"documents"`
	Count     int            `json:"count"`
}

func NewDashboardHandler(
	dashboardService *services.DashboardService,
	documentService *services.DocumentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		documentService:  documentService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary Vehicle health dashboard
// @Description Wear percentages, document day counts and the derived reminder list, rebuilt from fresh reads on every call
// @Tags dashboard
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} DashboardResponse "Dashboard view"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	health, err := h.dashboardService.VehicleHealth(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	docs := make([]DocumentInfo, len(health.Documents))
	for i, status := range health.Documents {
		docs[i] = DocumentInfo{
			ID:         status.Document.ID,
			VehicleID:  status.Document.VehicleID,
			DocType:    string(status.Document.DocType),
			ExpiryDate: status.Document.ExpiryDate,
			DaysLeft:   status.DaysLeft,
			Expired:    status.Expired,
		}
	}

	reminders := make([]ReminderInfo, len(health.Reminders))
	for i, reminder := range health.Reminders {
		reminders[i] = ReminderInfo{
			Subject:  reminder.Subject,
			Severity: string(reminder.Severity),
			Detail:   reminder.Detail,
		}
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Vehicle:     vehicleInfo(health.Vehicle),
		OilHealth:   health.OilHealth,
		BrakeHealth: health.BrakeHealth,
		Documents:   docs,
		Reminders:   reminders,
	})
}

// @Summary List documents
// @Description The vehicle's document vault with computed expiry day counts
// @Tags documents
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} ListDocumentsResponse "Documents"
// @Router /vehicles/{id}/documents [get]
func (h *DashboardHandler) ListDocuments(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	documents, err := h.documentService.ListDocuments(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	now := time.Now().UTC()
	infos := make([]DocumentInfo, len(documents))
	for i, doc := range documents {
		infos[i] = DocumentInfo{
			ID:         doc.ID,
			VehicleID:  doc.VehicleID,
			DocType:    string(doc.DocType),
			ExpiryDate: doc.ExpiryDate,
			DaysLeft:   doc.DaysLeft(now),
			Expired:    doc.Expired(now),
		}
	}

	c.JSON(http.StatusOK, ListDocumentsResponse{
		Documents: infos,
		Count:     len(infos),
	})
}
