package http

import (
	"net/http"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

// RecordRequest uses pointers for the numeric fields so "missing" and "zero"
// stay distinguishable at the binding layer; parts cost and odometer reading
// are required by contract.
type RecordRequest struct {
	ServiceType     string `json:"service_type" binding:"required" example:"oil_change"`
	ServiceDate     string `json:"service_date,omitempty" example:"2024-01-15"`
	OdometerReading *int   `json:"odometer_reading" binding:"required" example:"24100"`
	LaborCost       *int64 `json:"labor_cost,omitempty" example:"12500"`
	PartsCost       *int64 `json:"parts_cost" binding:"required" example:"28400"`
	Notes           string `json:"notes,omitempty" example:"Full synthetic oil"`
}

type RecordInfo struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	ServiceType     string    `json:"service_type"`
	ServiceDate     time.Time `json:"service_date"`
	OdometerReading int       `json:"odometer_reading"`
	LaborCost       int64     `json:"labor_cost"`
	PartsCost       int64     `json:"parts_cost"`
	TotalCost       int64     `json:"total_cost"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListRecordsResponse struct {
	Records []RecordInfo `json:"records"`
	Count   int          `json:"count"`
}

func recordInfo(r *domain.MaintenanceRecord) RecordInfo {
	return RecordInfo{
		ID:              r.ID,
		VehicleID:       r.VehicleID,
		ServiceType:     string(r.ServiceType),
		ServiceDate:     r.ServiceDate,
		OdometerReading: r.OdometerReading,
		LaborCost:       r.LaborCost,
		PartsCost:       r.PartsCost,
		TotalCost:       r.TotalCost,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
}

func NewMaintenanceHandler(
	maintenanceService *services.MaintenanceService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
		metrics:            metrics,
	}
}

// @Summary Add a maintenance record
// @Description Appends one service-history entry; total cost is computed by the engine, and a reading above the current odometer advances the vehicle first
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body RecordRequest true "Record data"
// @Success 201 {object} RecordInfo "Record created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Failure 409 {object} errorResponse "Mileage advanced but record append failed"
// @Router /vehicles/{id}/records [post]
func (h *MaintenanceHandler) AddRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add record", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	record := &domain.MaintenanceRecord{
		VehicleID:       vehicleID,
		ServiceType:     domain.ServiceType(req.ServiceType),
		OdometerReading: *req.OdometerReading,
		PartsCost:       *req.PartsCost,
		Notes:           req.Notes,
	}
	if req.LaborCost != nil {
		record.LaborCost = *req.LaborCost
	}
	if req.ServiceDate != "" {
		serviceDate, err := parseServiceDate(req.ServiceDate)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Service date must be YYYY-MM-DD or RFC 3339")
			return
		}
		record.ServiceDate = serviceDate
	}

	created, err := h.maintenanceService.AddRecord(c.Request.Context(), record)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recordInfo(created))
}

func parseServiceDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// @Summary List maintenance records
// @Description Service history for a vehicle, most recent service date first
// @Tags maintenance
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} ListRecordsResponse "Service history"
// @Router /vehicles/{id}/records [get]
func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.maintenanceService.ListRecords(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	infos := make([]RecordInfo, len(records))
	for i, record := range records {
		infos[i] = recordInfo(record)
	}

	c.JSON(http.StatusOK, ListRecordsResponse{
		Records: infos,
		Count:   len(infos),
	})
}

// @Summary Get a maintenance record
// @Tags maintenance
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} RecordInfo "Record found"
// @Failure 404 {object} errorResponse "Record not found"
// @Router /records/{id} [get]
func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.maintenanceService.GetRecord(c.Request.Context(), recordID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recordInfo(record))
}
