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

type VehicleHandler struct {
	vehicleService *services.VehicleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type VehicleRequest struct {
	Name        string `json:"name" binding:"required" example:"My Civic"`
	PlateNumber string `json:"plate_number" binding:"required" example:"ABC-1234"`
	Model       string `json:"model,omitempty" example:"Honda Civic"`
	Year        int    `json:"year,omitempty" example:"2019"`
}

type UpdateVehicle struct {
	Name        *string `json:"name,omitempty" example:"My Civic"`
	PlateNumber *string `json:"plate_number,omitempty" example:"ABC-1234"`
	Model       *string `json:"model,omitempty" example:"Honda Civic"`
	Year        *int    `json:"year,omitempty" example:"2019"`
}

type VehicleInfo struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PlateNumber      string    `json:"plate_number"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	LastOdometer     int       `json:"last_odometer"`
	OilLastService   int       `json:"oil_last_service"`
	BrakeLastService int       `json:"brake_last_service"`
	PhotoURL         string    `json:"photo_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ListVehiclesResponse struct {
	Vehicles          []VehicleInfo `json:"vehicles"`
	Count             int           `json:"count"`
	SelectedVehicleID *uuid.UUID    `json:"selected_vehicle_id,omitempty"`
}

func vehicleInfo(v *domain.Vehicle) VehicleInfo {
	return VehicleInfo{
		ID:               v.ID,
		Name:             v.Name,
		PlateNumber:      v.PlateNumber,
		Model:            v.Model,
		Year:             v.Year,
		LastOdometer:     v.LastOdometer,
		OilLastService:   v.OilLastService,
		BrakeLastService: v.BrakeLastService,
		PhotoURL:         v.PhotoURL,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Register a vehicle
// @Description Adds a vehicle to the garage with zeroed odometer and service baselines
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle data"
// @Success 201 {object} VehicleInfo "Vehicle registered"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /vehicles [post]
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in register vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	vehicle := &domain.Vehicle{
		Name:        req.Name,
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		Year:        req.Year,
	}

	created, err := h.vehicleService.Register(c.Request.Context(), vehicle)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicleInfo(created))
}

// @Summary List the garage
// @Description Lists vehicles newest first; defaults the session selection to the first entry when nothing is selected
// @Tags vehicles
// @Produce json
// @Success 200 {object} ListVehiclesResponse "Garage contents"
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	session := getSession(c)

	vehicles, err := h.vehicleService.List(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	infos := make([]VehicleInfo, len(vehicles))
	for i, v := range vehicles {
		infos[i] = vehicleInfo(v)
	}

	response := ListVehiclesResponse{
		Vehicles: infos,
		Count:    len(infos),
	}
	if session.HasSelection() {
		response.SelectedVehicleID = session.SelectedVehicleID
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} VehicleInfo "Vehicle found"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleInfo(vehicle))
}

// @Summary Update a vehicle profile
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body UpdateVehicle true "Fields to update"
// @Success 200 {object} VehicleInfo "Vehicle updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := h.vehicleService.Get(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req UpdateVehicle
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.PlateNumber != nil {
		existing.PlateNumber = *req.PlateNumber
	}
	if req.Model != nil {
		existing.Model = *req.Model
	}
	if req.Year != nil {
		existing.Year = *req.Year
	}

	updated, err := h.vehicleService.Update(c.Request.Context(), existing)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleInfo(updated))
}

// @Summary Remove a vehicle
// @Description Deletes only the vehicle row; its trips, records and documents remain queryable
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} successResponse "Vehicle removed"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) RemoveVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Remove(c.Request.Context(), getSession(c), vehicleID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Vehicle removed"})
}

// @Summary Select a vehicle
// @Description Makes the vehicle the session's current focus
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} successResponse "Vehicle selected"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id}/select [post]
func (h *VehicleHandler) SelectVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Select(c.Request.Context(), getSession(c), vehicleID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Vehicle selected"})
}

// @Summary Attach a vehicle photo
// @Description Uploads the photo to blob storage and saves its address on the vehicle
// @Tags vehicles
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} VehicleInfo "Photo attached"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id}/photo [post]
func (h *VehicleHandler) AttachPhoto(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Missing photo file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded photo", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Unreadable photo file")
		return
	}
	defer file.Close()

	updated, err := h.vehicleService.AttachPhoto(c.Request.Context(), vehicleID, file, fileHeader.Filename)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleInfo(updated))
}
