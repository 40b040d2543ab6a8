package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OdometerHandler struct {
	odometerService *services.OdometerService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

// OdometerRequest carries the reading as entered by the user; the handler
// parses it so unparseable input fails before the service is touched.
type OdometerRequest struct {
	NewReading string `json:"new_reading" binding:"required" example:"10450"`
}

type TripInfo struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	Distance        int       `json:"distance"`
	OdometerReading int       `json:"odometer_reading"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdvanceOdometerResponse struct {
	Trip         TripInfo `json:"trip"`
	LastOdometer int      `json:"last_odometer"`
}

type ListTripsResponse struct {
	Trips []TripInfo `json:"trips"`
	Count int        `json:"count"`
}

func NewOdometerHandler(
	odometerService *services.OdometerService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *OdometerHandler {
	return &OdometerHandler{
		odometerService: odometerService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary Advance the odometer
// @Description Moves the vehicle's mileage forward and appends the matching trip as one logical unit of work
// @Tags odometer
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body OdometerRequest true "New odometer reading"
// @Success 200 {object} AdvanceOdometerResponse "Odometer advanced"
// @Failure 400 {object} errorResponse "Invalid reading"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Failure 409 {object} errorResponse "Mileage advanced but trip append failed"
// @Router /vehicles/{id}/odometer [post]
func (h *OdometerHandler) AdvanceOdometer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req OdometerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in advance odometer", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	newReading, err := strconv.Atoi(req.NewReading)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Reading must be a whole number of kilometers")
		return
	}

	trip, err := h.odometerService.AdvanceOdometer(c.Request.Context(), vehicleID, newReading)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, AdvanceOdometerResponse{
		Trip: TripInfo{
			ID:              trip.ID,
			VehicleID:       trip.VehicleID,
			Distance:        trip.Distance,
			OdometerReading: trip.OdometerReading,
			CreatedAt:       trip.CreatedAt,
		},
		LastOdometer: trip.OdometerReading,
	})
}

// @Summary List trips
// @Description Trip history for a vehicle, newest first
// @Tags odometer
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} ListTripsResponse "Trip history"
// @Router /vehicles/{id}/trips [get]
func (h *OdometerHandler) ListTrips(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	trips, err := h.odometerService.ListTrips(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	infos := make([]TripInfo, len(trips))
	for i, trip := range trips {
		infos[i] = TripInfo{
			ID:              trip.ID,
			VehicleID:       trip.VehicleID,
			Distance:        trip.Distance,
			OdometerReading: trip.OdometerReading,
			CreatedAt:       trip.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, ListTripsResponse{
		Trips: infos,
		Count: len(infos),
	})
}
