package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	FullService  ServiceType = "full_service"
	OilChange    ServiceType = "oil_change"
	BrakeService ServiceType = "brake_service"
	TireRotation ServiceType = "tire_rotation"
	Repair       ServiceType = "repair"
	OtherService ServiceType = "other"
)

func (s ServiceType) Valid() bool {
	switch s {
	case FullService, OilChange, BrakeService, TireRotation, Repair, OtherService:
		return true
	}
	return false
}

// ResetsOilBaseline reports whether a service of this type counts as an oil
// change for the wear calculation.
func (s ServiceType) ResetsOilBaseline() bool {
	return s == OilChange || s == FullService
}

func (s ServiceType) ResetsBrakeBaseline() bool {
	return s == BrakeService || s == FullService
}

// MaintenanceRecord is append-only: created once, read thereafter. TotalCost
// is computed by the ledger at write time and never re-derived on read.
type MaintenanceRecord struct {
	ID              uuid.UUID   `json:"id"`
	VehicleID       uuid.UUID   `json:"vehicle_id" validate:"required"`
	ServiceType     ServiceType `json:"service_type" validate:"required"`
	ServiceDate     time.Time   `json:"service_date" validate:"required"`
	OdometerReading int         `json:"odometer_reading" validate:"required,min=1"`
	LaborCost       int64       `json:"labor_cost" validate:"min=0"`
	PartsCost       int64       `json:"parts_cost" validate:"min=0"`
	TotalCost       int64       `json:"total_cost"`
	Notes           string      `json:"notes,omitempty" validate:"max=2000"`
	CreatedAt       time.Time   `json:"created_at"`
}
