package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is an immutable history row. The engine only ever appends trips as the
// second step of an odometer advance; there is no update or delete path.
type Trip struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id" validate:"required"`
	Distance        int       `json:"distance" validate:"min=0"`
	OdometerReading int       `json:"odometer_reading" validate:"min=0"`
	CreatedAt       time.Time `json:"created_at"`
}
