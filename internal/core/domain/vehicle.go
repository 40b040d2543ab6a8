package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name" validate:"required,max=100"`
	PlateNumber      string    `json:"plate_number" validate:"required,max=20"`
	Model            string    `json:"model" validate:"max=100"`
	Year             int       `json:"year"`
	LastOdometer     int       `json:"last_odometer" validate:"min=0"`
	OilLastService   int       `json:"oil_last_service" validate:"min=0"`
	BrakeLastService int       `json:"brake_last_service" validate:"min=0"`
	PhotoURL         string    `json:"photo_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (v *Vehicle) OilHealth() int {
	if v == nil {
		return 100
	}
	return ConsumableHealth(v.OilLastService, v.LastOdometer, OilWearThreshold)
}

func (v *Vehicle) BrakeHealth() int {
	if v == nil {
		return 100
	}
	return ConsumableHealth(v.BrakeLastService, v.LastOdometer, BrakeWearThreshold)
}
