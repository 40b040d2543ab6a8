package ports

import (
	"context"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
)

// TripRepository is append-and-read only; trips are never mutated or deleted.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetTripsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Trip, error)
}
