package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/google/uuid"
)

// OdometerService coordinates the two-step "advance odometer + append
// history" write. The record store offers no cross-collection transactions,
// so the ordering and the partial-failure signal live here: the vehicle
// update always happens first, and a failed dependent append is surfaced as
// *domain.PartialConsistencyError rather than rolled back or retried.
type OdometerService struct {
	vehicleRepo ports.VehicleRepository
	tripRepo    ports.TripRepository
	logger      ports.LoggerPort
}

func NewOdometerService(
	vehicleRepo ports.VehicleRepository,
	tripRepo ports.TripRepository,
	logger ports.LoggerPort,
) *OdometerService {
	return &OdometerService{
		vehicleRepo: vehicleRepo,
		tripRepo:    tripRepo,
		logger:      logger,
	}
}

// AdvanceOdometer moves a vehicle's mileage forward and appends the matching
// trip. Validation failures happen before any write; after the vehicle update
// succeeds a trip-insert failure leaves the mileage advanced with no trip,
// which is reported, not repaired.
func (s *OdometerService) AdvanceOdometer(ctx context.Context, vehicleID uuid.UUID, newReading int) (*domain.Trip, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Failed to get vehicle for odometer advance", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	if newReading < 0 {
		return nil, &domain.ValidationError{Field: "new_reading", Reason: "must be a non-negative number"}
	}
	if newReading <= vehicle.LastOdometer {
		return nil, &domain.ValidationError{
			Field:  "new_reading",
			Reason: fmt.Sprintf("must be greater than current odometer %d", vehicle.LastOdometer),
		}
	}

	trip := &domain.Trip{
		ID:              uuid.New(),
		VehicleID:       vehicle.ID,
		Distance:        newReading - vehicle.LastOdometer,
		OdometerReading: newReading,
		CreatedAt:       time.Now().UTC(),
	}

	var created *domain.Trip
	err = s.Advance(ctx, vehicle, newReading, func(ctx context.Context) error {
		var insertErr error
		created, insertErr = s.tripRepo.CreateTrip(ctx, trip)
		return insertErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Odometer advanced", map[string]interface{}{
		"vehicle_id":  vehicle.ID,
		"new_reading": newReading,
		"distance":    trip.Distance,
	})

	return created, nil
}

// Advance is the shared two-step primitive. It persists the vehicle at
// newReading (plus whatever other mutations the caller already applied to
// the struct, e.g. service baselines) and then runs the dependent append
// step. Both the trip log and the maintenance ledger go through this one
// implementation so the ordering and failure policy cannot drift apart.
//
// Known race: there is no version field, so two concurrent advances against
// the same vehicle are last-write-wins on last_odometer.
func (s *OdometerService) Advance(ctx context.Context, vehicle *domain.Vehicle, newReading int, appendStep func(context.Context) error) error {
	vehicle.LastOdometer = newReading

	if _, err := s.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		s.logger.Error("Failed to advance vehicle odometer", map[string]interface{}{
			"error":       err.Error(),
			"vehicle_id":  vehicle.ID,
			"new_reading": newReading,
		})
		return &domain.StoreError{Op: "update vehicle odometer", Err: err}
	}

	if err := appendStep(ctx); err != nil {
		// The mileage is already advanced. Surface the divergence instead of
		// compensating: a rollback could clobber a concurrent write, and a
		// blind retry risks a duplicate history row.
		s.logger.Error("History append failed after odometer advance", map[string]interface{}{
			"error":       err.Error(),
			"vehicle_id":  vehicle.ID,
			"new_reading": newReading,
		})
		return &domain.PartialConsistencyError{
			VehicleID:  vehicle.ID,
			NewReading: newReading,
			Err:        err,
		}
	}

	return nil
}

// ListTrips returns a vehicle's trip history, newest first.
func (s *OdometerService) ListTrips(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Trip, error) {
	trips, err := s.tripRepo.GetTripsByVehicleID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Failed to list trips", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, &domain.StoreError{Op: "list trips", Err: err}
	}
	return trips, nil
}
