package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type VehicleService struct {
	vehicleRepo ports.VehicleRepository
	sessions    *SessionStore
	storage     ports.StoragePort
	logger      ports.LoggerPort
	validate    *validator.Validate
}

func NewVehicleService(
	vehicleRepo ports.VehicleRepository,
	sessions *SessionStore,
	storage ports.StoragePort,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		sessions:    sessions,
		storage:     storage,
		logger:      logger,
		validate:    validate,
	}
}

// List returns the garage newest-registered first. When the session carries
// no usable selection and the garage is non-empty, the first vehicle is
// silently selected as a side effect — the client never lands on a dead
// "no vehicle" screen after its first load.
func (s *VehicleService) List(ctx context.Context, session *domain.Session) ([]*domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &domain.StoreError{Op: "list vehicles", Err: err}
	}

	if session != nil {
		s.reconcileSelection(ctx, session, vehicles)
	}

	return vehicles, nil
}

// reconcileSelection applies the default rule: no selection, or a selection
// pointing at a vehicle no longer listed, falls back to the first entry (or
// an empty slot when the garage is empty). Persistence failures here degrade
// to a log line; listing must not fail over the selection side effect.
func (s *VehicleService) reconcileSelection(ctx context.Context, session *domain.Session, vehicles []*domain.Vehicle) {
	if session.HasSelection() {
		for _, v := range vehicles {
			if session.Selected(v.ID) {
				return
			}
		}
	}

	if len(vehicles) == 0 {
		if session.HasSelection() {
			if err := s.sessions.ClearSelected(ctx, session); err != nil {
				s.logger.Warn("Failed to clear stale selection", map[string]interface{}{
					"error":      err.Error(),
					"session_id": session.ID,
				})
			}
		}
		return
	}

	if err := s.sessions.SetSelected(ctx, session, vehicles[0].ID); err != nil {
		s.logger.Warn("Failed to persist default selection", map[string]interface{}{
			"error":      err.Error(),
			"session_id": session.ID,
		})
		return
	}

	s.logger.Info("Defaulted session selection to first vehicle", map[string]interface{}{
		"session_id": session.ID,
		"vehicle_id": vehicles[0].ID,
	})
}

// Register adds a vehicle to the garage. Name and plate number are required;
// the odometer and both service baselines always start at zero regardless of
// caller input.
func (s *VehicleService) Register(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if strings.TrimSpace(vehicle.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(vehicle.PlateNumber) == "" {
		return nil, &domain.ValidationError{Field: "plate_number", Reason: "must not be empty"}
	}

	vehicle.LastOdometer = 0
	vehicle.OilLastService = 0
	vehicle.BrakeLastService = 0

	if err := s.validate.Struct(vehicle); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &domain.ValidationError{Field: "vehicle", Reason: err.Error()}
	}

	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}

	created, err := s.vehicleRepo.CreateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error": err.Error(),
			"plate": vehicle.PlateNumber,
		})
		return nil, &domain.StoreError{Op: "create vehicle", Err: err}
	}

	s.logger.Info("Vehicle registered", map[string]interface{}{
		"vehicle_id": created.ID,
		"plate":      created.PlateNumber,
	})

	return created, nil
}

func (s *VehicleService) Get(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := s.validate.Struct(vehicle); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicle.ID,
		})
		return nil, &domain.ValidationError{Field: "vehicle", Reason: err.Error()}
	}

	updated, err := s.vehicleRepo.UpdateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("Failed to update vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicle.ID,
		})
		return nil, err
	}

	s.logger.Info("Vehicle updated", map[string]interface{}{
		"vehicle_id": updated.ID,
	})

	return updated, nil
}

// Remove deletes only the vehicle row. Trips, maintenance records and
// documents keep their back-references and stay queryable; the registry never
// cascades. A selection pointing at the removed vehicle is cleared so the
// next List call can fall back to the first remaining entry.
func (s *VehicleService) Remove(ctx context.Context, session *domain.Session, vehicleID uuid.UUID) error {
	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		s.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return err
	}

	if session.Selected(vehicleID) {
		if err := s.sessions.ClearSelected(ctx, session); err != nil {
			s.logger.Warn("Failed to clear selection of removed vehicle", map[string]interface{}{
				"error":      err.Error(),
				"session_id": session.ID,
				"vehicle_id": vehicleID,
			})
		}
	}

	s.logger.Info("Vehicle removed", map[string]interface{}{
		"vehicle_id": vehicleID,
	})

	return nil
}

// Select makes an explicit selection after verifying the target exists.
func (s *VehicleService) Select(ctx context.Context, session *domain.Session, vehicleID uuid.UUID) error {
	if _, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID); err != nil {
		return err
	}
	return s.sessions.SetSelected(ctx, session, vehicleID)
}

// AttachPhoto stores a vehicle photo in the blob store and records the
// returned address on the vehicle.
func (s *VehicleService) AttachPhoto(ctx context.Context, vehicleID uuid.UUID, body io.Reader, filename string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("vehicles/%s/%d%s", vehicleID, time.Now().UTC().Unix(), path.Ext(filename))
	url, err := s.storage.Upload(ctx, body, key)
	if err != nil {
		s.logger.Error("Failed to upload vehicle photo", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, &domain.StoreError{Op: "upload vehicle photo", Err: err}
	}

	vehicle.PhotoURL = url
	updated, err := s.vehicleRepo.UpdateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("Failed to save vehicle photo address", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, &domain.StoreError{Op: "save vehicle photo address", Err: err}
	}

	s.logger.Info("Vehicle photo attached", map[string]interface{}{
		"vehicle_id": vehicleID,
		"photo_url":  url,
	})

	return updated, nil
}
