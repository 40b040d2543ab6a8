package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaintenanceService is the append-only service-history ledger. Total cost is
// computed here, never trusted from the caller; records have no update or
// delete path once written.
type MaintenanceService struct {
	recordRepo  ports.MaintenanceRepository
	vehicleRepo ports.VehicleRepository
	odometer    *OdometerService
	logger      ports.LoggerPort
	validate    *validator.Validate
}

func NewMaintenanceService(
	recordRepo ports.MaintenanceRepository,
	vehicleRepo ports.VehicleRepository,
	odometer *OdometerService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *MaintenanceService {
	return &MaintenanceService{
		recordRepo:  recordRepo,
		vehicleRepo: vehicleRepo,
		odometer:    odometer,
		logger:      logger,
		validate:    validate,
	}
}

// AddRecord writes one service-history entry. A reading above the vehicle's
// current odometer means the service visit itself advanced the mileage, so
// the write goes through the shared odometer primitive with the record insert
// as the dependent step — same ordering, same partial-failure surface as a
// plain odometer advance. Oil and brake service baselines move to the
// record's reading for the matching service types.
func (s *MaintenanceService) AddRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	if !record.ServiceType.Valid() {
		return nil, &domain.ValidationError{
			Field:  "service_type",
			Reason: fmt.Sprintf("unknown service type %q", record.ServiceType),
		}
	}
	if record.OdometerReading <= 0 {
		return nil, &domain.ValidationError{Field: "odometer_reading", Reason: "must be present and positive"}
	}
	if record.PartsCost < 0 {
		return nil, &domain.ValidationError{Field: "parts_cost", Reason: "must not be negative"}
	}
	if record.LaborCost < 0 {
		return nil, &domain.ValidationError{Field: "labor_cost", Reason: "must not be negative"}
	}
	if record.ServiceDate.IsZero() {
		record.ServiceDate = time.Now().UTC()
	}
	if err := s.validate.Struct(record); err != nil {
		s.logger.Error("Maintenance record validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &domain.ValidationError{Field: "record", Reason: err.Error()}
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, record.VehicleID)
	if err != nil {
		s.logger.Error("Failed to get vehicle for maintenance record", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": record.VehicleID,
		})
		return nil, err
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.TotalCost = record.LaborCost + record.PartsCost

	touched := s.applyBaselines(vehicle, record)

	var created *domain.MaintenanceRecord
	insertStep := func(ctx context.Context) error {
		var insertErr error
		created, insertErr = s.recordRepo.CreateRecord(ctx, record)
		return insertErr
	}

	if record.OdometerReading > vehicle.LastOdometer || touched {
		// The vehicle row changes (mileage and/or baselines), so the write
		// pair must follow the coordinator's ordering and failure policy.
		target := vehicle.LastOdometer
		if record.OdometerReading > target {
			target = record.OdometerReading
		}
		if err := s.odometer.Advance(ctx, vehicle, target, insertStep); err != nil {
			return nil, err
		}
	} else {
		if err := insertStep(ctx); err != nil {
			s.logger.Error("Failed to create maintenance record", map[string]interface{}{
				"error":      err.Error(),
				"vehicle_id": record.VehicleID,
			})
			return nil, &domain.StoreError{Op: "create maintenance record", Err: err}
		}
	}

	s.logger.Info("Maintenance record added", map[string]interface{}{
		"record_id":    created.ID,
		"vehicle_id":   created.VehicleID,
		"service_type": created.ServiceType,
		"total_cost":   created.TotalCost,
	})

	return created, nil
}

// applyBaselines moves the consumable service baselines on the vehicle struct
// and reports whether anything changed. The struct is only persisted by the
// caller, so the last_odometer >= baseline invariant holds: the advance that
// persists these also lifts the odometer to at least the record's reading.
func (s *MaintenanceService) applyBaselines(vehicle *domain.Vehicle, record *domain.MaintenanceRecord) bool {
	touched := false
	if record.ServiceType.ResetsOilBaseline() && record.OdometerReading > vehicle.OilLastService {
		vehicle.OilLastService = record.OdometerReading
		touched = true
	}
	if record.ServiceType.ResetsBrakeBaseline() && record.OdometerReading > vehicle.BrakeLastService {
		vehicle.BrakeLastService = record.OdometerReading
		touched = true
	}
	return touched
}

// ListRecords returns a vehicle's service history, most recent service date
// first.
func (s *MaintenanceService) ListRecords(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	records, err := s.recordRepo.GetRecordsByVehicleID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Failed to list maintenance records", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, &domain.StoreError{Op: "list maintenance records", Err: err}
	}
	return records, nil
}

func (s *MaintenanceService) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.MaintenanceRecord, error) {
	record, err := s.recordRepo.GetRecordByID(ctx, recordID)
	if err != nil {
		s.logger.Error("Failed to get maintenance record", map[string]interface{}{
			"error":     err.Error(),
			"record_id": recordID,
		})
		return nil, err
	}
	return record, nil
}
