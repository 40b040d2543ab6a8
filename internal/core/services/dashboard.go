package services

import (
	"context"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/google/uuid"
)

// VehicleHealth is the dashboard view for one vehicle: wear percentages,
// document day counts, and the derived reminder list. It is rebuilt from
// fresh reads on every call — there is no cached or persisted reminder state.
type VehicleHealth struct {
	Vehicle     *domain.Vehicle
	OilHealth   int
	BrakeHealth int
	Documents   []DocumentStatus
	Reminders   []*domain.Reminder
}

type DocumentStatus struct {
	Document *domain.Document
	DaysLeft int
	Expired  bool
}

type DashboardService struct {
	vehicleRepo  ports.VehicleRepository
	documentRepo ports.DocumentRepository
	logger       ports.LoggerPort
	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewDashboardService(
	vehicleRepo ports.VehicleRepository,
	documentRepo ports.DocumentRepository,
	logger ports.LoggerPort,
) *DashboardService {
	return &DashboardService{
		vehicleRepo:  vehicleRepo,
		documentRepo: documentRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *DashboardService) VehicleHealth(ctx context.Context, vehicleID uuid.UUID) (*VehicleHealth, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Failed to get vehicle for dashboard", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	docs, err := s.documentRepo.GetDocumentsByVehicleID(ctx, vehicleID)
	if err != nil {
		// The wear metrics are still useful without the vault; degrade to an
		// empty document set like the garage view does.
		s.logger.Warn("Failed to get documents for dashboard", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		docs = []*domain.Document{}
	}

	now := s.now().UTC()
	statuses := make([]DocumentStatus, len(docs))
	for i, doc := range docs {
		statuses[i] = DocumentStatus{
			Document: doc,
			DaysLeft: doc.DaysLeft(now),
			Expired:  doc.Expired(now),
		}
	}

	health := &VehicleHealth{
		Vehicle:     vehicle,
		OilHealth:   vehicle.OilHealth(),
		BrakeHealth: vehicle.BrakeHealth(),
		Documents:   statuses,
		Reminders:   domain.DeriveReminders(vehicle.OilHealth(), vehicle.BrakeHealth(), docs, now),
	}

	return health, nil
}
