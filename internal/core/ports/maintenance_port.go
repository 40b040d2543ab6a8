package ports

import (
	"context"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
)

// MaintenanceRepository has no update or delete: service history is
// append-only by contract.
type MaintenanceRepository interface {
	CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	GetRecordByID(ctx context.Context, recordID uuid.UUID) (*domain.MaintenanceRecord, error)
	GetRecordsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error)
}
