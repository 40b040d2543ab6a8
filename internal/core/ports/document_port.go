package ports

import (
	"context"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	GetDocumentsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Document, error)
}
