package services

import (
	"context"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/google/uuid"
)

// DocumentService exposes the read-only document vault. Uploading documents
// is a collaborator concern outside the engine core.
type DocumentService struct {
	documentRepo ports.DocumentRepository
	logger       ports.LoggerPort
}

func NewDocumentService(documentRepo ports.DocumentRepository, logger ports.LoggerPort) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

func (s *DocumentService) ListDocuments(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Document, error) {
	docs, err := s.documentRepo.GetDocumentsByVehicleID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("Failed to list documents", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, &domain.StoreError{Op: "list documents", Err: err}
	}
	return docs, nil
}
