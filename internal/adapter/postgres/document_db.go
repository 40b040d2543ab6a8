package postgres

import (
	"context"
	"database/sql"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) GetDocumentsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Document, error) {
	query := `SELECT id, vehicle_id, doc_type, expiry_date, created_at
		FROM documents WHERE vehicle_id = $1
		ORDER BY expiry_date ASC`

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*domain.Document

	for rows.Next() {
		doc := &domain.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.VehicleID,
			&doc.DocType,
			&doc.ExpiryDate,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}
