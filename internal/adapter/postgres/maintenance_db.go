package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MaintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	query := `INSERT INTO maintenance_records (id, vehicle_id, service_type, service_date, odometer_reading, labor_cost, parts_cost, total_cost, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		record.ID,
		record.VehicleID,
		record.ServiceType,
		record.ServiceDate,
		record.OdometerReading,
		record.LaborCost,
		record.PartsCost,
		record.TotalCost,
		record.Notes,
	).Scan(
		&record.ID,
		&record.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			case "22P02":
				return nil, fmt.Errorf("invalid service type")
			default:
				return nil, err
			}
		}
		return nil, err
	}

	return record, nil
}

func (r *MaintenanceRepository) GetRecordByID(ctx context.Context, recordID uuid.UUID) (*domain.MaintenanceRecord, error) {
	query := `SELECT id, vehicle_id, service_type, service_date, odometer_reading, labor_cost, parts_cost, total_cost, notes, created_at
		FROM maintenance_records
		WHERE id = $1`

	record := &domain.MaintenanceRecord{}
	err := r.db.QueryRowContext(ctx, query, recordID).Scan(
		&record.ID,
		&record.VehicleID,
		&record.ServiceType,
		&record.ServiceDate,
		&record.OdometerReading,
		&record.LaborCost,
		&record.PartsCost,
		&record.TotalCost,
		&record.Notes,
		&record.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("maintenance record %s: %w", recordID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get maintenance record: %w", err)
	}

	return record, nil
}

func (r *MaintenanceRepository) GetRecordsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	query := `SELECT id, vehicle_id, service_type, service_date, odometer_reading, labor_cost, parts_cost, total_cost, notes, created_at
		FROM maintenance_records WHERE vehicle_id = $1
		ORDER BY service_date DESC`

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.MaintenanceRecord

	for rows.Next() {
		record := &domain.MaintenanceRecord{}
		err := rows.Scan(
			&record.ID,
			&record.VehicleID,
			&record.ServiceType,
			&record.ServiceDate,
			&record.OdometerReading,
			&record.LaborCost,
			&record.PartsCost,
			&record.TotalCost,
			&record.Notes,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
