package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `INSERT INTO vehicles (id, name, plate_number, model, year, last_odometer, oil_last_service, brake_last_service, photo_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.PlateNumber,
		vehicle.Model,
		vehicle.Year,
		vehicle.LastOdometer,
		vehicle.OilLastService,
		vehicle.BrakeLastService,
		vehicle.PhotoURL,
	).Scan(
		&vehicle.ID,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			case "23505":
				return nil, fmt.Errorf("plate number already registered")
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	query := `SELECT id, name, plate_number, model, year, last_odometer, oil_last_service, brake_last_service, photo_url, created_at, updated_at
              FROM vehicles WHERE id = $1`

	vehicle := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.PlateNumber,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.LastOdometer,
		&vehicle.OilLastService,
		&vehicle.BrakeLastService,
		&vehicle.PhotoURL,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return vehicle, nil
}

// ListVehicles returns the whole garage, newest registration first.
func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT id, name, plate_number, model, year, last_odometer, oil_last_service, brake_last_service, photo_url, created_at, updated_at
              FROM vehicles ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle

	for rows.Next() {
		vehicle := &domain.Vehicle{}
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.Name,
			&vehicle.PlateNumber,
			&vehicle.Model,
			&vehicle.Year,
			&vehicle.LastOdometer,
			&vehicle.OilLastService,
			&vehicle.BrakeLastService,
			&vehicle.PhotoURL,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateVehicle writes every mutable column. The odometer coordinator relies
// on this being a full overwrite, so no COALESCE tricks here.
func (r *VehicleRepository) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `UPDATE vehicles
		SET
			name = $1,
			plate_number = $2,
			model = $3,
			year = $4,
			last_odometer = $5,
			oil_last_service = $6,
			brake_last_service = $7,
			photo_url = $8,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING id, name, plate_number, model, year, last_odometer, oil_last_service, brake_last_service, photo_url, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		vehicle.Name,
		vehicle.PlateNumber,
		vehicle.Model,
		vehicle.Year,
		vehicle.LastOdometer,
		vehicle.OilLastService,
		vehicle.BrakeLastService,
		vehicle.PhotoURL,
		vehicle.ID,
	).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.PlateNumber,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.LastOdometer,
		&vehicle.OilLastService,
		&vehicle.BrakeLastService,
		&vehicle.PhotoURL,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vehicle %s: %w", vehicle.ID, domain.ErrNotFound)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("required field is missing")
		}
		return nil, fmt.Errorf("error updating vehicle: %w", err)
	}

	return vehicle, nil
}

// DeleteVehicle removes only the vehicle row. Trips, maintenance records and
// documents are independent collections referencing it by id and are left in
// place on purpose.
func (r *VehicleRepository) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, vehicleID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("vehicle %s: %w", vehicleID, domain.ErrNotFound)
	}

	return nil
}
