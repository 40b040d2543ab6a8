package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripRepository struct {
	db *sql.DB
}

func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	query := `INSERT INTO trips (id, vehicle_id, distance, odometer_reading, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		trip.ID,
		trip.VehicleID,
		trip.Distance,
		trip.OdometerReading,
		trip.CreatedAt,
	).Scan(
		&trip.ID,
		&trip.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("required field is missing")
		}
		return nil, err
	}

	return trip, nil
}

func (r *TripRepository) GetTripsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Trip, error) {
	query := `SELECT id, vehicle_id, distance, odometer_reading, created_at
		FROM trips WHERE vehicle_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip

	for rows.Next() {
		trip := &domain.Trip{}
		err := rows.Scan(
			&trip.ID,
			&trip.VehicleID,
			&trip.Distance,
			&trip.OdometerReading,
			&trip.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}
