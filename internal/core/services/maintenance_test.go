package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func newMaintenanceService(vehicleRepo *fakeVehicleRepo, tripRepo *fakeTripRepo, recordRepo *fakeRecordRepo) *MaintenanceService {
	odometer := NewOdometerService(vehicleRepo, tripRepo, nopLogger{})
	return NewMaintenanceService(recordRepo, vehicleRepo, odometer, nopLogger{}, validator.New())
}

func TestAddRecordComputesTotalCost(t *testing.T) {
	vehicle := testVehicle(24000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	recordRepo := &fakeRecordRepo{}
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, recordRepo)

	created, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.Repair,
		OdometerReading: 23500,
		LaborCost:       12500,
		PartsCost:       28400,
		// Caller-supplied totals are never trusted.
		TotalCost: 1,
	})
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	if created.TotalCost != 40900 {
		t.Fatalf("total cost = %d, want 40900", created.TotalCost)
	}
	if created.ServiceDate.IsZero() {
		t.Fatalf("service date not defaulted")
	}
	if created.ID == uuid.Nil {
		t.Fatalf("record has no id")
	}
}

func TestAddRecordValidation(t *testing.T) {
	vehicle := testVehicle(10000)

	tests := []struct {
		name   string
		record *domain.MaintenanceRecord
		field  string
	}{
		{
			"unknown service type",
			&domain.MaintenanceRecord{VehicleID: vehicle.ID, ServiceType: "detailing", OdometerReading: 100},
			"service_type",
		},
		{
			"missing odometer reading",
			&domain.MaintenanceRecord{VehicleID: vehicle.ID, ServiceType: domain.Repair},
			"odometer_reading",
		},
		{
			"negative odometer reading",
			&domain.MaintenanceRecord{VehicleID: vehicle.ID, ServiceType: domain.Repair, OdometerReading: -1},
			"odometer_reading",
		},
		{
			"negative parts cost",
			&domain.MaintenanceRecord{VehicleID: vehicle.ID, ServiceType: domain.Repair, OdometerReading: 100, PartsCost: -1},
			"parts_cost",
		},
		{
			"negative labor cost",
			&domain.MaintenanceRecord{VehicleID: vehicle.ID, ServiceType: domain.Repair, OdometerReading: 100, LaborCost: -1},
			"labor_cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicleRepo := newFakeVehicleRepo(testVehicle(10000))
			recordRepo := &fakeRecordRepo{}
			svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, recordRepo)

			_, err := svc.AddRecord(context.Background(), tt.record)

			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if validationErr.Field != tt.field {
				t.Fatalf("field = %q, want %q", validationErr.Field, tt.field)
			}
			if len(recordRepo.records) != 0 {
				t.Fatalf("record stored despite validation failure")
			}
		})
	}
}

func TestAddRecordUnknownVehicle(t *testing.T) {
	svc := newMaintenanceService(newFakeVehicleRepo(), &fakeTripRepo{}, &fakeRecordRepo{})

	_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       uuid.New(),
		ServiceType:     domain.Repair,
		OdometerReading: 100,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAddRecordAdvancesOdometer(t *testing.T) {
	vehicle := testVehicle(23000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	recordRepo := &fakeRecordRepo{}
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, recordRepo)

	_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.Repair,
		OdometerReading: 24100,
		PartsCost:       500,
	})
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	if got := vehicleRepo.stored(vehicle.ID).LastOdometer; got != 24100 {
		t.Fatalf("odometer = %d, want advanced to 24100", got)
	}
}

func TestAddRecordBelowCurrentOdometerLeavesVehicleAlone(t *testing.T) {
	vehicle := testVehicle(24000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	recordRepo := &fakeRecordRepo{}
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, recordRepo)

	// Backfilling an old repair must not touch the vehicle row at all.
	_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.Repair,
		OdometerReading: 18000,
	})
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	if got := vehicleRepo.stored(vehicle.ID).LastOdometer; got != 24000 {
		t.Fatalf("odometer = %d, want unchanged 24000", got)
	}
	if vehicleRepo.updateCnt != 0 {
		t.Fatalf("vehicle updated %d times for a pure backfill", vehicleRepo.updateCnt)
	}
	if len(recordRepo.records) != 1 {
		t.Fatalf("stored %d records, want 1", len(recordRepo.records))
	}
}

func TestAddRecordMovesServiceBaselines(t *testing.T) {
	tests := []struct {
		name        string
		serviceType domain.ServiceType
		wantOil     int
		wantBrake   int
	}{
		{"oil change moves oil only", domain.OilChange, 24100, 0},
		{"brake service moves brake only", domain.BrakeService, 0, 24100},
		{"full service moves both", domain.FullService, 24100, 24100},
		{"repair moves neither", domain.Repair, 0, 0},
		{"tire rotation moves neither", domain.TireRotation, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := testVehicle(23000)
			vehicleRepo := newFakeVehicleRepo(vehicle)
			svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, &fakeRecordRepo{})

			_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
				VehicleID:       vehicle.ID,
				ServiceType:     tt.serviceType,
				OdometerReading: 24100,
			})
			if err != nil {
				t.Fatalf("AddRecord: %v", err)
			}

			stored := vehicleRepo.stored(vehicle.ID)
			if stored.OilLastService != tt.wantOil {
				t.Fatalf("oil baseline = %d, want %d", stored.OilLastService, tt.wantOil)
			}
			if stored.BrakeLastService != tt.wantBrake {
				t.Fatalf("brake baseline = %d, want %d", stored.BrakeLastService, tt.wantBrake)
			}
		})
	}
}

func TestAddRecordBaselineBelowCurrentStillPersists(t *testing.T) {
	// An oil change recorded below the current odometer still moves the
	// baseline forward, and the vehicle row write goes through the shared
	// two-step coordinator.
	vehicle := testVehicle(24000)
	vehicle.OilLastService = 10000
	vehicleRepo := newFakeVehicleRepo(vehicle)
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, &fakeRecordRepo{})

	_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.OilChange,
		OdometerReading: 20000,
	})
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	stored := vehicleRepo.stored(vehicle.ID)
	if stored.OilLastService != 20000 {
		t.Fatalf("oil baseline = %d, want 20000", stored.OilLastService)
	}
	if stored.LastOdometer != 24000 {
		t.Fatalf("odometer = %d, want unchanged 24000", stored.LastOdometer)
	}
}

func TestAddRecordInsertFailureAfterAdvance(t *testing.T) {
	vehicle := testVehicle(23000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	recordRepo := &fakeRecordRepo{createErr: errors.New("insert refused")}
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, recordRepo)

	_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.OilChange,
		OdometerReading: 24100,
	})

	var partialErr *domain.PartialConsistencyError
	if !errors.As(err, &partialErr) {
		t.Fatalf("got %v, want PartialConsistencyError", err)
	}
	// Same divergence contract as a plain odometer advance: the vehicle row
	// moved, the ledger did not.
	if got := vehicleRepo.stored(vehicle.ID).LastOdometer; got != 24100 {
		t.Fatalf("odometer = %d, want 24100 after partial failure", got)
	}
	if len(recordRepo.records) != 0 {
		t.Fatalf("record stored despite insert failure")
	}
}

func TestAddRecordKeepsSuppliedServiceDate(t *testing.T) {
	vehicle := testVehicle(24000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, &fakeRecordRepo{})

	serviceDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.Repair,
		ServiceDate:     serviceDate,
		OdometerReading: 20000,
	})
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}
	if !created.ServiceDate.Equal(serviceDate) {
		t.Fatalf("service date = %v, want %v", created.ServiceDate, serviceDate)
	}
}

func TestListRecordsOrdersByServiceDate(t *testing.T) {
	vehicle := testVehicle(24000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, &fakeRecordRepo{})

	// Backfilled out of chronological order on purpose.
	for _, day := range []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
			VehicleID:       vehicle.ID,
			ServiceType:     domain.Repair,
			ServiceDate:     day,
			OdometerReading: 20000,
		})
		if err != nil {
			t.Fatalf("AddRecord(%v): %v", day, err)
		}
	}

	records, err := svc.ListRecords(context.Background(), vehicle.ID)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Most recent service date first, regardless of insertion order.
	if got := records[0].ServiceDate.Month(); got != time.June {
		t.Fatalf("first record dated %v, want June", got)
	}
	for i := 1; i < len(records); i++ {
		if records[i].ServiceDate.After(records[i-1].ServiceDate) {
			t.Fatalf("records out of order at %d: %v after %v",
				i, records[i].ServiceDate, records[i-1].ServiceDate)
		}
	}
}

func TestGetRecord(t *testing.T) {
	vehicle := testVehicle(24000)
	vehicleRepo := newFakeVehicleRepo(vehicle)
	recordRepo := &fakeRecordRepo{}
	svc := newMaintenanceService(vehicleRepo, &fakeTripRepo{}, recordRepo)

	created, err := svc.AddRecord(context.Background(), &domain.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		ServiceType:     domain.Repair,
		OdometerReading: 20000,
		Notes:           "replaced alternator",
	})
	if err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	got, err := svc.GetRecord(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got.Notes != "replaced alternator" {
		t.Fatalf("notes = %q", got.Notes)
	}

	if _, err := svc.GetRecord(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound for unknown record", err)
	}
}
