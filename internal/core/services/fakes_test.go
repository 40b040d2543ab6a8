package services

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/google/uuid"
)

// In-memory collaborators for service tests. Each fake allows one injectable
// failure per method so partial-failure paths can be driven deterministically.

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[uuid.UUID]*domain.Vehicle
	order    []uuid.UUID

	updateErr error
	updateCnt int
	createErr error
	listErr   error
	deleteErr error
}

func newFakeVehicleRepo(vehicles ...*domain.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*domain.Vehicle)}
	for _, v := range vehicles {
		r.vehicles[v.ID] = v
		r.order = append(r.order, v.ID)
	}
	return r
}

func (r *fakeVehicleRepo) CreateVehicle(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *v
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.vehicles[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *fakeVehicleRepo) GetVehicleByID(_ context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVehicleRepo) ListVehicles(_ context.Context) ([]*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	// Newest-registered first, like the real store.
	out := make([]*domain.Vehicle, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if v, ok := r.vehicles[r.order[i]]; ok {
			copied := *v
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) UpdateVehicle(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCnt++
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	if _, ok := r.vehicles[v.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	stored := *v
	stored.UpdatedAt = time.Now().UTC()
	r.vehicles[v.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeVehicleRepo) DeleteVehicle(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.vehicles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) stored(id uuid.UUID) *domain.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vehicles[id]
}

type fakeTripRepo struct {
	mu        sync.Mutex
	trips     []*domain.Trip
	createErr error
}

func (r *fakeTripRepo) CreateTrip(_ context.Context, trip *domain.Trip) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *trip
	r.trips = append(r.trips, &stored)
	copied := stored
	return &copied, nil
}

func (r *fakeTripRepo) GetTripsByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Trip
	for i := len(r.trips) - 1; i >= 0; i-- {
		if r.trips[i].VehicleID == vehicleID {
			copied := *r.trips[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeRecordRepo struct {
	mu        sync.Mutex
	records   []*domain.MaintenanceRecord
	createErr error
}

func (r *fakeRecordRepo) CreateRecord(_ context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *record
	stored.CreatedAt = time.Now().UTC()
	r.records = append(r.records, &stored)
	copied := stored
	return &copied, nil
}

func (r *fakeRecordRepo) GetRecordByID(_ context.Context, id uuid.UUID) (*domain.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRecordRepo) GetRecordsByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MaintenanceRecord
	for _, rec := range r.records {
		if rec.VehicleID == vehicleID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	// Most recent service date first, like the real store.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ServiceDate.After(out[j].ServiceDate)
	})
	return out, nil
}

type fakeDocumentRepo struct {
	docs    []*domain.Document
	listErr error
}

func (r *fakeDocumentRepo) GetDocumentsByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*domain.Document, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Document
	for _, d := range r.docs {
		if d.VehicleID == vehicleID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

type fakeStorage struct {
	uploadErr error
	lastKey   string
}

func (s *fakeStorage) Upload(_ context.Context, body io.Reader, key string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.lastKey = key
	return s.PublicURL(key), nil
}

func (s *fakeStorage) PublicURL(key string) string {
	return "https://blobs.test/" + key
}
