package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"

	"github.com/google/uuid"
)

// SessionStore persists the single-slot selected-vehicle pointer per client
// session. Selections never expire on their own; they survive restarts and
// are only cleared explicitly.
type SessionStore struct {
	cache  ports.CachePort
	logger ports.LoggerPort
}

func NewSessionStore(cache ports.CachePort, logger ports.LoggerPort) *SessionStore {
	return &SessionStore{
		cache:  cache,
		logger: logger,
	}
}

func selectionKey(sessionID string) string {
	return fmt.Sprintf("session:%s:selected_vehicle", sessionID)
}

// Load restores a session from the store. A missing key is an empty
// selection, not an error.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	session := &domain.Session{ID: sessionID}

	raw, err := s.cache.Get(selectionKey(sessionID))
	if err != nil {
		if errors.Is(err, ports.ErrCacheMiss) {
			return session, nil
		}
		return nil, &domain.StoreError{Op: "load session", Err: err}
	}

	vehicleID, err := uuid.Parse(string(raw))
	if err != nil {
		// A corrupt slot degrades to "nothing selected"; the list default
		// rule will repopulate it.
		s.logger.Warn("Discarding unparseable session selection", map[string]interface{}{
			"session_id": sessionID,
			"value":      string(raw),
		})
		return session, nil
	}

	session.SelectedVehicleID = &vehicleID
	return session, nil
}

func (s *SessionStore) SetSelected(ctx context.Context, session *domain.Session, vehicleID uuid.UUID) error {
	if err := s.cache.Set(selectionKey(session.ID), []byte(vehicleID.String()), 0); err != nil {
		return &domain.StoreError{Op: "persist session selection", Err: err}
	}
	session.SelectedVehicleID = &vehicleID
	return nil
}

func (s *SessionStore) ClearSelected(ctx context.Context, session *domain.Session) error {
	if err := s.cache.Delete(selectionKey(session.ID)); err != nil {
		return &domain.StoreError{Op: "clear session selection", Err: err}
	}
	session.SelectedVehicleID = nil
	return nil
}
