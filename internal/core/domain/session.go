package domain

import (
	"github.com/google/uuid"
)

// Session is the explicit per-client state that replaces any ambient
// "current vehicle" global. It is passed into service calls so concurrent
// sessions never share a selection slot.
type Session struct {
	ID                string
	SelectedVehicleID *uuid.UUID
}

func (s *Session) HasSelection() bool {
	return s != nil && s.SelectedVehicleID != nil
}

func (s *Session) Selected(id uuid.UUID) bool {
	return s.HasSelection() && *s.SelectedVehicleID == id
}
