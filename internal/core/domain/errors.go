package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound marks lookups for rows that do not exist; repositories wrap it
// with entity context.
var ErrNotFound = errors.New("not found")

// ValidationError reports bad or missing user input. It is raised before any
// write is attempted, so an operation failing with it has zero side effects.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// StoreError reports a failed collaborator call. The operation is surfaced as
// a transient failure and never retried automatically.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %q failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PartialConsistencyError means the vehicle's odometer advanced but the
// dependent history append failed. Mileage and history have diverged; the
// caller must surface that distinctly instead of showing a generic failure.
// No compensation is attempted — retrying the append alone risks a duplicate
// row when the failure was transient but actually committed.
type PartialConsistencyError struct {
	VehicleID  uuid.UUID
	NewReading int
	Err        error
}

func (e *PartialConsistencyError) Error() string {
	return fmt.Sprintf("vehicle %s odometer advanced to %d but the history append failed: %v",
		e.VehicleID, e.NewReading, e.Err)
}

func (e *PartialConsistencyError) Unwrap() error {
	return e.Err
}
