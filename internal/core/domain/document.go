package domain

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	Insurance      DocumentType = "insurance"
	RevenueLicense DocumentType = "revenue_license"
	Registration   DocumentType = "registration"
	EmissionTest   DocumentType = "emission_test"
)

// Document is read-only in the engine core; the upload flow belongs to the
// blob-store collaborator.
type Document struct {
	ID         uuid.UUID    `json:"id"`
	VehicleID  uuid.UUID    `json:"vehicle_id"`
	DocType    DocumentType `json:"doc_type"`
	ExpiryDate time.Time    `json:"expiry_date"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (d *Document) DaysLeft(now time.Time) int {
	return DaysUntil(d.ExpiryDate, now)
}

func (d *Document) Expired(now time.Time) bool {
	return d.DaysLeft(now) < 0
}
