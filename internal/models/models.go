package models

import (
	"time"

	"github.com/google/uuid"
)

// -------------------------------------------------------
// Defaults
// -------------------------------------------------------

// Lead status and source are free text; these are the values the extraction
// pipeline stamps on document-derived leads.
const (
	LeadStatusNew      = "New"
	LeadSourceDocument = "Document"
)

// -------------------------------------------------------
// Domain Models
// -------------------------------------------------------

// Lead represents a prospective customer contact, extracted from a document
// or submitted manually.
type Lead struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Status    string    `json:"status" db:"status"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FieldCandidates holds the first pattern match per contact field found in a
// document's OCR text. An empty string means "not found", never a valid
// empty value.
type FieldCandidates struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LeadUpdate is a partial update for a stored lead. Nil fields are left
// untouched.
type LeadUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
	Source *string `json:"source"`
}
