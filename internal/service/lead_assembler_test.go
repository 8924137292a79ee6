package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"leadscan/internal/models"
)

func TestAssembleLead(t *testing.T) {
	id := uuid.MustParse("0198b2a0-0000-7000-8000-000000000001")
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	lead := AssembleLead(
		models.FieldCandidates{Name: "Jane Doe", Email: "jane@co.io", Phone: "555-0100100"},
		models.LeadStatusNew, models.LeadSourceDocument, id, at,
	)

	if lead.ID != id {
		t.Errorf("id = %v, want %v", lead.ID, id)
	}
	if lead.Name != "Jane Doe" || lead.Email != "jane@co.io" || lead.Phone != "555-0100100" {
		t.Errorf("candidate fields not carried over: %+v", lead)
	}
	if lead.Status != "New" {
		t.Errorf("status = %q, want %q", lead.Status, "New")
	}
	if lead.Source != "Document" {
		t.Errorf("source = %q, want %q", lead.Source, "Document")
	}
	if !lead.CreatedAt.Equal(at) {
		t.Errorf("createdAt = %v, want %v", lead.CreatedAt, at)
	}
}

func TestAssembleLeadKeepsEmptyCandidates(t *testing.T) {
	lead := AssembleLead(models.FieldCandidates{}, models.LeadStatusNew, models.LeadSourceDocument,
		uuid.Must(uuid.NewV7()), time.Now())

	if lead.Name != "" || lead.Email != "" || lead.Phone != "" {
		t.Errorf("empty candidates must stay empty, got %+v", lead)
	}
}
