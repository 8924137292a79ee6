package service

import (
	"time"

	"github.com/google/uuid"

	"leadscan/internal/models"
)

// AssembleLead combines extracted field candidates with identity and
// bookkeeping metadata into a persistable lead. Pure combination: the id and
// the clock reading are supplied by the caller, so there is no I/O and no
// hidden state.
func AssembleLead(c models.FieldCandidates, status, source string, id uuid.UUID, at time.Time) *models.Lead {
	return &models.Lead{
		ID:        id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    status,
		Source:    source,
		CreatedAt: at,
	}
}
