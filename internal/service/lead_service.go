package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadscan/internal/models"
)

// LeadStore is the persistence contract for leads. Implementations must
// treat identifiers as opaque and support concurrent inserts; the service
// adds no locking of its own.
type LeadStore interface {
	// Insert stores a lead and returns the identifier it is stored under.
	Insert(ctx context.Context, lead *models.Lead) (uuid.UUID, error)
	// FindAll returns all leads, newest first.
	FindAll(ctx context.Context) ([]models.Lead, error)
	// FindByID returns the lead, or (nil, nil) when the id matches nothing.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	// Update applies the non-nil fields and reports whether the id matched.
	Update(ctx context.Context, id uuid.UUID, fields models.LeadUpdate) (bool, error)
	// Delete removes the lead and reports whether the id matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// LeadService handles lead CRUD business logic.
type LeadService struct {
	store LeadStore
	newID func() uuid.UUID
	now   func() time.Time
}

// NewLeadService creates a new LeadService.
func NewLeadService(store LeadStore) *LeadService {
	return &LeadService{
		store: store,
		newID: func() uuid.UUID { return uuid.Must(uuid.NewV7()) },
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateLeadInput is the payload for a manually submitted lead.
type CreateLeadInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Source string `json:"source"`
}

// Create stores a manually submitted lead. Identity and creation time are
// assigned here; an empty status defaults to "New", the source is kept as
// supplied.
func (s *LeadService) Create(ctx context.Context, input CreateLeadInput) (*models.Lead, error) {
	status := input.Status
	if status == "" {
		status = models.LeadStatusNew
	}

	lead := AssembleLead(
		models.FieldCandidates{Name: input.Name, Email: input.Email, Phone: input.Phone},
		status, input.Source, s.newID(), s.now(),
	)
	if _, err := s.store.Insert(ctx, lead); err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}
	return lead, nil
}

// List returns all stored leads. The result is never nil.
func (s *LeadService) List(ctx context.Context) ([]models.Lead, error) {
	leads, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}

// GetByID retrieves a single lead.
func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	lead, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting lead: %w", err)
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

// Update applies a partial update to a stored lead.
func (s *LeadService) Update(ctx context.Context, id uuid.UUID, fields models.LeadUpdate) error {
	if fields.Name == nil && fields.Email == nil && fields.Phone == nil &&
		fields.Status == nil && fields.Source == nil {
		return fmt.Errorf("no updatable fields in request")
	}

	matched, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	if !matched {
		return ErrLeadNotFound
	}
	return nil
}

// Delete removes a lead by identifier.
func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	if !deleted {
		return ErrLeadNotFound
	}
	return nil
}
