package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"leadscan/internal/models"
)

// LeadRepository handles lead database operations.
type LeadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new LeadRepository.
func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Insert stores a lead and returns the identifier it was stored under. A nil
// lead id means identity is left to the store; a UUIDv7 is assigned here.
func (r *LeadRepository) Insert(ctx context.Context, l *models.Lead) (uuid.UUID, error) {
	id := l.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (id, name, email, phone, status, source, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, l.Name, l.Email, l.Phone, l.Status, l.Source, l.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting lead: %w", err)
	}
	return id, nil
}

// FindAll returns every lead, newest first.
func (r *LeadRepository) FindAll(ctx context.Context) ([]models.Lead, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, status, source, created_at
		 FROM leads
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.Source, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning lead row: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, nil
}

// FindByID retrieves a lead by its UUID, or (nil, nil) when none matches.
func (r *LeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	var l models.Lead
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, status, source, created_at
		 FROM leads WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.Source, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying lead by id: %w", err)
	}
	return &l, nil
}

// Update applies the non-nil fields of a partial update and reports whether
// the identifier matched a stored lead. Columns come from the fixed list
// below; caller input never reaches the SQL text.
func (r *LeadRepository) Update(ctx context.Context, id uuid.UUID, fields models.LeadUpdate) (bool, error) {
	set := []string{}
	args := []interface{}{}
	argIdx := 1

	if fields.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *fields.Name)
		argIdx++
	}
	if fields.Email != nil {
		set = append(set, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *fields.Email)
		argIdx++
	}
	if fields.Phone != nil {
		set = append(set, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *fields.Phone)
		argIdx++
	}
	if fields.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *fields.Status)
		argIdx++
	}
	if fields.Source != nil {
		set = append(set, fmt.Sprintf("source = $%d", argIdx))
		args = append(args, *fields.Source)
		argIdx++
	}
	if len(set) == 0 {
		return false, fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d", strings.Join(set, ", "), argIdx)
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("updating lead: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// Delete removes a lead and reports whether the identifier matched.
func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM leads WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("deleting lead: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
