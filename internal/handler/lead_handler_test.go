package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"leadscan/internal/models"
	"leadscan/internal/service"
)

// stubStore is an in-memory service.LeadStore for handler tests.
type stubStore struct {
	leads     []models.Lead
	insertErr error
}

func (s *stubStore) Insert(ctx context.Context, lead *models.Lead) (uuid.UUID, error) {
	if s.insertErr != nil {
		return uuid.Nil, s.insertErr
	}
	if lead.ID == uuid.Nil {
		lead.ID = uuid.Must(uuid.NewV7())
	}
	s.leads = append(s.leads, *lead)
	return lead.ID, nil
}

func (s *stubStore) FindAll(ctx context.Context) ([]models.Lead, error) {
	if len(s.leads) == 0 {
		return nil, nil
	}
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

func (s *stubStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	for i := range s.leads {
		if s.leads[i].ID == id {
			l := s.leads[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (s *stubStore) Update(ctx context.Context, id uuid.UUID, fields models.LeadUpdate) (bool, error) {
	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		if fields.Name != nil {
			s.leads[i].Name = *fields.Name
		}
		if fields.Email != nil {
			s.leads[i].Email = *fields.Email
		}
		if fields.Phone != nil {
			s.leads[i].Phone = *fields.Phone
		}
		if fields.Status != nil {
			s.leads[i].Status = *fields.Status
		}
		if fields.Source != nil {
			s.leads[i].Source = *fields.Source
		}
		return true, nil
	}
	return false, nil
}

func (s *stubStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newLeadMux(store service.LeadStore) *http.ServeMux {
	mux := http.NewServeMux()
	NewLeadHandler(service.NewLeadService(store)).RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

func TestCreateLead(t *testing.T) {
	mux := newLeadMux(&stubStore{})

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":"Ada Lovelace","email":"ada@engine.io"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var lead models.Lead
	if err := json.NewDecoder(rec.Body).Decode(&lead); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lead.ID == uuid.Nil {
		t.Error("response lead has no id")
	}
	if lead.Status != "New" {
		t.Errorf("status = %q, want default New", lead.Status)
	}
}

func TestCreateLeadBadBody(t *testing.T) {
	mux := newLeadMux(&stubStore{})

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateLeadStoreDown(t *testing.T) {
	mux := newLeadMux(&stubStore{insertErr: errors.New("connection refused")})

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":"X"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestListLeadsEmptyIsJSONArray(t *testing.T) {
	mux := newLeadMux(&stubStore{})

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/leads", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want an empty JSON array, never null", got)
	}
}

func TestGetLeadMalformedID(t *testing.T) {
	mux := newLeadMux(&stubStore{})

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/leads/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "invalid lead id" {
		t.Errorf("error = %q, want %q", got, "invalid lead id")
	}
}

func TestGetLeadUnknownID(t *testing.T) {
	mux := newLeadMux(&stubStore{})

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/leads/"+uuid.Must(uuid.NewV7()).String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "lead not found" {
		t.Errorf("error = %q, want %q", got, "lead not found")
	}
}

func TestGetLead(t *testing.T) {
	store := &stubStore{}
	mux := newLeadMux(store)

	created := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":"Jane Doe"}`)
	var lead models.Lead
	if err := json.NewDecoder(created.Body).Decode(&lead); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/leads/"+lead.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got models.Lead
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Jane Doe" {
		t.Errorf("name = %q, want %q", got.Name, "Jane Doe")
	}
}

func TestUpdateLead(t *testing.T) {
	store := &stubStore{}
	mux := newLeadMux(store)

	created := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":"Jane Doe","email":"old@co.io"}`)
	var lead models.Lead
	if err := json.NewDecoder(created.Body).Decode(&lead); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec := doJSON(t, mux, http.MethodPut, "/api/v1/leads/"+lead.ID.String(), `{"email":"new@co.io"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if store.leads[0].Email != "new@co.io" {
		t.Errorf("stored email = %q, want updated value", store.leads[0].Email)
	}
}

func TestUpdateLeadNoFields(t *testing.T) {
	store := &stubStore{}
	mux := newLeadMux(store)

	created := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":"Jane Doe"}`)
	var lead models.Lead
	if err := json.NewDecoder(created.Body).Decode(&lead); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec := doJSON(t, mux, http.MethodPut, "/api/v1/leads/"+lead.ID.String(), `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); !strings.Contains(got, "no updatable fields") {
		t.Errorf("error = %q, want the field validation message", got)
	}
}

func TestUpdateLeadUnknownID(t *testing.T) {
	mux := newLeadMux(&stubStore{})

	rec := doJSON(t, mux, http.MethodPut, "/api/v1/leads/"+uuid.Must(uuid.NewV7()).String(), `{"email":"a@b.co"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteLeadDistinguishesBadIDFromMissing(t *testing.T) {
	store := &stubStore{}
	mux := newLeadMux(store)

	created := doJSON(t, mux, http.MethodPost, "/api/v1/leads", `{"name":"Jane Doe"}`)
	var lead models.Lead
	if err := json.NewDecoder(created.Body).Decode(&lead); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec := doJSON(t, mux, http.MethodDelete, "/api/v1/leads/"+lead.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}

	// Same id again: well formed but gone.
	rec = doJSON(t, mux, http.MethodDelete, "/api/v1/leads/"+lead.ID.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}

	// Malformed identifier: rejected before the store is consulted.
	rec = doJSON(t, mux, http.MethodDelete, "/api/v1/leads/garbage", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id status = %d, want 400", rec.Code)
	}
}
