package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"leadscan/internal/models"
	"leadscan/internal/service"
)

// LeadHandler serves the CRUD endpoints for stored leads.
type LeadHandler struct {
	leadService *service.LeadService
}

func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/leads", h.Create)
	mux.HandleFunc("GET /api/v1/leads", h.List)
	mux.HandleFunc("GET /api/v1/leads/{id}", h.GetByID)
	mux.HandleFunc("PUT /api/v1/leads/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/leads/{id}", h.Delete)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateLeadInput
	if err := Decode(r, &in); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.leadService.Create(r.Context(), in)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to create lead")
		return
	}

	JSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.List(r.Context())
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	JSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	lead, err := h.leadService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			Error(w, http.StatusNotFound, "lead not found")
			return
		}
		Error(w, http.StatusInternalServerError, "failed to fetch lead")
		return
	}

	JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var update models.LeadUpdate
	if err := Decode(r, &update); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.leadService.Update(r.Context(), id, update); err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			Error(w, http.StatusNotFound, "lead not found")
			return
		}
		if strings.Contains(err.Error(), "no updatable fields") {
			Error(w, http.StatusBadRequest, err.Error())
			return
		}
		Error(w, http.StatusInternalServerError, "failed to update lead")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "lead updated"})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	if err := h.leadService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			Error(w, http.StatusNotFound, "lead not found")
			return
		}
		Error(w, http.StatusInternalServerError, "failed to delete lead")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "lead deleted"})
}
