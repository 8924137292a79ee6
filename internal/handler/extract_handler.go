package handler

import (
	"errors"
	"io"
	"net/http"

	"leadscan/internal/service"
)

// ExtractHandler serves the document upload endpoint that turns a PDF
// into a stored lead.
type ExtractHandler struct {
	extractService *service.ExtractService
	maxUploadBytes int64
}

func NewExtractHandler(extractService *service.ExtractService, maxUploadBytes int64) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *ExtractHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/leads/extract", h.Extract)
}

func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		Error(w, http.StatusBadRequest, "file must be a PDF")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		Error(w, http.StatusBadRequest, "reading upload")
		return
	}

	lead, err := h.extractService.ExtractLead(r.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentFormat):
			Error(w, http.StatusBadRequest, "file must be a valid PDF")
		case errors.Is(err, service.ErrOCRFailed):
			Error(w, http.StatusBadGateway, "text recognition failed")
		default:
			Error(w, http.StatusInternalServerError, "failed to process document")
		}
		return
	}

	JSON(w, http.StatusOK, lead)
}
