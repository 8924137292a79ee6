package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadscan/internal/models"
	"leadscan/internal/ocr"
	"leadscan/internal/raster"
)

// pageRenderer is the slice of the rasterizer the pipeline needs: page count
// plus lazy, single-pass rendering in document order.
type pageRenderer interface {
	PageCount() int
	RenderPNG(page int) ([]byte, error)
	Close() error
}

// ExtractService runs the document-to-lead pipeline: preflight validation,
// rasterization, per-page OCR, field extraction, assembly, persistence.
// Processing is strictly sequential within one document; concurrent uploads
// run independent pipelines sharing only the store.
type ExtractService struct {
	pdf       *PDFService
	extractor *FieldExtractor
	engine    ocr.Engine
	store     LeadStore
	log       *slog.Logger

	open  func(raw []byte) (pageRenderer, error)
	newID func() uuid.UUID
	now   func() time.Time
}

// NewExtractService creates an ExtractService that renders with MuPDF at the
// default DPI and recognizes text with the given engine.
func NewExtractService(pdf *PDFService, extractor *FieldExtractor, engine ocr.Engine, store LeadStore, log *slog.Logger) *ExtractService {
	return &ExtractService{
		pdf:       pdf,
		extractor: extractor,
		engine:    engine,
		store:     store,
		log:       log,
		open: func(raw []byte) (pageRenderer, error) {
			doc, err := raster.Open(raw, raster.DefaultDPI)
			if err != nil {
				return nil, err
			}
			return doc, nil
		},
		newID: func() uuid.UUID { return uuid.Must(uuid.NewV7()) },
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ExtractLead runs the full pipeline on raw PDF bytes and returns the
// persisted lead. Any error aborts the whole document; no partial lead is
// ever stored.
func (s *ExtractService) ExtractLead(ctx context.Context, raw []byte) (*models.Lead, error) {
	pages, err := s.pdf.Validate(raw)
	if err != nil {
		return nil, err
	}

	doc, err := s.open(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentFormat, err)
	}
	defer doc.Close()

	text, err := s.recognizeAll(ctx, doc)
	if err != nil {
		return nil, err
	}

	candidates := s.extractor.Extract(text)
	lead := AssembleLead(candidates, models.LeadStatusNew, models.LeadSourceDocument, s.newID(), s.now())

	if _, err := s.store.Insert(ctx, lead); err != nil {
		return nil, fmt.Errorf("storing lead: %w", err)
	}

	s.log.Info("lead extracted",
		"lead_id", lead.ID,
		"pages", pages,
		"engine", s.engine.Name(),
		"name_found", lead.Name != "",
		"email_found", lead.Email != "",
		"phone_found", lead.Phone != "")

	return lead, nil
}

// recognizeAll renders and recognizes every page in order and joins the
// per-page texts with a newline. A page yielding no text still contributes
// an empty segment; a recognition failure on any page aborts the document
// with the remaining pages unprocessed.
func (s *ExtractService) recognizeAll(ctx context.Context, doc pageRenderer) (string, error) {
	count := doc.PageCount()
	texts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		img, err := doc.RenderPNG(i)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrDocumentFormat, i+1, err)
		}
		text, err := s.engine.Recognize(ctx, ocr.Input{
			Image:     img,
			Format:    "png",
			PageIndex: i,
			DPI:       raster.DefaultDPI,
		})
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrOCRFailed, i+1, err)
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, "\n"), nil
}
