package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFService validates uploaded document payloads before any rendering
// happens. The HTTP layer only checks the declared content type; parsing
// the bytes here catches declared-vs-actual mismatches without handing
// garbage to MuPDF.
type PDFService struct{}

// NewPDFService creates a new PDFService.
func NewPDFService() *PDFService {
	return &PDFService{}
}

// Validate parses raw as a PDF and returns its page count. Any parse
// failure surfaces as ErrDocumentFormat. The parser panics on some
// malformed cross-reference tables, so garbage input is fenced with a
// recover.
func (s *PDFService) Validate(raw []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = 0
			err = fmt.Errorf("%w: %v", ErrDocumentFormat, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDocumentFormat, err)
	}
	return reader.NumPage(), nil
}
