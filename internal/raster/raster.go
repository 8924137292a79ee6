// Package raster renders PDF pages to bitmap images with MuPDF.
package raster

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the page render resolution. It matches the go-fitz default;
// Tesseract accuracy drops sharply below ~150 DPI.
const DefaultDPI = 300

// Document is an opened PDF ready for page rendering. Pages render lazily,
// one at a time, in document order; a Document supports a single pass and is
// not restartable.
type Document struct {
	doc *fitz.Document
	dpi float64
}

// Open parses raw PDF bytes for rendering. It fails when the bytes are not a
// renderable document.
func Open(raw []byte, dpi float64) (*Document, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Document{doc: doc, dpi: dpi}, nil
}

// PageCount reports the number of pages.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// RenderPNG rasterizes one page (0-based) to PNG bytes.
func (d *Document) RenderPNG(page int) ([]byte, error) {
	b, err := d.doc.ImagePNG(page, d.dpi)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", page+1, err)
	}
	return b, nil
}

// Close releases the underlying MuPDF resources.
func (d *Document) Close() error {
	return d.doc.Close()
}
