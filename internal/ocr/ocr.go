// Package ocr defines the text-recognition boundary of the extraction
// pipeline. An Engine wraps an external recognition capability; the pipeline
// stays agnostic of which one is installed.
package ocr

import "context"

// Input is one rendered page handed to an Engine.
type Input struct {
	// Image holds the encoded bitmap, typically PNG.
	Image []byte
	// Format is an image format hint such as "png".
	Format string
	// PageIndex is the 0-based page number within the source document.
	PageIndex int
	// DPI is the render resolution, 0 when unknown.
	DPI int
	// Languages lists recognition language codes; the engine default
	// applies when empty.
	Languages []string
}

// Engine converts one page image into plain text. Recognized text may be
// empty when the page contains none; that is a valid result, not an error.
// Implementations must be safe for use by concurrent, independent pipelines.
type Engine interface {
	// Name identifies the engine, e.g. "tesseract".
	Name() string
	// Recognize runs recognition on a single page image.
	Recognize(ctx context.Context, in Input) (string, error)
}
