package service

import "errors"

// Sentinel errors classified at the HTTP boundary with errors.Is. Wrapped
// variants built with fmt.Errorf("%w: ...") keep the classification.
var (
	// ErrDocumentFormat marks uploads whose bytes do not parse as a PDF.
	// Covers declared-content-type mismatches caught by the preflight parse
	// and structurally broken pages discovered mid-render.
	ErrDocumentFormat = errors.New("document is not a valid PDF")

	// ErrOCRFailed marks a recognition failure on any page. The document is
	// aborted as a whole; no retry, no partial lead.
	ErrOCRFailed = errors.New("ocr failed")

	// ErrLeadNotFound marks get/update/delete against an identifier that is
	// well formed but matches no stored lead.
	ErrLeadNotFound = errors.New("lead not found")
)
