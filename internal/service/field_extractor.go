package service

import (
	"regexp"

	"leadscan/internal/models"
)

// Extraction patterns, applied to the whole OCR text blob. The name label is
// optional, so any capitalized-word run qualifies ("New York" matches as a
// name); the phone shape accepts any 8+ run of digit/space/hyphen/paren.
// Both are known false-positive sources. Do not tighten them without a
// product decision: it changes extraction results materially.
var (
	nameRegex  = regexp.MustCompile(`(?:Name[:\s]*)?([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`)
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}`)
)

// FieldExtractor derives contact field candidates from OCR text.
type FieldExtractor struct{}

// NewFieldExtractor creates a new FieldExtractor.
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{}
}

// Extract runs the three field patterns over the full text and keeps the
// first match of each. A field with no match resolves to "", never to an
// error: empty means "not found". Pure function of its input.
func (e *FieldExtractor) Extract(text string) models.FieldCandidates {
	var c models.FieldCandidates
	if m := nameRegex.FindAllStringSubmatch(text, -1); len(m) > 0 {
		c.Name = m[0][1]
	}
	if m := emailRegex.FindAllString(text, -1); len(m) > 0 {
		c.Email = m[0]
	}
	if m := phoneRegex.FindAllString(text, -1); len(m) > 0 {
		c.Phone = m[0]
	}
	return c
}
