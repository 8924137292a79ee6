// Package tesseract provides an ocr.Engine backed by a locally installed
// Tesseract through gosseract.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"leadscan/internal/ocr"
)

// Engine recognizes page text with Tesseract. A fresh gosseract client is
// created per call: clients are not goroutine safe, and a per-call lifetime
// keeps concurrent document pipelines isolated.
type Engine struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract-backed engine. languages are the recognition
// languages applied when an input does not carry its own.
func New(languages ...string) *Engine {
	return &Engine{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

// Name identifies the engine.
func (e *Engine) Name() string { return "tesseract" }

// Recognize runs OCR on one page image and returns the trimmed plain text.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return "", fmt.Errorf("setting page image: %w", err)
	}

	langs := in.Languages
	if len(langs) == 0 {
		langs = e.languages
	}
	if len(langs) > 0 {
		if err := c.SetLanguage(langs...); err != nil {
			return "", fmt.Errorf("setting languages: %w", err)
		}
	}

	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return "", fmt.Errorf("setting dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
