// Package extract implements the engine's document collaborators: plain
// text extraction and structured field extraction from PDF resumes, with
// optional circuit breaker protection around both.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumescope/internal/errors"
)

// PDFTextExtractor extracts layout plain text from PDF documents.
type PDFTextExtractor struct{}

// NewPDFTextExtractor creates a PDF text extractor.
func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// ExtractText reads every page of the document in order and concatenates the
// plain text. Pages that cannot be decoded individually are skipped so one
// bad page does not lose the rest of the document.
func (e *PDFTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			fmt.Sprintf("failed to open PDF document: %v", err), err).
			WithContext("path", path)
	}
	defer func() { _ = file.Close() }()

	var sb strings.Builder
	pages := reader.NumPage()

	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// pageCount returns the number of pages in a PDF document.
func pageCount(path string) (int, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return 0, errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			fmt.Sprintf("failed to open PDF document: %v", err), err).
			WithContext("path", path)
	}
	defer func() { _ = file.Close() }()

	return reader.NumPage(), nil
}
