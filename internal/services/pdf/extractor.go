// Package pdf provides per-page PDF text extraction.
//
// We use the ledongthuc/pdf library. It's a pure Go implementation — no
// CGO or external dependencies required, which keeps the tool a single
// static binary.
package pdf

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ledongthuc/pdf"
)

// Page holds the plain text of one physical page. Number is 1-based,
// matching what a PDF viewer shows.
type Page struct {
	Number int
	Text   string
}

// Extractor extracts per-page text from PDF files on disk.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractPages reads the PDF at path and returns one Page per physical
// page, in document order. Text order within a page is whatever the
// library yields; no layout reconstruction is attempted.
//
// A page whose text extraction fails (image-only pages, damaged content
// streams) comes back with empty Text so page numbering stays aligned.
// Injecting marker text here would leak fake words into the word counts
// downstream.
func (e *Extractor) ExtractPages(path string) ([]Page, error) {
	if err := checkHeader(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	pages := make([]Page, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Page %d of %s: text extraction failed: %v", i, path, err)
			pages = append(pages, Page{Number: i})
			continue
		}
		pages = append(pages, Page{Number: i, Text: text})
	}

	return pages, nil
}

// checkHeader rejects files that cannot be PDFs before handing them to
// the parser, so a corrupt download fails with a readable error.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, 5)
	n, _ := io.ReadFull(f, header)
	if !ValidatePDF(header[:n]) {
		return fmt.Errorf("%s is not a PDF (missing %%PDF- header)", path)
	}
	return nil
}

// ValidatePDF checks if the data looks like a PDF by its magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
