package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid header", []byte("%PDF-1.7\n..."), true},
		{"exact magic", []byte("%PDF-"), true},
		{"html error page", []byte("<!DOCTYPE html>"), false},
		{"truncated", []byte("%PDF"), false},
		{"empty", []byte{}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePDF(tt.data); got != tt.want {
				t.Errorf("ValidatePDF(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestExtractPagesRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("<!DOCTYPE html><html>error page</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New().ExtractPages(path)
	if err == nil {
		t.Fatal("ExtractPages() on an HTML file: expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("error = %q, want mention of missing PDF header", err)
	}
}

func TestExtractPagesMissingFile(t *testing.T) {
	_, err := New().ExtractPages(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("ExtractPages() on a missing file: expected error, got nil")
	}
}
