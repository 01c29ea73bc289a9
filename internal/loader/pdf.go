package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts plain text from PDF files.
type PDFExtractor struct{}

func (PDFExtractor) Name() string {
	return "pdf"
}

func (PDFExtractor) Extract(path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return "", ErrUnsupported
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return string(b), nil
}
