package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
}

// TextExtractor reads plain-text files verbatim. It is the narrow, reliable
// extractor used directly for known text formats.
type TextExtractor struct{}

func (TextExtractor) Name() string {
	return "text"
}

func (TextExtractor) Extract(path string) (string, error) {
	if !textExtensions[strings.ToLower(filepath.Ext(path))] {
		return "", ErrUnsupported
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	return string(b), nil
}
