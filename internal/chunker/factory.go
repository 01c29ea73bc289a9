package chunker

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Factory picks a chunker based on the chunking method or the file type.
type Factory struct {
	config Config
}

func NewFactory(config Config) *Factory {
	return &Factory{config: config.normalized()}
}

// GetChunker returns the chunker for a file. An explicitly configured
// method wins; otherwise the file extension decides.
func (f *Factory) GetChunker(filePath, method string) (Chunker, error) {
	if method != "" {
		return f.GetChunkerByMethod(method)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".md", ".markdown":
		return NewMarkdownChunker(f.config), nil
	default:
		return NewTextChunker(f.config), nil
	}
}

// GetChunkerByMethod returns a chunker by method name.
func (f *Factory) GetChunkerByMethod(method string) (Chunker, error) {
	switch strings.ToLower(method) {
	case "markdown", "md":
		return NewMarkdownChunker(f.config), nil
	case "simple", "text", "txt":
		return NewTextChunker(f.config), nil
	default:
		return nil, fmt.Errorf("unknown chunking method: %s", method)
	}
}
