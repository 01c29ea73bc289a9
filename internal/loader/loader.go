package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader loads documents by trying its extractors in priority order.
type Loader struct {
	extractors []Extractor
	text       TextExtractor
}

func New() *Loader {
	return &Loader{
		extractors: []Extractor{PDFExtractor{}, TextExtractor{}},
	}
}

// Load extracts one file into a Document. Known text formats go straight to
// the text extractor; everything else runs through the extractor chain. When
// no extractor handles the format the error wraps ErrUnsupported.
func (l *Loader) Load(path string) (Document, error) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))

	if textExtensions[ext] {
		text, err := l.text.Extract(path)
		if err != nil {
			return Document{}, fmt.Errorf("load %s: %w", name, err)
		}
		return Document{SourceID: name, Text: text, Format: formatOf(ext)}, nil
	}

	for _, ex := range l.extractors {
		text, err := ex.Extract(path)
		if err == nil {
			return Document{SourceID: name, Text: text, Format: formatOf(ext)}, nil
		}
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		return Document{}, fmt.Errorf("load %s with %s extractor: %w", name, ex.Name(), err)
	}

	return Document{}, fmt.Errorf("load %s: %w", name, ErrUnsupported)
}

// Failure records a file that could not be loaded during a batch load.
type Failure struct {
	Name string
	Err  error
}

// LoadDir loads every regular file in dir. Extraction failures do not abort
// the batch; they are returned alongside the successfully loaded documents
// so the caller can decide whether to skip or abort.
func (l *Loader) LoadDir(dir string) ([]Document, []Failure) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []Failure{{Name: dir, Err: err}}
	}

	var docs []Document
	var failures []Failure
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		doc, err := l.Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			failures = append(failures, Failure{Name: entry.Name(), Err: err})
			continue
		}
		docs = append(docs, doc)
	}

	return docs, failures
}

func formatOf(ext string) string {
	return strings.TrimPrefix(ext, ".")
}
