// Package loader reads documents of unknown format from the filesystem and
// turns them into plain text. Extractors are tried in priority order; each
// signals ErrUnsupported for files it cannot handle so the next one gets a
// chance.
package loader

import "errors"

// Document is one unit of extracted source content. It is immutable after
// creation; re-adding a file with the same name produces a new Document
// under a suffixed name, never a mutation.
type Document struct {
	SourceID string // base file name, unique within the knowledge base
	Text     string // extracted plain text
	Format   string // best-effort content type, informational only
}

// ErrUnsupported marks a file no extractor can handle.
var ErrUnsupported = errors.New("unsupported document format")

// Extractor turns a stored file into plain text. Implementations return
// ErrUnsupported for formats they do not handle; any other error means the
// file should have been readable but was not.
type Extractor interface {
	Extract(path string) (string, error)
	Name() string
}
