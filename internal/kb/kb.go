// Package kb manages the knowledge base: a directory of source documents
// and the single in-memory vector index derived from them. The index is a
// pure cache over the directory; it is rebuilt from the files at startup and
// kept in step with them on every add and clear.
package kb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/philippgille/chromem-go"

	"buddybot/internal/chunker"
	"buddybot/internal/index"
	"buddybot/internal/loader"
)

// ErrEmpty is returned by Retrieve when no documents are indexed.
var ErrEmpty = errors.New("knowledge base is empty")

// Manager owns the knowledge-base lifecycle. Mutations (Initialize,
// AddDocument, Clear) are serialized behind a write lock; Retrieve and
// ListDocuments run concurrently under a read lock, so queries never
// observe a half-built index.
type Manager struct {
	mu sync.RWMutex

	dir         string
	chunkMethod string
	loader      *loader.Loader
	factory     *chunker.Factory
	embed       chromem.EmbeddingFunc

	index *index.Index // nil while the knowledge base is empty
}

func New(dir string, cfg chunker.Config, chunkMethod string, embed chromem.EmbeddingFunc) *Manager {
	return &Manager{
		dir:         dir,
		chunkMethod: chunkMethod,
		loader:      loader.New(),
		factory:     chunker.NewFactory(cfg),
		embed:       embed,
	}
}

// Initialize scans the backing directory and builds the index from scratch.
// Files that fail to load are skipped and logged. Zero extractable chunks
// leave the knowledge base empty, which is not an error; a failed index
// build also leaves it empty but surfaces the failure as a diagnostic.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rebuild(ctx)
}

// rebuild re-derives the index from the backing directory. Caller must hold
// the write lock.
func (m *Manager) rebuild(ctx context.Context) error {
	m.index = nil

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create knowledge directory: %w", err)
	}

	docs, failures := m.loader.LoadDir(m.dir)
	for _, f := range failures {
		log.Printf("skipping %s: %v", f.Name, f.Err)
	}

	var entries []index.Entry
	for _, doc := range docs {
		entries = append(entries, m.chunkDocument(doc)...)
	}
	if len(entries) == 0 {
		log.Printf("knowledge base is empty, add documents to enable chat")
		return nil
	}

	ix, err := index.Build(ctx, m.embed, entries)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	m.index = ix
	log.Printf("initialized knowledge base with %d documents (%d chunks)", len(docs), len(entries))
	return nil
}

// chunkDocument splits one document into index entries. A chunker that
// rejects the content falls back to the plain text chunker.
func (m *Manager) chunkDocument(doc loader.Document) []index.Entry {
	chunkr, err := m.factory.GetChunker(doc.SourceID, m.chunkMethod)
	if err != nil {
		chunkr, _ = m.factory.GetChunkerByMethod("text")
	}

	chunks, err := chunkr.Chunk(doc.Text, doc.SourceID)
	if err != nil {
		log.Printf("%s chunker failed for %s: %v, falling back to text chunker", chunkr.Name(), doc.SourceID, err)
		textChunker, _ := m.factory.GetChunkerByMethod("text")
		chunks, err = textChunker.Chunk(doc.Text, doc.SourceID)
		if err != nil {
			return nil
		}
	}

	entries := make([]index.Entry, 0, len(chunks))
	for _, ch := range chunks {
		entries = append(entries, index.Entry{
			ID:      ch.ID,
			Text:    ch.Text,
			Source:  ch.Source,
			Section: ch.Section,
		})
	}
	return entries
}

// AddDocument stores the uploaded bytes under a collision-safe name, chunks
// and indexes the new document, and reports a status message. Any failure
// after the copy removes the copied file again, so the directory and the
// index never disagree about which documents exist.
func (m *Manager) AddDocument(ctx context.Context, data []byte, filename string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("create knowledge directory: %w", err)
	}

	name := m.freeName(filepath.Base(filename))
	path := filepath.Join(m.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("copy %q into knowledge base: %w", filename, err)
	}

	doc, err := m.loader.Load(path)
	if err != nil {
		m.removeFile(path)
		return "", err
	}

	entries := m.chunkDocument(doc)
	if len(entries) == 0 {
		m.removeFile(path)
		return fmt.Sprintf("No text could be extracted from %q. Document not added.", name), nil
	}

	if m.index == nil {
		ix, err := index.Build(ctx, m.embed, entries)
		if err != nil {
			m.removeFile(path)
			return "", fmt.Errorf("index %q: %w", name, err)
		}
		m.index = ix
		return fmt.Sprintf("Created knowledge base with %d chunks from %q.", len(entries), name), nil
	}

	if err := m.index.Add(ctx, entries); err != nil {
		// The incremental add may have landed partially. Remove the file
		// and re-derive the index from the remaining documents so the
		// knowledge base returns to its prior state.
		m.removeFile(path)
		if rerr := m.rebuild(ctx); rerr != nil {
			log.Printf("rebuild after failed add: %v", rerr)
		}
		return "", fmt.Errorf("index %q: %w", name, err)
	}

	return fmt.Sprintf("Added %q to the knowledge base (%d chunks).", name, len(entries)), nil
}

// freeName returns filename, or filename suffixed with _1, _2, ... when the
// name is already taken. The first free suffix wins.
func (m *Manager) freeName(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	name := filename
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(m.dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
}

func (m *Manager) removeFile(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("rollback failed for %s: %v", path, err)
	}
}

// Clear deletes every document and resets the knowledge base to empty.
func (m *Manager) Clear() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.RemoveAll(m.dir); err != nil {
		return "", fmt.Errorf("clear knowledge directory: %w", err)
	}
	m.index = nil

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("recreate knowledge directory: %w", err)
	}

	return "Knowledge base cleared.", nil
}

// ListDocuments returns the names of the stored documents, sorted.
func (m *Manager) ListDocuments() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list knowledge directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Retrieve returns the k chunks most similar to the query, or ErrEmpty when
// nothing is indexed.
func (m *Manager) Retrieve(ctx context.Context, query string, k int) ([]index.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.index == nil {
		return nil, ErrEmpty
	}
	return m.index.Search(ctx, query, k)
}

// Ready reports whether the index is built and queryable.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index != nil
}

// ChunkCount reports the number of indexed chunks.
func (m *Manager) ChunkCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.index == nil {
		return 0
	}
	return m.index.Len()
}
