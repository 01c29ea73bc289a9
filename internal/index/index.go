// Package index stores embedded chunks and answers similarity queries. It
// wraps a chromem-go collection; the embedding provider is fixed at build
// time through the collection's EmbeddingFunc, so an index never mixes
// vectors from different providers.
package index

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/philippgille/chromem-go"
)

const collectionName = "docs"

// ErrEmptyInput is returned by Build when there is nothing to index.
// Callers treat this as "no index", not as a user-facing error.
var ErrEmptyInput = errors.New("no entries to index")

// Entry is one chunk to be embedded and stored.
type Entry struct {
	ID      string
	Text    string
	Source  string
	Section string
}

// Result is one retrieved chunk with its similarity score.
type Result struct {
	Text       string
	Source     string
	Section    string
	Similarity float32
}

// Index is an in-memory vector index over document chunks. Search never
// mutates it; Build and Add must not run concurrently with searches (the
// knowledge base manager serializes them).
type Index struct {
	db   *chromem.DB
	coll *chromem.Collection

	order map[string]int // entry ID -> insertion ordinal, breaks score ties
	next  int
}

// Build constructs a fresh index from a batch of entries using the given
// embedding function.
func Build(ctx context.Context, embed chromem.EmbeddingFunc, entries []Entry) (*Index, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	db := chromem.NewDB()
	coll, err := db.CreateCollection(collectionName, map[string]string{}, embed)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	ix := &Index{db: db, coll: coll, order: make(map[string]int)}
	if err := ix.Add(ctx, entries); err != nil {
		return nil, err
	}
	return ix, nil
}

// Add appends entries to the index. Previously stored entries remain
// retrievable.
func (ix *Index) Add(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]chromem.Document, 0, len(entries))
	for _, e := range entries {
		ix.order[e.ID] = ix.next
		ix.next++
		docs = append(docs, chromem.Document{
			ID:      e.ID,
			Content: e.Text,
			Metadata: map[string]string{
				"source":  e.Source,
				"section": e.Section,
			},
		})
	}

	if err := ix.coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// Search embeds the query through the collection's embedding function and
// returns up to k entries ordered best-first, equal scores in insertion
// order. k is clamped to the index size; an empty index or non-positive k
// yields no results and no error.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if n := ix.coll.Count(); k > n {
		k = n
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := ix.coll.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return ix.order[results[i].ID] < ix.order[results[j].ID]
	})

	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, Result{
			Text:       r.Content,
			Source:     r.Metadata["source"],
			Section:    r.Metadata["section"],
			Similarity: r.Similarity,
		})
	}
	return out, nil
}

// Len reports the number of stored entries.
func (ix *Index) Len() int {
	return ix.coll.Count()
}
