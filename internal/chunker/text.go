package chunker

import (
	"fmt"
	"strings"
)

// TextChunker splits plain text into overlapping windows. It prefers
// paragraph boundaries and falls back to hard cuts by rune count.
type TextChunker struct {
	config Config
}

func NewTextChunker(config Config) *TextChunker {
	return &TextChunker{config: config.normalized()}
}

func (c *TextChunker) Name() string {
	return "text"
}

func (c *TextChunker) Chunk(content, source string) ([]Chunk, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	// Short documents become a single chunk holding the whole text.
	if len([]rune(content)) <= c.config.MaxChunkSize {
		return []Chunk{CreateChunk(content, source, sectionLabel(1), 0, map[string]string{
			"method": "single",
		})}, nil
	}

	if strings.Contains(content, "\n\n") {
		return c.chunkByParagraphs(content, source), nil
	}
	return c.chunkBySize(content, source), nil
}

// chunkByParagraphs packs whole paragraphs into chunks, carrying the tail of
// the previous chunk forward as overlap. A paragraph that alone exceeds the
// size limit is hard-cut into rune windows, and carried overlap is dropped
// whenever keeping it would push a chunk past the limit, so no chunk can
// outgrow MaxChunkSize.
func (c *TextChunker) chunkByParagraphs(content, source string) []Chunk {
	paragraphs := SplitByParagraphs(content)
	var chunks []Chunk
	var current strings.Builder
	chunkNum := 1
	var prevTail string
	hasNew := false // current holds more than carried overlap

	emit := func(text string) {
		chunks = append(chunks, CreateChunk(text, source, sectionLabel(chunkNum), chunkNum-1, map[string]string{
			"method": "paragraphs",
		}))
		if c.config.Overlap > 0 {
			prevTail = GetLastNChars(text, c.config.Overlap)
		}
		chunkNum++
	}

	flush := func() {
		emit(current.String())
		current.Reset()
		hasNew = false
		if prevTail != "" {
			current.WriteString(prevTail)
		}
	}

	for _, para := range paragraphs {
		if len([]rune(para)) > c.config.MaxChunkSize {
			if hasNew {
				flush()
			}
			current.Reset()
			for _, win := range SplitByRuneWindows(para, c.config.MaxChunkSize, c.config.Overlap) {
				emit(win)
			}
			hasNew = false
			if prevTail != "" {
				current.WriteString(prevTail)
			}
			continue
		}

		if hasNew && current.Len()+2+len(para) > c.config.MaxChunkSize {
			flush()
		}
		if !hasNew && current.Len() > 0 && current.Len()+2+len(para) > c.config.MaxChunkSize {
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
		hasNew = true
	}

	if hasNew {
		emit(current.String())
	}

	return chunks
}

// chunkBySize cuts fixed-size rune windows. Consecutive windows share
// exactly Overlap runes, so the non-overlapping portions concatenate back
// to the original text.
func (c *TextChunker) chunkBySize(content, source string) []Chunk {
	var chunks []Chunk
	for i, win := range SplitByRuneWindows(content, c.config.MaxChunkSize, c.config.Overlap) {
		chunks = append(chunks, CreateChunk(win, source, sectionLabel(i+1), i, map[string]string{
			"method": "size",
		}))
	}
	return chunks
}

func sectionLabel(n int) string {
	return fmt.Sprintf("Part %d", n)
}
