package chunker

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// CreateChunk creates a chunk with an ID derived from its source, position
// and content, so re-ingesting the same document yields the same IDs.
func CreateChunk(text, source, section string, ordinal int, metadata map[string]string) Chunk {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", source, ordinal, text)))

	if metadata == nil {
		metadata = make(map[string]string)
	}

	return Chunk{
		ID:       fmt.Sprintf("%x", hash[:8]),
		Text:     text,
		Source:   source,
		Section:  section,
		Ordinal:  ordinal,
		Metadata: metadata,
	}
}

// SplitByRuneWindows cuts text into windows of at most size runes where
// consecutive windows share overlap runes.
func SplitByRuneWindows(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	var windows []string
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[i:end]))
		if end >= len(runes) {
			break
		}
	}
	return windows
}

// GetLastNChars returns the last n runes of text, used for overlap.
func GetLastNChars(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}

// SplitByParagraphs splits text on blank lines, dropping empty paragraphs.
func SplitByParagraphs(text string) []string {
	paragraphs := strings.Split(text, "\n\n")
	var result []string
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
