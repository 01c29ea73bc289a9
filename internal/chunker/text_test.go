package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextChunker_EmptyInput(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 1000, Overlap: 200})

	for _, content := range []string{"", "   ", "\n\n\t"} {
		chunks, err := c.Chunk(content, "empty.txt")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	}
}

func TestTextChunker_ShortInputSingleChunk(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 1000, Overlap: 200})

	text := "Drinking water supports weight loss.\n\nIt also helps digestion."
	chunks, err := c.Chunk(text, "water.txt")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.Equal(t, "water.txt", chunks[0].Source)
	assert.Equal(t, 0, chunks[0].Ordinal)
}

func TestTextChunker_SizeWindowsReconstruct(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 100, Overlap: 20})

	// No blank lines, so the hard-cut path is taken.
	text := strings.Repeat("abcdefghij", 50)
	chunks, err := c.Chunk(text, "long.txt")
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	// Consecutive chunks share exactly Overlap runes; stripping the overlap
	// from every chunk but the first reproduces the original text.
	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0].Text)
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1].Text)
		cur := []rune(chunks[i].Text)
		assert.Equal(t, string(prev[len(prev)-20:]), string(cur[:20]), "chunk %d overlap", i)
		rebuilt.WriteString(string(cur[20:]))
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestTextChunker_SizeWindowsBounded(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 100, Overlap: 20})

	chunks, err := c.Chunk(strings.Repeat("x", 450), "x.txt")
	require.NoError(t, err)
	for i, ch := range chunks {
		assert.LessOrEqual(t, len([]rune(ch.Text)), 100, "chunk %d", i)
	}
}

func TestTextChunker_ParagraphsCarryOverlap(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 160, Overlap: 30})

	paragraphs := []string{
		strings.Repeat("alpha ", 15),
		strings.Repeat("bravo ", 15),
		strings.Repeat("charlie ", 15),
	}
	text := strings.TrimSpace(strings.Join(paragraphs, "\n\n"))

	chunks, err := c.Chunk(text, "para.txt")
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		tail := GetLastNChars(chunks[i-1].Text, 30)
		assert.True(t, strings.HasPrefix(chunks[i].Text, tail), "chunk %d should start with the previous tail", i)
	}
}

func TestTextChunker_OversizedParagraphIsHardCut(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 1000, Overlap: 200})

	content := strings.Repeat("a", 5000) + "\n\nShort closing paragraph."
	chunks, err := c.Chunk(content, "big.txt")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(chunks), 6)

	for i, ch := range chunks {
		assert.LessOrEqual(t, len([]rune(ch.Text)), 1000, "chunk %d", i)
	}
	assert.Contains(t, chunks[len(chunks)-1].Text, "Short closing paragraph.")
}

func TestTextChunker_OverlapDroppedWhenParagraphFillsChunk(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 100, Overlap: 20})

	p1 := strings.Repeat("x", 90)
	p2 := strings.Repeat("y", 90)
	chunks, err := c.Chunk(p1+"\n\n"+p2, "tight.txt")
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	// Carrying the 20-rune tail would push the second chunk to 112 runes,
	// so the paragraph stands alone instead.
	assert.Equal(t, p1, chunks[0].Text)
	assert.Equal(t, p2, chunks[1].Text)
}

func TestTextChunker_Deterministic(t *testing.T) {
	c := NewTextChunker(Config{MaxChunkSize: 100, Overlap: 20})

	text := strings.Repeat("determinism matters for re-ingestion ", 30)
	first, err := c.Chunk(text, "doc.txt")
	require.NoError(t, err)
	second, err := c.Chunk(text, "doc.txt")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Text, second[i].Text)
	}
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{MaxChunkSize: 0, Overlap: -5}.normalized()
	assert.Equal(t, 1000, cfg.MaxChunkSize)
	assert.Equal(t, 0, cfg.Overlap)

	cfg = Config{MaxChunkSize: 100, Overlap: 100}.normalized()
	assert.Equal(t, 50, cfg.Overlap)
}
