package chunker

import (
	"fmt"
	"log"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownChunker splits markdown documents along their heading structure.
// When the document has no usable structure it returns an error and the
// caller is expected to fall back to the plain text chunker.
type MarkdownChunker struct {
	config Config
}

func NewMarkdownChunker(config Config) *MarkdownChunker {
	return &MarkdownChunker{config: config.normalized()}
}

func (m *MarkdownChunker) Name() string {
	return "markdown"
}

// documentStructure summarizes the heading layout of a document.
type documentStructure struct {
	headingCounts   map[int]int // heading level -> count
	totalParagraphs int
}

func (m *MarkdownChunker) Chunk(content, source string) ([]Chunk, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	md := goldmark.New()
	reader := text.NewReader([]byte(content))
	doc := md.Parser().Parse(reader)

	structure := m.analyzeStructure(doc)

	level, err := m.selectHeadingLevel(structure)
	if err != nil {
		return nil, fmt.Errorf("markdown chunker cannot process this content: %w", err)
	}

	chunks := m.chunkByHeadings(doc, []byte(content), source, level)
	log.Printf("[%s] created %d chunks (heading level %d)", m.Name(), len(chunks), level)
	return chunks, nil
}

func (m *MarkdownChunker) analyzeStructure(doc ast.Node) documentStructure {
	structure := documentStructure{
		headingCounts: make(map[int]int),
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				structure.headingCounts[heading.Level]++
			}
			if _, ok := n.(*ast.Paragraph); ok {
				structure.totalParagraphs++
			}
		}
		return ast.WalkContinue, nil
	})

	return structure
}

// selectHeadingLevel picks the heading level to split on. Deeper levels need
// more headings before they are worth splitting on.
func (m *MarkdownChunker) selectHeadingLevel(structure documentStructure) (int, error) {
	for level := 2; level <= 4; level++ {
		minHeadings := 3
		switch level {
		case 3:
			minHeadings = 5
		case 4:
			minHeadings = 10
		}
		if structure.headingCounts[level] >= minHeadings {
			return level, nil
		}
	}

	return 0, fmt.Errorf(
		"no suitable markdown structure (headings: %v, paragraphs: %d)",
		structure.headingCounts, structure.totalParagraphs,
	)
}

func (m *MarkdownChunker) chunkByHeadings(doc ast.Node, content []byte, source string, targetLevel int) []Chunk {
	var chunks []Chunk
	var current strings.Builder
	var currentSection string
	ordinal := 0

	flush := func() {
		if current.Len() == 0 {
			return
		}
		parts := m.finalizeChunk(current.String(), source, currentSection, ordinal)
		chunks = append(chunks, parts...)
		ordinal += len(parts)
		current.Reset()
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				headingText := extractText(heading, content)
				if heading.Level <= targetLevel {
					flush()
					currentSection = headingText
					current.WriteString(headingText + "\n\n")
				} else {
					// Subheadings stay inside the current chunk.
					current.WriteString("\n" + headingText + "\n\n")
				}
			} else if textNode, ok := n.(*ast.Text); ok {
				current.Write(textNode.Segment.Value(content))
			}
		} else {
			if _, ok := n.(*ast.Paragraph); ok {
				current.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})

	flush()

	return chunks
}

// finalizeChunk trims a section and re-splits it by paragraphs when it
// exceeds the size limit.
func (m *MarkdownChunker) finalizeChunk(text, source, section string, ordinal int) []Chunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if len([]rune(text)) <= m.config.MaxChunkSize {
		return []Chunk{CreateChunk(text, source, section, ordinal, map[string]string{
			"method": "markdown",
		})}
	}

	return m.splitLargeSection(text, source, section, ordinal)
}

// splitLargeSection packs a section's paragraphs into parts, hard-cutting
// any paragraph that alone exceeds the size limit and dropping carried
// overlap when it would push a part past the limit.
func (m *MarkdownChunker) splitLargeSection(text, source, section string, ordinal int) []Chunk {
	paragraphs := SplitByParagraphs(text)
	var chunks []Chunk
	var current strings.Builder
	partNum := 1
	var prevTail string
	hasNew := false

	emit := func(partText string) {
		label := section
		if partNum > 1 {
			label = fmt.Sprintf("%s (part %d)", section, partNum)
		}
		chunks = append(chunks, CreateChunk(partText, source, label, ordinal+len(chunks), map[string]string{
			"method": "markdown",
			"part":   fmt.Sprintf("%d", partNum),
		}))
		if m.config.Overlap > 0 {
			prevTail = GetLastNChars(partText, m.config.Overlap)
		}
		partNum++
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
		if len([]rune(para)) > m.config.MaxChunkSize {
			if hasNew {
				flush()
			}
			current.Reset()
			for _, win := range SplitByRuneWindows(para, m.config.MaxChunkSize, m.config.Overlap) {
				emit(win)
			}
			hasNew = false
			if prevTail != "" {
				current.WriteString(prevTail)
			}
			continue
		}

		if hasNew && current.Len()+2+len(para) > m.config.MaxChunkSize {
			flush()
		}
		if !hasNew && current.Len() > 0 && current.Len()+2+len(para) > m.config.MaxChunkSize {
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

// extractText extracts the plain text of an AST node.
func extractText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
