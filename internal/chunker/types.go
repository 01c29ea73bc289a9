package chunker

// Chunk is a bounded-size slice of a document's text prepared for embedding.
type Chunk struct {
	ID       string            // content hash, stable across re-ingestion
	Text     string            // chunk text
	Source   string            // name of the originating file
	Section  string            // heading or synthetic section label
	Ordinal  int               // position of the chunk within its document
	Metadata map[string]string // additional metadata
}

// Chunker splits extracted document text into chunks.
type Chunker interface {
	Chunk(content, source string) ([]Chunk, error)

	// Name returns the chunker name for logging.
	Name() string
}

// Config holds the parameters shared by all chunkers.
type Config struct {
	MaxChunkSize int // chunk size limit, in runes
	Overlap      int // runes carried over from the previous chunk
}

// normalized returns the config with invalid values replaced by defaults.
// Overlap must leave room for new content in every chunk.
func (c Config) normalized() Config {
	if c.MaxChunkSize <= 0 {
		c.MaxChunkSize = 1000
	}
	if c.Overlap < 0 {
		c.Overlap = 0
	}
	if c.Overlap >= c.MaxChunkSize {
		c.Overlap = c.MaxChunkSize / 2
	}
	return c
}
