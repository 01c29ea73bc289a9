package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	KnowledgeDir string `env:"KNOWLEDGE_DIR" envDefault:"./knowledge_base"`
	ChunkSize    int    `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap int    `env:"CHUNK_OVERLAP" envDefault:"200"`
	ChunkMethod  string `env:"CHUNK_METHOD"` // empty = pick by file extension
	TopK         int    `env:"TOP_K" envDefault:"4"`

	OllamaURL    string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	EmbedModel   string        `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	EmbedTimeout time.Duration `env:"EMBED_TIMEOUT" envDefault:"120s"`

	LLMURL      string        `env:"LLM_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMKey      string        `env:"LLM_API_KEY"`
	LLMModel    string        `env:"LLM_MODEL" envDefault:"llama3-8b-8192"`
	Temperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int           `env:"LLM_MAX_TOKENS" envDefault:"1024"`
	LLMTimeout  time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	CalorieDB          string `env:"CALORIE_DB" envDefault:"calorie_tracker.db"`
	DailyCalorieTarget int    `env:"DAILY_CALORIE_TARGET" envDefault:"2000"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
