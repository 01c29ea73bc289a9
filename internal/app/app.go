// Package app wires the knowledge base, answer engine and wellness
// utilities into an interactive console session.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/philippgille/chromem-go"

	"buddybot/internal/chunker"
	"buddybot/internal/config"
	"buddybot/internal/engine"
	"buddybot/internal/kb"
	"buddybot/internal/llm"
	"buddybot/internal/tracker"
	"buddybot/internal/wellness"
)

type App struct {
	cfg     *config.Config
	kb      *kb.Manager
	engine  *engine.Engine
	tracker *tracker.Tracker
	boosts  *wellness.Boosts
	history []engine.Exchange

	bot  *color.Color
	info *color.Color
	warn *color.Color
}

func New(cfg *config.Config) *App {
	embed := chromem.NewEmbeddingFuncOllama(cfg.EmbedModel, cfg.OllamaURL+"/api")

	manager := kb.New(cfg.KnowledgeDir, chunker.Config{
		MaxChunkSize: cfg.ChunkSize,
		Overlap:      cfg.ChunkOverlap,
	}, cfg.ChunkMethod, embed)

	generator := llm.New(llm.Config{
		BaseURL:     cfg.LLMURL,
		APIKey:      cfg.LLMKey,
		Model:       cfg.LLMModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.LLMTimeout,
	})

	return &App{
		cfg:    cfg,
		kb:     manager,
		engine: engine.New(manager, generator, cfg.TopK),
		boosts: wellness.NewBoosts(),
		bot:    color.New(color.FgCyan),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}
}

// Init builds the index from the backing store and opens the calorie log.
// A failed index build leaves the knowledge base empty and is reported as a
// diagnostic, not a fatal error; a broken calorie database is fatal since
// it points at an environment problem.
func (a *App) Init(ctx context.Context) error {
	initCtx, cancel := context.WithTimeout(ctx, a.cfg.EmbedTimeout)
	defer cancel()
	if err := a.kb.Initialize(initCtx); err != nil {
		log.Printf("knowledge base starts empty: %v", err)
	}

	t, err := tracker.Open(a.cfg.CalorieDB, a.cfg.DailyCalorieTarget)
	if err != nil {
		return fmt.Errorf("open calorie tracker: %w", err)
	}
	a.tracker = t

	return nil
}

func (a *App) Close() error {
	if a.tracker == nil {
		return nil
	}
	return a.tracker.Close()
}
