package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"buddybot/internal/app"
	"buddybot/internal/config"
)

func main() {
	knowledgeDir := flag.String("knowledge", "", "Knowledge base directory (overrides KNOWLEDGE_DIR)")
	calorieDB := flag.String("calorie-db", "", "Calorie tracker database file (overrides CALORIE_DB)")
	flag.Parse()

	// Flags win over the environment.
	if *knowledgeDir != "" {
		os.Setenv("KNOWLEDGE_DIR", *knowledgeDir)
	}
	if *calorieDB != "" {
		os.Setenv("CALORIE_DB", *calorieDB)
	}

	// .env is optional.
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := os.MkdirAll(cfg.KnowledgeDir, 0o755); err != nil {
		log.Fatalf("failed to create knowledge directory: %v", err)
	}

	log.Printf("Knowledge directory: %s", cfg.KnowledgeDir)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	a := app.New(&cfg)
	if err := a.Init(ctx); err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}
