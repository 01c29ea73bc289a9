package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buddybot/internal/chunker"
	"buddybot/internal/config"
	"buddybot/internal/engine"
	"buddybot/internal/kb"
	"buddybot/internal/wellness"
)

type stubGenerator struct{ reply string }

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.reply, nil
}

// An embedding call that never returns must not freeze the question loop:
// the per-question timeout cancels it and the user gets the standard
// apology.
func TestHandleQuestion_HangingEmbedderTimesOut(t *testing.T) {
	embed := func(ctx context.Context, text string) ([]float32, error) {
		if strings.Contains(text, "stuck") {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []float32{1}, nil
	}

	ctx := context.Background()
	manager := kb.New(t.TempDir(), chunker.Config{MaxChunkSize: 1000, Overlap: 200}, "", embed)
	require.NoError(t, manager.Initialize(ctx))
	_, err := manager.AddDocument(ctx, []byte("drinking water supports weight loss"), "water.txt")
	require.NoError(t, err)

	a := &App{
		cfg:    &config.Config{EmbedTimeout: 50 * time.Millisecond},
		kb:     manager,
		engine: engine.New(manager, &stubGenerator{reply: "unused"}, 4),
		boosts: wellness.NewBoosts(),
		bot:    color.New(color.FgCyan),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}

	done := make(chan struct{})
	go func() {
		a.handleQuestion(context.Background(), "is my question stuck forever")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("question loop blocked on the embedding call")
	}

	require.Len(t, a.history, 1)
	assert.Equal(t, "Sorry, I encountered an error while trying to answer that.", a.history[0].Answer)
}
