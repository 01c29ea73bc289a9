// Package engine answers questions by grounding a language model in chunks
// retrieved from the knowledge base.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"buddybot/internal/index"
	"buddybot/internal/kb"
)

// ErrUnavailable means the knowledge base holds no documents yet.
var ErrUnavailable = errors.New("knowledge base is not ready")

const (
	// DefaultTopK is the number of chunks retrieved per question.
	DefaultTopK = 4

	emptyReply   = "I'm not properly initialized or the knowledge base is empty. Add documents to enable chat."
	apologyReply = "Sorry, I encountered an error while trying to answer that."
)

// Retriever fetches the chunks most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]index.Result, error)
}

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Exchange is one question/answer pair in a conversation.
type Exchange struct {
	Question string
	Answer   string
}

// Answer is a generated reply with the source documents it was grounded in.
type Answer struct {
	Text    string
	Sources []string
}

type Engine struct {
	retriever Retriever
	generator Generator
	topK      int
}

func New(retriever Retriever, generator Generator, topK int) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{retriever: retriever, generator: generator, topK: topK}
}

// Answer retrieves the chunks closest to the question, grounds a single
// generation call in them, and returns the reply with the deduplicated,
// order-preserving list of source documents that went into the prompt.
func (e *Engine) Answer(ctx context.Context, question string) (Answer, error) {
	results, err := e.retriever.Retrieve(ctx, question, e.topK)
	if errors.Is(err, kb.ErrEmpty) {
		return Answer{}, ErrUnavailable
	}
	if err != nil {
		return Answer{}, fmt.Errorf("retrieve context: %w", err)
	}

	prompt := buildPrompt(question, results)

	text, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return Answer{}, fmt.Errorf("generate answer: %w", err)
	}

	return Answer{Text: text, Sources: collectSources(results)}, nil
}

// Ask answers the question and appends exactly one exchange to the history.
// Failures become readable replies: a fixed notice when the knowledge base
// is empty, a fixed apology on provider errors. The underlying diagnostic is
// logged, never shown to the user.
func (e *Engine) Ask(ctx context.Context, question string, history []Exchange) []Exchange {
	answer, err := e.Answer(ctx, question)
	switch {
	case errors.Is(err, ErrUnavailable):
		return append(history, Exchange{Question: question, Answer: emptyReply})
	case err != nil:
		log.Printf("chat error: %v", err)
		return append(history, Exchange{Question: question, Answer: apologyReply})
	}

	reply := answer.Text
	if len(answer.Sources) > 0 {
		reply += "\n\nSources: " + strings.Join(answer.Sources, ", ")
	}
	return append(history, Exchange{Question: question, Answer: reply})
}

func buildPrompt(question string, results []index.Result) string {
	var buf strings.Builder

	buf.WriteString("You are WeightLossBuddy, a supportive and knowledgeable coach specializing in weight loss topics.\n")
	buf.WriteString("Always be positive, motivating and practical. You are an informational coach, not a doctor.\n\n")
	buf.WriteString("Rules:\n")
	buf.WriteString("- Base your answer strictly on the context below. Do not make up information that is not in the context.\n")
	buf.WriteString("- Do not provide medical advice, diagnoses, or personalized meal or workout plans.\n")
	buf.WriteString("- Do not promote unhealthy or extreme weight loss methods.\n")
	buf.WriteString("- If the context does not contain the answer, say you don't have information on that topic ")
	buf.WriteString("and suggest consulting a healthcare professional or a registered dietitian.\n")
	buf.WriteString("- Use bullet points for lists and keep paragraphs concise.\n\n")

	buf.WriteString("Context:\n")
	for i, r := range results {
		buf.WriteString(fmt.Sprintf("%d. [%s]\n", i+1, r.Source))
		buf.WriteString(r.Text)
		buf.WriteString("\n\n")
	}

	buf.WriteString("Question:\n")
	buf.WriteString(question)
	buf.WriteString("\n\nHelpful answer:")

	return buf.String()
}

// collectSources deduplicates source IDs while preserving retrieval order.
func collectSources(results []index.Result) []string {
	seen := make(map[string]bool, len(results))
	var sources []string
	for _, r := range results {
		if r.Source == "" || seen[r.Source] {
			continue
		}
		seen[r.Source] = true
		sources = append(sources, r.Source)
	}
	return sources
}
