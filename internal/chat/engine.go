package chat

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/fernsdavid25/CiviDocAI/internal/llm"
	"github.com/fernsdavid25/CiviDocAI/internal/registry"
)

const (
	defaultTopK   = 4
	maxChunkRunes = 1200

	// maxHistoryTurns caps the condensation history kept per engine.
	maxHistoryTurns = 10
)

const answerSystemPrompt = `You are a helpful assistant explaining a government document to a citizen.
Answer the question using only the document excerpts below. If the excerpts do
not contain the answer, say so plainly. Keep answers short and practical.

Document excerpts:
%s`

const condensePrompt = `Given the conversation so far and a follow-up question, rewrite the follow-up
as a single standalone question that needs no conversation context. Reply with
the rewritten question only.

Conversation:
%s

Follow-up question: %s`

// Embedder produces vectors for text. Satisfied by embedding.Embedder.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer produces chat completions. Satisfied by the llm client.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

type chunk struct {
	text string
	vec  []float32
}

// Engine is a session-scoped retrieval chat handle for one document. It keeps
// an in-memory vector index over the document's text and a short turn history
// used to condense follow-up questions into standalone ones.
type Engine struct {
	name     string
	embedder Embedder
	llm      Completer
	topK     int

	mu      sync.Mutex
	chunks  []chunk
	history []llm.Message
}

// Builder constructs chat engines from document text segments.
type Builder struct {
	Embedder Embedder
	LLM      Completer
	TopK     int
}

// Build chunks the segments, embeds them and returns a ready engine. A build
// failure leaves nothing behind; callers must not register a partial engine.
func (b *Builder) Build(ctx context.Context, name string, segments []string) (registry.ChatEngine, error) {
	texts := chunkSegments(segments)
	if len(texts) == 0 {
		return nil, ErrNoContent
	}

	vectors, err := b.Embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed document %s: %w", name, err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embed document %s: got %d vectors for %d chunks", name, len(vectors), len(texts))
	}

	chunks := make([]chunk, len(texts))
	for i := range texts {
		chunks[i] = chunk{text: texts[i], vec: vectors[i]}
	}

	topK := b.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Engine{
		name:     name,
		embedder: b.Embedder,
		llm:      b.LLM,
		topK:     topK,
		chunks:   chunks,
	}, nil
}

// Ask answers a question about the engine's document. Follow-ups are first
// condensed into standalone questions using the engine's turn history. A
// failed turn leaves the history untouched.
func (e *Engine) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	standalone := e.condense(ctx, question)

	vectors, err := e.embedder.Embed(ctx, []string{standalone})
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}
	excerpts := e.topChunks(vectors[0])

	answer, err := e.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf(answerSystemPrompt, strings.Join(excerpts, "\n---\n"))},
		{Role: llm.RoleUser, Content: standalone},
	})
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	e.history = append(e.history,
		llm.Message{Role: llm.RoleUser, Content: question},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)
	if len(e.history) > 2*maxHistoryTurns {
		e.history = e.history[len(e.history)-2*maxHistoryTurns:]
	}
	e.mu.Unlock()

	return answer, nil
}

// condense rewrites a follow-up into a standalone question. On the first turn
// or on a rewrite failure the original question is used unchanged.
func (e *Engine) condense(ctx context.Context, question string) string {
	e.mu.Lock()
	history := make([]llm.Message, len(e.history))
	copy(history, e.history)
	e.mu.Unlock()

	if len(history) == 0 {
		return question
	}

	var b strings.Builder
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}

	rewritten, err := e.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: fmt.Sprintf(condensePrompt, b.String(), question)},
	})
	if err != nil || strings.TrimSpace(rewritten) == "" {
		return question
	}
	return strings.TrimSpace(rewritten)
}

// topChunks returns the texts of the topK highest-scoring chunks.
func (e *Engine) topChunks(query []float32) []string {
	type scored struct {
		text  string
		score float64
	}

	e.mu.Lock()
	candidates := make([]scored, 0, len(e.chunks))
	for _, c := range e.chunks {
		candidates = append(candidates, scored{text: c.text, score: cosineSimilarity(query, c.vec)})
	}
	e.mu.Unlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := min(e.topK, len(candidates))
	out := make([]string, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.text)
	}
	return out
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// chunkSegments splits segment texts on blank lines and merges paragraphs up
// to a size cap, so one chunk stays a coherent retrieval unit.
func chunkSegments(segments []string) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			chunks = append(chunks, text)
		}
		current.Reset()
	}

	for _, segment := range segments {
		for _, para := range strings.Split(segment, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			if current.Len() > 0 && current.Len()+len(para) > maxChunkRunes {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString("\n\n")
			}
			current.WriteString(para)
		}
		flush()
	}
	return chunks
}
