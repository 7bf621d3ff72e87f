package llm

import (
	"context"
	"errors"
)

// Message roles for chat completions.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat-completion turn.
type Message struct {
	Role    string
	Content string
}

// Client abstracts the hosted language model used for document analysis,
// vision analysis, document generation and retrieval chat completions.
type Client interface {
	// AnalyzeText produces a plain-language analysis of extracted document text.
	AnalyzeText(ctx context.Context, text string) (string, error)

	// AnalyzeImage produces a plain-language analysis of a document photo.
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (string, error)

	// Generate produces a formal document of the given type from form fields.
	Generate(ctx context.Context, docType string, fields map[string]string) (string, error)

	// Complete runs a raw chat completion; used by the retrieval chat engine.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ErrEmptyResponse indicates the model returned no usable content.
var ErrEmptyResponse = errors.New("empty model response")
