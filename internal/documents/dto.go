package documents

import (
	"time"

	"github.com/fernsdavid25/CiviDocAI/internal/formatter"
	"github.com/fernsdavid25/CiviDocAI/internal/history"
	"github.com/fernsdavid25/CiviDocAI/internal/registry"
)

type documentResponse struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDocumentResponse(rec registry.Record) documentResponse {
	return documentResponse{
		Name:      rec.Name,
		Kind:      rec.Kind,
		CreatedAt: rec.CreatedAt,
	}
}

type resultResponse struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Analysis string `json:"analysis"`
}

type itemErrorResponse struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type batchResponse struct {
	Processed []resultResponse    `json:"processed"`
	Errors    []itemErrorResponse `json:"errors"`
}

func toBatchResponse(results []Result, failed []ItemError) batchResponse {
	out := batchResponse{
		Processed: make([]resultResponse, 0, len(results)),
		Errors:    make([]itemErrorResponse, 0, len(failed)),
	}
	for _, r := range results {
		out.Processed = append(out.Processed, resultResponse{Name: r.Name, Kind: r.Kind, Analysis: r.Analysis})
	}
	for _, e := range failed {
		out.Errors = append(out.Errors, itemErrorResponse{Name: e.Name, Error: e.Err.Error()})
	}
	return out
}

type analysisResponse struct {
	Name     string              `json:"name"`
	Analysis string              `json:"analysis"`
	Sections []formatter.Section `json:"sections"`
}

type historyEntryResponse struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

func toHistoryEntryResponse(e history.Entry) historyEntryResponse {
	return historyEntryResponse{
		Name:      e.Name,
		Type:      e.Type,
		Content:   e.Content,
		Timestamp: e.Timestamp,
		Status:    e.Status,
	}
}
