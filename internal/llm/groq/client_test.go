package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fernsdavid25/CiviDocAI/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "test-model", "test-vision-model")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.apiURL = srv.URL
	return client, srv
}

func completionResponse(content string) string {
	quoted, _ := json.Marshal(content)
	return `{"choices":[{"message":{"role":"assistant","content":` + string(quoted) + `}}],"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`
}

func TestAnalyzeTextSendsPromptAndParsesResponse(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("Type: Permit")))
	})

	got, err := client.AnalyzeText(context.Background(), "document body")
	if err != nil {
		t.Fatalf("analyze text: %v", err)
	}
	if got != "Type: Permit" {
		t.Fatalf("unexpected analysis: %q", got)
	}
	if gotBody["model"] != "test-model" {
		t.Fatalf("expected text model, got %v", gotBody["model"])
	}
	messages := gotBody["messages"].([]any)
	content := messages[0].(map[string]any)["content"].(string)
	if !strings.Contains(content, "Document content:\ndocument body") {
		t.Fatalf("prompt missing document content: %q", content)
	}
}

func TestAnalyzeImageUsesVisionModelAndDataURL(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(completionResponse("image analysis")))
	})

	got, err := client.AnalyzeImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("analyze image: %v", err)
	}
	if got != "image analysis" {
		t.Fatalf("unexpected analysis: %q", got)
	}
	if gotBody["model"] != "test-vision-model" {
		t.Fatalf("expected vision model, got %v", gotBody["model"])
	}

	messages := gotBody["messages"].([]any)
	parts := messages[0].(map[string]any)["content"].([]any)
	if len(parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(parts))
	}
	img := parts[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	if !strings.HasPrefix(img, "data:image/jpeg;base64,") {
		t.Fatalf("expected base64 data URL, got %q", img)
	}
}

func TestAnalyzeImageRejectsEmptyPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	if _, err := client.AnalyzeImage(context.Background(), nil, "image/png"); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_exceeded"}}`))
	})

	_, err := client.Complete(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected API error surfaced, got %v", err)
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("  ")))
	})

	_, err := client.Complete(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "model", ""); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", "", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
	client, err := NewClient("key", "model", "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.visionModel != "model" {
		t.Fatalf("expected vision model fallback, got %q", client.visionModel)
	}
}
