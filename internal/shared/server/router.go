package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fernsdavid25/CiviDocAI/internal/chat"
	"github.com/fernsdavid25/CiviDocAI/internal/documents"
	"github.com/fernsdavid25/CiviDocAI/internal/embedding"
	"github.com/fernsdavid25/CiviDocAI/internal/llm/groq"
	"github.com/fernsdavid25/CiviDocAI/internal/session"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/config"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/middleware"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/respond"
	"github.com/fernsdavid25/CiviDocAI/internal/writer"
)

// NewRouter constructs the Gin engine with middleware, dependencies and
// routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	sessions := session.NewManager()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Session(sessions),
	)

	// Dependencies
	llmClient, err := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqVisionModel)
	if err != nil {
		return nil, fmt.Errorf("groq client: %w", err)
	}
	embedClient, err := embedding.NewClient()
	if err != nil {
		return nil, fmt.Errorf("embedding client: %w", err)
	}
	embedder := embedding.NewEmbedder(embedClient, 0)
	builder := &chat.Builder{Embedder: embedder, LLM: llmClient, TopK: cfg.ChatTopK}

	docSvc := &documents.Service{LLM: llmClient, Builder: builder}
	docHandler := documents.NewHandler(docSvc)
	chatHandler := chat.NewHandler()
	writerHandler := writer.NewHandler(&writer.Service{LLM: llmClient})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	docHandler.RegisterRoutes(api)
	docHandler.RegisterHistoryRoutes(api)
	chatHandler.RegisterRoutes(api)
	writerHandler.RegisterRoutes(api)

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
