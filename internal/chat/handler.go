package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fernsdavid25/CiviDocAI/internal/registry"
	"github.com/fernsdavid25/CiviDocAI/internal/session"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/middleware"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/respond"
)

// Follow-up prompts surfaced alongside every answer.
var relatedQuestions = []string{
	"What is the main purpose of this document?",
	"What actions do I need to take?",
	"Are there any deadlines I should know about?",
}

// Handler wires chat HTTP handlers to the session registry.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:name/chat", h.ask)
	rg.GET("/chat/messages", h.messages)
	rg.DELETE("/chat/messages", h.clear)
}

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Document         string   `json:"document"`
	Answer           string   `json:"answer"`
	RelatedQuestions []string `json:"relatedQuestions"`
}

type messageResponse struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Document string `json:"document,omitempty"`
	IsError  bool   `json:"isError,omitempty"`
}

func (h *Handler) ask(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	engine, err := sess.Registry.ChatEngine(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document has not been analyzed", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load chat engine", nil)
		return
	}

	// Asking about a document makes it the session's current one.
	_ = sess.Registry.SetCurrent(name)

	sess.AppendMessage(session.Message{
		Role:     session.RoleUser,
		Content:  req.Message,
		Document: name,
	})

	answer, err := engine.Ask(c.Request.Context(), req.Message)
	if err != nil {
		// Failed turns stay in the transcript so the replay is faithful.
		sess.AppendMessage(session.Message{
			Role:     session.RoleAssistant,
			Content:  "Unable to answer: " + err.Error(),
			Document: name,
			IsError:  true,
		})
		respond.Error(c, http.StatusBadGateway, "upstream_error", err.Error(), nil)
		return
	}

	sess.AppendMessage(session.Message{
		Role:     session.RoleAssistant,
		Content:  answer,
		Document: name,
	})

	respond.OK(c, askResponse{
		Document:         name,
		Answer:           answer,
		RelatedQuestions: relatedQuestions,
	})
}

func (h *Handler) messages(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	msgs := sess.Messages()
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{
			Role:     m.Role,
			Content:  m.Content,
			Document: m.Document,
			IsError:  m.IsError,
		})
	}
	respond.OK(c, gin.H{"messages": out})
}

func (h *Handler) clear(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	sess.ClearMessages()
	c.Status(http.StatusNoContent)
}
