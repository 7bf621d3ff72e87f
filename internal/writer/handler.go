package writer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/middleware"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches writer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generated-documents", h.generate)
}

type generatedResponse struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

func (h *Handler) generate(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	gen, err := h.Svc.Generate(c.Request.Context(), sess, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusBadGateway, "upstream_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, generatedResponse{
		Name:    gen.Name,
		Type:    gen.Type,
		Content: gen.Content,
	})
}
