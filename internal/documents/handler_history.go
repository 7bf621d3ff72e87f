package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fernsdavid25/CiviDocAI/internal/history"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/middleware"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/respond"
)

// RegisterHistoryRoutes attaches the history surface. History entries cover
// both analyzed and generated documents, so the routes live alongside the
// document handlers.
func (h *Handler) RegisterHistoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.historyList)
	rg.GET("/history/:name", h.historyGet)
	rg.GET("/history/:name/download", h.historyDownload)
	rg.DELETE("/history/:name", h.historyRemove)
}

func (h *Handler) historyList(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	entries := sess.History.List()
	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toHistoryEntryResponse(e))
	}
	respond.OK(c, gin.H{"history": out})
}

func (h *Handler) historyGet(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	entry, err := sess.History.Get(name)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "history entry not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history entry", nil)
		return
	}

	respond.OK(c, toHistoryEntryResponse(entry))
}

func (h *Handler) historyDownload(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	entry, err := sess.History.Get(name)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "history entry not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history entry", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+entry.Name+`.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(entry.Content))
}

func (h *Handler) historyRemove(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	if _, err := sess.History.Get(name); err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "history entry not found", nil)
		return
	}

	sess.DeleteDocument(name)
	c.Status(http.StatusNoContent)
}
