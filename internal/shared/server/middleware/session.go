package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fernsdavid25/CiviDocAI/internal/session"
)

const (
	sessionIDKey  = "sessionId"
	sessionKey    = "session"
	sessionHeader = "X-Session-Id"
)

// Session resolves the caller's session from the X-Session-Id header,
// creating one on first sight. The resolved id is echoed back so clients
// without an id can adopt the generated one.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(sessionHeader))
		if id == "" {
			id = uuid.NewString()
		}

		sess := mgr.Get(id)
		c.Set(sessionIDKey, sess.ID)
		c.Set(sessionKey, sess)
		c.Writer.Header().Set(sessionHeader, sess.ID)
		c.Next()
	}
}

// SessionFromContext fetches the session stored by the Session middleware.
func SessionFromContext(c *gin.Context) *session.Session {
	if c == nil {
		return nil
	}
	val, _ := c.Get(sessionKey)
	if sess, ok := val.(*session.Session); ok {
		return sess
	}
	return nil
}

// SessionIDFromContext fetches the session id stored by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
