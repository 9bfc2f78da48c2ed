package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"deadline-sync/internal/model"
	"deadline-sync/pkg/response"
	"deadline-sync/pkg/scope"
)

const (
	HeaderUserID      = "X-User-ID"
	HeaderInternalKey = "X-Internal-Key"
)

// Auth resolves the caller from X-User-ID and, when an internal key is
// configured, requires a matching X-Internal-Key.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if m.internalKey != "" {
			key := c.GetHeader(HeaderInternalKey)
			if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
				m.l.Warnf(ctx, "middleware.Auth: invalid internal key from %s", c.ClientIP())
				response.Unauthorized(c)
				return
			}
		}

		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, model.Scope{UserID: userID}))
		c.Next()
	}
}
