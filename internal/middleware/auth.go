package middleware

import (
	"strings"

	"inventory-srv/pkg/response"
	"inventory-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth resolves the access token and attaches the verified identity to the request context.
// The Authorization header wins over the cookie even when the header token is invalid.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			response.Unauthorized(c, MessageMissingToken)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c, MessageInvalidToken)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles must run after Auth.
func (m Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c, MessageNotAuthenticated)
			c.Abort()
			return
		}

		if !sc.HasAnyRole(roles...) {
			response.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	// Priority 1: Authorization header, "Bearer <token>" or the raw token
	if authHeader := strings.TrimSpace(c.GetHeader("Authorization")); authHeader != "" {
		fields := strings.Fields(authHeader)
		if !strings.EqualFold(fields[0], bearerScheme) {
			return authHeader
		}
		// A bare scheme falls through to the cookie
		if len(fields) > 1 {
			return strings.Join(fields[1:], " ")
		}
	}

	// Priority 2: access token cookie
	name := m.cookieConfig.AccessName
	if name == "" {
		name = defaultAccessCookieName
	}
	tokenString, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(tokenString)
}
