package middleware

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")
	// principalKey stores the resolved authorization principal.
	principalKey = contextKey("principal")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// WithPrincipal returns a context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromContext retrieves the resolved principal from the Gin
// context. Nil when the request went through no principal resolution,
// which every authenticated route does.
func GetPrincipalFromContext(c *gin.Context) *domain.Principal {
	p, ok := c.Request.Context().Value(principalKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return p
}
