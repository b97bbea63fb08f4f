package middleware

import (
	"errors"
	"net/http"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// PrincipalResolver creates a Gin middleware that loads the authorization
// context for the authenticated user: platform role, active workspace
// memberships and, for admins, the covered cities. It runs after
// AuthMiddleware and rejects tokens whose user no longer exists or was
// deactivated.
func PrincipalResolver(userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("Principal resolution without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		principal, err := userSvc.ResolvePrincipal(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthenticated) || errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer valid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is not active"})
				return
			}
			logger.Error("Failed to resolve principal", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve request identity"})
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}
