package services

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetMe returns the authenticated user's profile with memberships.
	// Missing or deactivated users yield an unauthenticated error.
	GetMe(ctx context.Context, userID string) (*domain.User, []domain.WorkspaceMembership, error)

	// ResolvePrincipal loads the authorization context for a user: the
	// user's platform role, active workspace memberships and, for
	// admins, the covered city place IDs.
	ResolvePrincipal(ctx context.Context, userID string) (*domain.Principal, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
}
