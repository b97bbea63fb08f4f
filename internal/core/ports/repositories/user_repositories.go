package repositories

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by id. Returns apperrors.ErrNotFound
	// when no row matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, including the password
	// hash for credential checks.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindAdminCityPlaces returns the CITY places an ADMIN user is scoped
	// to. Empty for non-admin users.
	FindAdminCityPlaces(ctx context.Context, userID string) ([]domain.GeoPlace, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Translates the email unique constraint
	// into apperrors.ErrEmailInUse.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
