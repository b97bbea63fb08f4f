package repositories

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// GeoPlaceRepositoryFacade reads the geographic hierarchy.
type GeoPlaceRepositoryFacade interface {
	// FindPlaceByID retrieves a place by id. Returns apperrors.ErrNotFound
	// when no row matches.
	FindPlaceByID(ctx context.Context, placeID string) (*domain.GeoPlace, error)
}
