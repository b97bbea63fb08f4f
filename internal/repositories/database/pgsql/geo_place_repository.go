package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
)

type PgxGeoPlaceRepository struct {
	BaseRepository
}

func newPgxGeoPlaceRepository(db *pgxpool.Pool) portsrepo.GeoPlaceRepositoryFacade {
	return &PgxGeoPlaceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.GeoPlaceRepositoryFacade = (*PgxGeoPlaceRepository)(nil)

func (r *PgxGeoPlaceRepository) FindPlaceByID(ctx context.Context, placeID string) (*domain.GeoPlace, error) {
	query := `SELECT place_id, name, slug, type, parent_id FROM geo_places WHERE place_id = $1;`

	rows, err := r.Pool.Query(ctx, query, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query place %s: %w", placeID, err)
	}
	place, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.GeoPlace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find place %s: %w", placeID, err)
	}
	return &place, nil
}
