package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto the shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		PetRepo:       newPgxPetRepository(dbPool),
		AdoptionRepo:  newPgxAdoptionRepository(dbPool),
		InterestRepo:  newPgxAdoptionInterestRepository(dbPool),
		GeoPlaceRepo:  newPgxGeoPlaceRepository(dbPool),
		AuditRepo:     newPgxAuditRepository(dbPool),
	}
}
