package repositories

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// AdoptionReader defines read operations for adoption data.
type AdoptionReader interface {
	// FindAdoptionForAccess retrieves the snapshot the adoption-read
	// predicate inspects (guardian, workspace, city scope).
	FindAdoptionForAccess(ctx context.Context, adoptionID string) (*domain.AdoptionForAccess, error)

	// FindAdoptionDetails retrieves an adoption with its pet, guardian,
	// workspace and follow-ups.
	FindAdoptionDetails(ctx context.Context, adoptionID string) (*domain.AdoptionDetails, error)
}

// AdoptionWriter defines the adoption registration transaction.
type AdoptionWriter interface {
	// CreateAdoption atomically inserts the adoption, flips the pet to
	// ADOPTED, schedules the three follow-ups from the adoptedAt calendar
	// offsets and writes both audit entries (adoption creation, pet status
	// change). Either everything commits or nothing does.
	CreateAdoption(ctx context.Context, adoption domain.Adoption) (*domain.Adoption, error)
}

// AdoptionRepositoryFacade combines all adoption repository interfaces.
type AdoptionRepositoryFacade interface {
	AdoptionReader
	AdoptionWriter
	TransactionManager
}
