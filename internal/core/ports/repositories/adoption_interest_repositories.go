package repositories

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// AdoptionInterestRepositoryFacade persists guardian interest records.
type AdoptionInterestRepositoryFacade interface {
	// CreateInterest atomically inserts the interest row and its audit
	// entry.
	CreateInterest(ctx context.Context, interest domain.AdoptionInterest) (*domain.AdoptionInterest, error)

	// ListByWorkspace returns a page of a workspace's interests, newest
	// first, with the total count.
	ListByWorkspace(ctx context.Context, workspaceID string, page, perPage int) ([]domain.AdoptionInterest, int64, error)

	TransactionManager
}
