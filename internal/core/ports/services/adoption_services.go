package services

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/bethehero/adopt_backend/internal/dto"
)

// AdoptionSvcFacade defines adoption registration and retrieval.
type AdoptionSvcFacade interface {
	// RegisterAdoption records the handover of an approved pet to a
	// guardian, scheduling the follow-up check-ins atomically.
	RegisterAdoption(ctx context.Context, principal *domain.Principal, req dto.RegisterAdoptionRequest) (*domain.Adoption, []domain.AdoptionFollowUp, error)

	// GetAdoptionByID returns an adoption with its related records for
	// the guardian, the workspace or a covering admin.
	GetAdoptionByID(ctx context.Context, principal *domain.Principal, adoptionID string) (*domain.AdoptionDetails, error)
}

// AdoptionInterestSvcFacade defines guardian interest operations.
type AdoptionInterestSvcFacade interface {
	// RegisterInterest records a guardian's interest in an approved pet.
	RegisterInterest(ctx context.Context, principal *domain.Principal, petID string, req dto.RegisterInterestRequest) (*domain.AdoptionInterest, error)

	// ListWorkspaceInterests returns the interests received by a
	// workspace, newest first.
	ListWorkspaceInterests(ctx context.Context, principal *domain.Principal, workspaceID string, params dto.ListInterestsParams) ([]domain.AdoptionInterest, int64, error)
}
