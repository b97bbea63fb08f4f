package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/authz"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/utils/pagination"
)

// AdoptionService registers completed placements and serves adoption reads.
type AdoptionService struct {
	BaseService
	adoptionRepo  portsrepo.AdoptionRepositoryFacade
	petRepo       portsrepo.PetRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(ar portsrepo.AdoptionRepositoryFacade, pr portsrepo.PetRepositoryFacade, wr portsrepo.WorkspaceRepositoryFacade, ur portsrepo.UserRepositoryFacade) *AdoptionService {
	return &AdoptionService{
		adoptionRepo:  ar,
		petRepo:       pr,
		workspaceRepo: wr,
		userRepo:      ur,
	}
}

var _ portssvc.AdoptionSvcFacade = (*AdoptionService)(nil)

// RegisterAdoption records the handover of an approved pet to a guardian.
// The guard chain runs in a fixed order so callers get stable answers:
// existence, adoption uniqueness, pet approval, workspace standing,
// authorization, guardian validity. The write itself is atomic: adoption
// row, pet status flip, three follow-ups and both audit entries commit
// together or not at all.
func (s *AdoptionService) RegisterAdoption(ctx context.Context, principal *domain.Principal, req dto.RegisterAdoptionRequest) (*domain.Adoption, []domain.AdoptionFollowUp, error) {
	if principal == nil {
		return nil, nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetForAdoption(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet for adoption", slog.String("pet_id", req.PetID))
		return nil, nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	if snapshot.HasAdoption {
		return nil, nil, apperrors.ErrPetAlreadyAdopted
	}
	if snapshot.Status != domain.PetApproved {
		return nil, nil, apperrors.ErrPetNotApproved
	}
	if snapshot.Workspace.IsBlockedForAdoption() {
		return nil, nil, apperrors.ErrWorkspaceBlocked
	}

	workspaceCityIDs, err := s.workspaceCityIDs(ctx, snapshot.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}
	if !authz.CanManageWorkspace(principal, snapshot.WorkspaceID, workspaceCityIDs) {
		return nil, nil, apperrors.ErrForbidden
	}

	guardian, err := s.userRepo.FindUserByID(ctx, req.GuardianUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrGuardianNotFound
		}
		s.LogError(ctx, err, "Failed to fetch guardian", slog.String("guardian_user_id", req.GuardianUserID))
		return nil, nil, fmt.Errorf("failed to fetch guardian: %w", err)
	}
	if guardian.Role != domain.RoleGuardian {
		return nil, nil, apperrors.ErrGuardianNotFound
	}

	adoptedAt := time.Now().UTC()
	if req.AdoptedAt != nil {
		adoptedAt = req.AdoptedAt.UTC()
	}

	adoption := domain.Adoption{
		AdoptionID:      uuid.NewString(),
		PetID:           req.PetID,
		WorkspaceID:     snapshot.WorkspaceID,
		GuardianUserID:  guardian.UserID,
		AdoptedAt:       adoptedAt,
		Notes:           req.Notes,
		Status:          domain.AdoptionActive,
		CreatedByUserID: principal.UserID,
		CreatedAt:       time.Now(),
	}

	created, err := s.adoptionRepo.CreateAdoption(ctx, adoption)
	if err != nil {
		if errors.Is(err, apperrors.ErrPetAlreadyAdopted) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to register adoption", slog.String("pet_id", req.PetID))
		return nil, nil, fmt.Errorf("failed to register adoption: %w", err)
	}

	followUps := make([]domain.AdoptionFollowUp, 0, 3)
	for _, slot := range domain.FollowUpSchedule(adoptedAt) {
		followUps = append(followUps, domain.AdoptionFollowUp{
			AdoptionID:  created.AdoptionID,
			Type:        slot.Type,
			Status:      domain.FollowUpPending,
			ScheduledAt: slot.ScheduledAt,
		})
	}

	s.LogInfo(ctx, "Adoption registered",
		slog.String("adoption_id", created.AdoptionID),
		slog.String("pet_id", req.PetID),
		slog.String("guardian_user_id", guardian.UserID))
	return created, followUps, nil
}

// GetAdoptionByID returns an adoption for the guardian, an editor of its
// workspace, a covering admin or a super admin.
func (s *AdoptionService) GetAdoptionByID(ctx context.Context, principal *domain.Principal, adoptionID string) (*domain.AdoptionDetails, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	access, err := s.adoptionRepo.FindAdoptionForAccess(ctx, adoptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch adoption", slog.String("adoption_id", adoptionID))
		return nil, fmt.Errorf("failed to fetch adoption: %w", err)
	}

	if !authz.CanViewAdoption(principal, access) {
		return nil, apperrors.ErrForbidden
	}

	details, err := s.adoptionRepo.FindAdoptionDetails(ctx, adoptionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch adoption details", slog.String("adoption_id", adoptionID))
		return nil, fmt.Errorf("failed to fetch adoption details: %w", err)
	}
	return details, nil
}

func (s *AdoptionService) workspaceCityIDs(ctx context.Context, workspaceID string) ([]string, error) {
	details, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch workspace city scope", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to fetch workspace: %w", err)
	}
	return details.CityIDs(), nil
}

// AdoptionInterestService records guardian interest and serves the
// workspace-side inbox.
type AdoptionInterestService struct {
	BaseService
	interestRepo  portsrepo.AdoptionInterestRepositoryFacade
	petRepo       portsrepo.PetRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewAdoptionInterestService creates a new AdoptionInterestService.
func NewAdoptionInterestService(ir portsrepo.AdoptionInterestRepositoryFacade, pr portsrepo.PetRepositoryFacade, wr portsrepo.WorkspaceRepositoryFacade) *AdoptionInterestService {
	return &AdoptionInterestService{
		interestRepo:  ir,
		petRepo:       pr,
		workspaceRepo: wr,
	}
}

var _ portssvc.AdoptionInterestSvcFacade = (*AdoptionInterestService)(nil)

// RegisterInterest records a guardian's interest in an approved pet. The
// already-adopted answer outranks the generic not-approved one so a guardian
// learns the real reason the pet is gone.
func (s *AdoptionInterestService) RegisterInterest(ctx context.Context, principal *domain.Principal, petID string, req dto.RegisterInterestRequest) (*domain.AdoptionInterest, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if principal.Role != domain.RoleGuardian {
		return nil, apperrors.ErrForbidden
	}

	snapshot, err := s.petRepo.FindPetForAdoption(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet for interest", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	if snapshot.Status == domain.PetAdopted {
		return nil, apperrors.ErrPetAlreadyAdopted
	}
	if snapshot.Status != domain.PetApproved {
		return nil, apperrors.ErrPetNotApproved
	}
	if !snapshot.IsActive {
		return nil, apperrors.ErrPetInactive
	}
	if snapshot.Workspace.IsBlockedForAdoption() {
		return nil, apperrors.ErrWorkspaceBlocked
	}

	interest := domain.AdoptionInterest{
		InterestID:  uuid.NewString(),
		PetID:       petID,
		UserID:      principal.UserID,
		WorkspaceID: snapshot.WorkspaceID,
		Message:     req.Message,
		CreatedAt:   time.Now(),
	}

	created, err := s.interestRepo.CreateInterest(ctx, interest)
	if err != nil {
		s.LogError(ctx, err, "Failed to register interest", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to register interest: %w", err)
	}

	s.LogInfo(ctx, "Adoption interest registered", slog.String("interest_id", created.InterestID), slog.String("pet_id", petID))
	return created, nil
}

// ListWorkspaceInterests returns the interests a workspace has received,
// newest first. Page parameters are clamped, never rejected.
func (s *AdoptionInterestService) ListWorkspaceInterests(ctx context.Context, principal *domain.Principal, workspaceID string, params dto.ListInterestsParams) ([]domain.AdoptionInterest, int64, error) {
	if principal == nil {
		return nil, 0, apperrors.ErrUnauthenticated
	}

	details, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", workspaceID))
		return nil, 0, fmt.Errorf("failed to fetch workspace: %w", err)
	}

	if !authz.CanManageWorkspace(principal, workspaceID, details.CityIDs()) {
		return nil, 0, apperrors.ErrForbidden
	}

	page, perPage := pagination.Clamp(params.Page, params.PerPage)
	items, total, err := s.interestRepo.ListByWorkspace(ctx, workspaceID, page, perPage)
	if err != nil {
		s.LogError(ctx, err, "Failed to list interests", slog.String("workspace_id", workspaceID))
		return nil, 0, fmt.Errorf("failed to list interests: %w", err)
	}
	return items, total, nil
}
