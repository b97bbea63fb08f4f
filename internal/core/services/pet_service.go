package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/authz"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/platform/storage"
	"github.com/bethehero/adopt_backend/internal/utils/pagination"
	"github.com/bethehero/adopt_backend/pkg/config"
)

// PetService handles the pet listing lifecycle: drafting, submission,
// moderation, images and the public catalog.
type PetService struct {
	BaseService
	petRepo       portsrepo.PetRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	auditRepo     portsrepo.AuditRepositoryFacade
	objectStore   storage.ObjectStore
	cfg           *config.Config
}

// NewPetService creates a new PetService.
func NewPetService(pr portsrepo.PetRepositoryFacade, wr portsrepo.WorkspaceRepositoryFacade, ar portsrepo.AuditRepositoryFacade, store storage.ObjectStore, cfg *config.Config) *PetService {
	return &PetService{
		petRepo:       pr,
		workspaceRepo: wr,
		auditRepo:     ar,
		objectStore:   store,
		cfg:           cfg,
	}
}

var _ portssvc.PetSvcFacade = (*PetService)(nil)

// CreatePet creates a pet in DRAFT inside a workspace. The workspace must
// exist and be active, and the caller must be one of its editors. A PENDING
// workspace may already prepare listings; verification only gates
// submission.
func (s *PetService) CreatePet(ctx context.Context, principal *domain.Principal, req dto.CreatePetRequest) (*domain.Pet, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	details, err := s.workspaceRepo.FindWorkspaceDetails(ctx, req.WorkspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", req.WorkspaceID))
		return nil, fmt.Errorf("failed to fetch workspace: %w", err)
	}
	if !details.IsActive {
		return nil, apperrors.ErrForbidden
	}
	if !authz.IsWorkspaceEditor(principal, req.WorkspaceID) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	pet := domain.Pet{
		PetID:                uuid.NewString(),
		WorkspaceID:          req.WorkspaceID,
		Name:                 req.Name,
		Description:          req.Description,
		Species:              req.Species,
		Sex:                  req.Sex,
		Size:                 req.Size,
		AgeCategory:          req.AgeCategory,
		EnergyLevel:          req.EnergyLevel,
		IndependenceLevel:    req.IndependenceLevel,
		Environment:          req.Environment,
		AdoptionRequirements: req.AdoptionRequirements,
		Status:               domain.PetDraft,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.petRepo.SavePet(ctx, pet); err != nil {
		s.LogError(ctx, err, "Failed to save pet", slog.String("workspace_id", req.WorkspaceID))
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditCreate, domain.AuditEntityPet, pet.PetID, map[string]any{
		"workspaceId": req.WorkspaceID,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write pet creation audit entry", slog.String("pet_id", pet.PetID))
	}

	s.LogInfo(ctx, "Pet created", slog.String("pet_id", pet.PetID), slog.String("workspace_id", req.WorkspaceID))
	return &pet, nil
}

// GetPetByID returns a pet with its images. Editors of the owning workspace
// and moderators see every status; everyone else only sees approved, active
// listings.
func (s *PetService) GetPetByID(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, []domain.PetImage, error) {
	snapshot, err := s.petRepo.FindPetForReview(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	visible := snapshot.Status == domain.PetApproved && snapshot.IsActive
	if !visible {
		if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) && !authz.CanModerate(principal, snapshot.WorkspaceCityIDs) {
			return nil, nil, apperrors.ErrNotFound
		}
	}
	return &snapshot.Pet, snapshot.Images, nil
}

// ListPublicPets returns the public adoption catalog.
func (s *PetService) ListPublicPets(ctx context.Context, filter portsrepo.PetListFilter) ([]domain.PublicPetListItem, int64, error) {
	filter.Page, filter.PerPage = pagination.Clamp(filter.Page, filter.PerPage)
	items, total, err := s.petRepo.ListPublicPets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list public pets")
		return nil, 0, fmt.Errorf("failed to list pets: %w", err)
	}
	return items, total, nil
}

// UpdatePet updates a pet's listing data. Adopted pets are immutable.
func (s *PetService) UpdatePet(ctx context.Context, principal *domain.Principal, petID string, req dto.UpdatePetRequest) (*domain.Pet, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetWithWorkspace(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) {
		return nil, apperrors.ErrForbidden
	}
	if snapshot.Status == domain.PetAdopted {
		return nil, apperrors.ErrForbidden
	}

	pet := snapshot.Pet
	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Description != nil {
		pet.Description = *req.Description
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Sex != nil {
		pet.Sex = *req.Sex
	}
	if req.Size != nil {
		pet.Size = *req.Size
	}
	if req.AgeCategory != nil {
		pet.AgeCategory = *req.AgeCategory
	}
	if req.EnergyLevel != nil {
		pet.EnergyLevel = req.EnergyLevel
	}
	if req.IndependenceLevel != nil {
		pet.IndependenceLevel = req.IndependenceLevel
	}
	if req.Environment != nil {
		pet.Environment = req.Environment
	}
	if req.AdoptionRequirements != nil {
		pet.AdoptionRequirements = req.AdoptionRequirements
	}
	if req.IsActive != nil {
		pet.IsActive = *req.IsActive
	}
	pet.LastUpdatedAt = time.Now()
	pet.LastUpdatedBy = principal.UserID

	if err := s.petRepo.UpdatePet(ctx, pet); err != nil {
		s.LogError(ctx, err, "Failed to update pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditUpdate, domain.AuditEntityPet, petID, map[string]any{
		"updatedFields": req.UpdatedFields(),
	})); err != nil {
		s.LogError(ctx, err, "Failed to write pet update audit entry", slog.String("pet_id", petID))
	}
	return &pet, nil
}

// SubmitPetForReview moves a complete DRAFT listing to PENDING_REVIEW.
// Checks run in order: existence, editorship, current status, workspace
// standing, listing completeness, image-set invariants. With resubmission
// enabled, REJECTED listings may also re-enter review.
func (s *PetService) SubmitPetForReview(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetForReview(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) {
		return nil, apperrors.ErrForbidden
	}

	submittable := snapshot.Status == domain.PetDraft ||
		(s.cfg.AllowRejectedResubmission && snapshot.Status == domain.PetRejected)
	if !submittable {
		return nil, apperrors.ErrInvalidStatus
	}

	if snapshot.Workspace.IsBlockedForSubmission() {
		return nil, apperrors.ErrWorkspaceBlocked
	}

	if !snapshot.HasMinimumData() {
		return nil, apperrors.ErrInvalidData
	}

	if !domain.ValidateImageSet(snapshot.Images, true) {
		return nil, apperrors.ErrInvalidImages
	}

	pet, err := s.petRepo.MarkPetPendingReview(ctx, petID, principal.UserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to submit pet for review", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to submit pet: %w", err)
	}

	s.LogInfo(ctx, "Pet submitted for review", slog.String("pet_id", petID))
	return pet, nil
}

// ApprovePet moves a PENDING_REVIEW listing to APPROVED. Moderation is
// restricted to SUPER_ADMIN and ADMINs whose city scope intersects the
// workspace's cities.
func (s *PetService) ApprovePet(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetForReview(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	if !authz.CanModerate(principal, snapshot.WorkspaceCityIDs) {
		return nil, apperrors.ErrForbidden
	}
	if snapshot.Status != domain.PetPendingReview {
		return nil, apperrors.ErrInvalidStatus
	}
	if snapshot.Workspace.IsBlockedForSubmission() {
		return nil, apperrors.ErrWorkspaceBlocked
	}
	// Position uniqueness was enforced at submission; approval re-checks
	// only count and cover.
	if !domain.ValidateImageSet(snapshot.Images, false) {
		return nil, apperrors.ErrInvalidImages
	}

	pet, err := s.petRepo.ApprovePet(ctx, petID, principal.UserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to approve pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to approve pet: %w", err)
	}

	s.LogInfo(ctx, "Pet approved", slog.String("pet_id", petID))
	return pet, nil
}

// RejectPet moves a PENDING_REVIEW listing to REJECTED. The review note is
// mandatory: the workspace must learn why.
func (s *PetService) RejectPet(ctx context.Context, principal *domain.Principal, petID string, req dto.RejectPetRequest) (*domain.Pet, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetForReview(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}

	if !authz.CanModerate(principal, snapshot.WorkspaceCityIDs) {
		return nil, apperrors.ErrForbidden
	}
	if snapshot.Status != domain.PetPendingReview {
		return nil, apperrors.ErrInvalidStatus
	}
	if snapshot.Workspace.IsBlockedForSubmission() {
		return nil, apperrors.ErrWorkspaceBlocked
	}

	note := strings.TrimSpace(req.ReviewNote)
	if note == "" {
		return nil, apperrors.ErrMissingReviewNote
	}

	pet, err := s.petRepo.RejectPet(ctx, petID, principal.UserID, note, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to reject pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to reject pet: %w", err)
	}

	s.LogInfo(ctx, "Pet rejected", slog.String("pet_id", petID))
	return pet, nil
}

// CreateUploadURL issues a presigned upload slot under the pet's storage
// prefix for an editor of the owning workspace.
func (s *PetService) CreateUploadURL(ctx context.Context, principal *domain.Principal, petID string, req dto.CreateUploadURLRequest) (*dto.UploadURLResponse, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetWithWorkspace(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}
	if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) {
		return nil, apperrors.ErrForbidden
	}

	slot, err := s.objectStore.CreatePetImageUploadSlot(ctx, petID, req.FileName, req.ContentType)
	if err != nil {
		s.LogError(ctx, err, "Failed to create upload slot", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to create upload URL: %w", err)
	}

	return &dto.UploadURLResponse{
		UploadURL:   slot.UploadURL,
		StoragePath: slot.StoragePath,
		ExpiresIn:   slot.ExpiresIn,
	}, nil
}

// AddPetImage attaches an uploaded image to a pet. The storage path must
// live under the pet's prefix; position conflicts surface from the unique
// constraint rather than a pre-check.
func (s *PetService) AddPetImage(ctx context.Context, principal *domain.Principal, petID string, req dto.AddPetImageRequest) (*domain.PetImage, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetWithWorkspace(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}
	if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) {
		return nil, apperrors.ErrForbidden
	}

	if !domain.IsValidPetImagePath(req.StoragePath, petID) {
		return nil, apperrors.ErrInvalidStoragePath
	}

	count, err := s.petRepo.CountPetImages(ctx, petID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pet images", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to count images: %w", err)
	}
	if count >= domain.MaxPetImages {
		return nil, apperrors.ErrMaxImagesReached
	}

	image := domain.PetImage{
		ImageID:     uuid.NewString(),
		PetID:       petID,
		URL:         req.URL,
		StoragePath: req.StoragePath,
		Position:    req.Position,
		IsCover:     req.IsCover || count == 0,
		CreatedAt:   time.Now(),
	}

	added, err := s.petRepo.AddPetImage(ctx, image)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionAlreadyTaken) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to add pet image", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to add image: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditCreate, domain.AuditEntityPetImage, added.ImageID, map[string]any{
		"petId":    petID,
		"position": req.Position,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write image addition audit entry", slog.String("pet_id", petID))
	}
	return added, nil
}

// UpdatePetImage changes an image's position or cover flag. Promoting a new
// cover demotes the old one; moving onto an occupied position swaps the two
// images.
func (s *PetService) UpdatePetImage(ctx context.Context, principal *domain.Principal, petID, imageID string, req dto.UpdatePetImageRequest) (*domain.PetImage, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetWithWorkspace(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to fetch pet: %w", err)
	}
	if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.petRepo.FindPetImage(ctx, petID, imageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch pet image", slog.String("image_id", imageID))
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}

	updated, err := s.petRepo.UpdatePetImage(ctx, petID, imageID, req.Position, req.IsCover)
	if err != nil {
		s.LogError(ctx, err, "Failed to update pet image", slog.String("image_id", imageID))
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditUpdate, domain.AuditEntityPetImage, imageID, map[string]any{
		"petId": petID,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write image update audit entry", slog.String("image_id", imageID))
	}
	return updated, nil
}

// RemovePetImage deletes an image. A pet under review keeps at least one
// image; deleting the cover promotes the lowest-position survivor.
func (s *PetService) RemovePetImage(ctx context.Context, principal *domain.Principal, petID, imageID string) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}

	snapshot, err := s.petRepo.FindPetWithWorkspace(ctx, petID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to fetch pet", slog.String("pet_id", petID))
		return fmt.Errorf("failed to fetch pet: %w", err)
	}
	if !authz.IsWorkspaceEditor(principal, snapshot.WorkspaceID) {
		return apperrors.ErrForbidden
	}

	if _, err := s.petRepo.FindPetImage(ctx, petID, imageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to fetch pet image", slog.String("image_id", imageID))
		return fmt.Errorf("failed to fetch image: %w", err)
	}

	count, err := s.petRepo.CountPetImages(ctx, petID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pet images", slog.String("pet_id", petID))
		return fmt.Errorf("failed to count images: %w", err)
	}
	if count <= domain.MinPetImages && snapshot.Status == domain.PetPendingReview {
		return apperrors.ErrCannotRemoveLastImage
	}

	if err := s.petRepo.DeletePetImage(ctx, petID, imageID); err != nil {
		s.LogError(ctx, err, "Failed to delete pet image", slog.String("image_id", imageID))
		return fmt.Errorf("failed to delete image: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditUpdate, domain.AuditEntityPetImage, imageID, map[string]any{
		"petId":   petID,
		"deleted": true,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write image removal audit entry", slog.String("image_id", imageID))
	}
	return nil
}
