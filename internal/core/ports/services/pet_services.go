package services

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	"github.com/bethehero/adopt_backend/internal/dto"
)

// PetReaderSvc defines read operations on pets.
type PetReaderSvc interface {
	// GetPetByID returns a pet visible to the caller.
	GetPetByID(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, []domain.PetImage, error)

	// ListPublicPets returns the public adoption listing: approved,
	// active pets of approved, active workspaces.
	ListPublicPets(ctx context.Context, filter repositories.PetListFilter) ([]domain.PublicPetListItem, int64, error)
}

// PetWriterSvc defines editor-side write operations on pets.
type PetWriterSvc interface {
	// CreatePet creates a pet in DRAFT inside a workspace.
	CreatePet(ctx context.Context, principal *domain.Principal, req dto.CreatePetRequest) (*domain.Pet, error)

	// UpdatePet updates a pet's data. Adopted pets are immutable.
	UpdatePet(ctx context.Context, principal *domain.Principal, petID string, req dto.UpdatePetRequest) (*domain.Pet, error)

	// SubmitPetForReview moves a complete DRAFT pet to PENDING_REVIEW.
	SubmitPetForReview(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, error)
}

// PetModerationSvc defines the admin review operations.
type PetModerationSvc interface {
	// ApprovePet moves a PENDING_REVIEW pet to APPROVED.
	ApprovePet(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, error)

	// RejectPet moves a PENDING_REVIEW pet to REJECTED with a note.
	RejectPet(ctx context.Context, principal *domain.Principal, petID string, req dto.RejectPetRequest) (*domain.Pet, error)
}

// PetImageSvc defines pet image management.
type PetImageSvc interface {
	// CreateUploadURL issues a presigned upload slot under the pet's
	// storage prefix.
	CreateUploadURL(ctx context.Context, principal *domain.Principal, petID string, req dto.CreateUploadURLRequest) (*dto.UploadURLResponse, error)

	// AddPetImage attaches an uploaded image to a pet.
	AddPetImage(ctx context.Context, principal *domain.Principal, petID string, req dto.AddPetImageRequest) (*domain.PetImage, error)

	// UpdatePetImage changes an image's position or cover flag.
	UpdatePetImage(ctx context.Context, principal *domain.Principal, petID, imageID string, req dto.UpdatePetImageRequest) (*domain.PetImage, error)

	// RemovePetImage deletes an image, keeping the set invariants.
	RemovePetImage(ctx context.Context, principal *domain.Principal, petID, imageID string) error
}

// PetSvcFacade combines all pet-related service interfaces
type PetSvcFacade interface {
	PetReaderSvc
	PetWriterSvc
	PetModerationSvc
	PetImageSvc
}
