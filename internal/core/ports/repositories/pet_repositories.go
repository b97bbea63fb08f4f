package repositories

import (
	"context"
	"time"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// PetListFilter narrows the public pet listing. Zero values mean "any".
type PetListFilter struct {
	Species     domain.PetSpecies
	Size        domain.PetSize
	AgeCategory domain.PetAgeCategory
	CityPlaceID string
	Page        int
	PerPage     int
}

// PetReader defines read operations for pet data.
type PetReader interface {
	// FindPetWithWorkspace retrieves a pet plus the owning workspace
	// snapshot the editor-side guards inspect.
	FindPetWithWorkspace(ctx context.Context, petID string) (*domain.PetWithWorkspace, error)

	// FindPetForReview retrieves a pet with its images, workspace and the
	// workspace's moderation city scope. Serves submission and moderation.
	FindPetForReview(ctx context.Context, petID string) (*domain.PetForModeration, error)

	// FindPetForAdoption retrieves the snapshot the adoption guards need,
	// including whether the pet already has an adoption.
	FindPetForAdoption(ctx context.Context, petID string) (*domain.PetForAdoption, error)

	// FindPetImage retrieves one image belonging to the pet.
	FindPetImage(ctx context.Context, petID, imageID string) (*domain.PetImage, error)

	// CountPetImages counts the images currently attached to a pet.
	CountPetImages(ctx context.Context, petID string) (int, error)

	// ListPublicPets returns approved, active pets of approved, active
	// workspaces, newest first, with the total match count.
	ListPublicPets(ctx context.Context, filter PetListFilter) ([]domain.PublicPetListItem, int64, error)
}

// PetWriter defines write operations for pet listings.
type PetWriter interface {
	// SavePet persists a new pet.
	SavePet(ctx context.Context, pet domain.Pet) error

	// UpdatePet persists the mutable listing fields of a pet.
	UpdatePet(ctx context.Context, pet domain.Pet) error

	// MarkPetPendingReview transitions DRAFT -> PENDING_REVIEW and writes
	// the submission audit entry in the same transaction.
	MarkPetPendingReview(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error)

	// ApprovePet transitions PENDING_REVIEW -> APPROVED, stamps
	// approvedAt/approvedBy and writes the approval audit entry in the
	// same transaction.
	ApprovePet(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error)

	// RejectPet transitions PENDING_REVIEW -> REJECTED, stores the review
	// note and writes the rejection audit entry in the same transaction.
	RejectPet(ctx context.Context, petID, actorUserID, reviewNote string, at time.Time) (*domain.Pet, error)
}

// PetImageManager defines operations on a pet's image set.
type PetImageManager interface {
	// AddPetImage inserts an image row. A (petID, position) unique
	// violation is translated into apperrors.ErrPositionAlreadyTaken; the
	// slot is not pre-checked.
	AddPetImage(ctx context.Context, image domain.PetImage) (*domain.PetImage, error)

	// UpdatePetImage applies a position and/or cover change. Setting the
	// cover clears every other cover flag; moving onto an occupied
	// position swaps the holder into the vacated slot. Both run in one
	// transaction.
	UpdatePetImage(ctx context.Context, petID, imageID string, position *int, isCover *bool) (*domain.PetImage, error)

	// DeletePetImage removes an image and, when it was the cover, promotes
	// the lowest-position remaining image, in one transaction.
	DeletePetImage(ctx context.Context, petID, imageID string) error
}

// PetRepositoryFacade combines all pet-related repository interfaces.
type PetRepositoryFacade interface {
	PetReader
	PetWriter
	PetImageManager
	TransactionManager
}
