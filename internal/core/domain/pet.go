package domain

import (
	"fmt"
	"strings"
	"time"
)

// PetStatus is the moderation state of a listing.
//
// DRAFT -> PENDING_REVIEW -> APPROVED -> ADOPTED
//
//	\-> REJECTED (with review note)
type PetStatus string

const (
	PetDraft         PetStatus = "DRAFT"
	PetPendingReview PetStatus = "PENDING_REVIEW"
	PetApproved      PetStatus = "APPROVED"
	PetRejected      PetStatus = "REJECTED"
	PetAdopted       PetStatus = "ADOPTED"
)

// PetSpecies is a closed enumeration of supported species.
type PetSpecies string

const (
	SpeciesDog    PetSpecies = "DOG"
	SpeciesCat    PetSpecies = "CAT"
	SpeciesRabbit PetSpecies = "RABBIT"
	SpeciesBird   PetSpecies = "BIRD"
	SpeciesHorse  PetSpecies = "HORSE"
	SpeciesCow    PetSpecies = "COW"
	SpeciesGoat   PetSpecies = "GOAT"
	SpeciesPig    PetSpecies = "PIG"
	SpeciesTurtle PetSpecies = "TURTLE"
	SpeciesOther  PetSpecies = "OTHER"
)

type PetSex string

const (
	SexMale   PetSex = "MALE"
	SexFemale PetSex = "FEMALE"
)

type PetSize string

const (
	SizeSmall  PetSize = "SMALL"
	SizeMedium PetSize = "MEDIUM"
	SizeLarge  PetSize = "LARGE"
)

type PetAgeCategory string

const (
	AgePuppy  PetAgeCategory = "PUPPY"
	AgeYoung  PetAgeCategory = "YOUNG"
	AgeAdult  PetAgeCategory = "ADULT"
	AgeSenior PetAgeCategory = "SENIOR"
)

// PetLevel grades optional temperament attributes.
type PetLevel string

const (
	LevelLow    PetLevel = "LOW"
	LevelMedium PetLevel = "MEDIUM"
	LevelHigh   PetLevel = "HIGH"
)

// PetEnvironment is the home environment a pet suits.
type PetEnvironment string

const (
	EnvHouse     PetEnvironment = "HOUSE"
	EnvApartment PetEnvironment = "APARTMENT"
	EnvBoth      PetEnvironment = "BOTH"
)

// Image-set bounds enforced at submission and approval.
const (
	MinPetImages = 1
	MaxPetImages = 5
)

// Pet is a listing owned by exactly one workspace.
type Pet struct {
	PetID                string          `json:"petID" db:"pet_id"`
	WorkspaceID          string          `json:"workspaceID" db:"workspace_id"`
	Name                 string          `json:"name" db:"name"`
	Description          string          `json:"description" db:"description"`
	Species              PetSpecies      `json:"species" db:"species"`
	Sex                  PetSex          `json:"sex" db:"sex"`
	Size                 PetSize         `json:"size" db:"size"`
	AgeCategory          PetAgeCategory  `json:"ageCategory" db:"age_category"`
	EnergyLevel          *PetLevel       `json:"energyLevel,omitempty" db:"energy_level"`
	IndependenceLevel    *PetLevel       `json:"independenceLevel,omitempty" db:"independence_level"`
	Environment          *PetEnvironment `json:"environment,omitempty" db:"environment"`
	AdoptionRequirements *string         `json:"adoptionRequirements,omitempty" db:"adoption_requirements"`
	Status               PetStatus       `json:"status" db:"status"`
	ReviewNote           *string         `json:"reviewNote,omitempty" db:"review_note"`
	IsActive             bool            `json:"isActive" db:"is_active"`
	ApprovedAt           *time.Time      `json:"approvedAt,omitempty" db:"approved_at"`
	ApprovedByUserID     *string         `json:"approvedByUserID,omitempty" db:"approved_by_user_id"`
	AuditFields
}

// HasMinimumData reports whether the listing carries the data required
// before it may enter review.
func (p *Pet) HasMinimumData() bool {
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Description) != "" &&
		p.Species != "" &&
		p.Sex != "" &&
		p.Size != "" &&
		p.AgeCategory != ""
}

// PetImage belongs to exactly one pet. Positions are unique per pet and
// exactly one image is the cover once the listing is submitted.
type PetImage struct {
	ImageID     string    `json:"imageID" db:"image_id"`
	PetID       string    `json:"petID" db:"pet_id"`
	URL         string    `json:"url" db:"url"`
	StoragePath string    `json:"storagePath" db:"storage_path"`
	Position    int       `json:"position" db:"position"`
	IsCover     bool      `json:"isCover" db:"is_cover"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// PetImagePathPrefix is the required storage-path prefix for a pet's images.
func PetImagePathPrefix(petID string) string {
	return fmt.Sprintf("pets/%s/", petID)
}

// IsValidPetImagePath reports whether storagePath follows the
// pets/{petID}/... convention with a non-empty object name.
func IsValidPetImagePath(storagePath, petID string) bool {
	prefix := PetImagePathPrefix(petID)
	return strings.HasPrefix(storagePath, prefix) && len(storagePath) > len(prefix)
}

// ValidateImageSet checks the image invariants that must hold whenever a pet
// is in PENDING_REVIEW or APPROVED: 1..5 images and exactly one cover.
// Position uniqueness is only demanded at submission time (checkPositions);
// approval trusts the submission check.
func ValidateImageSet(images []PetImage, checkPositions bool) bool {
	if len(images) < MinPetImages || len(images) > MaxPetImages {
		return false
	}
	covers := 0
	for _, img := range images {
		if img.IsCover {
			covers++
		}
	}
	if covers != 1 {
		return false
	}
	if checkPositions {
		positions := make(map[int]struct{}, len(images))
		for _, img := range images {
			if img.Position < 0 {
				return false
			}
			if _, dup := positions[img.Position]; dup {
				return false
			}
			positions[img.Position] = struct{}{}
		}
	}
	return true
}

// PetWithWorkspace is the read model for editor-side mutations: the pet plus
// the workspace snapshot its guards inspect.
type PetWithWorkspace struct {
	Pet
	Workspace Workspace `json:"workspace"`
}

// PetForModeration extends the editor read model with the images and the
// workspace's moderation city scope, for admin approve/reject.
type PetForModeration struct {
	Pet
	Images           []PetImage `json:"images"`
	Workspace        Workspace  `json:"workspace"`
	WorkspaceCityIDs []string   `json:"workspaceCityIDs"`
}

// PublicPetListItem is one row of the public listing: the pet, its cover
// image and enough workspace context to render a card.
type PublicPetListItem struct {
	Pet
	CoverURL      *string `json:"coverURL,omitempty"`
	WorkspaceName string  `json:"workspaceName"`
	CityPlaceID   *string `json:"cityPlaceID,omitempty"`
}

// PetForAdoption is the read model the adoption registration guards need.
type PetForAdoption struct {
	Pet
	Workspace   Workspace `json:"workspace"`
	HasAdoption bool      `json:"hasAdoption"`
}
