package dto

import (
	"time"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// --- Pet DTOs ---

// CreatePetRequest defines data for creating a pet draft inside a workspace.
type CreatePetRequest struct {
	WorkspaceID          string                 `json:"workspaceID" binding:"required"`
	Name                 string                 `json:"name" binding:"required"`
	Description          string                 `json:"description"`
	Species              domain.PetSpecies      `json:"species" binding:"required,oneof=DOG CAT RABBIT BIRD HORSE COW GOAT PIG TURTLE OTHER"`
	Sex                  domain.PetSex          `json:"sex" binding:"required,oneof=MALE FEMALE"`
	Size                 domain.PetSize         `json:"size" binding:"required,oneof=SMALL MEDIUM LARGE"`
	AgeCategory          domain.PetAgeCategory  `json:"ageCategory" binding:"required,oneof=PUPPY YOUNG ADULT SENIOR"`
	EnergyLevel          *domain.PetLevel       `json:"energyLevel,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	IndependenceLevel    *domain.PetLevel       `json:"independenceLevel,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Environment          *domain.PetEnvironment `json:"environment,omitempty" binding:"omitempty,oneof=HOUSE APARTMENT BOTH"`
	AdoptionRequirements *string                `json:"adoptionRequirements,omitempty"`
}

// UpdatePetRequest defines data for updating a pet. Pointer fields
// distinguish omitted values from explicit ones.
type UpdatePetRequest struct {
	Name                 *string                `json:"name,omitempty"`
	Description          *string                `json:"description,omitempty"`
	Species              *domain.PetSpecies     `json:"species,omitempty" binding:"omitempty,oneof=DOG CAT RABBIT BIRD HORSE COW GOAT PIG TURTLE OTHER"`
	Sex                  *domain.PetSex         `json:"sex,omitempty" binding:"omitempty,oneof=MALE FEMALE"`
	Size                 *domain.PetSize        `json:"size,omitempty" binding:"omitempty,oneof=SMALL MEDIUM LARGE"`
	AgeCategory          *domain.PetAgeCategory `json:"ageCategory,omitempty" binding:"omitempty,oneof=PUPPY YOUNG ADULT SENIOR"`
	EnergyLevel          *domain.PetLevel       `json:"energyLevel,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	IndependenceLevel    *domain.PetLevel       `json:"independenceLevel,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Environment          *domain.PetEnvironment `json:"environment,omitempty" binding:"omitempty,oneof=HOUSE APARTMENT BOTH"`
	AdoptionRequirements *string                `json:"adoptionRequirements,omitempty"`
	IsActive             *bool                  `json:"isActive,omitempty"`
}

// UpdatedFields lists the names of the fields present in the request,
// recorded in the audit trail of the update.
func (r *UpdatePetRequest) UpdatedFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("name", r.Name != nil)
	add("description", r.Description != nil)
	add("species", r.Species != nil)
	add("sex", r.Sex != nil)
	add("size", r.Size != nil)
	add("ageCategory", r.AgeCategory != nil)
	add("energyLevel", r.EnergyLevel != nil)
	add("independenceLevel", r.IndependenceLevel != nil)
	add("environment", r.Environment != nil)
	add("adoptionRequirements", r.AdoptionRequirements != nil)
	add("isActive", r.IsActive != nil)
	return fields
}

// RejectPetRequest carries the mandatory review note for a rejection.
type RejectPetRequest struct {
	ReviewNote string `json:"reviewNote" binding:"required"`
}

// AddPetImageRequest attaches an already-uploaded image to a pet.
type AddPetImageRequest struct {
	URL         string `json:"url" binding:"required,url"`
	StoragePath string `json:"storagePath" binding:"required,storagepath"`
	Position    int    `json:"position" binding:"min=0"`
	IsCover     bool   `json:"isCover"`
}

// UpdatePetImageRequest changes an image's position or cover flag.
type UpdatePetImageRequest struct {
	Position *int  `json:"position,omitempty" binding:"omitempty,min=0"`
	IsCover  *bool `json:"isCover,omitempty"`
}

// CreateUploadURLRequest asks for a presigned upload slot for a pet image.
type CreateUploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// UploadURLResponse carries the presigned URL and the storage path the
// client must send back when attaching the image.
type UploadURLResponse struct {
	UploadURL   string `json:"uploadURL"`
	StoragePath string `json:"storagePath"`
	ExpiresIn   int    `json:"expiresIn"`
}

// ListPetsParams are the query parameters of the public pet listing.
type ListPetsParams struct {
	Species     *domain.PetSpecies     `form:"species" binding:"omitempty,oneof=DOG CAT RABBIT BIRD HORSE COW GOAT PIG TURTLE OTHER"`
	Size        *domain.PetSize        `form:"size" binding:"omitempty,oneof=SMALL MEDIUM LARGE"`
	AgeCategory *domain.PetAgeCategory `form:"ageCategory" binding:"omitempty,oneof=PUPPY YOUNG ADULT SENIOR"`
	CityPlaceID *string                `form:"cityPlaceID"`
	Page        int                    `form:"page,default=1"`
	PerPage     int                    `form:"perPage,default=20"`
}

// PetResponse defines data returned for a pet.
type PetResponse struct {
	PetID                string                 `json:"petID"`
	WorkspaceID          string                 `json:"workspaceID"`
	Name                 string                 `json:"name"`
	Description          string                 `json:"description"`
	Species              domain.PetSpecies      `json:"species"`
	Sex                  domain.PetSex          `json:"sex"`
	Size                 domain.PetSize         `json:"size"`
	AgeCategory          domain.PetAgeCategory  `json:"ageCategory"`
	EnergyLevel          *domain.PetLevel       `json:"energyLevel,omitempty"`
	IndependenceLevel    *domain.PetLevel       `json:"independenceLevel,omitempty"`
	Environment          *domain.PetEnvironment `json:"environment,omitempty"`
	AdoptionRequirements *string                `json:"adoptionRequirements,omitempty"`
	Status               domain.PetStatus       `json:"status"`
	ReviewNote           *string                `json:"reviewNote,omitempty"`
	IsActive             bool                   `json:"isActive"`
	ApprovedAt           *time.Time             `json:"approvedAt,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
	LastUpdatedAt        time.Time              `json:"lastUpdatedAt"`
}

// ToPetResponse converts domain.Pet to DTO.
func ToPetResponse(p *domain.Pet) PetResponse {
	return PetResponse{
		PetID:                p.PetID,
		WorkspaceID:          p.WorkspaceID,
		Name:                 p.Name,
		Description:          p.Description,
		Species:              p.Species,
		Sex:                  p.Sex,
		Size:                 p.Size,
		AgeCategory:          p.AgeCategory,
		EnergyLevel:          p.EnergyLevel,
		IndependenceLevel:    p.IndependenceLevel,
		Environment:          p.Environment,
		AdoptionRequirements: p.AdoptionRequirements,
		Status:               p.Status,
		ReviewNote:           p.ReviewNote,
		IsActive:             p.IsActive,
		ApprovedAt:           p.ApprovedAt,
		CreatedAt:            p.CreatedAt,
		LastUpdatedAt:        p.LastUpdatedAt,
	}
}

// PetImageResponse defines data returned for a pet image.
type PetImageResponse struct {
	ImageID     string    `json:"imageID"`
	PetID       string    `json:"petID"`
	URL         string    `json:"url"`
	StoragePath string    `json:"storagePath"`
	Position    int       `json:"position"`
	IsCover     bool      `json:"isCover"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToPetImageResponse converts domain.PetImage to DTO.
func ToPetImageResponse(img *domain.PetImage) PetImageResponse {
	return PetImageResponse{
		ImageID:     img.ImageID,
		PetID:       img.PetID,
		URL:         img.URL,
		StoragePath: img.StoragePath,
		Position:    img.Position,
		IsCover:     img.IsCover,
		CreatedAt:   img.CreatedAt,
	}
}

// PetDetailsResponse is a pet with its image set.
type PetDetailsResponse struct {
	PetResponse
	Images []PetImageResponse `json:"images"`
}

// ToPetDetailsResponse converts a pet and its images to DTO.
func ToPetDetailsResponse(p *domain.Pet, images []domain.PetImage) PetDetailsResponse {
	resp := PetDetailsResponse{
		PetResponse: ToPetResponse(p),
		Images:      make([]PetImageResponse, len(images)),
	}
	for i := range images {
		resp.Images[i] = ToPetImageResponse(&images[i])
	}
	return resp
}

// PublicPetListItemResponse is one row of the public adoption listing.
type PublicPetListItemResponse struct {
	PetResponse
	CoverURL      *string `json:"coverURL,omitempty"`
	WorkspaceName string  `json:"workspaceName"`
	CityPlaceID   *string `json:"cityPlaceID,omitempty"`
}

// ListPetsResponse wraps a page of the public listing.
type ListPetsResponse struct {
	Pets    []PublicPetListItemResponse `json:"pets"`
	Total   int64                       `json:"total"`
	Page    int                         `json:"page"`
	PerPage int                         `json:"perPage"`
}

// ToListPetsResponse converts a page of listing rows to DTOs.
func ToListPetsResponse(items []domain.PublicPetListItem, total int64, page, perPage int) ListPetsResponse {
	resp := ListPetsResponse{
		Pets:    make([]PublicPetListItemResponse, len(items)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
	for i, it := range items {
		resp.Pets[i] = PublicPetListItemResponse{
			PetResponse:   ToPetResponse(&it.Pet),
			CoverURL:      it.CoverURL,
			WorkspaceName: it.WorkspaceName,
			CityPlaceID:   it.CityPlaceID,
		}
	}
	return resp
}
