package dto

import (
	"time"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// --- Adoption DTOs ---

// RegisterAdoptionRequest records that an approved pet was handed over
// to a guardian.
type RegisterAdoptionRequest struct {
	PetID          string     `json:"petID" binding:"required"`
	GuardianUserID string     `json:"guardianUserID" binding:"required"`
	AdoptedAt      *time.Time `json:"adoptedAt,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// RegisterInterestRequest is a guardian's expression of interest in a pet.
type RegisterInterestRequest struct {
	Message *string `json:"message,omitempty"`
}

// ListInterestsParams are the query parameters of the workspace interest list.
type ListInterestsParams struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"perPage,default=20"`
}

// AdoptionResponse defines data returned for an adoption record.
type AdoptionResponse struct {
	AdoptionID     string                `json:"adoptionID"`
	PetID          string                `json:"petID"`
	WorkspaceID    string                `json:"workspaceID"`
	GuardianUserID string                `json:"guardianUserID"`
	AdoptedAt      time.Time             `json:"adoptedAt"`
	Status         domain.AdoptionStatus `json:"status"`
	Notes          *string               `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToAdoptionResponse converts domain.Adoption to DTO.
func ToAdoptionResponse(a *domain.Adoption) AdoptionResponse {
	return AdoptionResponse{
		AdoptionID:     a.AdoptionID,
		PetID:          a.PetID,
		WorkspaceID:    a.WorkspaceID,
		GuardianUserID: a.GuardianUserID,
		AdoptedAt:      a.AdoptedAt,
		Status:         a.Status,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}

// FollowUpResponse defines data returned for a scheduled follow-up.
type FollowUpResponse struct {
	FollowUpID  string                `json:"followUpID"`
	AdoptionID  string                `json:"adoptionID"`
	Type        domain.FollowUpType   `json:"type"`
	ScheduledAt time.Time             `json:"scheduledAt"`
	Status      domain.FollowUpStatus `json:"status"`
}

// RegisterAdoptionResponse is the creation result: the adoption plus the
// follow-up schedule it produced.
type RegisterAdoptionResponse struct {
	Adoption  AdoptionResponse   `json:"adoption"`
	FollowUps []FollowUpResponse `json:"followUps"`
}

// ToRegisterAdoptionResponse converts the registration result to DTO.
func ToRegisterAdoptionResponse(a *domain.Adoption, followUps []domain.AdoptionFollowUp) RegisterAdoptionResponse {
	resp := RegisterAdoptionResponse{
		Adoption:  ToAdoptionResponse(a),
		FollowUps: make([]FollowUpResponse, len(followUps)),
	}
	for i, f := range followUps {
		resp.FollowUps[i] = FollowUpResponse{
			FollowUpID:  f.FollowUpID,
			AdoptionID:  f.AdoptionID,
			Type:        f.Type,
			ScheduledAt: f.ScheduledAt,
			Status:      f.Status,
		}
	}
	return resp
}

// AdoptionDetailsResponse is an adoption with its related records.
type AdoptionDetailsResponse struct {
	AdoptionResponse
	Pet       PetResponse        `json:"pet"`
	Guardian  UserResponse       `json:"guardian"`
	Workspace WorkspaceResponse  `json:"workspace"`
	FollowUps []FollowUpResponse `json:"followUps"`
}

// ToAdoptionDetailsResponse converts domain.AdoptionDetails to DTO.
func ToAdoptionDetailsResponse(d *domain.AdoptionDetails) AdoptionDetailsResponse {
	resp := AdoptionDetailsResponse{
		AdoptionResponse: ToAdoptionResponse(&d.Adoption),
		Pet:              ToPetResponse(&d.Pet),
		Guardian:         ToUserResponse(&d.Guardian),
		Workspace:        ToWorkspaceResponse(&d.Workspace),
		FollowUps:        make([]FollowUpResponse, len(d.FollowUps)),
	}
	for i, f := range d.FollowUps {
		resp.FollowUps[i] = FollowUpResponse{
			FollowUpID:  f.FollowUpID,
			AdoptionID:  f.AdoptionID,
			Type:        f.Type,
			ScheduledAt: f.ScheduledAt,
			Status:      f.Status,
		}
	}
	return resp
}

// InterestResponse defines data returned for an adoption interest.
type InterestResponse struct {
	InterestID     string    `json:"interestID"`
	PetID          string    `json:"petID"`
	WorkspaceID    string    `json:"workspaceID"`
	GuardianUserID string    `json:"guardianUserID"`
	Message        *string   `json:"message,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToInterestResponse converts domain.AdoptionInterest to DTO.
func ToInterestResponse(in *domain.AdoptionInterest) InterestResponse {
	return InterestResponse{
		InterestID:     in.InterestID,
		PetID:          in.PetID,
		WorkspaceID:    in.WorkspaceID,
		GuardianUserID: in.UserID,
		Message:        in.Message,
		CreatedAt:      in.CreatedAt,
	}
}

// InterestListResponse wraps a page of interests for a workspace.
type InterestListResponse struct {
	Interests []InterestResponse `json:"interests"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"perPage"`
}

// ToInterestListResponse converts a page of interests to DTOs.
func ToInterestListResponse(items []domain.AdoptionInterest, total int64, page, perPage int) InterestListResponse {
	resp := InterestListResponse{
		Interests: make([]InterestResponse, len(items)),
		Total:     total,
		Page:      page,
		PerPage:   perPage,
	}
	for i := range items {
		resp.Interests[i] = ToInterestResponse(&items[i])
	}
	return resp
}
