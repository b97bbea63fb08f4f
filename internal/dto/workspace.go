package dto

import (
	"time"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a partner workspace.
type CreateWorkspaceRequest struct {
	Name         string               `json:"name" binding:"required"`
	Type         domain.WorkspaceType `json:"type" binding:"required,oneof=ONG CLINIC PETSHOP INDEPENDENT"`
	Description  string               `json:"description" binding:"required"`
	Phone        *string              `json:"phone,omitempty"`
	Whatsapp     *string              `json:"whatsapp,omitempty"`
	EmailPublic  *string              `json:"emailPublic,omitempty" binding:"omitempty,email"`
	CityPlaceID  string               `json:"cityPlaceID" binding:"required"`
	Lat          decimal.Decimal      `json:"lat"`
	Lng          decimal.Decimal      `json:"lng"`
	AddressLine  *string              `json:"addressLine,omitempty"`
	Neighborhood *string              `json:"neighborhood,omitempty"`
	ZipCode      *string              `json:"zipCode,omitempty"`
}

// UpdateWorkspaceRequest defines the basic-data fields a workspace editor
// may change. Pointers distinguish omitted fields from zero values.
type UpdateWorkspaceRequest struct {
	Name        *string               `json:"name,omitempty"`
	Type        *domain.WorkspaceType `json:"type,omitempty" binding:"omitempty,oneof=ONG CLINIC PETSHOP INDEPENDENT"`
	Description *string               `json:"description,omitempty"`
	Phone       *string               `json:"phone,omitempty"`
	Whatsapp    *string               `json:"whatsapp,omitempty"`
	EmailPublic *string               `json:"emailPublic,omitempty" binding:"omitempty,email"`
}

// HasChanges reports whether any field was supplied.
func (r *UpdateWorkspaceRequest) HasChanges() bool {
	return r.Name != nil || r.Type != nil || r.Description != nil ||
		r.Phone != nil || r.Whatsapp != nil || r.EmailPublic != nil
}

// UpdateWorkspaceLocationRequest replaces a workspace's primary location.
type UpdateWorkspaceLocationRequest struct {
	CityPlaceID  string          `json:"cityPlaceID" binding:"required"`
	Lat          decimal.Decimal `json:"lat"`
	Lng          decimal.Decimal `json:"lng"`
	AddressLine  *string         `json:"addressLine,omitempty"`
	Neighborhood *string         `json:"neighborhood,omitempty"`
	ZipCode      *string         `json:"zipCode,omitempty"`
}

// AddMemberRequest invites an existing user into a workspace.
type AddMemberRequest struct {
	Email string            `json:"email" binding:"required,email"`
	Role  domain.MemberRole `json:"role" binding:"required,oneof=OWNER EDITOR FINANCIAL"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID        string                    `json:"workspaceID"`
	Name               string                    `json:"name"`
	Type               domain.WorkspaceType      `json:"type"`
	Description        string                    `json:"description"`
	Phone              *string                   `json:"phone,omitempty"`
	Whatsapp           *string                   `json:"whatsapp,omitempty"`
	EmailPublic        *string                   `json:"emailPublic,omitempty"`
	VerificationStatus domain.VerificationStatus `json:"verificationStatus"`
	IsActive           bool                      `json:"isActive"`
	CreatedAt          time.Time                 `json:"createdAt"`
	LastUpdatedAt      time.Time                 `json:"lastUpdatedAt"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:        w.WorkspaceID,
		Name:               w.Name,
		Type:               w.Type,
		Description:        w.Description,
		Phone:              w.Phone,
		Whatsapp:           w.Whatsapp,
		EmailPublic:        w.EmailPublic,
		VerificationStatus: w.VerificationStatus,
		IsActive:           w.IsActive,
		CreatedAt:          w.CreatedAt,
		LastUpdatedAt:      w.LastUpdatedAt,
	}
}

// LocationResponse defines data returned for a workspace location.
type LocationResponse struct {
	LocationID   string          `json:"locationID"`
	CityPlaceID  string          `json:"cityPlaceID"`
	Lat          decimal.Decimal `json:"lat"`
	Lng          decimal.Decimal `json:"lng"`
	AddressLine  *string         `json:"addressLine,omitempty"`
	Neighborhood *string         `json:"neighborhood,omitempty"`
	ZipCode      *string         `json:"zipCode,omitempty"`
	IsPrimary    bool            `json:"isPrimary"`
}

// ToLocationResponse converts domain.WorkspaceLocation to DTO.
func ToLocationResponse(l *domain.WorkspaceLocation) LocationResponse {
	return LocationResponse{
		LocationID:   l.LocationID,
		CityPlaceID:  l.CityPlaceID,
		Lat:          l.Lat,
		Lng:          l.Lng,
		AddressLine:  l.AddressLine,
		Neighborhood: l.Neighborhood,
		ZipCode:      l.ZipCode,
		IsPrimary:    l.IsPrimary,
	}
}

// WorkspaceDetailsResponse is a workspace with its satellite records.
type WorkspaceDetailsResponse struct {
	WorkspaceResponse
	PrimaryLocation *LocationResponse  `json:"primaryLocation,omitempty"`
	CityCoverage    []GeoPlaceResponse `json:"cityCoverage"`
	Members         []MemberResponse   `json:"members,omitempty"`
}

// ToWorkspaceDetailsResponse converts domain.WorkspaceDetails to DTO.
func ToWorkspaceDetailsResponse(d *domain.WorkspaceDetails) WorkspaceDetailsResponse {
	resp := WorkspaceDetailsResponse{
		WorkspaceResponse: ToWorkspaceResponse(&d.Workspace),
		CityCoverage:      ToGeoPlaceResponses(d.CityCoverage),
	}
	if d.PrimaryLocation != nil {
		loc := ToLocationResponse(d.PrimaryLocation)
		resp.PrimaryLocation = &loc
	}
	for _, m := range d.Members {
		resp.Members = append(resp.Members, ToMemberResponse(&m))
	}
	return resp
}

// MemberResponse defines data returned about a workspace member.
type MemberResponse struct {
	MemberID    string            `json:"memberID"`
	WorkspaceID string            `json:"workspaceID"`
	UserID      string            `json:"userID"`
	Role        domain.MemberRole `json:"role"`
	IsActive    bool              `json:"isActive"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// ToMemberResponse converts domain.WorkspaceMember to DTO.
func ToMemberResponse(m *domain.WorkspaceMember) MemberResponse {
	return MemberResponse{
		MemberID:    m.MemberID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		IsActive:    m.IsActive,
		JoinedAt:    m.JoinedAt,
	}
}

// MembershipResponse pairs the caller's member row with its workspace.
type MembershipResponse struct {
	Member          MemberResponse     `json:"member"`
	Workspace       WorkspaceResponse  `json:"workspace"`
	PrimaryLocation *LocationResponse  `json:"primaryLocation,omitempty"`
	CityCoverage    []GeoPlaceResponse `json:"cityCoverage"`
}

// ToListMembershipsResponse converts a slice of memberships to DTOs.
func ToListMembershipsResponse(ms []domain.WorkspaceMembership) []MembershipResponse {
	list := make([]MembershipResponse, len(ms))
	for i, m := range ms {
		item := MembershipResponse{
			Member:       ToMemberResponse(&m.Member),
			Workspace:    ToWorkspaceResponse(&m.Workspace),
			CityCoverage: ToGeoPlaceResponses(m.CityCoverage),
		}
		if m.PrimaryLocation != nil {
			loc := ToLocationResponse(m.PrimaryLocation)
			item.PrimaryLocation = &loc
		}
		list[i] = item
	}
	return list
}

// GeoPlaceResponse defines data returned for a geographic place.
type GeoPlaceResponse struct {
	PlaceID string              `json:"placeID"`
	Name    string              `json:"name"`
	Slug    string              `json:"slug"`
	Type    domain.GeoPlaceType `json:"type"`
}

// ToGeoPlaceResponses converts a slice of domain.GeoPlace to DTOs.
func ToGeoPlaceResponses(places []domain.GeoPlace) []GeoPlaceResponse {
	list := make([]GeoPlaceResponse, len(places))
	for i, p := range places {
		list[i] = GeoPlaceResponse{PlaceID: p.PlaceID, Name: p.Name, Slug: p.Slug, Type: p.Type}
	}
	return list
}
