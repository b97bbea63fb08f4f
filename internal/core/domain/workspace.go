package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkspaceType classifies a partner organization.
type WorkspaceType string

const (
	WorkspaceONG         WorkspaceType = "ONG"
	WorkspaceClinic      WorkspaceType = "CLINIC"
	WorkspacePetshop     WorkspaceType = "PETSHOP"
	WorkspaceIndependent WorkspaceType = "INDEPENDENT"
)

// VerificationStatus is the moderation state of a workspace.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// MemberRole is a user's role within one workspace.
type MemberRole string

const (
	MemberOwner     MemberRole = "OWNER"
	MemberEditor    MemberRole = "EDITOR"
	MemberFinancial MemberRole = "FINANCIAL"
)

// Workspace is a partner organization publishing pets.
type Workspace struct {
	WorkspaceID        string             `json:"workspaceID" db:"workspace_id"`
	Name               string             `json:"name" db:"name"`
	Type               WorkspaceType      `json:"type" db:"type"`
	Description        string             `json:"description" db:"description"`
	Phone              *string            `json:"phone,omitempty" db:"phone"`
	Whatsapp           *string            `json:"whatsapp,omitempty" db:"whatsapp"`
	EmailPublic        *string            `json:"emailPublic,omitempty" db:"email_public"`
	VerificationStatus VerificationStatus `json:"verificationStatus" db:"verification_status"`
	IsActive           bool               `json:"isActive" db:"is_active"`
	AuditFields
}

// IsBlockedForSubmission reports whether pet submissions against this
// workspace must be refused. A PENDING workspace may still prepare and
// submit listings; only inactive or REJECTED workspaces are blocked.
func (w *Workspace) IsBlockedForSubmission() bool {
	return !w.IsActive || w.VerificationStatus == VerificationRejected
}

// IsBlockedForAdoption reports whether adoption-side operations are blocked:
// those additionally require the workspace to be fully APPROVED.
func (w *Workspace) IsBlockedForAdoption() bool {
	return !w.IsActive || w.VerificationStatus != VerificationApproved
}

// WorkspaceLocation is a physical address of a workspace. Exactly one
// location per workspace is primary at any time.
type WorkspaceLocation struct {
	LocationID   string          `json:"locationID" db:"location_id"`
	WorkspaceID  string          `json:"workspaceID" db:"workspace_id"`
	CityPlaceID  string          `json:"cityPlaceID" db:"city_place_id"`
	Lat          decimal.Decimal `json:"lat" db:"lat"`
	Lng          decimal.Decimal `json:"lng" db:"lng"`
	AddressLine  *string         `json:"addressLine,omitempty" db:"address_line"`
	Neighborhood *string         `json:"neighborhood,omitempty" db:"neighborhood"`
	ZipCode      *string         `json:"zipCode,omitempty" db:"zip_code"`
	IsPrimary    bool            `json:"isPrimary" db:"is_primary"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

// CityCoverage records a city where the workspace operates.
type CityCoverage struct {
	CoverageID  string    `json:"coverageID" db:"coverage_id"`
	WorkspaceID string    `json:"workspaceID" db:"workspace_id"`
	CityPlaceID string    `json:"cityPlaceID" db:"city_place_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// WorkspaceMember is the membership of a User in a Workspace.
type WorkspaceMember struct {
	MemberID    string     `json:"memberID" db:"member_id"`
	WorkspaceID string     `json:"workspaceID" db:"workspace_id"`
	UserID      string     `json:"userID" db:"user_id"`
	Role        MemberRole `json:"role" db:"role"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	JoinedAt    time.Time  `json:"joinedAt" db:"joined_at"`
}

// WorkspaceDetails is a workspace together with the satellite records the
// authorization predicates and read endpoints need.
type WorkspaceDetails struct {
	Workspace
	PrimaryLocation *WorkspaceLocation `json:"primaryLocation,omitempty"`
	CityCoverage    []GeoPlace         `json:"cityCoverage"`
	Members         []WorkspaceMember  `json:"members,omitempty"`
}

// CityIDs is the workspace's moderation scope: the primary-location city
// plus every coverage city, deduplicated.
func (d *WorkspaceDetails) CityIDs() []string {
	seen := make(map[string]struct{}, len(d.CityCoverage)+1)
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if d.PrimaryLocation != nil {
		add(d.PrimaryLocation.CityPlaceID)
	}
	for _, c := range d.CityCoverage {
		add(c.PlaceID)
	}
	return ids
}

// WorkspaceMembership pairs a member row with its workspace for the
// "my workspaces" listing.
type WorkspaceMembership struct {
	Member          WorkspaceMember    `json:"member"`
	Workspace       Workspace          `json:"workspace"`
	PrimaryLocation *WorkspaceLocation `json:"primaryLocation,omitempty"`
	CityCoverage    []GeoPlace         `json:"cityCoverage"`
}
