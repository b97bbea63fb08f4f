package repositories

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data.
type WorkspaceReader interface {
	// FindWorkspaceDetails retrieves a workspace with its primary location
	// and city coverage. Members are paginated separately via ListMembers.
	FindWorkspaceDetails(ctx context.Context, workspaceID string) (*domain.WorkspaceDetails, error)

	// ListMembers returns a page of active members, newest first.
	ListMembers(ctx context.Context, workspaceID string, page, perPage int) ([]domain.WorkspaceMember, error)

	// ListMembershipsByUserID returns the active memberships of a user
	// together with each workspace and its satellite records.
	ListMembershipsByUserID(ctx context.Context, userID string) ([]domain.WorkspaceMembership, error)

	// FindActiveMembershipsByUserID returns the raw active membership rows
	// of a user, for principal resolution.
	FindActiveMembershipsByUserID(ctx context.Context, userID string) ([]domain.WorkspaceMember, error)
}

// WorkspaceWriter defines write operations for workspace data.
type WorkspaceWriter interface {
	// CreateWorkspace persists the workspace, its primary location, one
	// city-coverage row and the creator's OWNER membership atomically.
	CreateWorkspace(ctx context.Context, workspace domain.Workspace, location domain.WorkspaceLocation, coverage domain.CityCoverage, owner domain.WorkspaceMember) error

	// UpdateWorkspace persists the basic-data fields of a workspace.
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error

	// UpdatePrimaryLocation replaces the primary location and upserts a
	// city-coverage row for the new city, atomically. Coverage for the old
	// primary city is kept.
	UpdatePrimaryLocation(ctx context.Context, workspaceID string, location domain.WorkspaceLocation) error
}

// WorkspaceMembershipManager defines operations for managing memberships.
type WorkspaceMembershipManager interface {
	// AddMember inserts a membership row. A (workspaceID, userID) unique
	// violation is translated into apperrors.ErrAlreadyMember; the
	// duplicate is not pre-checked.
	AddMember(ctx context.Context, member domain.WorkspaceMember) (*domain.WorkspaceMember, error)

	// FindMember retrieves an active member row by member id.
	FindMember(ctx context.Context, workspaceID, memberID string) (*domain.WorkspaceMember, error)

	// CountActiveOwners counts the live active OWNER rows of a workspace.
	CountActiveOwners(ctx context.Context, workspaceID string) (int, error)

	// DeactivateMember soft-deactivates a member row.
	DeactivateMember(ctx context.Context, workspaceID, memberID string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository
// interfaces.
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
	TransactionManager
}
