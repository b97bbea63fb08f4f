package services

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/bethehero/adopt_backend/internal/dto"
)

// WorkspaceReaderSvc defines read operations on workspaces.
type WorkspaceReaderSvc interface {
	// GetWorkspaceByID returns a workspace with its location, coverage
	// and members, for callers authorized to see it.
	GetWorkspaceByID(ctx context.Context, principal *domain.Principal, workspaceID string) (*domain.WorkspaceDetails, error)

	// ListMyWorkspaces returns the caller's active memberships.
	ListMyWorkspaces(ctx context.Context, principal *domain.Principal) ([]domain.WorkspaceMembership, error)
}

// WorkspaceWriterSvc defines write operations on workspaces.
type WorkspaceWriterSvc interface {
	// CreateWorkspace creates a workspace with its primary location,
	// city coverage and the creator as OWNER.
	CreateWorkspace(ctx context.Context, principal *domain.Principal, req dto.CreateWorkspaceRequest) (*domain.WorkspaceDetails, error)

	// UpdateWorkspace updates the basic data of a workspace.
	UpdateWorkspace(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)

	// UpdateWorkspaceLocation replaces the primary location and extends
	// city coverage with the new city.
	UpdateWorkspaceLocation(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.UpdateWorkspaceLocationRequest) (*domain.WorkspaceLocation, error)
}

// WorkspaceMembershipSvc defines member management operations.
type WorkspaceMembershipSvc interface {
	// AddMember adds an existing user to the workspace by email.
	AddMember(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.AddMemberRequest) (*domain.WorkspaceMember, error)

	// RemoveMember deactivates a member, refusing to remove the last
	// active owner.
	RemoveMember(ctx context.Context, principal *domain.Principal, workspaceID string, memberID string) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceMembershipSvc
}
