package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/authz"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
)

// WorkspaceService handles business logic related to partner workspaces and
// their memberships.
type WorkspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	geoPlaceRepo  portsrepo.GeoPlaceRepositoryFacade
	auditRepo     portsrepo.AuditRepositoryFacade
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(wr portsrepo.WorkspaceRepositoryFacade, ur portsrepo.UserRepositoryFacade, gr portsrepo.GeoPlaceRepositoryFacade, ar portsrepo.AuditRepositoryFacade) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: wr,
		userRepo:      ur,
		geoPlaceRepo:  gr,
		auditRepo:     ar,
	}
}

var _ portssvc.WorkspaceSvcFacade = (*WorkspaceService)(nil)

// CreateWorkspace creates a workspace with its primary location, one
// coverage row for the location's city and the creator as OWNER. Only
// PARTNER_MEMBER accounts may create workspaces; the new workspace starts
// with PENDING verification.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, principal *domain.Principal, req dto.CreateWorkspaceRequest) (*domain.WorkspaceDetails, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if principal.Role != domain.RolePartnerMember {
		return nil, apperrors.ErrForbidden
	}

	place, err := s.geoPlaceRepo.FindPlaceByID(ctx, req.CityPlaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCity
		}
		s.LogError(ctx, err, "Failed to fetch city place", slog.String("place_id", req.CityPlaceID))
		return nil, fmt.Errorf("failed to fetch place: %w", err)
	}
	if place.Type != domain.PlaceCity {
		return nil, apperrors.ErrInvalidCity
	}

	now := time.Now()
	workspaceID := uuid.NewString()

	workspace := domain.Workspace{
		WorkspaceID:        workspaceID,
		Name:               req.Name,
		Type:               req.Type,
		Description:        req.Description,
		Phone:              req.Phone,
		Whatsapp:           req.Whatsapp,
		EmailPublic:        req.EmailPublic,
		VerificationStatus: domain.VerificationPending,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	location := domain.WorkspaceLocation{
		LocationID:   uuid.NewString(),
		WorkspaceID:  workspaceID,
		CityPlaceID:  req.CityPlaceID,
		Lat:          req.Lat,
		Lng:          req.Lng,
		AddressLine:  req.AddressLine,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		IsPrimary:    true,
		CreatedAt:    now,
	}
	coverage := domain.CityCoverage{
		CoverageID:  uuid.NewString(),
		WorkspaceID: workspaceID,
		CityPlaceID: req.CityPlaceID,
		CreatedAt:   now,
	}
	owner := domain.WorkspaceMember{
		MemberID:    uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      principal.UserID,
		Role:        domain.MemberOwner,
		IsActive:    true,
		JoinedAt:    now,
	}

	if err := s.workspaceRepo.CreateWorkspace(ctx, workspace, location, coverage, owner); err != nil {
		s.LogError(ctx, err, "Failed to create workspace", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditCreate, domain.AuditEntityWorkspace, workspaceID, map[string]any{
		"name": req.Name,
		"type": string(req.Type),
	})); err != nil {
		s.LogError(ctx, err, "Failed to write workspace creation audit entry", slog.String("workspace_id", workspaceID))
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", workspaceID))
	return &domain.WorkspaceDetails{
		Workspace:       workspace,
		PrimaryLocation: &location,
		CityCoverage:    []domain.GeoPlace{*place},
		Members:         []domain.WorkspaceMember{owner},
	}, nil
}

// GetWorkspaceByID returns the full workspace read model for members,
// covering admins and super admins.
func (s *WorkspaceService) GetWorkspaceByID(ctx context.Context, principal *domain.Principal, workspaceID string) (*domain.WorkspaceDetails, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	details, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to fetch workspace: %w", err)
	}

	if !authz.CanViewWorkspace(principal, workspaceID, details.CityIDs()) {
		return nil, apperrors.ErrForbidden
	}

	members, err := s.workspaceRepo.ListMembers(ctx, workspaceID, 1, 100)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	details.Members = members
	return details, nil
}

// ListMyWorkspaces returns the caller's active memberships.
func (s *WorkspaceService) ListMyWorkspaces(ctx context.Context, principal *domain.Principal) ([]domain.WorkspaceMembership, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	memberships, err := s.workspaceRepo.ListMembershipsByUserID(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list memberships", slog.String("user_id", principal.UserID))
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// UpdateWorkspace updates the basic data of a workspace. Allowed for
// workspace editors, covering admins and super admins.
func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	details, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to fetch workspace: %w", err)
	}

	if !authz.CanManageWorkspace(principal, workspaceID, details.CityIDs()) {
		return nil, apperrors.ErrForbidden
	}

	workspace := details.Workspace
	var updated []string
	if req.Name != nil {
		workspace.Name = *req.Name
		updated = append(updated, "name")
	}
	if req.Type != nil {
		workspace.Type = *req.Type
		updated = append(updated, "type")
	}
	if req.Description != nil {
		workspace.Description = *req.Description
		updated = append(updated, "description")
	}
	if req.Phone != nil {
		workspace.Phone = req.Phone
		updated = append(updated, "phone")
	}
	if req.Whatsapp != nil {
		workspace.Whatsapp = req.Whatsapp
		updated = append(updated, "whatsapp")
	}
	if req.EmailPublic != nil {
		workspace.EmailPublic = req.EmailPublic
		updated = append(updated, "emailPublic")
	}
	if len(updated) == 0 {
		return &workspace, nil
	}
	workspace.LastUpdatedAt = time.Now()
	workspace.LastUpdatedBy = principal.UserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditUpdate, domain.AuditEntityWorkspace, workspaceID, map[string]any{
		"updatedFields": updated,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write workspace update audit entry", slog.String("workspace_id", workspaceID))
	}
	return &workspace, nil
}

// UpdateWorkspaceLocation replaces the primary location. Coverage of the new
// city is upserted; coverage of the previous primary city is kept, so the
// workspace's moderation scope only grows.
func (s *WorkspaceService) UpdateWorkspaceLocation(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.UpdateWorkspaceLocationRequest) (*domain.WorkspaceLocation, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	details, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to fetch workspace: %w", err)
	}

	if !authz.CanManageWorkspace(principal, workspaceID, details.CityIDs()) {
		return nil, apperrors.ErrForbidden
	}

	place, err := s.geoPlaceRepo.FindPlaceByID(ctx, req.CityPlaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCity
		}
		s.LogError(ctx, err, "Failed to fetch city place", slog.String("place_id", req.CityPlaceID))
		return nil, fmt.Errorf("failed to fetch place: %w", err)
	}
	if place.Type != domain.PlaceCity {
		return nil, apperrors.ErrInvalidCity
	}

	location := domain.WorkspaceLocation{
		LocationID:   uuid.NewString(),
		WorkspaceID:  workspaceID,
		CityPlaceID:  req.CityPlaceID,
		Lat:          req.Lat,
		Lng:          req.Lng,
		AddressLine:  req.AddressLine,
		Neighborhood: req.Neighborhood,
		ZipCode:      req.ZipCode,
		IsPrimary:    true,
		CreatedAt:    time.Now(),
	}

	if err := s.workspaceRepo.UpdatePrimaryLocation(ctx, workspaceID, location); err != nil {
		s.LogError(ctx, err, "Failed to update primary location", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditUpdate, domain.AuditEntityWorkspace, workspaceID, map[string]any{
		"updatedFields": []string{"primaryLocation"},
		"cityPlaceId":   req.CityPlaceID,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write location update audit entry", slog.String("workspace_id", workspaceID))
	}
	return &location, nil
}

// AddMember adds an existing active user to the workspace by email. Only
// owners may manage members. Duplicate membership surfaces from the unique
// constraint, not from a pre-check.
func (s *WorkspaceService) AddMember(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.AddMemberRequest) (*domain.WorkspaceMember, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	_, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to fetch workspace: %w", err)
	}

	if !authz.IsWorkspaceOwner(principal, workspaceID) {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserNotFound
	}

	member := domain.WorkspaceMember{
		MemberID:    uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      user.UserID,
		Role:        req.Role,
		IsActive:    true,
		JoinedAt:    time.Now(),
	}

	added, err := s.workspaceRepo.AddMember(ctx, member)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to add member", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditCreate, domain.AuditEntityWorkspace, workspaceID, map[string]any{
		"addedMember":  true,
		"memberUserId": user.UserID,
		"memberRole":   string(req.Role),
	})); err != nil {
		s.LogError(ctx, err, "Failed to write member addition audit entry", slog.String("workspace_id", workspaceID))
	}
	return added, nil
}

// RemoveMember soft-deactivates a member. An owner removing themselves is
// refused when they are the last active owner, so a workspace can never end
// up ownerless.
func (s *WorkspaceService) RemoveMember(ctx context.Context, principal *domain.Principal, workspaceID string, memberID string) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}

	_, err := s.workspaceRepo.FindWorkspaceDetails(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to fetch workspace", slog.String("workspace_id", workspaceID))
		return fmt.Errorf("failed to fetch workspace: %w", err)
	}

	if !authz.IsWorkspaceOwner(principal, workspaceID) {
		return apperrors.ErrForbidden
	}

	member, err := s.workspaceRepo.FindMember(ctx, workspaceID, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to fetch member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to fetch member: %w", err)
	}

	if member.UserID == principal.UserID && member.Role == domain.MemberOwner {
		owners, err := s.workspaceRepo.CountActiveOwners(ctx, workspaceID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count active owners", slog.String("workspace_id", workspaceID))
			return fmt.Errorf("failed to count owners: %w", err)
		}
		if owners <= 1 {
			return apperrors.ErrCannotRemoveLastOwner
		}
	}

	if err := s.workspaceRepo.DeactivateMember(ctx, workspaceID, memberID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(principal.UserID, domain.AuditUpdate, domain.AuditEntityWorkspace, workspaceID, map[string]any{
		"removedMember": true,
		"memberId":      memberID,
		"memberUserId":  member.UserID,
	})); err != nil {
		s.LogError(ctx, err, "Failed to write member removal audit entry", slog.String("workspace_id", workspaceID))
	}
	return nil
}
