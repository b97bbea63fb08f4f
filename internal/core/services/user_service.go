package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
)

// UserService handles profile reads and principal resolution.
type UserService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade, wr portsrepo.WorkspaceRepositoryFacade) *UserService {
	return &UserService{
		userRepo:      ur,
		workspaceRepo: wr,
	}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetMe returns the authenticated user's profile with memberships. A token
// whose subject is gone or deactivated yields an unauthenticated error, not
// a not-found one: from the caller's perspective the session is dead.
func (s *UserService) GetMe(ctx context.Context, userID string) (*domain.User, []domain.WorkspaceMembership, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrUnauthenticated
		}
		s.LogError(ctx, err, "Failed to fetch user for profile", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !user.IsActive {
		return nil, nil, apperrors.ErrUnauthenticated
	}

	memberships, err := s.workspaceRepo.ListMembershipsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list memberships for profile", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return user, memberships, nil
}

// ResolvePrincipal loads the authorization context for a user. It is called
// once per authenticated request, after token validation.
func (s *UserService) ResolvePrincipal(ctx context.Context, userID string) (*domain.Principal, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		s.LogError(ctx, err, "Failed to fetch user for principal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthenticated
	}

	principal := &domain.Principal{
		UserID: user.UserID,
		Role:   user.Role,
	}

	members, err := s.workspaceRepo.FindActiveMembershipsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load memberships for principal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	for _, m := range members {
		principal.Memberships = append(principal.Memberships, domain.PrincipalMembership{
			WorkspaceID: m.WorkspaceID,
			Role:        m.Role,
		})
	}

	if user.Role == domain.RoleAdmin {
		cities, err := s.userRepo.FindAdminCityPlaces(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load admin city scope", slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to load admin cities: %w", err)
		}
		for _, c := range cities {
			principal.AdminCities = append(principal.AdminCities, c.PlaceID)
		}
	}

	return principal, nil
}
