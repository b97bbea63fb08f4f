package services

import (
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/platform/storage"
	"github.com/bethehero/adopt_backend/pkg/config"
)

// NewServiceContainer wires every service with its repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store storage.ObjectStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	oauthSvc := NewGoogleOAuthService(cfg)

	container.Auth = NewAuthService(repos.UserRepo, repos.AuditRepo, oauthSvc, cfg)
	container.User = NewUserService(repos.UserRepo, repos.WorkspaceRepo)
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, repos.UserRepo, repos.GeoPlaceRepo, repos.AuditRepo)
	container.Pet = NewPetService(repos.PetRepo, repos.WorkspaceRepo, repos.AuditRepo, store, cfg)
	container.Adoption = NewAdoptionService(repos.AdoptionRepo, repos.PetRepo, repos.WorkspaceRepo, repos.UserRepo)
	container.Interest = NewAdoptionInterestService(repos.InterestRepo, repos.PetRepo, repos.WorkspaceRepo)

	return container
}
